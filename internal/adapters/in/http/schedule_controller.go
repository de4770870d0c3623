package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/json_types"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/in"
)

type ScheduleController struct {
	scheduleUseCase in.ScheduleUseCase
	slotResolver    in.SlotResolverUseCase
	cfg             *config.Config
}

func NewScheduleController(
	scheduleUseCase in.ScheduleUseCase,
	slotResolver in.SlotResolverUseCase,
	cfg *config.Config,
) *ScheduleController {
	return &ScheduleController{
		scheduleUseCase: scheduleUseCase,
		slotResolver:    slotResolver,
		cfg:             cfg,
	}
}

func (c *ScheduleController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(BasicAuth(c.cfg))
	{
		api.GET("/owners/:ownerId/schedule", c.getSchedule)
		api.PUT("/owners/:ownerId/schedule", c.saveSchedule)
		api.POST("/owners/:ownerId/slots/resolve", c.resolveSlots)
	}
}

type SaveScheduleRequest struct {
	Timezone       string                    `json:"timezone"`
	Availabilities []SaveScheduleRequestRule `json:"availabilities"`
}

type SaveScheduleRequestRule struct {
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type ResolveSlotsRequest struct {
	DurationMinutes int                   `json:"durationMinutes" binding:"required"`
	Candidates      []json_types.DateTime `json:"candidates" binding:"required"`
}

func (c *ScheduleController) getSchedule(ctx *gin.Context) {
	ownerID := ctx.Param("ownerId")

	schedule, err := c.scheduleUseCase.GetSchedule(ctx.Request.Context(), ownerID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if schedule == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Schedule not found"})
		return
	}

	ctx.JSON(http.StatusOK, schedule)
}

func (c *ScheduleController) saveSchedule(ctx *gin.Context) {
	ownerID := ctx.Param("ownerId")

	var req SaveScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rules := make([]domain.AvailabilityRule, 0, len(req.Availabilities))
	for _, rule := range req.Availabilities {
		rules = append(rules, domain.AvailabilityRule{
			DayOfWeek: domain.Weekday(rule.DayOfWeek),
			StartTime: rule.StartTime,
			EndTime:   rule.EndTime,
		})
	}

	violations, err := c.scheduleUseCase.SaveSchedule(ctx.Request.Context(), ownerID, req.Timezone, rules)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// Нарушения валидации адресуют конкретные поля, чтобы UI мог их подсветить
	if len(violations) > 0 {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": violations})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ownerId": ownerID, "status": "saved"})
}

func (c *ScheduleController) resolveSlots(ctx *gin.Context) {
	ownerID := ctx.Param("ownerId")

	var req ResolveSlotsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	candidates := make([]time.Time, 0, len(req.Candidates))
	for _, candidate := range req.Candidates {
		candidates = append(candidates, candidate.Date)
	}

	slots, err := c.slotResolver.ResolveSlots(ctx.Request.Context(), ownerID, candidates, req.DurationMinutes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidDuration), errors.Is(err, domain.ErrMissingTimezone):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrBusySourceUnavailable):
			// Без занятости календаря ответить нечем - это не "все свободно"
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"ownerId": ownerID,
		"slots":   slots,
	})
}
