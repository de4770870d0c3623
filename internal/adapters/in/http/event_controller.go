package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/in"
)

type EventController struct {
	eventUseCase in.EventUseCase
	cfg          *config.Config
}

func NewEventController(eventUseCase in.EventUseCase, cfg *config.Config) *EventController {
	return &EventController{
		eventUseCase: eventUseCase,
		cfg:          cfg,
	}
}

func (c *EventController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(BasicAuth(c.cfg))
	{
		api.GET("/owners/:ownerId/events", c.listEvents)
		api.POST("/owners/:ownerId/events", c.createEvent)
		api.GET("/owners/:ownerId/events/:eventId", c.getEvent)
		api.PUT("/owners/:ownerId/events/:eventId", c.updateEvent)
		api.DELETE("/owners/:ownerId/events/:eventId", c.deleteEvent)
	}
}

type EventRequest struct {
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	DurationInMinutes int    `json:"durationInMinutes" binding:"required,gt=0"`
	IsActive          *bool  `json:"isActive"`
}

func (r *EventRequest) isActive() bool {
	// По умолчанию событие открыто для бронирования
	if r.IsActive == nil {
		return true
	}
	return *r.IsActive
}

func (c *EventController) listEvents(ctx *gin.Context) {
	ownerID := ctx.Param("ownerId")

	var events []domain.Event
	var err error
	if ctx.Query("public") == "true" {
		events, err = c.eventUseCase.ListPublicEvents(ctx.Request.Context(), ownerID)
	} else {
		events, err = c.eventUseCase.ListEvents(ctx.Request.Context(), ownerID)
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"events": events})
}

func (c *EventController) createEvent(ctx *gin.Context) {
	ownerID := ctx.Param("ownerId")

	var req EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := c.eventUseCase.CreateEvent(ctx.Request.Context(), domain.Event{
		OwnerID:           ownerID,
		Name:              req.Name,
		Description:       req.Description,
		DurationInMinutes: req.DurationInMinutes,
		IsActive:          req.isActive(),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

func (c *EventController) getEvent(ctx *gin.Context) {
	ownerID := ctx.Param("ownerId")
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	event, err := c.eventUseCase.GetEvent(ctx.Request.Context(), ownerID, eventID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if event == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	ctx.JSON(http.StatusOK, event)
}

func (c *EventController) updateEvent(ctx *gin.Context) {
	ownerID := ctx.Param("ownerId")
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	var req EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = c.eventUseCase.UpdateEvent(ctx.Request.Context(), domain.Event{
		ID:                eventID,
		OwnerID:           ownerID,
		Name:              req.Name,
		Description:       req.Description,
		DurationInMinutes: req.DurationInMinutes,
		IsActive:          req.isActive(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"eventId": eventID, "status": "updated"})
}

func (c *EventController) deleteEvent(ctx *gin.Context) {
	ownerID := ctx.Param("ownerId")
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID format"})
		return
	}

	if err := c.eventUseCase.DeleteEvent(ctx.Request.Context(), ownerID, eventID); err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"eventId": eventID, "status": "deleted"})
}
