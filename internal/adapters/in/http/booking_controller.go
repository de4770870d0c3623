package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/suchimauz/booking-slots-resolver/internal/config"
	"github.com/suchimauz/booking-slots-resolver/internal/core/domain"
	"github.com/suchimauz/booking-slots-resolver/internal/core/json_types"
	"github.com/suchimauz/booking-slots-resolver/internal/core/ports/in"
)

type BookingController struct {
	bookingUseCase in.BookingUseCase
	cfg            *config.Config
}

func NewBookingController(bookingUseCase in.BookingUseCase, cfg *config.Config) *BookingController {
	return &BookingController{
		bookingUseCase: bookingUseCase,
		cfg:            cfg,
	}
}

func (c *BookingController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(BasicAuth(c.cfg))
	{
		api.POST("/bookings", c.createBooking)
	}
}

type CreateBookingRequest struct {
	OwnerID    string                             `json:"ownerId" binding:"required"`
	EventID    uuid.UUID                          `json:"eventId" binding:"required"`
	GuestName  string                             `json:"guestName" binding:"required"`
	GuestEmail string                             `json:"guestEmail" binding:"required,email"`
	GuestNotes string                             `json:"guestNotes"`
	Timezone   string                             `json:"timezone" binding:"required"`
	StartTime  json_types.DateTimeWithoutTimezone `json:"startTime" binding:"required"`
}

func (c *BookingController) createBooking(ctx *gin.Context) {
	var req CreateBookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := c.bookingUseCase.CreateBooking(ctx.Request.Context(), domain.BookingRequest{
		OwnerID:    req.OwnerID,
		EventID:    req.EventID,
		GuestName:  req.GuestName,
		GuestEmail: req.GuestEmail,
		GuestNotes: req.GuestNotes,
		Timezone:   req.Timezone,
		StartTime:  req.StartTime.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEventNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Event not found or inactive"})
		case errors.Is(err, domain.ErrTimeNotAvailable):
			ctx.JSON(http.StatusConflict, gin.H{"error": "Selected time is not available"})
		case errors.Is(err, domain.ErrBusySourceUnavailable):
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrMissingTimezone), errors.Is(err, domain.ErrInvalidDuration):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusCreated, confirmation)
}
