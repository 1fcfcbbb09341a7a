package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lacancha/court-booking-backend/auth"
	bk "github.com/lacancha/court-booking-backend/booking"
	"github.com/lacancha/court-booking-backend/court"
	"github.com/lacancha/court-booking-backend/discount"
)

type BookingService interface {
	FindBookingByID(ctx context.Context, id string) (bk.Booking, error)
	FindBookingsPerUser(ctx context.Context, userID string) ([]bk.Booking, error)
	CreateBooking(ctx context.Context, userID string, req bk.CreateBookingRequest) (bk.Booking, error)
	CancelBooking(ctx context.Context, id, userID string) error
	ConfirmBooking(ctx context.Context, id string) error
	CompleteBooking(ctx context.Context, id string) error
	GetBookingCountPerCourt(ctx context.Context) ([]bk.CourtBookingCount, error)
	GetBookingCountPerCourtInPeriod(ctx context.Context, start, end time.Time) ([]bk.CourtBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context) ([]bk.WeekDayBookingCount, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	adminOnly := AdminOnly()
	rg.GET("", h.ListMine)
	rg.GET("/:id", h.GetByID)
	rg.POST("", h.Create)
	rg.PUT("/:id/cancel", h.Cancel)
	rg.PUT("/:id/confirm", adminOnly, h.Confirm)
	rg.PUT("/:id/complete", adminOnly, h.Complete)

	rg.GET("/stats/court", adminOnly, h.GetCourtStats)
	rg.GET("/stats/court/period", adminOnly, h.GetCourtStatsPerPeriod)
	rg.GET("/stats/day", adminOnly, h.GetDayStats)
}

func (h *BookingHandler) ListMine(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	bookings, err := h.service.FindBookingsPerUser(c.Request.Context(), user.ID)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve bookings",
		})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	booking, err := h.service.FindBookingByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}

	if booking.UserID != user.ID && !user.Admin() {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	c.IndentedJSON(http.StatusOK, booking)
}

func (h *BookingHandler) Create(c *gin.Context) {
	user := c.MustGet("user").(auth.User)

	var req bk.CreateBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "failed to parse JSON body",
		})
		return
	}

	inserted, err := h.service.CreateBooking(c.Request.Context(), user.ID, req)

	if err != nil {
		c.Error(err)

		var rejected *discount.RejectedError

		switch {
		case errors.Is(err, court.ErrCourtNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
		case errors.Is(err, bk.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "slot already booked"})
		case errors.Is(err, bk.ErrPastSlot):
			c.JSON(http.StatusBadRequest, gin.H{"error": "cannot book a past slot"})
		case errors.As(err, &rejected):
			c.JSON(http.StatusBadRequest, gin.H{"error": rejected.Message})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}

		return
	}

	c.JSON(http.StatusCreated, inserted)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	user := c.MustGet("user").(auth.User)
	id := c.Param("id")

	err := h.service.CancelBooking(c.Request.Context(), id, user.ID)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidBookingState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
		} else if errors.Is(err, bk.ErrNotAllowed) {
			c.JSON(http.StatusForbidden, gin.H{"error": "not allowed to cancel this booking"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking canceled"})
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	id := c.Param("id")

	err := h.service.ConfirmBooking(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidBookingState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking confirmed"})
}

func (h *BookingHandler) Complete(c *gin.Context) {
	id := c.Param("id")

	err := h.service.CompleteBooking(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, bk.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		} else if errors.Is(err, bk.ErrInvalidBookingState) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking state"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "booking completed"})
}

func (h *BookingHandler) GetCourtStats(c *gin.Context) {
	stats, err := h.service.GetBookingCountPerCourt(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *BookingHandler) GetCourtStatsPerPeriod(c *gin.Context) {
	startQuery := c.Query("startPeriod")
	endQuery := c.Query("endPeriod")

	startTime, err := time.Parse(time.DateOnly, startQuery)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse startPeriod"})
		return
	}

	endTime, err := time.Parse(time.DateOnly, endQuery)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse endPeriod"})
		return
	}

	stats, err := h.service.GetBookingCountPerCourtInPeriod(c.Request.Context(), startTime, endTime)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}

func (h *BookingHandler) GetDayStats(c *gin.Context) {
	stats, err := h.service.GetBookingCountPerWeekDay(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.IndentedJSON(http.StatusOK, stats)
}
