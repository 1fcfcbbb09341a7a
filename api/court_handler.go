package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	bk "github.com/lacancha/court-booking-backend/booking"
	"github.com/lacancha/court-booking-backend/court"
)

type CourtService interface {
	GetActiveCourts(ctx context.Context) ([]court.Court, error)
	FindCourtByID(ctx context.Context, id string) (court.Court, error)
	CreateCourt(ctx context.Context, c court.Court) (court.Court, error)
	SetCourtActive(ctx context.Context, id string, active bool) error
}

type ScheduleService interface {
	GetSchedule(ctx context.Context, anchor time.Time, view string) ([]bk.TimeSlot, error)
}

type CourtHandler struct {
	service  CourtService
	schedule ScheduleService
}

func NewCourtHandler(service CourtService, schedule ScheduleService) *CourtHandler {
	return &CourtHandler{service: service, schedule: schedule}
}

func (h *CourtHandler) Register(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	adminOnly := AdminOnly()
	rg.GET("", h.ListActive)
	rg.GET("/schedule", h.GetSchedule)
	rg.GET("/:id", h.GetByID)
	rg.POST("", authRequired, adminOnly, h.Create)
	rg.PUT("/:id/active", authRequired, adminOnly, h.SetActive)
}

func (h *CourtHandler) ListActive(c *gin.Context) {
	if courts, err := h.service.GetActiveCourts(c.Request.Context()); err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "failed to retrieve courts",
		})
	} else {
		c.IndentedJSON(http.StatusOK, courts)
	}
}

func (h *CourtHandler) GetByID(c *gin.Context) {
	id := c.Param("id")
	found, err := h.service.FindCourtByID(c.Request.Context(), id)

	if err != nil {
		c.Error(err)
		if errors.Is(err, court.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch court"})
		return
	}

	c.IndentedJSON(http.StatusOK, found)
}

// GetSchedule returns the slot grid for a day or a week. The date query
// parameter anchors the grid and defaults to today.
func (h *CourtHandler) GetSchedule(c *gin.Context) {
	anchor := time.Now()

	if dateQuery := c.Query("date"); dateQuery != "" {
		parsed, err := time.ParseInLocation(time.DateOnly, dateQuery, time.Local)

		if err != nil {
			c.Error(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
			return
		}

		anchor = parsed
	}

	view := c.DefaultQuery("view", bk.ViewDay)

	if view != bk.ViewDay && view != bk.ViewWeek {
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be day or week"})
		return
	}

	slots, err := h.schedule.GetSchedule(c.Request.Context(), anchor, view)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build schedule"})
		return
	}

	c.IndentedJSON(http.StatusOK, slots)
}

func (h *CourtHandler) Create(c *gin.Context) {
	var body court.Court

	if err := c.BindJSON(&body); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	inserted, err := h.service.CreateCourt(c.Request.Context(), body)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create court"})
		return
	}

	c.JSON(http.StatusCreated, inserted)
}

type setActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *CourtHandler) SetActive(c *gin.Context) {
	id := c.Param("id")

	var req setActiveRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	err := h.service.SetCourtActive(c.Request.Context(), id, *req.Active)

	if err != nil {
		c.Error(err)
		if errors.Is(err, court.ErrCourtNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "court not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update court"})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"message": "court updated"})
}
