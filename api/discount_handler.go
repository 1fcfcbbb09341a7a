package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lacancha/court-booking-backend/discount"
)

type DiscountService interface {
	ValidateCode(ctx context.Context, code string, amount int, bookingDate, bookingTime string) (discount.Validation, error)
	AvailableCodesFor(ctx context.Context, bookingDate, bookingTime string) ([]discount.DiscountCode, error)
}

type DiscountHandler struct {
	service DiscountService
}

func NewDiscountHandler(service DiscountService) *DiscountHandler {
	return &DiscountHandler{service: service}
}

func (h *DiscountHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/validate", h.Validate)
	rg.GET("/available", h.ListAvailable)
}

type validateRequest struct {
	Code        string `json:"code" binding:"required"`
	Amount      int    `json:"amount" binding:"required"`
	BookingDate string `json:"bookingDate" binding:"required"`
	BookingTime string `json:"bookingTime" binding:"required"`
}

// Validate checks a code against a prospective booking without redeeming it.
// Rejections come back as a valid=false payload, not as an HTTP error.
func (h *DiscountHandler) Validate(c *gin.Context) {
	var req validateRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	validation, err := h.service.ValidateCode(c.Request.Context(), req.Code, req.Amount, req.BookingDate, req.BookingTime)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to validate code"})
		return
	}

	c.IndentedJSON(http.StatusOK, validation)
}

func (h *DiscountHandler) ListAvailable(c *gin.Context) {
	bookingDate := c.Query("date")
	bookingTime := c.Query("time")

	codes, err := h.service.AvailableCodesFor(c.Request.Context(), bookingDate, bookingTime)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list codes"})
		return
	}

	c.IndentedJSON(http.StatusOK, codes)
}
