package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lacancha/court-booking-backend/api"
	mock_api "github.com/lacancha/court-booking-backend/api/mocks"
	"github.com/lacancha/court-booking-backend/auth"
	bk "github.com/lacancha/court-booking-backend/booking"
	"github.com/lacancha/court-booking-backend/discount"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var member = auth.User{ID: "user-1", Email: "ana@example.com", Name: "Ana", Role: auth.RoleUser}

var admin = auth.User{ID: "admin-1", Email: "admin@example.com", Name: "Admin", Role: auth.RoleAdmin}

func setUserInContext(user auth.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user", user)
		c.Next()
	}
}

func setupRouterWithUser(t *testing.T, user auth.User) (*gin.Engine, *gomock.Controller, *mock_api.MockBookingService) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	mockService := mock_api.NewMockBookingService(ctrl)
	handler := api.NewBookingHandler(mockService)
	rg := router.Group("/api/v1/bookings")
	rg.Use(setUserInContext(user))
	handler.Register(rg)

	return router, ctrl, mockService
}

func TestListMyBookings(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, member)
	defer ctrl.Finish()

	bookings := []bk.Booking{
		{
			ID:         "b-1",
			UserID:     "user-1",
			CourtID:    "court-1",
			Date:       "2030-06-04",
			StartTime:  "19:00",
			EndTime:    "20:00",
			Status:     bk.StatusPending,
			TotalPrice: 30000,
		},
	}

	bookingsJson, _ := json.MarshalIndent(bookings, "", "    ")
	mockService.EXPECT().FindBookingsPerUser(gomock.Any(), "user-1").Return(bookings, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/bookings", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(bookingsJson), w.Body.String())
}

func TestCreateBooking(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, member)
	defer ctrl.Finish()

	payload := bk.CreateBookingRequest{
		CourtID:       "court-1",
		Date:          "2030-06-04",
		StartTime:     "19:00",
		PaymentMethod: "cash",
	}

	created := bk.Booking{
		ID:         "b-1",
		UserID:     "user-1",
		CourtID:    "court-1",
		Date:       "2030-06-04",
		StartTime:  "19:00",
		EndTime:    "20:00",
		Status:     bk.StatusPending,
		TotalPrice: 30000,
	}

	mockService.EXPECT().CreateBooking(gomock.Any(), "user-1", payload).Return(created, nil).Times(1)

	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got bk.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.TotalPrice, got.TotalPrice)
}

func TestCreateBookingSlotTaken(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, member)
	defer ctrl.Finish()

	payload := bk.CreateBookingRequest{CourtID: "court-1", Date: "2030-06-04", StartTime: "19:00"}

	mockService.EXPECT().CreateBooking(gomock.Any(), "user-1", payload).Return(bk.Booking{}, bk.ErrSlotTaken).Times(1)

	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error": "slot already booked"}`, w.Body.String())
}

func TestCreateBookingRejectedDiscount(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, member)
	defer ctrl.Finish()

	payload := bk.CreateBookingRequest{
		CourtID:      "court-1",
		Date:         "2030-06-04",
		StartTime:    "19:00",
		DiscountCode: "EXPIRED",
	}

	mockService.EXPECT().CreateBooking(gomock.Any(), "user-1", payload).
		Return(bk.Booking{}, &discount.RejectedError{Message: "Este código ha expirado"}).Times(1)

	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/v1/bookings", bytes.NewReader(body))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Este código ha expirado"}`, w.Body.String())
}

func TestCancelBooking(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, member)
	defer ctrl.Finish()

	mockService.EXPECT().CancelBooking(gomock.Any(), "b-1", "user-1").Return(nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/bookings/b-1/cancel", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConfirmBookingRequiresAdmin(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, member)
	defer ctrl.Finish()

	mockService.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any()).Times(0)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/bookings/b-1/confirm", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestConfirmBookingAsAdmin(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, admin)
	defer ctrl.Finish()

	mockService.EXPECT().ConfirmBooking(gomock.Any(), "b-1").Return(nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/api/v1/bookings/b-1/confirm", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "booking confirmed"}`, w.Body.String())
}

func TestGetBookingForbiddenForOtherUser(t *testing.T) {
	router, ctrl, mockService := setupRouterWithUser(t, member)
	defer ctrl.Finish()

	other := bk.Booking{ID: "b-2", UserID: "user-2"}
	mockService.EXPECT().FindBookingByID(gomock.Any(), "b-2").Return(other, nil).Times(1)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1/bookings/b-2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
