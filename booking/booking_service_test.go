package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	bk "github.com/lacancha/court-booking-backend/booking"
	bk_mocks "github.com/lacancha/court-booking-backend/booking/mocks"
	"github.com/lacancha/court-booking-backend/court"
	"github.com/lacancha/court-booking-backend/discount"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo      *bk_mocks.MockBookingRepository
	courts    *bk_mocks.MockCourtSource
	discounts *bk_mocks.MockDiscountRedeemer
	cache     *bk_mocks.MockScheduleCache
	points    *bk_mocks.MockPointsAwarder
	service   *bk.Service
	ctx       context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	courts := bk_mocks.NewMockCourtSource(ctrl)
	discounts := bk_mocks.NewMockDiscountRedeemer(ctrl)
	cache := bk_mocks.NewMockScheduleCache(ctrl)
	points := bk_mocks.NewMockPointsAwarder(ctrl)
	svc := bk.NewService(repo, courts, discounts, cache, points)

	return ctrl, testDeps{
		repo: repo, courts: courts, discounts: discounts,
		cache: cache, points: points, service: svc, ctx: context.Background(),
	}
}

var serviceCourt = court.Court{
	ID:           "court-1",
	Name:         "Cancha Central",
	PriceDay:     24000,
	PriceNight:   30000,
	PriceWeekend: 28000,
	Active:       true,
}

// A weekday far enough out that its slots are never in the past.
const futureDate = "2030-06-04"

func TestGetSchedule(t *testing.T) {

	t.Run("cache hit skips the repository", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		anchor := time.Date(2030, time.June, 4, 0, 0, 0, 0, time.Local)
		occupancies := []bk.Occupancy{{CourtID: "court-1", Date: futureDate, StartTime: "20:00"}}

		deps.courts.EXPECT().GetActiveCourts(deps.ctx).Return([]court.Court{serviceCourt}, nil).Times(1)
		deps.cache.EXPECT().GetOccupancies(deps.ctx, futureDate).Return(occupancies, true, nil).Times(1)
		deps.repo.EXPECT().GetOccupanciesForDate(gomock.Any(), gomock.Any()).Times(0)

		slots, err := deps.service.GetSchedule(deps.ctx, anchor, bk.ViewDay)

		require.NoError(t, err)
		require.Len(t, slots, 5)

		for _, slot := range slots {
			if slot.Time == "20:00" {
				require.Equal(t, bk.SlotBooked, slot.State)
			} else {
				require.Equal(t, bk.SlotAvailable, slot.State)
			}
		}
	})

	t.Run("cache miss falls back to the repository and backfills", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		anchor := time.Date(2030, time.June, 4, 0, 0, 0, 0, time.Local)

		deps.courts.EXPECT().GetActiveCourts(deps.ctx).Return([]court.Court{serviceCourt}, nil).Times(1)
		deps.cache.EXPECT().GetOccupancies(deps.ctx, futureDate).Return(nil, false, nil).Times(1)
		deps.repo.EXPECT().GetOccupanciesForDate(deps.ctx, futureDate).Return([]bk.Occupancy{}, nil).Times(1)
		deps.cache.EXPECT().SetOccupancies(deps.ctx, futureDate, []bk.Occupancy{}).Return(nil).Times(1)

		slots, err := deps.service.GetSchedule(deps.ctx, anchor, bk.ViewDay)

		require.NoError(t, err)
		require.Len(t, slots, 5)
	})

	t.Run("week view covers seven days", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		anchor := time.Date(2030, time.June, 4, 0, 0, 0, 0, time.Local)

		deps.courts.EXPECT().GetActiveCourts(deps.ctx).Return([]court.Court{serviceCourt}, nil).Times(1)
		deps.cache.EXPECT().GetOccupancies(deps.ctx, gomock.Any()).Return(nil, true, nil).Times(7)

		slots, err := deps.service.GetSchedule(deps.ctx, anchor, bk.ViewWeek)

		require.NoError(t, err)
		require.Len(t, slots, 35)
	})
}

func TestCreateBooking(t *testing.T) {

	t.Run("success without discount", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := bk.CreateBookingRequest{
			CourtID:       "court-1",
			Date:          futureDate,
			StartTime:     "19:00",
			PaymentMethod: "cash",
		}

		deps.courts.EXPECT().FindCourtByID(deps.ctx, "court-1").Return(serviceCourt, nil).Times(1)
		deps.repo.EXPECT().CountActiveAt(deps.ctx, "court-1", futureDate, "19:00").Return(0, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b bk.Booking) (bk.Booking, error) {
				require.NotEmpty(t, b.ID)
				require.Equal(t, "user-1", b.UserID)
				require.Equal(t, bk.StatusPending, b.Status)
				require.Equal(t, bk.PaymentPending, b.PaymentStatus)
				require.Equal(t, 30000, b.TotalPrice)
				require.Equal(t, "20:00", b.EndTime)
				return b, nil
			}).Times(1)
		deps.cache.EXPECT().Invalidate(deps.ctx, futureDate).Return(nil).Times(1)

		booking, err := deps.service.CreateBooking(deps.ctx, "user-1", req)

		require.NoError(t, err)
		require.Equal(t, 30000, booking.TotalPrice)
		require.Zero(t, booking.DiscountApplied)
	})

	t.Run("success with discount redeems before insert", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := bk.CreateBookingRequest{
			CourtID:      "court-1",
			Date:         futureDate,
			StartTime:    "19:00",
			DiscountCode: "SAVE10",
		}

		validation := discount.Validation{
			Valid:    true,
			Discount: 3000,
			Code:     discount.DiscountCode{ID: "code-1", Code: "SAVE10"},
		}

		deps.courts.EXPECT().FindCourtByID(deps.ctx, "court-1").Return(serviceCourt, nil).Times(1)
		deps.discounts.EXPECT().ValidateCode(deps.ctx, "SAVE10", 30000, futureDate, "19:00").Return(validation, nil).Times(1)
		deps.repo.EXPECT().CountActiveAt(deps.ctx, "court-1", futureDate, "19:00").Return(0, nil).Times(1)
		deps.discounts.EXPECT().Redeem(deps.ctx, "code-1").Return(nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b bk.Booking) (bk.Booking, error) {
				require.Equal(t, 27000, b.TotalPrice)
				require.Equal(t, 3000, b.DiscountApplied)
				require.Equal(t, "SAVE10", b.DiscountCode)
				return b, nil
			}).Times(1)
		deps.cache.EXPECT().Invalidate(deps.ctx, futureDate).Return(nil).Times(1)

		booking, err := deps.service.CreateBooking(deps.ctx, "user-1", req)

		require.NoError(t, err)
		require.Equal(t, 27000, booking.TotalPrice)
	})

	t.Run("rejected discount aborts before slot check", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := bk.CreateBookingRequest{
			CourtID:      "court-1",
			Date:         futureDate,
			StartTime:    "19:00",
			DiscountCode: "EXPIRED",
		}

		deps.courts.EXPECT().FindCourtByID(deps.ctx, "court-1").Return(serviceCourt, nil).Times(1)
		deps.discounts.EXPECT().ValidateCode(deps.ctx, "EXPIRED", 30000, futureDate, "19:00").
			Return(discount.Validation{Valid: false, Message: "Este código ha expirado"}, nil).Times(1)
		deps.repo.EXPECT().CountActiveAt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "user-1", req)

		var rejected *discount.RejectedError
		require.ErrorAs(t, err, &rejected)
		require.Equal(t, "Este código ha expirado", rejected.Message)
	})

	t.Run("occupied slot is refused", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := bk.CreateBookingRequest{CourtID: "court-1", Date: futureDate, StartTime: "19:00"}

		deps.courts.EXPECT().FindCourtByID(deps.ctx, "court-1").Return(serviceCourt, nil).Times(1)
		deps.repo.EXPECT().CountActiveAt(deps.ctx, "court-1", futureDate, "19:00").Return(1, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "user-1", req)

		require.ErrorIs(t, err, bk.ErrSlotTaken)
	})

	t.Run("past slot is refused", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := bk.CreateBookingRequest{CourtID: "court-1", Date: "2020-06-04", StartTime: "19:00"}

		deps.courts.EXPECT().FindCourtByID(deps.ctx, "court-1").Return(serviceCourt, nil).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, "user-1", req)

		require.ErrorIs(t, err, bk.ErrPastSlot)
	})

	t.Run("unknown court", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := bk.CreateBookingRequest{CourtID: "nope", Date: futureDate, StartTime: "19:00"}

		deps.courts.EXPECT().FindCourtByID(deps.ctx, "nope").Return(court.Court{}, court.ErrCourtNotFound).Times(1)

		_, err := deps.service.CreateBooking(deps.ctx, "user-1", req)

		require.ErrorIs(t, err, court.ErrCourtNotFound)
	})

	t.Run("failed redemption surfaces as a rejection", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		req := bk.CreateBookingRequest{
			CourtID:      "court-1",
			Date:         futureDate,
			StartTime:    "19:00",
			DiscountCode: "LAST1",
		}

		validation := discount.Validation{
			Valid:    true,
			Discount: 3000,
			Code:     discount.DiscountCode{ID: "code-2", Code: "LAST1"},
		}

		deps.courts.EXPECT().FindCourtByID(deps.ctx, "court-1").Return(serviceCourt, nil).Times(1)
		deps.discounts.EXPECT().ValidateCode(deps.ctx, "LAST1", 30000, futureDate, "19:00").Return(validation, nil).Times(1)
		deps.repo.EXPECT().CountActiveAt(deps.ctx, "court-1", futureDate, "19:00").Return(0, nil).Times(1)
		deps.discounts.EXPECT().Redeem(deps.ctx, "code-2").Return(discount.ErrCodeLimitReached).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, "user-1", req)

		var rejected *discount.RejectedError
		require.ErrorAs(t, err, &rejected)
	})
}

func TestCancelBooking(t *testing.T) {

	t.Run("owner cancels a pending booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := bk.Booking{ID: "b-1", UserID: "user-1", Date: futureDate, Status: bk.StatusPending}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "b-1", bk.StatusCancelled).Return(nil).Times(1)
		deps.cache.EXPECT().Invalidate(deps.ctx, futureDate).Return(nil).Times(1)

		require.NoError(t, deps.service.CancelBooking(deps.ctx, "b-1", "user-1"))
	})

	t.Run("someone else's booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := bk.Booking{ID: "b-1", UserID: "user-1", Status: bk.StatusPending}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(booking, nil).Times(1)

		err := deps.service.CancelBooking(deps.ctx, "b-1", "user-2")

		require.ErrorIs(t, err, bk.ErrNotAllowed)
	})

	t.Run("already cancelled", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := bk.Booking{ID: "b-1", UserID: "user-1", Status: bk.StatusCancelled}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(booking, nil).Times(1)

		err := deps.service.CancelBooking(deps.ctx, "b-1", "user-1")

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})
}

func TestConfirmBooking(t *testing.T) {

	t.Run("pending booking is confirmed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(bk.Booking{ID: "b-1", Status: bk.StatusPending}, nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "b-1", bk.StatusConfirmed).Return(nil).Times(1)

		require.NoError(t, deps.service.ConfirmBooking(deps.ctx, "b-1"))
	})

	t.Run("only pending bookings can be confirmed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(bk.Booking{ID: "b-1", Status: bk.StatusCancelled}, nil).Times(1)

		err := deps.service.ConfirmBooking(deps.ctx, "b-1")

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})
}

func TestCompleteBooking(t *testing.T) {

	t.Run("completion awards loyalty points", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := bk.Booking{
			ID:         "b-1",
			UserID:     "user-1",
			Date:       futureDate,
			Status:     bk.StatusConfirmed,
			TotalPrice: 30000,
		}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "b-1", bk.StatusCompleted).Return(nil).Times(1)
		deps.points.EXPECT().AwardBookingPoints(deps.ctx, "user-1", "b-1", 30).Return(nil).Times(1)
		deps.cache.EXPECT().Invalidate(deps.ctx, futureDate).Return(nil).Times(1)

		require.NoError(t, deps.service.CompleteBooking(deps.ctx, "b-1"))
	})

	t.Run("points failure does not fail completion", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		booking := bk.Booking{
			ID:         "b-1",
			UserID:     "user-1",
			Date:       futureDate,
			Status:     bk.StatusConfirmed,
			TotalPrice: 30000,
		}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(booking, nil).Times(1)
		deps.repo.EXPECT().SetBookingStatus(deps.ctx, "b-1", bk.StatusCompleted).Return(nil).Times(1)
		deps.points.EXPECT().AwardBookingPoints(deps.ctx, "user-1", "b-1", 30).Return(errors.New("points service down")).Times(1)
		deps.cache.EXPECT().Invalidate(deps.ctx, futureDate).Return(nil).Times(1)

		require.NoError(t, deps.service.CompleteBooking(deps.ctx, "b-1"))
	})

	t.Run("only confirmed bookings can be completed", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b-1").Return(bk.Booking{ID: "b-1", Status: bk.StatusPending}, nil).Times(1)

		err := deps.service.CompleteBooking(deps.ctx, "b-1")

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})
}
