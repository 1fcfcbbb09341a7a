package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lacancha/court-booking-backend/court"
	"github.com/lacancha/court-booking-backend/discount"
)

type BookingRepository interface {
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error)
	GetOccupanciesForDate(ctx context.Context, date string) ([]Occupancy, error)
	CountActiveAt(ctx context.Context, courtID, date, startTime string) (int, error)
	InsertBooking(ctx context.Context, booking Booking) (Booking, error)
	SetBookingStatus(ctx context.Context, id string, status string) error
	GetBookingCountPerCourt(ctx context.Context) ([]CourtBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error)
	GetBookingCountPerCourtInPeriod(ctx context.Context, start, end time.Time) ([]CourtBookingCount, error)
}

type CourtSource interface {
	GetActiveCourts(ctx context.Context) ([]court.Court, error)
	FindCourtByID(ctx context.Context, id string) (court.Court, error)
}

type DiscountRedeemer interface {
	ValidateCode(ctx context.Context, code string, amount int, bookingDate, bookingTime string) (discount.Validation, error)
	Redeem(ctx context.Context, id string) error
}

type ScheduleCache interface {
	GetOccupancies(ctx context.Context, date string) ([]Occupancy, bool, error)
	SetOccupancies(ctx context.Context, date string, occupancies []Occupancy) error
	Invalidate(ctx context.Context, date string) error
}

type PointsAwarder interface {
	AwardBookingPoints(ctx context.Context, userID, bookingID string, points int) error
}

// One loyalty point per 1000 spent, credited when a booking completes.
const pointsPerUnit = 1000

const (
	ViewDay  = "day"
	ViewWeek = "week"
)

type Service struct {
	repo      BookingRepository
	courts    CourtSource
	discounts DiscountRedeemer
	cache     ScheduleCache
	points    PointsAwarder
	logger    *slog.Logger
}

func NewService(repo BookingRepository, courts CourtSource, discounts DiscountRedeemer, cache ScheduleCache, points PointsAwarder) *Service {
	return &Service{
		repo:      repo,
		courts:    courts,
		discounts: discounts,
		cache:     cache,
		points:    points,
		logger:    slog.Default().With("component", "booking"),
	}
}

// GetSchedule builds the annotated slot grid for a day or a Monday-start
// week around anchor.
func (s *Service) GetSchedule(ctx context.Context, anchor time.Time, view string) ([]TimeSlot, error) {
	dates := []time.Time{anchor}

	if view == ViewWeek {
		dates = WeekDates(anchor)
	}

	courts, err := s.courts.GetActiveCourts(ctx)

	if err != nil {
		return nil, err
	}

	var occupancies []Occupancy

	for _, date := range dates {
		dayOccupancies, err := s.occupanciesFor(ctx, date.Format(time.DateOnly))

		if err != nil {
			return nil, err
		}

		occupancies = append(occupancies, dayOccupancies...)
	}

	slots := GenerateSlots(courts, dates, DefaultHours())

	return Annotate(slots, occupancies, time.Now()), nil
}

// occupanciesFor checks the Redis day cache first; a cache failure falls back
// to Postgres rather than failing the request.
func (s *Service) occupanciesFor(ctx context.Context, date string) ([]Occupancy, error) {
	cached, found, err := s.cache.GetOccupancies(ctx, date)

	if err != nil {
		s.logger.Warn("occupancy cache read failed", "date", date, "err", err)
	} else if found {
		return cached, nil
	}

	occupancies, err := s.repo.GetOccupanciesForDate(ctx, date)

	if err != nil {
		return nil, err
	}

	if err := s.cache.SetOccupancies(ctx, date, occupancies); err != nil {
		s.logger.Warn("occupancy cache write failed", "date", date, "err", err)
	}

	return occupancies, nil
}

type CreateBookingRequest struct {
	CourtID       string `json:"courtId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	PaymentMethod string `json:"paymentMethod"`
	DiscountCode  string `json:"discountCode"`
	Notes         string `json:"notes"`
}

// CreateBooking persists a pending booking for a one-hour slot. The tier
// price is recomputed server-side, an optional discount code is validated and
// redeemed, and the slot is re-checked against pending/confirmed bookings.
func (s *Service) CreateBooking(ctx context.Context, userID string, req CreateBookingRequest) (Booking, error) {
	bookingCourt, err := s.courts.FindCourtByID(ctx, req.CourtID)

	if err != nil {
		return Booking{}, err
	}

	date, err := time.Parse(time.DateOnly, req.Date)

	if err != nil {
		return Booking{}, fmt.Errorf("invalid booking date '%v': %w", req.Date, err)
	}

	if SlotInstant(req.Date, req.StartTime).Before(time.Now()) {
		return Booking{}, ErrPastSlot
	}

	price := court.PriceFor(bookingCourt, date, court.HourOf(req.StartTime))

	var validation discount.Validation

	if req.DiscountCode != "" {
		validation, err = s.discounts.ValidateCode(ctx, req.DiscountCode, price, req.Date, req.StartTime)

		if err != nil {
			return Booking{}, err
		}

		if !validation.Valid {
			return Booking{}, &discount.RejectedError{Message: validation.Message}
		}
	}

	count, err := s.repo.CountActiveAt(ctx, req.CourtID, req.Date, req.StartTime)

	if err != nil {
		return Booking{}, err
	}

	if count > 0 {
		return Booking{}, ErrSlotTaken
	}

	if validation.Valid {
		// Redeemed before insert so the usage limit can never be overrun;
		// the conditional increment is the arbiter under concurrency.
		if err := s.discounts.Redeem(ctx, validation.Code.ID); err != nil {
			return Booking{}, &discount.RejectedError{Message: "Este código ha alcanzado su límite de usos"}
		}
	}

	booking := Booking{
		ID:              uuid.NewString(),
		UserID:          userID,
		CourtID:         req.CourtID,
		Date:            req.Date,
		StartTime:       req.StartTime,
		EndTime:         endTimeAfter(req.StartTime),
		Status:          StatusPending,
		TotalPrice:      price - validation.Discount,
		DiscountCode:    validation.Code.Code,
		DiscountApplied: validation.Discount,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   PaymentPending,
		Notes:           req.Notes,
	}

	inserted, err := s.repo.InsertBooking(ctx, booking)

	if err != nil {
		return Booking{}, err
	}

	s.invalidateDay(ctx, req.Date)

	return inserted, nil
}

func (s *Service) CancelBooking(ctx context.Context, id, userID string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status == StatusCancelled || booking.Status == StatusCompleted {
		return ErrInvalidBookingState
	}

	if booking.UserID != userID {
		return ErrNotAllowed
	}

	err = s.repo.SetBookingStatus(ctx, id, StatusCancelled)

	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.invalidateDay(ctx, booking.Date)

	return nil
}

func (s *Service) ConfirmBooking(ctx context.Context, id string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status != StatusPending {
		return ErrInvalidBookingState
	}

	return s.repo.SetBookingStatus(ctx, id, StatusConfirmed)
}

func (s *Service) CompleteBooking(ctx context.Context, id string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status != StatusConfirmed {
		return ErrInvalidBookingState
	}

	err = s.repo.SetBookingStatus(ctx, id, StatusCompleted)

	if err != nil {
		return err
	}

	points := booking.TotalPrice / pointsPerUnit

	if points > 0 {
		if err := s.points.AwardBookingPoints(ctx, booking.UserID, booking.ID, points); err != nil {
			s.logger.Warn("failed to award booking points", "bookingId", booking.ID, "err", err)
		}
	}

	s.invalidateDay(ctx, booking.Date)

	return nil
}

func (s *Service) FindBookingByID(ctx context.Context, id string) (Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

func (s *Service) FindBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.GetBookingsPerUser(ctx, userID)
}

func (s *Service) GetBookingCountPerCourt(ctx context.Context) ([]CourtBookingCount, error) {
	return s.repo.GetBookingCountPerCourt(ctx)
}

func (s *Service) GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error) {
	return s.repo.GetBookingCountPerWeekDay(ctx)
}

func (s *Service) GetBookingCountPerCourtInPeriod(ctx context.Context, start, end time.Time) ([]CourtBookingCount, error) {
	return s.repo.GetBookingCountPerCourtInPeriod(ctx, start, end)
}

func (s *Service) invalidateDay(ctx context.Context, date string) {
	if err := s.cache.Invalidate(ctx, date); err != nil {
		s.logger.Warn("occupancy cache invalidation failed", "date", date, "err", err)
	}
}

// endTimeAfter derives the end label one hour after a "HH:MM" start.
func endTimeAfter(startTime string) string {
	parts := strings.SplitN(startTime, ":", 2)

	if len(parts) != 2 {
		return startTime
	}

	return fmt.Sprintf("%02d:%s", court.HourOf(startTime)+1, parts[1])
}
