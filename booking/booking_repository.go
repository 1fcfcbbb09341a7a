package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

const bookingColumns = `id, user_id, court_id, to_char(booking_date, 'YYYY-MM-DD'), start_time, end_time, status,
            total_price, COALESCE(discount_code, ''), discount_applied, COALESCE(payment_method, ''), payment_status, COALESCE(notes, ''), created_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var booking Booking
	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.CourtID,
		&booking.Date,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Status,
		&booking.TotalPrice,
		&booking.DiscountCode,
		&booking.DiscountApplied,
		&booking.PaymentMethod,
		&booking.PaymentStatus,
		&booking.Notes,
		&booking.CreatedAt,
	)

	return booking, err
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `
			SELECT ` + bookingColumns + `
			FROM "court-booking".bookings
			WHERE id=$1;
		`

	booking, err := scanBooking(r.conn.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	sql := `
            SELECT ` + bookingColumns + `
            FROM "court-booking".bookings
            WHERE user_id=$1
            ORDER BY booking_date DESC, start_time DESC;
        `

	rows, err := r.conn.Query(ctx, sql, userID)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user '%v': %w", userID, err)
	}

	defer rows.Close()

	var bookings []Booking

	for rows.Next() {
		booking, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

// GetOccupanciesForDate lists the slots held on a date by bookings that still
// block the calendar (pending or confirmed).
func (r *Repository) GetOccupanciesForDate(ctx context.Context, date string) ([]Occupancy, error) {
	sql := `
            SELECT court_id, to_char(booking_date, 'YYYY-MM-DD'), start_time
            FROM "court-booking".bookings
            WHERE booking_date=$1 AND status IN ('pending', 'confirmed');
        `

	rows, err := r.conn.Query(ctx, sql, date)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch occupancies for date '%v': %w", date, err)
	}

	defer rows.Close()

	occupancies := []Occupancy{}

	for rows.Next() {
		var occupancy Occupancy
		err := rows.Scan(&occupancy.CourtID, &occupancy.Date, &occupancy.StartTime)

		if err != nil {
			return nil, fmt.Errorf("error scanning occupancy row: %w", err)
		}

		occupancies = append(occupancies, occupancy)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating occupancy rows: %w", err)
	}

	return occupancies, nil
}

func (r *Repository) CountActiveAt(ctx context.Context, courtID, date, startTime string) (int, error) {
	sql := `
            SELECT COUNT(*)
            FROM "court-booking".bookings
            WHERE court_id=$1 AND booking_date=$2 AND start_time=$3
            AND status IN ('pending', 'confirmed');
        `

	var count int
	err := r.conn.QueryRow(ctx, sql, courtID, date, startTime).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count bookings at slot: %w", err)
	}

	return count, nil
}

func (r *Repository) InsertBooking(ctx context.Context, booking Booking) (Booking, error) {
	sql := `
			INSERT INTO "court-booking".bookings(
			id, user_id, court_id, booking_date, start_time, end_time, status,
			total_price, discount_code, discount_applied, payment_method, payment_status, notes)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, NULLIF($11, ''), $12, NULLIF($13, ''))
			RETURNING created_at;
		`

	err := r.conn.QueryRow(ctx, sql,
		booking.ID,
		booking.UserID,
		booking.CourtID,
		booking.Date,
		booking.StartTime,
		booking.EndTime,
		booking.Status,
		booking.TotalPrice,
		booking.DiscountCode,
		booking.DiscountApplied,
		booking.PaymentMethod,
		booking.PaymentStatus,
		booking.Notes,
	).Scan(&booking.CreatedAt)

	if err != nil {
		return Booking{}, fmt.Errorf("failed to insert booking: %w", err)
	}

	return booking, nil
}

func (r *Repository) SetBookingStatus(ctx context.Context, id string, status string) error {
	sql := `
            UPDATE "court-booking".bookings
            SET status=$1
            WHERE id=$2;
        `

	tag, err := r.conn.Exec(ctx, sql, status, id)

	if err != nil {
		return fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type CourtBookingCount struct {
	CourtName string `json:"courtName"`
	Count     int    `json:"bookingCount"`
}

type WeekDayBookingCount struct {
	WeekDay string `json:"dayOfWeek"`
	Count   int    `json:"bookingCount"`
}

func (r *Repository) GetBookingCountPerCourt(ctx context.Context) ([]CourtBookingCount, error) {
	sql := `
		SELECT courts.name, COUNT(*) as booking_count
		FROM "court-booking".bookings
		JOIN "court-booking".courts ON courts.id = bookings.court_id
		WHERE bookings.status IN ('confirmed', 'completed')
		GROUP BY courts.name
		ORDER BY booking_count DESC
	`

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking count per court: %w", err)
	}

	defer rows.Close()

	stats := []CourtBookingCount{}

	for rows.Next() {
		var name string
		var count int
		err := rows.Scan(&name, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, CourtBookingCount{CourtName: name, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return stats, err
}

func (r *Repository) GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error) {
	sql := `
		SELECT
			TO_CHAR(booking_date, 'Day') as day_of_week,
			COUNT(*) as booking_count
		FROM
			"court-booking".bookings
		WHERE status IN ('confirmed', 'completed')
		GROUP BY
			TO_CHAR(booking_date, 'Day')
		ORDER BY
			booking_count DESC;
	`

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking count per weekday: %w", err)
	}

	defer rows.Close()

	stats := []WeekDayBookingCount{}

	for rows.Next() {
		var weekDay string
		var count int
		err := rows.Scan(&weekDay, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, WeekDayBookingCount{WeekDay: weekDay, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return stats, err
}

func (r *Repository) GetBookingCountPerCourtInPeriod(ctx context.Context, start, end time.Time) ([]CourtBookingCount, error) {
	sql := `
		SELECT courts.name, COUNT(*) as booking_count
		FROM "court-booking".bookings
		JOIN "court-booking".courts ON courts.id = bookings.court_id
		WHERE bookings.booking_date BETWEEN $1 AND $2
		AND bookings.status IN ('confirmed', 'completed')
		GROUP BY courts.name
		ORDER BY booking_count DESC
	`

	rows, err := r.conn.Query(ctx, sql, start, end)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking count per court: %w", err)
	}

	defer rows.Close()

	stats := []CourtBookingCount{}

	for rows.Next() {
		var name string
		var count int
		err := rows.Scan(&name, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, CourtBookingCount{CourtName: name, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return stats, err
}
