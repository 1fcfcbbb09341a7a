package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) InsertUser(ctx context.Context, user User, passwordHash string) (User, error) {
	sql := `
			INSERT INTO "court-booking".users(email, password_hash, name, phone, role, membership_type)
			VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
			RETURNING id;
		`

	err := r.conn.QueryRow(ctx, sql,
		user.Email,
		passwordHash,
		user.Name,
		user.Phone,
		user.Role,
		user.MembershipType,
	).Scan(&user.ID)

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return User{}, ErrEmailTaken
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (User, string, error) {
	sql := `
			SELECT id, email, name, COALESCE(phone, ''), role, membership_type, points, total_bookings, password_hash
			FROM "court-booking".users
			WHERE email=$1;
		`

	var user User
	var passwordHash string
	err := r.conn.QueryRow(ctx, sql, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Phone,
		&user.Role,
		&user.MembershipType,
		&user.Points,
		&user.TotalBookings,
		&passwordHash,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, "", ErrUserNotFound
	}

	if err != nil {
		return User{}, "", fmt.Errorf("failed to fetch user by email: %w", err)
	}

	return user, passwordHash, nil
}

func (r *Repository) GetUserByID(ctx context.Context, id string) (User, error) {
	sql := `
			SELECT id, email, name, COALESCE(phone, ''), role, membership_type, points, total_bookings
			FROM "court-booking".users
			WHERE id=$1;
		`

	var user User
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Phone,
		&user.Role,
		&user.MembershipType,
		&user.Points,
		&user.TotalBookings,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, ErrUserNotFound
	}

	if err != nil {
		return User{}, fmt.Errorf("failed to fetch user with id %v: %w", id, err)
	}

	return user, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, id, name, phone string) error {
	sql := `
            UPDATE "court-booking".users
            SET name=$1, phone=NULLIF($2, ''), updated_at=now()
            WHERE id=$3;
        `

	tag, err := r.conn.Exec(ctx, sql, name, phone, id)

	if err != nil {
		return fmt.Errorf("failed to update profile for user '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}

	return nil
}
