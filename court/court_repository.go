package court

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Repository struct{ conn *pgx.Conn }

func NewRepository(conn *pgx.Conn) *Repository {
	return &Repository{conn: conn}
}

func (r *Repository) GetActiveCourts(ctx context.Context) ([]Court, error) {
	sql := `SELECT id, name, type, surface, capacity, price_day, price_night, price_weekend, features, active
            FROM "court-booking".courts
            WHERE active = true
            ORDER BY name;
        `

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}

	defer rows.Close()

	var courts []Court

	for rows.Next() {
		var court Court
		err := rows.Scan(
			&court.ID,
			&court.Name,
			&court.Type,
			&court.Surface,
			&court.Capacity,
			&court.PriceDay,
			&court.PriceNight,
			&court.PriceWeekend,
			&court.Features,
			&court.Active,
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning court row: %w", err)
		}

		courts = append(courts, court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating court rows: %w", err)
	}

	return courts, nil
}

func (r *Repository) GetCourtByID(ctx context.Context, id string) (Court, error) {
	sql := `
			SELECT id, name, type, surface, capacity, price_day, price_night, price_weekend, features, active
			FROM "court-booking".courts
			WHERE id=$1;
		`

	var court Court
	err := r.conn.QueryRow(ctx, sql, id).Scan(
		&court.ID,
		&court.Name,
		&court.Type,
		&court.Surface,
		&court.Capacity,
		&court.PriceDay,
		&court.PriceNight,
		&court.PriceWeekend,
		&court.Features,
		&court.Active,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Court{}, ErrCourtNotFound
	}

	if err != nil {
		return Court{}, fmt.Errorf("failed to fetch court with id %v: %w", id, err)
	}

	return court, nil
}

func (r *Repository) InsertCourt(ctx context.Context, court Court) (Court, error) {
	sql := `
			INSERT INTO "court-booking".courts(
			name, type, surface, capacity, price_day, price_night, price_weekend, features, active)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id;
		`

	err := r.conn.QueryRow(ctx, sql,
		court.Name,
		court.Type,
		court.Surface,
		court.Capacity,
		court.PriceDay,
		court.PriceNight,
		court.PriceWeekend,
		court.Features,
		court.Active,
	).Scan(&court.ID)

	if err != nil {
		return Court{}, fmt.Errorf("failed to insert court: %w", err)
	}

	return court, nil
}

func (r *Repository) SetCourtActive(ctx context.Context, id string, active bool) error {
	sql := `
            UPDATE "court-booking".courts
            SET active=$1
            WHERE id=$2;
        `

	tag, err := r.conn.Exec(ctx, sql, active, id)

	if err != nil {
		return fmt.Errorf("failed to update court '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCourtNotFound
	}

	return nil
}
