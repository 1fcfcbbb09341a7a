package discount

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

const codeColumns = `id, code, description, discount_type, discount_value,
            COALESCE(min_amount, 0), COALESCE(max_uses, 0), used_count,
            to_char(valid_from, 'YYYY-MM-DD'), COALESCE(to_char(valid_until, 'YYYY-MM-DD'), ''),
            COALESCE(day_restrictions, '{}'), COALESCE(time_start, ''), COALESCE(time_end, ''), active`

func scanCode(row pgx.Row) (DiscountCode, error) {
	var code DiscountCode
	err := row.Scan(
		&code.ID,
		&code.Code,
		&code.Description,
		&code.DiscountType,
		&code.DiscountValue,
		&code.MinAmount,
		&code.MaxUses,
		&code.UsedCount,
		&code.ValidFrom,
		&code.ValidUntil,
		&code.DayRestrictions,
		&code.TimeStart,
		&code.TimeEnd,
		&code.Active,
	)

	return code, err
}

func (r *Repository) GetActiveCodes(ctx context.Context) ([]DiscountCode, error) {
	sql := `
            SELECT ` + codeColumns + `
            FROM "court-booking".discount_codes
            WHERE active = true
            ORDER BY code;
        `

	rows, err := r.conn.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch discount codes: %w", err)
	}

	defer rows.Close()

	var codes []DiscountCode

	for rows.Next() {
		code, err := scanCode(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning discount code row: %w", err)
		}

		codes = append(codes, code)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating discount code rows: %w", err)
	}

	return codes, nil
}

// GetByCode matches case-insensitively and only returns live codes.
func (r *Repository) GetByCode(ctx context.Context, code string) (DiscountCode, error) {
	sql := `
			SELECT ` + codeColumns + `
			FROM "court-booking".discount_codes
			WHERE UPPER(code)=UPPER($1) AND active = true;
		`

	found, err := scanCode(r.conn.QueryRow(ctx, sql, code))

	if errors.Is(err, pgx.ErrNoRows) {
		return DiscountCode{}, ErrCodeNotFound
	}

	if err != nil {
		return DiscountCode{}, fmt.Errorf("failed to fetch discount code '%v': %w", code, err)
	}

	return found, nil
}

// RedeemCode increments used_count by one, but only while the code is still
// under its usage limit. The conditional update makes concurrent redemptions
// near the limit safe: the losing writer affects zero rows.
func (r *Repository) RedeemCode(ctx context.Context, id string) error {
	sql := `
            UPDATE "court-booking".discount_codes
            SET used_count = used_count + 1
            WHERE id=$1 AND active = true
            AND (max_uses IS NULL OR used_count < max_uses);
        `

	tag, err := r.conn.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to redeem discount code '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCodeLimitReached
	}

	return nil
}
