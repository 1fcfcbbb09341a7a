package discount

import (
	"context"
	"errors"
	"time"
)

type DiscountRepository interface {
	GetActiveCodes(ctx context.Context) ([]DiscountCode, error)
	GetByCode(ctx context.Context, code string) (DiscountCode, error)
	RedeemCode(ctx context.Context, id string) error
}

type Service struct {
	repo DiscountRepository
}

func NewService(repo DiscountRepository) *Service {
	return &Service{repo: repo}
}

// ValidateCode resolves a code and runs it through the rule chain. An unknown
// or inactive code is a validation outcome, not an error.
func (s *Service) ValidateCode(ctx context.Context, code string, amount int, bookingDate, bookingTime string) (Validation, error) {
	found, err := s.repo.GetByCode(ctx, code)

	if errors.Is(err, ErrCodeNotFound) {
		return invalid("Código de descuento no válido"), nil
	}

	if err != nil {
		return Validation{}, err
	}

	today := time.Now().Format(time.DateOnly)

	return Validate(found, amount, bookingDate, bookingTime, today), nil
}

func (s *Service) Redeem(ctx context.Context, id string) error {
	return s.repo.RedeemCode(ctx, id)
}

// AvailableCodesFor lists the live codes a customer could apply to a booking
// at the given date and time, ignoring amount-dependent rules.
func (s *Service) AvailableCodesFor(ctx context.Context, bookingDate, bookingTime string) ([]DiscountCode, error) {
	codes, err := s.repo.GetActiveCodes(ctx)

	if err != nil {
		return nil, err
	}

	today := time.Now().Format(time.DateOnly)

	available := []DiscountCode{}

	for _, code := range codes {
		if code.ValidFrom > today {
			continue
		}

		if code.ValidUntil != "" && code.ValidUntil < today {
			continue
		}

		if code.MaxUses > 0 && code.UsedCount >= code.MaxUses {
			continue
		}

		if !allowedOnDay(code, bookingDate) || !allowedAtTime(code, bookingTime) {
			continue
		}

		available = append(available, code)
	}

	return available, nil
}
