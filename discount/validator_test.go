package discount_test

import (
	"testing"

	"github.com/lacancha/court-booking-backend/discount"
	"github.com/stretchr/testify/require"
)

const today = "2030-06-04"

func save10() discount.DiscountCode {
	return discount.DiscountCode{
		ID:            "code-1",
		Code:          "SAVE10",
		DiscountType:  discount.TypePercentage,
		DiscountValue: 10,
		MinAmount:     20000,
		MaxUses:       100,
		UsedCount:     5,
		ValidFrom:     "2020-01-01",
		ValidUntil:    "2099-12-31",
		Active:        true,
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid percentage code", func(t *testing.T) {
		v := discount.Validate(save10(), 25000, "2030-06-06", "19:00", today)

		require.True(t, v.Valid)
		require.Equal(t, 2500, v.Discount)
		require.Equal(t, "Descuento aplicado: $2500", v.Message)
		require.Equal(t, "SAVE10", v.Code.Code)
	})

	t.Run("not yet available", func(t *testing.T) {
		code := save10()
		code.ValidFrom = "2030-07-01"

		v := discount.Validate(code, 25000, "2030-06-06", "19:00", today)

		require.False(t, v.Valid)
		require.Zero(t, v.Discount)
		require.Equal(t, "Este código aún no está disponible", v.Message)
	})

	t.Run("expired", func(t *testing.T) {
		code := save10()
		code.ValidUntil = "2030-05-31"

		v := discount.Validate(code, 25000, "2030-06-06", "19:00", today)

		require.False(t, v.Valid)
		require.Equal(t, "Este código ha expirado", v.Message)
	})

	t.Run("usage limit reached", func(t *testing.T) {
		code := save10()
		code.MaxUses = 1
		code.UsedCount = 1

		v := discount.Validate(code, 25000, "2030-06-06", "19:00", today)

		require.False(t, v.Valid)
		require.Equal(t, "Este código ha alcanzado su límite de usos", v.Message)
	})

	t.Run("below minimum amount", func(t *testing.T) {
		v := discount.Validate(save10(), 15000, "2030-06-06", "19:00", today)

		require.False(t, v.Valid)
		require.Equal(t, "El monto mínimo para este código es $20000", v.Message)
	})

	t.Run("day restriction", func(t *testing.T) {
		code := save10()
		code.DayRestrictions = []string{"monday", "tuesday"}

		// 2030-06-06 is a Thursday.
		v := discount.Validate(code, 25000, "2030-06-06", "19:00", today)

		require.False(t, v.Valid)
		require.Equal(t, "Este código solo es válido para: Lunes, Martes", v.Message)

		// 2030-06-04 is a Tuesday.
		v = discount.Validate(code, 25000, "2030-06-04", "19:00", today)

		require.True(t, v.Valid)
	})

	t.Run("time window", func(t *testing.T) {
		code := save10()
		code.TimeStart = "19:00"
		code.TimeEnd = "21:00"

		v := discount.Validate(code, 25000, "2030-06-06", "22:00", today)

		require.False(t, v.Valid)
		require.Equal(t, "Este código solo es válido entre 19:00 y 21:00", v.Message)

		// Bounds are inclusive.
		require.True(t, discount.Validate(code, 25000, "2030-06-06", "19:00", today).Valid)
		require.True(t, discount.Validate(code, 25000, "2030-06-06", "21:00", today).Valid)
	})

	t.Run("rule order: dates before usage before amount", func(t *testing.T) {
		code := save10()
		code.ValidUntil = "2030-05-31"
		code.MaxUses = 1
		code.UsedCount = 1

		v := discount.Validate(code, 1000, "2030-06-06", "19:00", today)

		require.Equal(t, "Este código ha expirado", v.Message)
	})
}

func TestAmount(t *testing.T) {
	t.Run("percentage rounds to nearest unit", func(t *testing.T) {
		code := discount.DiscountCode{DiscountType: discount.TypePercentage, DiscountValue: 15}

		require.Equal(t, 3750, discount.Amount(code, 25000))
		require.Equal(t, 38, discount.Amount(code, 250))
	})

	t.Run("fixed amount", func(t *testing.T) {
		code := discount.DiscountCode{DiscountType: discount.TypeFixed, DiscountValue: 5000}

		require.Equal(t, 5000, discount.Amount(code, 25000))
	})

	t.Run("never exceeds the booking total", func(t *testing.T) {
		code := discount.DiscountCode{DiscountType: discount.TypeFixed, DiscountValue: 30000}

		require.Equal(t, 25000, discount.Amount(code, 25000))
	})

	t.Run("never negative", func(t *testing.T) {
		code := discount.DiscountCode{DiscountType: discount.TypeFixed, DiscountValue: -100}

		require.Zero(t, discount.Amount(code, 25000))
	})
}
