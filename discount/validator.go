package discount

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"
)

type Validation struct {
	Valid    bool         `json:"valid"`
	Discount int          `json:"discount"`
	Message  string       `json:"message"`
	Code     DiscountCode `json:"code,omitempty"`
}

var dayNames = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

var spanishDays = map[string]string{
	"monday":    "Lunes",
	"tuesday":   "Martes",
	"wednesday": "Miércoles",
	"thursday":  "Jueves",
	"friday":    "Viernes",
	"saturday":  "Sábado",
	"sunday":    "Domingo",
}

func invalid(message string) Validation {
	return Validation{Valid: false, Discount: 0, Message: message}
}

// Validate checks a code against a booking. Each rule short-circuits with its
// own user-facing message; rule order matters. Existence and the active flag
// are the repository's concern, so a code passed here is already live.
func Validate(code DiscountCode, amount int, bookingDate, bookingTime, today string) Validation {
	if code.ValidFrom > today {
		return invalid("Este código aún no está disponible")
	}

	if code.ValidUntil != "" && code.ValidUntil < today {
		return invalid("Este código ha expirado")
	}

	if code.MaxUses > 0 && code.UsedCount >= code.MaxUses {
		return invalid("Este código ha alcanzado su límite de usos")
	}

	if code.MinAmount > 0 && amount < code.MinAmount {
		return invalid(fmt.Sprintf("El monto mínimo para este código es $%d", code.MinAmount))
	}

	if !allowedOnDay(code, bookingDate) {
		allowed := make([]string, 0, len(code.DayRestrictions))

		for _, day := range code.DayRestrictions {
			name, ok := spanishDays[day]

			if !ok {
				name = day
			}

			allowed = append(allowed, name)
		}

		return invalid(fmt.Sprintf("Este código solo es válido para: %s", strings.Join(allowed, ", ")))
	}

	if !allowedAtTime(code, bookingTime) {
		return invalid(fmt.Sprintf("Este código solo es válido entre %s y %s", code.TimeStart, code.TimeEnd))
	}

	discount := Amount(code, amount)

	return Validation{
		Valid:    true,
		Discount: discount,
		Message:  fmt.Sprintf("Descuento aplicado: $%d", discount),
		Code:     code,
	}
}

// Amount computes the discount for a booking total: percentage codes round to
// the nearest unit, fixed codes use their value. The result is clamped into
// [0, amount].
func Amount(code DiscountCode, amount int) int {
	var discount int

	if code.DiscountType == TypePercentage {
		discount = int(math.Round(float64(amount) * float64(code.DiscountValue) / 100))
	} else {
		discount = code.DiscountValue
	}

	if discount > amount {
		discount = amount
	}

	if discount < 0 {
		discount = 0
	}

	return discount
}

func allowedOnDay(code DiscountCode, bookingDate string) bool {
	if len(code.DayRestrictions) == 0 {
		return true
	}

	date, err := time.Parse(time.DateOnly, bookingDate)

	if err != nil {
		return false
	}

	return slices.Contains(code.DayRestrictions, dayNames[int(date.Weekday())])
}

func allowedAtTime(code DiscountCode, bookingTime string) bool {
	if code.TimeStart == "" || code.TimeEnd == "" {
		return true
	}

	minutes := timeToMinutes(bookingTime)

	return minutes >= timeToMinutes(code.TimeStart) && minutes <= timeToMinutes(code.TimeEnd)
}

func timeToMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)

	if len(parts) != 2 {
		return 0
	}

	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])

	return hours*60 + minutes
}
