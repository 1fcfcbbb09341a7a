package court

import (
	"strconv"
	"strings"
	"time"
)

const nightHour = 18

// PriceFor returns the tier price for a booking on the given date at the
// given hour. The weekend tier wins over the night tier, so a Saturday
// evening is billed at the weekend rate.
func PriceFor(c Court, date time.Time, hour int) int {
	if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
		return c.PriceWeekend
	}

	if hour >= nightHour {
		return c.PriceNight
	}

	return c.PriceDay
}

// HourOf extracts the hour from a "HH:MM" slot label.
func HourOf(slotTime string) int {
	hour, err := strconv.Atoi(strings.SplitN(slotTime, ":", 2)[0])

	if err != nil {
		return 0
	}

	return hour
}
