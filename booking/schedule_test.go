package booking_test

import (
	"fmt"
	"testing"
	"time"

	bk "github.com/lacancha/court-booking-backend/booking"
	"github.com/lacancha/court-booking-backend/court"
	"github.com/stretchr/testify/require"
)

var scheduleCourts = []court.Court{
	{
		ID:           "court-1",
		Name:         "Cancha Central",
		PriceDay:     24000,
		PriceNight:   30000,
		PriceWeekend: 28000,
		Active:       true,
	},
	{
		ID:           "court-2",
		Name:         "Cancha Techada",
		PriceDay:     26000,
		PriceNight:   32000,
		PriceWeekend: 30000,
		Active:       true,
	},
}

func TestDefaultHours(t *testing.T) {
	require.Equal(t, []string{"19:00", "20:00", "21:00", "22:00", "23:00"}, bk.DefaultHours())
}

func TestWeekDates(t *testing.T) {
	t.Run("midweek anchor", func(t *testing.T) {
		anchor := time.Date(2030, time.June, 5, 0, 0, 0, 0, time.Local) // Wednesday
		dates := bk.WeekDates(anchor)

		require.Len(t, dates, 7)
		require.Equal(t, time.Monday, dates[0].Weekday())
		require.Equal(t, "2030-06-03", dates[0].Format(time.DateOnly))
		require.Equal(t, "2030-06-09", dates[6].Format(time.DateOnly))
	})

	t.Run("sunday belongs to the week it ends", func(t *testing.T) {
		anchor := time.Date(2030, time.June, 9, 0, 0, 0, 0, time.Local) // Sunday
		dates := bk.WeekDates(anchor)

		require.Equal(t, "2030-06-03", dates[0].Format(time.DateOnly))
		require.Equal(t, "2030-06-09", dates[6].Format(time.DateOnly))
	})
}

func TestGenerateSlots(t *testing.T) {
	tuesday := time.Date(2030, time.June, 4, 0, 0, 0, 0, time.Local)
	saturday := time.Date(2030, time.June, 8, 0, 0, 0, 0, time.Local)

	slots := bk.GenerateSlots(scheduleCourts, []time.Time{tuesday, saturday}, bk.DefaultHours())

	// 2 courts x 2 dates x 5 hours
	require.Len(t, slots, 20)

	first := slots[0]
	require.Equal(t, "court-1-2030-06-04-19:00", first.ID)
	require.Equal(t, "court-1", first.CourtID)
	require.Equal(t, "2030-06-04", first.Date)
	require.Equal(t, "19:00", first.Time)
	require.Equal(t, 30000, first.Price)

	priceByID := map[string]int{}

	for _, slot := range slots {
		require.Equal(t, fmt.Sprintf("%s-%s-%s", slot.CourtID, slot.Date, slot.Time), slot.ID)
		priceByID[slot.ID] = slot.Price
	}

	require.Equal(t, 28000, priceByID["court-1-2030-06-08-19:00"])
	require.Equal(t, 32000, priceByID["court-2-2030-06-04-21:00"])

	t.Run("no courts yields empty grid", func(t *testing.T) {
		require.Empty(t, bk.GenerateSlots(nil, []time.Time{tuesday}, bk.DefaultHours()))
	})
}

func TestAnnotate(t *testing.T) {
	date := time.Date(2030, time.June, 4, 0, 0, 0, 0, time.Local)
	slots := bk.GenerateSlots(scheduleCourts[:1], []time.Time{date}, bk.DefaultHours())

	occupancies := []bk.Occupancy{
		{CourtID: "court-1", Date: "2030-06-04", StartTime: "20:00"},
	}

	t.Run("occupied slot is booked, the rest available", func(t *testing.T) {
		now := time.Date(2030, time.June, 1, 12, 0, 0, 0, time.Local)
		annotated := bk.Annotate(slots, occupancies, now)

		byTime := map[string]bk.TimeSlot{}

		for _, slot := range annotated {
			byTime[slot.Time] = slot
		}

		require.Equal(t, bk.SlotBooked, byTime["20:00"].State)
		require.False(t, byTime["20:00"].Available)
		require.Equal(t, bk.SlotAvailable, byTime["19:00"].State)
		require.True(t, byTime["19:00"].Available)
	})

	t.Run("past slots are never available even when free", func(t *testing.T) {
		now := time.Date(2030, time.June, 4, 20, 30, 0, 0, time.Local)
		annotated := bk.Annotate(slots, nil, now)

		byTime := map[string]bk.TimeSlot{}

		for _, slot := range annotated {
			byTime[slot.Time] = slot
		}

		require.Equal(t, bk.SlotPast, byTime["19:00"].State)
		require.False(t, byTime["19:00"].Available)
		require.Equal(t, bk.SlotPast, byTime["20:00"].State)
		require.Equal(t, bk.SlotAvailable, byTime["21:00"].State)
		require.True(t, byTime["21:00"].Available)
	})

	t.Run("adding occupancies only removes availability", func(t *testing.T) {
		now := time.Date(2030, time.June, 1, 12, 0, 0, 0, time.Local)

		sparse := bk.Annotate(slots, occupancies, now)
		more := append([]bk.Occupancy{{CourtID: "court-1", Date: "2030-06-04", StartTime: "21:00"}}, occupancies...)
		dense := bk.Annotate(slots, more, now)

		for i := range sparse {
			if dense[i].Available {
				require.True(t, sparse[i].Available)
			}
		}
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		now := time.Date(2030, time.June, 1, 12, 0, 0, 0, time.Local)
		bk.Annotate(slots, occupancies, now)

		for _, slot := range slots {
			require.Empty(t, slot.State)
			require.False(t, slot.Available)
		}
	})
}
