package booking

import (
	"fmt"
	"time"

	"github.com/lacancha/court-booking-backend/court"
)

// Slot states reported by the schedule grid.
const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
	SlotPast      = "past"
)

// TimeSlot is a derived value, rebuilt for every schedule request.
type TimeSlot struct {
	ID        string `json:"id"`
	CourtID   string `json:"courtId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Price     int    `json:"price"`
	Available bool   `json:"available"`
	State     string `json:"state"`
}

// Occupancy identifies a slot held by a pending or confirmed booking.
type Occupancy struct {
	CourtID   string `json:"courtId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}

// DefaultHours is the bookable grid: 19:00 through 23:00, one-hour blocks.
func DefaultHours() []string {
	hours := make([]string, 5)

	for i := range hours {
		hours[i] = fmt.Sprintf("%02d:00", 19+i)
	}

	return hours
}

// WeekDates returns the Monday-start week containing anchor.
func WeekDates(anchor time.Time) []time.Time {
	weekday := int(anchor.Weekday())

	if weekday == 0 {
		weekday = 7
	}

	monday := anchor.AddDate(0, 0, 1-weekday)

	dates := make([]time.Time, 7)

	for i := range dates {
		dates[i] = monday.AddDate(0, 0, i)
	}

	return dates
}

// GenerateSlots builds the candidate grid: every court on every date at every
// hour, each priced through the court's tier rules. Pure function; an empty
// court list yields an empty grid.
func GenerateSlots(courts []court.Court, dates []time.Time, hours []string) []TimeSlot {
	slots := []TimeSlot{}

	for _, c := range courts {
		for _, date := range dates {
			dateStr := date.Format(time.DateOnly)

			for _, hour := range hours {
				slots = append(slots, TimeSlot{
					ID:      fmt.Sprintf("%s-%s-%s", c.ID, dateStr, hour),
					CourtID: c.ID,
					Date:    dateStr,
					Time:    hour,
					Price:   court.PriceFor(c, date, court.HourOf(hour)),
				})
			}
		}
	}

	return slots
}

// Annotate marks each candidate slot available or not: a slot is taken when a
// pending/confirmed booking matches its exact (court, date, start time), and
// unavailable when its start lies strictly before now. The input slice is not
// mutated.
func Annotate(slots []TimeSlot, occupancies []Occupancy, now time.Time) []TimeSlot {
	taken := make(map[string]bool, len(occupancies))

	for _, o := range occupancies {
		taken[occupancyKey(o.CourtID, o.Date, o.StartTime)] = true
	}

	annotated := make([]TimeSlot, len(slots))

	for i, slot := range slots {
		annotated[i] = slot

		switch {
		case SlotInstant(slot.Date, slot.Time).Before(now):
			annotated[i].State = SlotPast
		case taken[occupancyKey(slot.CourtID, slot.Date, slot.Time)]:
			annotated[i].State = SlotBooked
		default:
			annotated[i].State = SlotAvailable
			annotated[i].Available = true
		}
	}

	return annotated
}

// SlotInstant resolves a (date, "HH:MM") pair to its local start instant.
func SlotInstant(date, slotTime string) time.Time {
	instant, err := time.ParseInLocation("2006-01-02 15:04", date+" "+slotTime, time.Local)

	if err != nil {
		return time.Time{}
	}

	return instant
}

func occupancyKey(courtID, date, startTime string) string {
	return courtID + "|" + date + "|" + startTime
}
