package booking

import (
	"time"

	"github.com/nihalpictures/studio-api/internal/models"
)

// DayAvailability classifies one calendar day by the bookings dated on it.
type DayAvailability string

const (
	// DayAvailable: no bookings at all.
	DayAvailable DayAvailability = "available"
	// DayFree: bookings exist but all are cancelled or completed.
	DayFree DayAvailability = "free"
	// DayBusy: at least one confirmed or in-progress booking.
	DayBusy DayAvailability = "busy"
	// DayPending: only requested bookings remain.
	DayPending DayAvailability = "pending"
)

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Date           string          `json:"date"`
	IsCurrentMonth bool            `json:"isCurrentMonth"`
	IsToday        bool            `json:"isToday"`
	Availability   DayAvailability `json:"availability"`
	BookingCount   int             `json:"bookingCount"`
}

// ClassifyDay is a pure function of the day's bookings.
func ClassifyDay(bookings []models.Booking) DayAvailability {
	if len(bookings) == 0 {
		return DayAvailable
	}

	active := 0
	engaged := false
	for _, b := range bookings {
		st := Status(b.Status)
		if st.IsTerminal() {
			continue
		}
		active++
		if st.IsEngaged() {
			engaged = true
		}
	}

	switch {
	case active == 0:
		return DayFree
	case engaged:
		return DayBusy
	default:
		return DayPending
	}
}

// MonthGrid classifies every day of the displayed month, padded with leading
// and trailing days of the adjacent months so each row is a full
// Sunday-to-Saturday week.
func MonthGrid(year int, month time.Month, bookings []models.Booking, now time.Time) []CalendarDay {
	byDate := make(map[string][]models.Booking, len(bookings))
	for _, b := range bookings {
		byDate[b.Date] = append(byDate[b.Date], b)
	}

	loc := now.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, int(time.Saturday-last.Weekday()))

	today := now.Format(dateLayout)

	var days []CalendarDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format(dateLayout)
		dayBookings := byDate[key]
		days = append(days, CalendarDay{
			Date:           key,
			IsCurrentMonth: d.Month() == month,
			IsToday:        key == today,
			Availability:   ClassifyDay(dayBookings),
			BookingCount:   len(dayBookings),
		})
	}
	return days
}
