package booking

import (
	"testing"
	"time"

	"github.com/nihalpictures/studio-api/internal/models"
)

func TestClassifyDay(t *testing.T) {
	cases := []struct {
		name     string
		statuses []string
		want     DayAvailability
	}{
		{"no bookings", nil, DayAvailable},
		{"only cancelled", []string{"cancelled"}, DayFree},
		{"only completed", []string{"completed"}, DayFree},
		{"cancelled and completed", []string{"cancelled", "completed"}, DayFree},
		{"requested only", []string{"Requested"}, DayPending},
		{"confirmed wins over requested", []string{"Requested", "confirmed"}, DayBusy},
		{"in-progress is busy", []string{"in-progress"}, DayBusy},
		{"busy beats terminal noise", []string{"cancelled", "confirmed"}, DayBusy},
		{"requested beats terminal noise", []string{"completed", "Requested"}, DayPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bookings := make([]models.Booking, 0, len(tc.statuses))
			for _, s := range tc.statuses {
				bookings = append(bookings, models.Booking{Status: s})
			}
			if got := ClassifyDay(bookings); got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestMonthGrid(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	bookings := []models.Booking{
		{Date: "2026-08-15", Status: "confirmed"},
		{Date: "2026-08-20", Status: "Requested"},
	}

	days := MonthGrid(2026, time.August, bookings, now)

	if len(days)%7 != 0 {
		t.Fatalf("grid must be whole weeks, got %d cells", len(days))
	}

	// August 2026 starts on a Saturday, so the row is padded back to Sunday
	// July 26.
	if days[0].Date != "2026-07-26" {
		t.Fatalf("expected leading pad 2026-07-26, got %s", days[0].Date)
	}
	if days[0].IsCurrentMonth {
		t.Fatal("padding day must not be flagged current month")
	}

	byDate := make(map[string]CalendarDay, len(days))
	for _, d := range days {
		byDate[d.Date] = d
	}

	if d := byDate["2026-08-15"]; d.Availability != DayBusy || !d.IsToday || d.BookingCount != 1 {
		t.Fatalf("unexpected cell for the 15th: %+v", d)
	}
	if d := byDate["2026-08-20"]; d.Availability != DayPending {
		t.Fatalf("expected pending on the 20th, got %+v", d)
	}
	if d := byDate["2026-08-01"]; d.Availability != DayAvailable || !d.IsCurrentMonth {
		t.Fatalf("unexpected cell for the 1st: %+v", d)
	}
}
