package booking

import (
	"testing"
	"time"

	"github.com/nihalpictures/studio-api/internal/models"
)

func agg(b models.Booking) Aggregated {
	return Aggregated{
		Booking: b,
		Finance: ComputeFinance(b.TotalPrice, b.Payments),
	}
}

func ids(rows []Aggregated) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func sameIDs(got []Aggregated, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i, r := range got {
		if r.ID != want[i] {
			return false
		}
	}
	return true
}

func TestApplySearch(t *testing.T) {
	rows := []Aggregated{
		agg(models.Booking{ID: "a", FirstName: "Amina", LastName: "Bensaid", Wilaya: "Alger"}),
		agg(models.Booking{ID: "b", FirstName: "Karim", LastName: "Haddad", Wilaya: "Oran"}),
		agg(models.Booking{ID: "c", FirstName: "Lina", LastName: "Cherif", Supplements: []models.Supplement{{Name: "Drone ALGER"}}}),
	}
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("wilaya match is case-insensitive", func(t *testing.T) {
		for _, q := range []string{"ALGER", "alger"} {
			got := Apply(rows, Filter{Query: q}, now)
			if !sameIDs(got, "a", "c") {
				t.Fatalf("query %q: got %v", q, ids(got))
			}
		}
	})

	t.Run("full name concatenation matches", func(t *testing.T) {
		got := Apply(rows, Filter{Query: "karim haddad"}, now)
		if !sameIDs(got, "b") {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("phone number matches", func(t *testing.T) {
		rows := []Aggregated{
			agg(models.Booking{ID: "p", FirstName: "Sara", PhoneNumbers: []string{"0550 12 34 56"}}),
		}
		got := Apply(rows, Filter{Query: "12 34"}, now)
		if !sameIDs(got, "p") {
			t.Fatalf("got %v", ids(got))
		}
	})
}

func TestApplyStatusFilter(t *testing.T) {
	rows := []Aggregated{
		agg(models.Booking{ID: "a", Status: "Requested"}),
		agg(models.Booking{ID: "b", Status: "confirmed"}),
	}
	now := time.Now()

	if got := Apply(rows, Filter{Status: "confirmed"}, now); !sameIDs(got, "b") {
		t.Fatalf("got %v", ids(got))
	}
	if got := Apply(rows, Filter{Status: "all"}, now); len(got) != 2 {
		t.Fatalf("status all should keep everything, got %v", ids(got))
	}
}

func TestApplyDateWindows(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)

	rows := []Aggregated{
		agg(models.Booking{ID: "today", Date: "2026-08-30"}),
		agg(models.Booking{ID: "in6", Date: "2026-09-05"}),
		agg(models.Booking{ID: "in7", Date: "2026-09-06"}),
		agg(models.Booking{ID: "in8", Date: "2026-09-07"}),
		agg(models.Booking{ID: "nextmonth", Date: "2026-09-30"}),
		agg(models.Booking{ID: "past", Date: "2026-08-29"}),
		agg(models.Booking{ID: "far", Date: "2026-10-01"}),
	}

	t.Run("today", func(t *testing.T) {
		got := Apply(rows, Filter{DateRange: RangeToday}, now)
		if !sameIDs(got, "today") {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("week is inclusive of day seven", func(t *testing.T) {
		got := Apply(rows, Filter{DateRange: RangeWeek}, now)
		if !sameIDs(got, "today", "in6", "in7") {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("month is inclusive of same day next month", func(t *testing.T) {
		got := Apply(rows, Filter{DateRange: RangeMonth}, now)
		if !sameIDs(got, "today", "in6", "in7", "in8", "nextmonth") {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("all keeps everything", func(t *testing.T) {
		got := Apply(rows, Filter{DateRange: RangeAll}, now)
		if len(got) != len(rows) {
			t.Fatalf("got %v", ids(got))
		}
	})
}

func TestApplySort(t *testing.T) {
	now := time.Now()

	t.Run("firstName sorts the concatenated full name", func(t *testing.T) {
		rows := []Aggregated{
			agg(models.Booking{ID: "b", FirstName: "Amina", LastName: "Ziani"}),
			agg(models.Booking{ID: "a", FirstName: "Amina", LastName: "Bensaid"}),
			agg(models.Booking{ID: "c", FirstName: "Karim", LastName: "Ait"}),
		}
		got := Apply(rows, Filter{SortBy: SortFirstName}, now)
		if !sameIDs(got, "a", "b", "c") {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("descending reverses", func(t *testing.T) {
		rows := []Aggregated{
			agg(models.Booking{ID: "cheap", TotalPrice: 1000}),
			agg(models.Booking{ID: "dear", TotalPrice: 9000}),
		}
		got := Apply(rows, Filter{SortBy: SortTotalPrice, SortDesc: true}, now)
		if !sameIDs(got, "dear", "cheap") {
			t.Fatalf("got %v", ids(got))
		}
	})

	t.Run("equal keys keep input order", func(t *testing.T) {
		rows := []Aggregated{
			agg(models.Booking{ID: "first", Wilaya: "Alger"}),
			agg(models.Booking{ID: "second", Wilaya: "Alger"}),
			agg(models.Booking{ID: "third", Wilaya: "Alger"}),
		}
		got := Apply(rows, Filter{SortBy: SortWilaya}, now)
		if !sameIDs(got, "first", "second", "third") {
			t.Fatalf("ties must be stable, got %v", ids(got))
		}
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		rows := []Aggregated{
			agg(models.Booking{ID: "z", Date: "2026-12-01"}),
			agg(models.Booking{ID: "a", Date: "2026-01-01"}),
		}
		Apply(rows, Filter{SortBy: SortDate}, now)
		if rows[0].ID != "z" {
			t.Fatal("input slice was mutated")
		}
	})
}
