package booking

import (
	"sort"
	"strings"
	"time"
)

// Date windows accepted by the list endpoints.
const (
	RangeAll   = "all"
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// Sort keys accepted by the list endpoints.
const (
	SortCreatedAt  = "createdAt"
	SortDate       = "date"
	SortFirstName  = "firstName"
	SortTotalPrice = "totalPrice"
	SortStatus     = "status"
	SortWilaya     = "wilaya"
	SortPackName   = "packName"
)

const dateLayout = "2006-01-02"

// Filter describes one pass over the aggregated booking list: free-text
// search, exact status match, a date window computed from "now", and a
// single-key sort.
type Filter struct {
	Query     string
	Status    string
	DateRange string
	SortBy    string
	SortDesc  bool
}

// Apply runs search, status and date filtering, then sorts. The input slice
// is not modified. Ties keep their input order.
func Apply(bookings []Aggregated, f Filter, now time.Time) []Aggregated {
	out := make([]Aggregated, 0, len(bookings))

	query := strings.ToLower(strings.TrimSpace(f.Query))
	for _, b := range bookings {
		if query != "" && !matchesQuery(&b, query) {
			continue
		}
		if f.Status != "" && f.Status != "all" && b.Status != f.Status {
			continue
		}
		if !inDateRange(b.Date, f.DateRange, now) {
			continue
		}
		out = append(out, b)
	}

	sortBookings(out, f.SortBy, f.SortDesc)
	return out
}

// matchesQuery ORs a case-insensitive substring match across every
// client-facing text field of the booking.
func matchesQuery(b *Aggregated, query string) bool {
	fields := []string{
		b.FirstName + " " + b.LastName,
		b.Email,
		b.PackName,
		b.Wilaya,
		b.AddressDetails,
		b.SalleName,
		b.Remarks,
		b.HusbandFirstName,
		b.WifeFirstName,
	}
	for _, f := range fields {
		if f != "" && strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	for _, phone := range b.PhoneNumbers {
		if strings.Contains(phone, query) {
			return true
		}
	}
	for _, s := range b.Supplements {
		if strings.Contains(strings.ToLower(s.Name), query) {
			return true
		}
	}
	return false
}

func inDateRange(dateStr, window string, now time.Time) bool {
	if window == "" || window == RangeAll {
		return true
	}

	d, err := time.ParseInLocation(dateLayout, dateStr, now.Location())
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch window {
	case RangeToday:
		return d.Equal(today)
	case RangeWeek:
		return !d.Before(today) && !d.After(today.AddDate(0, 0, 7))
	case RangeMonth:
		return !d.Before(today) && !d.After(today.AddDate(0, 1, 0))
	default:
		return true
	}
}

func sortBookings(bookings []Aggregated, sortBy string, desc bool) {
	if sortBy == "" {
		sortBy = SortCreatedAt
	}

	less := func(a, b *Aggregated) bool {
		switch sortBy {
		case SortDate:
			return a.Date < b.Date
		case SortFirstName:
			return a.FirstName+" "+a.LastName < b.FirstName+" "+b.LastName
		case SortTotalPrice:
			return a.TotalPrice < b.TotalPrice
		case SortStatus:
			return a.Status < b.Status
		case SortWilaya:
			return a.Wilaya < b.Wilaya
		case SortPackName:
			return a.PackName < b.PackName
		default:
			return a.CreatedAt.Before(b.CreatedAt)
		}
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if desc {
			return less(&bookings[j], &bookings[i])
		}
		return less(&bookings[i], &bookings[j])
	})
}
