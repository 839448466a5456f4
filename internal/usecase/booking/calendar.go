package booking

import (
	"context"
	"time"

	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/timezone"
)

type MonthAvailability struct {
	repo domain.Repository
}

func NewMonthAvailability(repo domain.Repository) *MonthAvailability {
	return &MonthAvailability{repo: repo}
}

// Execute classifies every day of the requested month grid from the full
// booking list. The grid is recomputed per request, never cached.
func (uc *MonthAvailability) Execute(
	ctx context.Context,
	year int,
	month int,
) ([]domain.CalendarDay, error) {

	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	return domain.MonthGrid(year, time.Month(month), bookings, timezone.Now()), nil
}
