package booking

import (
	"context"

	"github.com/nihalpictures/studio-api/internal/audit"
	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/feed"
	"github.com/nihalpictures/studio-api/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	feed  *feed.Hub
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	feed *feed.Hub,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
		feed:  feed,
	}
}

// Execute removes the booking and all of its payment records.
func (uc *DeleteBooking) Execute(
	ctx context.Context,
	userID uint,
	bookingID string,
) error {

	if err := uc.repo.DeleteBooking(ctx, bookingID); err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: bookingID,
	})
	uc.feed.Publish(ctx, "bookings", "deleted", bookingID)

	return nil
}
