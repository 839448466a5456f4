package booking

import (
	"context"

	"github.com/nihalpictures/studio-api/internal/audit"
	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/feed"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/models"
)

type UpdateStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	feed  *feed.Hub
}

func NewUpdateStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	feed *feed.Hub,
) *UpdateStatus {
	return &UpdateStatus{
		repo:  repo,
		audit: audit,
		feed:  feed,
	}
}

func (uc *UpdateStatus) Execute(
	ctx context.Context,
	userID uint,
	bookingID string,
	newStatus string,
) (*models.Booking, error) {

	status, err := domain.ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	previous := b.Status
	b.Status = string(status)

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_status_updated",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{"from": previous, "to": b.Status},
	})
	uc.feed.Publish(ctx, "bookings", "updated", b.ID)

	return b, nil
}
