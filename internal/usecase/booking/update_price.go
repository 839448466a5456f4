package booking

import (
	"context"

	"github.com/nihalpictures/studio-api/internal/audit"
	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/feed"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/models"
)

type UpdatePrice struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	feed  *feed.Hub
}

func NewUpdatePrice(
	repo domain.Repository,
	audit *audit.Dispatcher,
	feed *feed.Hub,
) *UpdatePrice {
	return &UpdatePrice{
		repo:  repo,
		audit: audit,
		feed:  feed,
	}
}

func (uc *UpdatePrice) Execute(
	ctx context.Context,
	userID uint,
	bookingID string,
	totalPrice float64,
) (*models.Booking, error) {

	if totalPrice < 0 {
		return nil, httperr.ErrBusiness("invalid_price")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	b.TotalPrice = totalPrice

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "booking_price_updated",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]float64{"total_price": totalPrice},
	})
	uc.feed.Publish(ctx, "bookings", "updated", b.ID)

	return b, nil
}
