package booking

import (
	"context"
	"fmt"

	"github.com/nihalpictures/studio-api/internal/audit"
	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/gateway"
	"github.com/nihalpictures/studio-api/internal/httperr"
)

type CreatePaymentLink struct {
	repo    domain.Repository
	gateway gateway.PaymentLinkGateway
	audit   *audit.Dispatcher
}

func NewCreatePaymentLink(
	repo domain.Repository,
	gw gateway.PaymentLinkGateway,
	audit *audit.Dispatcher,
) *CreatePaymentLink {
	return &CreatePaymentLink{
		repo:    repo,
		gateway: gw,
		audit:   audit,
	}
}

// Execute creates a hosted checkout link for the booking's remaining
// balance. The link itself records nothing; the payment is entered through
// the normal guarded path once the transfer is confirmed.
func (uc *CreatePaymentLink) Execute(
	ctx context.Context,
	userID uint,
	bookingID string,
) (string, error) {

	if uc.gateway == nil {
		return "", httperr.ErrBusiness("payment_links_disabled")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return "", httperr.ErrBusiness("booking_not_found")
	}

	fin := domain.ComputeFinance(b.TotalPrice, b.Payments)
	if fin.RemainingAmount <= 0 {
		return "", httperr.ErrBusiness("nothing_remaining")
	}

	description := fmt.Sprintf("%s - %s (%s)", b.PackName, b.ClientName(), b.Date)

	url, err := uc.gateway.CreatePaymentLink(ctx, b.ID, description, fin.RemainingAmount)
	if err != nil {
		return "", err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "payment_link_created",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]float64{"amount": fin.RemainingAmount},
	})

	return url, nil
}
