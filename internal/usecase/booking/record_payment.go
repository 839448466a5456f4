package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/nihalpictures/studio-api/internal/audit"
	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/feed"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/models"
)

var paymentMethods = map[string]bool{
	"cash":           true,
	"bank_transfer":  true,
	"check":          true,
	"card":           true,
	"mobile_payment": true,
}

type RecordPaymentInput struct {
	BookingID string
	Amount    float64
	Method    string
	Note      string
}

type RecordPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	feed  *feed.Hub
}

func NewRecordPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	feed *feed.Hub,
) *RecordPayment {
	return &RecordPayment{
		repo:  repo,
		audit: audit,
		feed:  feed,
	}
}

// Execute appends one payment. The remaining-amount check runs inside the
// repository transaction, so the boundary holds under concurrent sessions:
// amount must be in (0, remaining].
func (uc *RecordPayment) Execute(
	ctx context.Context,
	userID uint,
	in RecordPaymentInput,
) (*models.Payment, error) {

	if in.Amount <= 0 {
		return nil, httperr.ErrBusiness("amount_not_positive")
	}
	if !paymentMethods[in.Method] {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	payment, err := uc.repo.AddPaymentGuarded(
		ctx,
		in.BookingID,
		in.Amount,
		in.Method,
		in.Note,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "payment_recorded",
		Entity:   "payment",
		EntityID: payment.ID,
		Metadata: map[string]any{
			"booking_id": in.BookingID,
			"amount":     in.Amount,
			"method":     in.Method,
		},
	})
	uc.feed.Publish(ctx, "payments", "created", payment.ID)

	return payment, nil
}
