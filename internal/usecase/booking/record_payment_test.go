package booking

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/nihalpictures/studio-api/internal/audit"
	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/httperr"
	"github.com/nihalpictures/studio-api/internal/models"
)

// fakeRepo keeps bookings in memory and mirrors the repository's guarded
// payment boundary: amount must not exceed the remaining balance.
type fakeRepo struct {
	bookings map[string]*models.Booking
}

func newFakeRepo(bookings ...*models.Booking) *fakeRepo {
	r := &fakeRepo{bookings: map[string]*models.Booking{}}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *fakeRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeRepo) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return b, nil
}

func (r *fakeRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeRepo) DeleteBooking(ctx context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepo) AddPaymentGuarded(
	ctx context.Context,
	bookingID string,
	amount float64,
	method string,
	note string,
) (*models.Payment, error) {

	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}

	var paid float64
	for _, p := range b.Payments {
		paid += p.Amount
	}
	if amount > b.TotalPrice-paid {
		return nil, httperr.ErrBusiness("payment_exceeds_remaining")
	}

	p := models.Payment{
		ID:        "pay-test",
		BookingID: bookingID,
		Amount:    amount,
		Method:    method,
		Note:      note,
	}
	b.Payments = append(b.Payments, p)
	return &p, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func TestRecordPayment(t *testing.T) {
	ctx := context.Background()

	newUC := func(repo domain.Repository) *RecordPayment {
		return NewRecordPayment(repo, newTestDispatcher(), nil)
	}

	t.Run("zero amount rejected before touching the repo", func(t *testing.T) {
		uc := newUC(newFakeRepo())
		_, err := uc.Execute(ctx, 1, RecordPaymentInput{BookingID: "b1", Amount: 0, Method: "cash"})
		if !httperr.IsBusiness(err, "amount_not_positive") {
			t.Fatalf("expected amount_not_positive, got %v", err)
		}
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		uc := newUC(newFakeRepo())
		_, err := uc.Execute(ctx, 1, RecordPaymentInput{BookingID: "b1", Amount: -50, Method: "cash"})
		if !httperr.IsBusiness(err, "amount_not_positive") {
			t.Fatalf("expected amount_not_positive, got %v", err)
		}
	})

	t.Run("unknown method rejected", func(t *testing.T) {
		uc := newUC(newFakeRepo())
		_, err := uc.Execute(ctx, 1, RecordPaymentInput{BookingID: "b1", Amount: 100, Method: "crypto"})
		if !httperr.IsBusiness(err, "invalid_payment_method") {
			t.Fatalf("expected invalid_payment_method, got %v", err)
		}
	})

	t.Run("missing booking maps to booking_not_found", func(t *testing.T) {
		uc := newUC(newFakeRepo())
		_, err := uc.Execute(ctx, 1, RecordPaymentInput{BookingID: "nope", Amount: 100, Method: "cash"})
		if !httperr.IsBusiness(err, "booking_not_found") {
			t.Fatalf("expected booking_not_found, got %v", err)
		}
	})

	t.Run("exactly the remaining amount is accepted", func(t *testing.T) {
		repo := newFakeRepo(&models.Booking{
			ID:         "b1",
			TotalPrice: 80000,
			Payments:   []models.Payment{{Amount: 30000}},
		})
		uc := newUC(repo)

		p, err := uc.Execute(ctx, 1, RecordPaymentInput{BookingID: "b1", Amount: 50000, Method: "bank_transfer"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Amount != 50000 {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("one dinar over the remaining amount is rejected", func(t *testing.T) {
		repo := newFakeRepo(&models.Booking{
			ID:         "b1",
			TotalPrice: 80000,
			Payments:   []models.Payment{{Amount: 30000}},
		})
		uc := newUC(repo)

		_, err := uc.Execute(ctx, 1, RecordPaymentInput{BookingID: "b1", Amount: 50001, Method: "cash"})
		if !httperr.IsBusiness(err, "payment_exceeds_remaining") {
			t.Fatalf("expected payment_exceeds_remaining, got %v", err)
		}
	})

	t.Run("fully paid booking accepts nothing more", func(t *testing.T) {
		repo := newFakeRepo(&models.Booking{
			ID:         "b1",
			TotalPrice: 80000,
			Payments:   []models.Payment{{Amount: 80000}},
		})
		uc := newUC(repo)

		_, err := uc.Execute(ctx, 1, RecordPaymentInput{BookingID: "b1", Amount: 1, Method: "cash"})
		if !httperr.IsBusiness(err, "payment_exceeds_remaining") {
			t.Fatalf("expected payment_exceeds_remaining, got %v", err)
		}
	})
}
