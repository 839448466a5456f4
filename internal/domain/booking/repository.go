package booking

import (
	"context"

	"github.com/nihalpictures/studio-api/internal/models"
)

type Repository interface {
	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// GetBooking returns the booking with its payments preloaded,
	// newest payment first.
	GetBooking(
		ctx context.Context,
		id string,
	) (*models.Booking, error)

	// ListBookings returns every booking with payments preloaded,
	// newest booking first.
	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// DeleteBooking removes the booking and all of its payments.
	DeleteBooking(
		ctx context.Context,
		id string,
	) error

	// -------- Payment (guarded append) --------

	// AddPaymentGuarded re-derives the remaining amount inside one
	// transaction with the booking row locked, and aborts when the
	// amount is not in (0, remaining].
	AddPaymentGuarded(
		ctx context.Context,
		bookingID string,
		amount float64,
		method string,
		note string,
	) (*models.Payment, error)
}
