package booking

import "github.com/nihalpictures/studio-api/internal/models"

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Finance is the derived, never-persisted financial view of one booking.
type Finance struct {
	TotalPaid       float64       `json:"totalPaid"`
	RemainingAmount float64       `json:"remainingAmount"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
}

// ComputeFinance sums the payment amounts and derives the payment status.
//
// An unset price counts as zero, so a priced-at-zero booking with any payment
// reads as paid; that matches the stored data this system has always
// produced. RemainingAmount is not floored at zero.
func ComputeFinance(totalPrice float64, payments []models.Payment) Finance {
	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}

	status := PaymentPartial
	switch {
	case paid == 0:
		status = PaymentUnpaid
	case paid >= totalPrice:
		status = PaymentPaid
	}

	return Finance{
		TotalPaid:       paid,
		RemainingAmount: totalPrice - paid,
		PaymentStatus:   status,
	}
}

// Aggregated joins a booking with its derived finance figures.
type Aggregated struct {
	models.Booking
	Finance
}

// Aggregate derives finance for every booking from its preloaded payments.
func Aggregate(bookings []models.Booking) []Aggregated {
	out := make([]Aggregated, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, Aggregated{
			Booking: b,
			Finance: ComputeFinance(b.TotalPrice, b.Payments),
		})
	}
	return out
}
