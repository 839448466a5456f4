package booking

import (
	"testing"

	"github.com/nihalpictures/studio-api/internal/models"
)

func payments(amounts ...float64) []models.Payment {
	out := make([]models.Payment, 0, len(amounts))
	for _, a := range amounts {
		out = append(out, models.Payment{Amount: a})
	}
	return out
}

func TestComputeFinance(t *testing.T) {
	t.Run("no payments is unpaid", func(t *testing.T) {
		f := ComputeFinance(80000, nil)
		if f.PaymentStatus != PaymentUnpaid {
			t.Fatalf("expected unpaid, got %s", f.PaymentStatus)
		}
		if f.TotalPaid != 0 || f.RemainingAmount != 80000 {
			t.Fatalf("unexpected figures: %+v", f)
		}
	})

	t.Run("two deposits on 80000 is partial with 40000 remaining", func(t *testing.T) {
		f := ComputeFinance(80000, payments(20000, 20000))
		if f.PaymentStatus != PaymentPartial {
			t.Fatalf("expected partial, got %s", f.PaymentStatus)
		}
		if f.TotalPaid != 40000 {
			t.Fatalf("expected 40000 paid, got %v", f.TotalPaid)
		}
		if f.RemainingAmount != 40000 {
			t.Fatalf("expected 40000 remaining, got %v", f.RemainingAmount)
		}
	})

	t.Run("exact total is paid", func(t *testing.T) {
		f := ComputeFinance(80000, payments(50000, 30000))
		if f.PaymentStatus != PaymentPaid {
			t.Fatalf("expected paid, got %s", f.PaymentStatus)
		}
		if f.RemainingAmount != 0 {
			t.Fatalf("expected 0 remaining, got %v", f.RemainingAmount)
		}
	})

	t.Run("overpayment stays paid with negative remaining", func(t *testing.T) {
		f := ComputeFinance(80000, payments(100000))
		if f.PaymentStatus != PaymentPaid {
			t.Fatalf("expected paid, got %s", f.PaymentStatus)
		}
		if f.RemainingAmount != -20000 {
			t.Fatalf("remaining is not floored, got %v", f.RemainingAmount)
		}
	})

	t.Run("unset price with any payment reads as paid", func(t *testing.T) {
		f := ComputeFinance(0, payments(5000))
		if f.PaymentStatus != PaymentPaid {
			t.Fatalf("expected paid, got %s", f.PaymentStatus)
		}
	})

	t.Run("unset price with no payments is unpaid", func(t *testing.T) {
		f := ComputeFinance(0, nil)
		if f.PaymentStatus != PaymentUnpaid {
			t.Fatalf("expected unpaid, got %s", f.PaymentStatus)
		}
	})
}

func TestAggregate(t *testing.T) {
	bookings := []models.Booking{
		{ID: "a", TotalPrice: 1000, Payments: payments(400)},
		{ID: "b", TotalPrice: 0},
	}

	out := Aggregate(bookings)
	if len(out) != 2 {
		t.Fatalf("expected 2, got %d", len(out))
	}
	if out[0].PaymentStatus != PaymentPartial || out[0].RemainingAmount != 600 {
		t.Fatalf("unexpected first row: %+v", out[0].Finance)
	}
	if out[1].PaymentStatus != PaymentUnpaid {
		t.Fatalf("unexpected second row: %+v", out[1].Finance)
	}
}
