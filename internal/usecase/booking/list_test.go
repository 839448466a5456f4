package booking

import (
	"context"
	"testing"

	domain "github.com/nihalpictures/studio-api/internal/domain/booking"
	"github.com/nihalpictures/studio-api/internal/models"
)

func TestListBookings(t *testing.T) {
	ctx := context.Background()

	repo := newFakeRepo(
		&models.Booking{ID: "a", FirstName: "Amina", Status: "confirmed", TotalPrice: 80000,
			Payments: []models.Payment{{Amount: 20000}}},
		&models.Booking{ID: "b", FirstName: "Karim", Status: "Requested"},
		&models.Booking{ID: "c", FirstName: "Lina", Status: "confirmed"},
	)
	uc := NewListBookings(repo)

	filter := domain.Filter{Status: "confirmed", SortBy: domain.SortFirstName}

	t.Run("rows carry derived finance and total counts everything", func(t *testing.T) {
		rows, total, err := uc.Execute(ctx, filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if total != 3 {
			t.Fatalf("total must be the unfiltered size, got %d", total)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 confirmed rows, got %d", len(rows))
		}
		if rows[0].ID != "a" || rows[0].TotalPaid != 20000 || rows[0].RemainingAmount != 60000 {
			t.Fatalf("unexpected first row: %+v", rows[0])
		}
	})

	t.Run("export path returns the same selection as the list view", func(t *testing.T) {
		rows, listTotal, err := uc.Execute(ctx, filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		filtered, exportTotal, err := uc.Filtered(ctx, filter)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if listTotal != exportTotal {
			t.Fatalf("totals diverge: list %d export %d", listTotal, exportTotal)
		}
		if len(rows) != len(filtered) {
			t.Fatalf("row counts diverge: list %d export %d", len(rows), len(filtered))
		}
		for i := range rows {
			if rows[i].ID != filtered[i].ID {
				t.Fatalf("row %d diverges: list %s export %s", i, rows[i].ID, filtered[i].ID)
			}
			if rows[i].TotalPaid != filtered[i].TotalPaid {
				t.Fatalf("row %d finance diverges", i)
			}
		}
	})
}
