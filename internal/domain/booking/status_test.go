package booking

import (
	"testing"

	"github.com/nihalpictures/studio-api/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"Requested", "confirmed", "in-progress", "completed", "cancelled"} {
		if _, err := ParseStatus(s); err != nil {
			t.Fatalf("%q must parse: %v", s, err)
		}
	}

	for _, s := range []string{"requested", "Confirmed", "done", "", "CANCELLED"} {
		_, err := ParseStatus(s)
		if !httperr.IsBusiness(err, "invalid_status") {
			t.Fatalf("%q must be rejected, got %v", s, err)
		}
	}
}

func TestStatusPredicates(t *testing.T) {
	if !StatusCancelled.IsTerminal() || !StatusCompleted.IsTerminal() {
		t.Fatal("cancelled and completed are terminal")
	}
	if StatusRequested.IsTerminal() || StatusConfirmed.IsTerminal() {
		t.Fatal("requested and confirmed are not terminal")
	}
	if !StatusConfirmed.IsEngaged() || !StatusInProgress.IsEngaged() {
		t.Fatal("confirmed and in-progress are engaged")
	}
	if StatusRequested.IsEngaged() {
		t.Fatal("requested is not engaged")
	}
}
