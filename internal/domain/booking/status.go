package booking

import "github.com/nihalpictures/studio-api/internal/httperr"

// Status is the session lifecycle label. The wire values match what the
// admin UI has always stored, capitalization quirk included.
type Status string

const (
	StatusRequested  Status = "Requested"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var allStatuses = []Status{
	StatusRequested,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
}

// ParseStatus rejects anything outside the closed label set. Status
// transitions are free-form: any status may follow any other.
func ParseStatus(s string) (Status, error) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", httperr.ErrBusiness("invalid_status")
}

func InitialStatus() Status {
	return StatusRequested
}

// IsTerminal reports whether the booking no longer occupies its day.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// IsEngaged reports whether the day is firmly taken.
func (s Status) IsEngaged() bool {
	return s == StatusConfirmed || s == StatusInProgress
}
