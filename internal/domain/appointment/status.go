package appointment

import "github.com/BruksfildServices01/therapy-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

var ErrInvalidState = httperr.ErrBusiness("invalid_state")

// ===============================
// Validations
// ===============================

// CanConfirm: only a pending request can be confirmed.
func CanConfirm(current Status) error {
	if current != StatusPending {
		return ErrInvalidState
	}
	return nil
}

// CanCancel: pending or confirmed appointments can be cancelled.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return ErrInvalidState
	}
	return nil
}

// CanComplete: only confirmed appointments are completed.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return ErrInvalidState
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}

// IsActive reports whether the status still holds its slot.
func IsActive(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}
