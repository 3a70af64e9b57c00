package schedule

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/timezone"
)

// FormState is what the patient has picked so far.
type FormState struct {
	ProblemCategory string
	ProviderID      uuid.UUID
	Date            string
	Time            string
}

// Guard re-checks a selection against a window computed at call time.
// It never caches the window.
type Guard struct {
	Policy Policy
	Clock  timezone.Clock
}

func NewGuard(policy Policy, clock timezone.Clock) Guard {
	return Guard{Policy: policy, Clock: clock}
}

func (g Guard) Validate(form FormState, timeOptions []TimeOption, requester *Identity) error {
	if form.ProblemCategory == "" ||
		form.ProviderID == uuid.Nil ||
		form.Date == "" ||
		form.Time == "" {
		return ErrIncompleteSelection
	}

	if len(timeOptions) == 0 {
		return ErrNoTimesForDate
	}

	w := g.Policy.ComputeWindow(g.Clock.Now(), requester)
	if !IsWithinWindow(form.Date, form.Time, w) {
		return ErrStaleSelection
	}

	return nil
}

func (g Guard) CanSubmit(form FormState, timeOptions []TimeOption, requester *Identity) bool {
	return g.Validate(form, timeOptions, requester) == nil
}
