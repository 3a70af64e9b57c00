package appointment

import (
	"time"

	"github.com/BruksfildServices01/therapy-scheduler/internal/audit"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/therapy-scheduler/internal/timezone"
)

var (
	ErrInvalidDate = httperr.ErrBusiness("invalid_date")
	ErrInvalidTime = httperr.ErrBusiness("invalid_time")
)

// Auditor receives audit events. *audit.Dispatcher satisfies it.
type Auditor interface {
	Dispatch(ev audit.Event)
}

// Scheduling bundles the window policy, the slot resolver and the clock
// shared by every booking use case.
type Scheduling struct {
	Policy   schedule.Policy
	Resolver schedule.Resolver
	Clock    timezone.Clock
}

// Window reads the clock once and derives the requester's window from it.
func (s Scheduling) Window(requester *schedule.Identity) (time.Time, schedule.Window) {
	now := s.Clock.Now()
	return now, s.Policy.ComputeWindow(now, requester)
}

func (s Scheduling) Guard() schedule.Guard {
	return schedule.NewGuard(s.Policy, s.Clock)
}

func (s Scheduling) Location() *time.Location {
	return s.Clock.Now().Location()
}
