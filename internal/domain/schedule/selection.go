package schedule

import (
	"time"

	"github.com/google/uuid"
)

type State int

const (
	StateNoProvider State = iota
	StateProviderSelected
	StateDateSelected
	StateTimeSelected
)

func (s State) String() string {
	switch s {
	case StateProviderSelected:
		return "provider_selected"
	case StateDateSelected:
		return "date_selected"
	case StateTimeSelected:
		return "time_selected"
	default:
		return "no_provider"
	}
}

// Universe holds the weekly template of every provider with published
// availability.
type Universe map[uuid.UUID]WeeklyMap

// Selection is the derived booking-form state. Every transition rebuilds
// the downstream fields from its inputs; nothing is patched in place.
type Selection struct {
	State       State
	ProviderID  uuid.UUID
	Date        string
	Time        string
	DateOptions []DateOption
	TimeOptions []TimeOption
	// Condition is the user-visible reason the selection cannot advance.
	Condition error
}

// SelectProvider regenerates date options for providerID, keeping the
// previous date when it is still offered and otherwise taking the first.
func (r Resolver) SelectProvider(prev Selection, providerID uuid.UUID, universe Universe, w Window, today time.Time) Selection {
	if len(universe) == 0 {
		return Selection{State: StateNoProvider, Condition: ErrNoAvailabilityPublished}
	}

	next := Selection{State: StateProviderSelected, ProviderID: providerID}

	weekly, ok := universe[providerID]
	if !ok || weekly.IsEmpty() {
		next.Condition = ErrNoAvailabilityPublished
		return next
	}

	next.DateOptions = r.DateOptions(weekly, w, today)
	if len(next.DateOptions) == 0 {
		next.Condition = ErrNoDatesInWindow
		return next
	}

	date := next.DateOptions[0].Value
	if hasDate(next.DateOptions, prev.Date) {
		date = prev.Date
	}
	next.Time = prev.Time

	return r.SelectDate(next, date, universe, w)
}

// SelectDate regenerates time options for date under the current
// provider. The previous time survives only if it is still offered.
func (r Resolver) SelectDate(prev Selection, date string, universe Universe, w Window) Selection {
	if prev.State == StateNoProvider {
		return prev
	}

	next := Selection{
		State:       StateProviderSelected,
		ProviderID:  prev.ProviderID,
		DateOptions: prev.DateOptions,
	}

	day, err := ParseDateKey(date, w.location())
	if err != nil {
		next.Condition = ErrNoTimesForDate
		return next
	}

	next.State = StateDateSelected
	next.Date = date
	next.TimeOptions = r.TimeOptions(universe[prev.ProviderID], day, w)
	if len(next.TimeOptions) == 0 {
		next.Condition = ErrNoTimesForDate
		return next
	}

	next.Time = next.TimeOptions[0].Value
	if OffersTime(next.TimeOptions, prev.Time) {
		next.Time = prev.Time
	}
	next.State = StateTimeSelected
	return next
}

// SelectTime accepts hm only if it is one of the current time options.
func (r Resolver) SelectTime(prev Selection, hm string) Selection {
	if prev.State < StateDateSelected {
		return prev
	}

	next := prev
	if OffersTime(prev.TimeOptions, hm) {
		next.Time = hm
		next.State = StateTimeSelected
		return next
	}

	next.Time = ""
	next.State = StateDateSelected
	return next
}
