package schedule

import "github.com/BruksfildServices01/therapy-scheduler/internal/httperr"

// User-visible scheduling conditions. Pure functions in this package never
// return them for malformed data; they are surfaced by the selection state
// machine and the submission guard.
var (
	ErrNoAvailabilityPublished = httperr.ErrBusiness("no_availability_published")
	ErrNoDatesInWindow         = httperr.ErrBusiness("no_dates_in_window")
	ErrNoTimesForDate          = httperr.ErrBusiness("no_times_for_date")
	ErrStaleSelection          = httperr.ErrBusiness("stale_selection")
	ErrIncompleteSelection     = httperr.ErrBusiness("incomplete_selection")
)
