package appointment

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
)

var (
	// ErrStaleResult is returned to a provider change that a later change
	// superseded while its fetch was in flight.
	ErrStaleResult = errors.New("session: result superseded by a newer selection")
	ErrClosed      = errors.New("session: closed")
)

// UniverseLoader fetches the availability of every published provider.
type UniverseLoader func(ctx context.Context) (schedule.Universe, error)

// RepositoryLoader loads the universe from active weekly availability rows.
func RepositoryLoader(repo domain.AvailabilityRepository) UniverseLoader {
	return func(ctx context.Context) (schedule.Universe, error) {
		rows, err := repo.ListWeeklyAvailability(ctx)
		if err != nil {
			return nil, err
		}
		return domain.UniverseFromRows(rows), nil
	}
}

// Session holds one patient's booking form across interactions. Only the
// most recent provider change may update the selection; results of older
// fetches are dropped. Safe for concurrent use.
type Session struct {
	sched     Scheduling
	load      UniverseLoader
	requester *schedule.Identity

	mu         sync.Mutex
	generation uint64
	closed     bool
	universe   schedule.Universe
	selection  schedule.Selection
	category   string
}

func NewSession(sched Scheduling, load UniverseLoader, requester *schedule.Identity) *Session {
	return &Session{
		sched:     sched,
		load:      load,
		requester: requester,
		selection: schedule.Selection{State: schedule.StateNoProvider},
	}
}

func (s *Session) ChangeProvider(ctx context.Context, providerID uuid.UUID) (schedule.Selection, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return schedule.Selection{}, ErrClosed
	}
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	universe, err := s.load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return schedule.Selection{}, ErrClosed
	}
	if gen != s.generation {
		return s.selection, ErrStaleResult
	}
	if err != nil {
		return s.selection, err
	}

	now, w := s.sched.Window(s.requester)
	s.universe = universe
	s.selection = s.sched.Resolver.SelectProvider(s.selection, providerID, universe, w, now)
	return s.selection, nil
}

func (s *Session) ChangeDate(date string) schedule.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.selection
	}

	_, w := s.sched.Window(s.requester)
	s.selection = s.sched.Resolver.SelectDate(s.selection, date, s.universe, w)
	return s.selection
}

func (s *Session) ChangeTime(hm string) schedule.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.selection
	}

	s.selection = s.sched.Resolver.SelectTime(s.selection, hm)
	return s.selection
}

func (s *Session) SetCategory(category string) {
	s.mu.Lock()
	s.category = category
	s.mu.Unlock()
}

func (s *Session) Selection() schedule.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection
}

// CanSubmit runs the submission guard against the current time.
func (s *Session) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	form := schedule.FormState{
		ProblemCategory: s.category,
		ProviderID:      s.selection.ProviderID,
		Date:            s.selection.Date,
		Time:            s.selection.Time,
	}
	return s.sched.Guard().CanSubmit(form, s.selection.TimeOptions, s.requester)
}

// Close discards any fetch still in flight.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
