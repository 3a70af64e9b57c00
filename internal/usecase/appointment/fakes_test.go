package appointment

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
	"github.com/BruksfildServices01/therapy-scheduler/internal/timezone"
)

var testLoc = time.FixedZone("BRT", -3*60*60)

func at(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, testLoc)
}

func newSched(clock timezone.Clock) Scheduling {
	return Scheduling{
		Policy:   schedule.DefaultPolicy(schedule.NewRoleAuthorizer("operator")),
		Resolver: schedule.NewResolver(20, 7, schedule.NewLabeler("pt")),
		Clock:    clock,
	}
}

func patientIdentity() *schedule.Identity {
	return &schedule.Identity{ID: uuid.New(), Role: models.RolePatient}
}

// fakeRepo is an in-memory domain.Repository. CreateAppointment rejects a
// second active booking of the same slot like the database index does.
type fakeRepo struct {
	mu sync.Mutex

	providers    map[uuid.UUID]models.User
	rows         map[uuid.UUID][]models.WeeklyAvailability
	appointments map[uuid.UUID]models.Appointment

	onListAvailability func()
	failWith           error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		providers:    map[uuid.UUID]models.User{},
		rows:         map[uuid.UUID][]models.WeeklyAvailability{},
		appointments: map[uuid.UUID]models.Appointment{},
	}
}

func (f *fakeRepo) addProvider(name string, ranges ...models.WeeklyAvailability) uuid.UUID {
	id := uuid.New()
	f.providers[id] = models.User{ID: id, Name: name, Role: models.RolePsychologist}
	for _, r := range ranges {
		r.ProviderID = id
		f.rows[id] = append(f.rows[id], r)
	}
	return id
}

func monday(start, end string) models.WeeklyAvailability {
	return models.WeeklyAvailability{Weekday: int(time.Monday), StartTime: start, EndTime: end, Active: true}
}

func (f *fakeRepo) ListWeeklyAvailability(ctx context.Context) ([]models.WeeklyAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.WeeklyAvailability
	for _, rows := range f.rows {
		for _, r := range rows {
			if r.Active {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) ListProviderAvailability(ctx context.Context, id uuid.UUID) ([]models.WeeklyAvailability, error) {
	if f.onListAvailability != nil {
		f.onListAvailability()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	var out []models.WeeklyAvailability
	for _, r := range f.rows[id] {
		if r.Active {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListProviderTemplate(ctx context.Context, id uuid.UUID) ([]models.WeeklyAvailability, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.WeeklyAvailability(nil), f.rows[id]...), nil
}

func (f *fakeRepo) ReplaceWeeklyAvailability(ctx context.Context, id uuid.UUID, rows []models.WeeklyAvailability) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id] = append([]models.WeeklyAvailability(nil), rows...)
	return nil
}

func (f *fakeRepo) ListProviders(ctx context.Context) ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.User
	for id, u := range f.providers {
		for _, r := range f.rows[id] {
			if r.Active {
				out = append(out, u)
				break
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeRepo) GetProvider(ctx context.Context, id uuid.UUID) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.providers[id]
	if !ok {
		return nil, domain.ErrProviderMissing
	}
	return &u, nil
}

func (f *fakeRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, other := range f.appointments {
		if *other.ProviderID == *ap.ProviderID &&
			other.PreferredDate == ap.PreferredDate &&
			other.PreferredTime == ap.PreferredTime &&
			domain.IsActive(domain.Status(other.Status)) {
			return domain.ErrSlotTaken
		}
	}
	ap.ID = uuid.New()
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) GetAppointment(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ap, ok := f.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &ap, nil
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appointments[ap.ID] = *ap
	return nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(ctx context.Context, id uuid.UUID, from, to string) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, ap := range f.appointments {
		if *ap.ProviderID == id && ap.PreferredDate >= from && ap.PreferredDate < to {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PreferredDate+out[i].PreferredTime < out[j].PreferredDate+out[j].PreferredTime
	})
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeAuditor struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *fakeAuditor) Dispatch(ev audit.Event) {
	a.mu.Lock()
	a.events = append(a.events, ev)
	a.mu.Unlock()
}

func (a *fakeAuditor) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []string
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}
