package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
)

// GetDateOptions opens the booking form on a provider: date options plus
// the time options of the preselected date.
type GetDateOptions struct {
	repo  domain.Repository
	sched Scheduling
}

func NewGetDateOptions(repo domain.Repository, sched Scheduling) *GetDateOptions {
	return &GetDateOptions{repo: repo, sched: sched}
}

func (uc *GetDateOptions) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	requester *schedule.Identity,
) (schedule.Selection, error) {

	universe, err := loadProvider(ctx, uc.repo, providerID)
	if err != nil {
		return schedule.Selection{}, err
	}

	now, w := uc.sched.Window(requester)
	return uc.sched.Resolver.SelectProvider(schedule.Selection{}, providerID, universe, w, now), nil
}

// loadProvider returns a universe holding only providerID. A provider
// with no active rows yields an empty universe, not an error.
func loadProvider(
	ctx context.Context,
	repo domain.Repository,
	providerID uuid.UUID,
) (schedule.Universe, error) {

	if _, err := repo.GetProvider(ctx, providerID); err != nil {
		return nil, err
	}

	rows, err := repo.ListProviderAvailability(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return domain.UniverseFromRows(rows), nil
}
