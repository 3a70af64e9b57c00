package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
)

type GetTimeOptionsInput struct {
	ProviderID uuid.UUID
	Date       string
	// Time is kept when it is still offered on Date.
	Time string
}

type GetTimeOptions struct {
	repo  domain.Repository
	sched Scheduling
}

func NewGetTimeOptions(repo domain.Repository, sched Scheduling) *GetTimeOptions {
	return &GetTimeOptions{repo: repo, sched: sched}
}

func (uc *GetTimeOptions) Execute(
	ctx context.Context,
	in GetTimeOptionsInput,
	requester *schedule.Identity,
) (schedule.Selection, error) {

	universe, err := loadProvider(ctx, uc.repo, in.ProviderID)
	if err != nil {
		return schedule.Selection{}, err
	}

	now, w := uc.sched.Window(requester)
	r := uc.sched.Resolver

	sel := r.SelectProvider(schedule.Selection{}, in.ProviderID, universe, w, now)
	sel.Time = in.Time
	return r.SelectDate(sel, in.Date, universe, w), nil
}
