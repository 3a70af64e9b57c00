package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/dto"
)

type GetWeeklyAvailability struct {
	repo domain.Repository
}

func NewGetWeeklyAvailability(repo domain.Repository) *GetWeeklyAvailability {
	return &GetWeeklyAvailability{repo: repo}
}

// Execute returns the provider's full template, inactive days included.
func (uc *GetWeeklyAvailability) Execute(
	ctx context.Context,
	providerID uuid.UUID,
) ([]dto.WeeklyAvailabilityDTO, error) {

	rows, err := uc.repo.ListProviderTemplate(ctx, providerID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.WeeklyAvailabilityDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.WeeklyAvailabilityDTO{
			Weekday:   r.Weekday,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
			Active:    r.Active,
		})
	}
	return out, nil
}

type ReplaceWeeklyAvailability struct {
	repo  domain.Repository
	audit Auditor
}

func NewReplaceWeeklyAvailability(
	repo domain.Repository,
	audit Auditor,
) *ReplaceWeeklyAvailability {
	return &ReplaceWeeklyAvailability{repo: repo, audit: audit}
}

func (uc *ReplaceWeeklyAvailability) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	days []domain.DayRange,
) error {

	rows, err := domain.BuildAvailabilityRows(providerID, days)
	if err != nil {
		return err
	}

	if err := uc.repo.ReplaceWeeklyAvailability(ctx, providerID, rows); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &providerID,
		Action:   "availability_replaced",
		Entity:   "weekly_availability",
		EntityID: &providerID,
		Metadata: map[string]int{"ranges": len(rows)},
	})

	return nil
}
