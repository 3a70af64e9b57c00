package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/dto"
)

type ListAppointmentsByMonth struct {
	repo  domain.Repository
	sched Scheduling
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	sched Scheduling,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo:  repo,
		sched: sched,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	if year < 1 || month < 1 || month > 12 {
		return nil, ErrInvalidDate
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, uc.sched.Location())
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		providerID,
		schedule.DateToKey(start),
		schedule.DateToKey(end),
	)
	if err != nil {
		return nil, err
	}

	return toListDTO(appointments), nil
}
