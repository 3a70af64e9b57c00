package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/dto"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

type ListAppointmentsByDate struct {
	repo  domain.Repository
	sched Scheduling
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	sched Scheduling,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:  repo,
		sched: sched,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	providerID uuid.UUID,
	date string,
) ([]dto.AppointmentListDTO, error) {

	day, err := schedule.ParseDateKey(date, uc.sched.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		providerID,
		schedule.DateToKey(day),
		schedule.DateToKey(day.AddDate(0, 0, 1)),
	)
	if err != nil {
		return nil, err
	}

	return toListDTO(appointments), nil
}

func toListDTO(appointments []models.Appointment) []dto.AppointmentListDTO {
	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		item := dto.AppointmentListDTO{
			ID:              ap.ID,
			IsAnonymous:     ap.IsAnonymous,
			ProblemCategory: ap.ProblemCategory,
			Modality:        ap.Modality,
			Date:            ap.PreferredDate,
			Time:            ap.PreferredTime,
			TimeLabel:       schedule.FormatDisplayTime(ap.PreferredTime),
			Status:          ap.Status,
			Notes:           ap.Notes,
		}
		if !ap.IsAnonymous {
			patient := ap.PatientID
			item.PatientID = &patient
		}
		out = append(out, item)
	}
	return out
}
