package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

// CompleteAppointment closes a confirmed session. Provider only.
type CompleteAppointment struct {
	repo  domain.Repository
	sched Scheduling
	audit Auditor
}

func NewCompleteAppointment(
	repo domain.Repository,
	sched Scheduling,
	audit Auditor,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		sched: sched,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	actor *schedule.Identity,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !isProvider(actor, ap) {
		return nil, domain.ErrForbidden
	}

	if err := domain.Complete(ap, uc.sched.Clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
