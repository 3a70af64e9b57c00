package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

// CancelAppointment may be called by the patient who booked or by the
// provider.
type CancelAppointment struct {
	repo  domain.Repository
	sched Scheduling
	audit Auditor
}

func NewCancelAppointment(
	repo domain.Repository,
	sched Scheduling,
	audit Auditor,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		sched: sched,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor *schedule.Identity,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if !isProvider(actor, ap) && !isPatient(actor, ap) {
		return nil, domain.ErrForbidden
	}

	if err := domain.Cancel(ap, uc.sched.Clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func isProvider(actor *schedule.Identity, ap *models.Appointment) bool {
	return actor != nil && ap.ProviderID != nil && *ap.ProviderID == actor.ID
}

func isPatient(actor *schedule.Identity, ap *models.Appointment) bool {
	return actor != nil && ap.PatientID == actor.ID
}
