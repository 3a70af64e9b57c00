package appointment

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Requester *schedule.Identity

	ProviderID      uuid.UUID
	ProblemCategory string
	Modality        string

	Date        string
	Time        string
	IsAnonymous bool
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	sched Scheduling
	audit Auditor
}

func NewCreateAppointment(
	repo domain.Repository,
	sched Scheduling,
	audit Auditor,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		sched: sched,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.Requester == nil {
		return nil, domain.ErrForbidden
	}

	form := schedule.FormState{
		ProblemCategory: strings.TrimSpace(in.ProblemCategory),
		ProviderID:      in.ProviderID,
		Date:            strings.TrimSpace(in.Date),
		Time:            strings.TrimSpace(in.Time),
	}
	if form.ProblemCategory == "" || form.ProviderID == uuid.Nil || form.Date == "" || form.Time == "" {
		return nil, schedule.ErrIncompleteSelection
	}

	// --------------------------------------------------
	// 1) Enums and formats
	// --------------------------------------------------
	category, err := domain.ParseCategory(form.ProblemCategory)
	if err != nil {
		return nil, err
	}
	modality, err := domain.ParseModality(in.Modality)
	if err != nil {
		return nil, err
	}

	day, err := schedule.ParseDateKey(form.Date, uc.sched.Location())
	if err != nil {
		return nil, ErrInvalidDate
	}
	if !domain.IsHHMM(form.Time) {
		return nil, ErrInvalidTime
	}

	// --------------------------------------------------
	// 2) Provider template
	// --------------------------------------------------
	universe, err := loadProvider(ctx, uc.repo, in.ProviderID)
	if err != nil {
		return nil, err
	}
	weekly, ok := universe[in.ProviderID]
	if !ok {
		return nil, schedule.ErrNoAvailabilityPublished
	}

	// --------------------------------------------------
	// 3) Slots re-derived under the current window
	// --------------------------------------------------
	_, w := uc.sched.Window(in.Requester)
	options := uc.sched.Resolver.TimeOptions(weekly, day, w)

	guard := uc.sched.Guard()
	if err := guard.Validate(form, options, in.Requester); err != nil {
		return nil, err
	}
	if !schedule.OffersTime(options, form.Time) {
		return nil, domain.ErrSlotNotOffered
	}

	// --------------------------------------------------
	// 4) Persist
	// --------------------------------------------------
	provider := in.ProviderID
	ap := &models.Appointment{
		PatientID:       in.Requester.ID,
		ProviderID:      &provider,
		IsAnonymous:     in.IsAnonymous,
		ProblemCategory: string(category),
		Modality:        string(modality),
		PreferredDate:   form.Date,
		PreferredTime:   form.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           strings.TrimSpace(in.Notes),
	}

	// The clock may have moved since the first check.
	if err := guard.Validate(form, options, in.Requester); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5) Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.Requester.ID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"provider_id": provider.String(),
			"date":        ap.PreferredDate,
			"time":        ap.PreferredTime,
		},
	})

	return ap, nil
}
