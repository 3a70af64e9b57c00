package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

// AvailabilityRepository is the read/replace side of weekly availability.
// List methods return active rows only; no rows means closed.
type AvailabilityRepository interface {
	ListWeeklyAvailability(
		ctx context.Context,
	) ([]models.WeeklyAvailability, error)

	ListProviderAvailability(
		ctx context.Context,
		providerID uuid.UUID,
	) ([]models.WeeklyAvailability, error)

	ReplaceWeeklyAvailability(
		ctx context.Context,
		providerID uuid.UUID,
		rows []models.WeeklyAvailability,
	) error
}

type Repository interface {
	AvailabilityRepository

	// -------- Providers --------
	ListProviders(
		ctx context.Context,
	) ([]models.User, error)

	GetProvider(
		ctx context.Context,
		id uuid.UUID,
	) (*models.User, error)

	// ListProviderTemplate returns every row, active or not, for the
	// provider's own editor.
	ListProviderTemplate(
		ctx context.Context,
		providerID uuid.UUID,
	) ([]models.WeeklyAvailability, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ListAppointmentsForPeriod returns the provider's appointments with
	// preferred_date in [fromDate, toDate).
	ListAppointmentsForPeriod(
		ctx context.Context,
		providerID uuid.UUID,
		fromDate string,
		toDate string,
	) ([]models.Appointment, error)
}
