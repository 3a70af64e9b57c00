package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// --------------------------------------------------
// Providers
// --------------------------------------------------

func (r *SchedulingGormRepository) ListProviders(
	ctx context.Context,
) ([]models.User, error) {

	published := r.db.
		Model(&models.WeeklyAvailability{}).
		Select("provider_id").
		Where("active = ?", true)

	var providers []models.User
	if err := r.db.WithContext(ctx).
		Where("role = ? AND id IN (?)", models.RolePsychologist, published).
		Order("name ASC").
		Find(&providers).Error; err != nil {
		return nil, httperr.ErrRepository("list providers", err)
	}

	return providers, nil
}

func (r *SchedulingGormRepository) GetProvider(
	ctx context.Context,
	id uuid.UUID,
) (*models.User, error) {

	var u models.User
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, models.RolePsychologist).
		First(&u).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrProviderMissing
	}
	if err != nil {
		return nil, httperr.ErrRepository("get provider", err)
	}

	return &u, nil
}

// --------------------------------------------------
// Weekly availability
// --------------------------------------------------

func (r *SchedulingGormRepository) ListWeeklyAvailability(
	ctx context.Context,
) ([]models.WeeklyAvailability, error) {

	var rows []models.WeeklyAvailability
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("provider_id, weekday, start_time").
		Find(&rows).Error; err != nil {
		return nil, httperr.ErrRepository("list weekly availability", err)
	}

	return rows, nil
}

func (r *SchedulingGormRepository) ListProviderAvailability(
	ctx context.Context,
	providerID uuid.UUID,
) ([]models.WeeklyAvailability, error) {

	var rows []models.WeeklyAvailability
	if err := r.db.WithContext(ctx).
		Where("provider_id = ? AND active = ?", providerID, true).
		Order("weekday, start_time").
		Find(&rows).Error; err != nil {
		return nil, httperr.ErrRepository("list provider availability", err)
	}

	return rows, nil
}

func (r *SchedulingGormRepository) ListProviderTemplate(
	ctx context.Context,
	providerID uuid.UUID,
) ([]models.WeeklyAvailability, error) {

	var rows []models.WeeklyAvailability
	if err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("weekday, start_time").
		Find(&rows).Error; err != nil {
		return nil, httperr.ErrRepository("list provider template", err)
	}

	return rows, nil
}

// ReplaceWeeklyAvailability swaps the provider's whole template in one
// transaction.
func (r *SchedulingGormRepository) ReplaceWeeklyAvailability(
	ctx context.Context,
	providerID uuid.UUID,
	rows []models.WeeklyAvailability,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("provider_id = ?", providerID).
			Delete(&models.WeeklyAvailability{}).Error; err != nil {
			return err
		}

		if len(rows) == 0 {
			return nil
		}

		for i := range rows {
			rows[i].ID = 0
			rows[i].ProviderID = providerID
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return httperr.ErrRepository("replace weekly availability", err)
	}

	return nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *SchedulingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Create(ap).Error
	if httperr.IsUniqueViolation(err) {
		return domain.ErrSlotTaken
	}
	if err != nil {
		return httperr.ErrRepository("create appointment", err)
	}

	return nil
}

func (r *SchedulingGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, httperr.ErrRepository("get appointment", err)
	}

	return &ap, nil
}

func (r *SchedulingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		return httperr.ErrRepository("update appointment", err)
	}
	return nil
}

func (r *SchedulingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	providerID uuid.UUID,
	fromDate string,
	toDate string,
) ([]models.Appointment, error) {

	var apps []models.Appointment

	err := r.db.WithContext(ctx).
		Where(
			"provider_id = ? AND preferred_date >= ? AND preferred_date < ?",
			providerID,
			fromDate,
			toDate,
		).
		Order("preferred_date ASC, preferred_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, httperr.ErrRepository("list appointments", err)
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*SchedulingGormRepository)(nil)
