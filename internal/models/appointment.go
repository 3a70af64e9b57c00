package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment is a booking request for a (date, time) slot. The partial
// unique index rejects a second active booking of the same provider slot.
type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PatientID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	ProviderID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_appointments_active_slot,priority:1,where:status <> 'cancelled' AND status <> 'completed'" json:"provider_id"`

	IsAnonymous     bool   `gorm:"default:false" json:"is_anonymous"`
	ProblemCategory string `gorm:"size:20;not null" json:"problem_category"`
	Modality        string `gorm:"size:10;not null" json:"modality"`

	PreferredDate string `gorm:"size:10;not null;uniqueIndex:idx_appointments_active_slot,priority:2" json:"preferred_date"`
	PreferredTime string `gorm:"size:5;not null;uniqueIndex:idx_appointments_active_slot,priority:3" json:"preferred_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
