package models

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyAvailability is one open range of a provider on a weekday
// (0 = Sunday). A provider's rows are replaced as a whole on save.
type WeeklyAvailability struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProviderID uuid.UUID `gorm:"type:uuid;not null;index:idx_availability_provider_weekday" json:"provider_id"`

	Weekday int `gorm:"not null;index:idx_availability_provider_weekday" json:"weekday"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`
	Active    bool   `gorm:"not null" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
