package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RolePatient      = "patient"
	RolePsychologist = "psychologist"
	RoleOperator     = "operator"
)

// User mirrors the accounts owned by the identity provider. This service
// only reads them.
type User struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Role  string `gorm:"size:20;default:'patient'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
