package dto

import "github.com/google/uuid"

type ProviderDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
