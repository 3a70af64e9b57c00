package dto

import "github.com/google/uuid"

type AppointmentListDTO struct {
	ID              uuid.UUID  `json:"id"`
	PatientID       *uuid.UUID `json:"patient_id"`
	IsAnonymous     bool       `json:"is_anonymous"`
	ProblemCategory string     `json:"problem_category"`
	Modality        string     `json:"modality"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	TimeLabel       string     `json:"time_label"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes,omitempty"`
}
