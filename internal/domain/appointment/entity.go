package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/therapy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
)

type ProblemCategory string

const (
	CategoryCouple   ProblemCategory = "couple"
	CategoryAnxiety  ProblemCategory = "anxiety"
	CategoryEmotions ProblemCategory = "emotions"
	CategoryUnknown  ProblemCategory = "unknown"
)

type Modality string

const (
	ModalityVideo Modality = "video"
	ModalityChat  Modality = "chat"
)

var (
	ErrInvalidCategory = httperr.ErrBusiness("invalid_category")
	ErrInvalidModality = httperr.ErrBusiness("invalid_modality")
	ErrNotFound        = httperr.ErrBusiness("appointment_not_found")
	ErrProviderMissing = httperr.ErrBusiness("provider_not_found")
	ErrSlotTaken       = httperr.ErrBusiness("slot_taken")
	ErrSlotNotOffered  = httperr.ErrBusiness("slot_not_offered")
	ErrForbidden       = httperr.ErrBusiness("forbidden")
)

func ParseCategory(s string) (ProblemCategory, error) {
	switch c := ProblemCategory(strings.ToLower(strings.TrimSpace(s))); c {
	case CategoryCouple, CategoryAnxiety, CategoryEmotions, CategoryUnknown:
		return c, nil
	}
	return "", ErrInvalidCategory
}

func ParseModality(s string) (Modality, error) {
	switch m := Modality(strings.ToLower(strings.TrimSpace(s))); m {
	case ModalityVideo, ModalityChat:
		return m, nil
	}
	return "", ErrInvalidModality
}

// ===============================
// Domain Actions
// ===============================

func Confirm(ap *models.Appointment, now time.Time) error {
	if err := CanConfirm(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	ap.ConfirmedAt = &now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}
