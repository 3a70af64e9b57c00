package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httperr"
)

// SelectionDTO is the booking form state sent to the client. Condition
// carries the error code explaining an empty list, if any.
type SelectionDTO struct {
	State       string                `json:"state"`
	ProviderID  *uuid.UUID            `json:"provider_id"`
	Date        string                `json:"date"`
	Time        string                `json:"time"`
	DateOptions []schedule.DateOption `json:"date_options"`
	TimeOptions []schedule.TimeOption `json:"time_options"`
	Condition   string                `json:"condition,omitempty"`
}

func NewSelectionDTO(sel schedule.Selection) SelectionDTO {
	out := SelectionDTO{
		State:       sel.State.String(),
		Date:        sel.Date,
		Time:        sel.Time,
		DateOptions: sel.DateOptions,
		TimeOptions: sel.TimeOptions,
	}

	if sel.ProviderID != uuid.Nil {
		id := sel.ProviderID
		out.ProviderID = &id
	}
	if out.DateOptions == nil {
		out.DateOptions = []schedule.DateOption{}
	}
	if out.TimeOptions == nil {
		out.TimeOptions = []schedule.TimeOption{}
	}
	if code, ok := httperr.BusinessCode(sel.Condition); ok {
		out.Condition = code
	}

	return out
}
