package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/therapy-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/therapy-scheduler/internal/middleware"
	"github.com/BruksfildServices01/therapy-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/therapy-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	confirm  *ucAppointment.ConfirmAppointment
	cancel   *ucAppointment.CancelAppointment
	complete *ucAppointment.CompleteAppointment
	byDate   *ucAppointment.ListAppointmentsByDate
	byMonth  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	confirm *ucAppointment.ConfirmAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	byDate *ucAppointment.ListAppointmentsByDate,
	byMonth *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		confirm:  confirm,
		cancel:   cancel,
		complete: complete,
		byDate:   byDate,
		byMonth:  byMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Missing fields are reported by the use case as an incomplete
// selection; binding only rejects malformed values.
type CreateAppointmentRequest struct {
	ProviderID      string `json:"provider_id" binding:"omitempty,uuid"`
	ProblemCategory string `json:"problem_category"`
	Modality        string `json:"modality"`
	Date            string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time            string `json:"time" binding:"omitempty,hhmm"`
	IsAnonymous     bool   `json:"is_anonymous"`
	Notes           string `json:"notes" binding:"max=255"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	providerID := uuid.Nil
	if req.ProviderID != "" {
		providerID = uuid.MustParse(req.ProviderID)
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Requester:       middleware.CurrentIdentity(c),
		ProviderID:      providerID,
		ProblemCategory: req.ProblemCategory,
		Modality:        req.Modality,
		Date:            req.Date,
		Time:            req.Time,
		IsAnonymous:     req.IsAnonymous,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// LIFECYCLE
// ======================================================

type transition interface {
	Execute(ctx context.Context, actor *schedule.Identity, id uuid.UUID) (*models.Appointment, error)
}

func (h *AppointmentHandler) runTransition(c *gin.Context, uc transition) {
	id, ok := uuidParam(c, "id", "appointment_not_found")
	if !ok {
		return
	}

	ap, err := uc.Execute(c.Request.Context(), middleware.CurrentIdentity(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.runTransition(c, h.confirm)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.runTransition(c, h.cancel)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.runTransition(c, h.complete)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	items, err := h.byDate.Execute(c.Request.Context(), middleware.CurrentIdentity(c).ID, date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, items)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, month, ok := yearMonthQuery(c)
	if !ok {
		return
	}

	items, err := h.byMonth.Execute(c.Request.Context(), middleware.CurrentIdentity(c).ID, year, month)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": items,
	})
}
