package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/therapy-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/therapy-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/therapy-scheduler/internal/usecase/appointment"
)

type WeeklyAvailabilityHandler struct {
	get     *ucAppointment.GetWeeklyAvailability
	replace *ucAppointment.ReplaceWeeklyAvailability
}

func NewWeeklyAvailabilityHandler(
	get *ucAppointment.GetWeeklyAvailability,
	replace *ucAppointment.ReplaceWeeklyAvailability,
) *WeeklyAvailabilityHandler {
	return &WeeklyAvailabilityHandler{get: get, replace: replace}
}

type DayRangeRequest struct {
	Weekday   *int   `json:"weekday" binding:"required,min=0,max=6"`
	StartTime string `json:"start_time" binding:"required,hhmm"`
	EndTime   string `json:"end_time" binding:"required,hhmm"`
	Active    bool   `json:"active"`
}

type WeeklyAvailabilityRequest struct {
	Days []DayRangeRequest `json:"days" binding:"required,dive"`
}

func (h *WeeklyAvailabilityHandler) Get(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	days, err := h.get.Execute(c.Request.Context(), identity.ID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, days)
}

func (h *WeeklyAvailabilityHandler) Update(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)

	var req WeeklyAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	days := make([]domain.DayRange, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, domain.DayRange{
			Weekday:   *d.Weekday,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			Active:    d.Active,
		})
	}

	if err := h.replace.Execute(c.Request.Context(), identity.ID, days); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
