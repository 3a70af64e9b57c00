package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/therapy-scheduler/internal/dto"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httperr"
	"github.com/BruksfildServices01/therapy-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/therapy-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/therapy-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the booking form. A token is optional; when sent
// it widens the window for unrestricted roles.
type PublicHandler struct {
	listProviders  *ucAppointment.ListProviders
	getDateOptions *ucAppointment.GetDateOptions
	getTimeOptions *ucAppointment.GetTimeOptions
}

func NewPublicHandler(
	listProviders *ucAppointment.ListProviders,
	getDateOptions *ucAppointment.GetDateOptions,
	getTimeOptions *ucAppointment.GetTimeOptions,
) *PublicHandler {
	return &PublicHandler{
		listProviders:  listProviders,
		getDateOptions: getDateOptions,
		getTimeOptions: getTimeOptions,
	}
}

////////////////////////////////////////////////////////
// PROVIDERS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListProviders(c *gin.Context) {
	providers, err := h.listProviders.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, providers)
}

////////////////////////////////////////////////////////
// OPTIONS
////////////////////////////////////////////////////////

func (h *PublicHandler) DateOptions(c *gin.Context) {
	providerID, ok := uuidParam(c, "id", "provider_not_found")
	if !ok {
		return
	}

	sel, err := h.getDateOptions.Execute(
		c.Request.Context(),
		providerID,
		middleware.CurrentIdentity(c),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSelectionDTO(sel))
}

func (h *PublicHandler) TimeOptions(c *gin.Context) {
	providerID, ok := uuidParam(c, "id", "provider_not_found")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	sel, err := h.getTimeOptions.Execute(
		c.Request.Context(),
		ucAppointment.GetTimeOptionsInput{
			ProviderID: providerID,
			Date:       date,
			Time:       c.Query("time"),
		},
		middleware.CurrentIdentity(c),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSelectionDTO(sel))
}
