package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code      string `json:"error_code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

type businessMapping struct {
	status  int
	message string
}

var businessStatus = map[string]businessMapping{
	"invalid_request":           {http.StatusBadRequest, "Dados inválidos."},
	"invalid_date":              {http.StatusBadRequest, "Data inválida."},
	"invalid_time":              {http.StatusBadRequest, "Horário inválido."},
	"invalid_category":          {http.StatusBadRequest, "Motivo da consulta inválido."},
	"invalid_modality":          {http.StatusBadRequest, "Modalidade inválida."},
	"invalid_availability":      {http.StatusBadRequest, "Disponibilidade inválida."},
	"incomplete_selection":      {http.StatusBadRequest, "Selecione motivo, psicólogo, data e horário."},
	"slot_not_offered":          {http.StatusBadRequest, "Horário não disponível para esta data."},
	"provider_not_found":        {http.StatusNotFound, "Psicólogo não encontrado."},
	"appointment_not_found":     {http.StatusNotFound, "Agendamento não encontrado."},
	"no_availability_published": {http.StatusNotFound, "Nenhuma disponibilidade publicada."},
	"no_dates_in_window":        {http.StatusConflict, "Não há datas disponíveis no momento."},
	"no_times_for_date":         {http.StatusConflict, "Não há horários para esta data."},
	"stale_selection":           {http.StatusConflict, "O horário escolhido não está mais disponível. Escolha outro."},
	"slot_taken":                {http.StatusConflict, "Este horário acabou de ser reservado."},
	"invalid_state":             {http.StatusConflict, "Operação não permitida no estado atual."},
	"forbidden":                 {http.StatusForbidden, "Acesso negado."},
}

// FromError writes the JSON error for err: business codes map to their
// status, repository failures to 503, anything else to 500.
func FromError(c *gin.Context, err error) {
	if code, ok := BusinessCode(err); ok {
		m, known := businessStatus[code]
		if !known {
			m = businessMapping{http.StatusBadRequest, code}
		}
		Write(c, m.status, code, m.message)
		return
	}

	_ = c.Error(err)

	if IsRepository(err) {
		c.JSON(http.StatusServiceUnavailable, HTTPError{
			Code:      "repository_failure",
			Message:   "Serviço temporariamente indisponível. Tente novamente.",
			Retryable: true,
		})
		return
	}

	Internal(c, "internal_error", "Erro interno.")
}
