package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arielstudio/nail-scheduler/internal/httperr"
)

// mapBusinessError traduz códigos de negócio para HTTP + mensagem.
func mapBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch be.Code {
	case "slot_no_longer_available":
		httperr.Write(c, http.StatusConflict, be.Code, "Esse horário acabou de ser preenchido. Escolha outro.")
	case "invalid_state":
		httperr.Write(c, http.StatusConflict, be.Code, "O agendamento já foi confirmado ou cancelado.")
	case "appointment_not_found":
		httperr.NotFound(c, be.Code, "Agendamento não encontrado.")
	case "service_not_found":
		httperr.NotFound(c, be.Code, "Serviço não encontrado.")
	case "missing_client_name":
		httperr.BadRequest(c, be.Code, "Informe seu nome.")
	case "missing_client_whatsapp":
		httperr.BadRequest(c, be.Code, "Informe seu WhatsApp.")
	case "missing_service":
		httperr.BadRequest(c, be.Code, "Escolha um serviço.")
	case "missing_service_name":
		httperr.BadRequest(c, be.Code, "Informe o nome do serviço.")
	case "invalid_date":
		httperr.BadRequest(c, be.Code, "Data inválida.")
	case "invalid_time":
		httperr.BadRequest(c, be.Code, "Horário inválido.")
	case "invalid_status":
		httperr.BadRequest(c, be.Code, "Status inválido.")
	default:
		httperr.BadRequest(c, be.Code, "Dados inválidos.")
	}
}
