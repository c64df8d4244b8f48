package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httperr"
	"github.com/arielstudio/nail-scheduler/internal/httpresp"
	"github.com/arielstudio/nail-scheduler/internal/metrics"
	"github.com/arielstudio/nail-scheduler/internal/usecase/booking"
	"github.com/arielstudio/nail-scheduler/internal/validators"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	state        domain.State
	availability *booking.GetAvailability
	create       *booking.CreateAppointment
	catalog      []string
	metrics      *metrics.Metrics
}

func NewPublicHandler(
	state domain.State,
	availability *booking.GetAvailability,
	create *booking.CreateAppointment,
	catalog []string,
	m *metrics.Metrics,
) *PublicHandler {
	return &PublicHandler{
		state:        state,
		availability: availability,
		create:       create,
		catalog:      catalog,
		metrics:      m,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientWhatsapp string `json:"client_whatsapp" binding:"required"`
	ServiceID      string `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
}

////////////////////////////////////////////////////////
// SITE
////////////////////////////////////////////////////////

// Site devolve tudo que a página pública precisa numa resposta só:
// configuração, serviços e a grade de horários.
func (h *PublicHandler) Site(c *gin.Context) {
	snap := h.state.Snapshot()

	c.JSON(http.StatusOK, gin.H{
		"config":   snap.SiteConfig,
		"services": snap.Services,
		"slots":    h.catalog,
	})
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.state.Snapshot().Services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_params", "Data obrigatória.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), dateStr)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsWhatsappValid(req.ClientWhatsapp) {
		httperr.BadRequest(c, "invalid_whatsapp", "Número de WhatsApp inválido.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		booking.CreateAppointmentInput{
			ClientName:     req.ClientName,
			ClientWhatsapp: req.ClientWhatsapp,
			ServiceID:      req.ServiceID,
			Date:           req.Date,
			Time:           req.Time,
		},
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	h.metrics.AppointmentsCreated.Inc()

	c.JSON(http.StatusCreated, ap)
}
