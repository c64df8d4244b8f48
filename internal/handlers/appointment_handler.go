package handlers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httpresp"
	"github.com/arielstudio/nail-scheduler/internal/models"
	"github.com/arielstudio/nail-scheduler/internal/usecase/booking"
)

// Placeholder exibido quando o serviço referenciado foi removido.
const removedServiceName = "Serviço removido"

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	state     domain.State
	setStatus *booking.SetAppointmentStatus
	loc       *time.Location
}

func NewAppointmentHandler(
	state domain.State,
	setStatus *booking.SetAppointmentStatus,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		state:     state,
		setStatus: setStatus,
		loc:       loc,
	}
}

// ======================================================
// DTOs
// ======================================================

type AppointmentListItem struct {
	models.Appointment
	ServiceName string `json:"serviceName"`
	Day         string `json:"day"`
	Slot        string `json:"slot"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	snap := h.state.Snapshot()

	names := make(map[string]string, len(snap.Services))
	for _, s := range snap.Services {
		names[s.ID] = s.Name
	}

	status := c.Query("status")
	day := c.Query("date")

	items := make([]AppointmentListItem, 0, len(snap.Appointments))
	for _, ap := range snap.Appointments {
		if status != "" && ap.Status != status {
			continue
		}

		local := ap.Date.In(h.loc)
		apDay := local.Format(domain.DateLayout)
		if day != "" && apDay != day {
			continue
		}

		name, ok := names[ap.ServiceID]
		if !ok {
			name = removedServiceName
		}

		items = append(items, AppointmentListItem{
			Appointment: ap,
			ServiceName: name,
			Day:         apDay,
			Slot:        local.Format(domain.SlotLayout),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})

	httpresp.List(c, items)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.StatusCancelled)
}

func (h *AppointmentHandler) transition(c *gin.Context, next domain.Status) {
	id := c.Param("id")

	ap, err := h.setStatus.Execute(c.Request.Context(), id, next)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
