package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httperr"
	"github.com/arielstudio/nail-scheduler/internal/httpresp"
	"github.com/arielstudio/nail-scheduler/internal/usecase/booking"
)

type BlockedSlotHandler struct {
	state  domain.State
	toggle *booking.ToggleBlockedSlot
}

func NewBlockedSlotHandler(
	state domain.State,
	toggle *booking.ToggleBlockedSlot,
) *BlockedSlotHandler {
	return &BlockedSlotHandler{
		state:  state,
		toggle: toggle,
	}
}

// --------- Requests ---------

type ToggleBlockedSlotRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time"`                    // vazio bloqueia o dia inteiro
}

// --------- Handlers ---------

func (h *BlockedSlotHandler) List(c *gin.Context) {
	blocked := h.state.Snapshot().BlockedSlots

	date := c.Query("date")
	if date == "" {
		httpresp.List(c, blocked)
		return
	}

	filtered := blocked[:0:0]
	for _, b := range blocked {
		if b.Date == date {
			filtered = append(filtered, b)
		}
	}
	httpresp.List(c, filtered)
}

func (h *BlockedSlotHandler) Toggle(c *gin.Context) {
	var req ToggleBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	removed, err := h.toggle.Execute(c.Request.Context(), req.Date, req.Time)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":    req.Date,
		"time":    req.Time,
		"blocked": !removed,
	})
}
