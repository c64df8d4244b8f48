package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httperr"
	"github.com/arielstudio/nail-scheduler/internal/httpresp"
	"github.com/arielstudio/nail-scheduler/internal/usecase/booking"
)

type ServiceHandler struct {
	state  domain.State
	upsert *booking.UpsertService
	remove *booking.RemoveService
}

func NewServiceHandler(
	state domain.State,
	upsert *booking.UpsertService,
	remove *booking.RemoveService,
) *ServiceHandler {
	return &ServiceHandler{
		state:  state,
		upsert: upsert,
		remove: remove,
	}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	httpresp.List(c, h.state.Snapshot().Services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.upsert.Execute(c.Request.Context(), booking.UpsertServiceInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc, err := h.upsert.Execute(c.Request.Context(), booking.UpsertServiceInput{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"removed": id})
}
