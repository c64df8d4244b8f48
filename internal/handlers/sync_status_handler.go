package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arielstudio/nail-scheduler/internal/state"
)

type SyncStatusHandler struct {
	controller *state.Controller
}

func NewSyncStatusHandler(controller *state.Controller) *SyncStatusHandler {
	return &SyncStatusHandler{controller: controller}
}

// Status expõe a fase do controller e os diagnósticos acumulados. O
// painel usa o kind "access_forbidden" para mostrar a orientação de
// permissões em vez de um aviso genérico de conectividade.
func (h *SyncStatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"phase":       h.controller.Phase(),
		"diagnostics": h.controller.Diagnostics(),
	})
}
