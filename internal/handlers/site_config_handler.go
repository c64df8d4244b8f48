package handlers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/arielstudio/nail-scheduler/internal/domain/booking"
	"github.com/arielstudio/nail-scheduler/internal/httperr"
	"github.com/arielstudio/nail-scheduler/internal/media"
	"github.com/arielstudio/nail-scheduler/internal/models"
	"github.com/arielstudio/nail-scheduler/internal/storage"
	"github.com/arielstudio/nail-scheduler/internal/usecase/booking"
)

// Uploads maiores que isso são recusados antes do decode.
const maxLogoUploadBytes = 5 << 20

type SiteConfigHandler struct {
	state    domain.State
	update   *booking.UpdateSiteConfig
	uploader *storage.Uploader // nil quando não há bucket configurado
}

func NewSiteConfigHandler(
	state domain.State,
	update *booking.UpdateSiteConfig,
	uploader *storage.Uploader,
) *SiteConfigHandler {
	return &SiteConfigHandler{
		state:    state,
		update:   update,
		uploader: uploader,
	}
}

// --------- Handlers ---------

func (h *SiteConfigHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.state.Snapshot().SiteConfig)
}

func (h *SiteConfigHandler) Update(c *gin.Context) {
	var req models.SiteConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cfg, err := h.update.Execute(c.Request.Context(), req)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// UploadLogo normaliza a imagem enviada e a publica no bucket; sem
// bucket, embute como data URL, igual ao upload manual da logo.
func (h *SiteConfigHandler) UploadLogo(c *gin.Context) {
	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_logo", "Envie o arquivo no campo 'logo'.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "logo_read_failed", "Erro ao ler o arquivo.")
		return
	}
	if len(data) > maxLogoUploadBytes {
		httperr.BadRequest(c, "logo_too_large", "A imagem deve ter no máximo 5MB.")
		return
	}

	normalized, err := media.NormalizeLogo(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_logo", "Imagem inválida. Use PNG ou JPEG.")
		return
	}

	var logoURL string
	if h.uploader != nil {
		key := fmt.Sprintf("logos/logo-%d.webp", time.Now().Unix())
		logoURL, err = h.uploader.Upload(c.Request.Context(), key, normalized, "image/webp")
		if err != nil {
			httperr.Internal(c, "logo_upload_failed", "Erro ao publicar a logo.")
			return
		}
	} else {
		logoURL = media.DataURL(normalized)
	}

	cfg := h.state.Snapshot().SiteConfig
	cfg.LogoURL = logoURL

	updated, err := h.update.Execute(c.Request.Context(), cfg)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"logo_url": updated.LogoURL,
	})
}
