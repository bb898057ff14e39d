package v1

import (
	"net/http"

	"go-consulting-backend/config"
	"go-consulting-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
)

// SiteConfig is the public presentation config the frontend needs at boot:
// the map token and the displayed contact address. Nothing secret goes here.
type SiteConfig struct {
	MapboxPublicToken string `json:"mapbox_public_token"`
	ContactEmail      string `json:"contact_email"`
}

type SiteConfigHandler struct {
	cfg *config.Config
}

// NewSiteConfigHandler registers the public site-config route
func NewSiteConfigHandler(public *gin.RouterGroup, cfg *config.Config) {
	handler := &SiteConfigHandler{cfg: cfg}

	public.GET("/site-config", handler.GetSiteConfig)
}

// GetSiteConfig godoc
// @Summary      Public Site Configuration
// @Description  Presentation config for the frontend (map token, contact email).
// @Tags         site
// @Produce      json
// @Success      200  {object}  response.Response{data=SiteConfig}
// @Router       /site-config [get]
func (h *SiteConfigHandler) GetSiteConfig(c *gin.Context) {
	response.Success(c, http.StatusOK, "Site configuration", SiteConfig{
		MapboxPublicToken: h.cfg.MapboxPublicToken,
		ContactEmail:      h.cfg.ContactEmailTo,
	})
}
