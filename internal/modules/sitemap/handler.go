package sitemap

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/sitemap.xml", h.GetSitemap)
}

// GetSitemap отдаёт sitemap.xml для поисковых систем.
func (h *Handler) GetSitemap(c *gin.Context) {
	body, err := h.service.Generate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "SITEMAP_FAILED", "message": "Failed to generate sitemap"}})
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}
