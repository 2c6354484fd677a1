package registry

import (
	"errors"
	"net/http"
	"strings"

	"safelogist/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the registry clients behind one proxy endpoint.
type Handler struct {
	clients map[string]Lookup
	moldova *MoldovaClient
	log     *zap.Logger
}

func NewHandler(russia *RussiaClient, portugal *PortugalClient, belarus *BelarusClient, moldova *MoldovaClient, log *zap.Logger) *Handler {
	return &Handler{
		clients: map[string]Lookup{
			"russia":   russia,
			"portugal": portugal,
			"belarus":  belarus,
			"moldova":  moldova,
		},
		moldova: moldova,
		log:     log,
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/registry/:source/:id", h.LookupCompany)
	rg.GET("/registry/moldova/:id/financials", h.LookupFinancials)
}

// LookupCompany проксирует запрос в государственный реестр компаний.
// @Summary		Данные из госреестра
// @Tags		Реестры
// @Param		source	path	string	true	"Реестр: russia, portugal, belarus, moldova"
// @Param		id		path	string	true	"Налоговый/регистрационный номер"
// @Success		200	{object}	map[string]interface{}
// @Failure		404	{object}	map[string]interface{} "Компания не найдена в реестре"
// @Failure		502	{object}	map[string]interface{} "Реестр недоступен"
// @Router		/registry/{source}/{id} [GET]
func (h *Handler) LookupCompany(c *gin.Context) {
	source := strings.ToLower(c.Param("source"))
	client, ok := h.clients[source]
	if !ok {
		response.Error(c, http.StatusBadRequest, "UNKNOWN_REGISTRY", "Unknown registry source")
		return
	}

	rec, err := client.Lookup(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLookupError(c, source, err)
		return
	}
	response.Success(c, http.StatusOK, rec)
}

// LookupFinancials возвращает данные финансовой отчётности (только Молдова).
func (h *Handler) LookupFinancials(c *gin.Context) {
	rec, err := h.moldova.LookupFinancial(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondLookupError(c, "moldova", err)
		return
	}
	response.Success(c, http.StatusOK, rec)
}

func (h *Handler) respondLookupError(c *gin.Context, source string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Company not found in registry")
	case errors.Is(err, ErrUpstream):
		h.log.Warn("registry upstream failed", zap.String("source", source), zap.Error(err))
		response.Error(c, http.StatusBadGateway, "REGISTRY_UNAVAILABLE", "Registry is temporarily unavailable")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "Internal error")
	}
}
