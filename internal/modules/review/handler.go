package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.ListByCompany)
	rg.GET("/reviews/:id", h.GetByID)
	rg.GET("/reviews/search", h.SearchCompanies)
}

// ListByCompany возвращает опубликованные отзывы о компании.
// @Summary		Отзывы о компании
// @Tags		Отзывы
// @Param		company	query	string	true	"Название компании"
// @Param		page	query	int		false	"Страница"
// @Param		limit	query	int		false	"Размер страницы"
// @Success		200	{object}	map[string]interface{}
// @Router		/reviews [GET]
func (h *Handler) ListByCompany(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, total, err := h.svc.ListByCompany(c.Request.Context(), c.Query("company"), page, limit)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Company name is required"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": items, "total": total}})
}

// GetByID возвращает один отзыв.
func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid review ID"}})
		return
	}

	r, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Review not found"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": r})
}

// SearchCompanies ищет компании по префиксу названия.
func (h *Handler) SearchCompanies(c *gin.Context) {
	names, err := h.svc.SearchCompanies(c.Request.Context(), c.Query("q"))
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Query must be at least 2 characters"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": names})
}
