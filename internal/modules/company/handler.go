package company

import (
	"errors"
	"net/http"
	"strconv"

	"safelogist/internal/pkg/response"
	pkgvalidator "safelogist/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	if public != nil {
		public.GET("/companies", h.List)
		public.GET("/companies/:id", h.GetByPublicID)
	}

	if protected != nil {
		protected.PATCH("/companies/:name/profile", h.UpdateProfile)
	}
}

// List возвращает каталог компаний.
// @Summary		Каталог компаний
// @Tags		Компании
// @Param		verified	query	bool	false	"Только верифицированные"
// @Param		page		query	int		false	"Страница"
// @Param		limit		query	int		false	"Размер страницы"
// @Success		200	{object}	map[string]interface{}
// @Router		/companies [GET]
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	verifiedOnly := c.Query("verified") == "true"

	items, total, err := h.svc.List(c.Request.Context(), verifiedOnly, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": items, "total": total}})
}

// GetByPublicID возвращает карточку компании по её публичному ID (min_review_id).
func (h *Handler) GetByPublicID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid company ID"}})
		return
	}

	company, err := h.svc.GetByPublicID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Company not found"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": company})
}

// UpdateProfile редактирует профиль компании (только подтверждённый владелец).
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"}})
		return
	}

	var in UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Invalid request body"}})
		return
	}
	if details := pkgvalidator.Validate(in); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile fields", details)
		return
	}

	company, err := h.svc.UpdateProfile(c.Request.Context(), userID, c.Param("name"), in)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Company not found"}})
		case errors.Is(err, ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": gin.H{"code": "FORBIDDEN", "message": "You don't own this company"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": company})
}
