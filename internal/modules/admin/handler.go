package admin

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"safelogist/internal/domain"
	"safelogist/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	// statistics
	admin.GET("/stats", h.GetStats)

	// users moderation
	admin.GET("/users", h.GetUsers)
	admin.POST("/users/:id/block", h.BlockUser)
	admin.POST("/users/:id/unblock", h.UnblockUser)
}

// GetStats возвращает сводную статистику платформы.
// @Summary		Статистика платформы
// @Tags		Админ
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/admin/stats [GET]
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "STATS_FAILED", "Failed to load statistics")
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// GetUsers возвращает список пользователей с фильтрами.
func (h *Handler) GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	users, total, err := h.service.GetUsers(c.Request.Context(), c.Query("role"), c.Query("search"), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "USERS_FAILED", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": users, "total": total})
}

// BlockUser блокирует аккаунт пользователя.
func (h *Handler) BlockUser(c *gin.Context) {
	h.toggleUser(c, h.service.BlockUser)
}

// UnblockUser снимает блокировку с аккаунта.
func (h *Handler) UnblockUser(c *gin.Context) {
	h.toggleUser(c, h.service.UnblockUser)
}

func (h *Handler) toggleUser(c *gin.Context, op func(ctx context.Context, id int64) (*domain.User, error)) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	user, err := op(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
