package landing

import (
	"errors"
	"net/http"
	"strconv"

	"safelogist/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.GET("/landing", h.GetPublished)
	v1.GET("/landing/:slug", h.GetBySlug)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/landing", h.GetAll)
	admin.POST("/landing", h.Create)
	admin.PATCH("/landing/:id", h.Update)
	admin.DELETE("/landing/:id", h.Delete)
}

// GetPublished возвращает опубликованные блоки лендинга.
// @Summary		Контент лендинга
// @Tags		Лендинг
// @Success		200	{object}	map[string]interface{}
// @Router		/landing [GET]
func (h *Handler) GetPublished(c *gin.Context) {
	blocks, err := h.service.Published(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LANDING_FAILED", "Failed to load landing content")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blocks": blocks})
}

// GetBySlug возвращает один блок по slug.
func (h *Handler) GetBySlug(c *gin.Context) {
	b, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Block not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LANDING_FAILED", "Failed to load block")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"block": b})
}

// GetAll возвращает все блоки, включая неопубликованные (админ).
func (h *Handler) GetAll(c *gin.Context) {
	blocks, err := h.service.All(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LANDING_FAILED", "Failed to load landing content")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"blocks": blocks})
}

// Create создаёт новый блок лендинга.
func (h *Handler) Create(c *gin.Context) {
	var req CreateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Slug and title are required")
		case errors.Is(err, ErrSlugExists):
			response.Error(c, http.StatusConflict, "SLUG_EXISTS", "A block with this slug already exists")
		default:
			response.Error(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to create block")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"block": b})
}

// Update изменяет существующий блок.
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid block ID")
		return
	}

	var req UpdateBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Block not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update block")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"block": b})
}

// Delete удаляет блок лендинга.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid block ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Block not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete block")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
