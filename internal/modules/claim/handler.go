package claim

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"safelogist/internal/modules/attachment"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, admin *gin.RouterGroup) {
	if public != nil {
		public.POST("/claims", h.Create)
	}

	if admin != nil {
		admin.GET("/claims", h.ListPending)
		admin.GET("/claims/:id", h.GetByID)
		admin.POST("/claims/:id/approve", h.Approve)
		admin.POST("/claims/:id/reject", h.Reject)
		admin.DELETE("/claims/:id", h.Delete)
	}
}

// Create подаёт заявку на владение компанией.
// @Summary		Заявка на владение компанией
// @Description	Публичная форма: заявитель указывает свои данные и прикладывает документ-подтверждение (PDF/JPEG/PNG, до 10 МБ). Аккаунт не требуется.
// @Tags		Заявки на владение
// @Accept		multipart/form-data
// @Param		full_name		formData	string	true	"ФИО заявителя"
// @Param		phone			formData	string	true	"Телефон"
// @Param		position		formData	string	false	"Должность"
// @Param		email			formData	string	true	"Email"
// @Param		company_name	formData	string	true	"Компания"
// @Param		document		formData	file	true	"Документ-подтверждение"
// @Success		201	{object}	map[string]interface{}
// @Failure		400,413	{object}	map[string]interface{}
// @Router		/claims [POST]
func (h *Handler) Create(c *gin.Context) {
	in := CreateClaimInput{
		FullName:    c.PostForm("full_name"),
		Phone:       c.PostForm("phone"),
		Position:    c.PostForm("position"),
		Email:       c.PostForm("email"),
		CompanyName: c.PostForm("company_name"),
	}

	var doc *DocumentUpload
	if fh, err := c.FormFile("document"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_FILE", "message": "Cannot read document"}})
			return
		}
		defer f.Close()
		doc = &DocumentUpload{
			Body:        f,
			ContentType: fh.Header.Get("Content-Type"),
			FileName:    fh.Filename,
		}
	}

	cl, err := h.svc.Create(c.Request.Context(), in, doc)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Invalid input"}})
		case errors.Is(err, ErrMissingDocument):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "MISSING_DOCUMENT", "message": "Supporting document is required"}})
		case errors.Is(err, attachment.ErrInvalidFileType):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_FILE_TYPE", "message": "Only PDF, JPEG and PNG documents are allowed"}})
		case errors.Is(err, attachment.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "error": gin.H{"code": "FILE_TOO_LARGE", "message": "Document exceeds 10 MB"}})
		case errors.Is(err, attachment.ErrEmptyFile):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "EMPTY_FILE", "message": "Document is empty"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": cl})
}

// ListPending возвращает очередь заявок на владение.
func (h *Handler) ListPending(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	items, total, err := h.svc.ListPending(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": items, "total": total}})
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid claim ID"}})
		return
	}

	cl, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Claim not found"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": cl})
}

// Approve подтверждает владение компанией.
// @Summary		Одобрить заявку на владение (админ)
// @Description	Создаёт аккаунт заявителя при необходимости, привязывает компанию к владельцу и помечает её верифицированной. Компания может иметь только одного владельца.
// @Tags		Заявки на владение
// @Security	BearerAuth
// @Param		id	path	int	true	"ID заявки"
// @Success		200	{object}	map[string]interface{}
// @Failure		404,409	{object}	map[string]interface{}
// @Router		/admin/claims/:id/approve [POST]
func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid claim ID"}})
		return
	}

	company, err := h.svc.Approve(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Claim not found"}})
		case errors.Is(err, ErrAlreadyApproved):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": gin.H{"code": "ALREADY_APPROVED", "message": "Claim is already approved"}})
		case errors.Is(err, ErrInvalidStateTransition):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": gin.H{"code": "INVALID_STATE", "message": "Claim is not pending"}})
		case errors.Is(err, ErrOwnershipConflict):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": gin.H{"code": "OWNERSHIP_CONFLICT", "message": "Company already has a confirmed owner"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": company})
}

// Reject отклоняет заявку на владение.
func (h *Handler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid claim ID"}})
		return
	}

	var in RejectInput
	_ = c.ShouldBindJSON(&in)

	if err := h.svc.Reject(c.Request.Context(), id, in); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Claim not found"}})
		case errors.Is(err, ErrInvalidStateTransition):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": gin.H{"code": "INVALID_STATE", "message": "Claim is not pending"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "rejected"})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid claim ID"}})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Claim not found"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "deleted"})
}
