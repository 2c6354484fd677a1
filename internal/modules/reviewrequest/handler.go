package reviewrequest

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

func (h *Handler) RegisterRoutes(protected, admin *gin.RouterGroup) {
	if protected != nil {
		protected.POST("/requests", h.Create)
		protected.GET("/requests/my", h.ListMy)
	}

	if admin != nil {
		admin.GET("/requests", h.ListPending)
		admin.GET("/requests/:id", h.GetByID)
		admin.POST("/requests/:id/approve", h.Approve)
		admin.POST("/requests/:id/reject", h.Reject)
		admin.DELETE("/requests/:id", h.Delete)
	}
}

// Create создаёт заявку на отзыв о компании.
// @Summary		Подать отзыв на модерацию
// @Description	Пользователь с заполненной компанией в профиле подаёт отзыв о контрагенте. Опционально прикладывается файл-подтверждение (PDF/JPEG/PNG, до 10 МБ).
// @Tags		Заявки на отзыв
// @Security	BearerAuth
// @Accept		multipart/form-data
// @Param		target_company	formData	string	true	"Компания, о которой отзыв"
// @Param		rating			formData	int		true	"Оценка 1-5"
// @Param		comment			formData	string	true	"Текст отзыва (мин. 30 символов)"
// @Param		attachment		formData	file	false	"Файл-подтверждение"
// @Success		201	{object}	map[string]interface{}
// @Failure		400,401,413	{object}	map[string]interface{}
// @Router		/requests [POST]
func (h *Handler) Create(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"}})
		return
	}

	rating, _ := strconv.Atoi(c.PostForm("rating"))
	in := CreateRequestInput{
		TargetCompany: c.PostForm("target_company"),
		Rating:        rating,
		Comment:       c.PostForm("comment"),
	}

	var att *AttachmentUpload
	if fh, err := c.FormFile("attachment"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_FILE", "message": "Cannot read attachment"}})
			return
		}
		defer f.Close()
		att = &AttachmentUpload{
			Body:        f,
			ContentType: fh.Header.Get("Content-Type"),
			FileName:    fh.Filename,
		}
	}

	rq, err := h.svc.Create(c.Request.Context(), userID, in, att)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_REQUEST", "message": "Invalid input"}})
		case errors.Is(err, ErrCommentTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "COMMENT_TOO_SHORT", "message": "Comment must be at least 30 characters"}})
		case errors.Is(err, ErrMissingCompanyProfile):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "MISSING_COMPANY_PROFILE", "message": "Fill in your company name before submitting reviews"}})
		case errors.Is(err, attachment.ErrInvalidFileType):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_FILE_TYPE", "message": "Only PDF, JPEG and PNG attachments are allowed"}})
		case errors.Is(err, attachment.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "error": gin.H{"code": "FILE_TOO_LARGE", "message": "Attachment exceeds 10 MB"}})
		case errors.Is(err, attachment.ErrEmptyFile):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "EMPTY_FILE", "message": "Attachment is empty"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": rq})
}

// ListMy возвращает заявки текущего пользователя.
// @Summary		Мои заявки
// @Tags		Заявки на отзыв
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Router		/requests/my [GET]
func (h *Handler) ListMy(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"code": "UNAUTHORIZED", "message": "Authentication required"}})
		return
	}

	items, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

// ListPending возвращает очередь модерации.
// @Summary		Очередь заявок (админ)
// @Tags		Заявки на отзыв
// @Security	BearerAuth
// @Param		page	query	int	false	"Страница"
// @Param		limit	query	int	false	"Размер страницы"
// @Success		200	{object}	map[string]interface{}
// @Router		/admin/requests [GET]
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
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid request ID"}})
		return
	}

	rq, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Request not found"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": rq})
}

// Approve одобряет заявку и публикует отзыв.
// @Summary		Одобрить заявку (админ)
// @Description	Переводит заявку pending→approved, создаёт опубликованный отзыв и пересчитывает агрегаты компании. Повторное одобрение невозможно.
// @Tags		Заявки на отзыв
// @Security	BearerAuth
// @Param		id		path	int				true	"ID заявки"
// @Param		request	body	ModerateInput	false	"Комментарий модератора"
// @Success		200	{object}	map[string]interface{}
// @Failure		404,409	{object}	map[string]interface{}
// @Router		/admin/requests/:id/approve [POST]
func (h *Handler) Approve(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid request ID"}})
		return
	}

	var in ModerateInput
	_ = c.ShouldBindJSON(&in)

	rv, err := h.svc.Approve(c.Request.Context(), id, in.AdminComment)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Request not found"}})
		case errors.Is(err, ErrInvalidStateTransition):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": gin.H{"code": "INVALID_STATE", "message": "Request is not pending"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": rv})
}

// Reject отклоняет заявку.
// @Summary		Отклонить заявку (админ)
// @Tags		Заявки на отзыв
// @Security	BearerAuth
// @Param		id		path	int				true	"ID заявки"
// @Param		request	body	ModerateInput	false	"Причина отклонения"
// @Success		200	{object}	map[string]interface{}
// @Failure		404,409	{object}	map[string]interface{}
// @Router		/admin/requests/:id/reject [POST]
func (h *Handler) Reject(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid request ID"}})
		return
	}

	var in ModerateInput
	_ = c.ShouldBindJSON(&in)

	if err := h.svc.Reject(c.Request.Context(), id, in.AdminComment); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Request not found"}})
		case errors.Is(err, ErrInvalidStateTransition):
			c.JSON(http.StatusConflict, gin.H{"success": false, "error": gin.H{"code": "INVALID_STATE", "message": "Request is not pending"}})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "rejected"})
}

// Delete удаляет заявку в любом статусе. Уже опубликованный отзыв не трогается.
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "INVALID_ID", "message": "Invalid request ID"}})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": gin.H{"code": "NOT_FOUND", "message": "Request not found"}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": gin.H{"code": "INTERNAL", "message": "Internal error"}})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "deleted"})
}
