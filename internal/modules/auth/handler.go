package auth

import (
	"errors"
	"net/http"

	"safelogist/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	userGroup := protected.Group("/users")
	{
		userGroup.GET("/me", h.GetMe)
		userGroup.PUT("/me", h.UpdateProfile)
	}
}

// Register регистрирует нового пользователя на платформе.
// @Summary		Зарегистрировать пользователя
// @Description	Создаёт аккаунт грузовладельца, перевозчика или экспедитора. Возвращает JWT токен для сессии.
// @Tags		Аутентификация
// @Param		request	body	RegisterRequest	true	"Данные для регистрации (email, password, phone, role)"
// @Success		201	{object}		map[string]interface{} "Пользователь зарегистрирован, возвращается JWT токен"
// @Failure		400	{object}		map[string]interface{} "Ошибка валидации: неверный формат данных или роль"
// @Failure		409	{object}		map[string]interface{} "Ошибка: email или телефон уже зарегистрирован"
// @Failure		500	{object}		map[string]interface{} "Ошибка сервера при создании аккаунта"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRole):
			response.Error(c, http.StatusBadRequest, "INVALID_ROLE", "Role must be shipper, carrier or forwarder")
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrPhoneAlreadyExists):
			response.Error(c, http.StatusConflict, "PHONE_EXISTS", "This phone is already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"phone":        user.Phone,
			"role":         user.Role,
			"company_name": user.CompanyName,
		},
		"token": token,
	})
}

// Login авторизует пользователя и выдаёт JWT токен.
// @Summary		Войти в аккаунт
// @Description	Авторизует пользователя по email и паролю. Заблокированные аккаунты не допускаются.
// @Tags		Аутентификация
// @Param		request	body	LoginRequest	true	"Учётные данные (email, password)"
// @Success		200	{object}		map[string]interface{} "Успешная авторизация, возвращается JWT токен"
// @Failure		401	{object}		map[string]interface{} "Ошибка: неверный email или пароль"
// @Failure		403	{object}		map[string]interface{} "Ошибка: аккаунт заблокирован"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
		case errors.Is(err, ErrAccountBlocked):
			response.Error(c, http.StatusForbidden, "ACCOUNT_BLOCKED", "This account has been blocked")
		default:
			response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user": gin.H{
			"id":           user.ID,
			"email":        user.Email,
			"phone":        user.Phone,
			"role":         user.Role,
			"company_name": user.CompanyName,
		},
		"token": token,
	})
}

// GetMe получает профиль текущего авторизованного пользователя.
func (h *Handler) GetMe(c *gin.Context) {
	userIDAny, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	userID := userIDAny.(int64)

	user, err := h.service.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// UpdateProfile обновляет телефон и название компании текущего пользователя.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID.(int64), req)
	if err != nil {
		if errors.Is(err, ErrPhoneAlreadyExists) {
			response.Error(c, http.StatusConflict, "PHONE_EXISTS", "This phone is already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": user})
}
