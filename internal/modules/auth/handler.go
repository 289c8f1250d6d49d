package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autosalon/internal/middleware"
	"autosalon/internal/pkg/response"
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
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/state", h.State)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/current-user", h.GetMe)
}

// Register регистрирует нового клиента.
// @Summary		Регистрация клиента
// @Tags		Аутентификация
// @Param		request	body	RegisterRequest	true	"username, email, password, phone"
// @Success		201	{object}	map[string]interface{}
// @Failure		400	{object}	map[string]interface{} "Ошибка валидации"
// @Failure		409	{object}	map[string]interface{} "Email или имя пользователя уже заняты"
// @Router		/auth/register [POST]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.Is(err, ErrUsernameTaken):
			response.Error(c, http.StatusConflict, "USERNAME_EXISTS", "This username is already taken")
		default:
			_ = c.Error(err)
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": toUserPublic(user)})
}

// Login выдаёт JWT и сохраняет его в хранилище клиента.
// @Summary		Вход
// @Tags		Аутентификация
// @Param		request	body	LoginRequest	true	"login (username или email), password"
// @Success		200	{object}	map[string]interface{}
// @Failure		401	{object}	map[string]interface{} "Неверный логин или пароль"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), middleware.ClientID(c), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid login or password")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": res.Token,
		"user":  toUserPublic(res.User),
		"state": toStateResponse(res.State),
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), middleware.ClientID(c)); err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to clear session")
		return
	}
	response.Success(c, http.StatusOK, toStateResponse(State{}))
}

// State — производные флаги авторизации клиента.
func (h *Handler) State(c *gin.Context) {
	st, err := h.service.State(c.Request.Context(), middleware.ClientID(c))
	if err != nil {
		_ = c.Error(err)
	}
	response.Success(c, http.StatusOK, toStateResponse(st))
}

// GetMe — профиль по JWT.
// @Router		/current-user [GET]
func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.service.CurrentUser(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			return
		}
		if errors.Is(err, ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
			return
		}
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": toUserPublic(user)})
}
