package profile

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"autosalon/internal/middleware"
	"autosalon/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects a group already behind JWTAuth.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	g := protected.Group("/profile")
	{
		g.GET("", h.Get)
		g.PATCH("", h.Update)
	}
}

// Get — личный кабинет: избранное, заявки и их статистика
// @Router		/profile [GET]
func (h *Handler) Get(c *gin.Context) {
	s, err := h.service.Summary(c.Request.Context(), middleware.ClientID(c), middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toSummaryResponse(s))
}

// Update — редактирование профиля. Роль через профиль не меняется.
// @Router		/profile [PATCH]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.Update(c.Request.Context(), middleware.ClientID(c), middleware.UserID(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": toUserResponse(u)})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var ve *ValidationError
	switch {
	case errors.As(err, &ve):
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid profile data", ve.Fields)
	case errors.Is(err, ErrRoleReadOnly):
		response.Error(c, http.StatusForbidden, "ROLE_READ_ONLY", "Role cannot be changed")
	case errors.Is(err, ErrEmailTaken):
		response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
	case errors.Is(err, ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "USER_NOT_FOUND", "User not found")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
