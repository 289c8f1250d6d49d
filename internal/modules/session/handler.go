package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autosalon/internal/middleware"
	"autosalon/internal/notify"
	"autosalon/internal/pkg/response"
	"autosalon/internal/storage"
)

type Handler struct {
	store  *storage.Store
	center *notify.Center
	log    *zap.Logger
}

func NewHandler(store *storage.Store, center *notify.Center, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: store, center: center, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/demo-session")
	{
		g.GET("", h.Current)
		g.POST("/login", h.Login)
		g.POST("/logout", h.Logout)
	}
}

func (h *Handler) manager(c *gin.Context) *Manager {
	scope := middleware.ClientID(c)
	var n notify.Notifier = notify.Discard
	if h.center != nil {
		n = h.center.For(scope)
	}
	return NewManager(h.store.Scope(scope), n, h.log.With(zap.String("scope", scope)))
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login — демо-вход без проверки пароля. Тело запроса необязательно.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
			return
		}
	}

	user := h.manager(c).Login(c.Request.Context(), req.Username, req.Password)
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *Handler) Logout(c *gin.Context) {
	h.manager(c).Logout(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{"logged_in": false})
}

func (h *Handler) Current(c *gin.Context) {
	user := h.manager(c).CurrentUser(c.Request.Context())
	response.Success(c, http.StatusOK, gin.H{
		"logged_in": user != nil,
		"user":      user,
	})
}
