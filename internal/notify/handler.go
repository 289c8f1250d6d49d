package notify

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"autosalon/internal/middleware"
	"autosalon/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin is checked by the CORS middleware before the upgrade
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	center *Center
	hub    *Hub
	log    *zap.Logger
}

func NewHandler(center *Center, hub *Hub, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{center: center, hub: hub, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/notifications")
	{
		g.GET("", h.List)
		g.GET("/ws", h.Stream)
	}
}

// List возвращает уведомления, которые ещё видны клиенту
func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"notifications": h.center.Active(middleware.ClientID(c)),
	})
}

// Stream upgrades to a websocket and pushes every new notification of the
// caller's scope until the client disconnects.
func (h *Handler) Stream(c *gin.Context) {
	scope := middleware.ClientID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", zap.String("scope", scope), zap.Error(err))
		return
	}

	defer h.hub.Unregister(scope, conn)
	if err := h.hub.Register(scope, conn, func() []Notification { return h.center.Active(scope) }); err != nil {
		h.log.Debug("websocket backlog failed", zap.String("scope", scope), zap.Error(err))
		return
	}

	// the stream is push-only; reading just detects the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
