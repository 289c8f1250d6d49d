package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"autosalon/internal/config"
	"autosalon/internal/middleware"
	"autosalon/internal/modules/auth"
	"autosalon/internal/modules/catalog"
	"autosalon/internal/modules/favorite"
	"autosalon/internal/modules/history"
	"autosalon/internal/modules/profile"
	"autosalon/internal/modules/request"
	"autosalon/internal/modules/session"
	"autosalon/internal/notify"
	jwtsvc "autosalon/internal/pkg/jwt"
	"autosalon/internal/repository"
	"autosalon/internal/router"
	"autosalon/internal/storage"
)

// buildRouter wires every module onto one gin engine. The returned func
// closes the websocket hub.
func buildRouter(cfg *config.Config, db *gorm.DB, backend storage.Backend, logger *zap.Logger) (*gin.Engine, func()) {
	hub := notify.NewHub()
	center := notify.NewCenter(notify.DisplayDuration, hub, logger.Named("notify"))
	store := storage.NewStore(backend, logger.Named("storage"))

	userRepo := repository.NewUserRepository(db)
	carRepo := repository.NewCarRepository(db)
	requestRepo := repository.NewPurchaseRequestRepository(db)

	j := jwtsvc.New(cfg.JWT.Secret, cfg.JWT.TTL)

	historyService := history.NewService(store, center, logger.Named("history"))
	catalogService := catalog.NewService(carRepo, historyService, logger.Named("catalog"))
	favoriteService := favorite.NewService(store, center, catalogService, logger.Named("favorite"))
	authService := auth.NewService(userRepo, j, store, center, logger.Named("auth"))
	requestService := request.NewService(requestRepo, catalogService, center, logger.Named("request"))
	profileService := profile.NewService(userRepo, requestRepo, favoriteService, center, logger.Named("profile"))

	authHandler := auth.NewHandler(authService)

	r := gin.New()
	r.Use(
		middleware.ErrorLogger(logger),
		middleware.RequestLogger(logger.Named("http")),
		middleware.CORS(cfg.CORSAllowedOrigins),
		middleware.ClientScope(cfg.CookieSecure),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "app": cfg.AppName})
	})

	router.NewHandler(authService, "/pages").RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		catalog.NewHandler(catalogService).RegisterRoutes(v1)
		favorite.NewHandler(favoriteService).RegisterRoutes(v1)
		history.NewHandler(historyService).RegisterRoutes(v1)
		session.NewHandler(store, center, logger.Named("session")).RegisterRoutes(v1)
		notify.NewHandler(center, hub, logger.Named("notify")).RegisterRoutes(v1)

		// protected: the bearer header wins, otherwise the token saved at login
		protected := v1.Group("")
		protected.Use(
			middleware.BearerFromStore(func(c *gin.Context) string {
				return authService.StoredToken(c.Request.Context(), middleware.ClientID(c))
			}),
			middleware.JWTAuth(j),
		)
		{
			authHandler.RegisterProtectedRoutes(protected)
			request.NewHandler(requestService).RegisterRoutes(protected)
			profile.NewHandler(profileService).RegisterRoutes(protected)
		}
	}

	return r, hub.Close
}
