package httptransport

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/worklink-app/worklink/internal/transport/http/handler"
	"github.com/worklink-app/worklink/internal/transport/http/middleware"
	"github.com/worklink-app/worklink/internal/usecase"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(
	logger *slog.Logger,
	authUsecase *usecase.AuthUsecase,
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	inviteHandler *handler.InviteHandler,
	profileHandler *handler.ProfileHandler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	authMW := middleware.Auth(authUsecase)

	// Public auth routes
	auth := r.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected auth routes
	auth.POST("/logout", authMW, authHandler.Logout)
	auth.GET("/session", authMW, authHandler.Session)
	auth.POST("/password", authMW, authHandler.ChangePassword)

	// Protected account routes
	accounts := r.Group("/accounts", authMW)
	accounts.GET("/me", accountHandler.Me)

	// Protected invite routes
	invites := r.Group("/invites", authMW)
	invites.POST("", inviteHandler.Create)

	// Protected profile routes
	profiles := r.Group("/profiles", authMW)
	profiles.POST("", profileHandler.Create)
	profiles.GET("/:id", profileHandler.GetByID)

	return r
}
