package handler

import (
	"github.com/gin-gonic/gin"

	"prosports-server/internal/auth"
	"prosports-server/internal/interfaces"
	"prosports-server/internal/models"
)

// AuthHandler serves the session lifecycle endpoints and user administration.
type AuthHandler struct {
	sessions auth.SessionService
	users    interfaces.UserRepository
}

func NewAuthHandler(sessions auth.SessionService, users interfaces.UserRepository) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		users:    users,
	}
}

// RegisterRoutes mounts the auth endpoints. rateLimiter guards the
// credential-accepting endpoints against brute force.
func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup, rateLimiter gin.HandlerFunc) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", rateLimiter, h.register)
		authGroup.POST("/login", rateLimiter, h.login)
		authGroup.POST("/refresh", h.AuthMiddleware(), h.refresh)
		authGroup.POST("/logout", h.AuthMiddleware(), h.logout)
		// Verify accepts arbitrary token strings without a session, so it
		// gets the same throttle as login and register.
		authGroup.POST("/verify", rateLimiter, h.verify)
	}

	api.GET("/me", h.AuthMiddleware(), h.getMe)

	usersGroup := api.Group("/users")
	usersGroup.Use(h.AuthMiddleware(), RequireRoles(models.RoleAdmin))
	{
		usersGroup.GET("", h.listUsers)
		usersGroup.PUT("/:id/active", h.setUserActive)
	}
}
