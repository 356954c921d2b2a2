package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"prosports-server/internal/auth"
	"prosports-server/internal/models"
)

// Context keys set by AuthMiddleware.
const (
	ctxKeyUserID = "user_id"
	ctxKeyRole   = "user_role"
	ctxKeyClaims = "claims"
)

// AuthMiddleware extracts and verifies the bearer token, then stores the
// caller's identity in the request context.
func (h *AuthHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, models.ErrInvalidSession)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			zap.L().Warn("Invalid Authorization header format")
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, models.ErrInvalidSession)
			return
		}

		claims, err := h.sessions.VerifyToken(c.Request.Context(), parts[1])
		if err != nil {
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, err)
			return
		}

		tokenVerificationsTotal.WithLabelValues("success").Inc()
		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyRole, claims.Role)
		c.Set(ctxKeyClaims, claims)
		c.Next()
	}
}

// RequireRoles allows the request through only when the caller's role is in
// the given set. Must run after AuthMiddleware.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxKeyRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		zap.L().Warn("Role check failed",
			zap.String("role", role),
			zap.Strings("required", roles))
		handleServiceError(c, models.ErrForbidden)
	}
}

// currentUserID reads the authenticated user's id from the context.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(ctxKeyUserID)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}

// currentClaims reads the verified token claims from the context.
func currentClaims(c *gin.Context) (*auth.Claims, bool) {
	raw, exists := c.Get(ctxKeyClaims)
	if !exists {
		return nil, false
	}
	claims, ok := raw.(*auth.Claims)
	return claims, ok
}
