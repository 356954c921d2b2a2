package handler

import (
	"fmt"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"prosports-server/internal/auth"
	"prosports-server/internal/models"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt input limit
)

func (h *AuthHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request data: "+err.Error())
		return
	}

	if msg := validatePassword(req.Password); msg != "" {
		badRequest(c, msg)
		return
	}

	resp, err := h.sessions.Register(c.Request.Context(), auth.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	registrationsTotal.Inc()
	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		loginsTotal.WithLabelValues("failure").Inc()
		handleServiceError(c, err)
		return
	}

	loginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) refresh(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		zap.L().Error("User ID missing in context during refresh")
		handleServiceError(c, models.ErrInternalServer)
		return
	}

	resp, err := h.sessions.Refresh(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	refreshesTotal.Inc()
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) logout(c *gin.Context) {
	claims, ok := currentClaims(c)
	if !ok {
		zap.L().Error("Claims missing in context during logout")
		handleServiceError(c, models.ErrInternalServer)
		return
	}

	if err := h.sessions.Logout(c.Request.Context(), claims); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// verify checks an arbitrary token string. Unlike the middleware it is
// unauthenticated: a gateway can call it without holding its own session.
func (h *AuthHandler) verify(c *gin.Context) {
	var req tokenVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	claims, err := h.sessions.VerifyToken(c.Request.Context(), req.Token)
	if err != nil {
		tokenVerificationsTotal.WithLabelValues("failure").Inc()
		handleServiceError(c, err)
		return
	}

	tokenVerificationsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"valid":   true,
		"user_id": claims.UserID.String(),
		"role":    claims.Role,
	})
}

func (h *AuthHandler) getMe(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		zap.L().Error("User ID missing in context during getMe")
		handleServiceError(c, models.ErrInternalServer)
		return
	}

	user, err := h.users.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Public())
}

func (h *AuthHandler) listUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	c.JSON(http.StatusOK, public)
}

func (h *AuthHandler) setUserActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid user id")
		return
	}

	var req setUserActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.users.SetUserActive(c.Request.Context(), id, *req.IsActive); err != nil {
		handleServiceError(c, err)
		return
	}

	zap.L().Info("User active flag changed",
		zap.String("userID", id.String()),
		zap.Bool("isActive", *req.IsActive))
	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

func validatePassword(password string) string {
	if len(password) < minPasswordLength || len(password) > maxPasswordLength {
		return fmt.Sprintf("Password length must be between %d and %d characters", minPasswordLength, maxPasswordLength)
	}
	var hasLetter, hasDigit bool
	for _, char := range password {
		if unicode.IsLetter(char) {
			hasLetter = true
		}
		if unicode.IsDigit(char) {
			hasDigit = true
		}
		if hasLetter && hasDigit {
			return ""
		}
	}
	return "Password must contain at least one letter and one digit"
}
