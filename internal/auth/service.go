package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prosports-server/internal/interfaces"
	"prosports-server/internal/models"
)

// SessionService orchestrates login, registration, refresh and token
// verification. It keeps no cross-request state of its own; the only shared
// mutable resource is the credential store behind UserRepository.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, input RegisterInput) (*models.AuthResponse, error)
	Refresh(ctx context.Context, userID uuid.UUID) (*models.TokenResponse, error)
	VerifyToken(ctx context.Context, tokenString string) (*Claims, error)
	Logout(ctx context.Context, claims *Claims) error
}

// RegisterInput is the closed set of fields accepted at registration.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// Compile-time check to ensure sessionService implements SessionService
var _ SessionService = (*sessionService)(nil)

type sessionService struct {
	users    interfaces.UserRepository
	denylist interfaces.TokenDenylist
	tokens   *TokenManager
	hasher   *PasswordHasher
	logger   *zap.Logger
}

// NewSessionService creates a new SessionService.
func NewSessionService(users interfaces.UserRepository, denylist interfaces.TokenDenylist, tokens *TokenManager, hasher *PasswordHasher, logger *zap.Logger) SessionService {
	return &sessionService{
		users:    users,
		denylist: denylist,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger.Named("SessionService"),
	}
}

// Login validates credentials and issues a session token.
func (s *sessionService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	email = normalizeEmail(email)
	s.logger.Info("Login attempt", zap.String("email", email))

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			// Same outcome as a wrong password so login cannot be used
			// to probe which emails are registered.
			s.logger.Warn("Login failed: user not found", zap.String("email", email))
			return nil, models.ErrInvalidCredentials
		}
		s.logger.Error("Login failed: error getting user from repository", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.hasher.Compare(password, user.PasswordHash) {
		s.logger.Warn("Login failed: invalid password", zap.String("email", email), zap.String("userID", user.ID.String()))
		return nil, models.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn("Login failed: account inactive", zap.String("email", email), zap.String("userID", user.ID.String()))
		return nil, models.ErrInactiveAccount
	}

	token, claims, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token during login", zap.Error(err), zap.String("userID", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User logged in successfully", zap.String("userID", user.ID.String()))
	return &models.AuthResponse{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Unix(),
		User:        user.Public(),
	}, nil
}

// Register creates a new user and issues a first session token.
func (s *sessionService) Register(ctx context.Context, input RegisterInput) (*models.AuthResponse, error) {
	email := normalizeEmail(input.Email)
	s.logger.Info("Registering new user", zap.String("email", email))

	if _, err := mail.ParseAddress(email); err != nil {
		s.logger.Warn("Registration attempt with invalid email format", zap.String("email", email), zap.Error(err))
		return nil, fmt.Errorf("invalid email format: %w", models.ErrInvalidInput)
	}
	if input.Password == "" {
		s.logger.Warn("Registration attempt with empty password", zap.String("email", email))
		return nil, models.ErrInvalidInput
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		s.logger.Error("Error checking existing email during registration", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("error checking existing email: %w", err)
	}
	if existing != nil {
		s.logger.Warn("Registration attempt for existing email", zap.String("email", email))
		return nil, models.ErrEmailAlreadyRegistered
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		s.logger.Error("Failed to hash password during registration", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hashed,
		Role:         models.RoleUser,
		IsActive:     true,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		// Two concurrent registrations can both pass the lookup above; the
		// store's uniqueness constraint is the real arbiter.
		if errors.Is(err, models.ErrEmailAlreadyRegistered) {
			s.logger.Warn("Registration lost duplicate-email race", zap.String("email", email))
			return nil, err
		}
		s.logger.Error("Failed to create user via repository", zap.Error(err), zap.String("email", email))
		return nil, err
	}

	token, claims, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token during registration", zap.Error(err), zap.String("userID", user.ID.String()))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("User registered successfully", zap.String("userID", user.ID.String()), zap.String("email", email))
	return &models.AuthResponse{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Unix(),
		User:        user.Public(),
	}, nil
}

// Refresh issues a new token carrying the user's current email and role.
// This is the only path that re-synchronizes denormalized claims with the
// credential store.
func (s *sessionService) Refresh(ctx context.Context, userID uuid.UUID) (*models.TokenResponse, error) {
	s.logger.Debug("Token refresh attempt", zap.String("userID", userID.String()))

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			s.logger.Warn("Refresh failed: user not found", zap.String("userID", userID.String()))
			return nil, models.ErrInvalidSession
		}
		s.logger.Error("Refresh failed: error getting user from repository", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		s.logger.Warn("Refresh failed: account inactive", zap.String("userID", userID.String()))
		return nil, models.ErrInvalidSession
	}

	token, claims, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error("Failed to issue token during refresh", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info("Token refreshed successfully", zap.String("userID", userID.String()))
	return &models.TokenResponse{
		AccessToken: token,
		ExpiresAt:   claims.ExpiresAt.Unix(),
	}, nil
}

// VerifyToken validates a bearer token and returns its claims. Every
// verification failure (expired, tampered, malformed, revoked) collapses
// into models.ErrInvalidSession so the distinction never reaches clients.
func (s *sessionService) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.tokens.Verify(tokenString)
	if err != nil {
		s.logger.Debug("Token verification failed", zap.Error(err))
		return nil, models.ErrInvalidSession
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Error consulting token denylist", zap.Error(err))
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		s.logger.Debug("Token verification failed: revoked", zap.String("jti", claims.ID))
		return nil, models.ErrInvalidSession
	}

	return claims, nil
}

// Logout revokes the presented token until its natural expiry. Logging out
// an already-expired token is a no-op success.
func (s *sessionService) Logout(ctx context.Context, claims *Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}

	if err := s.denylist.Revoke(ctx, claims.ID, remaining); err != nil {
		s.logger.Error("Failed to revoke token during logout", zap.Error(err), zap.String("jti", claims.ID))
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.Info("Token revoked", zap.String("userID", claims.UserID.String()), zap.String("jti", claims.ID))
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
