package interfaces

import (
	"context"

	"github.com/google/uuid"

	"prosports-server/internal/models"
)

// UserRepository is the credential store contract. The session service
// treats lookups strictly as found-or-not; uniqueness of email is enforced
// here, surfaced as models.ErrEmailAlreadyRegistered on create.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	SetUserActive(ctx context.Context, id uuid.UUID, active bool) error
}
