package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"prosports-server/internal/models"
)

// fakeUserRepo is an in-memory UserRepository for unit tests.
type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
	lookup  error // when set, returned from every lookup
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byID:    make(map[uuid.UUID]*models.User),
	}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	if _, exists := f.byEmail[user.Email]; exists {
		return models.ErrEmailAlreadyRegistered
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.lookup != nil {
		return nil, f.lookup
	}
	user, ok := f.byEmail[email]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if f.lookup != nil {
		return nil, f.lookup
	}
	user, ok := f.byID[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) ListUsers(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.byID))
	for _, u := range f.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserRepo) SetUserActive(_ context.Context, id uuid.UUID, active bool) error {
	user, ok := f.byID[id]
	if !ok {
		return models.ErrUserNotFound
	}
	user.IsActive = active
	return nil
}

// fakeDenylist is an in-memory TokenDenylist.
type fakeDenylist struct {
	revoked map[string]time.Duration
	failure error // when set, returned from every call
}

func newFakeDenylist() *fakeDenylist {
	return &fakeDenylist{revoked: make(map[string]time.Duration)}
}

func (f *fakeDenylist) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if f.failure != nil {
		return f.failure
	}
	f.revoked[jti] = ttl
	return nil
}

func (f *fakeDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	if f.failure != nil {
		return false, f.failure
	}
	_, ok := f.revoked[jti]
	return ok, nil
}

type sessionFixture struct {
	svc      SessionService
	users    *fakeUserRepo
	denylist *fakeDenylist
	tokens   *TokenManager
	hasher   *PasswordHasher
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	users := newFakeUserRepo()
	denylist := newFakeDenylist()
	tokens := NewTokenManager("session-test-secret", time.Hour)
	hasher := NewPasswordHasher(bcrypt.MinCost)
	return &sessionFixture{
		svc:      NewSessionService(users, denylist, tokens, hasher, zap.NewNop()),
		users:    users,
		denylist: denylist,
		tokens:   tokens,
		hasher:   hasher,
	}
}

func (f *sessionFixture) seedUser(t *testing.T, email, password string, active bool) *models.User {
	t.Helper()
	digest, err := f.hasher.Hash(password)
	require.NoError(t, err)
	user := &models.User{
		Email:        email,
		PasswordHash: digest,
		Role:         models.RoleUser,
		IsActive:     active,
	}
	require.NoError(t, f.users.CreateUser(context.Background(), user))
	return user
}

func TestSessionService_LoginSuccess(t *testing.T) {
	f := newSessionFixture(t)
	user := f.seedUser(t, "coach@example.com", "password123", true)

	resp, err := f.svc.Login(context.Background(), "coach@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())

	claims, err := f.tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestSessionService_LoginNormalizesEmail(t *testing.T) {
	f := newSessionFixture(t)
	f.seedUser(t, "coach@example.com", "password123", true)

	_, err := f.svc.Login(context.Background(), "  Coach@Example.COM ", "password123")
	assert.NoError(t, err)
}

func TestSessionService_LoginWrongCredentials(t *testing.T) {
	f := newSessionFixture(t)
	f.seedUser(t, "coach@example.com", "password123", true)

	// Unknown email and wrong password must be indistinguishable.
	_, err := f.svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = f.svc.Login(context.Background(), "coach@example.com", "wrong-password")
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestSessionService_LoginInactiveAccount(t *testing.T) {
	f := newSessionFixture(t)
	f.seedUser(t, "banned@example.com", "password123", false)

	_, err := f.svc.Login(context.Background(), "banned@example.com", "password123")
	assert.ErrorIs(t, err, models.ErrInactiveAccount)
}

func TestSessionService_LoginStoreErrorIsNotCredentialError(t *testing.T) {
	f := newSessionFixture(t)
	f.users.lookup = errors.New("connection refused")

	_, err := f.svc.Login(context.Background(), "coach@example.com", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrInvalidCredentials)
}

func TestSessionService_RegisterSuccess(t *testing.T) {
	f := newSessionFixture(t)

	resp, err := f.svc.Register(context.Background(), RegisterInput{
		Email:     "New.Player@Example.com",
		Password:  "password123",
		FirstName: " Alex ",
		LastName:  "Morgan",
	})
	require.NoError(t, err)

	assert.Equal(t, "new.player@example.com", resp.User.Email)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	assert.True(t, resp.User.IsActive)
	assert.Equal(t, "Alex", resp.User.FirstName)

	stored := f.users.byEmail["new.player@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.True(t, f.hasher.Compare("password123", stored.PasswordHash))

	_, err = f.tokens.Verify(resp.AccessToken)
	assert.NoError(t, err)
}

func TestSessionService_RegisterDuplicateEmail(t *testing.T) {
	f := newSessionFixture(t)
	f.seedUser(t, "taken@example.com", "password123", true)

	_, err := f.svc.Register(context.Background(), RegisterInput{
		Email:    "Taken@Example.com",
		Password: "password456",
	})
	assert.ErrorIs(t, err, models.ErrEmailAlreadyRegistered)
}

func TestSessionService_RegisterInvalidInput(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.svc.Register(context.Background(), RegisterInput{Email: "not-an-email", Password: "password123"})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = f.svc.Register(context.Background(), RegisterInput{Email: "ok@example.com", Password: ""})
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestSessionService_RefreshCarriesCurrentRole(t *testing.T) {
	f := newSessionFixture(t)
	user := f.seedUser(t, "promoted@example.com", "password123", true)

	// Role changes between issuance and refresh must land in the new token.
	user.Role = models.RoleManager

	resp, err := f.svc.Refresh(context.Background(), user.ID)
	require.NoError(t, err)

	claims, err := f.tokens.Verify(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, claims.Role)
}

func TestSessionService_RefreshInvalidSession(t *testing.T) {
	f := newSessionFixture(t)

	_, err := f.svc.Refresh(context.Background(), uuid.New())
	assert.ErrorIs(t, err, models.ErrInvalidSession)

	inactive := f.seedUser(t, "gone@example.com", "password123", false)
	_, err = f.svc.Refresh(context.Background(), inactive.ID)
	assert.ErrorIs(t, err, models.ErrInvalidSession)
}

func TestSessionService_VerifyTokenCollapsesFailures(t *testing.T) {
	f := newSessionFixture(t)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := f.svc.VerifyToken(context.Background(), tokenString)
		assert.ErrorIs(t, err, models.ErrInvalidSession)
	}
}

func TestSessionService_LogoutRevokesToken(t *testing.T) {
	f := newSessionFixture(t)
	user := f.seedUser(t, "leaver@example.com", "password123", true)

	resp, err := f.svc.Login(context.Background(), "leaver@example.com", "password123")
	require.NoError(t, err)

	claims, err := f.svc.VerifyToken(context.Background(), resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	require.NoError(t, f.svc.Logout(context.Background(), claims))

	_, err = f.svc.VerifyToken(context.Background(), resp.AccessToken)
	assert.ErrorIs(t, err, models.ErrInvalidSession)

	// The denylist entry must not outlive the token itself.
	ttl := f.denylist.revoked[claims.ID]
	assert.LessOrEqual(t, ttl, time.Hour)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestSessionService_LogoutExpiredTokenIsNoop(t *testing.T) {
	f := newSessionFixture(t)
	expired := NewTokenManager("session-test-secret", -time.Minute)
	user := f.seedUser(t, "late@example.com", "password123", true)

	_, claims, err := expired.Issue(user)
	require.NoError(t, err)

	require.NoError(t, f.svc.Logout(context.Background(), claims))
	assert.Empty(t, f.denylist.revoked)
}

func TestSessionService_VerifyTokenDenylistFailurePropagates(t *testing.T) {
	f := newSessionFixture(t)
	user := f.seedUser(t, "stats@example.com", "password123", true)

	signed, _, err := f.tokens.Issue(user)
	require.NoError(t, err)

	f.denylist.failure = errors.New("redis down")
	_, err = f.svc.VerifyToken(context.Background(), signed)
	require.Error(t, err)
	// Infrastructure failure is a 500-class error, not an auth rejection.
	assert.NotErrorIs(t, err, models.ErrInvalidSession)
}
