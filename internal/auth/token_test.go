package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosports-server/internal/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    "player@example.com",
		Role:     models.RoleUser,
		IsActive: true,
	}
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", time.Hour)
	user := testUser()

	signed, issued, err := manager.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, signed)
	require.NotNil(t, issued)

	claims, err := manager.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, issued.ID, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenManager_FreshJTIPerToken(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", time.Hour)
	user := testUser()

	_, first, err := manager.Issue(user)
	require.NoError(t, err)
	_, second, err := manager.Issue(user)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	signed, _, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", -time.Minute)

	signed, _, err := manager.Issue(testUser())
	require.NoError(t, err)

	_, err = manager.Verify(signed)
	assert.ErrorIs(t, err, models.ErrTokenExpired)
}

func TestTokenManager_TamperedToken(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", time.Hour)

	signed, _, err := manager.Issue(testUser())
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = manager.Verify(tampered)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestTokenManager_MalformedToken(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", time.Hour)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		_, err := manager.Verify(tokenString)
		assert.ErrorIs(t, err, models.ErrTokenInvalid)
	}
}

func TestTokenManager_RejectsUnexpectedAlgorithm(t *testing.T) {
	manager := NewTokenManager("unit-test-secret", time.Hour)

	// alg=none tokens must never verify, regardless of claims content.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = manager.Verify(tokenString)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}
