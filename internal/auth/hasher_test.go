package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	// MinCost keeps the test fast; the work factor does not change behavior.
	hasher := NewPasswordHasher(bcrypt.MinCost)
	password := "correct horse battery staple1"

	digest, err := hasher.Hash(password)
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotEqual(t, password, digest)

	assert.True(t, hasher.Compare(password, digest))
	assert.False(t, hasher.Compare("wrong password", digest))
}

func TestPasswordHasher_SameInputDifferentDigests(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secret-pass-1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret-pass-1")
	require.NoError(t, err)

	// bcrypt salts every digest, so equal inputs must not collide.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Compare("secret-pass-1", first))
	assert.True(t, hasher.Compare("secret-pass-1", second))
}

func TestPasswordHasher_UnicodePassword(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	password := "пароль-密码1"

	digest, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Compare(password, digest))
	assert.False(t, hasher.Compare("пароль-密码2", digest))
}

func TestPasswordHasher_BoundaryLengthPasswords(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	// bcrypt operates on at most 72 bytes of input.
	for _, length := range []int{71, 72} {
		password := strings.Repeat("a", length)
		digest, err := hasher.Hash(password)
		require.NoError(t, err, "length %d should hash", length)

		assert.True(t, hasher.Compare(password, digest), "length %d roundtrip", length)
		assert.False(t, hasher.Compare(strings.Repeat("a", length-1)+"b", digest), "length %d wrong password", length)
	}
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	assert.False(t, hasher.Compare("anything", "not-a-bcrypt-digest"))
	assert.False(t, hasher.Compare("anything", ""))
}

func TestNewPasswordHasher_ClampsInvalidCost(t *testing.T) {
	for _, cost := range []int{-1, 0, 99} {
		hasher := NewPasswordHasher(cost)
		assert.Equal(t, bcrypt.DefaultCost, hasher.cost, "cost %d should clamp to default", cost)
	}

	hasher := NewPasswordHasher(bcrypt.MinCost)
	assert.Equal(t, bcrypt.MinCost, hasher.cost)
}
