package bcrypt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := hashPasswordWithCost("s3cret!", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyHash(hash))
	assert.NotEqual(t, "s3cret!", hash)
	assert.NoError(t, ComparePassword(hash, "s3cret!"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}

func TestHashPassword_Salted(t *testing.T) {
	a, err := hashPasswordWithCost("same", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := hashPasswordWithCost("same", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestVerifyHash(t *testing.T) {
	assert.False(t, VerifyHash("plain"))
	assert.False(t, VerifyHash(""))
}
