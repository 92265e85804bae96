package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "pw1", hash)

	require.NoError(t, ComparePassword(hash, "pw1"))
	require.Error(t, ComparePassword(hash, "pw2"))
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("pw1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
