package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/unimeet/unimeet-api/internal/config"
	"github.com/unimeet/unimeet-api/internal/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:       12,
		Email:    "202203011029@dogus.edu.tr",
		Role:     domain.RoleManager,
		IsActive: true,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager(config.AuthConfig{JWTSecret: "s3cret", AccessTokenTTLMinutes: 30})

	token, expiresAt, err := tm.GenerateToken(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, int64(12), claims.UserID)
	require.Equal(t, "202203011029@dogus.edu.tr", claims.Email)
	require.Equal(t, domain.RoleManager, claims.Role)
	require.Equal(t, "12", claims.Subject)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	issuing := NewTokenManager(config.AuthConfig{JWTSecret: "one"})
	verifying := NewTokenManager(config.AuthConfig{JWTSecret: "two"})

	token, _, err := issuing.GenerateToken(testUser())
	require.NoError(t, err)

	_, err = verifying.ParseToken(token)
	require.Error(t, err)
}

func TestTokenRejectsExpired(t *testing.T) {
	tm := NewTokenManager(config.AuthConfig{JWTSecret: "s3cret"})

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		UserID: 12,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "12",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenStr, err := expired.SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(tokenStr)
	require.Error(t, err)
}

func TestTokenIssuerAudienceEnforcedWhenConfigured(t *testing.T) {
	plain := NewTokenManager(config.AuthConfig{JWTSecret: "s3cret"})
	strict := NewTokenManager(config.AuthConfig{
		JWTSecret: "s3cret",
		Issuer:    "unimeet-api",
		Audience:  "unimeet-client",
	})

	// Tokens issued without the claims fail strict validation.
	bare, _, err := plain.GenerateToken(testUser())
	require.NoError(t, err)
	_, err = strict.ParseToken(bare)
	require.Error(t, err)

	// Tokens issued with the claims pass both.
	stamped, _, err := strict.GenerateToken(testUser())
	require.NoError(t, err)

	claims, err := strict.ParseToken(stamped)
	require.NoError(t, err)
	require.Equal(t, "unimeet-api", claims.Issuer)

	_, err = plain.ParseToken(stamped)
	require.NoError(t, err, "issuer and audience are ignored when unconfigured")
}
