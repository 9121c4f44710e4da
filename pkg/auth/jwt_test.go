package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidate_AcceptsSignedToken(t *testing.T) {
	validator, err := NewJWTValidator(testSecret)
	require.NoError(t, err)

	raw := signToken(t, testSecret, Claims{
		Email: "profe@tutoria.app",
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	user, err := validator.Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)
	assert.Equal(t, "profe@tutoria.app", user.Email)
	assert.Equal(t, "authenticated", user.Role)
}

func TestValidate_RejectsWrongSecret(t *testing.T) {
	validator, err := NewJWTValidator(testSecret)
	require.NoError(t, err)

	raw := signToken(t, "other-secret", Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err = validator.Validate(raw)
	assert.Error(t, err)
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	validator, err := NewJWTValidator(testSecret)
	require.NoError(t, err)

	raw := signToken(t, testSecret, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	_, err = validator.Validate(raw)
	assert.Error(t, err)
}

func TestValidate_RejectsMissingSubject(t *testing.T) {
	validator, err := NewJWTValidator(testSecret)
	require.NoError(t, err)

	raw := signToken(t, testSecret, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err = validator.Validate(raw)
	assert.Error(t, err)
}

func TestNewJWTValidator_RequiresSecret(t *testing.T) {
	_, err := NewJWTValidator("")
	assert.Error(t, err)
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ExtractBearerToken("bearer abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	for _, header := range []string{"", "abc", "Bearer ", "Basic abc"} {
		_, err = ExtractBearerToken(header)
		assert.Error(t, err, "header %q", header)
	}
}

func TestUserContextRoundTrip(t *testing.T) {
	_, ok := GetUserFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithUser(context.Background(), &User{ID: "user-1"})
	user, ok := GetUserFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "user-1", user.ID)
}
