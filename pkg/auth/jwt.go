package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pkgerrors "tutoria-backend/pkg/errors"
)

// contextKey is a private type for context keys
type contextKey string

const userContextKey contextKey = "auth.user"

// User holds the identity extracted from a validated token
type User struct {
	ID    string
	Email string
	Role  string
}

// Claims mirrors the fields Supabase puts in its access tokens
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTValidator validates Supabase-issued HS256 access tokens
type JWTValidator struct {
	secret []byte
}

// NewJWTValidator creates a validator for the given signing secret
func NewJWTValidator(secret string) (*JWTValidator, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &JWTValidator{secret: []byte(secret)}, nil
}

// Validate parses and verifies a raw token string and returns the user
func (v *JWTValidator) Validate(tokenString string) (*User, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithLeeway(30*time.Second))
	if err != nil {
		return nil, pkgerrors.NewUnauthorizedError("invalid token").WithCause(err)
	}
	if !token.Valid {
		return nil, pkgerrors.NewUnauthorizedError("invalid token")
	}
	if claims.Subject == "" {
		return nil, pkgerrors.NewUnauthorizedError("token has no subject")
	}

	return &User{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}

// ExtractBearerToken pulls the raw token out of an Authorization header
func ExtractBearerToken(header string) (string, error) {
	if header == "" {
		return "", pkgerrors.NewUnauthorizedError("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", pkgerrors.NewUnauthorizedError("malformed authorization header")
	}
	return parts[1], nil
}

// WithUser stores the authenticated user in the context
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context
func GetUserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userContextKey).(*User)
	return user, ok && user != nil
}
