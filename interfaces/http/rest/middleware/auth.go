package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"tutoria-backend/pkg/auth"
	"tutoria-backend/pkg/common"
	pkgerrors "tutoria-backend/pkg/errors"
)

// Authenticate validates the bearer token on every request and stores
// the authenticated user in the request context
func Authenticate(validator *auth.JWTValidator, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.ExtractBearerToken(r.Header.Get("Authorization"))
			if err != nil {
				common.RespondAppError(w, err)
				return
			}

			user, err := validator.Validate(token)
			if err != nil {
				logger.Warn("Rejected token",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				common.RespondAppError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithUser(r.Context(), user)))
		})
	}
}

// RequireUser rejects requests whose context lacks an authenticated
// user. Used behind Authenticate as a guard for handler code.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.GetUserFromContext(r.Context()); !ok {
			common.RespondAppError(w, pkgerrors.NewUnauthorizedError(""))
			return
		}
		next.ServeHTTP(w, r)
	})
}
