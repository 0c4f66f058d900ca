package auth

import (
	"net/http"
	"strings"

	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	apphttp "github.com/chainsafe/music-marketplace/pkg/app/http"
)

// TokenValidator validates a bearer token
type TokenValidator interface {
	Validate(token string) (*Claims, error)
}

// Bearer rejects requests without a valid "Authorization: Bearer" token and
// stores the caller in the request context.
func Bearer(v TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "Authorization header required"))
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "Invalid authorization header format"))
				return
			}

			claims, err := v.Validate(strings.TrimSpace(token))
			if err != nil {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "Invalid or expired token"))
				return
			}

			userID, _ := claims.UserID()
			ctx := WithPrincipal(r.Context(), &Principal{
				UserID: userID,
				Email:  claims.Email,
				Role:   claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects authenticated callers that do not hold role. It must run after Bearer.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "Authentication required"))
				return
			}
			if p.Role != role {
				apphttp.DefaultErrorHandler(w, apperrors.ForbiddenError(nil, "Insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
