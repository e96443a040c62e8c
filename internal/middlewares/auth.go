package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-profit-tracker/internal/jwt"
	"github.com/sbilibin2017/gw-profit-tracker/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AccountChecker reports whether the account named by a token still exists
type AccountChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type errorBody struct {
	Message string `json:"message"`
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(errorBody{Message: message})
}

// AuthMiddleware returns a middleware that accepts only tokens issued for role
// whose account is still present. The verified claims are put into the request
// context, see jwt.ClaimsFromContext.
func AuthMiddleware(tokener Tokener, checker AccountChecker, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Errorw("authorization failed", "err", err)
				unauthorized(w, "Not authorized, no token")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				log.Errorw("authorization failed", "err", err)
				unauthorized(w, "Not authorized, token failed")
				return
			}

			if claims.Role != role {
				log.Errorw("authorization failed", "role", claims.Role, "required", role)
				unauthorized(w, "Not authorized, token failed")
				return
			}

			exists, err := checker.Exists(ctx, claims.UserID)
			if err != nil {
				log.Errorw("account lookup failed", "id", claims.UserID, "err", err)
				unauthorized(w, "Not authorized, token failed")
				return
			}
			if !exists {
				log.Errorw("authorization failed", "id", claims.UserID, "err", "account not found")
				unauthorized(w, "Not authorized, account not found")
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.ContextWithClaims(ctx, claims)))
		})
	}
}
