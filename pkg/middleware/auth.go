package middleware

import (
	"net/http"
	"strings"

	"user-portal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Authenticate validates the bearer access token and attaches the decoded
// user id and usertype to the request context.
func Authenticate(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Authorization token missing")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				utils.ResponseUnauthorized(w, "Authorization token missing")
				return
			}

			claims, err := utils.VerifyAuthToken(parts[1], jwtSecret)
			if err != nil {
				logger.Warn("Token verification failed",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Usertype)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin allows only callers whose token carries the admin usertype.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			usertype, ok := utils.GetUsertypeFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if usertype != "admin" {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("usertype", usertype),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Access denied. Admins only.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SelfOrAdmin permits the request when the {userId} path parameter matches
// the caller's own id, or the caller is an admin.
func SelfOrAdmin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			usertype, _ := utils.GetUsertypeFromContext(r.Context())
			targetID := chi.URLParam(r, "userId")

			if userID != targetID && usertype != "admin" {
				logger.Warn("Self-or-admin check failed",
					zap.String("user_id", userID),
					zap.String("target_id", targetID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Forbidden: You do not have permission to update this data.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
