package middleware

import (
	"net/http"
	"strings"

	"naija-barter/internal/data/repository"
	"naija-barter/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the bearer token, loads the account and gates access
// per the account flags: inactive and suspended accounts are forbidden,
// and an unconfirmed email blocks everything behind auth.
func AuthJWT(userRepo repository.UserRepository, config *utils.Config, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			userID, err := utils.GetUserIDFromToken(token, []byte(config.JWT.Secret))
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to load user for auth",
					zap.Error(err), zap.String("user_id", userID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			if !user.IsActive {
				utils.ResponseForbidden(w, "user is not active")
				return
			}
			if user.IsSuspended {
				utils.ResponseForbidden(w, "user is suspended")
				return
			}
			if !user.EmailConfirmed {
				utils.ResponseForbidden(w, "Email not confirmed")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
