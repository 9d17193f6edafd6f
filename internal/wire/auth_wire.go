package wire

import (
	"naija-barter/internal/adaptor"
	"naija-barter/internal/data/repository"
	"naija-barter/pkg/middleware"
	"naija-barter/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth configures the authentication and account-verification routes.
// The OTP-issuing endpoints are public; password change and user-verify need
// a valid bearer token.
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC AUTH ROUTES ====================
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/send-confirm-email", authHandler.SendConfirmEmail)
	r.Post("/api/verify-otp", authHandler.VerifyOTP)
	r.Post("/api/confirm-email", authHandler.ConfirmEmail)
	r.Put("/api/password-reset", authHandler.PasswordReset)

	// ==================== PROTECTED AUTH ROUTES ====================
	auth := middleware.AuthJWT(repo.User, config, log)
	r.With(auth).Post("/api/change-password", authHandler.ChangePassword)
	r.With(auth).Get("/api/user-verify", authHandler.UserVerify)
}
