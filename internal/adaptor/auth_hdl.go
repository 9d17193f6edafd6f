package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"naija-barter/internal/dto/request"
	"naija-barter/internal/dto/response"
	"naija-barter/internal/usecase"
	"naija-barter/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// ForgotPassword handles POST /api/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	h.sendOTP(w, r, h.service.ForgotPassword, "forgot password")
}

// SendConfirmEmail handles POST /api/send-confirm-email
func (h *AuthHandler) SendConfirmEmail(w http.ResponseWriter, r *http.Request) {
	h.sendOTP(w, r, h.service.SendConfirmEmail, "send confirm email")
}

// sendOTP is the shared body of the two code-issuing endpoints. Both answer
// with the same generic message whether or not the account exists.
func (h *AuthHandler) sendOTP(
	w http.ResponseWriter,
	r *http.Request,
	send func(ctx context.Context, email string) error,
	operation string,
) {
	var req request.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if errs := utils.ValidateStruct(&req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "validation failed", utils.FormatValidationErrors(errs))
		return
	}

	if err := send(r.Context(), req.Email); err != nil {
		h.handleServiceError(w, err, operation)
		return
	}

	utils.ResponseSuccess(w, usecase.GenericOTPSentMessage, nil)
}

// VerifyOTP handles POST /api/verify-otp
func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.VerifyOTP(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "verify otp")
		return
	}

	utils.ResponseSuccess(w, "OTP valid", nil)
}

// ConfirmEmail handles POST /api/confirm-email
func (h *AuthHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ConfirmEmail(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "confirm email")
		return
	}

	utils.ResponseSuccess(w, "Email confirmed successfully", nil)
}

// PasswordReset handles PUT /api/password-reset
func (h *AuthHandler) PasswordReset(w http.ResponseWriter, r *http.Request) {
	var req request.PasswordResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.PasswordReset(r.Context(), &req); err != nil {
		h.handleServiceError(w, err, "password reset")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully", nil)
}

// ChangePassword handles POST /api/change-password (authenticated)
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ChangePassword(r.Context(), userID, &req); err != nil {
		h.handleServiceError(w, err, "change password")
		return
	}

	utils.ResponseSuccess(w, "Password changed successfully", nil)
}

// UserVerify handles GET /api/user-verify (authenticated). It echoes the
// authenticated user together with the bearer token that reached it.
func (h *AuthHandler) UserVerify(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.service.CurrentUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "verify user")
		return
	}

	token, _ := utils.GetTokenFromContext(r.Context())
	resp := response.UserAndTokenResponse{
		UserResponse: *user,
		Token:        token,
	}

	utils.ResponseSuccess(w, "User verified", resp)
}

// handleServiceError handles errors for auth operations
func (h *AuthHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "email not confirmed"):
		h.log.Warn(operation+" failed - email not confirmed", zap.Error(err))
		utils.ResponseEmailNotConfirmed(w, errMsg)

	case strings.Contains(errMsg, "not active"),
		strings.Contains(errMsg, "suspended"):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "invalid password"):
		h.log.Warn(operation+" failed - wrong password", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid credentials"):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "password must"),
		strings.Contains(errMsg, "does not match"),
		strings.Contains(errMsg, "OTP is invalid"),
		strings.Contains(errMsg, "already registered"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
