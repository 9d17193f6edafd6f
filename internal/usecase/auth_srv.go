package usecase

import (
	"context"
	"fmt"
	"time"

	"naija-barter/internal/data/entity"
	"naija-barter/internal/data/repository"
	"naija-barter/internal/dto/request"
	"naija-barter/internal/dto/response"
	"naija-barter/pkg/mailer"
	"naija-barter/pkg/utils"

	"go.uber.org/zap"
)

// GenericOTPSentMessage is returned by the forgot-password and
// send-confirm-email flows whether or not the account exists, so the
// endpoints cannot be used to enumerate registered emails.
const GenericOTPSentMessage = "If an account with this email exists, an email with a code has been sent."

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserAndTokenResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	SendConfirmEmail(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error
	ConfirmEmail(ctx context.Context, req *request.VerifyOTPRequest) error
	PasswordReset(ctx context.Context, req *request.PasswordResetRequest) error
	ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error
	CurrentUser(ctx context.Context, userID string) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	otp    OTPService
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	otp OTPService,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		otp:    otp,
		mail:   mail,
		config: config,
		log:    log,
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserAndTokenResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("Login for unknown email", zap.String("email", req.Email))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 3. Inactive accounts are rejected before the credentials are even
	// checked
	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID))
		return nil, fmt.Errorf("user is not active")
	}

	// 4. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID))
		return nil, fmt.Errorf("invalid credentials")
	}

	// 5. Mint token
	token, err := utils.GenerateToken(user.ID, []byte(s.config.JWT.Secret),
		time.Duration(s.config.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		s.log.Error("Failed to mint token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, fmt.Errorf("failed to create token")
	}

	// 6. A valid credential pair is still not a usable session until the
	// email is confirmed; the check deliberately sits after minting.
	if !user.EmailConfirmed {
		s.log.Warn("Login with unconfirmed email", zap.String("user_id", user.ID))
		return nil, fmt.Errorf("email not confirmed")
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID), zap.String("email", user.Email))

	resp := response.UserAndTokenToResponse(user, token)
	return &resp, nil
}

// ForgotPassword issues a password-reset code. The caller gets the same
// answer whether or not the account exists.
func (s *authService) ForgotPassword(ctx context.Context, email string) error {
	return s.sendOTP(ctx, email, "Password Reset OTP Code")
}

// SendConfirmEmail issues an email-confirmation code with the same
// enumeration-safe behavior as ForgotPassword.
func (s *authService) SendConfirmEmail(ctx context.Context, email string) error {
	return s.sendOTP(ctx, email, "Confirm Your Email Code")
}

func (s *authService) sendOTP(ctx context.Context, email, subject string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		// Generic ack; an absent account must be indistinguishable
		// from a successful send.
		return nil
	}

	code, err := s.otp.Generate(ctx, user,
		s.config.OTP.Length,
		time.Duration(s.config.OTP.ValidityHours)*time.Hour)
	if err != nil {
		return err
	}

	// The challenge is already persisted; a failed send leaves it valid
	// and the user simply requests a fresh one.
	body := fmt.Sprintf("OTP code, use it to confirm your email: %s", code)
	if err := s.mail.Send(subject, body, email); err != nil {
		s.log.Error("Failed to send OTP email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("an error occurred while trying to send email")
	}

	return nil
}

func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	ok, err := s.otp.Verify(ctx, user, req.OTP)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("OTP is invalid")
	}

	return nil
}

func (s *authService) ConfirmEmail(ctx context.Context, req *request.VerifyOTPRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	ok, err := s.otp.Verify(ctx, user, req.OTP)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("OTP is invalid")
	}

	if err := s.repo.User.SetEmailConfirmed(ctx, user.ID); err != nil {
		s.log.Error("Failed to confirm email", zap.Error(err), zap.String("user_id", user.ID))
		return fmt.Errorf("failed to confirm email")
	}
	user.EmailConfirmed = true

	if err := s.otp.Clear(ctx, user); err != nil {
		return err
	}

	s.log.Info("Email confirmed", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return nil
}

func (s *authService) PasswordReset(ctx context.Context, req *request.PasswordResetRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.findUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	ok, err := s.otp.Verify(ctx, user, req.OTP)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("OTP is invalid")
	}

	if err := utils.ValidatePasswordPolicy(req.Password); err != nil {
		return err
	}
	if req.Password != req.PasswordAgain {
		return fmt.Errorf("password and repeat does not match")
	}

	if err := s.otp.Clear(ctx, user); err != nil {
		return err
	}

	if err := SetPassword(ctx, s.repo.User, user, req.Password); err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("user_id", user.ID))
		return err
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID))
	return nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return fmt.Errorf("invalid password")
	}

	if err := utils.ValidatePasswordPolicy(req.NewPassword); err != nil {
		return err
	}
	if req.NewPassword != req.NewPasswordAgain {
		return fmt.Errorf("password and repeat does not match")
	}

	if err := SetPassword(ctx, s.repo.User, user, req.NewPassword); err != nil {
		s.log.Error("Failed to change password", zap.Error(err), zap.String("user_id", user.ID))
		return err
	}

	s.log.Info("Password changed", zap.String("user_id", user.ID))
	return nil
}

func (s *authService) CurrentUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// findUserByEmail is the lookup for the OTP-bearing endpoints that require
// the account to exist (verify, confirm, reset). Unlike sendOTP, absence
// surfaces as not found.
func (s *authService) findUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}
