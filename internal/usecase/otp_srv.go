package usecase

import (
	"context"
	"fmt"
	"time"

	"naija-barter/internal/data/entity"
	"naija-barter/internal/data/repository"
	"naija-barter/pkg/utils"

	"go.uber.org/zap"
)

// MaxOTPTries caps verification attempts per issued challenge. The counter
// advances before any validity check, so an expired or wrong code still
// burns one of the six tries.
const MaxOTPTries = 6

type OTPService interface {
	Generate(ctx context.Context, user *entity.User, length int, validity time.Duration) (string, error)
	Verify(ctx context.Context, user *entity.User, code string) (bool, error)
	Clear(ctx context.Context, user *entity.User) error
}

type otpService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewOTPService(userRepo repository.UserRepository, log *zap.Logger) OTPService {
	return &otpService{
		userRepo: userRepo,
		log:      log,
	}
}

// Generate issues a fresh numeric challenge, overwriting any outstanding
// one. The plaintext code is returned for delivery and is never logged.
func (s *otpService) Generate(ctx context.Context, user *entity.User, length int, validity time.Duration) (string, error) {
	code := utils.GenerateOTP(length)
	expiry := time.Now().Add(validity)

	if err := s.userRepo.SetOTP(ctx, user.ID, &code, &expiry); err != nil {
		s.log.Error("Failed to store OTP", zap.Error(err), zap.String("user_id", user.ID))
		return "", fmt.Errorf("failed to generate OTP")
	}

	user.OTP = &code
	user.OTPExpiry = &expiry
	user.OTPTries = 0

	s.log.Info("OTP generated",
		zap.String("user_id", user.ID),
		zap.Time("expires_at", expiry),
	)

	return code, nil
}

// Verify burns an attempt first, then checks the challenge. It reports only
// pass/fail; a caller never learns whether the code was wrong, expired, or
// the tries exhausted. A passing code is NOT cleared here.
func (s *otpService) Verify(ctx context.Context, user *entity.User, code string) (bool, error) {
	// Count the attempt before any validity check. The increment is a
	// single conditional update, so concurrent verifies each consume a
	// distinct try.
	tries, err := s.userRepo.IncrementOTPTries(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to count OTP attempt", zap.Error(err), zap.String("user_id", user.ID))
		return false, fmt.Errorf("failed to verify OTP")
	}
	user.OTPTries = tries

	if tries > MaxOTPTries {
		s.log.Warn("OTP tries exhausted",
			zap.String("user_id", user.ID),
			zap.Int("tries", tries),
		)
		return false, nil
	}

	if code == "" || user.OTP == nil || user.OTPExpiry == nil {
		return false, nil
	}

	// Strict less-than: an attempt at the exact expiry instant fails.
	if !time.Now().Before(*user.OTPExpiry) {
		return false, nil
	}

	return *user.OTP == code, nil
}

// Clear drops the outstanding challenge and resets the attempt counter.
func (s *otpService) Clear(ctx context.Context, user *entity.User) error {
	if err := s.userRepo.SetOTP(ctx, user.ID, nil, nil); err != nil {
		s.log.Error("Failed to clear OTP", zap.Error(err), zap.String("user_id", user.ID))
		return fmt.Errorf("failed to clear OTP")
	}

	user.OTP = nil
	user.OTPExpiry = nil
	user.OTPTries = 0

	return nil
}
