package usecase

import (
	"naija-barter/internal/data/repository"
	"naija-barter/pkg/mailer"
	"naija-barter/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	OTP      OTPService
	Auth     AuthService
	User     UserService
	Product  ProductService
	Category CategoryService
	Location LocationService
}

func NewService(repo *repository.Repository, mail mailer.Mailer, config *utils.Config, log *zap.Logger) *Service {
	otp := NewOTPService(repo.User, log)
	auth := NewAuthService(repo, otp, mail, config, log)

	return &Service{
		OTP:      otp,
		Auth:     auth,
		User:     NewUserService(repo, auth, log),
		Product:  NewProductService(repo, log),
		Category: NewCategoryService(repo, log),
		Location: NewLocationService(repo, log),
	}
}
