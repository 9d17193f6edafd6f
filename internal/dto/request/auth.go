package request

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,min=4,max=6,numeric"`
}

type PasswordResetRequest struct {
	Email         string `json:"email" validate:"required,email"`
	OTP           string `json:"otp" validate:"required,min=4,max=6,numeric"`
	Password      string `json:"password" validate:"required"`
	PasswordAgain string `json:"password_again" validate:"required"`
}

type ChangePasswordRequest struct {
	OldPassword      string `json:"old_password" validate:"required"`
	NewPassword      string `json:"new_password" validate:"required"`
	NewPasswordAgain string `json:"new_password_again" validate:"required"`
}
