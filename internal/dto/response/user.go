package response

import (
	"time"

	"naija-barter/internal/data/entity"
)

// UserResponse is the public shape of an account. The password hash and OTP
// state never leave the server.
type UserResponse struct {
	ID             string     `json:"id"`
	Image          *string    `json:"image,omitempty"`
	Email          string     `json:"email"`
	Name           string     `json:"name"`
	Phone          string     `json:"phone"`
	Username       string     `json:"username"`
	DOB            *time.Time `json:"dob,omitempty"`
	Location       *string    `json:"location,omitempty"`
	BusinessName   *string    `json:"business_name,omitempty"`
	RegistrationNo *string    `json:"registration_no,omitempty"`
	IsBusiness     bool       `json:"is_business"`
	IsActive       bool       `json:"is_active"`
	IsSuspended    bool       `json:"is_suspended"`
	EmailConfirmed bool       `json:"email_confirmed"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// UserAndTokenResponse is the login payload: the user plus a bearer token.
type UserAndTokenResponse struct {
	UserResponse
	Token string `json:"token"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:             user.ID,
		Image:          user.Image,
		Email:          user.Email,
		Name:           user.Name,
		Phone:          user.Phone,
		Username:       user.Username,
		DOB:            user.DOB,
		Location:       user.Location,
		BusinessName:   user.BusinessName,
		RegistrationNo: user.RegistrationNo,
		IsBusiness:     user.IsBusiness,
		IsActive:       user.IsActive,
		IsSuspended:    user.IsSuspended,
		EmailConfirmed: user.EmailConfirmed,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

func UserAndTokenToResponse(user *entity.User, token string) UserAndTokenResponse {
	return UserAndTokenResponse{
		UserResponse: UserToResponse(user),
		Token:        token,
	}
}
