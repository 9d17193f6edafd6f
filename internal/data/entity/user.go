package entity

import (
	"fmt"
	"time"
)

type User struct {
	ShortBase
	Image          *string    `db:"image"`
	Email          string     `db:"email"`
	Name           string     `db:"name"`
	Phone          string     `db:"phone"`
	Username       string     `db:"username"`
	DOB            *time.Time `db:"dob"`
	Location       *string    `db:"location"`
	BusinessName   *string    `db:"business_name"`
	RegistrationNo *string    `db:"registration_no"`
	IsBusiness     bool       `db:"is_business"`
	IsActive       bool       `db:"is_active"`
	IsSuspended    bool       `db:"is_suspended"`
	IsStaff        bool       `db:"is_staff"`
	IsSuperuser    bool       `db:"is_superuser"`
	EmailConfirmed bool       `db:"email_confirmed"`
	PasswordHash   string     `db:"password"`
	OTP            *string    `db:"otp"`
	OTPExpiry      *time.Time `db:"otp_expiry"`
	OTPTries       int        `db:"otp_tries"`
}

// Validate enforces the business-account rule: a business user must carry
// a business name, registration number and location. It runs before any
// insert or update, not inside the repository.
func (u *User) Validate() error {
	if u.IsBusiness {
		if u.BusinessName == nil || *u.BusinessName == "" ||
			u.RegistrationNo == nil || *u.RegistrationNo == "" ||
			u.Location == nil || *u.Location == "" {
			return fmt.Errorf("validation failed: business must have business name, registration no. and location")
		}
	}
	return nil
}
