package request

// RegisterRequest is decoded from a multipart form; the optional image file
// travels outside this struct.
type RegisterRequest struct {
	Email          string  `json:"email" validate:"required,email"`
	Name           string  `json:"name" validate:"required,min=1,max=250"`
	Phone          string  `json:"phone" validate:"required,min=7,max=25"`
	Username       string  `json:"username" validate:"required,min=1,max=250"`
	Password       string  `json:"password" validate:"required"`
	DOB            *string `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Location       *string `json:"location,omitempty"`
	BusinessName   *string `json:"business_name,omitempty"`
	RegistrationNo *string `json:"registration_no,omitempty"`
	IsBusiness     bool    `json:"is_business"`
}

type UserUpdateRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=1,max=250"`
	Phone          *string `json:"phone,omitempty" validate:"omitempty,min=7,max=25"`
	Username       *string `json:"username,omitempty" validate:"omitempty,min=1,max=250"`
	DOB            *string `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Location       *string `json:"location,omitempty"`
	BusinessName   *string `json:"business_name,omitempty"`
	RegistrationNo *string `json:"registration_no,omitempty"`
	IsBusiness     *bool   `json:"is_business,omitempty"`
}
