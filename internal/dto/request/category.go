package request

type CategoryRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=250"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}

type CategoryUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=250"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
}
