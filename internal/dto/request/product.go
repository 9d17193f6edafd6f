package request

type ProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=250"`
	Description string  `json:"description" validate:"required,max=1000"`
	CategoryID  string  `json:"category_id" validate:"required,uuid4"`
	LocationID  string  `json:"location_id" validate:"required,uuid4"`
	Price       int64   `json:"price" validate:"min=0"`
	Exchange    *string `json:"exchange,omitempty"`
	ProductType string  `json:"product_type" validate:"required,oneof=barter declutter gift"`
}

type ProductUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=250"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	CategoryID  *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	LocationID  *string `json:"location_id,omitempty" validate:"omitempty,uuid4"`
	Price       *int64  `json:"price,omitempty" validate:"omitempty,min=0"`
	Exchange    *string `json:"exchange,omitempty"`
	ProductType *string `json:"product_type,omitempty" validate:"omitempty,oneof=barter declutter gift"`
}

// ProductListRequest carries the filter fields the product listing accepts
// on top of the shared list parameters.
type ProductListRequest struct {
	ListRequest
	ProductType string `json:"product_type" validate:"omitempty,oneof=barter declutter gift"`
	CategoryID  string `json:"category" validate:"omitempty,uuid4"`
	LocationID  string `json:"location" validate:"omitempty,uuid4"`
	UserID      string `json:"user"`
	Exchange    string `json:"exchange"`
}
