package response

import (
	"time"

	"naija-barter/internal/data/entity"
)

type ProductResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Image       *string   `json:"image,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CategoryID  string    `json:"category_id"`
	LocationID  string    `json:"location_id"`
	Price       int64     `json:"price"`
	Exchange    *string   `json:"exchange,omitempty"`
	ProductType string    `json:"product_type"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		UserID:      product.UserID,
		Image:       product.Image,
		Name:        product.Name,
		Description: product.Description,
		IsActive:    product.IsActive,
		CategoryID:  product.CategoryID.String(),
		LocationID:  product.LocationID.String(),
		Price:       product.Price,
		Exchange:    product.Exchange,
		ProductType: string(product.ProductType),
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
}
