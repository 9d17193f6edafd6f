package entity

import (
	"fmt"

	"github.com/google/uuid"
)

type ProductType string

const (
	ProductTypeBarter    ProductType = "barter"
	ProductTypeDeclutter ProductType = "declutter"
	ProductTypeGift      ProductType = "gift"
)

type Product struct {
	ShortBase
	UserID      string      `db:"user_id"`
	Image       *string     `db:"image"`
	Name        string      `db:"name"`
	Description string      `db:"description"`
	IsActive    bool        `db:"is_active"`
	CategoryID  uuid.UUID   `db:"category_id"`
	LocationID  uuid.UUID   `db:"location_id"`
	Price       int64       `db:"price"`
	Exchange    *string     `db:"exchange"`
	ProductType ProductType `db:"product_type"`
}

// Validate enforces the per-type rules before persistence: a barter listing
// names what it is exchanged for, a gift costs nothing.
func (p *Product) Validate() error {
	if p.Price < 0 {
		return fmt.Errorf("validation failed: price should not be less than zero")
	}

	switch p.ProductType {
	case ProductTypeBarter:
		if p.Exchange == nil || *p.Exchange == "" {
			return fmt.Errorf("validation failed: product type barter must have an exchange")
		}
	case ProductTypeGift:
		if p.Price != 0 {
			return fmt.Errorf("validation failed: product type gift must have price of zero")
		}
	}
	return nil
}
