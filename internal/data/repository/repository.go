package repository

import (
	"naija-barter/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Product  ProductRepository
	Category CategoryRepository
	Location LocationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Product:  NewProductRepository(db, log),
		Category: NewCategoryRepository(db, log),
		Location: NewLocationRepository(db, log),
	}
}
