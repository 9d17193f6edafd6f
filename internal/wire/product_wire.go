package wire

import (
	"naija-barter/internal/adaptor"
	"naija-barter/internal/data/repository"
	"naija-barter/pkg/middleware"
	"naija-barter/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireProduct configures listing routes. Browsing is public; creating and
// changing listings requires a bearer token.
func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(repo.User, config, log)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", productHandler.ListProducts)
		r.Get("/{id}", productHandler.GetProduct)

		r.With(auth).Post("/", productHandler.CreateProduct)
		r.With(auth).Put("/{id}", productHandler.UpdateProduct)
		r.With(auth).Delete("/{id}", productHandler.DeleteProduct)
	})
}
