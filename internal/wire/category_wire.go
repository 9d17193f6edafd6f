package wire

import (
	"naija-barter/internal/adaptor"
	"naija-barter/internal/data/repository"
	"naija-barter/pkg/middleware"
	"naija-barter/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireCategory configures category routes
func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(repo.User, config, log)

	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", categoryHandler.ListCategories)
		r.Get("/{id}", categoryHandler.GetCategory)

		r.With(auth).Post("/", categoryHandler.CreateCategory)
		r.With(auth).Put("/{id}", categoryHandler.UpdateCategory)
		r.With(auth).Delete("/{id}", categoryHandler.DeleteCategory)
	})
}
