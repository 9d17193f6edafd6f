package wire

import (
	"naija-barter/internal/adaptor"
	"naija-barter/internal/data/repository"
	"naija-barter/pkg/middleware"
	"naija-barter/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireLocation configures location routes
func wireLocation(
	r chi.Router,
	locationHandler *adaptor.LocationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(repo.User, config, log)

	r.Route("/api/locations", func(r chi.Router) {
		r.Get("/", locationHandler.ListLocations)
		r.Get("/{id}", locationHandler.GetLocation)

		r.With(auth).Post("/", locationHandler.CreateLocation)
		r.With(auth).Put("/{id}", locationHandler.UpdateLocation)
		r.With(auth).Delete("/{id}", locationHandler.DeleteLocation)
	})
}
