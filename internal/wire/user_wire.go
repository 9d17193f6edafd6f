package wire

import (
	"naija-barter/internal/adaptor"
	"naija-barter/internal/data/repository"
	"naija-barter/pkg/middleware"
	"naija-barter/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures account routes. Registration and listing are public;
// reads and writes on a specific account require a bearer token.
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	auth := middleware.AuthJWT(repo.User, config, log)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", userHandler.Register)
		r.Get("/", userHandler.ListUsers)

		r.With(auth).Get("/{id}", userHandler.GetUser)
		r.With(auth).Put("/{id}", userHandler.UpdateUser)
		r.With(auth).Delete("/{id}", userHandler.DeactivateUser)
	})
}
