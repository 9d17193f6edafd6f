package wire

import (
	"net/http"

	"naija-barter/internal/adaptor"
	"naija-barter/internal/data/repository"
	"naija-barter/internal/usecase"
	"naija-barter/pkg/mailer"
	"naija-barter/pkg/middleware"
	"naija-barter/pkg/storage"
	"naija-barter/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(
	repo *repository.Repository,
	mail mailer.Mailer,
	uploader storage.Uploader,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, mail, config, logger)
	handler := adaptor.NewHandler(service, uploader, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireProduct(r, handler.Product, repo, config, logger)
	wireCategory(r, handler.Category, repo, config, logger)
	wireLocation(r, handler.Location, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
