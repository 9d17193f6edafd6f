package adaptor

import (
	"net/http"
	"strings"

	"naija-barter/internal/usecase"
	"naija-barter/pkg/storage"
	"naija-barter/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Product  *ProductHandler
	Category *CategoryHandler
	Location *LocationHandler
}

func NewHandler(service *usecase.Service, uploader storage.Uploader, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, uploader, log),
		Product:  NewProductHandler(service.Product, uploader, log),
		Category: NewCategoryHandler(service.Category, log),
		Location: NewLocationHandler(service.Location, log),
	}
}

// respondServiceError maps a service error message to an HTTP status. The
// resource handlers all share this mapping; auth keeps its own richer one.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
