package adaptor

import (
	"encoding/json"
	"net/http"

	"naija-barter/internal/dto/request"
	"naija-barter/internal/usecase"
	"naija-barter/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LocationHandler struct {
	service usecase.LocationService
	log     *zap.Logger
}

func NewLocationHandler(service usecase.LocationService, log *zap.Logger) *LocationHandler {
	return &LocationHandler{
		service: service,
		log:     log,
	}
}

// CreateLocation handles POST /api/locations (authenticated)
func (h *LocationHandler) CreateLocation(w http.ResponseWriter, r *http.Request) {
	var req request.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	location, err := h.service.CreateLocation(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create location")
		return
	}

	utils.ResponseCreated(w, "Location created successfully", location)
}

// GetLocation handles GET /api/locations/{id}
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "id")
	if locationID == "" {
		utils.ResponseBadRequest(w, "Location ID is required", nil)
		return
	}

	location, err := h.service.GetLocation(r.Context(), locationID)
	if err != nil {
		respondServiceError(w, h.log, err, "get location")
		return
	}

	utils.ResponseSuccess(w, "Location retrieved successfully", location)
}

// ListLocations handles GET /api/locations
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListRequest{
		Page:     parseInt(query.Get("page"), 1),
		PerPage:  parseInt(query.Get("per_page"), 10),
		Search:   query.Get("search"),
		Ordering: query.Get("ordering"),
	}

	locations, err := h.service.ListLocations(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list locations")
		return
	}

	utils.ResponseSuccess(w, "Locations retrieved successfully", locations)
}

// UpdateLocation handles PUT /api/locations/{id} (authenticated)
func (h *LocationHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "id")
	if locationID == "" {
		utils.ResponseBadRequest(w, "Location ID is required", nil)
		return
	}

	var req request.LocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	location, err := h.service.UpdateLocation(r.Context(), locationID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update location")
		return
	}

	utils.ResponseSuccess(w, "Location updated successfully", location)
}

// DeleteLocation handles DELETE /api/locations/{id} (authenticated)
func (h *LocationHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "id")
	if locationID == "" {
		utils.ResponseBadRequest(w, "Location ID is required", nil)
		return
	}

	if err := h.service.DeleteLocation(r.Context(), locationID); err != nil {
		respondServiceError(w, h.log, err, "delete location")
		return
	}

	utils.ResponseSuccess(w, "Location deleted successfully", nil)
}
