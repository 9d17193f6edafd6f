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

type CategoryHandler struct {
	service usecase.CategoryService
	log     *zap.Logger
}

func NewCategoryHandler(service usecase.CategoryService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		service: service,
		log:     log,
	}
}

// CreateCategory handles POST /api/categories (authenticated)
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req request.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.CreateCategory(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create category")
		return
	}

	utils.ResponseCreated(w, "Category created successfully", category)
}

// GetCategory handles GET /api/categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	category, err := h.service.GetCategory(r.Context(), categoryID)
	if err != nil {
		respondServiceError(w, h.log, err, "get category")
		return
	}

	utils.ResponseSuccess(w, "Category retrieved successfully", category)
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListRequest{
		Page:     parseInt(query.Get("page"), 1),
		PerPage:  parseInt(query.Get("per_page"), 10),
		Search:   query.Get("search"),
		Ordering: query.Get("ordering"),
	}

	categories, err := h.service.ListCategories(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list categories")
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved successfully", categories)
}

// UpdateCategory handles PUT /api/categories/{id} (authenticated)
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	var req request.CategoryUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	category, err := h.service.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update category")
		return
	}

	utils.ResponseSuccess(w, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /api/categories/{id} (authenticated)
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID := chi.URLParam(r, "id")
	if categoryID == "" {
		utils.ResponseBadRequest(w, "Category ID is required", nil)
		return
	}

	if err := h.service.DeleteCategory(r.Context(), categoryID); err != nil {
		respondServiceError(w, h.log, err, "delete category")
		return
	}

	utils.ResponseSuccess(w, "Category deleted successfully", nil)
}
