package adaptor

import (
	"encoding/json"
	"net/http"

	"naija-barter/internal/dto/request"
	"naija-barter/internal/usecase"
	"naija-barter/pkg/storage"
	"naija-barter/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const productImageFolder = "naija-barter/products"

type ProductHandler struct {
	service  usecase.ProductService
	uploader storage.Uploader
	log      *zap.Logger
}

func NewProductHandler(service usecase.ProductService, uploader storage.Uploader, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service:  service,
		uploader: uploader,
		log:      log,
	}
}

// CreateProduct handles POST /api/products (authenticated). Accepts JSON or
// a multipart form with an optional "image" file.
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ProductRequest
	var imageURL *string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}

		price, err := formInt64(r, "price")
		if err != nil {
			utils.ResponseBadRequest(w, "Price must be a number", nil)
			return
		}

		req = request.ProductRequest{
			Name:        formString(r, "name"),
			Description: formString(r, "description"),
			CategoryID:  formString(r, "category_id"),
			LocationID:  formString(r, "location_id"),
			Price:       price,
			Exchange:    emptyToNil(formStringPtr(r, "exchange")),
			ProductType: formString(r, "product_type"),
		}

		url, ok := h.uploadImage(w, r)
		if !ok {
			return
		}
		imageURL = url
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	product, err := h.service.CreateProduct(r.Context(), userID, &req, imageURL)
	if err != nil {
		respondServiceError(w, h.log, err, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", product)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	product, err := h.service.GetProduct(r.Context(), productID)
	if err != nil {
		respondServiceError(w, h.log, err, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", product)
}

// ListProducts handles GET /api/products with filter query parameters.
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ProductListRequest{
		ListRequest: request.ListRequest{
			Page:     parseInt(query.Get("page"), 1),
			PerPage:  parseInt(query.Get("per_page"), 10),
			Search:   query.Get("search"),
			Ordering: query.Get("ordering"),
		},
		ProductType: query.Get("product_type"),
		CategoryID:  query.Get("category"),
		LocationID:  query.Get("location"),
		UserID:      query.Get("user"),
		Exchange:    query.Get("exchange"),
	}

	products, err := h.service.ListProducts(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list products")
		return
	}

	utils.ResponseSuccess(w, "Products retrieved successfully", products)
}

// UpdateProduct handles PUT /api/products/{id} (authenticated, owner only).
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	var req request.ProductUpdateRequest
	var imageURL *string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}

		price, err := formInt64Ptr(r, "price")
		if err != nil {
			utils.ResponseBadRequest(w, "Price must be a number", nil)
			return
		}

		req = request.ProductUpdateRequest{
			Name:        formStringPtr(r, "name"),
			Description: formStringPtr(r, "description"),
			CategoryID:  formStringPtr(r, "category_id"),
			LocationID:  formStringPtr(r, "location_id"),
			Price:       price,
			Exchange:    formStringPtr(r, "exchange"),
			ProductType: formStringPtr(r, "product_type"),
		}

		url, ok := h.uploadImage(w, r)
		if !ok {
			return
		}
		imageURL = url
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	product, err := h.service.UpdateProduct(r.Context(), productID, &req, imageURL)
	if err != nil {
		respondServiceError(w, h.log, err, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", product)
}

// DeleteProduct handles DELETE /api/products/{id} (authenticated, owner
// only). The listing is hidden rather than removed.
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")
	if productID == "" {
		utils.ResponseBadRequest(w, "Product ID is required", nil)
		return
	}

	if err := h.service.DeleteProduct(r.Context(), productID); err != nil {
		respondServiceError(w, h.log, err, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}

func (h *ProductHandler) uploadImage(w http.ResponseWriter, r *http.Request) (*string, bool) {
	header, err := formFile(r, "image")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid image upload", nil)
		return nil, false
	}
	if header == nil {
		return nil, true
	}

	url, err := h.uploader.UploadFromHeader(r.Context(), header, productImageFolder)
	if err != nil {
		h.log.Error("Failed to upload product image", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to upload image")
		return nil, false
	}
	return &url, true
}
