package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"naija-barter/internal/dto/request"
	"naija-barter/internal/usecase"
	"naija-barter/pkg/storage"
	"naija-barter/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const userImageFolder = "naija-barter/users"

type UserHandler struct {
	service  usecase.UserService
	uploader storage.Uploader
	log      *zap.Logger
}

func NewUserHandler(service usecase.UserService, uploader storage.Uploader, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		uploader: uploader,
		log:      log,
	}
}

// Register handles POST /api/users (public). It accepts either a JSON body
// or a multipart form; only the latter can carry a profile image.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	var imageURL *string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}

		req = request.RegisterRequest{
			Email:          formString(r, "email"),
			Name:           formString(r, "name"),
			Phone:          formString(r, "phone"),
			Username:       formString(r, "username"),
			Password:       formString(r, "password"),
			DOB:            emptyToNil(formStringPtr(r, "dob")),
			Location:       emptyToNil(formStringPtr(r, "location")),
			BusinessName:   emptyToNil(formStringPtr(r, "business_name")),
			RegistrationNo: emptyToNil(formStringPtr(r, "registration_no")),
			IsBusiness:     formBool(r, "is_business"),
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

	user, err := h.service.Register(r.Context(), &req, imageURL)
	if err != nil {
		h.handleServiceError(w, err, "register user")
		return
	}

	utils.ResponseCreated(w, "User registered successfully", user)
}

// GetUser handles GET /api/users/{id} (authenticated)
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// ListUsers handles GET /api/users. Only active, non-suspended accounts are
// listed.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.ListRequest{
		Page:     parseInt(query.Get("page"), 1),
		PerPage:  parseInt(query.Get("per_page"), 10),
		Search:   query.Get("search"),
		Ordering: query.Get("ordering"),
	}

	users, err := h.service.ListUsers(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// UpdateUser handles PUT /api/users/{id} (authenticated). Fields absent from
// the body are left untouched; flags and timestamps are never settable here.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	var req request.UserUpdateRequest
	var imageURL *string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.ResponseBadRequest(w, "Invalid multipart form", nil)
			return
		}

		req = request.UserUpdateRequest{
			Name:           formStringPtr(r, "name"),
			Phone:          formStringPtr(r, "phone"),
			Username:       formStringPtr(r, "username"),
			DOB:            formStringPtr(r, "dob"),
			Location:       formStringPtr(r, "location"),
			BusinessName:   formStringPtr(r, "business_name"),
			RegistrationNo: formStringPtr(r, "registration_no"),
			IsBusiness:     formBoolPtr(r, "is_business"),
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

	user, err := h.service.UpdateUser(r.Context(), userID, &req, imageURL)
	if err != nil {
		h.handleServiceError(w, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// DeactivateUser handles DELETE /api/users/{id} (authenticated). The account
// is deactivated rather than removed.
func (h *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.DeactivateUser(r.Context(), userID); err != nil {
		h.handleServiceError(w, err, "deactivate user")
		return
	}

	utils.ResponseSuccess(w, "Account deactivated", nil)
}

// uploadImage stores the optional "image" form file and returns its URL.
// The second return is false when a response has already been written.
func (h *UserHandler) uploadImage(w http.ResponseWriter, r *http.Request) (*string, bool) {
	header, err := formFile(r, "image")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid image upload", nil)
		return nil, false
	}
	if header == nil {
		return nil, true
	}

	url, err := h.uploader.UploadFromHeader(r.Context(), header, userImageFolder)
	if err != nil {
		h.log.Error("Failed to upload user image", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to upload image")
		return nil, false
	}
	return &url, true
}

// handleServiceError handles errors for user operations
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "password must"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		respondServiceError(w, h.log, err, operation)
	}
}
