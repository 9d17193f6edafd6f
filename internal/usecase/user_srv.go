package usecase

import (
	"context"
	"fmt"
	"time"

	"naija-barter/internal/data/entity"
	"naija-barter/internal/data/repository"
	"naija-barter/internal/dto/request"
	"naija-barter/internal/dto/response"
	"naija-barter/pkg/utils"

	"go.uber.org/zap"
)

var userOrdering = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

type UserService interface {
	Register(ctx context.Context, req *request.RegisterRequest, imageURL *string) (*response.UserResponse, error)
	GetUser(ctx context.Context, userID string) (*response.UserResponse, error)
	ListUsers(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateUser(ctx context.Context, userID string, req *request.UserUpdateRequest, imageURL *string) (*response.UserResponse, error)
	DeactivateUser(ctx context.Context, userID string) error
}

type userService struct {
	repo *repository.Repository
	auth AuthService
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, auth AuthService, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		auth: auth,
		log:  log,
	}
}

func (us *userService) Register(ctx context.Context, req *request.RegisterRequest, imageURL *string) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Check email not already registered
	existing, err := us.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		us.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 3. Password policy + hash
	hash, err := HashNewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	// 4. Allocate a unique short id
	id, err := GenerateUniqueShortID(ctx, us.repo.User.ExistsID)
	if err != nil {
		us.log.Error("Failed to allocate user id", zap.Error(err))
		return nil, fmt.Errorf("failed to create account")
	}

	var dob *time.Time
	if req.DOB != nil {
		parsed, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return nil, fmt.Errorf("validation failed: dob must be YYYY-MM-DD")
		}
		dob = &parsed
	}

	// 5. Build entity
	now := time.Now()
	user := &entity.User{
		ShortBase: entity.ShortBase{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Image:          imageURL,
		Email:          req.Email,
		Name:           req.Name,
		Phone:          req.Phone,
		Username:       req.Username,
		DOB:            dob,
		Location:       req.Location,
		BusinessName:   req.BusinessName,
		RegistrationNo: req.RegistrationNo,
		IsBusiness:     req.IsBusiness,
		IsActive:       true,
		EmailConfirmed: false,
		PasswordHash:   hash,
	}

	// 6. Business-account rule, checked before the store is touched
	if err := user.Validate(); err != nil {
		return nil, err
	}

	// 7. Save
	if err := us.repo.User.Create(ctx, user); err != nil {
		us.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to create account")
	}

	// 8. Send confirmation OTP (async, best effort)
	go us.sendConfirmEmail(user.Email)

	us.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetUser(ctx context.Context, userID string) (*response.UserResponse, error) {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) ListUsers(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	req.Normalize()

	orderBy := orderClause(req.Ordering, userOrdering, "created_at DESC")

	users, err := us.repo.User.FindAll(ctx, req.Search, orderBy, req.Limit(), req.Offset())
	if err != nil {
		us.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to get users")
	}

	total, err := us.repo.User.CountAll(ctx, req.Search)
	if err != nil {
		us.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to count users")
	}

	userResponses := make([]response.UserResponse, len(users))
	for i, user := range users {
		userResponses[i] = response.UserToResponse(user)
	}

	return response.NewPaginatedResponse(userResponses, req.Page, req.PerPage, total), nil
}

func (us *userService) UpdateUser(ctx context.Context, userID string, req *request.UserUpdateRequest, imageURL *string) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.DOB != nil {
		parsed, err := time.Parse("2006-01-02", *req.DOB)
		if err != nil {
			return nil, fmt.Errorf("validation failed: dob must be YYYY-MM-DD")
		}
		user.DOB = &parsed
	}
	if req.Location != nil {
		user.Location = req.Location
	}
	if req.BusinessName != nil {
		user.BusinessName = req.BusinessName
	}
	if req.RegistrationNo != nil {
		user.RegistrationNo = req.RegistrationNo
	}
	if req.IsBusiness != nil {
		user.IsBusiness = *req.IsBusiness
	}
	if imageURL != nil {
		user.Image = imageURL
	}
	user.UpdatedAt = time.Now()

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := us.repo.User.Update(ctx, user); err != nil {
		us.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user")
	}

	us.log.Info("User updated", zap.String("user_id", user.ID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// DeactivateUser clears is_active; accounts are never hard-deleted.
func (us *userService) DeactivateUser(ctx context.Context, userID string) error {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := us.repo.User.Deactivate(ctx, user.ID); err != nil {
		us.log.Error("Failed to deactivate user", zap.Error(err), zap.String("user_id", userID))
		return fmt.Errorf("failed to delete user")
	}

	us.log.Info("User deactivated", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return nil
}

func (us *userService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (us *userService) sendConfirmEmail(email string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := us.auth.SendConfirmEmail(ctx, email); err != nil {
		us.log.Error("Failed to send confirmation OTP", zap.Error(err), zap.String("email", email))
	}
}
