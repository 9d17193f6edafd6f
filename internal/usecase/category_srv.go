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

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var categoryOrdering = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

type CategoryService interface {
	CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error)
	GetCategory(ctx context.Context, categoryID string) (*response.CategoryResponse, error)
	ListCategories(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.CategoryResponse], error)
	UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryUpdateRequest) (*response.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

type categoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCategoryService(repo *repository.Repository, log *zap.Logger) CategoryService {
	return &categoryService{
		repo: repo,
		log:  log,
	}
}

func (cs *categoryService) CreateCategory(ctx context.Context, req *request.CategoryRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	category := &entity.Category{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
	}

	if err := cs.repo.Category.Create(ctx, category); err != nil {
		cs.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category")
	}

	cs.log.Info("Category created", zap.String("category_id", category.ID.String()))

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (cs *categoryService) GetCategory(ctx context.Context, categoryID string) (*response.CategoryResponse, error) {
	category, err := cs.findCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (cs *categoryService) ListCategories(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.CategoryResponse], error) {
	req.Normalize()

	orderBy := orderClause(req.Ordering, categoryOrdering, "name ASC")

	categories, err := cs.repo.Category.FindAll(ctx, req.Search, orderBy, req.Limit(), req.Offset())
	if err != nil {
		cs.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get categories")
	}

	total, err := cs.repo.Category.CountAll(ctx, req.Search)
	if err != nil {
		cs.log.Error("Failed to count categories", zap.Error(err))
		return nil, fmt.Errorf("failed to count categories")
	}

	categoryResponses := make([]response.CategoryResponse, len(categories))
	for i, category := range categories {
		categoryResponses[i] = response.CategoryToResponse(category)
	}

	return response.NewPaginatedResponse(categoryResponses, req.Page, req.PerPage, total), nil
}

func (cs *categoryService) UpdateCategory(ctx context.Context, categoryID string, req *request.CategoryUpdateRequest) (*response.CategoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category, err := cs.findCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	category.UpdatedAt = time.Now()

	if err := cs.repo.Category.Update(ctx, category); err != nil {
		cs.log.Error("Failed to update category", zap.Error(err), zap.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category")
	}

	resp := response.CategoryToResponse(category)
	return &resp, nil
}

func (cs *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	category, err := cs.findCategory(ctx, categoryID)
	if err != nil {
		return err
	}

	if err := cs.repo.Category.Delete(ctx, category.ID); err != nil {
		cs.log.Error("Failed to delete category", zap.Error(err), zap.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category")
	}

	cs.log.Info("Category deleted", zap.String("category_id", category.ID.String()))
	return nil
}

func (cs *categoryService) findCategory(ctx context.Context, categoryID string) (*entity.Category, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category ID")
	}

	category, err := cs.repo.Category.FindByID(ctx, id)
	if err != nil {
		cs.log.Error("Failed to find category", zap.Error(err), zap.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to find category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}
	return category, nil
}
