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

var productOrdering = map[string]string{
	"name":       "name",
	"created_at": "created_at",
	"price":      "price",
}

type ProductService interface {
	CreateProduct(ctx context.Context, userID string, req *request.ProductRequest, imageURL *string) (*response.ProductResponse, error)
	GetProduct(ctx context.Context, productID string) (*response.ProductResponse, error)
	ListProducts(ctx context.Context, req *request.ProductListRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	UpdateProduct(ctx context.Context, productID string, req *request.ProductUpdateRequest, imageURL *string) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log,
	}
}

func (ps *productService) CreateProduct(ctx context.Context, userID string, req *request.ProductRequest, imageURL *string) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		ps.log.Warn("Create product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	categoryID, locationID, err := ps.resolveRefs(ctx, req.CategoryID, req.LocationID)
	if err != nil {
		return nil, err
	}

	id, err := GenerateUniqueShortID(ctx, ps.repo.Product.ExistsID)
	if err != nil {
		ps.log.Error("Failed to allocate product id", zap.Error(err))
		return nil, fmt.Errorf("failed to create product")
	}

	now := time.Now()
	product := &entity.Product{
		ShortBase: entity.ShortBase{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userID,
		Image:       imageURL,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		CategoryID:  categoryID,
		LocationID:  locationID,
		Price:       req.Price,
		Exchange:    req.Exchange,
		ProductType: entity.ProductType(req.ProductType),
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := ps.repo.Product.Create(ctx, product); err != nil {
		ps.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product")
	}

	ps.log.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("user_id", userID),
		zap.String("type", req.ProductType),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (ps *productService) GetProduct(ctx context.Context, productID string) (*response.ProductResponse, error) {
	product, err := ps.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (ps *productService) ListProducts(ctx context.Context, req *request.ProductListRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	req.Normalize()

	filter := repository.ProductFilter{
		Search:      req.Search,
		ProductType: req.ProductType,
		UserID:      req.UserID,
		Exchange:    req.Exchange,
	}
	if req.CategoryID != "" {
		id, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("validation failed: category must be a valid UUID")
		}
		filter.CategoryID = &id
	}
	if req.LocationID != "" {
		id, err := uuid.Parse(req.LocationID)
		if err != nil {
			return nil, fmt.Errorf("validation failed: location must be a valid UUID")
		}
		filter.LocationID = &id
	}

	orderBy := orderClause(req.Ordering, productOrdering, "created_at DESC")

	products, err := ps.repo.Product.FindAll(ctx, filter, orderBy, req.Limit(), req.Offset())
	if err != nil {
		ps.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("failed to get products")
	}

	total, err := ps.repo.Product.CountAll(ctx, filter)
	if err != nil {
		ps.log.Error("Failed to count products", zap.Error(err))
		return nil, fmt.Errorf("failed to count products")
	}

	productResponses := make([]response.ProductResponse, len(products))
	for i, product := range products {
		productResponses[i] = response.ProductToResponse(product)
	}

	return response.NewPaginatedResponse(productResponses, req.Page, req.PerPage, total), nil
}

func (ps *productService) UpdateProduct(ctx context.Context, productID string, req *request.ProductUpdateRequest, imageURL *string) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product, err := ps.findProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.CategoryID != nil {
		id, err := ps.resolveCategory(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		product.CategoryID = id
	}
	if req.LocationID != nil {
		id, err := ps.resolveLocation(ctx, *req.LocationID)
		if err != nil {
			return nil, err
		}
		product.LocationID = id
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Exchange != nil {
		product.Exchange = req.Exchange
	}
	if req.ProductType != nil {
		product.ProductType = entity.ProductType(*req.ProductType)
	}
	if imageURL != nil {
		product.Image = imageURL
	}
	product.UpdatedAt = time.Now()

	if err := product.Validate(); err != nil {
		return nil, err
	}

	if err := ps.repo.Product.Update(ctx, product); err != nil {
		ps.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product")
	}

	ps.log.Info("Product updated", zap.String("product_id", product.ID))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (ps *productService) DeleteProduct(ctx context.Context, productID string) error {
	product, err := ps.findProduct(ctx, productID)
	if err != nil {
		return err
	}

	if err := ps.repo.Product.Delete(ctx, product.ID); err != nil {
		ps.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", productID))
		return fmt.Errorf("failed to delete product")
	}

	ps.log.Info("Product deleted", zap.String("product_id", product.ID))
	return nil
}

func (ps *productService) findProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := ps.repo.Product.FindByID(ctx, productID)
	if err != nil {
		ps.log.Error("Failed to find product", zap.Error(err), zap.String("product_id", productID))
		return nil, fmt.Errorf("failed to find product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}
	return product, nil
}

func (ps *productService) resolveRefs(ctx context.Context, categoryID, locationID string) (uuid.UUID, uuid.UUID, error) {
	catID, err := ps.resolveCategory(ctx, categoryID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	locID, err := ps.resolveLocation(ctx, locationID)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return catID, locID, nil
}

func (ps *productService) resolveCategory(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("validation failed: category_id must be a valid UUID")
	}

	category, err := ps.repo.Category.FindByID(ctx, id)
	if err != nil {
		ps.log.Error("Failed to check category", zap.Error(err), zap.String("category_id", raw))
		return uuid.Nil, fmt.Errorf("failed to check category")
	}
	if category == nil {
		return uuid.Nil, fmt.Errorf("category not found")
	}

	return id, nil
}

func (ps *productService) resolveLocation(ctx context.Context, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("validation failed: location_id must be a valid UUID")
	}

	location, err := ps.repo.Location.FindByID(ctx, id)
	if err != nil {
		ps.log.Error("Failed to check location", zap.Error(err), zap.String("location_id", raw))
		return uuid.Nil, fmt.Errorf("failed to check location")
	}
	if location == nil {
		return uuid.Nil, fmt.Errorf("location not found")
	}

	return id, nil
}
