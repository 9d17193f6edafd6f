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

var locationOrdering = map[string]string{
	"state":      "state",
	"created_at": "created_at",
}

type LocationService interface {
	CreateLocation(ctx context.Context, req *request.LocationRequest) (*response.LocationResponse, error)
	GetLocation(ctx context.Context, locationID string) (*response.LocationResponse, error)
	ListLocations(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.LocationResponse], error)
	UpdateLocation(ctx context.Context, locationID string, req *request.LocationRequest) (*response.LocationResponse, error)
	DeleteLocation(ctx context.Context, locationID string) error
}

type locationService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLocationService(repo *repository.Repository, log *zap.Logger) LocationService {
	return &locationService{
		repo: repo,
		log:  log,
	}
}

func (ls *locationService) CreateLocation(ctx context.Context, req *request.LocationRequest) (*response.LocationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	location := &entity.Location{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		State: req.State,
	}

	if err := ls.repo.Location.Create(ctx, location); err != nil {
		ls.log.Error("Failed to create location", zap.Error(err), zap.String("state", req.State))
		return nil, fmt.Errorf("failed to create location")
	}

	ls.log.Info("Location created", zap.String("location_id", location.ID.String()))

	resp := response.LocationToResponse(location)
	return &resp, nil
}

func (ls *locationService) GetLocation(ctx context.Context, locationID string) (*response.LocationResponse, error) {
	location, err := ls.findLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	resp := response.LocationToResponse(location)
	return &resp, nil
}

func (ls *locationService) ListLocations(ctx context.Context, req *request.ListRequest) (*response.PaginatedResponse[response.LocationResponse], error) {
	req.Normalize()

	orderBy := orderClause(req.Ordering, locationOrdering, "state ASC")

	locations, err := ls.repo.Location.FindAll(ctx, req.Search, orderBy, req.Limit(), req.Offset())
	if err != nil {
		ls.log.Error("Failed to list locations", zap.Error(err))
		return nil, fmt.Errorf("failed to get locations")
	}

	total, err := ls.repo.Location.CountAll(ctx, req.Search)
	if err != nil {
		ls.log.Error("Failed to count locations", zap.Error(err))
		return nil, fmt.Errorf("failed to count locations")
	}

	locationResponses := make([]response.LocationResponse, len(locations))
	for i, location := range locations {
		locationResponses[i] = response.LocationToResponse(location)
	}

	return response.NewPaginatedResponse(locationResponses, req.Page, req.PerPage, total), nil
}

func (ls *locationService) UpdateLocation(ctx context.Context, locationID string, req *request.LocationRequest) (*response.LocationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	location, err := ls.findLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	location.State = req.State
	location.UpdatedAt = time.Now()

	if err := ls.repo.Location.Update(ctx, location); err != nil {
		ls.log.Error("Failed to update location", zap.Error(err), zap.String("location_id", locationID))
		return nil, fmt.Errorf("failed to update location")
	}

	resp := response.LocationToResponse(location)
	return &resp, nil
}

func (ls *locationService) DeleteLocation(ctx context.Context, locationID string) error {
	location, err := ls.findLocation(ctx, locationID)
	if err != nil {
		return err
	}

	if err := ls.repo.Location.Delete(ctx, location.ID); err != nil {
		ls.log.Error("Failed to delete location", zap.Error(err), zap.String("location_id", locationID))
		return fmt.Errorf("failed to delete location")
	}

	ls.log.Info("Location deleted", zap.String("location_id", location.ID.String()))
	return nil
}

func (ls *locationService) findLocation(ctx context.Context, locationID string) (*entity.Location, error) {
	id, err := uuid.Parse(locationID)
	if err != nil {
		return nil, fmt.Errorf("invalid location ID")
	}

	location, err := ls.repo.Location.FindByID(ctx, id)
	if err != nil {
		ls.log.Error("Failed to find location", zap.Error(err), zap.String("location_id", locationID))
		return nil, fmt.Errorf("failed to find location")
	}
	if location == nil {
		return nil, fmt.Errorf("location not found")
	}
	return location, nil
}
