package repository

import (
	"context"
	"fmt"
	"strings"

	"naija-barter/internal/data/entity"
	"naija-barter/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	FindAll(ctx context.Context, search, orderBy string, limit, offset int) ([]*entity.Location, error)
	CountAll(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type locationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLocationRepository(db database.PgxIface, log *zap.Logger) LocationRepository {
	return &locationRepository{
		db:  db,
		log: log.With(zap.String("repository", "location")),
	}
}

func (r *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	query := `
		INSERT INTO locations (id, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		location.ID,
		location.State,
		location.CreatedAt,
		location.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create location",
			zap.Error(err),
			zap.String("state", location.State),
		)
		return fmt.Errorf("create location %s: %w", location.State, err)
	}

	return nil
}

func (r *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	query := `
		SELECT id, state, created_at, updated_at
		FROM locations
		WHERE id = $1
	`

	var location entity.Location
	err := r.db.QueryRow(ctx, query, id).Scan(
		&location.ID,
		&location.State,
		&location.CreatedAt,
		&location.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find location by ID",
			zap.Error(err),
			zap.String("location_id", id.String()),
		)
		return nil, fmt.Errorf("find location by ID %s: %w", id.String(), err)
	}

	return &location, nil
}

func (r *locationRepository) FindAll(ctx context.Context, search, orderBy string, limit, offset int) ([]*entity.Location, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT id, state, created_at, updated_at
		FROM locations
		WHERE 1=1`)

	args := []interface{}{}
	argCount := 1

	if search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND state ILIKE $%d", argCount))
		args = append(args, "%"+search+"%")
		argCount++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderBy, argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all locations", zap.Error(err))
		return nil, fmt.Errorf("find all locations: %w", err)
	}
	defer rows.Close()

	var locations []*entity.Location
	for rows.Next() {
		var location entity.Location
		err := rows.Scan(
			&location.ID,
			&location.State,
			&location.CreatedAt,
			&location.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan location row", zap.Error(err))
			return nil, fmt.Errorf("scan location row: %w", err)
		}
		locations = append(locations, &location)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate location rows: %w", err)
	}

	return locations, nil
}

func (r *locationRepository) CountAll(ctx context.Context, search string) (int64, error) {
	query := `SELECT COUNT(*) FROM locations`
	args := []interface{}{}

	if search != "" {
		query += " WHERE state ILIKE $1"
		args = append(args, "%"+search+"%")
	}

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		r.log.Error("Failed to count locations", zap.Error(err))
		return 0, fmt.Errorf("count locations: %w", err)
	}

	return total, nil
}

func (r *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	query := `
		UPDATE locations
		SET state = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		location.ID,
		location.State,
		location.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update location",
			zap.Error(err),
			zap.String("location_id", location.ID.String()),
		)
		return fmt.Errorf("update location %s: %w", location.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("location %s not found", location.ID.String())
	}

	return nil
}

func (r *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM locations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete location", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("delete location %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("location %s not found", id.String())
	}

	return nil
}
