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

const productColumns = `id, user_id, image, name, description, is_active,
		       category_id, location_id, price, exchange, product_type,
		       created_at, updated_at`

// ProductFilter narrows a product listing. Zero values mean "no filter".
type ProductFilter struct {
	Search      string
	ProductType string
	CategoryID  *uuid.UUID
	LocationID  *uuid.UUID
	UserID      string
	Exchange    string
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	ExistsID(ctx context.Context, id string) (bool, error)
	FindAll(ctx context.Context, filter ProductFilter, orderBy string, limit, offset int) ([]*entity.Product, error)
	CountAll(ctx context.Context, filter ProductFilter) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, user_id, image, name, description, is_active,
		                      category_id, location_id, price, exchange, product_type,
		                      created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		product.ID,
		product.UserID,
		product.Image,
		product.Name,
		product.Description,
		product.IsActive,
		product.CategoryID,
		product.LocationID,
		product.Price,
		product.Exchange,
		product.ProductType,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
			zap.String("user_id", product.UserID),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var product entity.Product
	err := scanProductFields(r.db.QueryRow(ctx, query, id), &product)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id, err)
	}

	return &product, nil
}

func (r *productRepository) ExistsID(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		r.log.Error("Failed to check product id", zap.Error(err), zap.String("id", id))
		return false, fmt.Errorf("check product id %s: %w", id, err)
	}

	return exists, nil
}

func (r *productRepository) FindAll(ctx context.Context, filter ProductFilter, orderBy string, limit, offset int) ([]*entity.Product, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + productColumns + `
		FROM products
		WHERE is_active = true`)

	args, argCount := buildProductFilter(&queryBuilder, filter)

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s LIMIT $%d OFFSET $%d", orderBy, argCount, argCount+1))
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find all products",
			zap.Error(err),
			zap.String("search", filter.Search),
		)
		return nil, fmt.Errorf("find all products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		if err := scanProductFields(rows, &product); err != nil {
			r.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) CountAll(ctx context.Context, filter ProductFilter) (int64, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT COUNT(*) FROM products WHERE is_active = true`)

	args, _ := buildProductFilter(&queryBuilder, filter)

	var total int64
	if err := r.db.QueryRow(ctx, queryBuilder.String(), args...).Scan(&total); err != nil {
		r.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return total, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET image = $2, name = $3, description = $4, category_id = $5,
		    location_id = $6, price = $7, exchange = $8, product_type = $9,
		    updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Image,
		product.Name,
		product.Description,
		product.CategoryID,
		product.LocationID,
		product.Price,
		product.Exchange,
		product.ProductType,
		product.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID),
		)
		return fmt.Errorf("update product %s: %w", product.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", product.ID)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE products SET is_active = false, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product", zap.Error(err), zap.String("id", id))
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %s not found", id)
	}

	r.log.Info("Product deactivated", zap.String("id", id))
	return nil
}

func buildProductFilter(queryBuilder *strings.Builder, filter ProductFilter) ([]interface{}, int) {
	args := []interface{}{}
	argCount := 1

	if filter.Search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND name ILIKE $%d", argCount))
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}
	if filter.ProductType != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND product_type = $%d", argCount))
		args = append(args, filter.ProductType)
		argCount++
	}
	if filter.CategoryID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND category_id = $%d", argCount))
		args = append(args, *filter.CategoryID)
		argCount++
	}
	if filter.LocationID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND location_id = $%d", argCount))
		args = append(args, *filter.LocationID)
		argCount++
	}
	if filter.UserID != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND user_id = $%d", argCount))
		args = append(args, filter.UserID)
		argCount++
	}
	if filter.Exchange != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND exchange = $%d", argCount))
		args = append(args, filter.Exchange)
		argCount++
	}

	return args, argCount
}

func scanProductFields(row pgx.Row, product *entity.Product) error {
	return row.Scan(
		&product.ID,
		&product.UserID,
		&product.Image,
		&product.Name,
		&product.Description,
		&product.IsActive,
		&product.CategoryID,
		&product.LocationID,
		&product.Price,
		&product.Exchange,
		&product.ProductType,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
}
