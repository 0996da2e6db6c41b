package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.title, p.description, p.category, p.price, p.images, p.seller_id, p.created_at, p.updated_at,
		u.username, u.full_name`

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO products (title, description, category, price, images, seller_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err := r.DB.QueryRowContext(dbCtx, query,
		product.Title, product.Description, product.Category, product.Price, pq.Array(product.Images), product.SellerID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)

	return mapPQError(err)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM products p
		JOIN users u ON u.id = p.seller_id
		WHERE p.id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}

	return product, err
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET title = $1, description = $2, category = $3, price = $4, images = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at`

	err := r.DB.QueryRowContext(dbCtx, query,
		product.Title, product.Description, product.Category, product.Price, pq.Array(product.Images), product.ID,
	).Scan(&product.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	return mapPQError(err)
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListProducts returns one page of products, newest first, and the total
// number of products matching the filter.
func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where, args := productFilterClause(filter)

	var total int

	countQuery := `SELECT COUNT(*) FROM products p` + where
	if err := r.DB.QueryRowContext(dbCtx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	offset := (filter.Page - 1) * filter.PageSize
	args = append(args, filter.PageSize, offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		JOIN users u ON u.id = p.seller_id%s
		ORDER BY p.created_at DESC, p.id
		LIMIT $%d OFFSET $%d`, productColumns, where, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0, filter.PageSize)

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func productFilterClause(filter models.ProductFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("p.category = $%d", len(args)))
	}

	if filter.SellerID != nil {
		args = append(args, *filter.SellerID)
		conditions = append(conditions, fmt.Sprintf("p.seller_id = $%d", len(args)))
	}

	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, q)
		conditions = append(conditions, fmt.Sprintf(
			"to_tsvector('english', p.title || ' ' || p.description) @@ plainto_tsquery('english', $%d)", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		product models.Product
		images  pq.StringArray
		seller  models.UserSummary
	)

	err := row.Scan(
		&product.ID, &product.Title, &product.Description, &product.Category, &product.Price, &images,
		&product.SellerID, &product.CreatedAt, &product.UpdatedAt,
		&seller.Username, &seller.FullName,
	)
	if err != nil {
		return nil, err
	}

	product.Images = []string(images)
	seller.ID = product.SellerID
	product.Seller = &seller

	return &product, nil
}
