package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils"
	"github.com/google/uuid"
)

// CartRepository stores cart membership rows. A product appears at most once
// per cart, ordered by insertion.
type CartRepository interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID) error
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error
	ListItemIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]*models.Product, error)
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) AddItem(ctx context.Context, userID, productID uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (user_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING`

	if _, err := r.DB.ExecContext(dbCtx, query, userID, productID); err != nil {
		return mapPQError(err)
	}

	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2`

	_, err := r.DB.ExecContext(dbCtx, query, userID, productID)

	return err
}

func (r *cartRepository) ListItemIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT product_id FROM cart_items WHERE user_id = $1 ORDER BY seq`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart items: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ListItems joins the cart to the catalog. Entries whose product was deleted
// are skipped.
func (r *cartRepository) ListItems(ctx context.Context, userID uuid.UUID) ([]*models.Product, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT ` + productColumns + `
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		JOIN users u ON u.id = p.seller_id
		WHERE ci.user_id = $1
		ORDER BY ci.seq`

	rows, err := r.DB.QueryContext(dbCtx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	return products, rows.Err()
}
