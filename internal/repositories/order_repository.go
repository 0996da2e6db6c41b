package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	Checkout(ctx context.Context, buyerID uuid.UUID) ([]*models.Order, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*models.Order, error)
}

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

type checkoutLine struct {
	productID uuid.UUID
	found     uuid.NullUUID
	sellerID  uuid.NullUUID
	price     decimal.NullDecimal
}

// Checkout turns the buyer's cart into orders in a single transaction. The
// buyer row is locked first so concurrent checkouts for the same user run one
// after the other. Only the rows that were read are deleted from the cart.
func (r *orderRepository) Checkout(ctx context.Context, buyerID uuid.UUID) ([]*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin checkout: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	var locked uuid.UUID
	if err := tx.QueryRowContext(dbCtx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, buyerID).Scan(&locked); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("failed to lock buyer: %w", err)
	}

	lines, err := readCheckoutLines(dbCtx, tx, buyerID)
	if err != nil {
		return nil, err
	}

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	for _, line := range lines {
		if !line.found.Valid {
			return nil, &MissingProductError{ProductID: line.productID}
		}
	}

	orders := make([]*models.Order, 0, len(lines))
	productIDs := make([]string, 0, len(lines))

	insert := `
		INSERT INTO orders (product_id, buyer_id, seller_id, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id, purchase_date`

	for _, line := range lines {
		order := &models.Order{
			ProductID: line.productID,
			BuyerID:   buyerID,
			SellerID:  line.sellerID.UUID,
			Price:     line.price.Decimal,
		}

		if err := tx.QueryRowContext(dbCtx, insert, order.ProductID, order.BuyerID, order.SellerID, order.Price).
			Scan(&order.ID, &order.PurchaseDate); err != nil {
			return nil, fmt.Errorf("failed to insert order: %w", err)
		}

		orders = append(orders, order)
		productIDs = append(productIDs, line.productID.String())
	}

	if _, err := tx.ExecContext(dbCtx,
		`DELETE FROM cart_items WHERE user_id = $1 AND product_id = ANY($2)`,
		buyerID, pq.Array(productIDs),
	); err != nil {
		return nil, fmt.Errorf("failed to clear checked out items: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}

	return orders, nil
}

func readCheckoutLines(ctx context.Context, tx *sql.Tx, buyerID uuid.UUID) ([]checkoutLine, error) {
	query := `
		SELECT ci.product_id, p.id, p.seller_id, p.price
		FROM cart_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE ci.user_id = $1
		ORDER BY ci.seq
		FOR UPDATE OF ci`

	rows, err := tx.QueryContext(ctx, query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	defer rows.Close()

	var lines []checkoutLine

	for rows.Next() {
		var line checkoutLine
		if err := rows.Scan(&line.productID, &line.found, &line.sellerID, &line.price); err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// ListByBuyer returns the buyer's purchases, newest first. Product is nil for
// orders whose product has since been deleted.
func (r *orderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*models.Order, error) {

	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT o.id, o.product_id, o.buyer_id, o.seller_id, o.price, o.purchase_date,
			p.id, p.title, p.description, p.category, p.price, p.images, p.created_at, p.updated_at
		FROM orders o
		LEFT JOIN products p ON p.id = o.product_id
		WHERE o.buyer_id = $1
		ORDER BY o.purchase_date DESC, o.id`

	rows, err := r.DB.QueryContext(dbCtx, query, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	orders := []*models.Order{}

	for rows.Next() {
		var (
			order       models.Order
			productID   uuid.NullUUID
			title       sql.NullString
			description sql.NullString
			category    sql.NullString
			price       decimal.NullDecimal
			images      pq.StringArray
			createdAt   sql.NullTime
			updatedAt   sql.NullTime
		)

		err := rows.Scan(
			&order.ID, &order.ProductID, &order.BuyerID, &order.SellerID, &order.Price, &order.PurchaseDate,
			&productID, &title, &description, &category, &price, &images, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, err
		}

		if productID.Valid {
			order.Product = &models.Product{
				ID:          productID.UUID,
				Title:       title.String,
				Description: description.String,
				Category:    models.Category(category.String),
				Price:       price.Decimal,
				Images:      []string(images),
				SellerID:    order.SellerID,
				CreatedAt:   createdAt.Time,
				UpdatedAt:   updatedAt.Time,
			}
		}

		orders = append(orders, &order)
	}

	return orders, rows.Err()
}
