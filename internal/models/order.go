package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is an immutable purchase record. SellerID and Price are snapshots
// taken from the product at checkout.
type Order struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"productId"`
	BuyerID      uuid.UUID       `json:"buyerId"`
	SellerID     uuid.UUID       `json:"sellerId"`
	Price        decimal.Decimal `json:"price"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	Product      *Product        `json:"product,omitempty"`
}

type CheckoutResponse struct {
	Message string      `json:"message"`
	Orders  []uuid.UUID `json:"orders"`
}

type OrderPlacedEvent struct {
	OrderID      uuid.UUID       `json:"orderId"`
	ProductID    uuid.UUID       `json:"productId"`
	BuyerID      uuid.UUID       `json:"buyerId"`
	SellerID     uuid.UUID       `json:"sellerId"`
	Price        decimal.Decimal `json:"price"`
	PurchaseDate time.Time       `json:"purchaseDate"`
}
