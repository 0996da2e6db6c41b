package models

import "github.com/google/uuid"

type CartItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

// CartResponse lists the cart's product ids in insertion order.
type CartResponse struct {
	Items []uuid.UUID `json:"items"`
}
