package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type OrderRepository struct {
	mock.Mock
}

func NewOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderRepository {
	m := &OrderRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *OrderRepository) Checkout(ctx context.Context, buyerID uuid.UUID) ([]*models.Order, error) {
	args := m.Called(ctx, buyerID)
	if v := args.Get(0); v != nil {
		return v.([]*models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *OrderRepository) ListByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*models.Order, error) {
	args := m.Called(ctx, buyerID)
	if v := args.Get(0); v != nil {
		return v.([]*models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}
