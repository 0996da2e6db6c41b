package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CartRepository struct {
	mock.Mock
}

func NewCartRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartRepository {
	m := &CartRepository{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *CartRepository) AddItem(ctx context.Context, userID, productID uuid.UUID) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *CartRepository) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *CartRepository) ListItemIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]uuid.UUID), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartRepository) ListItems(ctx context.Context, userID uuid.UUID) ([]*models.Product, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*models.Product), args.Error(1)
	}

	return nil, args.Error(1)
}
