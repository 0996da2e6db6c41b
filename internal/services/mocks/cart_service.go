package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CartService struct {
	mock.Mock
}

func NewCartService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CartService {
	m := &CartService{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, productID)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func (m *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, userID, productID)
	ids, _ := args.Get(0).([]uuid.UUID)
	return ids, args.Error(1)
}

func (m *CartService) ListItems(ctx context.Context, userID uuid.UUID) ([]*models.Product, error) {
	args := m.Called(ctx, userID)
	products, _ := args.Get(0).([]*models.Product)
	return products, args.Error(1)
}
