package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type CheckoutService struct {
	mock.Mock
}

func NewCheckoutService(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutService {
	m := &CheckoutService{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, idempotencyKey string) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, userID, idempotencyKey)
	resp, _ := args.Get(0).(*models.CheckoutResponse)
	return resp, args.Error(1)
}

type OrderService struct {
	mock.Mock
}

func NewOrderService(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderService {
	m := &OrderService{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *OrderService) ListPurchases(ctx context.Context, buyerID uuid.UUID) ([]*models.Order, error) {
	args := m.Called(ctx, buyerID)
	orders, _ := args.Get(0).([]*models.Order)
	return orders, args.Error(1)
}

type CheckoutNotifier struct {
	mock.Mock
}

func NewCheckoutNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *CheckoutNotifier {
	m := &CheckoutNotifier{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *CheckoutNotifier) OrdersPlaced(ctx context.Context, orders []*models.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

type EventPublisher struct {
	mock.Mock
}

func NewEventPublisher(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisher {
	m := &EventPublisher{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *EventPublisher) PublishJSON(ctx context.Context, key string, payload any) error {
	args := m.Called(ctx, key, payload)
	return args.Error(0)
}
