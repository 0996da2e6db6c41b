package mocks

import (
	"context"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type ProductService struct {
	mock.Mock
}

func NewProductService(t interface {
	mock.TestingT
	Cleanup(func())
}) *ProductService {
	m := &ProductService{}
	m.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *ProductService) CreateProduct(ctx context.Context, sellerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, sellerID, req)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *ProductService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *ProductService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {
	args := m.Called(ctx, filter)
	products, _ := args.Get(0).([]*models.Product)
	return products, args.Int(1), args.Error(2)
}

func (m *ProductService) UpdateProduct(ctx context.Context, callerID, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {
	args := m.Called(ctx, callerID, id, req)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *ProductService) DeleteProduct(ctx context.Context, callerID, id uuid.UUID) error {
	args := m.Called(ctx, callerID, id)
	return args.Error(0)
}

func (m *ProductService) ListListings(ctx context.Context, sellerID uuid.UUID) ([]*models.Product, error) {
	args := m.Called(ctx, sellerID)
	products, _ := args.Get(0).([]*models.Product)
	return products, args.Error(1)
}
