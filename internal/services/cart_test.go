package service_test

import (
	"context"
	"errors"
	"testing"

	appErrors "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/repositories/mocks"
	service "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartFixture struct {
	cartRepo    *mocks.CartRepository
	userRepo    *mocks.UserRepository
	productRepo *mocks.ProductRepository
	service     service.CartService
}

func newCartFixture(t *testing.T) *cartFixture {
	f := &cartFixture{
		cartRepo:    mocks.NewCartRepository(t),
		userRepo:    mocks.NewUserRepository(t),
		productRepo: mocks.NewProductRepository(t),
	}
	f.service = service.NewCartService(f.cartRepo, f.userRepo, f.productRepo)

	return f
}

func TestCartService_AddItem(t *testing.T) {

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("Success - Adding twice keeps one entry", func(t *testing.T) {
		f := newCartFixture(t)

		f.userRepo.On("GetUserById", ctx, userID).Return(&models.User{ID: userID}, nil).Twice()
		f.productRepo.On("GetProductByID", ctx, productID).Return(&models.Product{ID: productID}, nil).Twice()
		f.cartRepo.On("AddItem", ctx, userID, productID).Return(nil).Twice()
		f.cartRepo.On("ListItemIDs", ctx, userID).Return([]uuid.UUID{productID}, nil).Twice()

		first, err := f.service.AddItem(ctx, userID, productID)
		require.NoError(t, err)

		second, err := f.service.AddItem(ctx, userID, productID)
		require.NoError(t, err)

		assert.Equal(t, []uuid.UUID{productID}, first)
		assert.Equal(t, first, second)
	})

	t.Run("Failure - Unknown user", func(t *testing.T) {
		f := newCartFixture(t)

		f.userRepo.On("GetUserById", ctx, userID).Return(nil, repository.ErrNotFound).Once()

		_, err := f.service.AddItem(ctx, userID, productID)

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})

	t.Run("Failure - Unknown product", func(t *testing.T) {
		f := newCartFixture(t)

		f.userRepo.On("GetUserById", ctx, userID).Return(&models.User{ID: userID}, nil).Once()
		f.productRepo.On("GetProductByID", ctx, productID).Return(nil, repository.ErrNotFound).Once()

		_, err := f.service.AddItem(ctx, userID, productID)

		appErr := assertAppError(t, err, appErrors.ErrCodeNotFound)
		assert.Equal(t, "Product not found", appErr.Message)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		f := newCartFixture(t)

		f.userRepo.On("GetUserById", ctx, userID).Return(&models.User{ID: userID}, nil).Once()
		f.productRepo.On("GetProductByID", ctx, productID).Return(&models.Product{ID: productID}, nil).Once()
		f.cartRepo.On("AddItem", ctx, userID, productID).Return(errors.New("db down")).Once()

		_, err := f.service.AddItem(ctx, userID, productID)

		assertAppError(t, err, appErrors.ErrCodeDatabaseError)
	})
}

func TestCartService_RemoveItem(t *testing.T) {

	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	t.Run("Success - Absent item is a no-op", func(t *testing.T) {
		f := newCartFixture(t)
		remaining := []uuid.UUID{uuid.New()}

		f.userRepo.On("GetUserById", ctx, userID).Return(&models.User{ID: userID}, nil).Once()
		f.cartRepo.On("RemoveItem", ctx, userID, productID).Return(nil).Once()
		f.cartRepo.On("ListItemIDs", ctx, userID).Return(remaining, nil).Once()

		ids, err := f.service.RemoveItem(ctx, userID, productID)

		require.NoError(t, err)
		assert.Equal(t, remaining, ids)
	})

	t.Run("Success - Empty cart returns empty list", func(t *testing.T) {
		f := newCartFixture(t)

		f.userRepo.On("GetUserById", ctx, userID).Return(&models.User{ID: userID}, nil).Once()
		f.cartRepo.On("RemoveItem", ctx, userID, productID).Return(nil).Once()
		f.cartRepo.On("ListItemIDs", ctx, userID).Return(nil, nil).Once()

		ids, err := f.service.RemoveItem(ctx, userID, productID)

		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})

	t.Run("Failure - Unknown user", func(t *testing.T) {
		f := newCartFixture(t)

		f.userRepo.On("GetUserById", ctx, userID).Return(nil, repository.ErrNotFound).Once()

		_, err := f.service.RemoveItem(ctx, userID, productID)

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}

func TestCartService_ListItems(t *testing.T) {

	ctx := context.Background()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		f := newCartFixture(t)
		products := []*models.Product{{ID: uuid.New()}, {ID: uuid.New()}}

		f.userRepo.On("GetUserById", ctx, userID).Return(&models.User{ID: userID}, nil).Once()
		f.cartRepo.On("ListItems", ctx, userID).Return(products, nil).Once()

		got, err := f.service.ListItems(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, products, got)
	})

	t.Run("Failure - Unknown user", func(t *testing.T) {
		f := newCartFixture(t)

		f.userRepo.On("GetUserById", ctx, userID).Return(nil, repository.ErrNotFound).Once()

		_, err := f.service.ListItems(ctx, userID)

		assertAppError(t, err, appErrors.ErrCodeNotFound)
	})
}
