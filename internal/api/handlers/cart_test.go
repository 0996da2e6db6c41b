package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/api/handlers"
	appErrors "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/services/mocks"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetCart(t *testing.T) {

	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		first, second := newProduct(uuid.New()), newProduct(uuid.New())
		cartService.On("ListItems", mock.Anything, userID).Return([]*models.Product{first, second}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, userID, nil)
		rr := httptest.NewRecorder()
		handler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var products []models.Product
		testutils.DecodeEnvelope(t, rr, &products)
		require.Len(t, products, 2)
		assert.Equal(t, first.ID, products[0].ID)
		assert.Equal(t, second.ID, products[1].ID)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		handler := handlers.NewCartHandler(mocks.NewCartService(t))

		req := testutils.CreateTestRequestWithoutContext(http.MethodGet, "/api/v1/cart", nil, nil)
		rr := httptest.NewRecorder()
		handler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Failure - User Not Found", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		cartService.On("ListItems", mock.Anything, userID).Return(nil, appErrors.NotFoundError("User not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodGet, "/api/v1/cart", nil, userID, nil)
		rr := httptest.NewRecorder()
		handler.GetCart().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestAddItem(t *testing.T) {

	userID := uuid.New()
	productID := uuid.New()
	body := `{"productId":"` + productID.String() + `"}`

	t.Run("Success", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		existing := uuid.New()
		cartService.On("AddItem", mock.Anything, userID, productID).Return([]uuid.UUID{existing, productID}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart", strings.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()
		handler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var cart models.CartResponse
		testutils.DecodeEnvelope(t, rr, &cart)
		assert.Equal(t, []uuid.UUID{existing, productID}, cart.Items)
	})

	t.Run("Failure - Missing productId", func(t *testing.T) {
		handler := handlers.NewCartHandler(mocks.NewCartService(t))

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart", strings.NewReader(`{}`), userID, nil)
		rr := httptest.NewRecorder()
		handler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, appErrors.ErrCodeValidation, testutils.DecodeEnvelope(t, rr, nil).Error.Code)
	})

	t.Run("Failure - Malformed productId", func(t *testing.T) {
		handler := handlers.NewCartHandler(mocks.NewCartService(t))

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart", strings.NewReader(`{"productId":"nope"}`), userID, nil)
		rr := httptest.NewRecorder()
		handler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Product Not Found", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		cartService.On("AddItem", mock.Anything, userID, productID).Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodPost, "/api/v1/cart", strings.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()
		handler.AddItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRemoveItem(t *testing.T) {

	userID := uuid.New()
	productID := uuid.New()
	body := `{"productId":"` + productID.String() + `"}`

	t.Run("Success - Empty cart is an array", func(t *testing.T) {
		cartService := mocks.NewCartService(t)
		handler := handlers.NewCartHandler(cartService)

		cartService.On("RemoveItem", mock.Anything, userID, productID).Return([]uuid.UUID{}, nil).Once()

		req := testutils.CreateTestRequestWithContext(http.MethodDelete, "/api/v1/cart", strings.NewReader(body), userID, nil)
		rr := httptest.NewRecorder()
		handler.RemoveItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"items":[]`)
	})

	t.Run("Failure - Unauthorized", func(t *testing.T) {
		handler := handlers.NewCartHandler(mocks.NewCartService(t))

		req := testutils.CreateTestRequestWithoutContext(http.MethodDelete, "/api/v1/cart", strings.NewReader(body), nil)
		rr := httptest.NewRecorder()
		handler.RemoveItem().ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
