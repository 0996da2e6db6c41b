package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appErrors "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validProductRequest() models.CreateProductRequest {
	return models.CreateProductRequest{
		Title:       "Oak desk",
		Description: "Solid oak, minor scratches",
		Category:    models.CategoryFurniture,
		Price:       decimal.RequireFromString("45.50"),
		Images:      []string{"https://img.example.com/desk.jpg"},
	}
}

func TestNewValidator_Decimal(t *testing.T) {
	validate := NewValidator()

	t.Run("positive price passes", func(t *testing.T) {
		req := validProductRequest()
		assert.NoError(t, validate.Struct(req))
	})

	t.Run("zero price fails", func(t *testing.T) {
		req := validProductRequest()
		req.Price = decimal.Zero

		err := validate.Struct(req)
		require.Error(t, err)

		var errs validator.ValidationErrors
		require.ErrorAs(t, err, &errs)
		assert.Equal(t, "price", errs[0].Field())
	})

	t.Run("negative price on update fails", func(t *testing.T) {
		negative := decimal.RequireFromString("-1")
		req := models.UpdateProductRequest{Price: &negative}

		assert.Error(t, validate.Struct(req))
	})
}

func TestValidationMessages(t *testing.T) {
	validate := NewValidator()

	req := models.CreateProductRequest{
		Category: "Toys",
		Images:   []string{"not a url"},
	}

	err := validate.Struct(req)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	msgs := ValidationMessages(errs)
	assert.Contains(t, msgs, "Field title is required")
	assert.Contains(t, msgs, "Field description is required")
	assert.Contains(t, msgs, "Field category must be one of: Electronics Furniture Clothing Books Other")
	assert.Contains(t, msgs, "Field price is required")
	assert.Contains(t, msgs, "Field images[0] must be a valid URL")
}

func TestValidationMessages_UsernameSpaces(t *testing.T) {
	validate := NewValidator()

	req := models.RegisterRequest{
		FullName: "Jane Doe",
		Username: "jane doe",
		Email:    "jane@example.com",
		Password: "secret1",
	}

	err := ValidateStruct(validate, req)
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"Field username must not contain spaces"}, ValidationMessages(errs))
}

func TestParseAndValidate(t *testing.T) {
	validate := NewValidator()

	testCases := []struct {
		name           string
		body           string
		expectedOK     bool
		expectedStatus int
		expectedCode   string
	}{
		{
			name:       "valid body",
			body:       `{"productId":"` + uuid.NewString() + `"}`,
			expectedOK: true,
		},
		{
			name:           "empty body",
			body:           "",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   appErrors.ErrCodeBadRequest,
		},
		{
			name:           "malformed json",
			body:           `{"productId":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   appErrors.ErrCodeBadRequest,
		},
		{
			name:           "missing product id",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   appErrors.ErrCodeValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/cart", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			var dest models.CartItemRequest
			ok := ParseAndValidate(req, rr, &dest, validate)

			assert.Equal(t, tc.expectedOK, ok)
			if tc.expectedOK {
				assert.NotEqual(t, uuid.Nil, dest.ProductID)
				return
			}

			assert.Equal(t, tc.expectedStatus, rr.Code)

			var resp response.APIResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.expectedCode, resp.Error.Code)
		})
	}
}

func TestParseID(t *testing.T) {
	id := uuid.New()

	t.Run("valid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+id.String(), nil)
		req.SetPathValue("id", id.String())

		got, err := ParseID(req, "id")
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("invalid", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil)
		req.SetPathValue("id", "abc")

		_, err := ParseID(req, "id")
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/products/", nil)

		_, err := ParseID(req, "id")
		assert.Error(t, err)
	})
}
