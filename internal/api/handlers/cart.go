package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	service "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/services"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils/response"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: utils.NewValidator()}
}

// GetCart godoc
//
//	@Summary		List cart contents
//	@Description	Products in the cart in the order they were added. Products deleted since are omitted.
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{array}		models.Product			"Cart products"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/cart [get]
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		products, err := h.cartService.ListItems(r.Context(), claims.UserID)
		if err != nil {
			logger.Warn("Failed to read cart", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)
	}
}

// AddItem godoc
//
//	@Summary		Add a product to the cart
//	@Description	Idempotent: a product is held at most once.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CartItemRequest	true	"Product to add"
//	@Success		200		{object}	models.CartResponse		"Cart product ids"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"User or product not found"
//	@Security		BearerAuth
//	@Router			/cart [post]
func (h *CartHandler) AddItem() http.HandlerFunc {
	return h.mutate("add", h.cartService.AddItem)
}

// RemoveItem godoc
//
//	@Summary		Remove a product from the cart
//	@Description	Removing a product that is not in the cart is a no-op.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		models.CartItemRequest	true	"Product to remove"
//	@Success		200		{object}	models.CartResponse		"Remaining cart product ids"
//	@Failure		400		{object}	response.ErrorResponse	"Validation error"
//	@Failure		401		{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404		{object}	response.ErrorResponse	"User not found"
//	@Security		BearerAuth
//	@Router			/cart [delete]
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return h.mutate("remove", h.cartService.RemoveItem)
}

type cartMutation func(ctx context.Context, userID, productID uuid.UUID) ([]uuid.UUID, error)

func (h *CartHandler) mutate(action string, apply cartMutation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized cart update attempt", slog.String("action", action))
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CartItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			logger.Warn("Invalid cart item input", slog.String("action", action))
			return
		}

		ids, err := apply(r.Context(), claims.UserID, req.ProductID)
		if err != nil {
			logger.Warn("Cart update failed",
				slog.String("action", action),
				slog.String("productId", req.ProductID.String()),
				slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Cart updated",
			slog.String("action", action),
			slog.String("productId", req.ProductID.String()),
			slog.Int("items", len(ids)))
		response.Success(w, http.StatusOK, models.CartResponse{Items: ids})
	}
}
