package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	service "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/services"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils/response"
)

const (
	IdempotencyKeyHeader    = "Idempotency-Key"
	maxIdempotencyKeyLength = 255
)

type OrderHandler struct {
	checkoutService service.CheckoutService
	orderService    service.OrderService
}

func NewOrderHandler(checkoutService service.CheckoutService, orderService service.OrderService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService, orderService: orderService}
}

// Checkout godoc
//
//	@Summary		Check out the cart
//	@Description	Creates one order per cart item and empties the checked-out items in a single transaction.
//	@Description	An optional Idempotency-Key header makes client retries safe.
//	@Tags			Orders
//	@Produce		json
//	@Param			Idempotency-Key	header		string						false	"Client-chosen retry key"
//	@Success		200				{object}	models.CheckoutResponse		"Orders created"
//	@Failure		400				{object}	response.ErrorResponse		"Empty cart"
//	@Failure		401				{object}	response.ErrorResponse		"Authentication required"
//	@Failure		404				{object}	response.ErrorResponse		"User or a carted product not found"
//	@Failure		409				{object}	response.ErrorResponse		"Idempotency key already used"
//	@Failure		500				{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/checkout [post]
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized checkout attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
		if len(key) > maxIdempotencyKeyLength {
			response.Error(w, errors.BadRequestError("Idempotency-Key is too long"))
			return
		}

		resp, err := h.checkoutService.Checkout(r.Context(), claims.UserID, key)
		if err != nil {
			if appErr, ok := errors.IsAppError(err); ok && appErr.StatusCode < http.StatusInternalServerError {
				logger.Warn("Checkout rejected", slog.String("code", appErr.Code), slog.Any("error", err))
			} else {
				logger.Error("Checkout failed", slog.Any("error", err))
			}
			response.Error(w, err)
			return
		}

		logger.Info("Checkout completed", slog.Int("orders", len(resp.Orders)))
		response.Success(w, http.StatusOK, resp)
	}
}

// ListPurchases godoc
//
//	@Summary		Purchase history
//	@Description	Orders placed by the current user, newest first. Product is omitted when it has since been deleted.
//	@Tags			Orders
//	@Produce		json
//	@Success		200	{array}		models.Order			"Orders"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		404	{object}	response.ErrorResponse	"User not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Security		BearerAuth
//	@Router			/users/purchases [get]
//	@Router			/purchases [get]
func (h *OrderHandler) ListPurchases() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized purchases access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		orders, err := h.orderService.ListPurchases(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list purchases", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Purchases listed", slog.Int("count", len(orders)))
		response.Success(w, http.StatusOK, orders)
	}
}
