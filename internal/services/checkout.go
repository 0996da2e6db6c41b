package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	appErrors "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/metrics"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/repositories"
	"github.com/google/uuid"
)

const checkoutSuccessMessage = "Checkout successful"

type CheckoutService interface {
	// Checkout turns the user's cart into orders. idempotencyKey may be empty.
	Checkout(ctx context.Context, userID uuid.UUID, idempotencyKey string) (*models.CheckoutResponse, error)
}

type checkoutService struct {
	orderRepo       repository.OrderRepository
	idempotencyRepo repository.IdempotencyRepository
	notifier        CheckoutNotifier
	idempotencyTTL  time.Duration
}

// NewCheckoutService builds the orchestrator. idempotencyRepo and notifier
// are optional.
func NewCheckoutService(orderRepo repository.OrderRepository, idempotencyRepo repository.IdempotencyRepository, notifier CheckoutNotifier, idempotencyTTL time.Duration) CheckoutService {
	if idempotencyTTL <= 0 {
		idempotencyTTL = 24 * time.Hour
	}

	return &checkoutService{
		orderRepo:       orderRepo,
		idempotencyRepo: idempotencyRepo,
		notifier:        notifier,
		idempotencyTTL:  idempotencyTTL,
	}
}

func IdempotencyKey(userID uuid.UUID, key string) string {
	return "checkout:idempotency:" + userID.String() + ":" + key
}

func (s *checkoutService) Checkout(ctx context.Context, userID uuid.UUID, idempotencyKey string) (*models.CheckoutResponse, error) {

	var claimKey, claimToken string

	if idempotencyKey != "" && s.idempotencyRepo != nil {
		claimKey = IdempotencyKey(userID, idempotencyKey)
		claimToken = uuid.NewString()

		claimed, err := s.idempotencyRepo.Claim(ctx, claimKey, claimToken, s.idempotencyTTL)
		if err != nil {
			metrics.RecordCheckout(metrics.CheckoutFailed, 0)
			return nil, appErrors.ThirdPartyError("Failed to register idempotency key").WithError(err)
		}

		if !claimed {
			metrics.RecordCheckout(metrics.CheckoutReplayed, 0)
			return nil, appErrors.DuplicateEntryError("Checkout with this idempotency key was already submitted")
		}
	}

	orders, err := s.orderRepo.Checkout(ctx, userID)
	if err != nil {
		if claimKey != "" {
			if releaseErr := s.idempotencyRepo.Release(ctx, claimKey, claimToken); releaseErr != nil {
				slog.WarnContext(ctx, "Failed to release idempotency key", slog.String("key", claimKey), slog.Any("error", releaseErr))
			}
		}

		return nil, s.translate(err)
	}

	metrics.RecordCheckout(metrics.CheckoutSucceeded, len(orders))

	ids := make([]uuid.UUID, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ID)
	}

	if s.notifier != nil {
		if err := s.notifier.OrdersPlaced(ctx, orders); err != nil {
			slog.WarnContext(ctx, "Checkout notifications incomplete",
				slog.String("buyerId", userID.String()),
				slog.Any("error", err))
		}
	}

	return &models.CheckoutResponse{
		Message: checkoutSuccessMessage,
		Orders:  ids,
	}, nil
}

func (s *checkoutService) translate(err error) error {

	var missing *repository.MissingProductError

	switch {
	case errors.Is(err, repository.ErrEmptyCart):
		metrics.RecordCheckout(metrics.CheckoutEmptyCart, 0)
		return appErrors.EmptyCartError("Cannot checkout with an empty cart").WithError(err)

	case errors.As(err, &missing):
		metrics.RecordCheckout(metrics.CheckoutNotFound, 0)
		return appErrors.NotFoundError("Product in cart no longer exists").
			WithDetail("Product " + missing.ProductID.String() + " not found").
			WithError(err)

	case errors.Is(err, repository.ErrNotFound):
		metrics.RecordCheckout(metrics.CheckoutNotFound, 0)
		return appErrors.NotFoundError("User not found").WithError(err)
	}

	metrics.RecordCheckout(metrics.CheckoutFailed, 0)

	return appErrors.DatabaseError("Checkout failed").WithError(err)
}
