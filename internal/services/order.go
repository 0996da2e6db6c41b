package service

import (
	"context"
	"errors"

	appErrors "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/repositories"
	"github.com/google/uuid"
)

type OrderService interface {
	ListPurchases(ctx context.Context, buyerID uuid.UUID) ([]*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewOrderService(orderRepo repository.OrderRepository, userRepo repository.UserRepository) OrderService {
	return &orderService{orderRepo: orderRepo, userRepo: userRepo}
}

// ListPurchases returns the buyer's orders newest first. An empty history is
// not an error.
func (s *orderService) ListPurchases(ctx context.Context, buyerID uuid.UUID) ([]*models.Order, error) {

	if _, err := s.userRepo.GetUserById(ctx, buyerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	orders, err := s.orderRepo.ListByBuyer(ctx, buyerID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to list purchases").WithError(err)
	}

	if orders == nil {
		orders = []*models.Order{}
	}

	return orders, nil
}
