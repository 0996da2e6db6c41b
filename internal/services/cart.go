package service

import (
	"context"
	"errors"

	appErrors "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/repositories"
	"github.com/google/uuid"
)

type CartService interface {
	AddItem(ctx context.Context, userID, productID uuid.UUID) ([]uuid.UUID, error)
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) ([]uuid.UUID, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]*models.Product, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, userRepo repository.UserRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, userRepo: userRepo, productRepo: productRepo}
}

func (s *cartService) ensureUser(ctx context.Context, userID uuid.UUID) error {
	if _, err := s.userRepo.GetUserById(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("User not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to fetch user").WithError(err)
	}

	return nil
}

func (s *cartService) itemIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.cartRepo.ListItemIDs(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to read cart").WithError(err)
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// AddItem is idempotent: adding a product already in the cart leaves one entry.
func (s *cartService) AddItem(ctx context.Context, userID, productID uuid.UUID) ([]uuid.UUID, error) {

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.productRepo.GetProductByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.cartRepo.AddItem(ctx, userID, productID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("User not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to add item to cart").WithError(err)
	}

	return s.itemIDs(ctx, userID)
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) ([]uuid.UUID, error) {

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.cartRepo.RemoveItem(ctx, userID, productID); err != nil {
		return nil, appErrors.DatabaseError("Failed to remove item from cart").WithError(err)
	}

	return s.itemIDs(ctx, userID)
}

func (s *cartService) ListItems(ctx context.Context, userID uuid.UUID) ([]*models.Product, error) {

	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	products, err := s.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to read cart").WithError(err)
	}

	if products == nil {
		products = []*models.Product{}
	}

	return products, nil
}
