package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/cache"
	appErrors "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	repository "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/repositories"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/shopspring/decimal"
)

type ProductService interface {
	CreateProduct(ctx context.Context, sellerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error)
	UpdateProduct(ctx context.Context, callerID, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, callerID, id uuid.UUID) error
	ListListings(ctx context.Context, sellerID uuid.UUID) ([]*models.Product, error)
}

type productService struct {
	repo      repository.ProductRepository
	cache     cache.Cache
	cacheTTL  time.Duration
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
}

// NewProductService wires the catalog. A nil cache disables read-through caching.
func NewProductService(repo repository.ProductRepository, c cache.Cache, cacheTTL time.Duration) ProductService {
	return &productService{
		repo:      repo,
		cache:     c,
		cacheTTL:  cacheTTL,
		validate:  utils.NewValidator(),
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// checkInput reports every violated rule in one ValidationError.
func (s *productService) checkInput(req any) error {
	if err := s.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return appErrors.ValidationError("Validation failed").WithDetails(utils.ValidationMessages(validationErrs))
		}

		return appErrors.BadRequestError("Invalid input data").WithError(err)
	}

	return nil
}

func (s *productService) sanitize(field, value string, details *[]string) string {
	clean := strings.TrimSpace(s.sanitizer.Sanitize(value))
	if clean == "" {
		*details = append(*details, "Field "+field+" must contain text")
	}

	return clean
}

// maxPrice is the first value products.price NUMERIC(12,2) cannot hold.
var maxPrice = decimal.New(1, 10)

// roundPrice rounds to cents and reports a price the column would reject.
func roundPrice(price decimal.Decimal, details *[]string) decimal.Decimal {
	rounded := price.Round(2)

	switch {
	case !rounded.GreaterThan(decimal.Zero):
		*details = append(*details, "Field price must be at least 0.01")
	case !rounded.LessThan(maxPrice):
		*details = append(*details, "Field price must be less than "+maxPrice.String())
	}

	return rounded
}

func (s *productService) CreateProduct(ctx context.Context, sellerID uuid.UUID, req *models.CreateProductRequest) (*models.Product, error) {

	if err := s.checkInput(req); err != nil {
		return nil, err
	}

	var details []string
	product := &models.Product{
		Title:       s.sanitize("title", req.Title, &details),
		Description: s.sanitize("description", req.Description, &details),
		Category:    req.Category,
		Price:       roundPrice(req.Price, &details),
		Images:      req.Images,
		SellerID:    sellerID,
	}
	if len(details) > 0 {
		return nil, appErrors.ValidationError("Validation failed").WithDetails(details)
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Seller not found").WithError(err)
		}

		if errors.Is(err, repository.ErrInvalidValue) {
			return nil, appErrors.ValidationError("Validation failed").WithDetail("Product values were rejected by the store").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	key := cache.ProductKey(id)

	if s.cache != nil {
		var cached models.Product
		found, err := s.cache.Get(ctx, key, &cached)
		if err != nil {
			slog.WarnContext(ctx, "Product cache read failed", slog.String("key", key), slog.Any("error", err))
		} else if found {
			return &cached, nil
		}
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, product, s.cacheTTL); err != nil {
			slog.WarnContext(ctx, "Product cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return product, nil
}

func (s *productService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]*models.Product, int, error) {

	if filter.Category != "" && !filter.Category.Valid() {
		return nil, 0, appErrors.ValidationError("Validation failed").
			WithDetail("Field category must be one of: Electronics Furniture Clothing Books Other")
	}

	filter.Page, filter.PageSize = models.NormalizePagination(filter.Page, filter.PageSize)
	filter.Query = strings.TrimSpace(filter.Query)

	products, total, err := s.repo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, appErrors.DatabaseError("Failed to list products").WithError(err)
	}

	return products, total, nil
}

// loadOwned fetches a product from the store and checks that callerID sold it.
func (s *productService) loadOwned(ctx context.Context, callerID, id uuid.UUID) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product.SellerID != callerID {
		return nil, appErrors.ForbiddenError("Only the seller can modify this product")
	}

	return product, nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}

	if err := s.cache.Delete(ctx, cache.ProductKey(id)); err != nil {
		slog.WarnContext(ctx, "Product cache invalidation failed", slog.String("productId", id.String()), slog.Any("error", err))
	}
}

func (s *productService) UpdateProduct(ctx context.Context, callerID, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	if err := s.checkInput(req); err != nil {
		return nil, err
	}

	product, err := s.loadOwned(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	var details []string
	if req.Title != nil {
		product.Title = s.sanitize("title", *req.Title, &details)
	}
	if req.Description != nil {
		product.Description = s.sanitize("description", *req.Description, &details)
	}
	if req.Price != nil {
		product.Price = roundPrice(*req.Price, &details)
	}
	if len(details) > 0 {
		return nil, appErrors.ValidationError("Validation failed").WithDetails(details)
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Images != nil {
		product.Images = req.Images
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		if errors.Is(err, repository.ErrInvalidValue) {
			return nil, appErrors.ValidationError("Validation failed").WithDetail("Product values were rejected by the store").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, callerID, id uuid.UUID) error {

	if _, err := s.loadOwned(ctx, callerID, id); err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Product not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) ListListings(ctx context.Context, sellerID uuid.UUID) ([]*models.Product, error) {

	filter := models.ProductFilter{
		SellerID: &sellerID,
		Page:     models.DefaultPage,
		PageSize: models.MaxPageSize,
	}

	listings := []*models.Product{}
	for {
		page, total, err := s.repo.ListProducts(ctx, filter)
		if err != nil {
			return nil, appErrors.DatabaseError("Failed to list listings").WithError(err)
		}

		listings = append(listings, page...)
		if len(page) == 0 || len(listings) >= total {
			break
		}
		filter.Page++
	}

	return listings, nil
}
