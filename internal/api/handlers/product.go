package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/api/middleware"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/models"
	service "github.com/aaravmahajanofficial/ecofinds-marketplace/internal/services"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils"
	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/utils/response"
	"github.com/google/uuid"
)

// ProductHandler decodes bodies only. ProductService validates them.
type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := utils.DecodeJSONBody(r, dest); err != nil {
		response.Error(w, errors.BadRequestError("Invalid request body").WithDetail(err.Error()).WithError(err))
		return false
	}

	return true
}

// CreateProduct godoc
//
//	@Summary		List a product for sale
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		models.CreateProductRequest	true	"Product details"
//	@Success		201		{object}	models.Product				"Product created"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Security		BearerAuth
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized product creation attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		var req models.CreateProductRequest
		if !decodeBody(w, r, &req) {
			logger.Warn("Invalid create product body")
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), claims.UserID, &req)
		if err != nil {
			logger.Warn("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//
//	@Summary		Get a product by ID
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Product			"Product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Warn("Failed to get product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts godoc
//
//	@Summary		Browse products
//	@Description	Newest first. Filters combine.
//	@Tags			Products
//	@Produce		json
//	@Param			category	query		string												false	"Category"	Enums(Electronics, Furniture, Clothing, Books, Other)
//	@Param			seller		query		string												false	"Seller ID (UUID)"
//	@Param			q			query		string												false	"Full-text search over title and description"
//	@Param			page		query		int													false	"Page number (default: 1)"				minimum(1)
//	@Param			pageSize	query		int													false	"Items per page (default: 20, max: 100)"	minimum(1)	maximum(100)
//	@Success		200			{object}	models.PaginatedResponse{Data=[]models.Product}	"Page of products"
//	@Failure		400			{object}	response.ErrorResponse								"Invalid filter"
//	@Failure		500			{object}	response.ErrorResponse								"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		filter, err := parseProductFilter(r.URL.Query())
		if err != nil {
			logger.Warn("Invalid product filter", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		products, total, err := h.productService.ListProducts(r.Context(), filter)
		if err != nil {
			logger.Error("Failed to list products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		page, pageSize := models.NormalizePagination(filter.Page, filter.PageSize)

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     page,
			PageSize: pageSize,
		})
	}
}

func parseProductFilter(query url.Values) (models.ProductFilter, error) {

	filter := models.ProductFilter{
		Category: models.Category(query.Get("category")),
		Query:    query.Get("q"),
	}

	if raw := query.Get("seller"); raw != "" {
		sellerID, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.BadRequestError("Invalid seller format").WithError(err)
		}
		filter.SellerID = &sellerID
	}

	for name, dest := range map[string]*int{"page": &filter.Page, "pageSize": &filter.PageSize} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}

		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return filter, errors.ValidationError("Validation failed").WithDetail("Field " + name + " must be a positive integer")
		}
		*dest = n
	}

	return filter, nil
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Partial update. Only the seller may edit a listing.
//	@Tags			Products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Product ID (UUID)"	Format(uuid)
//	@Param			product	body		models.UpdateProductRequest	true	"Fields to change"
//	@Success		200		{object}	models.Product				"Updated product"
//	@Failure		400		{object}	response.ErrorResponse		"Validation error"
//	@Failure		401		{object}	response.ErrorResponse		"Authentication required"
//	@Failure		403		{object}	response.ErrorResponse		"Not the seller"
//	@Failure		404		{object}	response.ErrorResponse		"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id} [patch]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized product update attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		var req models.UpdateProductRequest
		if !decodeBody(w, r, &req) {
			logger.Warn("Invalid update product body")
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), claims.UserID, id, &req)
		if err != nil {
			logger.Warn("Failed to update product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully", slog.String("productId", id.String()))
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary		Delete a product
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	map[string]string		"Deleted"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Failure		403	{object}	response.ErrorResponse	"Not the seller"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Security		BearerAuth
//	@Router			/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized product delete attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), claims.UserID, id); err != nil {
			logger.Warn("Failed to delete product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted", slog.String("productId", id.String()))
		response.Success(w, http.StatusOK, map[string]string{"message": "Product deleted"})
	}
}

// MyListings godoc
//
//	@Summary		Products listed by the current user
//	@Tags			Users
//	@Produce		json
//	@Success		200	{array}		models.Product			"Listings, newest first"
//	@Failure		401	{object}	response.ErrorResponse	"Authentication required"
//	@Security		BearerAuth
//	@Router			/users/listings [get]
func (h *ProductHandler) MyListings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized listings access attempt")
			response.Error(w, errors.UnauthorizedError("Authentication required"))
			return
		}

		listings, err := h.productService.ListListings(r.Context(), claims.UserID)
		if err != nil {
			logger.Error("Failed to list listings", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, listings)
	}
}
