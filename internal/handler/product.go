package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	repo   port.ProductRepository
	logger *zap.Logger
}

func NewProductHandler(repo port.ProductRepository, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		repo:   repo,
		logger: logger.Named("products"),
	}
}

type createProductRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	Description string           `json:"description" binding:"required,max=500"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Stock       *int             `json:"stock" binding:"required,min=0"`
	Category    string           `json:"category"`
	ImageURL    string           `json:"imageUrl" binding:"omitempty,url"`
	IsActive    *bool            `json:"isActive"`
}

func (r createProductRequest) toInput() domain.CreateProductInput {
	return domain.CreateProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       *r.Price,
		Stock:       *r.Stock,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
	}
}

type updateProductRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" binding:"omitempty,min=0"`
	Category    *string          `json:"category"`
	ImageURL    *string          `json:"imageUrl" binding:"omitempty,url"`
	IsActive    *bool            `json:"isActive"`
}

func (r updateProductRequest) toInput() domain.UpdateProductInput {
	return domain.UpdateProductInput(r)
}

// List handles GET /api/products?category=&minPrice=&maxPrice=
func (h *ProductHandler) List(c *gin.Context) {
	h.logger.Info("listing products")

	filter := domain.ProductFilter{
		Category: c.Query("category"),
	}

	var ok bool
	if filter.MinPrice, ok = queryDecimal(c, "minPrice"); !ok {
		return
	}
	if filter.MaxPrice, ok = queryDecimal(c, "maxPrice"); !ok {
		return
	}

	products, err := h.repo.ListActive(c.Request.Context(), filter)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(mapDomainProductsToResponse(products)))
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	h.logger.Info("getting product", zap.Int64("id", id))

	product, err := h.repo.GetProduct(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapDomainProductToResponse(product))
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	input := req.toInput()
	if err := input.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("creating product", zap.String("name", input.Name))

	product, err := h.repo.CreateProduct(c.Request.Context(), input)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "product created", mapDomainProductToResponse(product))
}

// Update handles PUT /api/products/:id, only fields present in the body are changed.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	input := req.toInput()
	if err := input.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("updating product", zap.Int64("id", id))

	product, err := h.repo.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "product updated", mapDomainProductToResponse(product))
}

// Delete handles DELETE /api/products/:id as a soft delete.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	h.logger.Info("deleting product", zap.Int64("id", id))

	if err := h.repo.SoftDeleteProduct(c.Request.Context(), id); err != nil {
		abortWithDomainError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "product deleted", nil)
}

func queryDecimal(c *gin.Context, name string) (*decimal.Decimal, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, name+" must be a number")
		return nil, false
	}

	return &d, true
}
