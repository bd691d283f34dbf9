package handler

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

func init() {
	// prices and totals go out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// timestampLayout renders times the way JavaScript's toISOString does.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	Method     string `json:"method"`
	Message    string `json:"message"`
}

type MessageResponse struct {
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	ImageURL    string          `json:"imageUrl"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type OrderItemResponse struct {
	ProductID   int64           `json:"productId"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	ProductName string          `json:"productName"`
}

type OrderResponse struct {
	ID              int64               `json:"id"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   string              `json:"customerPhone"`
	ShippingAddress string              `json:"shippingAddress"`
	Items           []OrderItemResponse `json:"items"`
	Total           decimal.Decimal     `json:"total"`
	Currency        string              `json:"currency"`
	Status          domain.OrderStatus  `json:"status"`
	Notes           string              `json:"notes"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func newListResponse[T any](data []T) ListResponse[T] {
	if data == nil {
		data = []T{}
	}

	return ListResponse[T]{
		Data:  data,
		Total: len(data),
		Page:  1,
		Limit: len(data),
	}
}

func mapDomainProductToResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Category:    p.Category,
		ImageURL:    p.ImageURL,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func mapDomainProductsToResponse(products []domain.Product) []ProductResponse {
	return lo.Map(products, func(p domain.Product, _ int) ProductResponse {
		return mapDomainProductToResponse(p)
	})
}

func mapDomainOrderToResponse(o domain.Order) OrderResponse {
	items := lo.Map(o.Items, func(item domain.OrderItem, _ int) OrderItemResponse {
		return OrderItemResponse{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Price:       item.Price.Amount,
			ProductName: item.ProductName,
		}
	})

	return OrderResponse{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		ShippingAddress: o.ShippingAddress,
		Items:           items,
		Total:           o.Total.Amount,
		Currency:        o.Total.Currency.String(),
		Status:          o.Status,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func mapDomainOrdersToResponse(orders []domain.Order) []OrderResponse {
	return lo.Map(orders, func(o domain.Order, _ int) OrderResponse {
		return mapDomainOrderToResponse(o)
	})
}

func timestamp() string {
	return time.Now().UTC().Format(timestampLayout)
}

func respondMessage(c *gin.Context, status int, message string, data any) {
	c.JSON(status, MessageResponse{
		Message:   message,
		Data:      data,
		Timestamp: timestamp(),
	})
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		StatusCode: status,
		Timestamp:  timestamp(),
		Path:       c.Request.URL.RequestURI(),
		Method:     c.Request.Method,
		Message:    message,
	})
}

// abortWithDomainError maps sentinel errors to status codes, anything else is a 500.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		abortWithError(c, http.StatusNotFound, "product not found")
	case errors.Is(err, domain.ErrOrderNotFound):
		abortWithError(c, http.StatusNotFound, "order not found")
	case errors.Is(err, domain.ErrInvalidOrderStatus), errors.Is(err, domain.ErrNoOrderItems):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		_ = c.Error(err)
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	}
}

func abortWithBindingError(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, bindingMessage(err))
}

func bindingMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	msgs := lo.Map(validationErrs, func(fe validator.FieldError, _ int) string {
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", fe.Field())
		case "min":
			if isNumberKind(fe.Kind()) {
				return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
			}
			return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		case "max":
			return fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		default:
			return fmt.Sprintf("%s must be a valid %s", fe.Field(), fe.Tag())
		}
	})

	return strings.Join(msgs, "; ")
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// paramID parses an integer path parameter, aborting with 400 when it is not one.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "validation failed (numeric string is expected)")
		return 0, false
	}

	return id, true
}
