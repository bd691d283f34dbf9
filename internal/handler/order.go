package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type OrderHandler struct {
	repo   port.OrderRepository
	logger *zap.Logger
}

func NewOrderHandler(repo port.OrderRepository, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		repo:   repo,
		logger: logger.Named("orders"),
	}
}

type orderItemRequest struct {
	ProductID int64 `json:"productId" binding:"required,min=1"`
	Quantity  int   `json:"quantity" binding:"min=1"`
}

// createOrderRequest has no price, total or status fields, clients cannot set them.
type createOrderRequest struct {
	CustomerName    string             `json:"customerName" binding:"required"`
	CustomerEmail   string             `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string             `json:"customerPhone"`
	ShippingAddress string             `json:"shippingAddress" binding:"required"`
	Items           []orderItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes           string             `json:"notes"`
}

func (r createOrderRequest) toInput() domain.CreateOrderInput {
	return domain.CreateOrderInput{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ShippingAddress: r.ShippingAddress,
		Items: lo.Map(r.Items, func(item orderItemRequest, _ int) domain.OrderItemInput {
			return domain.OrderItemInput{ProductID: item.ProductID, Quantity: item.Quantity}
		}),
		Notes: r.Notes,
	}
}

type updateOrderStatusRequest struct {
	Status   string `json:"status" binding:"required"`
	Comments string `json:"comments"`
}

type customerOrdersResponse struct {
	Data          []OrderResponse `json:"data"`
	Total         int             `json:"total"`
	CustomerEmail string          `json:"customerEmail"`
}

// List handles GET /api/orders?status=&customerEmail=
func (h *OrderHandler) List(c *gin.Context) {
	h.logger.Info("listing orders")

	filter := domain.OrderFilter{
		CustomerEmail: c.Query("customerEmail"),
	}

	if raw := c.Query("status"); raw != "" {
		status, err := domain.ToOrderStatus(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		filter.Status = &status
	}

	orders, err := h.repo.SearchOrders(c.Request.Context(), filter)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newListResponse(mapDomainOrdersToResponse(orders)))
}

// Get handles GET /api/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	h.logger.Info("getting order", zap.Int64("id", id))

	order, err := h.repo.GetOrder(c.Request.Context(), id)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, mapDomainOrderToResponse(order))
}

// ListByCustomer handles GET /api/orders/customer/:email
func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	email := c.Param("email")

	h.logger.Info("listing orders by customer", zap.String("email", email))

	orders, err := h.repo.GetOrdersByCustomerEmail(c.Request.Context(), email)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	data := mapDomainOrdersToResponse(orders)

	c.JSON(http.StatusOK, customerOrdersResponse{
		Data:          data,
		Total:         len(data),
		CustomerEmail: email,
	})
}

// Create handles POST /api/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	input := req.toInput()
	if err := input.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("creating order", zap.String("customer", input.CustomerName), zap.Int("items", len(input.Items)))

	order, err := h.repo.CreateOrder(c.Request.Context(), input)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "order created", mapDomainOrderToResponse(order))
}

// UpdateStatus handles PUT /api/orders/:id/status. Any status may follow any other.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	input := domain.UpdateOrderStatusInput{
		Status:   domain.OrderStatus(req.Status),
		Comments: req.Comments,
	}
	if err := input.Validate(); err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Info("updating order status",
		zap.Int64("id", id),
		zap.String("status", string(input.Status)),
		zap.String("comments", input.Comments))

	order, err := h.repo.UpdateOrderStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "order status updated", mapDomainOrderToResponse(order))
}
