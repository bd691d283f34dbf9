package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/storefront/internal/config"
	"go.uber.org/zap"
)

const (
	serviceName    = "Backend Olavarría"
	serviceVersion = "1.0.0"
)

type AppHandler struct {
	cfg    config.Config
	logger *zap.Logger
}

func NewAppHandler(cfg config.Config, logger *zap.Logger) *AppHandler {
	return &AppHandler{
		cfg:    cfg,
		logger: logger.Named("app"),
	}
}

type StatusResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Message     string `json:"message"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
}

type InfoResponse struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Endpoints   []string `json:"endpoints"`
}

type echoRequest struct {
	Message string `json:"message" binding:"required,max=500"`
	Name    string `json:"name" binding:"max=100"`
}

type EchoResponse struct {
	Message    string      `json:"message"`
	Data       echoRequest `json:"data"`
	Timestamp  string      `json:"timestamp"`
	Validation string      `json:"validation"`
}

type UserResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	CreatedAt  string `json:"createdAt"`
	Validation string `json:"validation"`
}

// Hello handles GET /
func (h *AppHandler) Hello(c *gin.Context) {
	h.logger.Debug("serving greeting")

	c.String(http.StatusOK, "Hello from %s!", serviceName)
}

// Status handles GET /api/status
func (h *AppHandler) Status(c *gin.Context) {
	h.logger.Debug("serving status")

	c.JSON(http.StatusOK, StatusResponse{
		Status:      "OK",
		Timestamp:   timestamp(),
		Message:     "server is running",
		Port:        h.cfg.Port,
		Environment: h.cfg.Environment,
	})
}

// Info handles GET /api/info
func (h *AppHandler) Info(c *gin.Context) {
	h.logger.Debug("serving info")

	c.JSON(http.StatusOK, InfoResponse{
		Name:        serviceName,
		Version:     serviceVersion,
		Description: "REST API for the storefront catalog and orders",
		Features: []string{
			"Request validation",
			"Typed request and response models",
			"CORS enabled",
			"Environment configuration",
			"Structured logging",
			"Uniform error responses",
		},
		Endpoints: []string{
			"GET /api/status - server status",
			"GET /api/info - API information",
			"POST /api/echo - validated message echo",
			"GET /api/users/:id - user by ID",
			"GET /api/products - product catalog",
			"GET /api/orders - orders",
		},
	})
}

// Echo handles POST /api/echo
func (h *AppHandler) Echo(c *gin.Context) {
	var req echoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindingError(c, err)
		return
	}

	h.logger.Info("echo received", zap.String("message", req.Message), zap.String("user", req.Name))

	c.JSON(http.StatusCreated, EchoResponse{
		Message:    "echo received and validated",
		Data:       req,
		Timestamp:  timestamp(),
		Validation: "request body validated",
	})
}

// User handles GET /api/users/:id with a demo user for any positive id.
func (h *AppHandler) User(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if id <= 0 {
		abortWithError(c, http.StatusBadRequest, "id must be a positive number")
		return
	}

	h.logger.Info("getting user", zap.Int64("id", id))

	c.JSON(http.StatusOK, UserResponse{
		ID:         id,
		Name:       "Example User",
		Email:      "user@example.com",
		CreatedAt:  timestamp(),
		Validation: "id validated as an integer",
	})
}
