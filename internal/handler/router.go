package handler

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

func NewRouter(cfg config.Config, logger *zap.Logger, products port.ProductRepository, orders port.OrderRepository) *gin.Engine {
	useJSONFieldNames()

	r := gin.New()
	r.HandleMethodNotAllowed = false
	r.Use(RequestID(), RequestLogger(logger), Recovery(logger), CORS())
	r.NoRoute(notFound)

	appHandler := NewAppHandler(cfg, logger)
	productHandler := NewProductHandler(products, logger)
	orderHandler := NewOrderHandler(orders, logger)

	r.GET("/", appHandler.Hello)

	api := r.Group("/api")
	api.GET("/status", appHandler.Status)
	api.GET("/info", appHandler.Info)
	api.POST("/echo", appHandler.Echo)
	api.GET("/users/:id", appHandler.User)

	productAPI := api.Group("/products")
	productAPI.GET("", productHandler.List)
	productAPI.GET("/:id", productHandler.Get)
	productAPI.POST("", productHandler.Create)
	productAPI.PUT("/:id", productHandler.Update)
	productAPI.DELETE("/:id", productHandler.Delete)

	orderAPI := api.Group("/orders")
	orderAPI.GET("", orderHandler.List)
	orderAPI.GET("/customer/:email", orderHandler.ListByCustomer)
	orderAPI.GET("/:id", orderHandler.Get)
	orderAPI.POST("", orderHandler.Create)
	orderAPI.PUT("/:id/status", orderHandler.UpdateStatus)

	return r
}

var jsonFieldNamesOnce sync.Once

// useJSONFieldNames makes validation errors name fields as clients send them.
// gin's validator is process-wide, so the tag name func is registered once.
func useJSONFieldNames() {
	jsonFieldNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
}
