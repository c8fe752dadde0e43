package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "storefront/docs"
	"storefront/internal/service"
	"storefront/internal/validation"
)

type Handler struct {
	svc service.Storefront
	v   *validation.Validator
}

func NewHandler(s service.Storefront) *Handler {
	return &Handler{svc: s, v: validation.New(validation.Options{})}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	api := router.Group("/api")
	{
		orders := api.Group("/orders")
		{
			orders.POST("", h.CreateOrder)
			orders.GET("/:id", h.GetOrder)
			orders.GET("/customer/:customerId", h.ListCustomerOrders)
			orders.PATCH("/:id/status", h.UpdateOrderStatus)
			orders.POST("/:id/cancel", h.CancelOrder)
			orders.POST("/:id/payment", h.InitiatePayment)
			orders.POST("/:id/payment/verify", h.VerifyPayment)
		}

		products := api.Group("/products")
		{
			products.POST("", h.CreateProduct)
			products.GET("/:id", h.GetProduct)
			products.PATCH("/:id", h.UpdateProduct)
		}

		api.POST("/coupons/validate", h.ValidateCoupon)

		customers := api.Group("/customers/:customerId")
		{
			customers.GET("/addresses", h.ListSavedAddresses)
			customers.POST("/addresses", h.CreateSavedAddress)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		newErrorResponse(c, http.StatusNotFound, "not found")
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
