package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "dora-eats/docs"
	"dora-eats/internal/metrics"
	"dora-eats/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handler struct {
	svc     service.Storefront
	metrics *metrics.Registry
}

// NewHandler serves m on /metrics, or the default prometheus registry when m is nil.
func NewHandler(s service.Storefront, m *metrics.Registry) *Handler {
	return &Handler{svc: s, metrics: m}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	api := router.Group("/api")
	{
		menu := api.Group("/menu")
		{
			menu.GET("", h.GetMenu)
			menu.GET("/categories", h.GetCategories)
			menu.GET("/bestsellers", h.GetBestsellers)
			menu.GET("/:id", h.GetMenuItem)
		}

		cart := api.Group("/cart", requireSession)
		{
			cart.GET("", h.GetCart)
			cart.POST("/items", h.AddCartItem)
			cart.PATCH("/items/:id", h.ChangeCartItem)
			cart.DELETE("/items/:id", h.RemoveCartItem)
		}

		api.GET("/checkout/options", h.GetCheckoutOptions)
		api.POST("/checkout/validate", h.ValidateCheckout)
		api.POST("/checkout", requireSession, h.PlaceOrder)

		api.GET("/orders/:number", h.GetOrder)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Message: "not found"})
	})

	if h.metrics != nil {
		router.GET("/metrics", gin.WrapH(h.metrics.Handler()))
	} else {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
