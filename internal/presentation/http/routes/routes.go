package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/praveenm/billing-api/internal/config"
	"github.com/praveenm/billing-api/internal/presentation/http/handler"
	"github.com/praveenm/billing-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Product      *handler.ProductHandler
	Denomination *handler.DenominationHandler
	Bill         *handler.BillHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerProductRoutes(v1, h)
		registerDenominationRoutes(v1, h)
		registerBillRoutes(v1, h)
	}

	return router
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:code", h.Product.Get)
		products.PUT("/:code", h.Product.Update)
		products.DELETE("/:code", h.Product.Delete)
	}
}

func registerDenominationRoutes(v1 *gin.RouterGroup, h *Handlers) {
	denominations := v1.Group("/denominations")
	{
		denominations.GET("", h.Denomination.List)
		denominations.POST("", h.Denomination.Create)
		denominations.POST("/resolve", h.Denomination.ResolveChange)
		denominations.DELETE("/:id", h.Denomination.Delete)
	}
}

func registerBillRoutes(v1 *gin.RouterGroup, h *Handlers) {
	bills := v1.Group("/bills")
	{
		bills.GET("", h.Bill.List)
		bills.POST("", h.Bill.Create)
		bills.GET("/:id", h.Bill.Get)
	}

	v1.GET("/customers/:email/purchases", h.Bill.GetCustomerPurchases)
}
