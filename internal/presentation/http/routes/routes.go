package routes

import (
	"time"

	"github.com/belcompta/belcompta-api/internal/config"
	"github.com/belcompta/belcompta-api/internal/presentation/http/handler"
	"github.com/belcompta/belcompta-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Account  *handler.AccountHandler
	Journal  *handler.JournalHandler
	Entry    *handler.EntryHandler
	Invoice  *handler.InvoiceHandler
	VAT      *handler.VATHandler
	Customer *handler.CustomerHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg    *config.Config
	Logger zerolog.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Per-IP rate limiter
	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
		BurstSize:         deps.Cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		registerAccountingRoutes(v1, h)
		registerInvoicingRoutes(v1, h)
		registerVATRoutes(v1, h)
		registerCustomerRoutes(v1, h)
	}

	return router
}

func registerAccountingRoutes(v1 *gin.RouterGroup, h *Handlers) {
	accounting := v1.Group("/accounting")
	{
		accounting.GET("/accounts", h.Account.List)
		accounting.POST("/accounts", h.Account.Create)
		accounting.GET("/accounts/:id", h.Account.Get)
		accounting.PUT("/accounts/:id", h.Account.Update)
		accounting.DELETE("/accounts/:id", h.Account.Deactivate)

		accounting.GET("/journals", h.Journal.List)
		accounting.POST("/journals", h.Journal.Create)
		accounting.GET("/journals/:id", h.Journal.Get)
		accounting.PUT("/journals/:id", h.Journal.Update)

		accounting.GET("/entries", h.Entry.List)
		accounting.POST("/entries", h.Entry.Create)
		accounting.GET("/entries/:id", h.Entry.Get)

		accounting.GET("/trial-balance", h.Entry.TrialBalance)
	}
}

func registerInvoicingRoutes(v1 *gin.RouterGroup, h *Handlers) {
	invoices := v1.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.GET("/overdue", h.Invoice.ListOverdue)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id/status", h.Invoice.UpdateStatus)
		invoices.POST("/:id/mark-paid", h.Invoice.MarkPaid)
		invoices.GET("/:id/balance-due", h.Invoice.BalanceDue)
		invoices.POST("/:id/post", h.Invoice.PostToLedger)
		invoices.GET("/:id/payments", h.Invoice.ListPayments)
		invoices.POST("/:id/payments", h.Invoice.RecordPayment)
	}
}

func registerVATRoutes(v1 *gin.RouterGroup, h *Handlers) {
	vat := v1.Group("/vat")
	{
		vat.GET("/declarations", h.VAT.List)
		vat.POST("/declarations/generate", h.VAT.Generate)
		vat.GET("/declarations/:id", h.VAT.Get)
		vat.POST("/declarations/:id/submit", h.VAT.Submit)
	}
}

func registerCustomerRoutes(v1 *gin.RouterGroup, h *Handlers) {
	customers := v1.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
	}
}
