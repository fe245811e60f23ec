package main

import (
	"os"

	"github.com/belcompta/belcompta-api/internal/application/service"
	"github.com/belcompta/belcompta-api/internal/config"
	"github.com/belcompta/belcompta-api/internal/infrastructure/database"
	"github.com/belcompta/belcompta-api/internal/infrastructure/repository"
	"github.com/belcompta/belcompta-api/internal/presentation/http/handler"
	"github.com/belcompta/belcompta-api/internal/presentation/http/routes"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set up logging
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Log.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed the Belgian chart of accounts and default journals
	if err := database.SeedDefaultData(db); err != nil {
		log.Warn().Err(err).Msg("failed to seed default data")
	}

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(db)
	journalRepo := repository.NewJournalRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	declarationRepo := repository.NewVATDeclarationRepository(db)

	// Initialize services
	accountService := service.NewAccountService(accountRepo)
	journalService := service.NewJournalService(journalRepo)
	entryService := service.NewEntryService(entryRepo, journalRepo, accountRepo)
	customerService := service.NewCustomerService(customerRepo)
	invoiceService := service.NewInvoiceService(invoiceRepo, paymentRepo, customerRepo, entryService, accountRepo, journalRepo)
	paymentService := service.NewPaymentService(paymentRepo, invoiceRepo)
	vatService := service.NewVATService(declarationRepo, invoiceRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Account:  handler.NewAccountHandler(accountService),
		Journal:  handler.NewJournalHandler(journalService),
		Entry:    handler.NewEntryHandler(entryService),
		Invoice:  handler.NewInvoiceHandler(invoiceService, paymentService),
		VAT:      handler.NewVATHandler(vatService),
		Customer: handler.NewCustomerHandler(customerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:    cfg,
		Logger: log.Logger,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().Str("service", cfg.App.Name).Str("port", port).Str("env", cfg.App.Env).Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
