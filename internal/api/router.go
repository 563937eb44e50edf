package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/freedomradio/ecirs/docs"
	"github.com/freedomradio/ecirs/internal/api/handler"
	"github.com/freedomradio/ecirs/internal/api/middleware"
	"github.com/freedomradio/ecirs/internal/core/domain"
	"github.com/freedomradio/ecirs/internal/core/service"
	"github.com/freedomradio/ecirs/internal/infrastructure/config"
	mongodb "github.com/freedomradio/ecirs/internal/infrastructure/db/mongo"
	redisdb "github.com/freedomradio/ecirs/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// ledgerQueue is the already-started dispatcher that applies balance postings.
func NewRouter(db *mongo.Database, rdb *goredis.Client, cfg *config.Config, ledgerQueue service.LedgerQueue, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("ecirs"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	contractRepo := mongodb.NewContractRepository(db)
	invoiceRepo := mongodb.NewInvoiceRepository(db)
	receiptRepo := mongodb.NewReceiptRepository(db)
	ledgerRepo := mongodb.NewLedgerRepository(db)

	tokenTTL := time.Duration(cfg.TokenTTLHrs) * time.Hour
	numbers := redisdb.NewNumberSource(rdb)
	denylist := redisdb.NewDenylist(rdb, tokenTTL)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, tokenTTL)
	userService := service.NewUserService(userRepo, denylist, log)
	clientService := service.NewClientService(clientRepo, log)
	contractService := service.NewContractService(contractRepo, clientRepo, numbers, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, contractRepo, numbers, ledgerQueue, log)
	receiptService := service.NewReceiptService(receiptRepo, invoiceRepo, numbers, ledgerQueue, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService, ledgerRepo)
	contractHandler := handler.NewContractHandler(contractService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	receiptHandler := handler.NewReceiptHandler(receiptService)

	authMW := middleware.Auth(cfg.JWTSecret, denylist)
	adminOnly := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleStationManager)
	salesRoles := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleStationManager, domain.RoleSalesExecutive)
	billingRoles := middleware.RBAC(domain.RoleSuperAdmin, domain.RoleStationManager, domain.RoleAccountant)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register, authMW, adminOnly)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMW)

	// --- Authenticated API ---
	v1 := e.Group("/v1", authMW)

	v1.GET("/users", userHandler.List, adminOnly)
	v1.PATCH("/users/:username/status", userHandler.SetStatus, adminOnly)

	v1.POST("/clients", clientHandler.Create, salesRoles)
	v1.GET("/clients", clientHandler.List)
	v1.GET("/clients/:id", clientHandler.Get)
	v1.GET("/clients/:id/ledger", clientHandler.Ledger)

	v1.POST("/contracts", contractHandler.Create, salesRoles)
	v1.GET("/contracts", contractHandler.List)
	v1.GET("/contracts/:doc_num", contractHandler.Get)
	v1.POST("/contracts/:doc_num/status", contractHandler.Transition)

	v1.POST("/invoices", invoiceHandler.Issue, billingRoles)
	v1.GET("/invoices", invoiceHandler.List)
	v1.GET("/invoices/:doc_num", invoiceHandler.Get)

	v1.POST("/receipts", receiptHandler.Record, billingRoles)
	v1.GET("/receipts", receiptHandler.List)

	// --- Observability & docs (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
