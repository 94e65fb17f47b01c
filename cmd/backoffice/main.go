package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	cartAPI "github.com/ridloal/rodamientos-backoffice/internal/cart/api"
	cartRepo "github.com/ridloal/rodamientos-backoffice/internal/cart/repository"
	cartService "github.com/ridloal/rodamientos-backoffice/internal/cart/service"
	catalogAPI "github.com/ridloal/rodamientos-backoffice/internal/catalog/api"
	catalogRepo "github.com/ridloal/rodamientos-backoffice/internal/catalog/repository"
	catalogService "github.com/ridloal/rodamientos-backoffice/internal/catalog/service"
	clientAPI "github.com/ridloal/rodamientos-backoffice/internal/client/api"
	clientRepo "github.com/ridloal/rodamientos-backoffice/internal/client/repository"
	clientService "github.com/ridloal/rodamientos-backoffice/internal/client/service"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/config"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/database"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/events"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/middleware"
	saleAPI "github.com/ridloal/rodamientos-backoffice/internal/sale/api"
	saleRepo "github.com/ridloal/rodamientos-backoffice/internal/sale/repository"
	saleService "github.com/ridloal/rodamientos-backoffice/internal/sale/service"
	shoppingAPI "github.com/ridloal/rodamientos-backoffice/internal/shopping/api"
	shoppingRepo "github.com/ridloal/rodamientos-backoffice/internal/shopping/repository"
	shoppingService "github.com/ridloal/rodamientos-backoffice/internal/shopping/service"
	userAPI "github.com/ridloal/rodamientos-backoffice/internal/user/api"
	userRepo "github.com/ridloal/rodamientos-backoffice/internal/user/repository"
	userService "github.com/ridloal/rodamientos-backoffice/internal/user/service"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load Config
	envPath, envLoaded := config.LoadEnvFile()
	if err := logger.Init(config.GetEnv("LOG_LEVEL", "info")); err != nil {
		logger.Warn("Invalid LOG_LEVEL, keeping info", zap.Error(err))
	}
	defer logger.Sync()
	if envLoaded {
		logger.Info("Loaded environment file", zap.String("path", envPath))
	}

	serverCfg := config.LoadServerConfig("3000")
	dbCfg := config.LoadDBConfig()
	authCfg := config.LoadAuthConfig()
	cartCfg := config.LoadCartConfig()
	eventsCfg := config.LoadEventsConfig()

	logger.Info("Starting Rodamientos back-office...")

	// Setup Database
	db, err := database.Connect(dbCfg)
	if err != nil {
		logger.Error("Failed to connect to database", err)
		os.Exit(1)
	}
	defer db.Close()

	if dbCfg.MigrationsEnabled {
		if err := database.Migrate(db); err != nil {
			logger.Error("Failed to apply migrations", err)
			os.Exit(1)
		}
	}

	publisher := newPublisher(eventsCfg)
	defer publisher.Close()

	// Setup Dependencies
	productSvc := catalogService.NewProductService(catalogRepo.NewPostgresProductRepository(db))
	brandSvc := catalogService.NewBrandService(catalogRepo.NewPostgresBrandRepository(db))
	placeSvc := catalogService.NewPlaceService(catalogRepo.NewPostgresPlaceRepository(db))
	providerSvc := catalogService.NewProviderService(catalogRepo.NewPostgresProviderRepository(db))

	clients := clientRepo.NewPostgresClientRepository(db)
	clientSvc := clientService.NewClientService(clients)

	userSvc := userService.NewUserService(userRepo.NewPostgresUserRepository(db), authCfg.SecretKey, authCfg.TokenTTL)
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userSvc.EnsureAdmin(seedCtx, authCfg.AdminUsername, authCfg.AdminPassword); err != nil {
		logger.Error("Failed to seed admin user", err)
	}
	cancelSeed()

	cartSvc := cartService.NewCartService(newCartStore(cartCfg, db), productSvc, cartCfg.DraftTTL)
	sweeper, err := cartSvc.StartSweeper(cartCfg.SweepSchedule)
	if err != nil {
		logger.Error("Failed to start draft cart sweeper", err)
		os.Exit(1)
	}

	saleSvc := saleService.NewSaleService(saleRepo.NewPostgresSaleRepository(db, clients), productSvc, cartSvc, publisher)
	shoppingSvc := shoppingService.NewShoppingService(shoppingRepo.NewPostgresShoppingRepository(db), productSvc, providerSvc, cartSvc, publisher)

	// Setup Gin Router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), logger.GinMiddleware())
	router.RedirectTrailingSlash = false
	router.GET("/health", healthHandler(db))

	userHandler := userAPI.NewUserHandler(userSvc)
	api := router.Group("/api")
	userHandler.RegisterPublicRoutes(api)

	protected := api.Group("", middleware.Auth(userSvc))
	userHandler.RegisterRoutes(protected)
	catalogAPI.NewProductHandler(productSvc).RegisterRoutes(protected)
	catalogAPI.NewBrandHandler(brandSvc).RegisterRoutes(protected)
	catalogAPI.NewPlaceHandler(placeSvc).RegisterRoutes(protected)
	catalogAPI.NewProviderHandler(providerSvc).RegisterRoutes(protected)
	clientAPI.NewClientHandler(clientSvc).RegisterRoutes(protected)
	cartAPI.NewCartHandler(cartSvc).RegisterRoutes(protected)
	saleAPI.NewSaleHandler(saleSvc).RegisterRoutes(protected)
	shoppingAPI.NewShoppingHandler(shoppingSvc).RegisterRoutes(protected)

	server := &http.Server{
		Addr:              serverCfg.Port,
		Handler:           middleware.CORS(serverCfg.AllowedOrigins)(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-signalCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

		<-sweeper.Stop().Done()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown failed", err)
		}
	}()

	logger.Info("Back-office running", zap.String("addr", serverCfg.Port), zap.String("cart_store", cartCfg.Store))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to run back-office server", err)
	}
	logger.Info("Back-office stopped")
}

func newPublisher(cfg config.EventsConfig) events.Publisher {
	if cfg.RabbitURI == "" {
		logger.Info("RABBITMQ_URI not set, transaction events are only logged")
		return events.LogPublisher{}
	}
	p, err := events.NewAMQPPublisher(cfg.RabbitURI, cfg.Exchange)
	if err != nil {
		logger.Error("RabbitMQ unavailable, transaction events are only logged", err)
		return events.LogPublisher{}
	}
	return p
}

func newCartStore(cfg config.CartConfig, db *sql.DB) cartRepo.CartStore {
	if cfg.Store == "memory" {
		logger.Warn("Using in-memory cart store, drafts are lost on restart")
		return cartRepo.NewMemoryCartStore()
	}
	return cartRepo.NewPostgresCartStore(db)
}

func healthHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
