package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"quickBite/app/echo-server/router"
	"quickBite/business/cart"
	"quickBite/business/catalog"
	"quickBite/business/checkout"
	"quickBite/business/orders"
	userService "quickBite/business/user"
	"quickBite/internal/middleware"
	psqlRepo "quickBite/internal/repository/postgres"
	redisRepo "quickBite/internal/repository/redis"
	"quickBite/internal/rest"
	"quickBite/pkg/config"
	"quickBite/pkg/database"
	redisDB "quickBite/pkg/database/redis"
	"quickBite/pkg/logger"
	"quickBite/pkg/metrics"
	"quickBite/pkg/utils"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting QuickBite", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisDB.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() {
		if err := redisDB.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close Redis client", err)
		}
	}()

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	catalogRepo := psqlRepo.NewCatalogRepository(db)
	cartRepo := psqlRepo.NewCartRepository(db)
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	sessionRepo := redisRepo.NewSessionRepository(redisClient)

	// Init service
	usrService := userService.NewUserService(userRepo, sessionRepo, validate)
	catalogService := catalog.NewCatalogService(catalogRepo)
	cartService := cart.NewCartService(cartRepo, catalogRepo)
	checkoutService := checkout.NewCheckoutService(cartRepo)
	ordersService := orders.NewOrdersService(ordersRepo, cartRepo)

	// Init handler
	userHandler := rest.NewUserHandler(usrService)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	cartHandler := rest.NewCartHandler(cartService)
	checkoutHandler := rest.NewCheckoutHandler(checkoutService)
	ordersHandler := rest.NewOrdersHandler(ordersService)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Metrics())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Every route except register/login sits behind the session gate
	authRequired := middleware.AuthMiddlewareWithRedis(usrService)

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired)
	router.SetupCatalogRoutes(api, catalogHandler, authRequired)
	router.SetupCartRoutes(api, cartHandler, authRequired)
	router.SetupCheckoutRoutes(api, checkoutHandler, authRequired)
	router.SetupOrdersRoutes(api, ordersHandler, authRequired)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
