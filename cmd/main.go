package main

import (
	"net/http"

	authapp "github.com/ernitinjai/meenicode-pos/application/auth"
	dashboardapp "github.com/ernitinjai/meenicode-pos/application/dashboard"
	inventoryapp "github.com/ernitinjai/meenicode-pos/application/inventory"
	"github.com/ernitinjai/meenicode-pos/cmd/config"
	redisclient "github.com/ernitinjai/meenicode-pos/cmd/redis"
	productRepo "github.com/ernitinjai/meenicode-pos/repository/product"
	"github.com/ernitinjai/meenicode-pos/repository/remote"
	sessionRepo "github.com/ernitinjai/meenicode-pos/repository/session"
	shopRepo "github.com/ernitinjai/meenicode-pos/repository/shop"
	"github.com/ernitinjai/meenicode-pos/transport"
	"github.com/ernitinjai/meenicode-pos/utils/logger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting merchant console",
		zap.String("env", cfg.Environment),
		zap.String("api", cfg.Remote.BaseURL))

	// Initialize Redis client for the session slot
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Remote store client
	remoteClient := remote.NewClient(cfg.Remote.BaseURL, cfg.Remote.Timeout)

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(remoteClient)
	ShopRepo := shopRepo.NewShopRepository(remoteClient)
	SessionRepo := sessionRepo.NewSessionRepository()

	// Initialize application layers
	AuthApp := authapp.NewAuthApp(ShopRepo, SessionRepo)
	InventoryApp := inventoryapp.NewInventoryApp(ProductRepo, cfg.Inventory.ItemsPerPage)
	defer InventoryApp.Close()
	DashboardApp := dashboardapp.NewDashboardApp()

	httpTransport := transport.NewTransport(AuthApp, InventoryApp, DashboardApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
