package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	httphandler "github.com/shopforge/storefront-server/internal/api/http/handler"
	"github.com/shopforge/storefront-server/internal/api/http/router"
	"github.com/shopforge/storefront-server/internal/config"
	"github.com/shopforge/storefront-server/internal/hash"
	"github.com/shopforge/storefront-server/internal/logger"
	"github.com/shopforge/storefront-server/internal/repository/postgres"
	"github.com/shopforge/storefront-server/internal/service"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN())
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)

	hasher := hash.NewBcrypt()

	userService := service.NewUser(userRepo, hasher, logger)
	productService := service.NewProduct(productRepo, categoryRepo, logger)
	categoryService := service.NewCategory(categoryRepo, logger)

	r := router.New(
		httphandler.NewUser(userService, logger),
		httphandler.NewProduct(productService, logger),
		httphandler.NewCategory(categoryService, logger),
		httphandler.NewHealth(db, logger),
		cfg.CORS.AllowedOrigins,
		logger,
	)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTP.Port),
		Handler: r.Handler(),
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("Starting server on", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
		}
	}()

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", server.Addr)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
