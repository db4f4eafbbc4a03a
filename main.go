package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orderdesk-backend/config"
	"orderdesk-backend/logger"
	"orderdesk-backend/operations"
	"orderdesk-backend/repository"
	"orderdesk-backend/routes"
	"orderdesk-backend/services"
	"orderdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, dotenv := config.Load()
	if err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if !dotenv {
		logger.Info("No .env file found")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}
	if cfg.LogFormat != "console" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	if err := config.Migrate(db); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	catalog := repository.NewServiceStore(db, nil)
	orders := repository.NewOrderRepository(db, nil)
	accounts := services.NewAdminAccounts(repository.NewAdminStore(db))
	catalogAdmin := services.NewCatalogAdmin(catalog)
	lifecycle := services.NewOrderLifecycle(orders, catalog)
	ops := operations.New(catalog, catalogAdmin, lifecycle, services.NewLookup(orders))

	ctx := context.Background()
	if cfg.SeedCatalog {
		seeded, err := services.SeedCatalog(ctx, catalog, catalogAdmin)
		if err != nil {
			logger.Fatal("failed to seed catalog", zap.Error(err))
		}
		if seeded {
			logger.Info("services seeded", zap.Int("count", len(services.DefaultCatalog)))
		}
	}
	if cfg.AdminEmail != "" {
		if err := accounts.Bootstrap(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			logger.Fatal("failed to bootstrap admin", zap.Error(err))
		}
	}

	var sender services.MessageSender
	if cfg.TwilioEnabled() {
		sender = services.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	}
	if cfg.DigestSchedule != "" {
		scheduler, err := services.NewDigestService(lifecycle, sender, cfg.AdminPhone).Start(cfg.DigestSchedule)
		if err != nil {
			logger.Fatal("failed to start digest", zap.Error(err))
		}
		defer scheduler.Stop()
	}

	r := routes.SetupRouter(routes.Deps{
		Ops:         ops,
		Accounts:    accounts,
		Tokens:      utils.TokenConfig{Secret: []byte(cfg.JWTSecret), Expiry: cfg.TokenExpiry()},
		CORSOrigins: cfg.CORSOrigins,
	})
	printRoutes(r)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()
	logger.Info("listening", zap.String("port", cfg.Port))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		logger.Debug("route", zap.String("method", route.Method), zap.String("path", route.Path))
	}
}
