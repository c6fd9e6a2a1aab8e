package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/auth"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/commons"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/config"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/customer"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/infrastructure/logger"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/infrastructure/mysql"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/order"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/product"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/server"
	"github.com/wesleypiresbh/doces-sabor-de-mel/internal/user"
	userrepo "github.com/wesleypiresbh/doces-sabor-de-mel/internal/user/repository"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		cfg, err = config.Load()
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	// The secret never lives in config.yaml; the environment always wins.
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.Auth.SessionSecret = secret
	}
	if cfg.Auth.SessionSecret == "" {
		zapLogger.Fatal("SESSION_SECRET must be set")
	}

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	sessions := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL)
	gate := auth.NewGate(sessions, zapLogger)
	authCtrl := auth.NewController(userrepo.NewMySQLRepository(db), sessions, zapLogger)

	customerCtrl := customer.NewModule(db, zapLogger)
	productCtrl := product.NewModule(db, zapLogger)
	orderCtrl := order.NewModule(db, cfg.Order, zapLogger)
	userCtrl := user.NewModule(db, cfg.Auth.BcryptCost, zapLogger)

	router := server.NewRouter(gate, authCtrl, customerCtrl, productCtrl, orderCtrl, userCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
