package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	_ "integraservicios/docs" // swagger docs
	"integraservicios/internal/auth"
	"integraservicios/internal/cache"
	"integraservicios/internal/config"
	"integraservicios/internal/db"
	"integraservicios/internal/events"
	"integraservicios/internal/handler"
	"integraservicios/internal/logger"
	"integraservicios/internal/repository"
	"integraservicios/internal/router"
	"integraservicios/internal/service"
)

// @title Integraservicios API
// @version 1.0
// @description Reservation and loan service for university rooms and equipment.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(zapcore.InfoLevel, "integraservicios").Fatal("config", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel, "integraservicios")
	defer func() { _ = log.Sync() }()

	gormDB, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	if err := db.Migrate(gormDB, cfg.Database.Reset, log); err != nil {
		log.Fatal("db migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.Redis, log)

	publisher, err := events.NewPublisher(cfg.Kafka, log)
	if err != nil {
		log.Fatal("events publisher", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	resourceRepo := repository.NewResourceRepository(gormDB)
	reservationRepo := repository.NewReservationRepository(gormDB)
	loanRepo := repository.NewLoanRepository(gormDB)

	// Auth
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)

	// Services
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, cacheClient, log)
	reservationService := service.NewReservationService(userRepo, resourceRepo, reservationRepo, publisher, log)
	resourceService := service.NewResourceService(resourceRepo, cacheClient)
	loanService := service.NewLoanService(loanRepo, publisher, log)

	e := echo.New()
	e.HideBanner = true
	router.Register(
		e,
		cfg,
		log,
		tokens,
		handler.NewAuthHandler(authService),
		handler.NewUserHandler(userService),
		handler.NewReservationHandler(reservationService),
		handler.NewResourceHandler(resourceService),
		handler.NewLoanHandler(loanService),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		addr := ":" + cfg.ServerPort
		log.Info("http server start", zap.String("addr", addr), zap.String("swagger", "/swagger/index.html"))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Debug("graceful shutdown")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
	}

	if err := publisher.Close(); err != nil {
		log.Warn("close publisher", zap.Error(err))
	}
	if err := cacheClient.Close(); err != nil {
		log.Warn("close cache", zap.Error(err))
	}
	if err := db.Close(gormDB); err != nil {
		log.Warn("close db", zap.Error(err))
	}
	log.Info("graceful shutdown finished")
}
