package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"mom-portal/backend/config"
	"mom-portal/backend/internal/api/handler"
	"mom-portal/backend/internal/api/middleware"
	"mom-portal/backend/internal/api/router"
	"mom-portal/backend/internal/repository"
	"mom-portal/backend/internal/service"
	"mom-portal/backend/pkg/database"
	"mom-portal/backend/pkg/jwt"
	applogger "mom-portal/backend/pkg/logger"
	"mom-portal/backend/pkg/ratelimit"
	"mom-portal/backend/pkg/redis"
	"mom-portal/backend/pkg/storage"
)

func main() {
	// 1. configuration
	cfg, err := config.Load(os.Getenv("MOM_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting server",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database and migrations
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	// 4. Redis is optional: without it tokens are not revoked on logout
	// and rate limits are kept per process
	var (
		blacklist service.TokenBlacklist
		checker   middleware.TokenChecker
		limiter   ratelimit.Limiter
	)
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory rate limiting without token revocation", zap.Error(err))
		mem := ratelimit.NewMemory()
		mem.StartSweeper(bgCtx, cfg.RateLimit.Window)
		limiter = mem
	} else {
		blacklist, checker, limiter = rdb, rdb, rdb
	}

	// 5. document storage
	store, err := storage.NewLocalStore(&cfg.Upload)
	if err != nil {
		logger.Fatal("failed to init upload storage", zap.Error(err))
	}

	// 6. wiring: repository → service → handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, blacklist, store, logger)
	h := handler.NewHandler(svc, cfg.Log.Level == "debug")

	if err := router.RegisterValidators(); err != nil {
		logger.Fatal("failed to register validators", zap.Error(err))
	}
	engine := router.Setup(cfg, h, jwtMgr, checker, svc.Auth, limiter, logger)

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	stopBackground()
	if err := sqlDB.Close(); err != nil {
		logger.Error("failed to close database", zap.Error(err))
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
