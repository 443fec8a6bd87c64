package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"newschat/ai"
	"newschat/cache"
	"newschat/config"
	"newschat/db"
	_ "newschat/docs" // Swagger docs
	"newschat/handlers"
	"newschat/observability"
	"newschat/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	generator, err := ai.New(cfg.LLM, logger)
	if err != nil {
		return err
	}
	logger.Info("LLM provider ready",
		zap.String("provider", generator.Name()),
		zap.String("model", generator.Model()))

	// Without SQL Server settings, data questions still route but every
	// execution reports the missing configuration.
	var pinger handlers.Pinger
	sqlService, err := service.NewSQLServerService(cfg.SQLServer, logger)
	switch {
	case errors.Is(err, service.ErrSQLServerNotConfigured):
		logger.Warn("SQL Server is not configured; data queries will return errors")
		sqlService = service.NewSQLServerServiceWithOpener(func() (*sql.DB, error) {
			return nil, service.ErrSQLServerNotConfigured
		}, logger)
	case err != nil:
		return err
	default:
		pinger = sqlService
	}

	var history handlers.HistoryStore
	if cfg.HistoryDBPath != "" {
		database, err := db.New(cfg.HistoryDBPath)
		if err != nil {
			return err
		}
		defer database.Close()
		history = database
	} else {
		logger.Info("chat history disabled")
	}

	dataQuery := service.NewDataQueryService(generator, sqlService, logger)
	chat := service.NewChatService(generator, dataQuery, logger)

	h := handlers.New(chat, history, pinger,
		handlers.ModelInfo{Provider: generator.Name(), Model: generator.Model()},
		cache.New(cfg.HealthCacheTTL), logger)

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handlers.NewRouter(h, cfg.CORSAllowOrigins, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
