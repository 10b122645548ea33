package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/afterschool/lessons-api/internal/application/service"
	"github.com/afterschool/lessons-api/internal/config"
	"github.com/afterschool/lessons-api/internal/httpapi"
	"github.com/afterschool/lessons-api/internal/observability"
	mongostore "github.com/afterschool/lessons-api/internal/storage/mongo"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load()

	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	// Single connection for the whole process; a failure here is fatal, no
	// retry and no partial-availability mode.
	store, err := mongostore.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		logger.Fatal("MongoDB connection error", zap.Error(err))
	}
	logger.Info("Connected to MongoDB", zap.String("db", cfg.Mongo.DBName))

	metrics := observability.NewInmem(256)
	lessons := service.NewLessons(store.Lessons(), logger, metrics)
	orders := service.NewOrders(store.Orders(), logger, metrics)

	server := httpapi.New(lessons, orders, cfg.ImageDir, cfg.CORSOrigins, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Server is running", zap.String("addr", cfg.Addr()))
	if err := server.ListenAndServe(ctx, cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err := store.Disconnect(shutdownCtx); err != nil {
		logger.Warn("mongo disconnect", zap.Error(err))
	}
	logger.Info("server stopped")
}
