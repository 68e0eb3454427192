package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/mishasvintus/mergington_activities/internal/config"
	"github.com/mishasvintus/mergington_activities/internal/handler"
	"github.com/mishasvintus/mergington_activities/internal/logger"
	"github.com/mishasvintus/mergington_activities/internal/metrics"
	"github.com/mishasvintus/mergington_activities/internal/repository"
	"github.com/mishasvintus/mergington_activities/internal/router"
	"github.com/mishasvintus/mergington_activities/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	gin.SetMode(cfg.Server.GinMode)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	activityRepo, err := repository.NewActivityRepository(repository.DefaultActivities())
	if err != nil {
		zapLogger.Fatal("Failed to seed activities", zap.Error(err))
	}

	activityService := service.NewActivityService(
		activityRepo,
		metrics.New(reg),
		zapLogger.Named("activities"),
		cfg.Activities.EnforceCapacity,
	)
	activityHandler := handler.NewActivityHandler(activityService)

	r := router.SetupRoutes(activityHandler, router.Options{
		StaticDir: cfg.Server.StaticDir,
		Logger:    zapLogger.Named("http"),
		Gatherer:  reg,
	})

	addr := cfg.Server.Addr()
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		zapLogger.Info("Server starting",
			zap.String("addr", addr),
			zap.Bool("enforce_capacity", cfg.Activities.EnforceCapacity),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}
