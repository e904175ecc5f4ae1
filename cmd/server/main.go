package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/flockbook/internal/config"
	"github.com/mamadbah2/flockbook/internal/repository/mongodb"
	"github.com/mamadbah2/flockbook/internal/repository/sheets"
	"github.com/mamadbah2/flockbook/internal/repository/snapshot"
	"github.com/mamadbah2/flockbook/internal/scheduler"
	"github.com/mamadbah2/flockbook/internal/server/handlers"
	"github.com/mamadbah2/flockbook/internal/server/router"
	"github.com/mamadbah2/flockbook/internal/service/farm"
	reportingsvc "github.com/mamadbah2/flockbook/internal/service/reporting"
	"github.com/mamadbah2/flockbook/pkg/clients/notify"
	"github.com/mamadbah2/flockbook/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var snapshots snapshot.Repository
	if cfg.MongoDB.URI != "" {
		mongoRepo, err := mongodb.NewRepository(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb snapshot store", zap.Error(err))
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		snapshots = mongoRepo
	} else {
		snapshots = snapshot.NewFileRepository(cfg.Snapshot.Path, baseLogger.Named("repo.snapshot"))
	}

	var exporter farm.RecordExporter
	if cfg.SheetsEnabled() {
		sheetsExporter, err := sheets.NewGoogleSheetExporter(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets exporter", zap.Error(err))
		}
		exporter = sheetsExporter
		baseLogger.Info("spreadsheet record mirror enabled")
	}

	state := snapshot.LoadOrDefault(context.Background(), snapshots, cfg.Farm.InitialFlockSize, baseLogger.Named("repo.snapshot"))
	farmSvc := farm.NewService(state, snapshots, exporter, baseLogger.Named("svc.farm"))
	reportingSvc := reportingsvc.NewService(farmSvc, baseLogger.Named("svc.reporting"))

	var notifier notify.Client
	if cfg.Reporting.WebhookURL != "" {
		notifier = notify.NewWebhookClient(cfg.Reporting.WebhookURL)
		baseLogger.Info("report webhook notifier enabled")
	} else {
		baseLogger.Warn("report webhook url missing, weekly reports will only be logged")
	}

	farmHandler := handlers.NewFarmHandler(farmSvc, baseLogger.Named("handlers.farm"))
	analyticsHandler := handlers.NewAnalyticsHandler(farmSvc, baseLogger.Named("handlers.analytics"))
	engine := router.New(farmHandler, analyticsHandler, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(cfg.Reporting, reportingSvc, notifier, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
