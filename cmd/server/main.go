package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/bmicare/internal/config"
	"github.com/mamadbah2/bmicare/internal/repository/sheets"
	"github.com/mamadbah2/bmicare/internal/scheduler"
	"github.com/mamadbah2/bmicare/internal/server/handlers"
	"github.com/mamadbah2/bmicare/internal/server/router"
	"github.com/mamadbah2/bmicare/internal/service/assessment"
	"github.com/mamadbah2/bmicare/internal/service/export"
	"github.com/mamadbah2/bmicare/internal/service/history"
	"github.com/mamadbah2/bmicare/internal/service/insight"
	"github.com/mamadbah2/bmicare/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	medium, err := openHistoryMedium(startupCtx, cfg.History)
	if err != nil {
		baseLogger.Fatal("failed to init history storage", zap.String("backend", cfg.History.Backend), zap.Error(err))
	}
	defer func() {
		if err := medium.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close history storage", zap.Error(err))
		}
	}()
	baseLogger.Info("history storage ready", zap.String("backend", cfg.History.Backend))

	historyStore := history.NewStore(medium, cfg.History.Key, cfg.History.Capacity, logger.Named(baseLogger, "svc.history"))

	aiClient, provider := newInsightClient(cfg.AI, baseLogger)
	requester := insight.NewRequester(aiClient, provider, logger.Named(baseLogger, "svc.insight"))

	assessmentSvc := assessment.NewService(historyStore, requester, logger.Named(baseLogger, "svc.assessment"))

	engine := router.New(router.Handlers{
		Assessment: handlers.NewAssessmentHandler(assessmentSvc, requester, logger.Named(baseLogger, "handlers.assessment")),
		History:    handlers.NewHistoryHandler(historyStore, assessmentSvc, logger.Named(baseLogger, "handlers.history")),
	}, logger.Named(baseLogger, "router"))

	if cfg.Export.Enabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(startupCtx, cfg.Sheets, logger.Named(baseLogger, "repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}

		exporter := export.NewHistoryExporter(historyStore, sheetsRepo, cfg.Export.Range, logger.Named(baseLogger, "svc.export"))
		sched := scheduler.NewScheduler(cfg.Export, exporter, logger.Named(baseLogger, "scheduler"))
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	} else {
		baseLogger.Info("history export disabled")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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
