package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/bmicare/internal/config"
)

// Exporter is the job run on every tick.
type Exporter interface {
	Export(ctx context.Context) (int, error)
}

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron     *cron.Cron
	exporter Exporter
	cfg      config.ExportConfig
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ExportConfig, exporter Exporter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Standard 5-field parser plus descriptors such as @hourly.
	c := cron.New()

	return &Scheduler{
		cron:     c,
		exporter: exporter,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the export job and starts the scheduler.
func (s *Scheduler) Start() error {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.exportHistory); err != nil {
		return fmt.Errorf("schedule history export %q: %w", s.cfg.CronSchedule, err)
	}

	s.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running export to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	<-s.cron.Stop().Done()
}

func (s *Scheduler) exportHistory() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	n, err := s.exporter.Export(ctx)
	if err != nil {
		s.logger.Error("history export failed", zap.Error(err))
		return
	}
	s.logger.Info("history export finished", zap.Int("rows", n))
}
