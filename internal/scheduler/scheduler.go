package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"sensor-ops/internal/pkg/config"
	applog "sensor-ops/internal/pkg/logger"
	"sensor-ops/internal/pkg/sheets"
	"sensor-ops/pkg/constants"
)

// prewarmTabs are the tabs every dashboard hit needs; refreshing them
// on a schedule keeps the first request of the hour off the cold path.
var prewarmTabs = []string{
	constants.SheetPMPlan,
	constants.SheetTasks,
	constants.SheetMasterSite,
}

// Scheduler periodically refreshes the hot sheet tabs.
type Scheduler struct {
	cron   *cron.Cron
	loader *sheets.Client
	logger *zap.Logger
}

func New(loader *sheets.Client, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cron.PrintfLogger(applog.GetWriter())),
		),
		loader: loader,
		logger: logger,
	}
}

// Start registers the pre-warm job and starts the cron loop.
func (s *Scheduler) Start(cfg *config.Config) error {
	cronExpr := cfg.Sheets.RefreshCron
	if cronExpr == "" {
		cronExpr = "0 */5 * * * *"
		s.logger.Warn("sheets.refresh_cron not set, using default", zap.String("cron", cronExpr))
	}

	entryID, err := s.cron.AddFunc(cronExpr, s.prewarm)
	if err != nil {
		s.logger.Error("failed to register prewarm job", zap.String("cron", cronExpr), zap.Error(err))
		return err
	}

	s.cron.Start()
	s.logger.Info("sheet prewarm job registered",
		zap.String("cron", cronExpr),
		zap.Int("entry_id", int(entryID)))
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) prewarm() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, tab := range prewarmTabs {
		if _, err := s.loader.Refresh(ctx, tab); err != nil {
			s.logger.Warn("prewarm fetch failed", zap.String("tab", tab), zap.Error(err))
		}
	}
}
