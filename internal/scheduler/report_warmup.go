package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/arizon-automation/sales-dashboard/internal/config"
	"github.com/arizon-automation/sales-dashboard/internal/period"
	"github.com/arizon-automation/sales-dashboard/internal/usecases/reporting"
	"github.com/arizon-automation/sales-dashboard/pkg/utils"
)

// ReportWarmupService rebuilds the dashboard reports on a schedule so
// the vendor response cache stays warm between user visits. Each run
// walks every period mode and requests the full report set, letting
// the reporting layer refill any expired cache entries.
type ReportWarmupService struct {
	scheduler    *gocron.Scheduler
	config       config.ReportWarmup
	reporter     reporting.Reporter
	warmupMutex  sync.Mutex
	running      bool
	lastRunAt    time.Time
	lastDoneAt   time.Time
	warmupModes  []period.Mode
	buildTimeout time.Duration
}

func NewReportWarmupService(reporter reporting.Reporter, appConfig *config.Config) *ReportWarmupService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule":  appConfig.ReportWarmup.CronSchedule,
		"warmup_enabled": appConfig.ReportWarmup.Enabled,
	}).Info("report warmup scheduler configured")

	return &ReportWarmupService{
		scheduler:    gocron.NewScheduler(time.Local),
		config:       appConfig.ReportWarmup,
		reporter:     reporter,
		warmupModes:  []period.Mode{period.Monthly, period.Quarterly},
		buildTimeout: 10 * time.Minute,
	}
}

// Start registers the warmup job and runs the scheduler until the
// context is canceled. A disabled warmup is a no-op.
func (s *ReportWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("report warmup disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("starting report warmup scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmAllReports()
	})
	if err != nil {
		return fmt.Errorf("scheduling report warmup: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("stopping report warmup scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerWarmup starts a warmup run outside the schedule. It is called
// at boot so the first dashboard visit is already warm, and exposed on
// the cron route for manual runs.
func (s *ReportWarmupService) TriggerWarmup() {
	s.warmupMutex.Lock()
	if s.running {
		s.warmupMutex.Unlock()
		logrus.Info("report warmup already in progress, skipping manual trigger")
		return
	}
	s.warmupMutex.Unlock()

	go s.warmAllReports()
}

func (s *ReportWarmupService) warmAllReports() {
	s.warmupMutex.Lock()
	if s.running {
		s.warmupMutex.Unlock()
		logrus.Info("report warmup already in progress, skipping")
		return
	}
	s.running = true
	s.warmupMutex.Unlock()

	defer func() {
		s.warmupMutex.Lock()
		s.running = false
		s.warmupMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Error("could not generate warmup run id")
		return
	}

	startTime := time.Now()
	s.warmupMutex.Lock()
	s.lastRunAt = startTime
	s.warmupMutex.Unlock()

	logger := logrus.WithField("run_id", runID)
	logger.Info("starting report warmup run")

	ctx, cancel := context.WithTimeout(context.Background(), s.buildTimeout)
	defer cancel()

	failures := 0
	for _, mode := range s.warmupModes {
		failures += s.warmMode(ctx, logger, mode)
	}

	s.warmupMutex.Lock()
	s.lastDoneAt = time.Now()
	s.warmupMutex.Unlock()

	logger.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"modes":    len(s.warmupModes),
		"failures": failures,
	}).Info("report warmup run finished")
}

// warmMode builds every report for one period mode and returns the
// number of failed builds. Failures are logged and skipped so one bad
// vendor call does not abort the rest of the run.
func (s *ReportWarmupService) warmMode(ctx context.Context, logger *logrus.Entry, mode period.Mode) int {
	builds := []struct {
		name  string
		build func(context.Context, period.Mode) error
	}{
		{"summary", func(ctx context.Context, m period.Mode) error {
			_, err := s.reporter.Summary(ctx, m)
			return err
		}},
		{"customers", func(ctx context.Context, m period.Mode) error {
			_, err := s.reporter.Customers(ctx, m)
			return err
		}},
		{"products", func(ctx context.Context, m period.Mode) error {
			_, err := s.reporter.Products(ctx, m)
			return err
		}},
		{"salespersons", func(ctx context.Context, m period.Mode) error {
			_, err := s.reporter.SalesPersons(ctx, m)
			return err
		}},
	}

	failures := 0
	for _, b := range builds {
		if err := b.build(ctx, mode); err != nil {
			logger.WithFields(logrus.Fields{
				"mode":   string(mode),
				"report": b.name,
			}).WithError(err).Error("report warmup build failed")
			failures++
			continue
		}

		logger.WithFields(logrus.Fields{
			"mode":   string(mode),
			"report": b.name,
		}).Debug("report warmed")
	}

	return failures
}

// GetStatus reports the scheduler state for the cron status route.
func (s *ReportWarmupService) GetStatus() map[string]any {
	s.warmupMutex.Lock()
	defer s.warmupMutex.Unlock()

	return map[string]any{
		"warmup_enabled":      s.config.Enabled,
		"warmup_cron":         s.config.CronSchedule,
		"warmup_running":      s.running,
		"last_run_started_at": s.lastRunAt,
		"last_run_done_at":    s.lastDoneAt,
	}
}
