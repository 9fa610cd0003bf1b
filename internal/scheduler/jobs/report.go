package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/marketbrief/internal/pipeline"
	"github.com/wonny/marketbrief/pkg/config"
	"github.com/wonny/marketbrief/pkg/logger"
)

// DailyReportJob runs the sector and market reports on schedule.
type DailyReportJob struct {
	pipeline *pipeline.Pipeline
	config   *config.Config
	logger   *logger.Logger
}

// NewDailyReportJob creates a daily report job
func NewDailyReportJob(p *pipeline.Pipeline, cfg *config.Config, log *logger.Logger) *DailyReportJob {
	return &DailyReportJob{
		pipeline: p,
		config:   cfg,
		logger:   log,
	}
}

// Name returns the job name
func (j *DailyReportJob) Name() string {
	return "daily_report"
}

// Schedule returns the cron schedule (with seconds field).
func (j *DailyReportJob) Schedule() string {
	return j.config.Report.Schedule
}

// Run generates both reports. Either report failing fails the job so
// the scheduler retries the whole run.
func (j *DailyReportJob) Run(ctx context.Context) error {
	j.logger.Info("Daily report job started")

	sectorResult, err := j.pipeline.RunSectorReport(ctx)
	if err != nil {
		return fmt.Errorf("sector report failed: %w", err)
	}

	j.logger.WithFields(map[string]interface{}{
		"sectors": sectorResult.Sectors,
		"skipped": sectorResult.Skipped,
	}).Info("Sector report generated")

	marketResult, err := j.pipeline.RunMarketReport(ctx)
	if err != nil {
		return fmt.Errorf("market report failed: %w", err)
	}

	j.logger.WithField("categories", marketResult.Sectors).Info("Market report generated")

	return nil
}
