package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/marketbrief/internal/pipeline"
	"github.com/wonny/marketbrief/pkg/config"
	"github.com/wonny/marketbrief/pkg/logger"
)

// DailyNewsJob runs the news summary report on schedule.
type DailyNewsJob struct {
	pipeline *pipeline.Pipeline
	config   *config.Config
	logger   *logger.Logger
}

// NewDailyNewsJob creates a daily news summary job
func NewDailyNewsJob(p *pipeline.Pipeline, cfg *config.Config, log *logger.Logger) *DailyNewsJob {
	return &DailyNewsJob{
		pipeline: p,
		config:   cfg,
		logger:   log,
	}
}

// Name returns the job name
func (j *DailyNewsJob) Name() string {
	return "daily_news"
}

// Schedule returns the cron schedule (with seconds field).
func (j *DailyNewsJob) Schedule() string {
	return j.config.Report.NewsSchedule
}

// Run generates the news summary report.
func (j *DailyNewsJob) Run(ctx context.Context) error {
	j.logger.Info("Daily news job started")

	result, err := j.pipeline.RunNewsReport(ctx)
	if err != nil {
		return fmt.Errorf("news report failed: %w", err)
	}

	j.logger.WithField("articles", result.Sectors).Info("News report generated")

	return nil
}
