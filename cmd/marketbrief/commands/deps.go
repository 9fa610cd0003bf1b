package commands

import (
	"context"
	"fmt"

	"github.com/wonny/marketbrief/internal/analysis"
	"github.com/wonny/marketbrief/internal/external/yahoo"
	"github.com/wonny/marketbrief/internal/llm"
	"github.com/wonny/marketbrief/internal/mailer"
	"github.com/wonny/marketbrief/internal/pipeline"
	"github.com/wonny/marketbrief/internal/report"
	"github.com/wonny/marketbrief/pkg/config"
	"github.com/wonny/marketbrief/pkg/database"
	"github.com/wonny/marketbrief/pkg/httputil"
	"github.com/wonny/marketbrief/pkg/logger"
	"github.com/wonny/marketbrief/pkg/redis"
)

// deps holds the wired application components shared by the commands.
// repo is nil when the database is disabled; every consumer handles
// that.
type deps struct {
	cfg     *config.Config
	log     *logger.Logger
	db      *database.DB
	cache   *redis.Cache
	fetcher *yahoo.Client
	repo    *report.Repository
}

// initDeps loads config and wires the fetch side of the application.
// The returned cleanup closes the database and Redis connections.
func initDeps() (*deps, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	cache, err := redis.NewCache(cfg, "marketbrief")
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	httpClient := httputil.New(log).
		WithRateLimit(cfg.Yahoo.RequestsPerSec, cfg.Yahoo.Burst)

	fetcher := yahoo.NewClient(cfg, httpClient, cache, log)

	d := &deps{
		cfg:     cfg,
		log:     log,
		cache:   cache,
		fetcher: fetcher,
	}

	if cfg.Database.Enabled {
		db, err := database.New(cfg)
		if err != nil {
			cache.Close()
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}

		repo := report.NewRepository(db, log)
		if err := repo.Migrate(context.Background()); err != nil {
			db.Close()
			cache.Close()
			return nil, nil, err
		}

		d.db = db
		d.repo = repo
	}

	cleanup := func() {
		if d.db != nil {
			d.db.Close()
		}
		d.cache.Close()
	}

	return d, cleanup, nil
}

// buildPipeline wires the full report pipeline on top of the fetch
// side. Mail delivery is skipped when SMTP is not configured.
func buildPipeline(d *deps) (*pipeline.Pipeline, error) {
	if d.cfg.Anthropic.APIKey == "" {
		return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for report generation")
	}

	analyst := llm.NewAnthropicAnalyst(d.cfg, d.log)

	var sender mailer.Sender
	smtpMailer := mailer.New(d.cfg, d.log)
	if smtpMailer.Configured() {
		sender = smtpMailer
	} else {
		d.log.Warn("SMTP not configured, reports will not be mailed")
	}

	return pipeline.New(
		d.cfg.Report.Sectors,
		d.fetcher,
		analysis.NewSectorAggregator(d.log),
		analysis.NewCategoryAggregator(d.log),
		analyst,
		sender,
		d.repo,
		d.log,
	), nil
}
