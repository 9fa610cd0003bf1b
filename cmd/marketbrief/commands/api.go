package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/marketbrief/internal/analysis"
	"github.com/wonny/marketbrief/internal/api"
	"github.com/wonny/marketbrief/internal/api/handlers"
)

// apiCmd represents the api command
var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the API server",
	Long: `Starts the REST API server.

Endpoints:
  GET  /health                 - Health check
  GET  /api/sector?sector=all  - Sector summaries (format=csv supported)
  GET  /api/market             - Market category summaries
  GET  /api/news?recent=true   - Scraped news articles
  GET  /api/report/latest      - Latest persisted report

Example:
  go run ./cmd/marketbrief api
  go run ./cmd/marketbrief api --port 8080`,
	RunE: runAPIServer,
}

var apiPort string

func init() {
	rootCmd.AddCommand(apiCmd)

	apiCmd.Flags().StringVar(&apiPort, "port", "", "API server port (overrides PORT)")
}

func runAPIServer(cmd *cobra.Command, args []string) error {
	d, cleanup, err := initDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	if apiPort != "" {
		d.cfg.Port = apiPort
	}

	d.log.WithFields(map[string]interface{}{
		"port": d.cfg.Port,
		"env":  d.cfg.Env,
	}).Info("Initializing API server")

	summaryHandler := handlers.NewSummaryHandler(
		d.fetcher,
		analysis.NewSectorAggregator(d.log),
		analysis.NewCategoryAggregator(d.log),
		d.repo,
		d.cfg.Report.Sectors,
		d.log,
	)

	router := api.NewRouter(summaryHandler, d.log)
	server := api.New(d.cfg, d.log, router)

	fmt.Printf("Server running on http://localhost:%s\n", d.cfg.Port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx)
}
