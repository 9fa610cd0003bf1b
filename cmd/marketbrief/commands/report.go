package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report once",
	Long: `Generates a report immediately, outside the schedule.

Subcommands:
  sector  - sector analysis report
  market  - daily market (category) report
  news    - daily news summary

Example:
  go run ./cmd/marketbrief report sector
  go run ./cmd/marketbrief report market --output market.html
  go run ./cmd/marketbrief report news`,
}

var (
	reportOutput string

	reportSectorCmd = &cobra.Command{
		Use:   "sector",
		Short: "Generate the sector analysis report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport("sector")
		},
	}

	reportMarketCmd = &cobra.Command{
		Use:   "market",
		Short: "Generate the daily market report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport("market")
		},
	}

	reportNewsCmd = &cobra.Command{
		Use:   "news",
		Short: "Generate the daily news summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport("news")
		},
	}
)

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.AddCommand(reportSectorCmd)
	reportCmd.AddCommand(reportMarketCmd)
	reportCmd.AddCommand(reportNewsCmd)

	reportCmd.PersistentFlags().StringVar(&reportOutput, "output", "", "also write the rendered HTML to this file")
}

func runReport(kind string) error {
	d, cleanup, err := initDeps()
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := buildPipeline(d)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	start := time.Now()

	switch kind {
	case "sector":
		res, err := p.RunSectorReport(ctx)
		if err != nil {
			return fmt.Errorf("sector report: %w", err)
		}
		return finishReport(res.Subject, res.HTML, res.Sectors, res.Skipped, start)
	case "market":
		res, err := p.RunMarketReport(ctx)
		if err != nil {
			return fmt.Errorf("market report: %w", err)
		}
		return finishReport(res.Subject, res.HTML, res.Sectors, res.Skipped, start)
	case "news":
		res, err := p.RunNewsReport(ctx)
		if err != nil {
			return fmt.Errorf("news report: %w", err)
		}
		return finishReport(res.Subject, res.HTML, res.Sectors, res.Skipped, start)
	default:
		return fmt.Errorf("unknown report kind: %s", kind)
	}
}

func finishReport(subject, html string, groups, skipped int, start time.Time) error {
	if reportOutput != "" {
		if err := os.WriteFile(reportOutput, []byte(html), 0o644); err != nil {
			return fmt.Errorf("write report file: %w", err)
		}
		fmt.Printf("Report written to %s\n", reportOutput)
	}

	fmt.Printf("%s (%d groups, %d skipped, took %s)\n",
		subject, groups, skipped, time.Since(start).Round(time.Second))

	return nil
}
