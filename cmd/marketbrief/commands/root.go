package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "marketbrief",
	Short: "Daily market and sector analysis reports",
	Long: `MarketBrief

Fetches quote pages, aggregates sector and category statistics,
generates an LLM analysis and delivers HTML reports by mail.

Usage:
  go run ./cmd/marketbrief [command]

Examples:
  go run ./cmd/marketbrief api
  go run ./cmd/marketbrief report sector
  go run ./cmd/marketbrief report market --output report.html
  go run ./cmd/marketbrief scheduler start`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
