package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fairpaycheck/fairpay/internal/logger"
)

var (
	// Global flags
	verbose  bool
	jsonLogs bool
	endpoint string
)

var RootCmd = &cobra.Command{
	Use:   "fairpay",
	Short: "Check whether you're being paid fairly",
	Long: `fairpay is a salary fairness checker for your terminal.

It walks you through a short assessment of your role, experience, and
compensation, scores your profile against market data, and gives you a
verdict with the reasoning behind it. Results can be saved and rendered
as shareable reports.`,
}

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON")
	RootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Scoring service base URL (defaults to the hosted service)")
}

// newLogger builds the process logger from the global flags.
func newLogger() (*zap.Logger, error) {
	return logger.New(jsonLogs, verbose)
}
