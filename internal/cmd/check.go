package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/fairpaycheck/fairpay/internal/catalog"
	"github.com/fairpaycheck/fairpay/internal/scoring"
	"github.com/fairpaycheck/fairpay/internal/theme"
	"github.com/fairpaycheck/fairpay/internal/ui"
)

var checkSave string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the interactive salary assessment",
	Long: `Run the interactive salary assessment.

A short three-step form asks about your role, experience, and
compensation, then scores your profile against market data.

Examples:
  fairpay check
  fairpay check --save result.json
  fairpay check --endpoint http://localhost:8000`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkSave, "save", "", "Write the result to this file as JSON")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	out := ui.New(os.Stdout, os.Stderr)
	if !out.IsInteractive() {
		return fmt.Errorf("check is interactive and needs a terminal")
	}

	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	store, err := theme.NewStore("")
	if err != nil {
		return fmt.Errorf("open theme store: %w", err)
	}

	client := scoring.New(endpoint, log)

	model := ui.NewModel(cat, client, store, log, checkSave)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run assessment: %w", err)
	}
	return nil
}
