package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fairpaycheck/fairpay/internal/report"
	"github.com/fairpaycheck/fairpay/internal/scoring"
)

var (
	reportHTML bool
	reportOut  string
)

var reportCmd = &cobra.Command{
	Use:   "report <result.json>",
	Short: "Render a saved assessment as Markdown or HTML",
	Long: `Render a saved assessment as a shareable document.

The input is a result file written by check --save.

Examples:
  fairpay check --save result.json
  fairpay report result.json > report.md
  fairpay report --html result.json -o report.html`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportHTML, "html", false, "Render HTML instead of Markdown")
	reportCmd.Flags().StringVarP(&reportOut, "output", "o", "", "Write to this file instead of stdout")
	RootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	res, err := loadResult(args[0])
	if err != nil {
		return err
	}

	out := report.Markdown(res)
	if reportHTML {
		out, err = report.HTML(res)
		if err != nil {
			return err
		}
	}

	if reportOut != "" {
		return os.WriteFile(reportOut, []byte(out), 0o644)
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// loadResult reads a result file written by check --save.
func loadResult(path string) (*scoring.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read result: %w", err)
	}

	var res scoring.Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if res.Verdict == "" && res.Score == 0 {
		return nil, fmt.Errorf("%s does not look like a saved assessment", path)
	}
	return &res, nil
}
