package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fairpaycheck/fairpay/internal/advisor"
)

var explainCmd = &cobra.Command{
	Use:   "explain <result.json>",
	Short: "Get plain-language advice for a saved assessment",
	Long: `Get a plain-language reading of a saved assessment, with concrete
negotiation pointers, generated by Claude.

Requires the ANTHROPIC_API_KEY environment variable.

Examples:
  fairpay check --save result.json
  fairpay explain result.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExplain,
}

func init() {
	RootCmd.AddCommand(explainCmd)
}

func runExplain(cmd *cobra.Command, args []string) error {
	adv := advisor.New()
	if adv == nil {
		return fmt.Errorf("explain needs the ANTHROPIC_API_KEY environment variable")
	}

	res, err := loadResult(args[0])
	if err != nil {
		return err
	}

	text, err := adv.Explain(cmd.Context(), res)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
