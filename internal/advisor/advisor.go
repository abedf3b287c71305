// Package advisor turns a finished assessment into plain-language advice
// using Claude. It is optional: without an API key the feature is simply
// absent and the rest of the program works as usual.
package advisor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/fairpaycheck/fairpay/internal/scoring"
)

// Advisor asks Claude to explain an assessment.
type Advisor struct {
	client anthropic.Client
}

// New creates an Advisor, or nil when ANTHROPIC_API_KEY is unset.
func New() *Advisor {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Advisor{client: client}
}

// Explain returns a short plain-language reading of the assessment with
// concrete negotiation pointers.
func (a *Advisor) Explain(ctx context.Context, res *scoring.Result) (string, error) {
	if a == nil {
		return "", fmt.Errorf("advisor not initialized (missing ANTHROPIC_API_KEY)")
	}

	prompt := fmt.Sprintf(`You are a career advisor. A salary fairness check produced this assessment:

Score: %d/100
Verdict: %s
Confidence: %s
Estimated market range: %s - %s (%s)
Reasons:
%s

Explain in plain language what this result means for the person, and give
2-3 concrete, realistic next steps (e.g. how to approach a salary
conversation). Be direct and practical. No more than 200 words.`,
		res.Score,
		res.Verdict,
		res.Confidence,
		res.SalaryRange.FormattedMin,
		res.SalaryRange.FormattedMax,
		res.SalaryRange.Currency,
		"- "+strings.Join(res.Reasons, "\n- "),
	)

	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.ModelClaude3_5Haiku20241022,
		MaxTokens: 1000,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("Claude API error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}
	return text.String(), nil
}
