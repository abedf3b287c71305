// Package report renders a saved assessment as a shareable document.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/fairpaycheck/fairpay/internal/gauge"
	"github.com/fairpaycheck/fairpay/internal/scoring"
)

// Markdown renders the assessment as a Markdown document.
func Markdown(res *scoring.Result) string {
	var b strings.Builder

	b.WriteString("# FairPayCheck Assessment\n\n")
	fmt.Fprintf(&b, "**Score: %d / 100** — %s\n\n", res.Score, res.Verdict)
	if res.Confidence != "" {
		fmt.Fprintf(&b, "Confidence: %s\n\n", res.Confidence)
	}

	if res.SalaryRange.FormattedMin != "" || res.SalaryRange.FormattedMax != "" {
		fmt.Fprintf(&b, "Estimated market range: %s – %s (%s)\n\n",
			res.SalaryRange.FormattedMin, res.SalaryRange.FormattedMax, res.SalaryRange.Currency)
	}

	if len(res.Reasons) > 0 {
		b.WriteString("## Why\n\n")
		for _, reason := range res.Reasons {
			fmt.Fprintf(&b, "- %s\n", reason)
		}
		b.WriteString("\n")
	}

	if res.Breakdown != nil {
		b.WriteString("## Score breakdown\n\n")
		b.WriteString("| Component | Points |\n|---|---:|\n")
		for _, row := range []struct {
			name  string
			value float64
		}{
			{"Baseline", res.Breakdown.Baseline},
			{"Market", res.Breakdown.Market},
			{"Experience", res.Breakdown.Experience},
			{"Skills", res.Breakdown.Skills},
			{"Company", res.Breakdown.Company},
			{"Progression", res.Breakdown.Progression},
			{"Timing", res.Breakdown.Timing},
		} {
			fmt.Fprintf(&b, "| %s | %+.1f |\n", row.name, row.value)
		}
		b.WriteString("\n")
	}

	if res.DataUpdated != "" {
		fmt.Fprintf(&b, "Market data updated %s\n\n", res.DataUpdated)
	}
	if res.Disclaimer != "" {
		fmt.Fprintf(&b, "*%s*\n", res.Disclaimer)
	}

	return b.String()
}

// HTML renders the assessment as a standalone HTML page, with the headline
// tinted in the verdict color.
func HTML(res *scoring.Result) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var body bytes.Buffer
	if err := md.Convert([]byte(Markdown(res)), &body); err != nil {
		return "", fmt.Errorf("render report: %w", err)
	}

	var page strings.Builder
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>FairPayCheck Assessment</title>\n")
	fmt.Fprintf(&page, "<style>body{font-family:sans-serif;max-width:42rem;margin:2rem auto;padding:0 1rem}h1{color:%s}table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:0.3rem 0.6rem}</style>\n",
		gauge.VerdictColor(res.VerdictCode))
	page.WriteString("</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	return page.String(), nil
}
