package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fairpaycheck/fairpay/internal/gauge"
	"github.com/fairpaycheck/fairpay/internal/skills"
	"github.com/fairpaycheck/fairpay/internal/wizard"
)

var stepTitles = map[int]string{
	1: "About your role",
	2: "Experience & skills",
	3: "Compensation",
}

const ringWidth = 34

// View implements tea.Model.
func (m Model) View() string {
	if m.submitting {
		return m.viewLoading()
	}
	switch m.session.View {
	case wizard.ViewLanding:
		return m.viewLanding()
	case wizard.ViewForm:
		return m.viewForm()
	case wizard.ViewResults:
		return m.viewResults()
	}
	return ""
}

func (m Model) viewLanding() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + m.styles.Title.Render("FairPayCheck") + "\n")
	b.WriteString("  " + m.styles.Subtitle.Render("Are you being paid what you're worth?") + "\n\n")

	for _, line := range []string{
		"Answer a few questions about your role",
		"Get a fairness score against market data",
		"Free, anonymous, about two minutes",
	} {
		b.WriteString("  " + m.styles.Success.Render(m.styles.IconSuccess) + " " + m.styles.Label.Render(line) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + m.styles.Help.Render("enter check my pay  ·  ctrl+t theme  ·  q quit") + "\n")
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("  " + m.styles.Title.Render("FairPayCheck") + "\n")
	b.WriteString("  " + m.stepIndicator() + "\n\n")

	for _, name := range focusOrder[m.session.Step] {
		b.WriteString(m.renderField(name))
	}

	if m.notice != "" {
		b.WriteString("\n  " + m.styles.Error.Render(m.styles.IconError+" "+m.notice) + "\n")
	}

	b.WriteString("\n  " + m.styles.Help.Render(m.formHelp()) + "\n")
	return b.String()
}

func (m Model) stepIndicator() string {
	var parts []string
	for step := wizard.FirstStep; step <= wizard.LastStep; step++ {
		label := fmt.Sprintf("%s %d. %s", m.styles.IconStep, step, stepTitles[step])
		switch {
		case step < m.session.Step:
			parts = append(parts, m.styles.StepDone.Render(label))
		case step == m.session.Step:
			parts = append(parts, m.styles.StepActive.Render(label))
		default:
			parts = append(parts, m.styles.StepPending.Render(label))
		}
	}
	return strings.Join(parts, m.styles.Muted.Render("  "))
}

func (m Model) formHelp() string {
	action := "enter next"
	if m.session.Step == wizard.LastStep {
		action = "enter get my score"
	}
	return action + "  ·  tab/↑↓ fields  ·  ←/→ change  ·  esc back  ·  ctrl+c quit"
}

// renderField renders one focusable form element, label line included.
func (m Model) renderField(name string) string {
	order := focusOrder[m.session.Step]
	focused := order[m.focus] == name

	if name == focusChips {
		return m.renderChips(focused)
	}
	if m.isSelect(name) {
		return m.renderSelect(name, focused)
	}
	return m.renderInput(name, focused)
}

var fieldLabels = map[string]string{
	wizard.FieldJobTitle:        "Job title",
	wizard.FieldCountry:         "Country",
	wizard.FieldIndustry:        "Industry",
	wizard.FieldYearsExperience: "Years of experience",
	wizard.FieldCompanySize:     "Company size",
	wizard.FieldYearsInRole:     "Years in current role",
	wizard.FieldPromotion:       "Promotion in the last 2 years",
	wizard.FieldSkills:          "Your skills",
	wizard.FieldSalary:          "Annual base salary",
	wizard.FieldBonusEquity:     "Annual bonus + equity",
}

func (m Model) fieldLabel(name string, focused bool) string {
	label := fieldLabels[name]

	// Money labels show the selected country's currency.
	if name == wizard.FieldSalary || name == wizard.FieldBonusEquity {
		cur := m.cat.CurrencyFor(m.session.Field(wizard.FieldCountry))
		label = fmt.Sprintf("%s (%s %s)", label, cur.Code, cur.Symbol)
	}

	style := m.styles.Label
	if focused {
		style = m.styles.LabelFocus
	}
	out := style.Render(label)
	if m.session.HasError(name) {
		out += "  " + m.styles.FieldError.Render("required")
	}
	return out
}

func (m Model) renderInput(name string, focused bool) string {
	var b strings.Builder
	b.WriteString("  " + m.fieldLabel(name, focused) + "\n")
	b.WriteString("  " + m.inputs[name].View() + "\n")

	if name == wizard.FieldJobTitle && focused && m.sugsOpen {
		query := m.inputs[name].Value()
		for i, s := range m.sugs {
			before, matched, after := s.Span(query)
			line := m.styles.Suggestion.Render(before) +
				m.styles.SuggestionMatch.Render(matched) +
				m.styles.Suggestion.Render(after)
			if i == m.sugIdx {
				line = m.styles.SuggestionOn.Render(s.Text)
			}
			b.WriteString("    " + line + "\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}

func (m Model) renderSelect(name string, focused bool) string {
	label := m.selectLabel(name)
	if label == "" {
		label = "choose..."
	}

	value := m.styles.Select.Render(label)
	if focused {
		value = m.styles.SelectOn.Render("◀ " + label + " ▶")
	}

	return "  " + m.fieldLabel(name, focused) + "\n  " + value + "\n\n"
}

func (m Model) renderChips(focused bool) string {
	chips := m.chips()
	if len(chips) == 0 {
		return ""
	}

	style := m.styles.Label
	if focused {
		style = m.styles.LabelFocus
	}

	var b strings.Builder
	b.WriteString("  " + style.Render("Suggested skills") + "\n  ")

	field := m.session.Field(wizard.FieldSkills)
	for i, chip := range chips {
		text := chip
		chipStyle := m.styles.Chip
		if skills.Contains(field, chip) {
			text = m.styles.IconSuccess + " " + chip
			chipStyle = m.styles.ChipOn
		}
		if focused && i == m.chipIdx {
			chipStyle = m.styles.ChipFocus
			text = "[" + text + "]"
		}
		b.WriteString(chipStyle.Render(text))
		if i < len(chips)-1 {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n\n")
	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	msg := loadingMessages[m.ticks%len(loadingMessages)]
	pct := float64(m.ticks) / float64(len(loadingMessages))
	if pct > 1 {
		pct = 1
	}

	b.WriteString("\n")
	b.WriteString("  " + m.styles.Title.Render("FairPayCheck") + "\n\n")
	b.WriteString("  " + m.spin.View() + m.styles.Header.Render(msg) + "\n\n")
	b.WriteString("  " + m.bar.ViewAs(pct) + "\n\n")
	b.WriteString("  " + m.styles.Muted.Render("Crunching the numbers, hang tight.") + "\n")
	return b.String()
}

func (m Model) viewResults() string {
	if m.result == nil {
		return ""
	}
	res := m.result

	color := lipgloss.Color(gauge.VerdictColor(res.VerdictCode))
	scoreStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
	ringStyle := lipgloss.NewStyle().Foreground(color)

	filled := int(math.Round(m.frame.Fill * ringWidth))
	if filled > ringWidth {
		filled = ringWidth
	}
	ring := strings.Repeat("█", filled) + strings.Repeat("░", ringWidth-filled)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + m.styles.Header.Render("Your FairPay Score") + "\n\n")
	b.WriteString("  " + scoreStyle.Render(fmt.Sprintf("%d", m.frame.Score)) + m.styles.Muted.Render(" / 100") + "\n")
	b.WriteString("  " + ringStyle.Render(ring) + "\n\n")
	b.WriteString("  " + scoreStyle.Render(res.Verdict) + "\n")
	if res.Confidence != "" {
		b.WriteString("  " + m.styles.Muted.Render("Confidence: "+res.Confidence) + "\n")
	}

	if res.SalaryRange.FormattedMin != "" || res.SalaryRange.FormattedMax != "" {
		b.WriteString("\n  " + m.styles.Label.Render(fmt.Sprintf(
			"Estimated market range: %s – %s (%s)",
			res.SalaryRange.FormattedMin, res.SalaryRange.FormattedMax, res.SalaryRange.Currency,
		)) + "\n")
	}

	if len(res.Reasons) > 0 {
		b.WriteString("\n")
		for _, reason := range res.Reasons {
			b.WriteString("  " + m.styles.Accent.Render("•") + " " + m.styles.Label.Render(reason) + "\n")
		}
	}

	if res.Breakdown != nil {
		b.WriteString("\n  " + m.styles.Header.Render("Score breakdown") + "\n")
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
			b.WriteString("  " + m.styles.Muted.Render(fmt.Sprintf("%-12s", row.name)) +
				m.styles.Label.Render(fmt.Sprintf("%+6.1f", row.value)) + "\n")
		}
	}

	if m.savedTo != "" {
		b.WriteString("\n  " + m.styles.Success.Render(m.styles.IconSuccess+" Saved to "+m.savedTo) + "\n")
	}

	if res.DataUpdated != "" {
		b.WriteString("\n  " + m.styles.Muted.Render("Market data updated "+res.DataUpdated) + "\n")
	}
	if res.Disclaimer != "" {
		b.WriteString("  " + m.styles.Muted.Render(res.Disclaimer) + "\n")
	}

	b.WriteString("\n  " + m.styles.Help.Render("r start over  ·  ctrl+t theme  ·  q quit") + "\n")
	return b.String()
}
