package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fairpaycheck/fairpay/internal/catalog"
	"github.com/fairpaycheck/fairpay/internal/scoring"
	"github.com/fairpaycheck/fairpay/internal/theme"
	"github.com/fairpaycheck/fairpay/internal/wizard"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	store, err := theme.NewStore(t.TempDir())
	require.NoError(t, err)
	client := scoring.New("http://127.0.0.1:1", zap.NewNop())
	return NewModel(cat, client, store, zap.NewNop(), "")
}

// formModel returns a model on the form with step 1 and 2 filled in.
func formModel(t *testing.T) Model {
	t.Helper()
	m := testModel(t)
	m.session = m.machine.Start(m.session)
	for field, value := range map[string]string{
		wizard.FieldJobTitle:        "Backend Developer",
		wizard.FieldCountry:         "Germany",
		wizard.FieldIndustry:        "technology",
		wizard.FieldYearsExperience: "8",
		wizard.FieldCompanySize:     "medium",
		wizard.FieldSkills:          "Go, Kubernetes",
	} {
		m.session = m.session.Set(field, value)
	}
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestLandingEnterStartsForm(t *testing.T) {
	m := testModel(t)
	require.Equal(t, wizard.ViewLanding, m.session.View)

	next, _ := m.Update(key("enter"))
	m = next.(Model)

	assert.Equal(t, wizard.ViewForm, m.session.View)
	assert.Equal(t, wizard.FirstStep, m.session.Step)
}

func TestIncompleteStepBlocksAndFlags(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(key("enter")) // landing -> form
	m = next.(Model)

	next, _ = m.Update(key("enter")) // next with everything blank
	m = next.(Model)

	assert.Equal(t, wizard.FirstStep, m.session.Step)
	assert.True(t, m.session.HasError(wizard.FieldJobTitle))
	assert.True(t, m.session.HasError(wizard.FieldCountry))
	assert.True(t, m.session.HasError(wizard.FieldIndustry))
}

func TestTypingTitleOpensSuggestions(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(key("enter"))
	m = next.(Model)

	next, _ = m.Update(key("devel"))
	m = next.(Model)

	require.True(t, m.sugsOpen)
	require.NotEmpty(t, m.sugs)
	for _, s := range m.sugs {
		assert.Contains(t, strings.ToLower(s.Text), "devel")
	}
	assert.Equal(t, "devel", m.session.Field(wizard.FieldJobTitle))
}

func TestSuggestionPickFillsTitle(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(key("enter"))
	m = next.(Model)
	next, _ = m.Update(key("devel"))
	m = next.(Model)
	require.True(t, m.sugsOpen)
	want := m.sugs[0].Text

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	next, _ = m.Update(key("enter"))
	m = next.(Model)

	assert.False(t, m.sugsOpen)
	assert.Equal(t, want, m.session.Field(wizard.FieldJobTitle))
	// picking a suggestion must not also advance the step
	assert.Equal(t, wizard.FirstStep, m.session.Step)
}

func TestSelectCycling(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(key("enter"))
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab}) // job title -> country
	m = next.(Model)
	next, _ = m.Update(key("right"))
	m = next.(Model)

	assert.Equal(t, m.cat.Countries[0].Value, m.session.Field(wizard.FieldCountry))
}

func TestSubmitNeedsBothResultAndFloor(t *testing.T) {
	m := formModel(t)
	m.session = m.machine.GoTo(m.session, 2)
	m.session = m.machine.GoTo(m.session, 3)

	next, cmd := m.submit()
	m = next.(Model)
	require.True(t, m.submitting)
	require.NotNil(t, cmd)

	res := &scoring.Result{Score: 72, Verdict: "You're fairly paid", VerdictCode: scoring.VerdictFairlyPaid}
	next, _ = m.Update(submitResultMsg{seq: m.submitSeq, result: res})
	m = next.(Model)

	// response in hand, but the floor has not elapsed
	assert.True(t, m.submitting)
	assert.Equal(t, wizard.ViewForm, m.session.View)

	next, _ = m.Update(floorDoneMsg{seq: m.submitSeq})
	m = next.(Model)

	assert.False(t, m.submitting)
	assert.Equal(t, wizard.ViewResults, m.session.View)
	assert.True(t, m.anim.Active())
	assert.Zero(t, m.frame.Score)
}

func TestFailedSubmitKeepsFormIntact(t *testing.T) {
	m := formModel(t)
	m.session = m.machine.GoTo(m.session, 2)
	m.session = m.machine.GoTo(m.session, 3)

	next, _ := m.submit()
	m = next.(Model)
	next, _ = m.Update(floorDoneMsg{seq: m.submitSeq})
	m = next.(Model)
	next, _ = m.Update(submitResultMsg{seq: m.submitSeq, err: scoring.ErrService})
	m = next.(Model)

	assert.False(t, m.submitting)
	assert.Equal(t, wizard.ViewForm, m.session.View)
	assert.NotEmpty(t, m.notice)
	assert.Equal(t, "Backend Developer", m.session.Field(wizard.FieldJobTitle))
	assert.Equal(t, "Go, Kubernetes", m.session.Field(wizard.FieldSkills))
}

func TestStaleSubmissionIgnored(t *testing.T) {
	m := formModel(t)
	m.session = m.machine.GoTo(m.session, 2)
	m.session = m.machine.GoTo(m.session, 3)

	next, _ := m.submit()
	m = next.(Model)

	next, _ = m.Update(submitResultMsg{seq: m.submitSeq - 1, result: &scoring.Result{Score: 10}})
	m = next.(Model)
	next, _ = m.Update(floorDoneMsg{seq: m.submitSeq - 1})
	m = next.(Model)

	assert.True(t, m.submitting)
	assert.Nil(t, m.result)
}

func TestLoadingCarouselRotates(t *testing.T) {
	m := formModel(t)
	m.session = m.machine.GoTo(m.session, 2)
	m.session = m.machine.GoTo(m.session, 3)
	next, _ := m.submit()
	m = next.(Model)

	assert.Contains(t, m.View(), loadingMessages[0])

	next, _ = m.Update(carouselTickMsg{seq: m.submitSeq})
	m = next.(Model)
	assert.Contains(t, m.View(), loadingMessages[1])
}

func TestResetReturnsToLanding(t *testing.T) {
	m := formModel(t)
	m.result = &scoring.Result{Score: 72, VerdictCode: scoring.VerdictFairlyPaid}
	m.session = m.machine.ShowResults(m.session)

	next, _ := m.Update(key("r"))
	m = next.(Model)

	assert.Equal(t, wizard.ViewLanding, m.session.View)
	assert.Nil(t, m.result)
	assert.Empty(t, m.session.Field(wizard.FieldJobTitle))
	assert.Equal(t, "5", m.session.Field(wizard.FieldYearsExperience))
	assert.False(t, m.anim.Active())
}

func TestChipToggleSyncsSkillsField(t *testing.T) {
	m := formModel(t)
	m.session = m.machine.GoTo(m.session, 2)
	require.Equal(t, "engineering", m.session.Role)

	chips := m.chips()
	require.NotEmpty(t, chips)

	m.chipIdx = 0
	m.toggleChip()
	assert.Contains(t, m.session.Field(wizard.FieldSkills), chips[0])

	m.toggleChip()
	assert.NotContains(t, m.session.Field(wizard.FieldSkills), chips[0])
}

func TestSalaryLabelShowsCountryCurrency(t *testing.T) {
	m := formModel(t)
	m.session = m.machine.GoTo(m.session, 2)
	m.session = m.machine.GoTo(m.session, 3)

	view := m.View()
	assert.Contains(t, view, "EUR")
	assert.Contains(t, view, "€")
}
