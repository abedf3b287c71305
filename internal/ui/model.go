package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/fairpaycheck/fairpay/internal/catalog"
	"github.com/fairpaycheck/fairpay/internal/gauge"
	"github.com/fairpaycheck/fairpay/internal/match"
	"github.com/fairpaycheck/fairpay/internal/scoring"
	"github.com/fairpaycheck/fairpay/internal/skills"
	"github.com/fairpaycheck/fairpay/internal/theme"
	"github.com/fairpaycheck/fairpay/internal/wizard"
)

// LoadingFloor is the minimum time the loading screen stays visible. Fast
// responses are held back to here so the assessment does not flash past.
const LoadingFloor = 5 * time.Second

// carouselInterval is the cadence of the rotating loading message.
const carouselInterval = time.Second

// suggestionLimit caps the autocomplete dropdown.
const suggestionLimit = 8

var loadingMessages = []string{
	"Analyzing market data...",
	"Comparing salary benchmarks...",
	"Evaluating skill premiums...",
	"Calculating experience factors...",
	"Finalizing your assessment...",
}

// focusChips is the pseudo-field id for the suggested-skill chip row.
const focusChips = "chips"

// focusOrder lists the focusable elements of each step, in tab order.
var focusOrder = map[int][]string{
	1: {wizard.FieldJobTitle, wizard.FieldCountry, wizard.FieldIndustry},
	2: {
		wizard.FieldYearsExperience,
		wizard.FieldCompanySize,
		wizard.FieldYearsInRole,
		wizard.FieldPromotion,
		focusChips,
		wizard.FieldSkills,
	},
	3: {wizard.FieldSalary, wizard.FieldBonusEquity},
}

// Messages. Submission messages carry the sequence number of the attempt
// that scheduled them; stale sequences are dropped so an abandoned attempt
// cannot complete a later one.
type submitResultMsg struct {
	seq    int
	result *scoring.Result
	err    error
}

type floorDoneMsg struct{ seq int }

type carouselTickMsg struct{ seq int }

type frameTickMsg struct{ gen int }

type savedMsg struct {
	path string
	err  error
}

// Model is the Bubble Tea model for the assessment wizard.
type Model struct {
	machine wizard.Machine
	session wizard.Session
	cat     *catalog.Catalog
	client  *scoring.Client
	themes  *theme.Store
	logger  *zap.Logger
	styles  *Styles

	width  int
	height int

	inputs map[string]textinput.Model
	focus  int

	// autocomplete state for the job title field
	sugs     []match.Suggestion
	sugIdx   int
	sugsOpen bool

	chipIdx int

	// submission state; completion needs both the response and the floor
	submitting bool
	submitSeq  int
	floorDone  bool
	gotResult  bool
	result     *scoring.Result
	submitErr  error
	notice     string
	ticks      int
	spin       spinner.Model
	bar        progress.Model

	anim  gauge.Animator
	frame gauge.Frame

	savePath string
	savedTo  string
}

// NewModel builds the wizard model. savePath, when non-empty, is where a
// successful result is written as JSON.
func NewModel(cat *catalog.Catalog, client *scoring.Client, themes *theme.Store, logger *zap.Logger, savePath string) Model {
	dark := themes.Get() == theme.Dark

	m := Model{
		machine:  wizard.Machine{Roles: cat.Roles},
		session:  wizard.NewSession(),
		cat:      cat,
		client:   client,
		themes:   themes,
		logger:   logger,
		styles:   NewStyles(true, dark),
		bar:      progress.New(progress.WithDefaultGradient()),
		frame:    gauge.Empty(),
		sugIdx:   -1,
		savePath: savePath,
	}

	m.inputs = map[string]textinput.Model{
		wizard.FieldJobTitle:        newInput("e.g. Software Engineer", 80, nil),
		wizard.FieldYearsExperience: newInput("5", 2, digitsOnly),
		wizard.FieldYearsInRole:     newInput("optional", 2, digitsOnly),
		wizard.FieldSkills:          newInput("Python, SQL, ...", 200, nil),
		wizard.FieldSalary:          newInput("optional", 12, amountOnly),
		wizard.FieldBonusEquity:     newInput("optional", 12, amountOnly),
	}
	for name, in := range m.inputs {
		if v := m.session.Field(name); v != "" {
			in.SetValue(v)
			m.inputs[name] = in
		}
	}

	return m
}

func newInput(placeholder string, limit int, validate textinput.ValidateFunc) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 40
	in.Validate = validate
	return in
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

func amountOnly(s string) error {
	dot := false
	for _, r := range s {
		if r == '.' && !dot {
			dot = true
			continue
		}
		if r < '0' || r > '9' {
			return fmt.Errorf("amounts only")
		}
	}
	return nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		if w := msg.Width - 8; w > 0 && w < 40 {
			m.bar.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case carouselTickMsg:
		if msg.seq != m.submitSeq || !m.submitting {
			return m, nil
		}
		m.ticks++
		return m, carouselCmd(msg.seq)

	case floorDoneMsg:
		if msg.seq != m.submitSeq || !m.submitting {
			return m, nil
		}
		m.floorDone = true
		return m.maybeFinish()

	case submitResultMsg:
		if msg.seq != m.submitSeq || !m.submitting {
			return m, nil
		}
		m.gotResult = true
		m.result = msg.result
		m.submitErr = msg.err
		return m.maybeFinish()

	case frameTickMsg:
		f, ok := m.anim.FrameFor(msg.gen, time.Now())
		if !ok {
			return m, nil
		}
		m.frame = f
		if f.Done {
			return m, nil
		}
		return m, frameCmd(msg.gen)

	case savedMsg:
		if msg.err != nil {
			m.logger.Warn("could not save result", zap.String("path", msg.path), zap.Error(msg.err))
			return m, nil
		}
		m.savedTo = msg.path
		return m, nil
	}

	return m, nil
}

// maybeFinish completes a submission once both the response and the loading
// floor have arrived, in either order.
func (m Model) maybeFinish() (tea.Model, tea.Cmd) {
	if !m.floorDone || !m.gotResult {
		return m, nil
	}
	m.submitting = false

	if m.submitErr != nil || m.result == nil {
		m.logger.Warn("assessment failed", zap.Error(m.submitErr))
		m.result = nil
		m.notice = "Something went wrong. Please try again."
		return m, nil
	}

	m.notice = ""
	m.session = m.machine.ShowResults(m.session)
	m.frame = gauge.Empty()
	gen := m.anim.Start(m.result.Score, time.Now())

	cmds := []tea.Cmd{frameCmd(gen)}
	if m.savePath != "" {
		cmds = append(cmds, saveCmd(m.savePath, m.result))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		if next, err := m.themes.Toggle(); err == nil {
			m.styles = NewStyles(true, next == theme.Dark)
		} else {
			m.logger.Warn("could not persist theme", zap.Error(err))
		}
		return m, nil
	}

	// The loading screen ignores input; the attempt runs to completion.
	if m.submitting {
		return m, nil
	}

	switch m.session.View {
	case wizard.ViewLanding:
		return m.handleLandingKey(msg)
	case wizard.ViewForm:
		return m.handleFormKey(msg)
	case wizard.ViewResults:
		return m.handleResultsKey(msg)
	}
	return m, nil
}

func (m Model) handleLandingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.session = m.machine.Start(m.session)
		return m, m.setFocus(0)
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.session = m.machine.Reset(m.session)
		m.frame = m.anim.Reset()
		m.result = nil
		m.notice = ""
		m.savedTo = ""
		m.chipIdx = 0
		for name, in := range m.inputs {
			in.SetValue(m.session.Field(name))
			in.Blur()
			m.inputs[name] = in
		}
		return m, nil
	case "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	order := focusOrder[m.session.Step]
	cur := order[m.focus]

	if m.sugsOpen {
		switch msg.String() {
		case "down":
			if m.sugIdx < len(m.sugs)-1 {
				m.sugIdx++
			}
			return m, nil
		case "up":
			if m.sugIdx >= 0 {
				m.sugIdx--
			}
			return m, nil
		case "esc":
			m.closeSuggestions()
			return m, nil
		case "enter":
			if m.sugIdx >= 0 {
				picked := m.sugs[m.sugIdx].Text
				in := m.inputs[wizard.FieldJobTitle]
				in.SetValue(picked)
				in.CursorEnd()
				m.inputs[wizard.FieldJobTitle] = in
				m.session = m.session.Set(wizard.FieldJobTitle, picked)
				m.closeSuggestions()
				return m, nil
			}
			m.closeSuggestions()
			// fall through to the step advance below
		}
	}

	switch msg.String() {
	case "tab", "down":
		return m, m.setFocus(m.focus + 1)

	case "shift+tab", "up":
		return m, m.setFocus(m.focus - 1)

	case "enter":
		if cur == focusChips {
			m.toggleChip()
			return m, nil
		}
		return m.advance()

	case "esc":
		if m.session.Step > wizard.FirstStep {
			m.session = m.machine.GoTo(m.session, m.session.Step-1)
			return m, m.setFocus(0)
		}
		m.session.View = wizard.ViewLanding
		return m, nil

	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		if m.isSelect(cur) {
			m.cycleSelect(cur, delta)
			return m, nil
		}
		if cur == focusChips {
			m.moveChip(delta)
			return m, nil
		}

	case " ":
		if cur == focusChips {
			m.toggleChip()
			return m, nil
		}
	}

	if in, ok := m.inputs[cur]; ok {
		var cmd tea.Cmd
		in, cmd = in.Update(msg)
		m.inputs[cur] = in
		m.session = m.session.Set(cur, in.Value())
		if cur == wizard.FieldJobTitle {
			m.refreshSuggestions()
		}
		return m, cmd
	}
	return m, nil
}

// advance validates the current step and moves forward, or submits from the
// final step.
func (m Model) advance() (tea.Model, tea.Cmd) {
	if m.session.Step == wizard.LastStep {
		return m.submit()
	}

	before := m.session.Step
	m.session = m.machine.GoTo(m.session, m.session.Step+1)
	if m.session.Step == before {
		// validation failed; the offending fields are now flagged
		return m, nil
	}
	m.chipIdx = 0
	return m, m.setFocus(0)
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.submitSeq++
	m.submitting = true
	m.floorDone = false
	m.gotResult = false
	m.result = nil
	m.submitErr = nil
	m.notice = ""
	m.ticks = 0
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(m.styles.Accent))

	req := scoring.RequestFromFields(m.session.Fields)
	return m, tea.Batch(
		m.spin.Tick,
		submitCmd(m.client, req, m.submitSeq),
		floorCmd(m.submitSeq),
		carouselCmd(m.submitSeq),
	)
}

// setFocus moves focus to the element at idx in the current step's tab
// order, wrapping at either end.
func (m *Model) setFocus(idx int) tea.Cmd {
	order := focusOrder[m.session.Step]
	if len(order) == 0 {
		return nil
	}
	m.focus = ((idx % len(order)) + len(order)) % len(order)
	m.closeSuggestions()

	var cmd tea.Cmd
	target := order[m.focus]
	for name, in := range m.inputs {
		if name == target {
			cmd = in.Focus()
		} else {
			in.Blur()
		}
		m.inputs[name] = in
	}

	if target == focusChips {
		if chips := m.chips(); m.chipIdx >= len(chips) {
			m.chipIdx = 0
		}
	}
	return cmd
}

func (m *Model) closeSuggestions() {
	m.sugs = nil
	m.sugsOpen = false
	m.sugIdx = -1
}

func (m *Model) refreshSuggestions() {
	q := m.inputs[wizard.FieldJobTitle].Value()
	m.sugs = match.Match(m.cat.Titles, q, suggestionLimit)
	m.sugsOpen = len(m.sugs) > 0
	m.sugIdx = -1
}

func (m *Model) chips() []string {
	return skills.Suggested(m.session.Role, m.cat, skills.ChipLimit)
}

func (m *Model) moveChip(delta int) {
	chips := m.chips()
	if len(chips) == 0 {
		return
	}
	m.chipIdx = ((m.chipIdx+delta)%len(chips) + len(chips)) % len(chips)
}

// toggleChip flips the focused chip in and out of the skills field. Chip
// state lives in the field itself, so hand edits and chips stay in sync.
func (m *Model) toggleChip() {
	chips := m.chips()
	if len(chips) == 0 || m.chipIdx >= len(chips) {
		return
	}
	val := skills.Toggle(m.session.Field(wizard.FieldSkills), chips[m.chipIdx])
	m.session = m.session.Set(wizard.FieldSkills, val)

	in := m.inputs[wizard.FieldSkills]
	in.SetValue(val)
	in.CursorEnd()
	m.inputs[wizard.FieldSkills] = in
}

func (m *Model) isSelect(field string) bool {
	switch field {
	case wizard.FieldCountry, wizard.FieldIndustry, wizard.FieldCompanySize, wizard.FieldPromotion:
		return true
	}
	return false
}

// selectOptions returns the options for a select-style field.
func (m *Model) selectOptions(field string) []catalog.Option {
	switch field {
	case wizard.FieldCountry:
		opts := make([]catalog.Option, len(m.cat.Countries))
		for i, c := range m.cat.Countries {
			opts[i] = catalog.Option{Value: c.Value, Label: c.Label}
		}
		return opts
	case wizard.FieldIndustry:
		return m.cat.Industries
	case wizard.FieldCompanySize:
		return m.cat.CompanySizes
	case wizard.FieldPromotion:
		return []catalog.Option{
			{Value: "false", Label: "No"},
			{Value: "true", Label: "Yes"},
		}
	}
	return nil
}

func (m *Model) cycleSelect(field string, delta int) {
	opts := m.selectOptions(field)
	if len(opts) == 0 {
		return
	}
	idx := -1
	cur := m.session.Field(field)
	for i, o := range opts {
		if o.Value == cur {
			idx = i
			break
		}
	}
	idx += delta
	if idx < 0 {
		idx = len(opts) - 1
	}
	if idx >= len(opts) {
		idx = 0
	}
	m.session = m.session.Set(field, opts[idx].Value)
}

// selectLabel returns the display label for a select field's current value.
func (m *Model) selectLabel(field string) string {
	cur := m.session.Field(field)
	for _, o := range m.selectOptions(field) {
		if o.Value == cur {
			return o.Label
		}
	}
	return ""
}

// Commands.

func submitCmd(client *scoring.Client, req scoring.Request, seq int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		res, err := client.Calculate(ctx, req)
		return submitResultMsg{seq: seq, result: res, err: err}
	}
}

func floorCmd(seq int) tea.Cmd {
	return tea.Tick(LoadingFloor, func(time.Time) tea.Msg {
		return floorDoneMsg{seq: seq}
	})
}

func carouselCmd(seq int) tea.Cmd {
	return tea.Tick(carouselInterval, func(time.Time) tea.Msg {
		return carouselTickMsg{seq: seq}
	})
}

func frameCmd(gen int) tea.Cmd {
	return tea.Tick(gauge.FrameInterval, func(time.Time) tea.Msg {
		return frameTickMsg{gen: gen}
	})
}

func saveCmd(path string, res *scoring.Result) tea.Cmd {
	return func() tea.Msg {
		data, err := json.MarshalIndent(res, "", "  ")
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
		return savedMsg{path: path, err: err}
	}
}
