// Package wizard holds the form state machine: which view is showing, which
// step is active, the raw field values, and the validation gating between
// steps. It is a pure value-semantics core with no UI dependencies so the
// transition rules are testable without a terminal.
package wizard

import (
	"strings"

	"github.com/fairpaycheck/fairpay/internal/catalog"
	"github.com/fairpaycheck/fairpay/internal/role"
)

// View is the mutually exclusive top-level screen.
type View int

const (
	// ViewLanding is the pre-wizard landing screen.
	ViewLanding View = iota
	// ViewForm shows the step form.
	ViewForm
	// ViewResults shows a completed assessment.
	ViewResults
)

// Step bounds. Steps are numbered 1..LastStep; the results screen is a View,
// not a step.
const (
	FirstStep = 1
	LastStep  = 3
)

// Form field names, matching the scoring API's payload keys.
const (
	FieldJobTitle        = "job_title"
	FieldCountry         = "country"
	FieldIndustry        = "industry"
	FieldYearsExperience = "years_experience"
	FieldCompanySize     = "company_size"
	FieldSalary          = "salary"
	FieldBonusEquity     = "bonus_equity"
	FieldSkills          = "skills"
	FieldYearsInRole     = "years_in_role"
	FieldPromotion       = "promotion_received"
)

// requiredByStep lists the fields that must be non-blank before leaving a
// step in the forward direction. The final step has no required fields:
// salary is optional and the API degrades confidence without it.
var requiredByStep = map[int][]string{
	1: {FieldJobTitle, FieldCountry, FieldIndustry},
	2: {FieldYearsExperience, FieldCompanySize},
	3: nil,
}

// Required returns the required field names for a step.
func Required(step int) []string {
	return requiredByStep[step]
}

// Session is the live wizard state. Methods return updated copies; maps are
// cloned before mutation so old values stay valid.
type Session struct {
	View   View
	Step   int
	Fields map[string]string
	// Errors holds one-shot invalid-field flags, set by a failed forward
	// transition and cleared by the next edit to that field.
	Errors map[string]bool
	// Role is the role category detected from the title, recomputed on
	// entry to step 2.
	Role string
}

// NewSession returns the initial state: landing view, step 1, experience
// prefilled at a sensible midpoint so the field is never blank.
func NewSession() Session {
	return Session{
		View: ViewLanding,
		Step: FirstStep,
		Fields: map[string]string{
			FieldYearsExperience: "5",
			FieldPromotion:       "false",
		},
		Errors: map[string]bool{},
		Role:   catalog.DefaultRole,
	}
}

// Field returns a field's raw value.
func (s Session) Field(name string) string {
	return s.Fields[name]
}

// HasError reports whether a field is flagged invalid.
func (s Session) HasError(name string) bool {
	return s.Errors[name]
}

// Set writes a field value and clears its one-shot error flag.
func (s Session) Set(name, value string) Session {
	s.Fields = cloneStr(s.Fields)
	s.Fields[name] = value
	if s.Errors[name] {
		s.Errors = cloneBool(s.Errors)
		delete(s.Errors, name)
	}
	return s
}

// Machine applies transitions against a fixed role table.
type Machine struct {
	Roles []catalog.Role
}

// Start leaves the landing screen for step 1.
func (m Machine) Start(s Session) Session {
	s.View = ViewForm
	s.Step = FirstStep
	return s
}

// GoTo moves to the target step. Out-of-range targets are ignored. Forward
// moves first validate the departing step; on failure the step does not
// change and the offending fields are flagged. Backward moves never
// validate. Entering step 2 re-detects the role from the title so the skill
// chips follow whatever the user typed.
func (m Machine) GoTo(s Session, target int) Session {
	if target < FirstStep || target > LastStep {
		return s
	}
	if target > s.Step {
		var ok bool
		s, ok = m.Validate(s, s.Step)
		if !ok {
			return s
		}
	}

	s.Step = target
	if target == 2 {
		s.Role = role.Classify(s.Field(FieldJobTitle), m.Roles)
	}
	return s
}

// Validate checks a step's required fields, flagging any that are blank
// after trimming. It returns the updated session and whether the step is
// complete.
func (m Machine) Validate(s Session, step int) (Session, bool) {
	var invalid []string
	for _, name := range requiredByStep[step] {
		if strings.TrimSpace(s.Field(name)) == "" {
			invalid = append(invalid, name)
		}
	}
	if len(invalid) == 0 {
		return s, true
	}

	s.Errors = cloneBool(s.Errors)
	for _, name := range invalid {
		s.Errors[name] = true
	}
	return s, false
}

// ShowResults switches to the results view after a successful submission.
func (m Machine) ShowResults(s Session) Session {
	s.View = ViewResults
	return s
}

// Reset discards the session and returns to the landing screen.
func (m Machine) Reset(Session) Session {
	return NewSession()
}

func cloneStr(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneBool(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
