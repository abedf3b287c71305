package scoring

import (
	"strconv"
	"strings"

	"github.com/fairpaycheck/fairpay/internal/wizard"
)

// Request is the JSON payload for the calculate endpoint. Numeric inputs are
// sent as numbers and the promotion choice as a real boolean; optional
// numerics are omitted entirely when blank rather than sent as empty
// strings.
type Request struct {
	JobTitle          string   `json:"job_title"`
	Country           string   `json:"country"`
	Industry          string   `json:"industry"`
	YearsExperience   int      `json:"years_experience"`
	CompanySize       string   `json:"company_size"`
	Skills            string   `json:"skills"`
	Salary            *float64 `json:"salary,omitempty"`
	BonusEquity       *float64 `json:"bonus_equity,omitempty"`
	YearsInRole       *int     `json:"years_in_role,omitempty"`
	PromotionReceived bool     `json:"promotion_received"`
}

// RequestFromFields converts raw wizard field values into a typed Request.
// Unparseable numerics degrade to zero/absent instead of failing; the form
// widgets only produce digits, so this is belt and braces for direct edits.
func RequestFromFields(fields map[string]string) Request {
	req := Request{
		JobTitle:          strings.TrimSpace(fields[wizard.FieldJobTitle]),
		Country:           fields[wizard.FieldCountry],
		Industry:          fields[wizard.FieldIndustry],
		CompanySize:       fields[wizard.FieldCompanySize],
		Skills:            strings.TrimSpace(fields[wizard.FieldSkills]),
		PromotionReceived: fields[wizard.FieldPromotion] == "true",
	}

	if n, err := strconv.Atoi(strings.TrimSpace(fields[wizard.FieldYearsExperience])); err == nil {
		req.YearsExperience = n
	}
	if f, ok := parseOptionalFloat(fields[wizard.FieldSalary]); ok {
		req.Salary = &f
	}
	if f, ok := parseOptionalFloat(fields[wizard.FieldBonusEquity]); ok {
		req.BonusEquity = &f
	}
	if n, err := strconv.Atoi(strings.TrimSpace(fields[wizard.FieldYearsInRole])); err == nil {
		req.YearsInRole = &n
	}

	return req
}

func parseOptionalFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
