package catalog

// Catalog holds the static lookup tables the wizard runs against: supported
// countries with their display currencies, the ordered role table used for
// title classification and skill suggestions, and the job title corpus for
// autocomplete.
type Catalog struct {
	Countries    []Country
	Industries   []Option
	CompanySizes []Option
	Roles        []Role
	Titles       []string
}

// Country is a selectable country and the currency its salaries display in.
type Country struct {
	Value    string   `yaml:"value"`
	Label    string   `yaml:"label"`
	Currency Currency `yaml:"currency"`
}

// Currency describes how amounts are presented for a country.
type Currency struct {
	Code   string `yaml:"code"`
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

// Option is a generic value/label pair for select-style fields.
type Option struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Role ties a role name to its detection keywords and suggested skills.
// Roles are kept as an ordered slice, not a map: classification is
// first-match-wins and the table order is the tie-break.
type Role struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Skills   []string `yaml:"skills"`
}

// DefaultRole is the fallback role name for unclassifiable titles.
const DefaultRole = "default"

// DefaultCountry is the fallback for currency lookups on unknown countries.
const DefaultCountry = "USA"

// CurrencyFor returns the display currency for a country, falling back to
// the default country's currency when the country is not in the table.
func (c *Catalog) CurrencyFor(country string) Currency {
	var fallback Currency
	for _, entry := range c.Countries {
		if entry.Value == country {
			return entry.Currency
		}
		if entry.Value == DefaultCountry {
			fallback = entry.Currency
		}
	}
	return fallback
}

// Role looks up a role entry by name. Returns nil if absent.
func (c *Catalog) Role(name string) *Role {
	for i := range c.Roles {
		if c.Roles[i].Name == name {
			return &c.Roles[i]
		}
	}
	return nil
}

// SkillsFor returns the suggested skill list for a role, falling back to the
// default role's list, or nil when neither exists.
func (c *Catalog) SkillsFor(role string) []string {
	if entry := c.Role(role); entry != nil && len(entry.Skills) > 0 {
		return entry.Skills
	}
	if entry := c.Role(DefaultRole); entry != nil {
		return entry.Skills
	}
	return nil
}
