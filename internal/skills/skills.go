// Package skills manages the suggested-skill chips and the comma-delimited
// skills field they stay synchronized with.
package skills

import (
	"strings"

	"github.com/fairpaycheck/fairpay/internal/catalog"
)

// ChipLimit caps how many suggestion chips are shown for a role.
const ChipLimit = 12

// Suggested returns up to limit suggested skills for a role, using the
// catalog's fallback chain (role list, then default list, then nothing).
func Suggested(role string, cat *catalog.Catalog, limit int) []string {
	list := cat.SkillsFor(role)
	if len(list) > limit {
		list = list[:limit]
	}
	return list
}

// Parse splits a comma-delimited skills field into trimmed, non-empty
// entries, preserving order and casing.
func Parse(field string) []string {
	var out []string
	for _, part := range strings.Split(field, ",") {
		if s := strings.TrimSpace(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Contains reports whether skill is already in the field, compared
// case-insensitively. Chip selection state is always recomputed through this
// from the live field value, never cached, because the field can also be
// edited directly.
func Contains(field, skill string) bool {
	for _, entry := range Parse(field) {
		if strings.EqualFold(entry, skill) {
			return true
		}
	}
	return false
}

// Toggle removes skill from the field if present (case-insensitive),
// otherwise appends it with the caller's casing. Order of the surviving
// entries is preserved. Returns the new field value.
func Toggle(field, skill string) string {
	current := Parse(field)

	if Contains(field, skill) {
		kept := current[:0]
		for _, entry := range current {
			if !strings.EqualFold(entry, skill) {
				kept = append(kept, entry)
			}
		}
		return strings.Join(kept, ", ")
	}

	current = append(current, skill)
	return strings.Join(current, ", ")
}
