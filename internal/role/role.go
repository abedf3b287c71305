// Package role classifies free-text job titles into role categories using
// keyword tables.
package role

import (
	"strings"

	"github.com/fairpaycheck/fairpay/internal/catalog"
)

// Classify maps a job title to a role name by scanning the supplied role
// entries in order. Within a role, keywords are tried in order; the first
// role with a keyword appearing as a case-insensitive substring of the title
// wins. Table order is therefore the tie-break between roles whose keyword
// sets both match, and must stay stable for output stability.
//
// Matching is plain substring containment, not whole-word: "pm" matches
// "development", which is why the table puts broader roles first.
// Blank titles classify as the default role.
func Classify(title string, roles []catalog.Role) string {
	title = strings.ToLower(strings.TrimSpace(title))
	if title == "" {
		return catalog.DefaultRole
	}

	for _, entry := range roles {
		for _, keyword := range entry.Keywords {
			if strings.Contains(title, strings.ToLower(keyword)) {
				return entry.Name
			}
		}
	}
	return catalog.DefaultRole
}
