package skills

import (
	"reflect"
	"testing"

	"github.com/fairpaycheck/fairpay/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Roles: []catalog.Role{
			{Name: "engineering", Skills: []string{
				"Python", "JavaScript", "TypeScript", "React", "Node.js", "AWS",
				"Docker", "Kubernetes", "SQL", "Git", "System Design",
				"Microservices", "REST APIs", "CI/CD",
			}},
			{Name: "default", Skills: []string{"Excel", "Communication"}},
		},
	}
}

func TestSuggested(t *testing.T) {
	cat := testCatalog()

	got := Suggested("engineering", cat, ChipLimit)
	if len(got) != ChipLimit {
		t.Errorf("got %d suggestions, want %d", len(got), ChipLimit)
	}
	if got[0] != "Python" || got[11] != "Microservices" {
		t.Errorf("suggestions out of order: first=%q last=%q", got[0], got[11])
	}

	// Unknown role falls back to the default list.
	if got := Suggested("piracy", cat, ChipLimit); !reflect.DeepEqual(got, []string{"Excel", "Communication"}) {
		t.Errorf("fallback suggestions = %v", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "Python", []string{"Python"}},
		{"messy spacing", " Python ,  SQL,React ", []string{"Python", "SQL", "React"}},
		{"empty entries dropped", "Python,,  ,SQL", []string{"Python", "SQL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.field); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.field, got, tt.want)
			}
		})
	}
}

func TestToggleAdd(t *testing.T) {
	got := Toggle("Python, SQL", "React")
	if got != "Python, SQL, React" {
		t.Errorf("Toggle add = %q", got)
	}

	if got := Toggle("", "Python"); got != "Python" {
		t.Errorf("Toggle into empty field = %q", got)
	}
}

func TestToggleRemoveCaseInsensitive(t *testing.T) {
	got := Toggle("Python, SQL, React", "sql")
	if got != "Python, React" {
		t.Errorf("Toggle remove = %q", got)
	}
}

func TestToggleKeepsCallerCasing(t *testing.T) {
	// A newly added skill carries the caller's casing, not any prior casing.
	field := Toggle("", "postgresql")
	if field != "postgresql" {
		t.Fatalf("field = %q", field)
	}
	field = Toggle(field, "PostgreSQL") // removes, case-insensitive
	field = Toggle(field, "PostgreSQL")
	if field != "PostgreSQL" {
		t.Errorf("re-added skill = %q, want caller casing", field)
	}
}

func TestToggleTwiceRestoresMembership(t *testing.T) {
	start := "Python, SQL"
	once := Toggle(start, "React")
	twice := Toggle(once, "React")

	if !reflect.DeepEqual(Parse(twice), Parse(start)) {
		t.Errorf("double toggle changed membership: %q -> %q", start, twice)
	}
}

func TestContains(t *testing.T) {
	field := "Python, Node.js"
	if !Contains(field, "python") {
		t.Error("Contains should be case-insensitive")
	}
	if Contains(field, "Node") {
		t.Error("Contains must match whole entries, not prefixes")
	}
}
