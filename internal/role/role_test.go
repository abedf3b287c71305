package role

import (
	"testing"

	"github.com/fairpaycheck/fairpay/internal/catalog"
)

func TestClassify(t *testing.T) {
	roles := []catalog.Role{
		{Name: "engineering", Keywords: []string{"engineer", "developer", "software"}},
		{Name: "design", Keywords: []string{"designer", "ux", "ui"}},
		{Name: "product", Keywords: []string{"product manager", "pm"}},
	}

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"blank title", "", "default"},
		{"whitespace title", "   ", "default"},
		{"no keyword hit", "Chief Happiness Officer", "default"},
		{"direct hit", "Software Engineer", "engineering"},
		{"case-insensitive", "SENIOR UX DESIGNER", "design"},
		{"scenario: senior backend developer", "Senior Backend Developer", "engineering"},
		// Substring, not whole-word: "ui" inside "Recruiter" would match if
		// design came first, but here nothing in engineering matches.
		{"substring match", "Recruiter", "design"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.title, roles); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestClassifyOrderIsTieBreak(t *testing.T) {
	// Both tables match "Developer Designer"; the earlier entry must win.
	forward := []catalog.Role{
		{Name: "engineering", Keywords: []string{"developer"}},
		{Name: "design", Keywords: []string{"designer"}},
	}
	reversed := []catalog.Role{
		{Name: "design", Keywords: []string{"designer"}},
		{Name: "engineering", Keywords: []string{"developer"}},
	}

	title := "Developer Designer"
	if got := Classify(title, forward); got != "engineering" {
		t.Errorf("forward order: got %q, want engineering", got)
	}
	if got := Classify(title, reversed); got != "design" {
		t.Errorf("reversed order: got %q, want design", got)
	}
}

func TestClassifyAgainstEmbeddedTable(t *testing.T) {
	c, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load() error: %v", err)
	}

	tests := []struct {
		title string
		want  string
	}{
		{"Senior Backend Developer", "engineering"},
		{"Registered Nurse", "healthcare"},
		{"Paralegal", "legal"},
		{"Growth Manager", "marketing"},
		{"Data Scientist", "data"},
	}
	for _, tt := range tests {
		if got := Classify(tt.title, c.Roles); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
