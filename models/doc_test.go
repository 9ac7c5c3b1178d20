package models

import "testing"

func TestSlugify(t *testing.T) {
	testCases := []struct {
		in       string
		expected string
	}{
		{"Getting Started", "getting-started"},
		{"API Reference", "api-reference"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
		{"Already-Kebab", "already-kebab"},
		{"Mixed: Punctuation! (v2)", "mixed-punctuation-v2"},
		{"UPPER", "upper"},
		{"", ""},
		{"---", ""},
	}

	for _, tc := range testCases {
		if got := Slugify(tc.in); got != tc.expected {
			t.Errorf("Slugify(%q): expected %q, got %q", tc.in, tc.expected, got)
		}
	}
}
