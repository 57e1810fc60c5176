package outline

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Getting Started", "getting-started"},
		{"What is This?", "what-is-this-questionmark"},
		{"Do it now!", "do-it-now-bang"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Version 2.1 (beta)", "version-2-1-beta"},
		{"C'est la vie", "c-est-la-vie"},
		{"already-a-slug", "already-a-slug"},
		{"...", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	inputs := []string{
		"Getting Started",
		"What is This?",
		"Do it now!",
		"Version 2.1 (beta)",
		"...",
	}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
