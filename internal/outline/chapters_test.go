package outline

import (
	"strings"
	"testing"

	"github.com/dgallion1/guideview/internal/markup"
)

func TestBuildChapters_Empty(t *testing.T) {
	out, err := BuildChapters(markup.NewRenderer(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected no index for empty entries, got %q", out)
	}
}

func TestBuildChapters_NestedList(t *testing.T) {
	entries := []Entry{
		{Level: 1, ID: "alpha", Label: "Alpha"},
		{Level: 2, ID: "alpha-beta", Label: "Beta"},
		{Level: 1, ID: "gamma", Label: "Gamma"},
	}
	out, err := BuildChapters(markup.NewRenderer(), entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`<div id="subCol">`,
		`<h3 class="chapter"><img src="images/chapters_icon.gif" alt="Chapter Icon" />Chapters</h3>`,
		`<ol class="chapters">`,
		`<a href="#alpha">Alpha</a>`,
		`<a href="#gamma">Gamma</a>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}

	// Level-2 entries nest as a bullet list under the preceding item.
	ulStart := strings.Index(out, "<ul>")
	betaLink := strings.Index(out, `<a href="#alpha-beta">Beta</a>`)
	ulEnd := strings.Index(out, "</ul>")
	if ulStart == -1 || betaLink == -1 || ulEnd == -1 {
		t.Fatalf("expected nested bullet list, got %q", out)
	}
	if !(ulStart < betaLink && betaLink < ulEnd) {
		t.Errorf("expected Beta inside the nested list, got %q", out)
	}
}
