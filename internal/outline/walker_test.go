package outline

import (
	"strings"
	"testing"
)

func TestWalker_NumbersAndAnchors(t *testing.T) {
	body := "<h3>Alpha</h3>\n<p>text</p>\n<h4>Beta</h4>\n<p>text</p>\n<h4>Gamma</h4>\n<p>text</p>"
	out, entries, err := NewWalker().Walk(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`<h3 id="alpha">1 Alpha</h3>`,
		`<h4 id="beta">1.1 Beta</h4>`,
		`<h4 id="gamma">1.2 Gamma</h4>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 index entries, got %d", len(entries))
	}
	if entries[0].Level != 1 || entries[0].Label != "Alpha" || entries[0].ID != "alpha" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Level != 2 || entries[1].Label != "Beta" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}
}

func TestWalker_DuplicateSiblingsRekeyed(t *testing.T) {
	body := "<h3>Alpha</h3>\n<p>text</p>\n<h4>Beta</h4>\n<p>text</p>\n<h4>Beta</h4>\n<p>text</p>"
	out, entries, err := NewWalker().Walk(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The first Beta loses its short id once the second shows up.
	if strings.Contains(out, `id="beta"`) {
		t.Errorf("expected no heading left with the unqualified id, got %q", out)
	}
	if !strings.Contains(out, `<h4 id="alpha-beta">1.1 Beta</h4>`) {
		t.Errorf("expected first Beta re-keyed under its parent, got %q", out)
	}
	if !strings.Contains(out, "1.2 Beta") {
		t.Errorf("expected second Beta numbered 1.2, got %q", out)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 index entries, got %d", len(entries))
	}
	// Index entries must carry the final ids, not the pre-re-key ones.
	if entries[1].ID != "alpha-beta" {
		t.Errorf("expected re-keyed id in index, got %q", entries[1].ID)
	}
	if entries[2].ID == entries[1].ID {
		t.Error("expected the two Beta entries to reference distinct anchors")
	}
	if !strings.HasPrefix(entries[2].ID, "alpha-beta") {
		t.Errorf("expected parent-qualified id for second Beta, got %q", entries[2].ID)
	}
}

func TestWalker_IndexOnlyTwoShallowestDepths(t *testing.T) {
	body := "<h3>A</h3><h4>B</h4><h5>C</h5><h6>D</h6><h4>E</h4>"
	_, entries, err := NewWalker().Walk(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 index entries, got %d", len(entries))
	}
	wantLevels := []int{1, 2, 2}
	wantLabels := []string{"A", "B", "E"}
	for i, e := range entries {
		if e.Level != wantLevels[i] || e.Label != wantLabels[i] {
			t.Errorf("entry %d: got %+v, want level %d label %q", i, e, wantLevels[i], wantLabels[i])
		}
	}
}

func TestWalker_DeepHeadingWithoutAncestors(t *testing.T) {
	out, entries, err := NewWalker().Walk("<h5>Lonely</h5>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Hierarchy is just the node itself: single-component number,
	// unqualified id, and no index entry for depth 3.
	if !strings.Contains(out, `<h5 id="lonely">1 Lonely</h5>`) {
		t.Errorf("expected degenerate numbering, got %q", out)
	}
	if len(entries) != 0 {
		t.Errorf("expected no index entries, got %+v", entries)
	}
}

func TestWalker_DeeperCountersResetAcrossSections(t *testing.T) {
	body := "<h3>A</h3><h4>B</h4><h4>C</h4><h3>D</h3><h4>E</h4>"
	out, _, err := NewWalker().Walk(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"1 A", "1.1 B", "1.2 C", "2 D", "2.1 E"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestWalker_IgnoresNonHeadingsAndNestedHeadings(t *testing.T) {
	body := `<h2>Page Title</h2><p>intro</p><div><h3>Nested</h3></div><h3>Real</h3>`
	out, entries, err := NewWalker().Walk(body)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "<h2>Page Title</h2>") {
		t.Errorf("h2 must pass through untouched, got %q", out)
	}
	if !strings.Contains(out, "<div><h3>Nested</h3></div>") {
		t.Errorf("nested headings are not sections, got %q", out)
	}
	if !strings.Contains(out, `<h3 id="real">1 Real</h3>`) {
		t.Errorf("expected direct-child heading processed, got %q", out)
	}
	if len(entries) != 1 || entries[0].Label != "Real" {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestWalker_NoHeadings(t *testing.T) {
	out, entries, err := NewWalker().Walk("<p>just text</p>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "<p>just text</p>" {
		t.Errorf("expected body unchanged, got %q", out)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries, got %+v", entries)
	}
}
