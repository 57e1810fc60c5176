package outline

import (
	"fmt"
	"strings"
)

// BuildChapters emits the chapters index fragment for the collected
// entries, or "" when there are none. The entries are projected to a
// small markdown list (level 1 as an auto-numbered ordered item, level
// 2 as an indented bullet under it), pushed back through the same
// markdown renderer, and wrapped in the fixed index shell.
func BuildChapters(r Renderer, entries []Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	var md strings.Builder
	for _, e := range entries {
		if e.Level == 1 {
			fmt.Fprintf(&md, "1. [%s](#%s)\n", e.Label, e.ID)
		} else {
			fmt.Fprintf(&md, "    * [%s](#%s)\n", e.Label, e.ID)
		}
	}

	fragment, err := r.Render(md.String())
	if err != nil {
		return "", fmt.Errorf("render chapters list: %w", err)
	}
	fragment = strings.Replace(fragment, "<ol>", `<ol class="chapters">`, 1)

	var out strings.Builder
	out.WriteString("<div id=\"subCol\">\n")
	out.WriteString(`<h3 class="chapter"><img src="images/chapters_icon.gif" alt="Chapter Icon" />Chapters</h3>`)
	out.WriteString("\n")
	out.WriteString(fragment)
	out.WriteString("</div>\n")
	return out.String(), nil
}
