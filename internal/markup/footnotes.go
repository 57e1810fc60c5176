package markup

import "regexp"

// Footnote markup survives the markdown pass as raw HTML and is
// rewritten afterwards. The rules run in order, first match wins per
// occurrence:
//
//	[<sup>N]:</sup> text   -> footnote paragraph with a back link
//	[<sup>N]</sup>         -> superscript reference linking to the note
//
// The definition rule runs first; its ":" discriminator keeps the
// reference rule from ever touching a definition.
var (
	footnoteDefPattern = regexp.MustCompile(`(?s)<p>\[<sup>(\d+)\]:</sup>\s*(.*?)</p>`)
	footnoteRefPattern = regexp.MustCompile(`\[<sup>(\d+)\]</sup>`)
)

func expandFootnotes(html string) string {
	html = footnoteDefPattern.ReplaceAllString(html,
		`<p class="footnote" id="footnote-$1"><a href="#footnote-ref-$1"><sup>$1</sup></a> $2</p>`)
	html = footnoteRefPattern.ReplaceAllString(html,
		`<sup class="footnote" id="footnote-ref-$1"><a href="#footnote-$1">$1</a></sup>`)
	return html
}
