package markup

// BrushFor maps a fenced code block's declared language to the brush
// label the front-end highlighter understands. Unknown languages fall
// back to plain.
func BrushFor(lang string) string {
	switch lang {
	case "ruby", "sql", "plain":
		return lang
	case "erb":
		return "ruby; html-script: true"
	case "html":
		return "xml"
	default:
		return "plain"
	}
}
