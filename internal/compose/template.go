package compose

import (
	"html/template"
	"io"
)

// pageTemplate is the fixed hosting shell. The fragments are already
// rendered HTML, so they go in unescaped.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8" />
<title>{{.Title}}</title>
<link rel="stylesheet" href="stylesheets/main.css" />
</head>
<body class="guide">
<header id="page_header">
{{.Header}}
</header>
<div id="wrapper">
{{.Index}}
<main id="mainCol">
{{.Body}}
</main>
</div>
</body>
</html>
`))

// WriteHTML renders the full hosting page for this Page.
func (p *Page) WriteHTML(w io.Writer) error {
	return pageTemplate.Execute(w, struct {
		Title  string
		Header template.HTML
		Index  template.HTML
		Body   template.HTML
	}{
		Title:  p.Title,
		Header: template.HTML(p.HeaderHTML),
		Index:  template.HTML(p.IndexHTML),
		Body:   template.HTML(p.BodyHTML),
	})
}
