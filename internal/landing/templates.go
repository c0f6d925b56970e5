package landing

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

// PageTemplate is the name to pass to gin's c.HTML.
const PageTemplate = "page.html"

//go:embed templates/*.html
var templatesFS embed.FS

var funcs = template.FuncMap{
	"price": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"date":  func(t time.Time) string { return t.Format("02.01.2006") },
}

// Templates parses the embedded landing templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html"))
}
