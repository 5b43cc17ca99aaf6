package html

import (
	"embed"
	"encoding/json"
	"fmt"
	"html"
	"html/template"
	"io"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"

	"sculpturesly.GO/core/format"
	"sculpturesly.GO/seo"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewRenderer parses the embedded page templates.
func NewRenderer() *Template {
	return &Template{
		Templates: template.Must(template.New("").Funcs(TemplateFuncs()).ParseFS(templatesFS, "templates/*.html")),
	}
}

// TemplateFuncs returns the helpers available inside page templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"currency": format.FormatCurrency,
		"attr":     format.FormatAttributeValue,
		"metaTags": renderMetaTags,
		"jsonld":   renderJSONLD,
		"pixel":    renderPixel,
		"add":      func(a, b int) int { return a + b },
		"sub":      func(a, b int) int { return a - b },
	}
}

// renderMetaTags turns the resolved tag map into head markup. og: and
// product: tags use the property attribute, everything else uses name.
func renderMetaTags(m seo.MetaTags) template.HTML {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		v := html.EscapeString(m[k])
		switch {
		case k == "title":
			fmt.Fprintf(&b, "<title>%s</title>\n", v)
		case k == "canonical":
			fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\">\n", v)
		case strings.HasPrefix(k, "og:") || strings.HasPrefix(k, "product:"):
			fmt.Fprintf(&b, "<meta property=\"%s\" content=\"%s\">\n", k, v)
		default:
			fmt.Fprintf(&b, "<meta name=\"%s\" content=\"%s\">\n", k, v)
		}
	}
	return template.HTML(b.String())
}

func renderJSONLD(v interface{}) template.HTML {
	if v == nil {
		return ""
	}
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	// json.Marshal escapes < and > so the payload is safe inside a script tag.
	return template.HTML(`<script type="application/ld+json">` + string(data) + `</script>`)
}

func renderPixel(v interface{}) template.JS {
	data, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return template.JS(data)
}
