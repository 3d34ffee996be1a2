// Package pages renders the desk's HTML. Pages are templ components backed
// by embedded html/template files.
package pages

import (
	"context"
	"embed"
	"html/template"
	"io"

	"case_desk_app_go/screens"

	"github.com/a-h/templ"
)

//go:embed html/*.html
var files embed.FS

var funcs = template.FuncMap{
	"badge": screens.Badge,
	"noticeClass": func(level screens.Level) string {
		switch level {
		case screens.LevelError:
			return "bg-red-50 border-red-400 text-red-700"
		case screens.LevelSuccess:
			return "bg-green-50 border-green-400 text-green-700"
		default:
			return "bg-blue-50 border-blue-400 text-blue-700"
		}
	},
	"badgeClass": badgeClass,
}

var (
	listTemplate      = parsePage("html/list.html")
	dashboardTemplate = parsePage("html/dashboard.html")
)

func parsePage(page string) *template.Template {
	return template.Must(template.New("layout.html").Funcs(funcs).ParseFS(files, "html/layout.html", page))
}

func render(t *template.Template, data interface{}) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, "layout", data)
	})
}
