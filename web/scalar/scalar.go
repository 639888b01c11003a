// Package scalar serves the Scalar API reference UI for the published document.
// The page is embedded at compile time and loads the renderer from its CDN.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/delta/pkg/routes"
)

// Path is where the UI is mounted.
const Path = "/scalar"

//go:embed index.html
var indexHTML string

var index = template.Must(template.New("index").Parse(indexHTML))

// Handler serves the UI page reading the document at specURL.
func Handler(title, specURL string) http.HandlerFunc {
	var buf bytes.Buffer
	index.Execute(&buf, struct{ Title, SpecURL string }{title, specURL})
	page := buf.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(page)
	}
}

// Routes returns the hidden route group serving the UI.
func Routes(title, specURL string) routes.Group {
	return routes.Group{
		Name:        "scalar",
		Description: "Interactive API reference",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: Handler(title, specURL), Hidden: true},
		},
	}
}
