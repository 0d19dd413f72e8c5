// Package widget ships the embeddable fire widget script with the binary.
package widget

import (
	_ "embed"
	"net/http"
)

//go:embed fire-widget.js
var script []byte

// ServeScript serves the widget with a long client cache; the script itself
// polls the data endpoint, so staleness of the asset is harmless.
func ServeScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(script)
}
