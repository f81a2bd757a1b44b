// Package swaggerkit serves the embedded OpenAPI document and the Swagger UI
package swaggerkit

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	phttp "listingseo/internal/platform/net/http"
)

// Options tunes Mount
type Options struct {
	Enabled bool

	// Server is the base URL operations are relative to, "/api/v1" when empty
	Server string

	// TitleSuffix is appended to the document title, e.g. the environment name
	TitleSuffix string
}

// Mount the Swagger UI and JSON document if enabled
func Mount(r phttp.Router, o Options) {
	if !o.Enabled {
		return
	}
	if o.Server == "" {
		o.Server = "/api/v1"
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(o))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
