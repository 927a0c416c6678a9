// Package swaggerkit provides helpers to mount Swagger UI and the OpenAPI document
package swaggerkit

import (
	"net/http"

	phttp "tgage/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI is served
const DocsPath = "/api/docs"

// Mount the Swagger UI and JSON document if enabled
func Mount(r phttp.Router, enabled bool, o Options) {
	if !enabled {
		return
	}
	if o.BaseURL == "" {
		o.BaseURL = "/api/v1"
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON(o))
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}
