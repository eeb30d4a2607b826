// Package swaggerkit serves the OpenAPI document and Swagger UI
package swaggerkit

import (
	"net/http"

	phttp "github-activity/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// DocsPath is where the UI lives; the document is DocsPath + "/doc.json"
const DocsPath = "/api/docs"

// Mount registers the UI and the document when enabled
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(DocsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, DocsPath+"/", http.StatusPermanentRedirect)
	})
	r.Get(DocsPath+"/doc.json", serveDocJSON())
	r.Handle(DocsPath+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("github-activity"),
		httpSwagger.URL(DocsPath+"/doc.json"),
	))
}

// SetVersion is a SpecMutator that stamps info.version
func SetVersion(v string) SpecMutator {
	return func(spec map[string]any) {
		if info, ok := spec["info"].(map[string]any); ok {
			info["version"] = v
		}
	}
}
