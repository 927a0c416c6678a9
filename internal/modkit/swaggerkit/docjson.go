package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"tgage/internal/platform/logger"

	docs "tgage/internal/services/api/docs"
)

// SpecMutator lets modules tweak the parsed OpenAPI document before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// docReader is a seam so tests can feed a broken document
var docReader = func() string { return docs.SwaggerInfo.ReadDoc() }

// Register adds a spec mutator
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Options tune the served document
type Options struct {
	// BaseURL becomes the default server when the document has none
	BaseURL string
	// TitleSuffix is appended to info.title, e.g. an environment name
	TitleSuffix string
}

// serveDocJSON parses the document once per request so mutators always see a fresh copy
func serveDocJSON(o Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var spec map[string]any
		if err := json.Unmarshal([]byte(docReader()), &spec); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("swagger document does not parse")
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		ensureServers(spec, o.BaseURL)
		if o.TitleSuffix != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + o.TitleSuffix
				}
			}
		}

		ensureSchema(spec, "ErrorResponse", errorResponseSchema)
		ensureSchema(spec, "Failure", failureSchema)
		addDefaultResponse(spec, "400", badRequest)
		addDefaultResponse(spec, "500", internalError)

		mu.RLock()
		for _, m := range mutators {
			m(spec)
		}
		mu.RUnlock()

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers pins the document to OAS 3.0.3 and adds a default server
// swagger ui in http-swagger cannot render 3.1 yet
func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["swagger"]; ok {
		delete(spec, "swagger")
	}
	if v, ok := spec["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		spec["openapi"] = "3.0.3"
	}
	if url == "" {
		return
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": url}}
	}
}

func schemas(spec map[string]any) map[string]any {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	s, ok := comps["schemas"].(map[string]any)
	if !ok {
		s = map[string]any{}
		comps["schemas"] = s
	}
	return s
}

// ensureSchema adds a component schema unless the document already defines it
func ensureSchema(spec map[string]any, name string, build func() map[string]any) {
	s := schemas(spec)
	if _, ok := s[name]; !ok {
		s[name] = build()
	}
}

// errorResponseSchema mirrors the envelope written for failures under /api/v1
func errorResponseSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "Standard error envelope",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

// failureSchema is the flat body of the /api/user lookup
func failureSchema() map[string]any {
	return map[string]any{
		"type":        "object",
		"description": "Flat lookup failure",
		"properties": map[string]any{
			"error":   map[string]any{"type": "string"},
			"details": map[string]any{"type": "string"},
		},
		"required": []any{"error"},
	}
}

func badRequest() map[string]any {
	return errorResponse("Bad Request", map[string]any{
		"status_code": 400,
		"status":      "Bad Request",
		"code":        8,
		"error":       "user_id must contain only digits",
		"request_id":  "0b0f6a52-1a43-4a4b-8a53-7f0c3c55a2a1",
	})
}

func internalError() map[string]any {
	return errorResponse("Internal Server Error", map[string]any{
		"status_code": 500,
		"status":      "Internal Server Error",
		"code":        1,
		"error":       "panic recovered",
		"request_id":  "0b0f6a52-1a43-4a4b-8a53-7f0c3c55a2a1",
	})
}

func errorResponse(desc string, example map[string]any) map[string]any {
	return map[string]any{
		"description": desc,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// addDefaultResponse injects a response for status into every operation lacking one
func addDefaultResponse(spec map[string]any, status string, build func() map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for key, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok || key == "servers" || key == "parameters" {
				continue
			}
			resps, ok := op["responses"].(map[string]any)
			if !ok {
				resps = map[string]any{}
				op["responses"] = resps
			}
			if _, exists := resps[status]; !exists {
				resps[status] = build()
			}
		}
	}
}
