package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sync"
)

// SpecMutator lets modules tweak the spec before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.Mutex
	mutators []SpecMutator
)

// Register adds a spec mutator; call from module wiring before Mount
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// baseSpec is hand maintained; keep it in step with the handlers' swagger comments
func baseSpec() map[string]any {
	str := map[string]any{"type": "string"}
	view := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"username":   str,
			"ok":         map[string]any{"type": "boolean"},
			"lines":      map[string]any{"type": "array", "items": str},
			"error_kind": map[string]any{"type": "string", "enum": []any{"none", "transport", "http_status", "unexpected_status", "decode", "unexpected"}},
		},
	}
	envelope := func(data map[string]any) map[string]any {
		return map[string]any{
			"description": "ok",
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"status_code": map[string]any{"type": "integer"},
							"status":      str,
							"request_id":  str,
							"data":        data,
						},
					},
				},
			},
		}
	}
	return map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": "github-activity API", "version": "0.1.0"},
		"servers": []any{map[string]any{"url": "/api/v1"}},
		"paths": map[string]any{
			"/activity/users/{username}": map[string]any{
				"get": map[string]any{
					"tags":    []any{"Activity"},
					"summary": "Recent public activity for a GitHub user",
					"parameters": []any{map[string]any{
						"name": "username", "in": "path", "required": true, "schema": str,
					}},
					"responses": map[string]any{"200": envelope(view)},
				},
			},
			"/activity/batch": map[string]any{
				"post": map[string]any{
					"tags":    []any{"Activity"},
					"summary": "Recent public activity for several GitHub users",
					"requestBody": map[string]any{
						"required": true,
						"content": map[string]any{"application/json": map[string]any{"schema": map[string]any{
							"type":     "object",
							"required": []any{"usernames"},
							"properties": map[string]any{
								"usernames": map[string]any{"type": "array", "minItems": 1, "maxItems": 20, "items": str},
							},
						}}},
					},
					"responses": map[string]any{"200": envelope(map[string]any{"type": "array", "items": view})},
				},
			},
			"/meta/health":  map[string]any{"get": map[string]any{"tags": []any{"Meta"}, "summary": "Health check", "responses": map[string]any{"200": envelope(map[string]any{"type": "object"})}}},
			"/meta/version": map[string]any{"get": map[string]any{"tags": []any{"Meta"}, "summary": "Build and version info", "responses": map[string]any{"200": envelope(map[string]any{"type": "object"})}}},
			"/meta/service": map[string]any{"get": map[string]any{"tags": []any{"Meta"}, "summary": "Service info and uptime", "responses": map[string]any{"200": envelope(map[string]any{"type": "object"})}}},
		},
	}
}

// serveDocJSON serves the spec after applying registered mutators
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		spec := baseSpec()
		mu.Lock()
		for _, m := range mutators {
			m(spec)
		}
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}
