package swaggerkit

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	perr "listingseo/internal/platform/errors"
)

//go:embed openapi.json
var openapiDoc []byte

// SpecMutator lets modules tweak the parsed document before it is served
type SpecMutator func(map[string]any)

var (
	mu       sync.RWMutex
	mutators []SpecMutator
)

// docReader is a seam so tests can inject invalid JSON
var docReader = func() []byte { return openapiDoc }

// Register adds a document mutator
func Register(m SpecMutator) {
	if m == nil {
		return
	}
	mu.Lock()
	mutators = append(mutators, m)
	mu.Unlock()
}

// Document parses the embedded document and applies the standard rewrites and
// every registered mutator
func Document(o Options) (map[string]any, error) {
	var doc map[string]any
	if err := json.Unmarshal(docReader(), &doc); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "openapi document")
	}

	ensureServers(doc, o.Server)
	if o.TitleSuffix != "" {
		if info, ok := doc["info"].(map[string]any); ok {
			if title, ok := info["title"].(string); ok {
				info["title"] = title + " " + o.TitleSuffix
			}
		}
	}

	ensureErrorResponseDefinition(doc)
	addDefaultResponse(doc, "500", errorExample(500, "Internal Server Error", perr.ErrorCodePanic, "internal error"))
	addDefaultResponse(doc, "400", errorExample(400, "Bad Request", perr.ErrorCodeValidation, "locale must be one of [en sv]"))

	mu.RLock()
	defer mu.RUnlock()
	for _, m := range mutators {
		m(doc)
	}
	return doc, nil
}

// serveDocJSON serves the document, rebuilt per request
func serveDocJSON(o Options) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := Document(o)
		if err != nil {
			http.Error(w, "openapi document parse error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(doc)
	}
}

// ensureServers makes sure the document is OAS 3.0 and has a servers array
// swagger http ui can't support 3.1 at the moment, so downconvert if needed
func ensureServers(doc map[string]any, url string) {
	if _, hasSwagger := doc["swagger"]; hasSwagger {
		doc["openapi"] = "3.0.3"
		delete(doc, "swagger")
	}
	if v, ok := doc["openapi"].(string); !ok || strings.HasPrefix(v, "3.1") {
		doc["openapi"] = "3.0.3"
	}
	if _, ok := doc["servers"]; !ok && url != "" {
		doc["servers"] = []any{map[string]any{"url": url}}
	}
}

// ensureErrorResponseDefinition adds the error envelope model if missing
// kept minimal so it does not drift from the runtime wire
func ensureErrorResponseDefinition(doc map[string]any) {
	comps, ok := doc["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		doc["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"status_code": map[string]any{"type": "integer", "format": "int32"},
			"status":      map[string]any{"type": "string"},
			"code":        map[string]any{"type": "integer", "format": "int32"},
			"error":       map[string]any{"type": "string"},
			"field":       map[string]any{"type": "string"},
			"request_id":  map[string]any{"type": "string"},
		},
		"required": []any{"status_code", "status"},
	}
}

func errorExample(status int, text string, code perr.ErrorCode, msg string) map[string]any {
	return map[string]any{
		"description": text,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"status_code": status,
					"status":      text,
					"code":        int(code),
					"error":       msg,
					"request_id":  "579f33bf50b1/abc-000001",
				},
			},
		},
	}
}

// addDefaultResponse injects resp under status into every operation lacking one
func addDefaultResponse(doc map[string]any, status string, resp map[string]any) {
	paths, ok := doc["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
