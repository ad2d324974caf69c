package docs

import (
	"encoding/json"
	"testing"
)

func TestSwaggerDocIsValidJSON(t *testing.T) {
	var doc struct {
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("swagger document is not valid JSON: %v", err)
	}

	if doc.BasePath != "/api" {
		t.Errorf("expected basePath /api, got %q", doc.BasePath)
	}

	want := map[string][]string{
		"/authors":                  {"get", "post"},
		"/authors/active":           {"get"},
		"/authors/inactive":         {"get"},
		"/authors/search/{keyword}": {"get"},
		"/authors/{id}":             {"get", "patch", "delete"},
		"/authors/{id}/active":      {"put"},
		"/authors/{id}/inactive":    {"put"},
		"/authors/{id}/books":       {"get"},
		"/books":                    {"get", "post"},
		"/books/{id}":               {"get", "delete"},
	}
	for path, methods := range want {
		ops, ok := doc.Paths[path]
		if !ok {
			t.Errorf("missing path %s", path)
			continue
		}
		for _, m := range methods {
			if _, ok := ops[m]; !ok {
				t.Errorf("missing %s %s", m, path)
			}
		}
	}
}
