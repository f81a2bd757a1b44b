package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "listingseo/internal/platform/net/http"
	"listingseo/internal/platform/testkit"
)

func reset(t *testing.T) {
	testkit.Serial(t)
	mu.Lock()
	saved := mutators
	mutators = nil
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		mutators = saved
		mu.Unlock()
	})
}

func TestDocument(t *testing.T) {
	reset(t)
	doc, err := Document(Options{Server: "/api/v1", TitleSuffix: "(staging)"})
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if doc["openapi"] != "3.0.3" {
		t.Fatalf("openapi = %v", doc["openapi"])
	}
	if title := doc["info"].(map[string]any)["title"]; title != "listingseo API (staging)" {
		t.Fatalf("title = %v", title)
	}
	servers := doc["servers"].([]any)
	if servers[0].(map[string]any)["url"] != "/api/v1" {
		t.Fatalf("servers = %v", servers)
	}

	paths := doc["paths"].(map[string]any)
	for _, p := range []string{"/seo/score", "/seo/seasonal", "/seo/grade", "/seo/reports", "/seo/reports/{id}", "/seo/stats", "/meta/health", "/meta/scorer"} {
		if _, ok := paths[p]; !ok {
			t.Fatalf("missing path %s", p)
		}
	}
	score := paths["/seo/score"].(map[string]any)["post"].(map[string]any)["responses"].(map[string]any)
	for _, code := range []string{"200", "400", "500"} {
		if _, ok := score[code]; !ok {
			t.Fatalf("score lacks %s response", code)
		}
	}
	schemas := doc["components"].(map[string]any)["schemas"].(map[string]any)
	if _, ok := schemas["ErrorResponse"]; !ok {
		t.Fatalf("ErrorResponse not injected")
	}
}

func TestEnsureServers(t *testing.T) {
	cases := []struct {
		in   map[string]any
		want string
	}{
		{map[string]any{"swagger": "2.0"}, "3.0.3"},
		{map[string]any{"openapi": "3.1.0"}, "3.0.3"},
		{map[string]any{"openapi": "3.0.1"}, "3.0.1"},
		{map[string]any{}, "3.0.3"},
	}
	for _, c := range cases {
		ensureServers(c.in, "/x")
		if c.in["openapi"] != c.want {
			t.Fatalf("openapi = %v, want %s", c.in["openapi"], c.want)
		}
		if _, ok := c.in["swagger"]; ok {
			t.Fatalf("swagger key kept")
		}
	}
	keep := map[string]any{"servers": []any{"custom"}}
	ensureServers(keep, "/x")
	if keep["servers"].([]any)[0] != "custom" {
		t.Fatalf("existing servers replaced")
	}
}

func TestMount(t *testing.T) {
	reset(t)
	Register(nil)
	Register(func(doc map[string]any) { doc["x-build"] = "test" })

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, Options{Enabled: true})
	h := r.Mux()

	rec := testkit.Do(t, h, "GET", "/api/docs/doc.json", nil)
	if rec.Code != http.StatusOK || rec.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("doc.json: %d %v", rec.Code, rec.Header())
	}
	var doc map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil || doc["x-build"] != "test" {
		t.Fatalf("doc: %v %v", err, doc["x-build"])
	}

	if rec := testkit.Do(t, h, "GET", "/api/docs", nil); rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect: %d", rec.Code)
	}
	if rec := testkit.Do(t, h, "GET", "/api/docs/index.html", nil); rec.Code != http.StatusOK {
		t.Fatalf("ui: %d", rec.Code)
	}
}

func TestMount_Disabled(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, Options{})
	if rec := testkit.Do(t, r.Mux(), "GET", "/api/docs/doc.json", nil); rec.Code != http.StatusNotFound {
		t.Fatalf("disabled docs served: %d", rec.Code)
	}
}

func TestServeDoc_BadJSON(t *testing.T) {
	reset(t)
	testkit.Swap(t, &docReader, func() []byte { return []byte("{") })
	rec := testkit.Do(t, serveDocJSON(Options{}), "GET", "/", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRegister_Concurrent(t *testing.T) {
	reset(t)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Register(func(map[string]any) {})
			_, _ = Document(Options{})
		}()
	}
	wg.Wait()
	if len(mutators) != 8 {
		t.Fatalf("mutators = %d", len(mutators))
	}
}
