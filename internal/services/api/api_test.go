package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"listingseo/internal/core/scorer"
	"listingseo/internal/modkit/module"
	"listingseo/internal/platform/config"
	phttp "listingseo/internal/platform/net/http"
	"listingseo/internal/platform/testkit"
	"listingseo/internal/services/api/seo/domain"
)

func mountAPI(t *testing.T, env map[string]string) http.Handler {
	t.Helper()
	testkit.Serial(t)
	module.Reset()
	t.Cleanup(module.Reset)

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, FromConfig(config.FromMap(env).Prefix("CORE_API_")))
	return r.Mux()
}

func TestMount_ScoreNegotiatesLocale(t *testing.T) {
	h := mountAPI(t, nil)

	body := `{"title":"mug","description":"","tags":["mug"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/seo/score", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", "en-GB,en;q=0.9")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	env := testkit.Env(t, rec, http.StatusOK)
	if rec.Header().Get("Content-Language") != "en" {
		t.Fatalf("content-language = %q", rec.Header().Get("Content-Language"))
	}
	if env.RequestID == "" {
		t.Fatalf("request id missing")
	}
	got := testkit.Data[scorer.Report](t, env)
	want := scorer.New(scorer.WithLocale("en")).Score("mug", "", []string{"mug"})
	if got.OverallScore != want.OverallScore || len(got.Tips) == 0 || got.Tips[0].Tip != want.Tips[0].Tip {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestMount_QueryLocaleAndDefault(t *testing.T) {
	h := mountAPI(t, map[string]string{"CORE_API_DEFAULT_LOCALE": "en"})

	rec := testkit.Do(t, h, "POST", "/api/v1/seo/score?locale=sv", map[string]any{"title": "mug"})
	testkit.Env(t, rec, http.StatusOK)
	if rec.Header().Get("Content-Language") != "sv" {
		t.Fatalf("content-language = %q", rec.Header().Get("Content-Language"))
	}

	info := testkit.Data[domain.ScorerInfo](t, testkit.Env(t, testkit.Do(t, h, "GET", "/api/v1/meta/scorer", nil), http.StatusOK))
	if info.DefaultLocale != "en" || info.Weights["title"] != scorer.WeightTitle {
		t.Fatalf("info = %+v", info)
	}
}

func TestMount_BackendsDisabled(t *testing.T) {
	h := mountAPI(t, nil)
	testkit.Env(t, testkit.Do(t, h, "GET", "/api/v1/seo/stats", nil), http.StatusServiceUnavailable)
	testkit.Env(t, testkit.Do(t, h, "GET", "/api/v1/seo/reports", nil), http.StatusServiceUnavailable)
	testkit.Env(t, testkit.Do(t, h, "GET", "/api/v1/meta/health", nil), http.StatusOK)
}

func TestMount_DocsDisabled(t *testing.T) {
	h := mountAPI(t, nil)
	if rec := testkit.Do(t, h, "GET", "/api/docs/doc.json", nil); rec.Code == http.StatusOK {
		t.Fatalf("docs served while disabled")
	}
	if rec := testkit.Do(t, h, "GET", "/debug/pprof/", nil); rec.Code == http.StatusOK {
		t.Fatalf("profiler served while disabled")
	}
}

func TestMount_Docs(t *testing.T) {
	h := mountAPI(t, map[string]string{"CORE_API_SWAGGER": "true", "CORE_API_PROFILER": "true"})
	rec := testkit.Do(t, h, "GET", "/api/docs/doc.json", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json: %d", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), `"/seo/score"`)
	if rec := testkit.Do(t, h, "GET", "/debug/pprof/", nil); rec.Code != http.StatusOK {
		t.Fatalf("pprof: %d", rec.Code)
	}
}

func TestMigrate_NoStore(t *testing.T) {
	if err := Migrate(t.Context(), Options{Config: config.FromMap(nil)}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}
