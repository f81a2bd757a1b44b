package module

import (
	"context"
	stdhttp "net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	modkit "listingseo/internal/modkit"
	"listingseo/internal/modkit/module"
	"listingseo/internal/platform/config"
	phttp "listingseo/internal/platform/net/http"
	"listingseo/internal/platform/store"
	"listingseo/internal/platform/testkit"
	metahttp "listingseo/internal/services/api/meta/http"
	"listingseo/internal/services/api/seo/domain"
)

type info struct{}

func (info) ScorerInfo() domain.ScorerInfo { return domain.ScorerInfo{Version: 7} }

// pingPG is a TxRunner that can also be pinged
type pingPG struct{ store.TxRunner }

func (pingPG) Ping(context.Context) error { return nil }

func serve(m modkit.Module) stdhttp.Handler {
	r := phttp.AdaptChi(chi.NewRouter())
	m.MountRoutes(r)
	return r.Mux()
}

func TestNew(t *testing.T) {
	testkit.Serial(t)
	module.Reset()
	t.Cleanup(module.Reset)

	d := modkit.Deps{Cfg: config.FromMap(map[string]string{"SERVICE_NAME": "seo-test"}), PG: pingPG{}}
	h := serve(New(d))

	health := testkit.Data[metahttp.HealthResponse](t, testkit.Env(t, testkit.Do(t, h, "GET", "/meta/health", nil), stdhttp.StatusOK))
	if health.Service != "seo-test" {
		t.Fatalf("health = %+v", health)
	}
	ready := testkit.Data[metahttp.ReadyResponse](t, testkit.Env(t, testkit.Do(t, h, "GET", "/meta/ready", nil), stdhttp.StatusOK))
	if ready.Status != "degraded" || ready.Checks[0].Status != "ok" || ready.Checks[1].Status != "skipped" {
		t.Fatalf("ready = %+v", ready)
	}
	if rec := testkit.Do(t, h, "GET", "/meta/scorer", nil); rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("scorer without a registered module: %d", rec.Code)
	}
}

func TestNew_ScorerFromRegistry(t *testing.T) {
	testkit.Serial(t)
	module.Reset()
	t.Cleanup(module.Reset)
	module.Register(ScorerModule, info{})

	h := serve(New(modkit.Deps{Cfg: config.FromMap(nil)}))
	got := testkit.Data[domain.ScorerInfo](t, testkit.Env(t, testkit.Do(t, h, "GET", "/meta/scorer", nil), stdhttp.StatusOK))
	if got.Version != 7 {
		t.Fatalf("got %+v", got)
	}
}
