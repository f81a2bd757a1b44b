package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"listingseo/internal/platform/config"
	perr "listingseo/internal/platform/errors"
	phttp "listingseo/internal/platform/net/http"
	"listingseo/internal/platform/testkit"
)

func TestServer_NotFoundEnvelope(t *testing.T) {
	srv := phttp.NewServer(config.FromMap(nil))
	env := testkit.Env(t, testkit.Do(t, srv.Router().Mux(), "GET", "/nope", nil), http.StatusNotFound)
	if env.Code != int(perr.ErrorCodeNotFound) {
		t.Fatalf("code %d", env.Code)
	}
	testkit.MustContain(t, env.Error, "GET /nope")
}

func TestServer_Defaults(t *testing.T) {
	srv := phttp.NewServer(config.FromMap(nil))
	if srv.Addr() != ":4000" {
		t.Fatalf("default addr %q", srv.Addr())
	}
	srv = phttp.NewServer(config.FromMap(map[string]string{"PORT": "8088"}))
	if srv.Addr() != ":8088" {
		t.Fatalf("bare port addr %q", srv.Addr())
	}
}

func TestServer_RunAndDrain(t *testing.T) {
	cfg := config.FromMap(map[string]string{"PORT": "127.0.0.1:0", "SHUTDOWN_TIMEOUT": "2s"})
	hooked := false
	srv := phttp.NewServer(cfg, func(*chi.Mux) { hooked = true })
	if !hooked {
		t.Fatalf("option not applied")
	}
	phttp.GetJSON(srv.Router(), "/ping", func(*http.Request) (any, error) { return "pong", nil })

	if err := srv.Listen(); err != nil {
		t.Fatalf("listen: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var env phttp.Envelope
	err = json.NewDecoder(resp.Body).Decode(&env)
	_ = resp.Body.Close()
	if err != nil || env.Data != "pong" {
		t.Fatalf("decode: %v %+v", err, env)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not drain")
	}
}

func TestServer_ListenError(t *testing.T) {
	a := phttp.NewServer(config.FromMap(map[string]string{"PORT": "127.0.0.1:0"}))
	if err := a.Listen(); err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer func() { _ = a.Shutdown(context.Background()) }()

	b := phttp.NewServer(config.FromMap(map[string]string{"PORT": a.Addr()}))
	if err := b.Run(context.Background()); err == nil {
		t.Fatalf("expected bind error on a taken port")
	}
}
