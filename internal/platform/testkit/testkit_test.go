package testkit

import (
	"net/http"
	"sync"
	"testing"
	"time"
)

var (
	addFn   = func(a, b int) int { return a + b }
	swapInt = 10
)

func TestPanics(t *testing.T) {
	t.Parallel()
	MustPanic(t, func() { panic("boom") })
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	t.Parallel()
	MustContain(t, "alpha beta gamma", "beta")
}

func TestSwap_Restores(t *testing.T) {
	t.Run("func", func(t *testing.T) {
		Swap(t, &addFn, func(a, b int) int { return 99 })
		if got := addFn(1, 2); got != 99 {
			t.Fatalf("swap not applied, got %d", got)
		}
	})
	t.Run("int", func(t *testing.T) {
		Swap(t, &swapInt, 42)
		if swapInt != 42 {
			t.Fatalf("swap not applied, got %d", swapInt)
		}
	})
	if addFn(1, 2) != 3 || swapInt != 10 {
		t.Fatalf("swap not restored: %d %d", addFn(1, 2), swapInt)
	}
}

func TestSerial_Excludes(t *testing.T) {
	var (
		mu      sync.Mutex
		inside  int
		overlap bool
	)
	for i := 0; i < 4; i++ {
		t.Run("w", func(t *testing.T) {
			t.Parallel()
			Serial(t)
			mu.Lock()
			inside++
			if inside > 1 {
				overlap = true
			}
			mu.Unlock()
			time.Sleep(5 * time.Millisecond)
			mu.Lock()
			inside--
			mu.Unlock()
		})
	}
	t.Cleanup(func() {
		if overlap {
			t.Fatalf("serial sections overlapped")
		}
	})
}

func TestDoAndEnv(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status_code":201,"status":"Created","data":{"n":3}}`))
	})
	rec := Do(t, h, http.MethodPost, "/", map[string]int{"n": 3})
	env := Env(t, rec, http.StatusCreated)
	if got := Data[map[string]int](t, env); got["n"] != 3 {
		t.Fatalf("data: %v", got)
	}
	if rec := Do(t, h, http.MethodGet, "/", nil); rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("nil body should not set content type, got %d", rec.Code)
	}
}
