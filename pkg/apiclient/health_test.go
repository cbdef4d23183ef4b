package apiclient

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func TestHealth_ImmediateSuccess(t *testing.T) {
	_, c := mockServer(t, jsonHandler(t, http.StatusOK, map[string]any{"status": "ok"}))

	if !c.Health(context.Background(), "/", 3, 10*time.Millisecond) {
		t.Error("Health() = false, want true for healthy API")
	}
}

func TestHealth_SucceedsAfterRetries(t *testing.T) {
	var calls atomic.Int32
	_, c := mockServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	if !c.Health(context.Background(), "/", 5, time.Millisecond) {
		t.Error("Health() = false, want true once the API comes up")
	}
	if calls.Load() != 3 {
		t.Errorf("probe calls = %d, want 3", calls.Load())
	}
}

func TestHealth_ExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	_, c := mockServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	if c.Health(context.Background(), "/", 3, time.Millisecond) {
		t.Error("Health() = true, want false when retries are exhausted")
	}
	if calls.Load() != 3 {
		t.Errorf("probe calls = %d, want exactly maxRetries", calls.Load())
	}
}

func TestHealth_Non200IsNotReady(t *testing.T) {
	// 204 is a 2xx but the probe only accepts 200.
	_, c := mockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	if c.Health(context.Background(), "/", 2, time.Millisecond) {
		t.Error("Health() = true for 204, want false")
	}
}

func TestHealth_ContextCancelStopsPolling(t *testing.T) {
	_, c := mockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	if c.Health(ctx, "/", 10, time.Second) {
		t.Error("Health() = true with cancelled context")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("Health() kept polling for %v after cancel", elapsed)
	}
}

func TestHealth_DefaultsApplied(t *testing.T) {
	_, c := mockServer(t, jsonHandler(t, http.StatusOK, nil))

	// Zero values fall back to the package defaults rather than panicking
	// or returning immediately.
	if !c.Health(context.Background(), "", 0, 0) {
		t.Error("Health() with zero config = false, want true")
	}
}
