package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eugenenazirov/carton-packer/internal/application"
)

func TestBuildRootHandler(t *testing.T) {
	apiInvoked := false
	apiHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Fatalf("unexpected path passed to API handler: %s", r.URL.Path)
		}
		apiInvoked = true
		w.WriteHeader(http.StatusNoContent)
	})
	metricsHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	handler := application.BuildRootHandler(apiHandler, metricsHandler)

	t.Run("returns not found for unknown paths", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})

	t.Run("forwards api traffic", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("expected status 204, got %d", rec.Code)
		}
		if !apiInvoked {
			t.Fatalf("expected API handler to be invoked")
		}
	})

	t.Run("serves metrics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusAccepted {
			t.Fatalf("expected status 202, got %d", rec.Code)
		}
	})
}

func TestBuildOverrides(t *testing.T) {
	t.Run("unset flags stay nil", func(t *testing.T) {
		o := buildOverrides("", "", "", 0, -1, -1)
		if o.Port != nil || o.LogLevel != nil || o.ItemsPerBox != nil || o.RateLimitRPS != nil || o.RateLimitBurst != nil {
			t.Fatalf("expected no overrides, got %+v", o)
		}
	})

	t.Run("set flags are passed through", func(t *testing.T) {
		o := buildOverrides("cfg.yaml", "9000", "debug", 24, 0, 0)
		if o.ConfigFile != "cfg.yaml" {
			t.Fatalf("expected config file, got %q", o.ConfigFile)
		}
		if o.Port == nil || *o.Port != "9000" {
			t.Fatalf("expected port override")
		}
		if o.LogLevel == nil || *o.LogLevel != "debug" {
			t.Fatalf("expected log level override")
		}
		if o.ItemsPerBox == nil || *o.ItemsPerBox != 24 {
			t.Fatalf("expected items per box override")
		}
		if o.RateLimitRPS == nil || *o.RateLimitRPS != 0 || o.RateLimitBurst == nil || *o.RateLimitBurst != 0 {
			t.Fatalf("expected zero rate limit overrides to disable limiting")
		}
	})
}
