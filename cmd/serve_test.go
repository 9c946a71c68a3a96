package cmd

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewServeCmd_FlagDefaults(t *testing.T) {
	cmd := newServeCmd()

	tests := []struct {
		flag     string
		expected string
	}{
		{"debug", "false"},
		{"transport", "stdio"},
		{"http-addr", ":8080"},
		{"metrics-enabled", "true"},
		{"metrics-addr", ":9090"},
	}

	for _, tt := range tests {
		f := cmd.Flags().Lookup(tt.flag)
		if f == nil {
			t.Errorf("flag %q not registered", tt.flag)
			continue
		}
		if f.DefValue != tt.expected {
			t.Errorf("flag %q default = %q, want %q", tt.flag, f.DefValue, tt.expected)
		}
	}
}

func TestRunServe_UnsupportedTransport(t *testing.T) {
	t.Setenv("INSTRUMENTATION_ENABLED", "false")
	t.Setenv("GOOGLE_ADS_YAML_PATH", t.TempDir()+"/google-ads.yaml")

	err := runServe("carrier-pigeon", false, ":0", MetricsConfig{})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
	if !strings.Contains(err.Error(), "unsupported transport type") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestStatusRecorder(t *testing.T) {
	rec := httptest.NewRecorder()
	recorder := &statusRecorder{ResponseWriter: rec, status: http.StatusOK}

	recorder.WriteHeader(http.StatusTeapot)

	if recorder.status != http.StatusTeapot {
		t.Errorf("status = %d, want %d", recorder.status, http.StatusTeapot)
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("underlying recorder code = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestInstrumentedHandler_NilProviderPassthrough(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	handler := instrumentedHandler(next, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mcp", nil))

	if !called {
		t.Error("wrapped handler should be called")
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}
