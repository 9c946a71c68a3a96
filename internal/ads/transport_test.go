package ads

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHeaderTransport_SetsDeveloperToken(t *testing.T) {
	var gotDevToken, gotLoginID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDevToken = r.Header.Get("developer-token")
		gotLoginID = r.Header.Get("login-customer-id")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := &http.Client{Transport: &headerTransport{
		base: http.DefaultTransport,
		auth: AuthContext{DeveloperToken: "dev-token-123"},
	}}

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if gotDevToken != "dev-token-123" {
		t.Errorf("developer-token = %q, want %q", gotDevToken, "dev-token-123")
	}
	if gotLoginID != "" {
		t.Errorf("login-customer-id should be absent, got %q", gotLoginID)
	}
}

func TestHeaderTransport_SetsLoginCustomerIDWhenConfigured(t *testing.T) {
	var gotLoginID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLoginID = r.Header.Get("login-customer-id")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := &http.Client{Transport: &headerTransport{
		base: http.DefaultTransport,
		auth: AuthContext{DeveloperToken: "dev-token-123", LoginCustomerID: "9876543210"},
	}}

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if gotLoginID != "9876543210" {
		t.Errorf("login-customer-id = %q, want %q", gotLoginID, "9876543210")
	}
}

func TestHeaderTransport_DoesNotMutateOriginalRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	transport := &headerTransport{
		base: http.DefaultTransport,
		auth: AuthContext{DeveloperToken: "dev-token-123", LoginCustomerID: "9876543210"},
	}

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := transport.RoundTrip(req)
	if err != nil {
		t.Fatalf("RoundTrip failed: %v", err)
	}
	resp.Body.Close()

	if req.Header.Get("developer-token") != "" {
		t.Error("original request should not carry the developer-token header")
	}
	if req.Header.Get("login-customer-id") != "" {
		t.Error("original request should not carry the login-customer-id header")
	}
}
