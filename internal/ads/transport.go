package ads

import "net/http"

// Metadata header names required by the Google Ads API.
const (
	developerTokenHeader  = "developer-token"
	loginCustomerIDHeader = "login-customer-id"
)

// headerTransport is the single interception point for outbound Ads API
// calls. It attaches the developer token to every request and the login
// (manager) customer id only when one was resolved; an empty value is never
// sent. The request body and existing headers are left untouched.
//
// Both operations share one client and therefore one headerTransport, so
// header behavior cannot drift between endpoints.
type headerTransport struct {
	base http.RoundTripper
	auth AuthContext
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTrippers must not mutate the caller's request.
	clone := req.Clone(req.Context())
	clone.Header.Set(developerTokenHeader, t.auth.DeveloperToken)
	if t.auth.LoginCustomerID != "" {
		clone.Header.Set(loginCustomerIDHeader, t.auth.LoginCustomerID)
	}
	return t.base.RoundTrip(clone)
}
