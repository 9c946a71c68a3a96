package ads

import (
	"errors"
	"fmt"
)

// Sentinel errors for the credential resolution and request validation
// pipeline. Callers distinguish failure kinds with errors.Is.
var (
	// ErrCredentialDecode indicates the base64-encoded credential blob
	// could not be decoded or did not contain valid JSON.
	ErrCredentialDecode = errors.New("failed to decode base64 credentials")

	// ErrCredentialNotFound indicates a configured credential file path
	// does not exist.
	ErrCredentialNotFound = errors.New("credentials file not found")

	// ErrCredentialParse indicates a credential file was present but
	// malformed.
	ErrCredentialParse = errors.New("failed to parse credentials")

	// ErrMissingCredentials indicates no credential source is configured
	// at all. This is a non-retryable configuration fault.
	ErrMissingCredentials = errors.New("no Google Ads credentials configured")

	// ErrMissingDeveloperToken indicates no developer token was found in
	// the environment or the YAML configuration. This is a non-retryable
	// configuration fault.
	ErrMissingDeveloperToken = errors.New("developer token not configured")

	// ErrInvalidCustomerID indicates a customer id did not normalize to a
	// non-empty string of digits.
	ErrInvalidCustomerID = errors.New("invalid customer id")

	// ErrInvalidQuerySpec indicates structured search parameters could not
	// be assembled into a query.
	ErrInvalidQuerySpec = errors.New("invalid query spec")
)

// IsConfigError reports whether err is a configuration fault that cannot
// be fixed by retrying client construction. Transient faults (an unreadable
// file, a malformed blob that may be redeployed) remain retryable.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrMissingCredentials) ||
		errors.Is(err, ErrMissingDeveloperToken)
}

// InitError wraps a failure to construct the Ads client. It preserves the
// underlying cause so IsConfigError can see through it.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("failed to initialize Google Ads client: %v", e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}

// APIError wraps a fault reported by the Google Ads API. It carries the
// customer id and attempted query so a failure can be diagnosed without a
// retry.
type APIError struct {
	Operation  string // e.g. "listAccessibleCustomers", "search"
	CustomerID string
	Query      string
	StatusCode int
	Status     string // google.rpc status, e.g. "PERMISSION_DENIED"
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("Google Ads API %s failed (HTTP %d", e.Operation, e.StatusCode)
	if e.Status != "" {
		msg += " " + e.Status
	}
	msg += ")"
	if e.CustomerID != "" {
		msg += fmt.Sprintf(" for customer %s", e.CustomerID)
	}
	if e.Query != "" {
		msg += fmt.Sprintf(" query %q", e.Query)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *APIError) Unwrap() error {
	return e.Err
}
