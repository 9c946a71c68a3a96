package ads

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIsConfigError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"missing credentials", ErrMissingCredentials, true},
		{"missing developer token", ErrMissingDeveloperToken, true},
		{"wrapped missing credentials", fmt.Errorf("context: %w", ErrMissingCredentials), true},
		{"wrapped in InitError", &InitError{Err: ErrMissingDeveloperToken}, true},
		{"decode error is retryable", ErrCredentialDecode, false},
		{"not found is retryable", ErrCredentialNotFound, false},
		{"arbitrary error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsConfigError(tt.err); got != tt.expected {
				t.Errorf("IsConfigError(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestInitError_Unwrap(t *testing.T) {
	err := &InitError{Err: ErrMissingCredentials}

	if !errors.Is(err, ErrMissingCredentials) {
		t.Error("InitError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "failed to initialize Google Ads client") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{
		Operation:  "search",
		CustomerID: "1234567890",
		Query:      "SELECT campaign.id FROM campaign",
		StatusCode: 403,
		Status:     "PERMISSION_DENIED",
		Message:    "The caller does not have permission",
	}

	msg := err.Error()
	for _, want := range []string{"search", "403", "PERMISSION_DENIED", "1234567890", "SELECT campaign.id FROM campaign", "The caller does not have permission"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q should contain %q", msg, want)
		}
	}
}

func TestAPIError_MessageWithoutOptionalFields(t *testing.T) {
	err := &APIError{
		Operation:  "listAccessibleCustomers",
		StatusCode: 401,
	}

	msg := err.Error()
	if strings.Contains(msg, "customer") && strings.Contains(msg, "for customer") {
		t.Errorf("message should omit customer when unset: %s", msg)
	}
	if strings.Contains(msg, "query") {
		t.Errorf("message should omit query when unset: %s", msg)
	}
}
