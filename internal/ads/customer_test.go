package ads

import (
	"errors"
	"testing"
)

func TestNormalizeCustomerID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "digits only",
			input:    "1234567890",
			expected: "1234567890",
		},
		{
			name:     "display format with dashes",
			input:    "123-456-7890",
			expected: "1234567890",
		},
		{
			name:     "surrounding whitespace",
			input:    "  1234567890  ",
			expected: "1234567890",
		},
		{
			name:     "whitespace and dashes",
			input:    " 123-456-7890 ",
			expected: "1234567890",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeCustomerID(tt.input)
			if err != nil {
				t.Fatalf("NormalizeCustomerID(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("NormalizeCustomerID(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeCustomerID_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "only whitespace", input: "   "},
		{name: "only dashes", input: "---"},
		{name: "letters", input: "abc1234567"},
		{name: "resource name", input: "customers/1234567890"},
		{name: "embedded space", input: "123 456 7890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeCustomerID(tt.input)
			if err == nil {
				t.Fatalf("NormalizeCustomerID(%q) should return an error", tt.input)
			}
			if !errors.Is(err, ErrInvalidCustomerID) {
				t.Errorf("error should wrap ErrInvalidCustomerID, got %v", err)
			}
		})
	}
}
