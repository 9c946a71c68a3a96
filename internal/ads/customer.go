package ads

import (
	"fmt"
	"strings"
)

// NormalizeCustomerID normalizes a customer id to its canonical digits-only
// form. Hyphens and surrounding whitespace are stripped, so the common
// "123-456-7890" display format becomes "1234567890". Any other non-digit
// character is rejected rather than dropped; silently discarding characters
// could target the wrong account.
func NormalizeCustomerID(id string) (string, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(id), "-", "")
	if cleaned == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidCustomerID)
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q is not digits-only", ErrInvalidCustomerID, id)
		}
	}
	return cleaned, nil
}
