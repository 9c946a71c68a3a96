package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
)

// Common log attribute keys for consistent naming across the codebase.
const (
	KeyOperation    = "operation"
	KeyTool         = "tool"
	KeyCustomerHash = "customer_hash"
	KeyQuery        = "query"
	KeyDuration     = "duration"
	KeyStatus       = "status"
	KeyError        = "error"
)

// Status values for consistent logging.
// Note: These are intentionally duplicated from the instrumentation package
// to avoid circular dependencies (instrumentation imports logging).
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// WithOperation returns a logger with the operation attribute set.
func WithOperation(logger *slog.Logger, operation string) *slog.Logger {
	return logger.With(slog.String(KeyOperation, operation))
}

// WithTool returns a logger with the tool attribute set.
func WithTool(logger *slog.Logger, tool string) *slog.Logger {
	return logger.With(slog.String(KeyTool, tool))
}

// Operation returns a slog attribute for the operation name.
func Operation(op string) slog.Attr {
	return slog.String(KeyOperation, op)
}

// Tool returns a slog attribute for the tool name.
func Tool(tool string) slog.Attr {
	return slog.String(KeyTool, tool)
}

// Query returns a slog attribute for a GAQL query.
func Query(query string) slog.Attr {
	return slog.String(KeyQuery, query)
}

// Status returns a slog attribute for the status.
func Status(status string) slog.Attr {
	return slog.String(KeyStatus, status)
}

// Err returns a slog attribute for an error.
// If err is nil, returns an empty Group attribute that will be omitted from
// output, so Err(maybeNilErr) is always safe to pass.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Group("")
	}
	return slog.String(KeyError, err.Error())
}

// AnonymizeCustomerID returns a hashed representation of a customer id for
// logging purposes. Advertiser account ids identify real businesses; the
// hash allows correlating log entries without exposing them.
func AnonymizeCustomerID(customerID string) string {
	if customerID == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(customerID))
	return "customer:" + hex.EncodeToString(hash[:8])
}

// CustomerHash returns a slog attribute with the anonymized customer id.
//
// Usage:
//
//	logger.Info("search completed", logging.CustomerHash(customerID))
func CustomerHash(customerID string) slog.Attr {
	return slog.String(KeyCustomerHash, AnonymizeCustomerID(customerID))
}

// SanitizeToken returns a masked version of a token for logging.
// It returns a length indicator without exposing any token content; even a
// developer-token prefix is enough to narrow down the calling application.
func SanitizeToken(token string) string {
	if token == "" {
		return "<empty>"
	}
	return fmt.Sprintf("[token:%d chars]", len(token))
}
