package instrumentation

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

const (
	testCustomerID = "1234567890"
	testQuery      = "SELECT campaign.id FROM campaign"
)

func TestToolInvocation_NewAndComplete(t *testing.T) {
	ti := NewToolInvocation("search")

	if ti.Tool != "search" {
		t.Errorf("Tool = %q, want %q", ti.Tool, "search")
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}

	ti.CompleteSuccess()

	if !ti.Success {
		t.Error("Success should be true")
	}
	if ti.Duration < 0 {
		t.Error("Duration should not be negative")
	}
	if ti.Error != "" {
		t.Errorf("Error should be empty, got %q", ti.Error)
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation("search")
	err := errors.New("permission denied")

	ti.CompleteWithError(err)

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.Error != "permission denied" {
		t.Errorf("Error = %q, want %q", ti.Error, "permission denied")
	}
	if ti.Status() != StatusError {
		t.Errorf("Status() = %q, want %q", ti.Status(), StatusError)
	}
}

func TestToolInvocation_Builders(t *testing.T) {
	ti := NewToolInvocation("search").
		WithCustomer(testCustomerID).
		WithQuery(testQuery).
		WithOperation(OperationSearch).
		WithRowCount(7)

	if ti.CustomerID != testCustomerID {
		t.Errorf("CustomerID = %q", ti.CustomerID)
	}
	if ti.Query != testQuery {
		t.Errorf("Query = %q", ti.Query)
	}
	if ti.Operation != OperationSearch {
		t.Errorf("Operation = %q", ti.Operation)
	}
	if ti.RowCount != 7 {
		t.Errorf("RowCount = %d", ti.RowCount)
	}
}

func TestToolInvocation_LogAttrsAnonymizesCustomer(t *testing.T) {
	ti := NewToolInvocation("search").
		WithCustomer(testCustomerID).
		WithQuery(testQuery)
	ti.CompleteSuccess()

	for _, attr := range ti.LogAttrs() {
		if strings.Contains(attr.Value.String(), testCustomerID) {
			t.Errorf("LogAttrs leaked the raw customer id in %s", attr.Key)
		}
		if attr.Key == "query" {
			t.Error("LogAttrs should not include query text")
		}
	}
}

func TestToolInvocation_LogAuditAttrsIncludesIdentifiers(t *testing.T) {
	ti := NewToolInvocation("search").
		WithCustomer(testCustomerID).
		WithQuery(testQuery)
	ti.CompleteSuccess()

	var gotCustomer, gotQuery bool
	for _, attr := range ti.LogAuditAttrs() {
		switch attr.Key {
		case "customer_id":
			gotCustomer = attr.Value.String() == testCustomerID
		case "query":
			gotQuery = attr.Value.String() == testQuery
		}
	}
	if !gotCustomer {
		t.Error("LogAuditAttrs should include the raw customer id")
	}
	if !gotQuery {
		t.Error("LogAuditAttrs should include the query text")
	}
}

func newCapturedLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	logger, buf := newCapturedLogger()
	al := NewAuditLogger(logger)

	ti := NewToolInvocation("search").WithCustomer(testCustomerID)
	ti.CompleteSuccess()
	al.LogToolInvocation(ti)

	out := buf.String()
	if !strings.Contains(out, "tool_executed") {
		t.Errorf("expected tool_executed event, got %s", out)
	}
	if strings.Contains(out, testCustomerID) {
		t.Error("default audit logging must not contain the raw customer id")
	}
}

func TestAuditLogger_LogToolInvocation_Failure(t *testing.T) {
	logger, buf := newCapturedLogger()
	al := NewAuditLogger(logger)

	ti := NewToolInvocation("search")
	ti.CompleteWithError(errors.New("quota exceeded"))
	al.LogToolInvocation(ti)

	out := buf.String()
	if !strings.Contains(out, "tool_failed") {
		t.Errorf("expected tool_failed event, got %s", out)
	}
	if !strings.Contains(out, "quota exceeded") {
		t.Errorf("expected error message, got %s", out)
	}
}

func TestAuditLogger_IncludeCustomerIDs(t *testing.T) {
	logger, buf := newCapturedLogger()
	al := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{
		Enabled:            true,
		IncludeCustomerIDs: true,
	})

	ti := NewToolInvocation("search").WithCustomer(testCustomerID)
	ti.CompleteSuccess()
	al.LogToolInvocation(ti)

	if !strings.Contains(buf.String(), testCustomerID) {
		t.Error("IncludeCustomerIDs should log the raw customer id")
	}
}

func TestAuditLogger_Disabled(t *testing.T) {
	logger, buf := newCapturedLogger()
	al := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: false})

	ti := NewToolInvocation("search")
	ti.CompleteSuccess()
	al.LogToolInvocation(ti)
	al.LogToolAudit(ti)

	if buf.Len() != 0 {
		t.Errorf("disabled audit logger should not log, got %s", buf.String())
	}
}

func TestToolInvocation_CustomerHash(t *testing.T) {
	ti := NewToolInvocation("search").WithCustomer(testCustomerID)

	hash := ti.CustomerHash()
	if hash == "" {
		t.Fatal("hash should not be empty")
	}
	if strings.Contains(hash, testCustomerID) {
		t.Error("hash must not contain the raw customer id")
	}
}
