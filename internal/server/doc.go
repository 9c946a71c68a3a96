// Package server provides the MCP server context, health checks, and the
// dedicated metrics listener for the Google Ads MCP server.
//
// # Key Components
//
// ServerContext owns the shared Google Ads client. The client is created
// lazily on the first tool call and cached for the lifetime of the server;
// configuration faults (missing credentials, missing developer token) are
// memoized so subsequent calls fail fast, while transient construction
// failures are retried on the next call.
//
// HealthChecker serves /healthz and /readyz for Kubernetes probes when the
// server runs with the streamable-http transport.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, isolated
// from the main MCP traffic.
package server
