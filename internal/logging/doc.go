// Package logging provides structured logging utilities for the Google Ads
// MCP server.
//
// This package centralizes logging patterns to ensure consistent,
// structured logging throughout the codebase using the standard library's
// slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Customer-id anonymization (advertiser ids identify real businesses)
//   - Consistent attribute naming across the codebase
//
// # Security Considerations
//
//   - Customer ids are hashed to allow correlation without exposure
//   - Developer tokens are never logged directly; use SanitizeToken
package logging
