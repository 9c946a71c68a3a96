// Package ads_tools implements the MCP tools exposed by the Google Ads MCP
// server: list_accessible_customers for account discovery and search for
// executing GAQL reporting queries.
package ads_tools
