package ads_tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/adsmcp/google-ads-mcp/internal/ads"
	"github.com/adsmcp/google-ads-mcp/internal/instrumentation"
	"github.com/adsmcp/google-ads-mcp/internal/logging"
	"github.com/adsmcp/google-ads-mcp/internal/server"
	"github.com/adsmcp/google-ads-mcp/internal/tools/common"
)

// getAdsClient retrieves the shared Ads client, initializing it on first use.
// Configuration faults come back with actionable guidance for the agent.
func getAdsClient(ctx context.Context, sc *server.ServerContext) (*ads.Client, error) {
	client, err := sc.AdsClient(ctx)
	if err != nil {
		if ads.IsConfigError(err) {
			return nil, fmt.Errorf(`Google Ads credentials are not configured: %v

To configure access, provide one of:

1. GOOGLE_CREDENTIALS_BASE64 - base64-encoded service account JSON key
2. GOOGLE_APPLICATION_CREDENTIALS - path to a service account JSON key file
3. A google-ads.yaml file (path via GOOGLE_ADS_YAML_PATH, default: ./google-ads.yaml)

A developer token is also required via GOOGLE_ADS_DEVELOPER_TOKEN or the
developer_token field in google-ads.yaml.`, err)
		}
		return nil, fmt.Errorf("failed to initialize Google Ads client: %w", err)
	}
	return client, nil
}

// listCustomersResult is the JSON payload returned by list_accessible_customers.
type listCustomersResult struct {
	CustomerIDs []string `json:"customer_ids"`
	Count       int      `json:"count"`
}

// searchResult is the JSON payload returned by search.
type searchResult struct {
	CustomerID string    `json:"customer_id"`
	Query      string    `json:"query"`
	RowCount   int       `json:"row_count"`
	Rows       []ads.Row `json:"rows"`
}

// RegisterAdsTools registers all Google Ads tools with the MCP server
func RegisterAdsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerListAccessibleCustomersTool(s, sc); err != nil {
		return fmt.Errorf("failed to register list_accessible_customers tool: %w", err)
	}

	if err := registerSearchTool(s, sc); err != nil {
		return fmt.Errorf("failed to register search tool: %w", err)
	}

	return nil
}

// registerListAccessibleCustomersTool registers the account discovery tool
func registerListAccessibleCustomersTool(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	listCustomersTool := mcp.NewTool("list_accessible_customers",
		mcp.WithDescription("List the Google Ads customer account IDs directly accessible by the configured service account. Use this first to discover which accounts can be queried."),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		client, err := getAdsClient(ctx, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		ids, err := client.ListAccessibleCustomers(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to list accessible customers: %v", err)), nil
		}

		payload := listCustomersResult{
			CustomerIDs: ids,
			Count:       len(ids),
		}

		result, _ := json.MarshalIndent(payload, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}

	s.AddTool(listCustomersTool, common.InstrumentedToolHandlerWithOperation(
		"list_accessible_customers", instrumentation.OperationListCustomers, sc, handler))
	return nil
}

// registerSearchTool registers the GAQL reporting tool
func registerSearchTool(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchTool := mcp.NewTool("search",
		mcp.WithDescription("Execute a GAQL (Google Ads Query Language) query against a customer account and return the result rows. Either pass a complete query, or pass fields + resource (with optional conditions, orderings, limit) to have the query assembled."),
		mcp.WithString("customer_id",
			mcp.Required(),
			mcp.Description("Customer account ID to query. Dashes are accepted (123-456-7890 and 1234567890 are equivalent)."),
		),
		mcp.WithString("query",
			mcp.Description("Complete GAQL query, passed through verbatim. Takes precedence over the structured parameters."),
		),
		mcp.WithString("fields",
			mcp.Description("Field path (string) or array of field paths to SELECT, e.g. [\"campaign.id\", \"campaign.name\"]. Required unless 'query' is given."),
		),
		mcp.WithString("resource",
			mcp.Description("Resource to query FROM, e.g. 'campaign'. Required unless 'query' is given."),
		),
		mcp.WithString("conditions",
			mcp.Description("WHERE condition (string) or array of conditions, joined with AND, e.g. \"campaign.status = 'ENABLED'\""),
		),
		mcp.WithString("orderings",
			mcp.Description("ORDER BY clause (string) or array of clauses, e.g. \"metrics.clicks DESC\""),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of rows (LIMIT clause). Omit for no limit."),
		),
	)

	handler := func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, _ := request.Params.Arguments.(map[string]interface{})

		rawCustomerID, ok := args["customer_id"].(string)
		if !ok || rawCustomerID == "" {
			return mcp.NewToolResultError("customer_id is required"), nil
		}

		customerID, err := ads.NormalizeCustomerID(rawCustomerID)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid customer_id %q: %v", rawCustomerID, err)), nil
		}

		spec, err := querySpecFromArgs(args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		query, err := spec.Build()
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid query parameters: %v", err)), nil
		}

		client, err := getAdsClient(ctx, sc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		rows, err := client.Search(ctx, customerID, query)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Search failed: %v", err)), nil
		}

		if inv := instrumentation.InvocationFromContext(ctx); inv != nil {
			inv.WithQuery(query).WithRowCount(len(rows))
		}

		slog.Info("search completed",
			logging.CustomerHash(customerID),
			slog.Int("rows", len(rows)),
		)

		payload := searchResult{
			CustomerID: customerID,
			Query:      query,
			RowCount:   len(rows),
			Rows:       rows,
		}
		if payload.Rows == nil {
			payload.Rows = []ads.Row{}
		}

		result, _ := json.MarshalIndent(payload, "", "  ")
		return mcp.NewToolResultText(string(result)), nil
	}

	s.AddTool(searchTool, common.InstrumentedToolHandlerWithOperation(
		"search", instrumentation.OperationSearch, sc, handler))
	return nil
}

// querySpecFromArgs assembles a QuerySpec from the tool arguments. A raw
// query wins over the structured parameters; passing both logs a warning so
// silently ignored parameters are visible.
func querySpecFromArgs(args map[string]interface{}) (ads.QuerySpec, error) {
	var spec ads.QuerySpec

	if queryVal, ok := args["query"].(string); ok {
		spec.Query = queryVal
	}

	fields, err := common.OptionalStringOrArray(args["fields"], "fields")
	if err != nil {
		return ads.QuerySpec{}, err
	}
	spec.Fields = fields

	if resourceVal, ok := args["resource"].(string); ok {
		spec.Resource = resourceVal
	}

	conditions, err := common.OptionalStringOrArray(args["conditions"], "conditions")
	if err != nil {
		return ads.QuerySpec{}, err
	}
	spec.Conditions = conditions

	orderings, err := common.OptionalStringOrArray(args["orderings"], "orderings")
	if err != nil {
		return ads.QuerySpec{}, err
	}
	spec.Orderings = orderings

	if limitVal, ok := args["limit"].(float64); ok {
		// JSON numbers arrive as float64; a fractional limit is a caller
		// mistake, not something to truncate silently.
		if limitVal != math.Trunc(limitVal) {
			return ads.QuerySpec{}, fmt.Errorf("%w: limit must be an integer, got %v", ads.ErrInvalidQuerySpec, limitVal)
		}
		spec.Limit = int(limitVal)
	}

	if spec.IsRaw() && spec.HasStructuredParams() {
		slog.Warn("both query and structured parameters given; using query verbatim")
	}

	return spec, nil
}
