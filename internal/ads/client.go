package ads

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/adsmcp/google-ads-mcp/internal/config"
)

const (
	defaultEndpoint = "https://googleads.googleapis.com"
	apiVersion      = "v21"
)

// Client wraps the Google Ads reporting REST API. A single Client is safe
// for concurrent use: it holds no per-call state, and the header transport
// it carries is immutable after construction.
type Client struct {
	httpClient *http.Client
	endpoint   string
	auth       AuthContext
}

// NewClient resolves credentials and builds an authenticated Ads client.
// The returned client authenticates via the resolved service-account token
// source and attaches the developer-token and login-customer-id headers to
// every call through a single wrapped transport. Construction failures are
// wrapped in *InitError; the underlying cause stays visible to errors.Is.
func NewClient(ctx context.Context, cfg config.Ads) (*Client, error) {
	ts, auth, err := ResolveCredentials(ctx, cfg)
	if err != nil {
		return nil, &InitError{Err: err}
	}

	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Transport = &headerTransport{base: httpClient.Transport, auth: auth}

	return &Client{
		httpClient: httpClient,
		endpoint:   defaultEndpoint,
		auth:       auth,
	}, nil
}

// AuthContext returns the resolved authorization metadata.
func (c *Client) AuthContext() AuthContext {
	return c.auth
}

// Row is a flattened result row keyed by the snake_case field paths from
// the response field mask, e.g. {"campaign.id": "123", "campaign.name": "x"}.
type Row map[string]any

type accessibleCustomersResponse struct {
	ResourceNames []string `json:"resourceNames"`
}

type searchRequest struct {
	Query     string `json:"query"`
	PageToken string `json:"pageToken,omitempty"`
}

type searchResponse struct {
	Results       []map[string]any `json:"results"`
	NextPageToken string           `json:"nextPageToken,omitempty"`
	FieldMask     string           `json:"fieldMask,omitempty"`
}

// ListAccessibleCustomers returns the ids of customers directly accessible
// by the authenticated service account, in the order the API returns them.
func (c *Client) ListAccessibleCustomers(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/%s/customers:listAccessibleCustomers", c.endpoint, apiVersion)

	var resp accessibleCustomersResponse
	if err := c.do(ctx, http.MethodGet, url, nil, &resp); err != nil {
		return nil, c.apiError("listAccessibleCustomers", "", "", err)
	}

	ids := make([]string, 0, len(resp.ResourceNames))
	for _, name := range resp.ResourceNames {
		ids = append(ids, strings.TrimPrefix(name, "customers/"))
	}
	return ids, nil
}

// Search executes a GAQL query against a customer account and returns the
// flattened result rows in API order, following nextPageToken pagination
// until the result set is exhausted. customerID must already be normalized
// to digits-only.
func (c *Client) Search(ctx context.Context, customerID, query string) ([]Row, error) {
	url := fmt.Sprintf("%s/%s/customers/%s/googleAds:search", c.endpoint, apiVersion, customerID)

	var rows []Row
	pageToken := ""
	for {
		req := searchRequest{Query: query, PageToken: pageToken}

		var resp searchResponse
		if err := c.do(ctx, http.MethodPost, url, req, &resp); err != nil {
			// No partial results: a failed page fails the whole search.
			return nil, c.apiError("search", customerID, query, err)
		}

		paths := fieldMaskPaths(resp.FieldMask)
		for _, result := range resp.Results {
			rows = append(rows, flattenRow(result, paths))
		}

		if resp.NextPageToken == "" {
			return rows, nil
		}
		pageToken = resp.NextPageToken
	}
}

// do executes a single JSON request. Responses are decoded with UseNumber
// so 64-bit ids and micro amounts survive the round trip intact.
func (c *Client) do(ctx context.Context, method, url string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return err
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	return dec.Decode(out)
}

// apiError wraps a transport or vendor fault in *APIError, extracting the
// HTTP status code and google.rpc status when the response carried them.
func (c *Client) apiError(operation, customerID, query string, err error) error {
	apiErr := &APIError{
		Operation:  operation,
		CustomerID: customerID,
		Query:      query,
		Err:        err,
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		apiErr.StatusCode = gerr.Code
		apiErr.Message = gerr.Message

		// googleapi surfaces code and message; the rpc status string
		// ("PERMISSION_DENIED", "INVALID_ARGUMENT") only appears in the
		// raw body.
		var body struct {
			Error struct {
				Status  string `json:"status"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if jsonErr := json.Unmarshal([]byte(gerr.Body), &body); jsonErr == nil {
			apiErr.Status = body.Error.Status
			if apiErr.Message == "" {
				apiErr.Message = body.Error.Message
			}
		}
	}

	slog.Debug("Google Ads API call failed",
		"operation", operation,
		"status_code", apiErr.StatusCode,
		"status", apiErr.Status,
	)
	return apiErr
}

// fieldMaskPaths splits a response field mask ("campaign.id,campaign.name")
// into its paths. An empty mask yields nil.
func fieldMaskPaths(mask string) []string {
	if mask == "" {
		return nil
	}
	parts := strings.Split(mask, ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// flattenRow projects a raw result object onto the field-mask paths,
// keeping the snake_case path as the key. Without a mask the raw object is
// returned as-is. Paths absent from the result (unset optional fields) are
// omitted rather than reported as errors.
func flattenRow(raw map[string]any, paths []string) Row {
	if len(paths) == 0 {
		return Row(raw)
	}

	row := make(Row, len(paths))
	for _, path := range paths {
		if value, ok := lookupPath(raw, path); ok {
			row[path] = value
		}
	}
	return row
}

// lookupPath walks a snake_case dotted path ("metrics.cost_micros") through
// the camelCase JSON object the REST API returns.
func lookupPath(obj map[string]any, path string) (any, bool) {
	current := any(obj)
	for _, segment := range strings.Split(path, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[snakeToCamel(segment)]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

func snakeToCamel(s string) string {
	parts := strings.Split(s, "_")
	if len(parts) == 1 {
		return s
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, part := range parts[1:] {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}
