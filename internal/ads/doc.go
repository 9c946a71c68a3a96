// Package ads provides a client for the Google Ads reporting REST API.
//
// The package covers the credential and authorization pipeline for
// server-to-server access:
//   - Credential resolution from a base64-encoded service-account key, a
//     key file path, or a google-ads.yaml configuration file
//   - A single http.RoundTripper that attaches the developer-token and
//     login-customer-id headers to every outbound call
//   - GAQL query construction from structured search parameters
//   - The two reporting operations: listing accessible customer accounts
//     and executing a search query against a customer account
//
// Authentication uses a service account with the read-only Ads scope. The
// developer token and optional manager (login) customer id are taken from
// the environment and override any values embedded in google-ads.yaml.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := ads.NewClient(ctx, config.FromEnv())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ids, err := client.ListAccessibleCustomers(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spec := ads.QuerySpec{
//	    Fields:   []string{"campaign.id", "campaign.name"},
//	    Resource: "campaign",
//	}
//	query, err := spec.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rows, err := client.Search(ctx, ids[0], query)
package ads
