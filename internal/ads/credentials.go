package ads

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/adsmcp/google-ads-mcp/internal/config"
)

// ReadOnlyScope is the OAuth scope for read-only Google Ads API access.
const ReadOnlyScope = "https://www.googleapis.com/auth/adwords"

// AuthContext carries the per-request authorization metadata attached to
// every outbound Ads API call. Immutable after resolution.
type AuthContext struct {
	DeveloperToken  string
	LoginCustomerID string // digits-only; empty means no manager impersonation
}

// ResolveCredentials turns the configuration surface into a token source
// and an AuthContext. Resolution order, first match wins:
//
//  1. base64-encoded service-account blob
//  2. service-account key file path
//  3. google-ads.yaml (developer token, login customer id, key file path)
//
// The environment developer-token and login-customer-id values override
// anything embedded in the YAML file. Resolution performs no network I/O;
// the token source fetches its first token lazily on the first API call.
func ResolveCredentials(ctx context.Context, cfg config.Ads) (oauth2.TokenSource, AuthContext, error) {
	developerToken := cfg.DeveloperToken
	loginCustomerID := cfg.LoginCustomerID

	var keyJSON []byte

	switch {
	case cfg.CredentialsBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(cfg.CredentialsBase64)
		if err != nil {
			return nil, AuthContext{}, fmt.Errorf("%w: %v", ErrCredentialDecode, err)
		}
		keyJSON = decoded
		slog.Debug("resolved credentials from base64 blob")

	case cfg.CredentialsFile != "":
		data, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, AuthContext{}, fmt.Errorf("%w: %s", ErrCredentialNotFound, cfg.CredentialsFile)
			}
			return nil, AuthContext{}, fmt.Errorf("%w: %v", ErrCredentialParse, err)
		}
		keyJSON = data
		slog.Debug("resolved credentials from key file", "path", cfg.CredentialsFile)

	default:
		if _, err := os.Stat(cfg.YAMLPath); err != nil {
			return nil, AuthContext{}, fmt.Errorf("%w: set %s, %s, or provide %s",
				ErrMissingCredentials,
				config.EnvCredentialsBase64, config.EnvCredentialsFile, cfg.YAMLPath)
		}

		parsed, err := config.LoadAdsYAML(cfg.YAMLPath)
		if err != nil {
			return nil, AuthContext{}, fmt.Errorf("%w: %v", ErrCredentialParse, err)
		}
		yamlToken, yamlLoginID, keyPath := parsed.Values()

		// Environment takes precedence over YAML-embedded values.
		if developerToken == "" {
			developerToken = yamlToken
		}
		if loginCustomerID == "" {
			loginCustomerID = yamlLoginID
		}
		if keyPath == "" {
			return nil, AuthContext{}, fmt.Errorf("%w: %s has no json_key_file_path", ErrMissingCredentials, cfg.YAMLPath)
		}

		data, err := os.ReadFile(keyPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, AuthContext{}, fmt.Errorf("%w: %s", ErrCredentialNotFound, keyPath)
			}
			return nil, AuthContext{}, fmt.Errorf("%w: %v", ErrCredentialParse, err)
		}
		keyJSON = data
		slog.Debug("resolved credentials from YAML config", "path", cfg.YAMLPath)
	}

	creds, err := google.CredentialsFromJSON(ctx, keyJSON, ReadOnlyScope)
	if err != nil {
		// A bad base64 payload and a bad file are reported distinctly.
		if cfg.CredentialsBase64 != "" {
			return nil, AuthContext{}, fmt.Errorf("%w: %v", ErrCredentialDecode, err)
		}
		return nil, AuthContext{}, fmt.Errorf("%w: %v", ErrCredentialParse, err)
	}

	if developerToken == "" {
		return nil, AuthContext{}, fmt.Errorf("%w: set %s", ErrMissingDeveloperToken, config.EnvDeveloperToken)
	}

	auth := AuthContext{DeveloperToken: developerToken}
	if loginCustomerID != "" {
		normalized, err := NormalizeCustomerID(loginCustomerID)
		if err != nil {
			return nil, AuthContext{}, fmt.Errorf("login customer id: %w", err)
		}
		auth.LoginCustomerID = normalized
	}

	return creds.TokenSource, auth, nil
}
