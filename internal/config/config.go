package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Environment variables making up the Google Ads configuration surface.
const (
	// EnvDeveloperToken holds the Ads API developer token. It overrides a
	// developer_token embedded in google-ads.yaml.
	EnvDeveloperToken = "GOOGLE_ADS_DEVELOPER_TOKEN"

	// EnvLoginCustomerID holds the manager (login) customer id. It
	// overrides a login_customer_id embedded in google-ads.yaml.
	EnvLoginCustomerID = "GOOGLE_ADS_LOGIN_CUSTOMER_ID"

	// EnvCredentialsBase64 holds a base64-encoded service-account JSON key.
	// Takes precedence over every other credential source.
	EnvCredentialsBase64 = "GOOGLE_CREDENTIALS_BASE64"

	// EnvCredentialsFile holds the path to a service-account JSON key file.
	EnvCredentialsFile = "GOOGLE_APPLICATION_CREDENTIALS"

	// EnvYAMLPath overrides the google-ads.yaml location.
	EnvYAMLPath = "GOOGLE_ADS_YAML_PATH"
)

// DefaultYAMLPath is where google-ads.yaml is looked up when EnvYAMLPath
// is not set.
const DefaultYAMLPath = "google-ads.yaml"

// Ads holds the raw configuration surface for the Google Ads client,
// captured once at startup. Credential resolution order and precedence
// rules live in the ads package; this struct only carries what was
// configured.
type Ads struct {
	DeveloperToken    string
	LoginCustomerID   string
	CredentialsBase64 string
	CredentialsFile   string
	YAMLPath          string
}

// FromEnv reads the Ads configuration surface from the environment.
func FromEnv() Ads {
	return Ads{
		DeveloperToken:    os.Getenv(EnvDeveloperToken),
		LoginCustomerID:   os.Getenv(EnvLoginCustomerID),
		CredentialsBase64: os.Getenv(EnvCredentialsBase64),
		CredentialsFile:   os.Getenv(EnvCredentialsFile),
		YAMLPath:          getEnvOrDefault(EnvYAMLPath, DefaultYAMLPath),
	}
}

// HasCredentialSource reports whether any credential source is configured:
// a base64 blob, a key file path, or a readable google-ads.yaml.
func (a Ads) HasCredentialSource() bool {
	if a.CredentialsBase64 != "" || a.CredentialsFile != "" {
		return true
	}
	_, err := os.Stat(a.YAMLPath)
	return err == nil
}

// yamlScalar accepts both quoted and unquoted YAML scalars as strings.
// google-ads.yaml in the wild carries login_customer_id as a bare integer.
type yamlScalar string

func (s *yamlScalar) UnmarshalYAML(value *yaml.Node) error {
	*s = yamlScalar(value.Value)
	return nil
}

// AdsYAML mirrors the subset of google-ads.yaml this server consumes.
type AdsYAML struct {
	DeveloperToken  yamlScalar `yaml:"developer_token"`
	LoginCustomerID yamlScalar `yaml:"login_customer_id"`
	JSONKeyFilePath yamlScalar `yaml:"json_key_file_path"`
}

// LoadAdsYAML reads and parses a google-ads.yaml file.
func LoadAdsYAML(path string) (*AdsYAML, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var parsed AdsYAML
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &parsed, nil
}

// Values returns the parsed fields as plain strings.
func (y *AdsYAML) Values() (developerToken, loginCustomerID, keyFilePath string) {
	return string(y.DeveloperToken), string(y.LoginCustomerID), string(y.JSONKeyFilePath)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
