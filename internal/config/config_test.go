package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv(EnvDeveloperToken, "")
	t.Setenv(EnvLoginCustomerID, "")
	t.Setenv(EnvCredentialsBase64, "")
	t.Setenv(EnvCredentialsFile, "")
	t.Setenv(EnvYAMLPath, "")

	cfg := FromEnv()

	if cfg.YAMLPath != DefaultYAMLPath {
		t.Errorf("YAMLPath = %q, want %q", cfg.YAMLPath, DefaultYAMLPath)
	}
	if cfg.DeveloperToken != "" || cfg.CredentialsBase64 != "" || cfg.CredentialsFile != "" {
		t.Error("unset environment should yield empty config values")
	}
}

func TestFromEnv_ReadsAllVariables(t *testing.T) {
	t.Setenv(EnvDeveloperToken, "dev-token")
	t.Setenv(EnvLoginCustomerID, "1234567890")
	t.Setenv(EnvCredentialsBase64, "blob")
	t.Setenv(EnvCredentialsFile, "/tmp/key.json")
	t.Setenv(EnvYAMLPath, "/etc/google-ads.yaml")

	cfg := FromEnv()

	if cfg.DeveloperToken != "dev-token" {
		t.Errorf("DeveloperToken = %q", cfg.DeveloperToken)
	}
	if cfg.LoginCustomerID != "1234567890" {
		t.Errorf("LoginCustomerID = %q", cfg.LoginCustomerID)
	}
	if cfg.CredentialsBase64 != "blob" {
		t.Errorf("CredentialsBase64 = %q", cfg.CredentialsBase64)
	}
	if cfg.CredentialsFile != "/tmp/key.json" {
		t.Errorf("CredentialsFile = %q", cfg.CredentialsFile)
	}
	if cfg.YAMLPath != "/etc/google-ads.yaml" {
		t.Errorf("YAMLPath = %q", cfg.YAMLPath)
	}
}

func TestHasCredentialSource(t *testing.T) {
	if (Ads{YAMLPath: "does-not-exist.yaml"}).HasCredentialSource() {
		t.Error("no source configured should report false")
	}
	if !(Ads{CredentialsBase64: "blob", YAMLPath: "does-not-exist.yaml"}).HasCredentialSource() {
		t.Error("base64 blob should count as a source")
	}
	if !(Ads{CredentialsFile: "/tmp/key.json", YAMLPath: "does-not-exist.yaml"}).HasCredentialSource() {
		t.Error("key file path should count as a source")
	}

	yamlPath := filepath.Join(t.TempDir(), "google-ads.yaml")
	if err := os.WriteFile(yamlPath, []byte("developer_token: x\n"), 0o600); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}
	if !(Ads{YAMLPath: yamlPath}).HasCredentialSource() {
		t.Error("existing yaml file should count as a source")
	}
}

func TestLoadAdsYAML(t *testing.T) {
	yamlPath := filepath.Join(t.TempDir(), "google-ads.yaml")
	content := `developer_token: abcDEF123
login_customer_id: 1234567890
json_key_file_path: /secrets/key.json
`
	if err := os.WriteFile(yamlPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}

	parsed, err := LoadAdsYAML(yamlPath)
	if err != nil {
		t.Fatalf("LoadAdsYAML failed: %v", err)
	}

	token, loginID, keyPath := parsed.Values()
	if token != "abcDEF123" {
		t.Errorf("developer_token = %q", token)
	}
	if loginID != "1234567890" {
		t.Errorf("login_customer_id = %q", loginID)
	}
	if keyPath != "/secrets/key.json" {
		t.Errorf("json_key_file_path = %q", keyPath)
	}
}

func TestLoadAdsYAML_BareIntegerLoginID(t *testing.T) {
	// google-ads.yaml in the wild carries login_customer_id unquoted.
	yamlPath := filepath.Join(t.TempDir(), "google-ads.yaml")
	content := "login_customer_id: 9876543210\n"
	if err := os.WriteFile(yamlPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}

	parsed, err := LoadAdsYAML(yamlPath)
	if err != nil {
		t.Fatalf("LoadAdsYAML failed: %v", err)
	}

	_, loginID, _ := parsed.Values()
	if loginID != "9876543210" {
		t.Errorf("login_customer_id = %q, want 9876543210", loginID)
	}
}

func TestLoadAdsYAML_Missing(t *testing.T) {
	if _, err := LoadAdsYAML(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadAdsYAML should fail for a missing file")
	}
}

func TestLoadAdsYAML_Malformed(t *testing.T) {
	yamlPath := filepath.Join(t.TempDir(), "google-ads.yaml")
	if err := os.WriteFile(yamlPath, []byte(":\n  - not yaml: ["), 0o600); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}

	if _, err := LoadAdsYAML(yamlPath); err == nil {
		t.Error("LoadAdsYAML should fail for malformed yaml")
	}
}
