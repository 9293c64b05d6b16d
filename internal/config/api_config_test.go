package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "api_config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadAPIConfig_Success(t *testing.T) {
	path := writeConfig(t, `protected_mode: true
protected_tokens: ["secret"]
rate_limit:
  enabled: true
  backend: redis
  requests_per_minute: 30
urls:
  return_type: sha256
  path_replace_regex: "^/data"
  url_prefix: "https://cdn.example.com"
  url_postfix: ".webp"
api_mode_config:
  default_api_key: "sk-test"
  default_base_url: "https://api.example.com/v1"
generate_cache: true
engine:
  endpoint: "http://engine:9000"
  timeout: 5s
`)

	cfg, err := LoadAPIConfigFile(path)
	if err != nil {
		t.Fatalf("LoadAPIConfigFile() failed: %v", err)
	}

	if !cfg.ProtectedMode || len(cfg.ProtectedTokens) != 1 {
		t.Errorf("Expected protected mode with one token, got %v %v", cfg.ProtectedMode, cfg.ProtectedTokens)
	}
	if cfg.RateLimit.Backend != RateLimitBackendRedis {
		t.Errorf("Expected redis backend, got %s", cfg.RateLimit.Backend)
	}
	if cfg.RateLimit.RequestsPerMinute != 30 {
		t.Errorf("Expected requests_per_minute=30, got %d", cfg.RateLimit.RequestsPerMinute)
	}
	// Burst inherits the default
	if cfg.RateLimit.Burst != 10 {
		t.Errorf("Expected default burst=10, got %d", cfg.RateLimit.Burst)
	}
	if cfg.URLs.ReturnType != ReturnTypeSha256 {
		t.Errorf("Expected sha256 return type, got %s", cfg.URLs.ReturnType)
	}
	if cfg.APIModeConfig.DefaultAPIKey != "sk-test" {
		t.Errorf("Expected default api key, got %q", cfg.APIModeConfig.DefaultAPIKey)
	}
	if !cfg.GenerateCache {
		t.Error("Expected generate_cache=true")
	}
	if cfg.Engine.Timeout != 5*time.Second {
		t.Errorf("Expected engine timeout 5s, got %s", cfg.Engine.Timeout)
	}
	if cfg.Server.Addr() != "0.0.0.0:8000" {
		t.Errorf("Expected default address 0.0.0.0:8000, got %s", cfg.Server.Addr())
	}
}

func TestLoadAPIConfig_FileNotFound(t *testing.T) {
	_, err := LoadAPIConfigFile("/nonexistent/path/api_config.yaml")
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadAPIConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `urls: [unterminated
`)

	_, err := LoadAPIConfigFile(path)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *APIConfig)
		wantErr string
	}{
		{
			name:    "unknown return type",
			mutate:  func(c *APIConfig) { c.URLs.ReturnType = "url" },
			wantErr: "invalid urls.return_type",
		},
		{
			name:    "bad regex",
			mutate:  func(c *APIConfig) { c.URLs.PathReplaceRegex = "([a-z" },
			wantErr: "invalid urls.path_replace_regex",
		},
		{
			name:    "protected mode without tokens",
			mutate:  func(c *APIConfig) { c.ProtectedMode = true },
			wantErr: "no protected_tokens",
		},
		{
			name: "unknown rate limit backend",
			mutate: func(c *APIConfig) {
				c.RateLimit.Enabled = true
				c.RateLimit.Backend = "memcached"
			},
			wantErr: "invalid rate_limit.backend",
		},
		{
			name:    "rewrite without model",
			mutate:  func(c *APIConfig) { c.AISearch.RewriteEnabled = true },
			wantErr: "requires ai_search.model_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Expected validation error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Expected %q error, got: %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config should be valid, got: %v", err)
	}
	if cfg.URLs.ReturnType != ReturnTypeAbsPath {
		t.Errorf("Expected abs_path default, got %s", cfg.URLs.ReturnType)
	}
}
