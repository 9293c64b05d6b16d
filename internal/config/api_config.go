package config

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// ReturnType selects how engine hits are rendered as external identifiers.
type ReturnType string

const (
	ReturnTypeAbsPath ReturnType = "abs_path"
	ReturnTypeRelPath ReturnType = "rel_path"
	ReturnTypeSha256  ReturnType = "sha256"
)

func (r ReturnType) Valid() bool {
	switch r {
	case ReturnTypeAbsPath, ReturnTypeRelPath, ReturnTypeSha256:
		return true
	}
	return false
}

type RateLimitBackend string

const (
	RateLimitBackendMemory RateLimitBackend = "memory"
	RateLimitBackendRedis  RateLimitBackend = "redis"
)

// APIConfig is the process-wide API configuration, loaded once at startup.
type APIConfig struct {
	ProtectedMode   bool            `yaml:"protected_mode"`
	ProtectedTokens []string        `yaml:"protected_tokens"`
	RateLimit       RateLimitConfig `yaml:"rate_limit"`
	URLs            URLConfig       `yaml:"urls"`
	APIModeConfig   APIModeConfig   `yaml:"api_mode_config"`
	GenerateCache   bool            `yaml:"generate_cache"`
	Engine          EngineConfig    `yaml:"engine"`
	AISearch        AISearchConfig  `yaml:"ai_search"`
	Server          ServerConfig    `yaml:"server"`
}

type RateLimitConfig struct {
	Enabled           bool             `yaml:"enabled"`
	Backend           RateLimitBackend `yaml:"backend"`
	RequestsPerMinute int              `yaml:"requests_per_minute"`
	Burst             int              `yaml:"burst"`
	RedisAddr         string           `yaml:"redis_addr"`
	RedisPassword     string           `yaml:"redis_password"`
}

type URLConfig struct {
	ReturnType       ReturnType `yaml:"return_type"`
	PathReplaceRegex string     `yaml:"path_replace_regex"`
	URLPrefix        string     `yaml:"url_prefix"`
	URLPostfix       string     `yaml:"url_postfix"`
}

type APIModeConfig struct {
	DefaultAPIKey  string `yaml:"default_api_key"`
	DefaultBaseURL string `yaml:"default_base_url"`
}

type EngineConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

type RewriteProvider string

const (
	RewriteProviderBedrock RewriteProvider = "bedrock"
	RewriteProviderOpenAI  RewriteProvider = "openai"
)

// AISearchConfig controls the optional query rewrite applied to ai_search requests.
// The openai provider falls back to api_mode_config credentials when its own are empty.
type AISearchConfig struct {
	RewriteEnabled bool            `yaml:"rewrite_enabled"`
	Provider       RewriteProvider `yaml:"provider"`
	AWSRegion      string          `yaml:"aws_region"`
	ModelID        string          `yaml:"model_id"`
	APIKey         string          `yaml:"api_key"`
	BaseURL        string          `yaml:"base_url"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

func LoadAPIConfigFile(path string) (*APIConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg APIConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns a config with every default applied, suitable when no file is present.
func Default() *APIConfig {
	cfg := &APIConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *APIConfig) {
	if cfg.URLs.ReturnType == "" {
		cfg.URLs.ReturnType = ReturnTypeAbsPath
	}
	if cfg.RateLimit.Backend == "" {
		cfg.RateLimit.Backend = RateLimitBackendMemory
	}
	if cfg.RateLimit.RequestsPerMinute == 0 {
		cfg.RateLimit.RequestsPerMinute = 60
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
	if cfg.RateLimit.RedisAddr == "" {
		cfg.RateLimit.RedisAddr = "localhost:6379"
	}
	if cfg.Engine.Endpoint == "" {
		cfg.Engine.Endpoint = "http://localhost:8001"
	}
	if cfg.Engine.Timeout == 0 {
		cfg.Engine.Timeout = 60 * time.Second
	}
	if cfg.AISearch.Provider == "" {
		cfg.AISearch.Provider = RewriteProviderBedrock
	}
	if cfg.AISearch.APIKey == "" {
		cfg.AISearch.APIKey = cfg.APIModeConfig.DefaultAPIKey
	}
	if cfg.AISearch.BaseURL == "" {
		cfg.AISearch.BaseURL = cfg.APIModeConfig.DefaultBaseURL
	}
	if cfg.AISearch.AWSRegion == "" {
		cfg.AISearch.AWSRegion = "us-east-1"
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8000"
	}
}

func (c *APIConfig) Validate() error {
	if !c.URLs.ReturnType.Valid() {
		return fmt.Errorf("invalid urls.return_type %q (expected abs_path, rel_path or sha256)", c.URLs.ReturnType)
	}

	if c.URLs.PathReplaceRegex != "" {
		if _, err := regexp.Compile(c.URLs.PathReplaceRegex); err != nil {
			return fmt.Errorf("invalid urls.path_replace_regex: %w", err)
		}
	}

	if c.ProtectedMode && len(c.ProtectedTokens) == 0 {
		return fmt.Errorf("protected_mode enabled but no protected_tokens configured")
	}

	if c.RateLimit.Enabled {
		switch c.RateLimit.Backend {
		case RateLimitBackendMemory, RateLimitBackendRedis:
		default:
			return fmt.Errorf("invalid rate_limit.backend %q", c.RateLimit.Backend)
		}
		if c.RateLimit.RequestsPerMinute < 0 || c.RateLimit.Burst < 0 {
			return fmt.Errorf("negative rate_limit quota")
		}
	}

	if c.AISearch.RewriteEnabled {
		if c.AISearch.ModelID == "" {
			return fmt.Errorf("ai_search.rewrite_enabled requires ai_search.model_id")
		}
		switch c.AISearch.Provider {
		case RewriteProviderBedrock, RewriteProviderOpenAI:
		default:
			return fmt.Errorf("invalid ai_search.provider %q", c.AISearch.Provider)
		}
	}

	return nil
}
