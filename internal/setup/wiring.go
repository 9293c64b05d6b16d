package setup

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/povarna/generative-ai-agents/vvquest-api/internal/api"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/cachejob"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/community"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/config"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/engine"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/llm"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/llm/gpt"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/postprocess"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/ratelimit"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/redis"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/rewrite"
	"github.com/povarna/generative-ai-agents/vvquest-api/internal/search"
	"github.com/rs/zerolog"
)

const (
	limiterSweepInterval = time.Minute
	limiterIdleTTL       = 10 * time.Minute
)

type Config struct {
	APIConfigPath string
	SettingsPath  string
	LogLevel      string
	Port          string
}

type Dependencies struct {
	APIConfig      *config.APIConfig
	Settings       *config.Settings
	Store          *config.Store
	EngineSettings *engine.Settings
	Engine         engine.Engine
	Search         *search.Service
	Cache          *cachejob.Runner
	Community      *community.Builder
	Limiter        ratelimit.Limiter
	Handler        *api.Handler
	Logger         *zerolog.Logger

	closers []func() error
}

func LoadConfig() *Config {
	return &Config{
		APIConfigPath: getEnv("API_CONFIG_PATH", "configs/api_config.yaml"),
		SettingsPath:  getEnv("SETTINGS_PATH", "configs/settings.yaml"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Port:          getEnv("VVQUEST_API_PORT", ""),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	apiCfg, err := loadAPIConfig(cfg.APIConfigPath, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Port != "" {
		apiCfg.Server.Port = cfg.Port
	}

	store := config.NewStore(cfg.SettingsPath)
	settings, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	engineSettings := engine.NewSettings(engine.Credentials{
		Model:   settings.EmbeddingModel,
		APIKey:  settings.APIKey,
		BaseURL: settings.BaseURL,
	})
	engineSettings.Seed(apiCfg.APIModeConfig.DefaultAPIKey, apiCfg.APIModeConfig.DefaultBaseURL)

	eng := engine.NewClient(engine.ClientConfig{
		Endpoint: apiCfg.Engine.Endpoint,
		Timeout:  apiCfg.Engine.Timeout,
	})

	processor, err := postprocess.New(apiCfg.URLs, settings.BaseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to build result processor: %w", err)
	}

	var rewriter search.QueryRewriter
	if apiCfg.AISearch.RewriteEnabled {
		llmClient, err := createLLMClient(ctx, apiCfg.AISearch)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", apiCfg.AISearch.Provider, err)
		}
		rewriter = rewrite.NewRewriter(llmClient, logger)
	}

	deps := &Dependencies{
		APIConfig:      apiCfg,
		Settings:       settings,
		Store:          store,
		EngineSettings: engineSettings,
		Engine:         eng,
		Logger:         logger,
	}

	deps.Search = search.NewService(eng, engineSettings, processor, rewriter, logger)
	deps.Cache = cachejob.NewRunner(eng, engineSettings, logger)
	deps.Community = community.NewBuilder(settings.ResourcePacksDir, settings.TempDir, logger)

	if apiCfg.RateLimit.Enabled {
		deps.Limiter = deps.createLimiter(ctx, apiCfg.RateLimit)
	}

	deps.Handler = api.NewHandler(
		deps.Search,
		deps.Cache,
		deps.Community,
		engineSettings,
		store,
		deps.Community.ManifestPath(),
		logger,
	)

	return deps, nil
}

// Start launches the background workers owned by the dependencies. They stop
// when ctx is cancelled.
func (d *Dependencies) Start(ctx context.Context) {
	if mem, ok := d.Limiter.(*ratelimit.MemoryLimiter); ok {
		go mem.RunSweeper(ctx, limiterSweepInterval, limiterIdleTTL)
	}

	watcher, err := community.NewWatcher(d.Settings.ResourcePacksDir, d.Community.ManifestPath(), d.Logger)
	if err != nil {
		d.Logger.Warn().Err(err).Msg("Resource pack watcher disabled")
		return
	}
	go watcher.Run(ctx)
}

func (d *Dependencies) Close() error {
	var errs []error
	for _, closeFn := range d.closers {
		errs = append(errs, closeFn())
	}
	return errors.Join(errs...)
}

func (d *Dependencies) createLimiter(ctx context.Context, cfg config.RateLimitConfig) ratelimit.Limiter {
	if cfg.Backend == config.RateLimitBackendRedis {
		client, err := redis.Connect(ctx, redis.Options{
			Addr:       cfg.RedisAddr,
			Password:   cfg.RedisPassword,
			MaxRetries: 3,
		}, d.Logger)
		if err == nil {
			d.closers = append(d.closers, client.Close)
			return ratelimit.NewRedisLimiter(client, cfg.RequestsPerMinute)
		}
		d.Logger.Warn().Err(err).Msg("Falling back to in-memory rate limiter")
	}

	return ratelimit.NewMemoryLimiter(cfg.RequestsPerMinute, cfg.Burst)
}

func loadAPIConfig(path string, logger *zerolog.Logger) (*config.APIConfig, error) {
	cfg, err := config.LoadAPIConfigFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("path", path).Msg("API config not found, using defaults")
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load api config: %w", err)
	}
	return cfg, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, cfg config.AISearchConfig) (llm.LLMClient, error) {
	switch cfg.Provider {
	case config.RewriteProviderOpenAI:
		return gpt.NewClient(cfg.APIKey, cfg.BaseURL, cfg.ModelID)
	default:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ModelID)
	}
}
