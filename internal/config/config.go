package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppCfg struct{ Env, Port string }

type APICfg struct {
	BackendURL        string
	BaseURL           string
	ScreenshotBaseURL string
	TimeoutSec        int
	ReadyTimeout      time.Duration
}

type DBCfg struct{ DSN string }

type RedisCfg struct {
	Addr string
	TTL  time.Duration
}

type LogCfg struct{ Level string }

type Cfg struct {
	App   AppCfg
	API   APICfg
	DB    DBCfg
	Redis RedisCfg
	Log   LogCfg
}

// IsDev reports whether the console runs in local development mode
func (c Cfg) IsDev() bool {
	return c.App.Env == "dev"
}

// Load reads .env and the environment, exiting on invalid settings
func Load() Cfg {
	// .env is optional; real environment variables win
	_ = godotenv.Load(".env")

	cfg, err := FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	return cfg
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (Cfg, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("APP_PORT", "8090")
	v.SetDefault("WITNESS_BACKEND_URL", "http://127.0.0.1:7171")
	v.SetDefault("WITNESS_API_TIMEOUT_SEC", 30)
	v.SetDefault("WITNESS_READY_TIMEOUT", "30s")
	v.SetDefault("REDIS_TTL", "10m")
	v.SetDefault("LOG_LEVEL", "info")

	backend := strings.TrimRight(strings.TrimSpace(v.GetString("WITNESS_BACKEND_URL")), "/")
	if _, err := url.ParseRequestURI(backend); err != nil {
		return Cfg{}, fmt.Errorf("WITNESS_BACKEND_URL %q: %w", backend, err)
	}

	apiBase := strings.TrimRight(strings.TrimSpace(v.GetString("WITNESS_API_BASE_URL")), "/")
	if apiBase == "" {
		apiBase = backend + "/api"
	}
	shots := strings.TrimRight(strings.TrimSpace(v.GetString("WITNESS_SCREENSHOT_BASE_URL")), "/")
	if shots == "" {
		shots = backend + "/screenshots"
	}

	cfg := Cfg{
		App: AppCfg{
			Env:  v.GetString("APP_ENV"),
			Port: v.GetString("APP_PORT"),
		},
		API: APICfg{
			BackendURL:        backend,
			BaseURL:           apiBase,
			ScreenshotBaseURL: shots,
			TimeoutSec:        v.GetInt("WITNESS_API_TIMEOUT_SEC"),
			ReadyTimeout:      v.GetDuration("WITNESS_READY_TIMEOUT"),
		},
		DB: DBCfg{DSN: v.GetString("DB_DSN")},
		Redis: RedisCfg{
			Addr: v.GetString("REDIS_ADDR"),
			TTL:  v.GetDuration("REDIS_TTL"),
		},
		Log: LogCfg{Level: strings.ToLower(v.GetString("LOG_LEVEL"))},
	}

	if cfg.API.TimeoutSec < 0 {
		return Cfg{}, fmt.Errorf("WITNESS_API_TIMEOUT_SEC must not be negative")
	}
	return cfg, nil
}
