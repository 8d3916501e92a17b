package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	Auth   AuthConfig   `yaml:"auth"`
	Member MemberConfig `yaml:"member"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// AuthConfig holds the session signing secret and LINE Login settings.
type AuthConfig struct {
	JWTSecret  string        `yaml:"jwtSecret"`
	SessionTTL time.Duration `yaml:"sessionTtl"`
	Line       LineConfig    `yaml:"line"`
}

// LineConfig describes the LINE Login channel and endpoints.
// The endpoint URLs default to the production LINE platform and are
// overridable so tests can point at a stub provider.
type LineConfig struct {
	ChannelID          string `yaml:"channelId"`
	ChannelSecret      string `yaml:"channelSecret"`
	RedirectURL        string `yaml:"redirectUrl"`
	AuthorizeURL       string `yaml:"authorizeUrl"`
	TokenURL           string `yaml:"tokenUrl"`
	ProfileURL         string `yaml:"profileUrl"`
	PostLoginPath      string `yaml:"postLoginPath"`
	EchoMemberFragment bool   `yaml:"echoMemberFragment"`
}

// MemberConfig contains member storage and cache settings.
type MemberConfig struct {
	CacheTTL time.Duration  `yaml:"cacheTtl"`
	Valkey   ValkeyConfig   `yaml:"valkey"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// ValkeyConfig contains connection information for the member cache.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		cfg.HTTP.AllowedOrigins = origins
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Auth.SessionTTL = parsed
		}
	}
	if v := os.Getenv("LINE_CHANNEL_ID"); v != "" {
		cfg.Auth.Line.ChannelID = v
	}
	if v := os.Getenv("LINE_CHANNEL_SECRET"); v != "" {
		cfg.Auth.Line.ChannelSecret = v
	}
	if v := os.Getenv("LINE_REDIRECT_URL"); v != "" {
		cfg.Auth.Line.RedirectURL = v
	}
	if v := os.Getenv("POST_LOGIN_PATH"); v != "" {
		cfg.Auth.Line.PostLoginPath = v
	}
	if v := os.Getenv("ECHO_MEMBER_FRAGMENT"); v != "" {
		cfg.Auth.Line.EchoMemberFragment = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("MEMBER_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Member.CacheTTL = parsed
		}
	}
	if v := os.Getenv("MEMBER_VALKEY_ENABLED"); v != "" {
		cfg.Member.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("MEMBER_VALKEY_ADDR"); v != "" {
		cfg.Member.Valkey.Addr = v
	}
	if v := os.Getenv("MEMBER_POSTGRES_DSN"); v != "" {
		cfg.Member.Postgres.DSN = v
	}
	if v := os.Getenv("MEMBER_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Member.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("MEMBER_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Member.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			AllowedOrigins: []string{
				"https://thetensy.com",
				"https://www.thetensy.com",
				"http://localhost:4321",
				"http://localhost:3000",
			},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Auth: AuthConfig{
			SessionTTL: 30 * 24 * time.Hour,
			Line: LineConfig{
				AuthorizeURL:  "https://access.line.me/oauth2/v2.1/authorize",
				TokenURL:      "https://api.line.me/oauth2/v2.1/token",
				ProfileURL:    "https://api.line.me/v2/profile",
				PostLoginPath: "/member",
			},
		},
		Member: MemberConfig{
			CacheTTL: time.Hour,
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		return errors.New("auth.jwtSecret cannot be empty")
	}
	if c.Auth.SessionTTL <= 0 {
		return errors.New("auth.sessionTtl must be positive")
	}
	if strings.TrimSpace(c.Auth.Line.ChannelID) == "" {
		return errors.New("auth.line.channelId cannot be empty")
	}
	if strings.TrimSpace(c.Auth.Line.ChannelSecret) == "" {
		return errors.New("auth.line.channelSecret cannot be empty")
	}
	if strings.TrimSpace(c.Auth.Line.RedirectURL) == "" {
		return errors.New("auth.line.redirectUrl cannot be empty")
	}
	if c.Auth.Line.PostLoginPath == "" {
		return errors.New("auth.line.postLoginPath cannot be empty")
	}
	if c.Member.CacheTTL < 0 {
		return errors.New("member.cacheTtl cannot be negative")
	}
	if c.Member.Valkey.Enabled && strings.TrimSpace(c.Member.Valkey.Addr) == "" {
		return errors.New("member.valkey.addr cannot be empty when the cache is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
