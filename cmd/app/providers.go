package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/thetensy/tensy-api/internal/domain/auth"
	"github.com/thetensy/tensy-api/internal/domain/member"
	"github.com/thetensy/tensy-api/internal/infra/config"
	"github.com/thetensy/tensy-api/internal/infra/memberrepo"
	"github.com/thetensy/tensy-api/internal/infra/memberstore"
)

func provideAuthConfig(cfg *config.Config) auth.Config {
	return auth.Config{
		Secret:     cfg.Auth.JWTSecret,
		SessionTTL: cfg.Auth.SessionTTL,
		Line: auth.LineConfig{
			ChannelID:     cfg.Auth.Line.ChannelID,
			ChannelSecret: cfg.Auth.Line.ChannelSecret,
			RedirectURL:   cfg.Auth.Line.RedirectURL,
			AuthorizeURL:  cfg.Auth.Line.AuthorizeURL,
			TokenURL:      cfg.Auth.Line.TokenURL,
			ProfileURL:    cfg.Auth.Line.ProfileURL,
		},
	}
}

func provideLineClient(authCfg auth.Config) *auth.LineClient {
	return auth.NewLineClient(authCfg.Line)
}

func provideMemberConfig(cfg *config.Config) member.Config {
	return member.Config{CacheTTL: cfg.Member.CacheTTL}
}

func provideMemberRepository(cfg *config.Config, logger *slog.Logger) member.Repository {
	fallback := memberrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Member.Postgres.DSN)
	if dsn == "" {
		logger.Info("member postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.Member.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Member.Postgres.MaxConns
	}
	if cfg.Member.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Member.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("member postgres repository enabled")
	return memberrepo.NewPostgresRepository(pool)
}

func provideMemberStore(cfg *config.Config, logger *slog.Logger) member.Store {
	if cfg.Member.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return memberstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return memberstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("member valkey store enabled", "addr", cfg.Member.Valkey.Addr)
			return memberstore.NewValkeyStore(client, "member")
		}
	}
	return memberstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Member.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Member.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Member.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
