package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/thetensy/tensy-api/internal/domain/member"
	apperrors "github.com/thetensy/tensy-api/pkg/errors"
)

// Service exposes the LINE login workflows.
type Service interface {
	// LoginURL returns the provider authorize redirect for a fresh state.
	LoginURL(state string) string
	// Login runs the authorization-code exchange, maps the provider profile
	// to a member record, upserts it, and mints a session token.
	Login(ctx context.Context, code string) (LoginResult, error)
	// VerifySession validates a session token and returns its claims.
	VerifySession(ctx context.Context, token string) (SessionClaims, error)
}

type service struct {
	cfg      Config
	provider Provider
	members  member.Repository
	codec    *TokenCodec
	logger   *slog.Logger
}

// NewService constructs a Service instance.
func NewService(cfg Config, provider Provider, members member.Repository, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		provider: provider,
		members:  members,
		codec:    NewTokenCodec(cfg.Secret, cfg.SessionTTL),
		logger:   logger.With("component", "auth.service"),
	}
}

func (s *service) LoginURL(state string) string {
	return s.provider.AuthorizeURL(state)
}

func (s *service) Login(ctx context.Context, code string) (LoginResult, error) {
	accessToken, err := s.provider.Exchange(ctx, code)
	if err != nil {
		return LoginResult{}, err
	}

	profile, err := s.provider.FetchProfile(ctx, accessToken)
	if err != nil {
		return LoginResult{}, err
	}

	now := time.Now().UTC()
	m, err := s.members.Upsert(ctx, member.Member{
		ID:        MemberID(profile.UserID),
		LineID:    profile.UserID,
		Name:      profile.DisplayName,
		Avatar:    profile.PictureURL,
		Tier:      member.TierBasic,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return LoginResult{}, apperrors.Wrap("member_upsert_failed", "failed to persist member", err)
	}

	token, err := s.codec.Sign(SessionClaims{
		MemberID: m.ID,
		LineID:   m.LineID,
		Name:     m.Name,
		Avatar:   m.Avatar,
		Tier:     m.Tier,
	})
	if err != nil {
		return LoginResult{}, apperrors.Wrap("auth_error", "failed to sign session token", err)
	}

	s.logger.Info("member logged in", "member", m.ID, "tier", m.Tier)
	return LoginResult{Token: token, Member: m}, nil
}

func (s *service) VerifySession(_ context.Context, token string) (SessionClaims, error) {
	return s.codec.Verify(token)
}
