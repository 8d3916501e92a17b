package member

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/thetensy/tensy-api/pkg/errors"
)

// Service exposes member profile and stored-value workflows.
type Service interface {
	Profile(ctx context.Context, id string) (Member, error)
	Deposit(ctx context.Context, id string, amount int64) (Member, DepositRecord, error)
	PriceQuote(ctx context.Context, id string, req QuoteRequest) (Quote, error)
}

// Config drives member service behavior.
type Config struct {
	CacheTTL time.Duration
}

type service struct {
	cfg    Config
	repo   Repository
	store  Store
	logger *slog.Logger
}

// NewService constructs a Service instance.
func NewService(cfg Config, repo Repository, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		store:  store,
		logger: logger.With("component", "member.service"),
	}
}

func (s *service) Profile(ctx context.Context, id string) (Member, error) {
	if id == "" {
		return Member{}, apperrors.Wrap("invalid_input", "member id cannot be empty", nil)
	}
	if cached, ok, err := s.store.Get(ctx, id); err != nil {
		s.logger.Warn("member cache read failed", "error", err)
	} else if ok {
		return cached, nil
	}
	m, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Member{}, apperrors.Wrap("member_error", "failed to load member", err)
	}
	if !found {
		return Member{}, apperrors.Wrap("member_not_found", "member not found", nil)
	}
	if err := s.store.Save(ctx, m, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("member cache write failed", "error", err)
	}
	return m, nil
}

func (s *service) Deposit(ctx context.Context, id string, amount int64) (Member, DepositRecord, error) {
	if amount <= 0 {
		return Member{}, DepositRecord{}, apperrors.Wrap("invalid_input", "deposit amount must be positive", nil)
	}
	m, found, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Member{}, DepositRecord{}, apperrors.Wrap("member_error", "failed to load member", err)
	}
	if !found {
		return Member{}, DepositRecord{}, apperrors.Wrap("member_not_found", "member not found", nil)
	}

	m.Balance += amount
	m.TotalDeposit += amount
	m.Tier = TierForDeposit(m.TotalDeposit)
	m.UpdatedAt = time.Now().UTC()

	saved, err := s.repo.Save(ctx, m)
	if err != nil {
		return Member{}, DepositRecord{}, apperrors.Wrap("member_error", "failed to save member", err)
	}
	if err := s.store.Delete(ctx, saved.ID); err != nil {
		s.logger.Warn("member cache invalidation failed", "error", err)
	}

	record := DepositRecord{
		ID:        uuid.NewString(),
		MemberID:  saved.ID,
		Amount:    amount,
		Method:    "bank_transfer",
		CreatedAt: saved.UpdatedAt,
	}
	s.logger.Info("deposit confirmed", "member", saved.ID, "amount", amount, "tier", saved.Tier)
	return saved, record, nil
}

func (s *service) PriceQuote(ctx context.Context, id string, req QuoteRequest) (Quote, error) {
	if req.Subtotal <= 0 {
		return Quote{}, apperrors.Wrap("invalid_input", "subtotal must be positive", nil)
	}
	if req.UsePoints < 0 {
		return Quote{}, apperrors.Wrap("invalid_input", "usePoints cannot be negative", nil)
	}
	m, err := s.Profile(ctx, id)
	if err != nil {
		return Quote{}, err
	}

	info := Tiers[m.Tier]
	discounted := int64(math.Round(float64(req.Subtotal) * info.DiscountRate))
	points := req.UsePoints
	if limit := RedeemLimit(discounted); points > limit {
		points = limit
	}
	return Quote{
		Subtotal:     req.Subtotal,
		Tier:         m.Tier,
		DiscountRate: info.DiscountRate,
		Discounted:   discounted,
		PointsUsed:   points,
		Payable:      discounted - points,
	}, nil
}
