package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	apperrors "github.com/thetensy/tensy-api/pkg/errors"
)

// Provider drives the three-legged authorization-code flow against the
// identity provider. Both network calls are one-shot: authorization codes are
// single-use, so nothing here retries.
type Provider interface {
	AuthorizeURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	FetchProfile(ctx context.Context, accessToken string) (Profile, error)
}

const providerTimeout = 10 * time.Second

// LineClient implements Provider against the LINE Login platform.
type LineClient struct {
	cfg  LineConfig
	http *http.Client
}

// NewLineClient constructs a client for the configured channel.
func NewLineClient(cfg LineConfig) *LineClient {
	return &LineClient{
		cfg:  cfg,
		http: &http.Client{Timeout: providerTimeout},
	}
}

func (c *LineClient) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     c.cfg.ChannelID,
		ClientSecret: c.cfg.ChannelSecret,
		RedirectURL:  c.cfg.RedirectURL,
		Scopes:       []string{"profile", "openid"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.cfg.AuthorizeURL,
			TokenURL:  c.cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthorizeURL builds the provider authorize redirect for the given state.
// No network call is made.
func (c *LineClient) AuthorizeURL(state string) string {
	return c.oauthConfig().AuthCodeURL(state)
}

// Exchange swaps the single-use authorization code for an access token.
func (c *LineClient) Exchange(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	token, err := c.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return "", apperrors.Wrap("token_exchange_failed", "failed to exchange authorization code", err)
	}
	if token.AccessToken == "" {
		return "", apperrors.Wrap("token_exchange_failed", "provider returned empty access token", nil)
	}
	return token.AccessToken, nil
}

// FetchProfile loads the member profile with a bearer token.
func (c *LineClient) FetchProfile(ctx context.Context, accessToken string) (Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.ProfileURL, nil)
	if err != nil {
		return Profile{}, apperrors.Wrap("profile_fetch_failed", "failed to build profile request", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return Profile{}, apperrors.Wrap("profile_fetch_failed", "profile request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return Profile{}, apperrors.Wrap("profile_fetch_failed", "profile request rejected",
			fmt.Errorf("status %d: %s", resp.StatusCode, body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return Profile{}, apperrors.Wrap("profile_fetch_failed", "failed to decode profile response", err)
	}
	if profile.UserID == "" {
		return Profile{}, apperrors.Wrap("profile_fetch_failed", "profile response missing userId", nil)
	}
	return profile, nil
}

var _ Provider = (*LineClient)(nil)
