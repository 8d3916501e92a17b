package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/thetensy/tensy-api/internal/domain/auth"
	"github.com/thetensy/tensy-api/internal/domain/member"
	"github.com/thetensy/tensy-api/internal/infra/config"
	"github.com/thetensy/tensy-api/internal/infra/memberrepo"
	"github.com/thetensy/tensy-api/internal/infra/memberstore"
	apperrors "github.com/thetensy/tensy-api/pkg/errors"
)

type stubProvider struct {
	profile     auth.Profile
	exchangeErr error
	profileErr  error
}

func (p *stubProvider) AuthorizeURL(state string) string {
	return "https://access.line.example/oauth2/v2.1/authorize?response_type=code&client_id=1234567890&state=" + state
}

func (p *stubProvider) Exchange(_ context.Context, code string) (string, error) {
	if p.exchangeErr != nil {
		return "", p.exchangeErr
	}
	return "at-123", nil
}

func (p *stubProvider) FetchProfile(_ context.Context, _ string) (auth.Profile, error) {
	if p.profileErr != nil {
		return auth.Profile{}, p.profileErr
	}
	return p.profile, nil
}

func defaultStubProvider() *stubProvider {
	return &stubProvider{profile: auth.Profile{
		UserID:      "U1",
		DisplayName: "Alice",
		PictureURL:  "https://profile.example/alice.jpg",
	}}
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:        ":0",
			AllowedOrigins: []string{"https://thetensy.com"},
		},
		Auth: config.AuthConfig{
			JWTSecret:  "test-secret",
			SessionTTL: time.Hour,
			Line: config.LineConfig{
				ChannelID:     "1234567890",
				ChannelSecret: "channel-secret",
				RedirectURL:   "https://thetensy.com/api/auth/line/callback",
				PostLoginPath: "/member",
			},
		},
		Member: config.MemberConfig{CacheTTL: time.Hour},
	}
}

type testServer struct {
	router  http.Handler
	authSvc auth.Service
}

func newTestServer(provider auth.Provider, mutate func(*config.Config)) *testServer {
	cfg := testConfig()
	if mutate != nil {
		mutate(cfg)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := memberrepo.NewMemoryRepository()
	store := memberstore.NewMemoryStore()

	authCfg := auth.Config{Secret: cfg.Auth.JWTSecret, SessionTTL: cfg.Auth.SessionTTL}
	authSvc := auth.NewService(authCfg, provider, repo, logger)
	memberSvc := member.NewService(member.Config{CacheTTL: cfg.Member.CacheTTL}, repo, store, logger)
	handler := NewHandler(cfg, authSvc, memberSvc, logger)

	return &testServer{
		router:  NewRouter(cfg, handler).Handler,
		authSvc: authSvc,
	}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

// login drives the full redirect dance and returns the session cookie.
func (s *testServer) login(t *testing.T) *http.Cookie {
	t.Helper()

	start := s.do(httptest.NewRequest(http.MethodGet, "/api/auth/line", nil))
	require.Equal(t, http.StatusFound, start.Code)
	state := findCookie(t, start, stateCookieName)
	require.NotNil(t, state)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/line/callback?code=the-code&state="+state.Value, nil)
	req.AddCookie(state)
	callback := s.do(req)
	require.Equal(t, http.StatusFound, callback.Code)
	require.Equal(t, "/member?login=success", callback.Header().Get("Location"))

	session := findCookie(t, callback, sessionCookieName)
	require.NotNil(t, session)
	require.NotEmpty(t, session.Value)
	return session
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)
	w := srv.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestLineLogin_RedirectBoundToStateCookie(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)

	w := srv.do(httptest.NewRequest(http.MethodGet, "/api/auth/line", nil))
	require.Equal(t, http.StatusFound, w.Code)

	state := findCookie(t, w, stateCookieName)
	require.NotNil(t, state)
	require.Len(t, state.Value, 32)
	require.Equal(t, stateCookieMaxAge, state.MaxAge)
	require.True(t, state.HttpOnly)
	require.True(t, state.Secure)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	require.Equal(t, "access.line.example", location.Host)
	q := location.Query()
	require.Equal(t, "code", q.Get("response_type"))
	require.Equal(t, "1234567890", q.Get("client_id"))
	require.Equal(t, state.Value, q.Get("state"))
}

func TestLineCallback_EstablishesSession(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)
	session := srv.login(t)

	require.Equal(t, sessionCookieMaxAge, session.MaxAge)
	require.True(t, session.HttpOnly)
	require.True(t, session.Secure)

	claims, err := srv.authSvc.VerifySession(context.Background(), session.Value)
	require.NoError(t, err)
	require.Equal(t, "line_U1", claims.MemberID)
	require.Equal(t, "Alice", claims.Name)

	// State cookie is single-use.
	start := srv.do(httptest.NewRequest(http.MethodGet, "/api/auth/line", nil))
	state := findCookie(t, start, stateCookieName)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/line/callback?code=the-code&state="+state.Value, nil)
	req.AddCookie(state)
	callback := srv.do(req)
	cleared := findCookie(t, callback, stateCookieName)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
	require.Negative(t, cleared.MaxAge)
}

func TestLineCallback_StateMismatch(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)

	start := srv.do(httptest.NewRequest(http.MethodGet, "/api/auth/line", nil))
	state := findCookie(t, start, stateCookieName)
	require.NotNil(t, state)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/line/callback?code=the-code&state=forged-state", nil)
	req.AddCookie(state)
	w := srv.do(req)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/member?error="+url.QueryEscape("state mismatch"), w.Header().Get("Location"))
	require.Nil(t, findCookie(t, w, sessionCookieName))
}

func TestLineCallback_MissingCookie(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)

	w := srv.do(httptest.NewRequest(http.MethodGet, "/api/auth/line/callback?code=the-code&state=some-state", nil))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/member?error="+url.QueryEscape("state mismatch"), w.Header().Get("Location"))
}

func TestLineCallback_MissingParameters(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)

	for _, target := range []string{
		"/api/auth/line/callback",
		"/api/auth/line/callback?code=the-code",
		"/api/auth/line/callback?state=some-state",
	} {
		w := srv.do(httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusFound, w.Code, target)
		require.Equal(t, "/member?error="+url.QueryEscape("missing parameters"), w.Header().Get("Location"), target)
	}
}

func TestLineCallback_ProviderDenied(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)

	w := srv.do(httptest.NewRequest(http.MethodGet, "/api/auth/line/callback?error=access_denied&error_description=cancelled", nil))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/member?error="+url.QueryEscape("login cancelled"), w.Header().Get("Location"))
}

func TestLineCallback_ExchangeFailure(t *testing.T) {
	provider := defaultStubProvider()
	provider.exchangeErr = apperrors.Wrap("token_exchange_failed", "failed to exchange authorization code", errors.New("invalid_grant"))
	srv := newTestServer(provider, nil)

	start := srv.do(httptest.NewRequest(http.MethodGet, "/api/auth/line", nil))
	state := findCookie(t, start, stateCookieName)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/line/callback?code=stale-code&state="+state.Value, nil)
	req.AddCookie(state)
	w := srv.do(req)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/member?error="+url.QueryEscape("token exchange failed"), w.Header().Get("Location"))
	require.Nil(t, findCookie(t, w, sessionCookieName))
}

func TestLineCallback_EchoMemberFragment(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), func(cfg *config.Config) {
		cfg.Auth.Line.EchoMemberFragment = true
	})

	start := srv.do(httptest.NewRequest(http.MethodGet, "/api/auth/line", nil))
	state := findCookie(t, start, stateCookieName)
	req := httptest.NewRequest(http.MethodGet, "/api/auth/line/callback?code=the-code&state="+state.Value, nil)
	req.AddCookie(state)
	w := srv.do(req)

	location := w.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, "/member?login=success#member="), location)

	payload, err := url.QueryUnescape(strings.TrimPrefix(location, "/member?login=success#member="))
	require.NoError(t, err)
	var m member.Member
	require.NoError(t, json.Unmarshal([]byte(payload), &m))
	require.Equal(t, "line_U1", m.ID)
	require.Equal(t, "Alice", m.Name)
}

func TestMe(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)

	// Without a cookie.
	w := srv.do(httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":{"code":"unauthorized","message":"not logged in"}}`, w.Body.String())

	// With a garbage cookie.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Cookie", "session=not-a-token")
	w = srv.do(req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":{"code":"unauthorized","message":"invalid session"}}`, w.Body.String())

	// With a real session.
	session := srv.login(t)
	req = httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(session)
	w = srv.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Member member.Member `json:"member"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, "line_U1", body.Member.ID)
	require.Equal(t, "Alice", body.Member.Name)
	require.Equal(t, member.TierBasic, body.Member.Tier)
}

func TestMe_ExpiredSession(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), func(cfg *config.Config) {
		cfg.Auth.SessionTTL = -time.Minute
	})
	session := srv.login(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(session)
	w := srv.do(req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":{"code":"unauthorized","message":"invalid session"}}`, w.Body.String())
}

func TestLogout(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)
	session := srv.login(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	req.AddCookie(session)
	w := srv.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true}`, w.Body.String())

	cleared := findCookie(t, w, sessionCookieName)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
	require.Negative(t, cleared.MaxAge)
}

func TestLogoutRedirect(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)

	w := srv.do(httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil))
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/member", w.Header().Get("Location"))

	cleared := findCookie(t, w, sessionCookieName)
	require.NotNil(t, cleared)
	require.Empty(t, cleared.Value)
}

func TestMemberEndpoints(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)
	session := srv.login(t)

	// Reading another member is forbidden.
	req := httptest.NewRequest(http.MethodGet, "/api/member/line_U2", nil)
	req.AddCookie(session)
	w := srv.do(req)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Deposit enough to reach silver.
	req = httptest.NewRequest(http.MethodPost, "/api/member/line_U1/deposit", strings.NewReader(`{"amount":5000}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(session)
	w = srv.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var depositBody struct {
		Member  member.Member        `json:"member"`
		Deposit member.DepositRecord `json:"deposit"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &depositBody))
	require.Equal(t, int64(5000), depositBody.Member.Balance)
	require.Equal(t, member.TierSilver, depositBody.Member.Tier)
	require.Equal(t, int64(5000), depositBody.Deposit.Amount)
	require.NotEmpty(t, depositBody.Deposit.ID)

	// Profile reflects the new tier.
	req = httptest.NewRequest(http.MethodGet, "/api/member/line_U1", nil)
	req.AddCookie(session)
	w = srv.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	var profileBody struct {
		Member member.Member `json:"member"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profileBody))
	require.Equal(t, member.TierSilver, profileBody.Member.Tier)

	// Quote applies the silver discount and caps point redemption.
	req = httptest.NewRequest(http.MethodPost, "/api/member/line_U1/quote", strings.NewReader(`{"subtotal":1000,"usePoints":600}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(session)
	w = srv.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	var quote member.Quote
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	require.Equal(t, member.TierSilver, quote.Tier)
	require.Equal(t, int64(950), quote.Discounted)
	require.Equal(t, int64(475), quote.PointsUsed)
	require.Equal(t, int64(475), quote.Payable)
}

func TestMemberEndpoints_RequireSession(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)

	for _, tc := range []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/member/line_U1"},
		{http.MethodPost, "/api/member/line_U1/deposit"},
		{http.MethodPost, "/api/member/line_U1/quote"},
	} {
		w := srv.do(httptest.NewRequest(tc.method, tc.target, nil))
		require.Equal(t, http.StatusUnauthorized, w.Code, tc.target)
	}
}

func TestDeposit_InvalidPayload(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)
	session := srv.login(t)

	req := httptest.NewRequest(http.MethodPost, "/api/member/line_U1/deposit", strings.NewReader(`{"amount":-100}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(session)
	w := srv.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/member/line_U1/deposit", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(session)
	w = srv.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)

	w := srv.do(httptest.NewRequest(http.MethodGet, "/api/products", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var products struct {
		Products []map[string]any `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products.Products, 6)

	w = srv.do(httptest.NewRequest(http.MethodGet, "/api/styles", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), nil)

	// Allowed origin gets echoed back with credentials.
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://thetensy.com")
	w := srv.do(req)
	require.Equal(t, "https://thetensy.com", w.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	require.Contains(t, w.Header().Values("Vary"), "Origin")

	// Unknown origin gets no CORS headers.
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = srv.do(req)
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	// Preflight short-circuits.
	req = httptest.NewRequest(http.MethodOptions, "/api/auth/me", nil)
	req.Header.Set("Origin", "https://thetensy.com")
	w = srv.do(req)
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "https://thetensy.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	srv := newTestServer(defaultStubProvider(), func(cfg *config.Config) {
		cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 2}
	})

	for i := 0; i < 2; i++ {
		w := srv.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := srv.do(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)
}
