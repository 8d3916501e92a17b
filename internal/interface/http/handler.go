package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/thetensy/tensy-api/internal/domain/auth"
	"github.com/thetensy/tensy-api/internal/domain/member"
	"github.com/thetensy/tensy-api/internal/infra/config"
	apperrors "github.com/thetensy/tensy-api/pkg/errors"
)

// authVerifier is the slice of auth.Service the session middleware needs.
type authVerifier interface {
	VerifySession(ctx context.Context, token string) (auth.SessionClaims, error)
}

// Handler wires the HTTP transport to domain services.
type Handler struct {
	authSvc            auth.Service
	memberSvc          member.Service
	postLoginPath      string
	echoMemberFragment bool
	logger             *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, authSvc auth.Service, memberSvc member.Service, logger *slog.Logger) *Handler {
	return &Handler{
		authSvc:            authSvc,
		memberSvc:          memberSvc,
		postLoginPath:      cfg.Auth.Line.PostLoginPath,
		echoMemberFragment: cfg.Auth.Line.EchoMemberFragment,
		logger:             logger.With("component", "http.handler"),
	}
}

// LineLogin starts the login flow: mint a state, bind it to the browser via
// a short-lived cookie, and send the browser to the provider.
func (h *Handler) LineLogin(c *gin.Context) {
	state, err := auth.NewState()
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "auth_error", "failed to start login", err))
		return
	}
	setStateCookie(c, state)
	c.Redirect(http.StatusFound, h.authSvc.LoginURL(state))
}

// LineCallback handles the provider redirect. Every failure is recovered
// into a redirect carrying a human-readable message; provider error details
// stay in the server log.
func (h *Handler) LineCallback(c *gin.Context) {
	query := c.Request.URL.Query()

	if provErr := query.Get("error"); provErr != "" {
		h.logger.Warn("line login cancelled", "error", provErr, "description", query.Get("error_description"))
		h.redirectWithError(c, "login cancelled")
		return
	}

	code := query.Get("code")
	state := query.Get("state")
	if code == "" || state == "" {
		h.redirectWithError(c, "missing parameters")
		return
	}

	cookieState, ok := readStateCookie(c)
	if !ok || cookieState != state {
		h.logger.Warn("line state mismatch")
		h.redirectWithError(c, "state mismatch")
		return
	}
	// The state is single-use: clear it whether or not the rest succeeds.
	clearStateCookie(c)

	result, err := h.authSvc.Login(c.Request.Context(), code)
	if err != nil {
		h.logger.Error("line login failed", "error", err)
		h.redirectWithError(c, callbackErrorMessage(err))
		return
	}

	setSessionCookie(c, result.Token)
	c.Redirect(http.StatusFound, h.successLocation(result.Member))
}

// Me returns the verified identity for the current session.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "not logged in", nil))
		return
	}
	m, err := h.memberSvc.Profile(c.Request.Context(), claims.MemberID)
	if err != nil {
		// The token is the source of truth for identity; the durable record
		// only enriches it with stored-value fields.
		if !apperrors.IsCode(err, "member_not_found") {
			h.logger.Warn("member lookup failed", "member", claims.MemberID, "error", err)
		}
		m = claims.Member()
	}
	c.JSON(http.StatusOK, gin.H{"member": m})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// LogoutRedirect clears the session cookie and sends the browser back to the
// member page. Kept on GET for plain link logout.
func (h *Handler) LogoutRedirect(c *gin.Context) {
	clearSessionCookie(c)
	c.Redirect(http.StatusFound, h.postLoginPath)
}

func (h *Handler) successLocation(m member.Member) string {
	location := h.postLoginPath + "?login=success"
	if h.echoMemberFragment {
		if payload, err := json.Marshal(m); err == nil {
			location += "#member=" + url.QueryEscape(string(payload))
		}
	}
	return location
}

func (h *Handler) redirectWithError(c *gin.Context, message string) {
	c.Redirect(http.StatusFound, h.postLoginPath+"?error="+url.QueryEscape(message))
}

func callbackErrorMessage(err error) string {
	switch {
	case apperrors.IsCode(err, "token_exchange_failed"):
		return "token exchange failed"
	case apperrors.IsCode(err, "profile_fetch_failed"):
		return "profile fetch failed"
	default:
		return "login failed"
	}
}
