package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thetensy/tensy-api/internal/domain/auth"
	"github.com/thetensy/tensy-api/internal/domain/member"
	apperrors "github.com/thetensy/tensy-api/pkg/errors"
)

// memberFromPath resolves the :id path parameter against the session.
// Members can only act on themselves.
func (h *Handler) memberFromPath(c *gin.Context) (auth.SessionClaims, bool) {
	claims, ok := getClaims(c)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusUnauthorized, "unauthorized", "not logged in", nil))
		return auth.SessionClaims{}, false
	}
	if c.Param("id") != claims.MemberID {
		abortWithError(c, NewHTTPError(http.StatusForbidden, "forbidden", "cannot access another member", nil))
		return auth.SessionClaims{}, false
	}
	return claims, true
}

// GetMember returns a member profile.
func (h *Handler) GetMember(c *gin.Context) {
	claims, ok := h.memberFromPath(c)
	if !ok {
		return
	}

	m, err := h.memberSvc.Profile(c.Request.Context(), claims.MemberID)
	if err != nil {
		abortWithError(c, memberError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": m})
}

// Deposit confirms a top-up for the member.
func (h *Handler) Deposit(c *gin.Context) {
	claims, ok := h.memberFromPath(c)
	if !ok {
		return
	}
	var req member.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	m, record, err := h.memberSvc.Deposit(c.Request.Context(), claims.MemberID, req.Amount)
	if err != nil {
		abortWithError(c, memberError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"member": m, "deposit": record})
}

// Quote prices an order for the member.
func (h *Handler) Quote(c *gin.Context) {
	claims, ok := h.memberFromPath(c)
	if !ok {
		return
	}
	var req member.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	quote, err := h.memberSvc.PriceQuote(c.Request.Context(), claims.MemberID, req)
	if err != nil {
		abortWithError(c, memberError(err))
		return
	}
	c.JSON(http.StatusOK, quote)
}

func memberError(err error) *HTTPError {
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	case apperrors.IsCode(err, "member_not_found"):
		return NewHTTPError(http.StatusNotFound, "member_not_found", "member not found", err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "member_error", errMessage(err), err)
	}
}
