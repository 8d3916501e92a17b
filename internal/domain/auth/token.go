package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/thetensy/tensy-api/internal/domain/member"
)

// SessionClaims is the closed claim schema carried by a session token. The
// expiry is an absolute epoch-millisecond timestamp, matching the cookie
// format the site's frontend already understands.
type SessionClaims struct {
	MemberID  string      `json:"id"`
	LineID    string      `json:"lineId,omitempty"`
	Name      string      `json:"name"`
	Avatar    string      `json:"avatar,omitempty"`
	Tier      member.Tier `json:"tier"`
	ExpiresAt int64       `json:"exp"`
}

// GetExpirationTime implements jwt.Claims, converting the millisecond expiry.
func (c SessionClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.UnixMilli(c.ExpiresAt)), nil
}

func (c SessionClaims) GetIssuedAt() (*jwt.NumericDate, error)  { return nil, nil }
func (c SessionClaims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }
func (c SessionClaims) GetIssuer() (string, error)              { return "", nil }
func (c SessionClaims) GetSubject() (string, error)             { return c.MemberID, nil }
func (c SessionClaims) GetAudience() (jwt.ClaimStrings, error)  { return nil, nil }

// Member projects the claims back into a member record with default
// stored-value fields. Used when no durable record is available.
func (c SessionClaims) Member() member.Member {
	tier := c.Tier
	if tier == "" {
		tier = member.TierBasic
	}
	return member.Member{
		ID:     c.MemberID,
		LineID: c.LineID,
		Name:   c.Name,
		Avatar: c.Avatar,
		Tier:   tier,
	}
}

// TokenCodec signs and verifies session tokens with HMAC-SHA256. Tokens are
// stateless: validity is entirely signature plus embedded expiry.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec constructs a codec for the given signing secret and lifetime.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Sign mints a compact header.payload.signature token. A zero ExpiresAt is
// filled in from the configured TTL.
func (tc *TokenCodec) Sign(claims SessionClaims) (string, error) {
	if claims.ExpiresAt == 0 {
		claims.ExpiresAt = time.Now().Add(tc.ttl).UnixMilli()
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tc.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature over the exact header.payload bytes and the
// embedded expiry, returning the decoded claims on success.
func (tc *TokenCodec) Verify(token string) (SessionClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return tc.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return SessionClaims{}, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return SessionClaims{}, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return SessionClaims{}, fmt.Errorf("%w: %v", ErrTokenInvalidSignature, err)
		default:
			return SessionClaims{}, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
		}
	}
	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return SessionClaims{}, ErrTokenMalformed
	}
	if claims.ExpiresAt == 0 {
		return SessionClaims{}, fmt.Errorf("%w: missing expiry", ErrTokenMalformed)
	}
	return *claims, nil
}
