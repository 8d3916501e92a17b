package http

import (
	"github.com/gin-gonic/gin"

	"github.com/thetensy/tensy-api/internal/domain/auth"
)

const authClaimsKey = "auth_claims"

func setClaims(c *gin.Context, claims auth.SessionClaims) {
	c.Set(authClaimsKey, claims)
}

func getClaims(c *gin.Context) (auth.SessionClaims, bool) {
	value, ok := c.Get(authClaimsKey)
	if !ok {
		return auth.SessionClaims{}, false
	}
	claims, ok := value.(auth.SessionClaims)
	return claims, ok
}
