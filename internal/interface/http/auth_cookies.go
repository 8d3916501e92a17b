package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	stateCookieName   = "line_state"
	stateCookieMaxAge = 600

	sessionCookieName   = "session"
	sessionCookieMaxAge = 30 * 24 * 60 * 60
)

func setStateCookie(c *gin.Context, state string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, stateCookieMaxAge, "/", "", true, true)
}

func clearStateCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, "", -1, "/", "", true, true)
}

func readStateCookie(c *gin.Context) (string, bool) {
	value, ok := parseCookieHeader(c.GetHeader("Cookie"))[stateCookieName]
	return value, ok
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, sessionCookieMaxAge, "/", "", true, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", true, true)
}

func readSessionCookie(c *gin.Context) (string, bool) {
	value, ok := parseCookieHeader(c.GetHeader("Cookie"))[sessionCookieName]
	return value, ok
}
