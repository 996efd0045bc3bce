package middlewares

import (
	"net/http"
	"strings"

	"axiapac.com/timesheets/security"
	"axiapac.com/timesheets/web/common"
	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "timesheets.session"
	claimsKey     = "claims"
)

// TokenFromRequest reads the Bearer header, falling back to the session cookie.
func TokenFromRequest(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		cookie, err := c.Cookie(SessionCookie)
		if err != nil || cookie == "" {
			return "", false
		}
		return cookie, true
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}

// Authentication rejects requests without a valid session token.
func Authentication(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := TokenFromRequest(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("Unauthorized"))
			return
		}

		claims, err := security.ParseSessionToken(tokenStr, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse(err.Error()))
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Claims returns the session claims set by Authentication.
func Claims(c *gin.Context) (*security.SessionClaims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*security.SessionClaims)
	return claims, ok
}
