package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"axiapac.com/timesheets/security"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("middleware-test-secret")

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", Authentication(secret), func(c *gin.Context) {
		claims, ok := Claims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, claims.Email)
	})
	return r
}

func TestAuthentication(t *testing.T) {
	r := newRouter()
	token, err := security.CreateSessionToken(security.Identity{Email: "test@example.com"}, secret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		cookie string
		status int
	}{
		{name: "Bearer header", header: "Bearer " + token, status: http.StatusOK},
		{name: "Lowercase scheme", header: "bearer " + token, status: http.StatusOK},
		{name: "Session cookie", cookie: token, status: http.StatusOK},
		{name: "No credentials", status: http.StatusUnauthorized},
		{name: "Basic scheme", header: "Basic abc", status: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer nope", status: http.StatusUnauthorized},
		{name: "Bad cookie", cookie: "nope", status: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "test@example.com", w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}
