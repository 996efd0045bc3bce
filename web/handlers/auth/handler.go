package auth

import (
	"net/http"
	"time"

	"axiapac.com/timesheets/security"
	web "axiapac.com/timesheets/web/common"
	"axiapac.com/timesheets/web/middlewares"
	"github.com/gin-gonic/gin"
)

// UserID is the id of the single configured user.
const UserID = "1"

type Options struct {
	Credentials security.Credentials
	Name        string
	Secret      []byte
	TokenTTL    time.Duration
	// SecureCookie marks the session cookie Secure.
	SecureCookie bool
}

type Endpoint struct {
	options Options
}

func Register(public, protected *gin.RouterGroup, options Options) {
	endpoint := &Endpoint{options: options}
	public.POST("/auth/login", endpoint.Login)
	public.POST("/auth/logout", endpoint.Logout)
	protected.GET("/auth/session", endpoint.Session)
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	User  security.Identity `json:"user"`
	Token string            `json:"token"`
}

func (ep *Endpoint) Login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	if !ep.options.Credentials.Verify(dto.Email, dto.Password) {
		c.JSON(http.StatusUnauthorized, web.NewErrorResponse("Invalid credentials"))
		return
	}

	user := security.Identity{ID: UserID, Email: ep.options.Credentials.Email, Name: ep.options.Name}
	token, err := security.CreateSessionToken(user, ep.options.Secret, ep.options.TokenTTL)
	if err != nil {
		web.AbortWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, token, int(ep.options.TokenTTL.Seconds()), "/", "", ep.options.SecureCookie, true)
	c.JSON(http.StatusOK, LoginResponse{User: user, Token: token})
}

func (ep *Endpoint) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middlewares.SessionCookie, "", -1, "/", "", ep.options.SecureCookie, true)
	c.Status(http.StatusNoContent)
}

func (ep *Endpoint) Session(c *gin.Context) {
	claims, ok := middlewares.Claims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, web.NewErrorResponse("Unauthorized"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": claims.Identity, "expiresAt": claims.ExpiresAt})
}
