package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapp/pkg/session"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBotGuardRouter() (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.GET("/search", BotGuard(), func(ctx *gin.Context) {
		reached = true
		ctx.Status(http.StatusOK)
	})
	return r, &reached
}

func TestBotGuard_RejectsCrawlers(t *testing.T) {
	r, reached := newBotGuardRouter()

	req := httptest.NewRequest(http.MethodGet, "/search?wd=go", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, *reached)
}

func TestBotGuard_AllowsBrowsers(t *testing.T) {
	r, reached := newBotGuardRouter()

	req := httptest.NewRequest(http.MethodGet, "/search?wd=go", nil)
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/119.0")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
}

func TestSession_ExtractsUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	secret := "test-secret"

	var got uint
	r := gin.New()
	r.Use(Session(secret))
	r.GET("/", func(ctx *gin.Context) {
		got = CurrentUserID(ctx)
		ctx.Status(http.StatusOK)
	})

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{UserID: 7}).SignedString([]byte(secret))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, uint(7), got)
}

func TestSession_AnonymousRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got uint = 99
	r := gin.New()
	r.Use(Session("test-secret"))
	r.GET("/", func(ctx *gin.Context) {
		got = CurrentUserID(ctx)
		ctx.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(0), got)
}
