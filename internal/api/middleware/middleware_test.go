package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	infraRedis "vidshare-go/internal/infra/redis"
	"vidshare-go/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newAuthEngine(a *Authenticator) *gin.Engine {
	r := gin.New()
	r.GET("/me", a.Required(), func(c *gin.Context) {
		id, _ := GetCurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	return r
}

func TestAuthenticator_CookieAndBearer(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour, "vidshare")
	token, _, err := tokens.Generate(7)
	require.NoError(t, err)
	r := newAuthEngine(NewAuthenticator(tokens, nil, "accessToken"))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticator_Rejects(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour, "vidshare")
	r := newAuthEngine(NewAuthenticator(tokens, nil, "accessToken"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"status":"failed","Error_Message":"You are not authenticated!"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticator_RevokedToken(t *testing.T) {
	ctx := context.Background()
	tokens := utils.NewTokenManager("secret", time.Hour, "vidshare")
	denylist := infraRedis.NewTokenDenylist(newRedis(t))
	r := newAuthEngine(NewAuthenticator(tokens, denylist, "accessToken"))

	token, claims, err := tokens.Generate(7)
	require.NoError(t, err)
	require.NoError(t, denylist.Revoke(ctx, claims.ID, time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type brokenDenylist struct{}

func (brokenDenylist) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis down")
}

func TestAuthenticator_DenylistUnavailable(t *testing.T) {
	tokens := utils.NewTokenManager("secret", time.Hour, "vidshare")
	token, _, err := tokens.Generate(7)
	require.NoError(t, err)
	r := newAuthEngine(NewAuthenticator(tokens, brokenDenylist{}, "accessToken"))

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit(t *testing.T) {
	limiter := infraRedis.NewRateLimiter(newRedis(t), 2, time.Minute)
	r := gin.New()
	r.POST("/login", RateLimit(limiter), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

type brokenLimiter struct{}

func (brokenLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return false, 0, errors.New("redis down")
}

func TestRateLimit_FailOpen(t *testing.T) {
	r := gin.New()
	r.POST("/login", RateLimit(brokenLimiter{}), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"failed"`)
}

func TestMetrics(t *testing.T) {
	m := NewMetrics("vidshare")
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/videos/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/metrics", m.Handler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/videos/5", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `vidshare_http_requests_total{method="GET",route="/videos/:id",status="200"} 1`), body)
}

func TestCORS_AllowsCredentials(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.POST("/upload", BodyLimit(8), func(c *gin.Context) {
		if _, err := c.GetRawData(); err != nil {
			var tooLarge *http.MaxBytesError
			assert.ErrorAs(t, err, &tooLarge)
			c.Status(http.StatusTeapot)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("small")))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("far too large")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.JSONEq(t, `{"status":"failed","Error_Message":"Uploaded file is too large"}`, w.Body.String())

	streamed := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader("far too large"))
	streamed.ContentLength = -1
	w = httptest.NewRecorder()
	r.ServeHTTP(w, streamed)
	assert.Equal(t, http.StatusTeapot, w.Code)
}
