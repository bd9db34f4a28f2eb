package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		id, _ := c.Get("requestID")
		c.String(http.StatusOK, "%v", id)
	})
	return r
}

func get(r http.Handler, headers map[string]string) *httptest.ResponseRecorder {
	return getFrom(r, "192.0.2.1:1234", headers)
}

func getFrom(r http.Handler, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestRateLimitMiddlewarePerIP(t *testing.T) {
	r := newEngine(RateLimitMiddleware(2))

	assert.Equal(t, http.StatusOK, getFrom(r, "10.0.0.1:5000", nil).Code)
	assert.Equal(t, http.StatusOK, getFrom(r, "10.0.0.1:5001", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, getFrom(r, "10.0.0.1:5002", nil).Code)

	assert.Equal(t, http.StatusOK, getFrom(r, "10.0.0.2:5000", nil).Code)
}

func TestRateLimitMiddlewareIgnoresForgedForwardingHeaders(t *testing.T) {
	r := newEngine(RateLimitMiddleware(2))

	var limited int
	for i := 0; i < 50; i++ {
		headers := map[string]string{
			"X-Forwarded-For": fmt.Sprintf("10.9.0.%d", i),
			"X-Real-IP":       fmt.Sprintf("10.8.0.%d", i),
		}
		if getFrom(r, "203.0.113.7:4000", headers).Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Equal(t, 48, limited)
}

func TestRateLimitMiddlewareHonoursTrustedProxy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	require.NoError(t, r.SetTrustedProxies([]string{"10.1.0.0/16"}))
	r.Use(RateLimitMiddleware(1))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.ClientIP()) })

	resp := getFrom(r, "10.1.2.3:80", map[string]string{"X-Forwarded-For": "198.51.100.1"})
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "198.51.100.1", resp.Body.String())

	assert.Equal(t, http.StatusOK, getFrom(r, "10.1.2.3:80", map[string]string{"X-Forwarded-For": "198.51.100.2"}).Code)
	assert.Equal(t, http.StatusTooManyRequests, getFrom(r, "10.1.9.9:80", map[string]string{"X-Forwarded-For": "198.51.100.1"}).Code)
}

func TestRateLimiterStoreEvictsIdleClients(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(2)
	store.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		store.getLimiter(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	assert.Equal(t, 100, store.size())

	now = now.Add(limiterIdleTTL / 2)
	store.getLimiter("10.0.0.0")

	now = now.Add(limiterIdleTTL * 3 / 4)
	store.getLimiter("10.2.0.1")
	assert.Equal(t, 2, store.size())
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	r := newEngine(RequestIDMiddleware())

	resp := get(r, nil)

	id := resp.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
	assert.Equal(t, id, resp.Body.String())
}

func TestRequestIDMiddlewareKeepsValidID(t *testing.T) {
	r := newEngine(RequestIDMiddleware())
	id := uuid.NewString()

	resp := get(r, map[string]string{RequestIDHeader: id})
	assert.Equal(t, id, resp.Header().Get(RequestIDHeader))

	resp = get(r, map[string]string{RequestIDHeader: "<script>"})
	assert.NotEqual(t, "<script>", resp.Header().Get(RequestIDHeader))
}
