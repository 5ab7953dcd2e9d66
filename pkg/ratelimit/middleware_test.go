package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func clientIPFor(t *testing.T, remoteAddr string, headers map[string]string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got string
	engine := gin.New()
	engine.GET("/", func(c *gin.Context) {
		got = getClientIP(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	engine.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestGetClientIPFromRemoteAddr(t *testing.T) {
	assert.Equal(t, "192.0.2.10", clientIPFor(t, "192.0.2.10:52114", nil))
}

func TestGetClientIPPrefersForwardedFor(t *testing.T) {
	ip := clientIPFor(t, "10.0.0.1:1234", map[string]string{
		"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
	})
	assert.Equal(t, "203.0.113.7", ip)
}

func TestGetClientIPIgnoresInvalidForwardedFor(t *testing.T) {
	ip := clientIPFor(t, "10.0.0.1:1234", map[string]string{
		"X-Forwarded-For": "not-an-ip",
		"X-Real-IP":       "198.51.100.4",
	})
	assert.Equal(t, "198.51.100.4", ip)
}

func TestIsWhitelisted(t *testing.T) {
	limiter := &RateLimiter{}
	limiter.config.WhitelistedIPs = []string{"127.0.0.1", "192.0.2.1"}

	assert.True(t, limiter.isWhitelisted("127.0.0.1"))
	assert.False(t, limiter.isWhitelisted("203.0.113.7"))
}
