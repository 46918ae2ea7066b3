package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testCtx(remoteAddr string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/payments/confirm", nil)
	c.Request.RemoteAddr = remoteAddr
	return c
}

func TestKeyByUserID(t *testing.T) {
	c := testCtx("203.0.113.7:1234")
	c.Set(CtxUserIDKey, int64(42))
	if got := KeyByUserID()(c); got != "rl:user:42" {
		t.Fatalf("authenticated key %q, want rl:user:42", got)
	}

	// Without an authenticated user the key degrades to the client IP.
	anon := testCtx("203.0.113.7:1234")
	if got := KeyByUserID()(anon); got != "rl:user:anon:ip:203.0.113.7" {
		t.Fatalf("anonymous key %q", got)
	}
}

func TestAllowPrivateIP(t *testing.T) {
	allow := AllowPrivateIP()
	cases := []struct {
		ip   string
		want bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"192.168.0.9", true},
		{"203.0.113.7", false},
		{"not-an-ip", false},
	}
	for _, tc := range cases {
		c := testCtx("203.0.113.7:1234")
		c.Set("real_ip", tc.ip)
		if got := allow(c); got != tc.want {
			t.Fatalf("AllowPrivateIP(%s) = %v, want %v", tc.ip, got, tc.want)
		}
	}
}

func TestRateLimitNoRedisIsNoop(t *testing.T) {
	h := RateLimit(nil, 10, 0, KeyByIP(), nil)
	c := testCtx("203.0.113.7:1234")
	h(c)
	if c.IsAborted() {
		t.Fatal("limiter without redis aborted the request")
	}
}
