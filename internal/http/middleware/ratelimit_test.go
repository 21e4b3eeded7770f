package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newLimitedRouter(rps float64, burst int) *gin.Engine {
	r := gin.New()
	rl := NewRateLimiter(rps, burst, KeyByTokenOrIP())
	r.Use(rl.Handler())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	r := newLimitedRouter(0, 3)

	var codes []int
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?sessionToken=tok", nil))
		codes = append(codes, w.Code)
		if w.Code == http.StatusTooManyRequests {
			if ra := w.Header().Get("Retry-After"); ra != "1" {
				t.Fatalf("Retry-After = %q", ra)
			}
		}
	}

	for i := 0; i < 3; i++ {
		if codes[i] != http.StatusOK {
			t.Fatalf("request %d = %d; burst should pass", i, codes[i])
		}
	}
	if codes[3] != http.StatusTooManyRequests || codes[4] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v; post-burst requests should be rejected", codes)
	}
}

func TestRateLimiter_SeparateBucketsPerToken(t *testing.T) {
	r := newLimitedRouter(0, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?sessionToken=a", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("token a first = %d", w.Code)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?sessionToken=a", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("token a second = %d", w.Code)
	}

	// A different token has its own bucket.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping?sessionToken=b", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("token b first = %d", w.Code)
	}
}

func TestKeyByTokenOrIP(t *testing.T) {
	keyFn := KeyByTokenOrIP()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/ping?sessionToken=tok", nil)
	if got := keyFn(c); got != "token:tok" {
		t.Fatalf("key = %q", got)
	}

	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/ping", nil)
	c.Request.RemoteAddr = "203.0.113.9:1234"
	if got := keyFn(c); got != "ip:203.0.113.9" {
		t.Fatalf("key = %q", got)
	}
}

func TestNewRateLimiter_CoercesBurst(t *testing.T) {
	rl := NewRateLimiter(1, 0, KeyByTokenOrIP())
	if rl.burst != 1 {
		t.Fatalf("burst = %d", rl.burst)
	}
}
