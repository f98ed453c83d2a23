package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaras-platform/jaras/internal/infrastructure/ratelimit"
	"github.com/jaras-platform/jaras/internal/shared/constants"
	"github.com/jaras-platform/jaras/internal/shared/i18n"
	"github.com/jaras-platform/jaras/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"lang": LangFrom(c), "request_id": c.GetString(constants.ContextKeyRequestID)})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func do(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// =====================================================================
// Request ID
// =====================================================================

func TestRequestID_Generated(t *testing.T) {
	w := do(newEngine(RequestID()), http.MethodGet, "/ping", nil)

	id := w.Header().Get(constants.HeaderXRequestID)
	assert.Len(t, id, 36)
	assert.Contains(t, w.Body.String(), id)
}

func TestRequestID_Propagated(t *testing.T) {
	w := do(newEngine(RequestID()), http.MethodGet, "/ping", map[string]string{constants.HeaderXRequestID: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))
}

// =====================================================================
// Language
// =====================================================================

func TestLanguage(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		headers map[string]string
		want    i18n.Lang
	}{
		{"default", "/ping", nil, i18n.EN},
		{"header", "/ping", map[string]string{"Accept-Language": "ar-SA,ar;q=0.9"}, i18n.AR},
		{"query wins", "/ping?lang=en", map[string]string{"Accept-Language": "ar"}, i18n.EN},
		{"bad query falls back to header", "/ping?lang=fr", map[string]string{"Accept-Language": "ar"}, i18n.AR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newEngine(Language()), http.MethodGet, tt.path, tt.headers)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, string(tt.want), w.Header().Get(constants.HeaderContentLang))
			assert.Contains(t, w.Body.String(), `"lang":"`+string(tt.want)+`"`)
		})
	}
}

func TestLangFrom_Default(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, i18n.EN, LangFrom(c))
}

// =====================================================================
// CORS
// =====================================================================

func TestCORS(t *testing.T) {
	r := newEngine(CORS([]string{"https://jaras.sa"}))

	w := do(r, http.MethodGet, "/ping", map[string]string{"Origin": "https://jaras.sa"})
	assert.Equal(t, "https://jaras.sa", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	w = do(r, http.MethodGet, "/ping", map[string]string{"Origin": "https://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodOptions, "/ping", map[string]string{"Origin": "https://jaras.sa"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORS_Wildcard(t *testing.T) {
	w := do(newEngine(CORS([]string{"*"})), http.MethodGet, "/ping", map[string]string{"Origin": "https://any.example"})
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
}

// =====================================================================
// Recovery
// =====================================================================

func TestRecovery(t *testing.T) {
	w := do(newEngine(Recovery(logger.NewNopLogger())), http.MethodGet, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), constants.ErrMsgInternalServerError)
}

// =====================================================================
// Rate limit
// =====================================================================

type stubLimiter struct {
	decision ratelimit.Decision
	err      error
	calls    int
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (ratelimit.Decision, error) {
	s.calls++
	return s.decision, s.err
}

func TestRateLimit_Allows(t *testing.T) {
	primary := &stubLimiter{decision: ratelimit.Decision{Allowed: true}}
	w := do(newEngine(RateLimit(primary, nil, logger.NewNopLogger())), http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_Rejects(t *testing.T) {
	primary := &stubLimiter{decision: ratelimit.Decision{Allowed: false, RetryAfter: 2500 * time.Millisecond}}
	w := do(newEngine(RateLimit(primary, nil, logger.NewNopLogger())), http.MethodGet, "/ping", nil)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "3", w.Header().Get(constants.HeaderRetryAfter))
	assert.Contains(t, w.Body.String(), "rate_limited")
}

func TestRateLimit_FallbackOnError(t *testing.T) {
	primary := &stubLimiter{err: errors.New("redis down")}
	fallback := &stubLimiter{decision: ratelimit.Decision{Allowed: false, RetryAfter: time.Second}}

	w := do(newEngine(RateLimit(primary, fallback, logger.NewNopLogger())), http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 1, fallback.calls)
}

func TestRateLimit_FailOpenWithoutFallback(t *testing.T) {
	primary := &stubLimiter{err: errors.New("redis down")}
	w := do(newEngine(RateLimit(primary, nil, logger.NewNopLogger())), http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit_WithTokenBucket(t *testing.T) {
	r := newEngine(RateLimit(ratelimit.NewTokenBucketLimiter(0.001, 2), nil, logger.NewNopLogger()))

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/ping", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodGet, "/ping", nil).Code)
}

// =====================================================================
// Metrics and logger
// =====================================================================

func TestMetricsAndLogger_PassThrough(t *testing.T) {
	w := do(newEngine(Metrics(), Logger(logger.NewNopLogger())), http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(newEngine(Metrics(), Logger(logger.NewNopLogger())), http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
