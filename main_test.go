package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"
	"time"

	"hello-service/config"
	"hello-service/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            "8080",
		GinMode:         gin.TestMode,
		LogLevel:        "info",
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    6 * time.Second,
		IdleTimeout:     7 * time.Second,
		ShutdownTimeout: time.Second,
		ServiceName:     "hello-test",
	}
}

func newTestRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	done := make(chan struct{})
	t.Cleanup(func() { close(done) })
	router, err := setupRouter(cfg, done)
	require.NoError(t, err)
	return router
}

func get(router http.Handler, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(t, testConfig())

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "root", target: "/", wantStatus: http.StatusOK, wantBody: `{"Hello": "Cloud Run"}`},
		{name: "healthz", target: "/healthz", wantStatus: http.StatusOK, wantBody: `{"status": "healthy"}`},
		{name: "item without q", target: "/items/5", wantStatus: http.StatusOK, wantBody: `{"item_id": 5, "q": null}`},
		{name: "item with q", target: "/items/5?q=somequery", wantStatus: http.StatusOK, wantBody: `{"item_id": 5, "q": "somequery"}`},
		{name: "unknown route", target: "/unknown", wantStatus: http.StatusNotFound, wantBody: `{"detail": "Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(router, tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_InvalidItemID(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := get(router, "/items/abc")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp, "detail")
	assert.NotContains(t, resp, "item_id")
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodPost, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"detail": "Method Not Allowed"}`, rec.Body.String())
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestRouter_TrailingSlashRedirect(t *testing.T) {
	router := newTestRouter(t, testConfig())

	rec := get(router, "/healthz/")

	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/healthz", rec.Header().Get("Location"))
}

func TestRouter_Metrics(t *testing.T) {
	router := newTestRouter(t, testConfig())
	get(router, "/items/9")

	rec := get(router, "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "hello_service_requests_total")
	assert.Contains(t, rec.Body.String(), "hello_service_items_read_total")
}

func TestRouter_RateLimitSparesProbes(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimit = config.RateLimitConfig{RPS: 0.001, Burst: 1}
	router := newTestRouter(t, cfg)

	assert.Equal(t, http.StatusOK, get(router, "/").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, "/items/1").Code)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(router, "/healthz").Code)
	}
}

func TestRouter_RateLimitIgnoresForwardedFor(t *testing.T) {
	tests := []struct {
		name           string
		trustedProxies []string
		wantLimited    bool
	}{
		{name: "untrusted peer cannot rotate client ip", wantLimited: true},
		{name: "trusted proxy forwards client ip", trustedProxies: []string{"203.0.113.0/24"}, wantLimited: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.RateLimit = config.RateLimitConfig{RPS: 0.001, Burst: 1}
			cfg.TrustedProxies = tt.trustedProxies
			router := newTestRouter(t, cfg)

			codes := map[int]int{}
			for i := 0; i < 20; i++ {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.RemoteAddr = "203.0.113.7:40000"
				req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.9.9.%d", i))
				rec := httptest.NewRecorder()
				router.ServeHTTP(rec, req)
				codes[rec.Code]++
			}

			if tt.wantLimited {
				assert.Equal(t, map[int]int{http.StatusOK: 1, http.StatusTooManyRequests: 19}, codes)
			} else {
				assert.Equal(t, map[int]int{http.StatusOK: 20}, codes)
			}
		})
	}
}

func TestSetupRouter_InvalidTrustedProxy(t *testing.T) {
	cfg := testConfig()
	cfg.TrustedProxies = []string{"not-an-ip"}
	done := make(chan struct{})
	defer close(done)

	router, err := setupRouter(cfg, done)

	require.Error(t, err)
	assert.Nil(t, router)
}

func TestNewServer(t *testing.T) {
	cfg := testConfig()

	server := newServer(cfg, http.NotFoundHandler())

	assert.Equal(t, ":8080", server.Addr)
	assert.Equal(t, 5*time.Second, server.ReadTimeout)
	assert.Equal(t, 6*time.Second, server.WriteTimeout)
	assert.Equal(t, 7*time.Second, server.IdleTimeout)
}

func TestShutdownOnSignal(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	server := newServer(testConfig(), newTestRouter(t, testConfig()))
	served := make(chan error, 1)
	go func() { served <- server.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM
	shutdownOnSignal(quit, server, time.Second)

	select {
	case err := <-served:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}
