package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"syllabus-analyzer/internal/analyses"
	"syllabus-analyzer/internal/llm/gemini"
	"syllabus-analyzer/internal/services/health"
	"syllabus-analyzer/internal/shared/config"
	"syllabus-analyzer/internal/shared/telemetry"
)

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	restore := telemetry.SetOutput(io.Discard)
	t.Cleanup(restore)

	current := analyses.NewCurrentStore()
	svc := analyses.NewService(gemini.NewClient("", cfg.LLMModel, time.Second), cfg.LLMProvider, cfg.LLMModel, current)
	return NewRouter(RouterDeps{
		Config:          cfg,
		Health:          health.NewService(svc, cfg.LLMProvider),
		AnalysisHandler: analyses.NewHandler(svc, current),
	})
}

func TestRouterHealthDegraded(t *testing.T) {
	r := newTestRouter(t, config.Config{LLMProvider: "gemini"})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var got health.Status
	if err := json.Unmarshal(resp.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.OK || got.AIEnabled {
		t.Fatalf("unexpected health %+v", got)
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestRouterRateLimitsAnalyses(t *testing.T) {
	r := newTestRouter(t, config.Config{LLMProvider: "gemini", RateLimitRPS: 0.001, RateLimitBurst: 1})

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analyses", strings.NewReader(`{"syllabus":"s","exam":"e"}`))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		return resp.Code
	}
	if code := post(); code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without key, got %d", code)
	}
	if code := post(); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}

	// Health is not limited.
	for i := 0; i < 3; i++ {
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
		if resp.Code != http.StatusOK {
			t.Fatalf("health should not be limited, got %d", resp.Code)
		}
	}
}

func TestRouterMetrics(t *testing.T) {
	r := newTestRouter(t, config.Config{})

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "go_goroutines") {
		t.Fatalf("expected go collector output")
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{"": ":8080", "9090": ":9090", ":7000": ":7000"}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Fatalf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRouterProductionUsesReleaseMode(t *testing.T) {
	t.Cleanup(func() { gin.SetMode(gin.TestMode) })

	newTestRouter(t, config.Config{Env: config.EnvProduction, LLMProvider: "gemini"})
	if gin.Mode() != gin.ReleaseMode {
		t.Fatalf("expected release mode, got %q", gin.Mode())
	}
}
