package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/filmtv1308-cmyk/Big-TeleSales/internal/testutil"
)

func ok(context.Context) error { return nil }

func TestCheckerCheck(t *testing.T) {
	tests := []struct {
		name       string
		deps       []Dependency
		wantStatus Status
		wantFailed string
	}{
		{name: "no dependencies", wantStatus: StatusHealthy},
		{name: "all healthy", deps: []Dependency{{Name: "redis", Ping: ok}, {Name: "postgres", Ping: ok}}, wantStatus: StatusHealthy},
		{
			name: "one failing",
			deps: []Dependency{
				{Name: "redis", Ping: ok},
				{Name: "postgres", Ping: func(context.Context) error { return errors.New("connection refused") }},
			},
			wantStatus: StatusUnhealthy,
			wantFailed: "postgres",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := NewChecker("v1", tt.deps...).Check(context.Background())

			if status.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", status.Status, tt.wantStatus)
			}
			if len(status.Checks) != len(tt.deps) {
				t.Errorf("len(Checks) = %d, want %d", len(status.Checks), len(tt.deps))
			}
			if tt.wantFailed != "" && status.Checks[tt.wantFailed].Error == "" {
				t.Errorf("Checks[%s] = %+v, want error", tt.wantFailed, status.Checks[tt.wantFailed])
			}
		})
	}
}

func TestReadyHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	failing := NewChecker("v1", Dependency{Name: "redis", Ping: func(context.Context) error { return errors.New("down") }})

	r := gin.New()
	r.GET("/health/ready", failing.ReadyHandler())
	r.GET("/health/live", failing.LiveHandler())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("ready status = %d, want 503", w.Code)
	}

	var body HealthStatus
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Version != "v1" || body.Checks["redis"].Status != StatusUnhealthy {
		t.Errorf("body = %+v", body)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if w.Code != http.StatusOK {
		t.Errorf("live status = %d, want 200", w.Code)
	}
}

func TestRedisDependency(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupRedisContainer(ctx, t)
	defer cleanup()

	status := NewChecker("v1", RedisDependency(client)).Check(ctx)
	if status.Status != StatusHealthy {
		t.Errorf("Status = %s, checks = %+v", status.Status, status.Checks)
	}
}
