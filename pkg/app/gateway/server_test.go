package gateway

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/fineai/miniapp-gateway/pkg/config"
	"github.com/fineai/miniapp-gateway/pkg/launch"
	launchmocks "github.com/fineai/miniapp-gateway/pkg/launch/service/mocks"
	"github.com/fineai/miniapp-gateway/pkg/points"
	pointsmocks "github.com/fineai/miniapp-gateway/pkg/points/service/mocks"
	"github.com/fineai/miniapp-gateway/pkg/profile"
	profilemocks "github.com/fineai/miniapp-gateway/pkg/profile/service/mocks"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

type testServices struct {
	launch  *launchmocks.Service
	points  *pointsmocks.Service
	profile *profilemocks.Service
}

func newTestRouter(t *testing.T, allowOutsideHost bool) (http.Handler, testServices) {
	t.Helper()

	cfg := &config.GatewayConfig{}
	cfg.Server.RequestTimeout = 5 * time.Second
	cfg.Server.AllowedOrigins = []string{"https://app.example.com"}
	cfg.Telegram.BotToken = "123456:test-bot-token"
	cfg.Telegram.BotUsername = "fineai_bot"
	cfg.Telegram.AllowOutsideHost = allowOutsideHost
	cfg.Points.RefreshInterval = time.Minute
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = "/metrics"

	mocks := testServices{
		launch:  launchmocks.NewService(t),
		points:  pointsmocks.NewService(t),
		profile: profilemocks.NewService(t),
	}
	svcs := services{launch: mocks.launch, points: mocks.points, profile: mocks.profile}

	return NewServer(cfg).newRouter(svcs, zap.NewNop()), mocks
}

func TestRouter_Health(t *testing.T) {
	handler, _ := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Fatalf("unexpected health response %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_Metrics(t *testing.T) {
	handler, _ := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_goroutines") {
		t.Fatal("expected prometheus exposition output")
	}
}

func TestRouter_RequiresInitData(t *testing.T) {
	handler, _ := newTestRouter(t, false)

	for _, path := range []string{"/api/v1/points", "/api/v1/profile", "/api/v1/launch/link"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusUnauthorized, rec.Code)
		}
	}
}

func TestRouter_OutsideHostUsesPlaceholderUser(t *testing.T) {
	handler, mocks := newTestRouter(t, true)

	mocks.points.EXPECT().
		GetPoints(mock.Anything, int64(telegram.PlaceholderUserID)).
		Return(&points.View{AvailableDisplay: "0"}, nil).Once()
	mocks.profile.EXPECT().
		GetProfile(mock.Anything, telegram.PlaceholderUser(), profile.TabWallet).
		Return(&profile.Profile{Tab: profile.TabWallet}, nil).Once()
	mocks.launch.EXPECT().
		Launch(mock.Anything, (*telegram.InitData)(nil), telegram.PlaceholderUser()).
		Return(&launch.Plan{SessionID: "s"}, nil).Once()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/points"},
		{http.MethodGet, "/api/v1/profile?tab=wallet"},
		{http.MethodPost, "/api/v1/launch"},
	} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s %s: expected status %d, got %d: %s", tc.method, tc.path, http.StatusOK, rec.Code, rec.Body.String())
		}
	}
}

func TestRouter_CORS(t *testing.T) {
	handler, _ := newTestRouter(t, false)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/points/claim", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}

func TestRequestTimeout_SkipsEventStreams(t *testing.T) {
	var hasDeadline bool
	h := requestTimeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, hasDeadline = r.Context().Deadline()
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/points", nil)
	h.ServeHTTP(httptest.NewRecorder(), req)
	if !hasDeadline {
		t.Fatal("expected a request deadline")
	}

	for _, accept := range []string{eventStreamType, "text/event-stream, */*", "application/json, text/event-stream;q=0.9"} {
		req = httptest.NewRequest(http.MethodGet, "/api/v1/points/cooldown/stream", nil)
		req.Header.Set("Accept", accept)
		h.ServeHTTP(httptest.NewRecorder(), req)
		if hasDeadline {
			t.Fatalf("expected no deadline on event streams with Accept %q", accept)
		}
	}
}
