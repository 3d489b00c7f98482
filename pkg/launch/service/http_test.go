package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/fineai/miniapp-gateway/pkg/app/errors"
	"github.com/fineai/miniapp-gateway/pkg/launch"
	"github.com/fineai/miniapp-gateway/pkg/launch/service/mocks"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

func newLaunchTestServer(svc Service) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())
	return r
}

func TestLaunchHTTP_Launch(t *testing.T) {
	data := testInitData("")
	path := "/"

	svc := mocks.NewService(t)
	svc.EXPECT().
		Launch(mock.Anything, data, data.User).
		Return(&launch.Plan{
			SessionID: "sess-1",
			Navigate:  &path,
			Commands:  []telegram.Command{{Method: telegram.CmdReady}},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/launch", nil)
	ctx := telegram.WithInitData(req.Context(), data)
	ctx = telegram.WithUser(ctx, data.User)

	rec := httptest.NewRecorder()
	newLaunchTestServer(svc).ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if got["session_id"] != "sess-1" || got["navigate"] != "/" || got["replayed"] != false {
		t.Fatalf("unexpected body %v", got)
	}
	cmds, ok := got["commands"].([]any)
	if !ok || len(cmds) != 1 {
		t.Fatalf("unexpected commands %v", got["commands"])
	}
}

func TestLaunchHTTP_Launch_NoUser(t *testing.T) {
	rec := httptest.NewRecorder()
	newLaunchTestServer(mocks.NewService(t)).
		ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/launch", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestLaunchHTTP_Launch_Timeout(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Launch(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.TimeoutError(errors.New("context canceled"), "launch aborted")).Once()

	req := httptest.NewRequest(http.MethodPost, "/launch", nil)
	req = req.WithContext(telegram.WithUser(req.Context(), telegram.PlaceholderUser()))

	rec := httptest.NewRecorder()
	newLaunchTestServer(svc).ServeHTTP(rec, req)

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected status %d, got %d", http.StatusGatewayTimeout, rec.Code)
	}
}

func TestLaunchHTTP_Link(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Link(mock.Anything, shortID).
		Return(&launch.LinkResponse{Link: "https://t.me/bot?startapp=" + shortID}, nil).Once()
	svc.EXPECT().
		Link(mock.Anything, "bad").
		Return(nil, apperrors.BadRequestError(nil, "start_param must be a 64 character short link id")).Once()

	handler := newLaunchTestServer(svc)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/launch/link?start_param="+shortID, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var resp launch.LinkResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	if resp.Link != "https://t.me/bot?startapp="+shortID {
		t.Fatalf("unexpected link %q", resp.Link)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/launch/link?start_param=bad", nil))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
