package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/fineai/miniapp-gateway/internal/metrics"
	apperrors "github.com/fineai/miniapp-gateway/pkg/app/errors"
	apphttp "github.com/fineai/miniapp-gateway/pkg/app/http"
	"github.com/fineai/miniapp-gateway/pkg/points"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

// cooldownEvent is the SSE event name for cooldown refreshes.
const cooldownEvent = "cooldown"

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service         Service
	refreshInterval time.Duration
	claims          *claimBroadcaster
	logger          *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the points service on the given chi router.
// Requests must already carry a resolved Telegram user.
func RegisterRoutes(r chi.Router, service Service, refreshInterval time.Duration, logger *zap.Logger) {
	h := &HTTP{
		service:         service,
		refreshInterval: refreshInterval,
		claims:          newClaimBroadcaster(),
		logger:          logger,
	}

	r.Get("/points", apphttp.HandleError(h.get))
	r.Post("/points/claim", apphttp.HandleError(h.claim))
	r.Get("/points/cooldown/stream", apphttp.HandleError(h.stream))
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	usr, ok := telegram.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "telegram user required")
	}

	view, err := h.service.GetPoints(r.Context(), usr.ID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, view)
	return nil
}

func (h *HTTP) claim(w http.ResponseWriter, r *http.Request) error {
	usr, ok := telegram.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "telegram user required")
	}

	view, err := h.service.Claim(r.Context(), usr.ID)
	if err != nil {
		return err
	}
	h.claims.publish(usr.ID, view.Snapshot())

	apphttp.WriteJSON(w, http.StatusOK, view)
	return nil
}

// stream pushes a cooldown event on connect, after every refresh interval
// and after every successful claim of the same user. The tracker lives
// exactly as long as the connection.
func (h *HTTP) stream(w http.ResponseWriter, r *http.Request) error {
	usr, ok := telegram.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "telegram user required")
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		return apperrors.GeneralError(fmt.Errorf("response writer does not support streaming"))
	}

	// subscribe first so a claim racing the initial load is not missed
	claimed, unsubscribe := h.claims.subscribe(usr.ID)
	defer unsubscribe()

	view, err := h.service.GetPoints(r.Context(), usr.ID)
	if err != nil {
		return err
	}

	ctx := r.Context()
	updates := make(chan points.Cooldown, 1)
	tracker := points.NewTracker(view.Snapshot(), func(cd points.Cooldown) {
		// keep only the latest state
		select {
		case <-updates:
		default:
		}
		select {
		case updates <- cd:
		default:
		}
	}, h.logger, points.WithInterval(h.refreshInterval))

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	metrics.CooldownStreams.Inc()
	defer metrics.CooldownStreams.Dec()

	tracker.Start(ctx)
	defer tracker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("Cooldown stream closed", zap.Int64("telegram_id", usr.ID))
			return nil
		case snapshot := <-claimed:
			tracker.Update(snapshot)
		case cd := <-updates:
			if err := writeEvent(w, cooldownEvent, points.NewCooldownView(cd)); err != nil {
				h.logger.Debug("Cooldown stream write failed", zap.Error(err))
				return nil
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload)
	return err
}
