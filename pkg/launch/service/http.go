package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/fineai/miniapp-gateway/pkg/app/errors"
	apphttp "github.com/fineai/miniapp-gateway/pkg/app/http"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the launch service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/launch", apphttp.HandleError(h.launch))
	r.Get("/launch/link", apphttp.HandleError(h.link))
}

func (h *HTTP) launch(w http.ResponseWriter, r *http.Request) error {
	usr, ok := telegram.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "telegram user required")
	}

	plan, err := h.service.Launch(r.Context(), telegram.InitDataFromContext(r.Context()), usr)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, plan)
	return nil
}

func (h *HTTP) link(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.Link(r.Context(), r.URL.Query().Get("start_param"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
