package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/fineai/miniapp-gateway/pkg/app/errors"
	apphttp "github.com/fineai/miniapp-gateway/pkg/app/http"
	"github.com/fineai/miniapp-gateway/pkg/profile"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the profile service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/profile", apphttp.HandleError(h.get))
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	usr, ok := telegram.UserFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "telegram user required")
	}

	tab := profile.ParseTab(r.URL.Query().Get("tab"))
	p, err := h.service.GetProfile(r.Context(), usr, tab)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, p)
	return nil
}
