package telegram

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/fineai/miniapp-gateway/pkg/app/errors"
	apphttp "github.com/fineai/miniapp-gateway/pkg/app/http"
)

const (
	// HeaderInitData carries the raw init data string.
	HeaderInitData = "X-Telegram-Init-Data"
	// QueryInitData carries the raw init data for clients that cannot set
	// headers, such as a browser EventSource.
	QueryInitData = "tg_init_data"
	// authScheme is the Authorization scheme for init data ("tma <raw>").
	authScheme = "tma "
)

// Authenticator verifies init data on incoming requests and stores the
// result in the request context.
type Authenticator struct {
	botToken         string
	ttl              time.Duration
	allowOutsideHost bool
	now              func() time.Time
	logger           *zap.Logger
}

// NewAuthenticator creates an init data authenticator.
func NewAuthenticator(botToken string, ttl time.Duration, allowOutsideHost bool, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		botToken:         botToken,
		ttl:              ttl,
		allowOutsideHost: allowOutsideHost,
		now:              time.Now,
		logger:           logger,
	}
}

// Middleware rejects requests without valid init data, except that requests
// carrying none at all get the placeholder user when outside-host access is
// enabled.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := rawInitData(r)

		var data *InitData
		if raw == "" {
			if !a.allowOutsideHost {
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(nil, "missing telegram init data"))
				return
			}
		} else {
			var err error
			data, err = ValidateInitData(raw, a.botToken, a.ttl, a.now())
			if err != nil {
				a.logger.Debug("Rejected init data", zap.Error(err))
				apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, "invalid telegram init data"))
				return
			}
		}

		usr, err := ResolveUser(data)
		if err != nil {
			msg := "invalid telegram user"
			if errors.Is(err, ErrUserDataMissing) {
				msg = "telegram user data not found"
			}
			apphttp.DefaultErrorHandler(w, apperrors.UnAuthorizedError(err, msg))
			return
		}

		ctx := WithInitData(r.Context(), data)
		ctx = WithUser(ctx, usr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func rawInitData(r *http.Request) string {
	if raw := r.Header.Get(HeaderInitData); raw != "" {
		return raw
	}
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, authScheme) {
		return strings.TrimPrefix(authz, authScheme)
	}
	return r.URL.Query().Get(QueryInitData)
}
