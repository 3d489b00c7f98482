package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fineai/miniapp-gateway/internal/metrics"
	apperrors "github.com/fineai/miniapp-gateway/pkg/app/errors"
	"github.com/fineai/miniapp-gateway/pkg/launch"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

// Store is the narrow data-access interface for launch sessions.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateSession(ctx context.Context, session *launch.Session) (bool, error)
	GetSession(ctx context.Context, key string) (*launch.Session, error)
	DeleteSession(ctx context.Context, key string) error
}

// Resolver resolves short link ids on behalf of a user.
//
//go:generate mockery --name Resolver --output mocks --outpkg mocks --filename mock_resolver.go --with-expecter
type Resolver interface {
	ResolveShortURL(ctx context.Context, telegramID int64, id string) (string, error)
}

// Service defines the interface for the launch business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// Launch runs the startup sequence once per app session. data is nil
	// outside a Telegram host.
	Launch(ctx context.Context, data *telegram.InitData, usr *telegram.User) (*launch.Plan, error)
	// Link builds the deep link for a short link id.
	Link(ctx context.Context, startParam string) (*launch.LinkResponse, error)
}

type launchService struct {
	store       Store
	resolver    Resolver
	botUsername string
	logger      *zap.Logger
}

// NewService creates a new launch service
func NewService(store Store, resolver Resolver, botUsername string, logger *zap.Logger) Service {
	return &launchService{
		store:       store,
		resolver:    resolver,
		botUsername: botUsername,
		logger:      logger,
	}
}

func (s *launchService) Launch(ctx context.Context, data *telegram.InitData, usr *telegram.User) (*launch.Plan, error) {
	bridge := telegram.NewCommandBridge(data)

	sessionID := uuid.NewString()
	var recorded string
	if data != nil {
		session := &launch.Session{
			ID:         sessionID,
			Key:        data.SessionKey(),
			TelegramID: usr.ID,
			StartParam: data.StartParam,
		}
		inserted, err := s.store.CreateSession(ctx, session)
		if err != nil {
			return nil, apperrors.GeneralError(fmt.Errorf("failed to record launch session: %w", err))
		}
		if !inserted {
			return s.replay(ctx, bridge, session.Key)
		}
		recorded = session.Key
	}

	resolver := launch.ResolverFunc(func(ctx context.Context, id string) (string, error) {
		return s.resolver.ResolveShortURL(ctx, usr.ID, id)
	})
	nav := &launch.PathRecorder{}

	target, err := launch.NewLauncher(launch.NewRouter(resolver, s.logger), s.logger).Setup(ctx, bridge, nav)
	if err == nil {
		// a deadline hit during lookup falls back to home; that plan is never delivered
		err = ctx.Err()
	}
	if err != nil {
		if recorded != "" {
			s.discard(ctx, recorded)
		}
		return nil, apperrors.TimeoutError(err, "launch aborted")
	}

	plan := &launch.Plan{
		SessionID: sessionID,
		Commands:  bridge.Commands(),
	}
	if target.Navigate {
		path := nav.Current()
		plan.Navigate = &path
	}
	return plan, nil
}

// replay answers a repeated launch of a known session: the host chrome is
// set up again but neither navigation nor haptics happen twice.
func (s *launchService) replay(ctx context.Context, bridge *telegram.CommandBridge, key string) (*launch.Plan, error) {
	existing, err := s.store.GetSession(ctx, key)
	if err != nil {
		if errors.Is(err, launch.ErrSessionNotFound) {
			// the first launch of this session was aborted in between
			return nil, apperrors.ConflictError(err, "launch aborted, please retry")
		}
		return nil, apperrors.GeneralError(fmt.Errorf("failed to load launch session: %w", err))
	}

	launch.Configure(bridge)
	metrics.LaunchesTotal.WithLabelValues(metrics.RouteReplay).Inc()

	return &launch.Plan{
		SessionID: existing.ID,
		Replayed:  true,
		Commands:  bridge.Commands(),
	}, nil
}

// discard forgets an aborted launch so that the retry runs the full
// sequence again instead of a replay.
func (s *launchService) discard(ctx context.Context, key string) {
	if err := s.store.DeleteSession(context.WithoutCancel(ctx), key); err != nil {
		s.logger.Warn("failed to discard aborted launch session", zap.Error(err))
	}
}

func (s *launchService) Link(_ context.Context, startParam string) (*launch.LinkResponse, error) {
	if len(startParam) != launch.ShortURLIDLength {
		return nil, apperrors.BadRequestError(nil,
			fmt.Sprintf("start_param must be a %d character short link id", launch.ShortURLIDLength))
	}
	return &launch.LinkResponse{Link: telegram.AppLink(s.botUsername, startParam)}, nil
}
