package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/fineai/miniapp-gateway/pkg/app/errors"
	"github.com/fineai/miniapp-gateway/pkg/backend"
	"github.com/fineai/miniapp-gateway/pkg/points"
	"github.com/fineai/miniapp-gateway/pkg/profile"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

// User-visible failure messages.
const (
	msgLoadFailed = "Failed to load profile"
	msgNoProfile  = "Profile not found"
)

// Backend is the subset of the companion API the profile screen reads.
//
//go:generate mockery --name Backend --output mocks --outpkg mocks --filename mock_backend.go --with-expecter
type Backend interface {
	GetCharacterListBrief(ctx context.Context, telegramID int64) ([]backend.CharacterBrief, error)
	GetAddresses(ctx context.Context, telegramID int64) (*backend.Addresses, error)
	GetTokenInfo(ctx context.Context, telegramID int64) (*backend.TokenInfo, error)
	GetUserPoints(ctx context.Context, telegramID int64) (*points.UserPoints, error)
}

// Service defines the interface for the profile screen
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetProfile(ctx context.Context, usr *telegram.User, tab profile.Tab) (*profile.Profile, error)
}

type profileService struct {
	backend Backend
	now     func() time.Time
	logger  *zap.Logger
}

// NewService creates a new profile service
func NewService(backend Backend, now func() time.Time, logger *zap.Logger) Service {
	if now == nil {
		now = time.Now
	}
	return &profileService{
		backend: backend,
		now:     now,
		logger:  logger,
	}
}

func (s *profileService) GetProfile(ctx context.Context, usr *telegram.User, tab profile.Tab) (*profile.Profile, error) {
	p := &profile.Profile{
		User: profile.NewUserBlock(usr),
		Tab:  tab,
	}

	switch tab {
	case profile.TabWallet:
		addrs, err := s.backend.GetAddresses(ctx, usr.ID)
		if err != nil {
			return nil, backendError(err)
		}
		token, err := s.backend.GetTokenInfo(ctx, usr.ID)
		if err != nil {
			// token card is optional
			s.logger.Warn("token info unavailable",
				zap.Int64("telegram_id", usr.ID),
				zap.Error(err))
		}
		p.Wallet = profile.NewWallet(addrs, token)

	case profile.TabPoints:
		up, err := s.backend.GetUserPoints(ctx, usr.ID)
		if err != nil {
			return nil, backendError(err)
		}
		p.Points = points.NewView(up, s.now())

	default:
		p.Tab = profile.TabConversations
		chars, err := s.backend.GetCharacterListBrief(ctx, usr.ID)
		if err != nil {
			return nil, backendError(err)
		}
		p.Conversations = chars
	}

	return p, nil
}

func backendError(err error) error {
	if errors.Is(err, backend.ErrNotFound) {
		return apperrors.ResourceNotFoundError(err, msgNoProfile)
	}
	return apperrors.DependencyError(err, msgLoadFailed)
}
