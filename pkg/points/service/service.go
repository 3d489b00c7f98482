package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/fineai/miniapp-gateway/internal/metrics"
	apperrors "github.com/fineai/miniapp-gateway/pkg/app/errors"
	"github.com/fineai/miniapp-gateway/pkg/backend"
	"github.com/fineai/miniapp-gateway/pkg/points"
)

// User-visible failure messages.
const (
	msgLoadFailed  = "Failed to load points"
	msgClaimFailed = "Failed to claim free points"
	msgCoolingDown = "Free points already claimed, next claim in "
	msgNoAccount   = "Points account not found"
)

// ErrClaimCoolingDown is returned when a claim is attempted inside the window.
var ErrClaimCoolingDown = errors.New("free points claim is cooling down")

// Backend is the narrow backend interface the points service needs.
//
//go:generate mockery --name Backend --output mocks --outpkg mocks --filename mock_backend.go --with-expecter
type Backend interface {
	GetUserPoints(ctx context.Context, telegramID int64) (*points.UserPoints, error)
	ClaimFreePoints(ctx context.Context, telegramID int64) (*points.UserPoints, error)
}

// Service defines the interface for the points business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetPoints(ctx context.Context, telegramID int64) (*points.View, error)
	Claim(ctx context.Context, telegramID int64) (*points.View, error)
}

type pointsService struct {
	backend Backend
	now     func() time.Time
	logger  *zap.Logger
}

// NewService creates a new points service. now may be nil.
func NewService(backend Backend, now func() time.Time, logger *zap.Logger) Service {
	if now == nil {
		now = time.Now
	}
	return &pointsService{
		backend: backend,
		now:     now,
		logger:  logger,
	}
}

// GetPoints returns the points view of a user.
func (s *pointsService) GetPoints(ctx context.Context, telegramID int64) (*points.View, error) {
	p, err := s.backend.GetUserPoints(ctx, telegramID)
	if err != nil {
		return nil, backendError(err, msgLoadFailed)
	}
	return points.NewView(p, s.now()), nil
}

// Claim credits the free points balance. The previous state is left
// untouched on failure and the claim is never retried.
func (s *pointsService) Claim(ctx context.Context, telegramID int64) (*points.View, error) {
	current, err := s.backend.GetUserPoints(ctx, telegramID)
	if err != nil {
		metrics.ClaimsTotal.WithLabelValues("failed").Inc()
		return nil, backendError(err, msgClaimFailed)
	}

	cd := points.ComputeCooldown(current.FreeClaimedBalanceUpdatedAt, s.now().Unix())
	if !cd.CanClaim {
		metrics.ClaimsTotal.WithLabelValues("locked").Inc()
		return nil, apperrors.LockedError(ErrClaimCoolingDown, msgCoolingDown+cd.NextClaimTime())
	}

	updated, err := s.backend.ClaimFreePoints(ctx, telegramID)
	if err != nil {
		metrics.ClaimsTotal.WithLabelValues("failed").Inc()
		return nil, backendError(err, msgClaimFailed)
	}

	metrics.ClaimsTotal.WithLabelValues("success").Inc()
	return points.NewView(updated, s.now()), nil
}

// backendError maps a backend failure to a service error. A 404 means the
// user has no points account yet.
func backendError(err error, message string) error {
	if errors.Is(err, backend.ErrNotFound) {
		return apperrors.ResourceNotFoundError(err, msgNoAccount)
	}
	return apperrors.DependencyError(err, message)
}
