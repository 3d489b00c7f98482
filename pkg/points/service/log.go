package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fineai/miniapp-gateway/pkg/points"
)

const serviceName = "PointsService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the points Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// GetPoints wraps the service method with logging
func (ls *logService) GetPoints(ctx context.Context, telegramID int64) (view *points.View, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("GetPoints failed",
				zap.String("service", serviceName),
				zap.String("method", "GetPoints"),
				zap.Int64("telegram_id", telegramID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Debug("GetPoints completed",
			zap.String("service", serviceName),
			zap.String("method", "GetPoints"),
			zap.Int64("telegram_id", telegramID),
			zap.Int64("available_balance", view.AvailableBalance),
			zap.Bool("can_claim", view.Cooldown.CanClaim),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.GetPoints(ctx, telegramID)
}

// Claim wraps the service method with logging
func (ls *logService) Claim(ctx context.Context, telegramID int64) (view *points.View, err error) {
	start := time.Now()

	ls.logger.Info("Claim started",
		zap.String("service", serviceName),
		zap.String("method", "Claim"),
		zap.Int64("telegram_id", telegramID),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("Claim failed",
				zap.String("service", serviceName),
				zap.String("method", "Claim"),
				zap.Int64("telegram_id", telegramID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}
		ls.logger.Info("Claim completed",
			zap.String("service", serviceName),
			zap.String("method", "Claim"),
			zap.Int64("telegram_id", telegramID),
			zap.Int64("available_balance", view.AvailableBalance),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.Claim(ctx, telegramID)
}
