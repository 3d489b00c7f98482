package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fineai/miniapp-gateway/pkg/profile"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

const serviceName = "ProfileService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the profile Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// GetProfile wraps the service method with logging
func (ls *logService) GetProfile(
	ctx context.Context,
	usr *telegram.User,
	tab profile.Tab,
) (p *profile.Profile, err error) {
	start := time.Now()

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("GetProfile failed",
				zap.String("service", serviceName),
				zap.String("method", "GetProfile"),
				zap.Int64("telegram_id", usr.ID),
				zap.String("tab", string(tab)),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}

		ls.logger.Debug("GetProfile completed",
			zap.String("service", serviceName),
			zap.String("method", "GetProfile"),
			zap.Int64("telegram_id", usr.ID),
			zap.String("tab", string(p.Tab)),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.GetProfile(ctx, usr, tab)
}
