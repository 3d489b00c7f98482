package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/fineai/miniapp-gateway/pkg/launch"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

const serviceName = "LaunchService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the launch Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// Launch wraps the service method with logging
func (ls *logService) Launch(
	ctx context.Context,
	data *telegram.InitData,
	usr *telegram.User,
) (plan *launch.Plan, err error) {
	start := time.Now()

	ls.logger.Info("Launch started",
		zap.String("service", serviceName),
		zap.String("method", "Launch"),
		zap.Int64("telegram_id", usr.ID),
		zap.Bool("in_host", data != nil),
		zap.Int("start_param_len", len(startParamOf(data))),
	)

	defer func() {
		duration := time.Since(start)
		if err != nil {
			ls.logger.Error("Launch failed",
				zap.String("service", serviceName),
				zap.String("method", "Launch"),
				zap.Int64("telegram_id", usr.ID),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}

		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Launch"),
			zap.Int64("telegram_id", usr.ID),
			zap.String("session_id", plan.SessionID),
			zap.Bool("replayed", plan.Replayed),
			zap.Int("commands", len(plan.Commands)),
			zap.Duration("duration", duration),
		}
		if plan.Navigate != nil {
			fields = append(fields, zap.String("navigate", *plan.Navigate))
		}
		ls.logger.Info("Launch completed", fields...)
	}()

	return ls.svc.Launch(ctx, data, usr)
}

// Link wraps the service method with logging
func (ls *logService) Link(ctx context.Context, startParam string) (resp *launch.LinkResponse, err error) {
	defer func() {
		if err != nil {
			ls.logger.Warn("Link failed",
				zap.String("service", serviceName),
				zap.String("method", "Link"),
				zap.Int("start_param_len", len(startParam)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.Link(ctx, startParam)
}

func startParamOf(data *telegram.InitData) string {
	if data == nil {
		return ""
	}
	return data.StartParam
}
