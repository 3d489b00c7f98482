package launch

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/fineai/miniapp-gateway/internal/metrics"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

// Navigator is the client-side navigation stack.
type Navigator interface {
	Push(path string)
	Back()
}

// PathRecorder is a Navigator that records pushes so they can be handed
// to the client.
type PathRecorder struct {
	mu    sync.Mutex
	stack []string
}

func (p *PathRecorder) Push(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stack = append(p.stack, path)
}

func (p *PathRecorder) Back() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.stack) > 0 {
		p.stack = p.stack[:len(p.stack)-1]
	}
}

// Current returns the top of the stack, empty if nothing was pushed.
func (p *PathRecorder) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.stack) == 0 {
		return ""
	}
	return p.stack[len(p.stack)-1]
}

// Launcher runs the startup sequence of a Mini App session.
type Launcher struct {
	router *Router
	logger *zap.Logger
}

// NewLauncher creates a launcher.
func NewLauncher(router *Router, logger *zap.Logger) *Launcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Launcher{router: router, logger: logger}
}

// Setup routes the launch start parameter, configures the host chrome and
// fires the launch haptic. It must run once per app session.
func (l *Launcher) Setup(ctx context.Context, bridge telegram.Bridge, nav Navigator) (*Target, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	target := Target{}
	if startParam := bridge.StartParam(); startParam != "" {
		target = l.router.Route(ctx, startParam)
		nav.Push(target.Path)
		bridge.ClearStartParam()
	}

	Configure(bridge)

	if target.LookupFailed {
		telegram.Notify(bridge, telegram.NotificationWarning)
	} else {
		telegram.Notify(bridge, telegram.NotificationSuccess)
	}

	metrics.LaunchesTotal.WithLabelValues(outcome(target)).Inc()
	l.logger.Debug("Launch setup completed",
		zap.String("path", target.Path),
		zap.Bool("navigate", target.Navigate),
		zap.Bool("resolved", target.Resolved),
		zap.Bool("in_host", bridge.InHost()))

	return &target, nil
}

// Configure prepares the host chrome: ready, full height, back button bound
// to in-app back navigation, settings button hidden.
func Configure(bridge telegram.Bridge) {
	bridge.Ready()
	bridge.Expand()
	bridge.ShowBackButton()
	bridge.HideSettingsButton()
	bridge.OnBackButtonClick(telegram.ActionNavigateBack)
}

func outcome(t Target) string {
	switch {
	case !t.Navigate:
		return metrics.RouteNone
	case t.LookupFailed:
		return metrics.RouteFallback
	case t.Resolved:
		return metrics.RouteResolved
	default:
		return metrics.RouteRoot
	}
}
