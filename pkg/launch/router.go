// Package launch decides where a Mini App launch lands and drives the host
// runtime through its startup sequence.
package launch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fineai/miniapp-gateway/internal/metrics"
)

const (
	// ShortURLIDLength is the length of an opaque short link id start parameter.
	ShortURLIDLength = 64
	// RootPath is the landing path for anything that is not a resolvable short link.
	RootPath = "/"
)

var errBadResolvedPath = errors.New("resolved path is not absolute")

// Resolver looks up the in-app path behind a short link id.
type Resolver interface {
	ResolveShortURL(ctx context.Context, id string) (string, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, id string) (string, error)

func (f ResolverFunc) ResolveShortURL(ctx context.Context, id string) (string, error) {
	return f(ctx, id)
}

// Target is the routing decision for one start parameter.
type Target struct {
	Path     string
	Navigate bool
	// Resolved is set when Path came from a short link lookup.
	Resolved bool
	// LookupFailed is set when a short link lookup failed and Path fell back to root.
	LookupFailed bool
}

// Router maps start parameters to in-app paths.
type Router struct {
	resolver Resolver
	logger   *zap.Logger
}

// NewRouter creates a router backed by resolver.
func NewRouter(resolver Resolver, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{resolver: resolver, logger: logger}
}

// Route decides the landing path for startParam.
//
// An empty parameter means no navigation. A 64 character parameter is a
// short link id and is resolved through the backend; every other length
// lands on the root path. Lookup failures are not returned: they are
// logged, counted and routed to root.
func (r *Router) Route(ctx context.Context, startParam string) Target {
	if startParam == "" {
		return Target{}
	}
	if len(startParam) != ShortURLIDLength {
		return Target{Path: RootPath, Navigate: true}
	}

	path, err := r.resolver.ResolveShortURL(ctx, startParam)
	if err == nil && !strings.HasPrefix(path, "/") {
		err = fmt.Errorf("%w: %q", errBadResolvedPath, path)
	}
	if err != nil {
		r.logger.Warn("Short URL lookup failed, falling back to root",
			zap.String("start_param", startParam),
			zap.Error(err))
		metrics.ShortURLLookupFailures.Inc()
		return Target{Path: RootPath, Navigate: true, LookupFailed: true}
	}

	return Target{Path: path, Navigate: true, Resolved: true}
}
