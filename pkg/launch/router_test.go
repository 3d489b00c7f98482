package launch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubResolver struct {
	path  string
	err   error
	calls []string
}

func (s *stubResolver) ResolveShortURL(_ context.Context, id string) (string, error) {
	s.calls = append(s.calls, id)
	return s.path, s.err
}

var shortID = strings.Repeat("f", ShortURLIDLength)

func TestRoute_EmptyStartParam(t *testing.T) {
	res := &stubResolver{}
	got := NewRouter(res, zap.NewNop()).Route(context.Background(), "")

	assert.Equal(t, Target{}, got)
	assert.Empty(t, res.calls)
}

func TestRoute_OtherLengthsGoToRoot(t *testing.T) {
	res := &stubResolver{path: "/never"}
	r := NewRouter(res, zap.NewNop())

	for _, sp := range []string{
		"x",
		strings.Repeat("a", ShortURLIDLength-1),
		strings.Repeat("a", ShortURLIDLength+1),
		"c" + strings.Repeat("a", ShortURLIDLength),
		strings.Repeat("a", 2*ShortURLIDLength),
	} {
		got := r.Route(context.Background(), sp)
		assert.Equal(t, Target{Path: RootPath, Navigate: true}, got, "len=%d", len(sp))
	}
	assert.Empty(t, res.calls)
}

func TestRoute_ShortIDResolved(t *testing.T) {
	res := &stubResolver{path: "/chatroomMessage/abc/def"}
	got := NewRouter(res, zap.NewNop()).Route(context.Background(), shortID)

	assert.Equal(t, Target{Path: "/chatroomMessage/abc/def", Navigate: true, Resolved: true}, got)
	assert.Equal(t, []string{shortID}, res.calls)
}

func TestRoute_LookupFailureFallsBackToRoot(t *testing.T) {
	cases := map[string]*stubResolver{
		"backend error": {err: errors.New("404")},
		"empty path":    {path: ""},
		"relative path": {path: "character/1"},
	}
	for name, res := range cases {
		got := NewRouter(res, zap.NewNop()).Route(context.Background(), shortID)
		assert.Equal(t, Target{Path: RootPath, Navigate: true, LookupFailed: true}, got, name)
	}
}

func TestResolverFunc(t *testing.T) {
	var seen string
	f := ResolverFunc(func(_ context.Context, id string) (string, error) {
		seen = id
		return "/x", nil
	})

	path, err := f.ResolveShortURL(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Equal(t, "/x", path)
	assert.Equal(t, "abc", seen)
}
