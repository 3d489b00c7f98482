package service

import (
	"sync"

	"github.com/fineai/miniapp-gateway/pkg/points"
)

// claimBroadcaster fans successful claims out to the open cooldown streams
// of the same user.
type claimBroadcaster struct {
	mu   sync.Mutex
	subs map[int64]map[chan points.UserPoints]struct{}
}

func newClaimBroadcaster() *claimBroadcaster {
	return &claimBroadcaster{subs: make(map[int64]map[chan points.UserPoints]struct{})}
}

// subscribe registers a stream for telegramID. The returned cancel func
// must be called when the stream ends.
func (b *claimBroadcaster) subscribe(telegramID int64) (<-chan points.UserPoints, func()) {
	ch := make(chan points.UserPoints, 1)

	b.mu.Lock()
	if b.subs[telegramID] == nil {
		b.subs[telegramID] = make(map[chan points.UserPoints]struct{})
	}
	b.subs[telegramID][ch] = struct{}{}
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[telegramID], ch)
		if len(b.subs[telegramID]) == 0 {
			delete(b.subs, telegramID)
		}
	}
}

// publish hands snapshot to every stream of telegramID. A subscriber that
// has not consumed the previous snapshot gets it replaced.
func (b *claimBroadcaster) publish(telegramID int64, snapshot points.UserPoints) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs[telegramID] {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}
