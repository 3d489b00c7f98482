package points

import (
	"fmt"
	"time"
)

// ClaimWindow is the time that must pass between two free claims.
const ClaimWindow = 86400 * time.Second

// Cooldown is the derived claim state. It is never stored.
type Cooldown struct {
	CanClaim  bool
	Remaining time.Duration
}

// ComputeCooldown derives the claim state from the last claim time and the
// current time, both in unix seconds. A nil lastClaim means the user never
// claimed and can always claim. Remaining is at most ClaimWindow.
func ComputeCooldown(lastClaim *int64, now int64) Cooldown {
	if lastClaim == nil {
		return Cooldown{CanClaim: true}
	}

	window := int64(ClaimWindow / time.Second)
	var remaining int64
	switch elapsed := now - *lastClaim; {
	case *lastClaim >= now:
		// claims stamped in the future (clock skew, millisecond stamps)
		// never wait longer than one window
		remaining = window
	case elapsed > 0 && elapsed < window:
		remaining = window - elapsed
	}
	return Cooldown{
		CanClaim:  remaining == 0,
		Remaining: time.Duration(remaining) * time.Second,
	}
}

// NextClaimTime renders the remaining wait as "<H>h <M>m". It is empty when
// a claim is allowed.
func (c Cooldown) NextClaimTime() string {
	if c.CanClaim {
		return ""
	}
	secs := int64(c.Remaining / time.Second)
	return fmt.Sprintf("%dh %dm", secs/3600, (secs%3600)/60)
}
