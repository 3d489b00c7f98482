package points

import "time"

// View is the points screen model.
type View struct {
	AvailableBalance            int64  `json:"available_balance"`
	AvailableDisplay            string `json:"available_display"`
	TotalBurntBalance           int64  `json:"total_burnt_balance"`
	FreeClaimedBalanceUpdatedAt *int64 `json:"free_claimed_balance_updated_at"`

	Level     Level `json:"level"`
	NextLevel int64 `json:"next_level"`

	Cooldown CooldownView `json:"cooldown"`
}

// CooldownView is the serialised claim state.
type CooldownView struct {
	CanClaim         bool   `json:"can_claim"`
	NextClaimTime    string `json:"next_claim_time"`
	RemainingSeconds int64  `json:"remaining_seconds"`
}

// NewCooldownView converts a computed cooldown.
func NewCooldownView(cd Cooldown) CooldownView {
	return CooldownView{
		CanClaim:         cd.CanClaim,
		NextClaimTime:    cd.NextClaimTime(),
		RemainingSeconds: int64(cd.Remaining / time.Second),
	}
}

// NewView derives the screen model from a backend record at time now.
func NewView(p *UserPoints, now time.Time) *View {
	lvl := ComputeLevel(p.TotalBurntBalance)
	return &View{
		AvailableBalance:            p.AvailableBalance,
		AvailableDisplay:            FormatPoints(p.AvailableBalance),
		TotalBurntBalance:           p.TotalBurntBalance,
		FreeClaimedBalanceUpdatedAt: p.FreeClaimedBalanceUpdatedAt,
		Level:                       lvl,
		NextLevel:                   lvl.Level + 1,
		Cooldown:                    NewCooldownView(ComputeCooldown(p.FreeClaimedBalanceUpdatedAt, now.Unix())),
	}
}

// Snapshot returns the backend record the view was built from.
func (v *View) Snapshot() UserPoints {
	return UserPoints{
		AvailableBalance:            v.AvailableBalance,
		TotalBurntBalance:           v.TotalBurntBalance,
		FreeClaimedBalanceUpdatedAt: v.FreeClaimedBalanceUpdatedAt,
	}
}
