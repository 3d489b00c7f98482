// Package points holds the free-points rules: the claim cooldown window,
// the level derived from burnt balance, and a periodic tracker that keeps a
// cooldown view fresh.
package points

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PointsPerLevel is the burnt balance needed to advance one level.
const PointsPerLevel = 100

// UserPoints is the backend's points record for a user. The gateway only
// ever holds a read-only snapshot of it, replaced wholesale on refetch.
type UserPoints struct {
	AvailableBalance  int64 `json:"available_balance"`
	TotalBurntBalance int64 `json:"total_burnt_balance"`
	// FreeClaimedBalanceUpdatedAt is the unix time of the last free claim,
	// nil if the user never claimed.
	FreeClaimedBalanceUpdatedAt *int64 `json:"free_claimed_balance_updated_at"`
}

// Level is the display level derived from a burnt balance.
type Level struct {
	Level             int64 `json:"level"`
	Progress          int64 `json:"progress"`
	PointsToNextLevel int64 `json:"points_to_next_level"`
}

// ComputeLevel derives level and progress from the total burnt balance.
// Negative balances are treated as zero.
func ComputeLevel(totalBurnt int64) Level {
	if totalBurnt < 0 {
		totalBurnt = 0
	}
	progress := totalBurnt % PointsPerLevel
	return Level{
		Level:             totalBurnt/PointsPerLevel + 1,
		Progress:          progress,
		PointsToNextLevel: PointsPerLevel - progress,
	}
}

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatPoints renders a balance with en-US digit grouping, e.g. 12,345.
func FormatPoints(v int64) string {
	return printer.Sprintf("%d", v)
}
