package launch

import (
	"errors"
	"time"

	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

// ErrSessionNotFound is returned when no session exists for a key.
var ErrSessionNotFound = errors.New("launch session not found")

// Session is one recorded app launch.
type Session struct {
	ID         string
	Key        string
	TelegramID int64
	StartParam string
	CreatedAt  time.Time
}

// Plan is what the client executes after launch: an optional navigation
// followed by the bridge commands to replay against the host runtime.
type Plan struct {
	SessionID string             `json:"session_id"`
	Navigate  *string            `json:"navigate,omitempty"`
	Replayed  bool               `json:"replayed"`
	Commands  []telegram.Command `json:"commands"`
}

// LinkResponse carries a Mini App deep link.
type LinkResponse struct {
	Link string `json:"link"`
}
