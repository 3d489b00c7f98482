package telegram

import "sync"

// Bridge command methods as the web client dispatches them onto
// window.Telegram.WebApp.
const (
	CmdReady              = "ready"
	CmdExpand             = "expand"
	CmdClearStartParam    = "clear_start_param"
	CmdShowBackButton     = "back_button.show"
	CmdHideBackButton     = "back_button.hide"
	CmdOnBackButtonClick  = "back_button.on_click"
	CmdHideSettingsButton = "settings_button.hide"
	CmdHaptic             = "haptic.notification_occurred"
)

// Command is one recorded bridge call.
type Command struct {
	Method string `json:"method"`
	Arg    string `json:"arg,omitempty"`
}

// CommandBridge implements Bridge by recording every call. The recorded
// list is returned to the web client, which replays it against the real
// host runtime.
type CommandBridge struct {
	mu         sync.Mutex
	inHost     bool
	startParam string
	commands   []Command
}

// NewCommandBridge creates a recording bridge for a launch.
// data is nil outside a host context.
func NewCommandBridge(data *InitData) *CommandBridge {
	b := &CommandBridge{inHost: data != nil}
	if data != nil {
		b.startParam = data.StartParam
	}
	return b
}

func (b *CommandBridge) record(method, arg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.commands = append(b.commands, Command{Method: method, Arg: arg})
}

func (b *CommandBridge) InHost() bool { return b.inHost }

func (b *CommandBridge) StartParam() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.startParam
}

func (b *CommandBridge) ClearStartParam() {
	b.mu.Lock()
	b.startParam = ""
	b.mu.Unlock()
	b.record(CmdClearStartParam, "")
}

func (b *CommandBridge) Ready()              { b.record(CmdReady, "") }
func (b *CommandBridge) Expand()             { b.record(CmdExpand, "") }
func (b *CommandBridge) ShowBackButton()     { b.record(CmdShowBackButton, "") }
func (b *CommandBridge) HideBackButton()     { b.record(CmdHideBackButton, "") }
func (b *CommandBridge) HideSettingsButton() { b.record(CmdHideSettingsButton, "") }

func (b *CommandBridge) OnBackButtonClick(action Action) {
	b.record(CmdOnBackButtonClick, string(action))
}

func (b *CommandBridge) NotificationOccurred(kind NotificationType) {
	b.record(CmdHaptic, string(kind))
}

// Commands returns a copy of the recorded calls in order.
func (b *CommandBridge) Commands() []Command {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Command, len(b.commands))
	copy(out, b.commands)
	return out
}
