package telegram

// NotificationType is the haptic notification style.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
)

// Action is a client-side action a bridge control is bound to.
type Action string

// ActionNavigateBack pops the in-app navigation stack.
const ActionNavigateBack Action = "router.back"

// Bridge is the capability surface of the Telegram WebApp host runtime.
// Callers receive it explicitly instead of reaching for a global handle.
type Bridge interface {
	// InHost reports whether the app runs inside a Telegram client.
	InHost() bool
	// StartParam returns the launch start parameter, empty if none.
	StartParam() string
	// ClearStartParam drops the stored start parameter once consumed.
	ClearStartParam()
	Ready()
	Expand()
	ShowBackButton()
	HideBackButton()
	OnBackButtonClick(action Action)
	HideSettingsButton()
	NotificationOccurred(kind NotificationType)
}

// Notify fires a haptic notification when running inside a host.
func Notify(b Bridge, kind NotificationType) {
	if b != nil && b.InHost() {
		b.NotificationOccurred(kind)
	}
}
