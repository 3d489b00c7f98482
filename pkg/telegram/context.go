package telegram

import "context"

type contextKey string

const (
	// ContextKeyInitData is the context key for verified init data
	ContextKeyInitData contextKey = "telegram_init_data"
	// ContextKeyUser is the context key for the resolved Telegram user
	ContextKeyUser contextKey = "telegram_user"
)

// WithInitData adds verified init data to the context
func WithInitData(ctx context.Context, data *InitData) context.Context {
	return context.WithValue(ctx, ContextKeyInitData, data)
}

// InitDataFromContext retrieves init data from the context.
// A nil result means the request came from outside a Telegram host.
func InitDataFromContext(ctx context.Context) *InitData {
	data, _ := ctx.Value(ContextKeyInitData).(*InitData)
	return data
}

// WithUser adds the resolved user to the context
func WithUser(ctx context.Context, usr *User) context.Context {
	return context.WithValue(ctx, ContextKeyUser, usr)
}

// UserFromContext retrieves the resolved user from the context
func UserFromContext(ctx context.Context) (*User, bool) {
	usr, ok := ctx.Value(ContextKeyUser).(*User)
	return usr, ok && usr != nil
}
