package backend

import "github.com/shopspring/decimal"

// ShortURL is a resolved short link.
type ShortURL struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// CharacterBrief is the list entry shown on the conversations tab.
type CharacterBrief struct {
	CharacterID   string `json:"character_id"`
	Name          string `json:"name"`
	AvatarURL     string `json:"avatar_url,omitempty"`
	LastMessage   string `json:"last_message,omitempty"`
	LastMessageAt *int64 `json:"last_message_at,omitempty"`
}

// Addresses are the custodial wallet addresses of a user.
type Addresses struct {
	SolAddress string `json:"sol_address"`
	EthAddress string `json:"eth_address"`
}

// TokenInfo describes the app token shown on the wallet tab.
// Amounts travel as JSON strings to keep full precision.
type TokenInfo struct {
	Symbol      string          `json:"symbol"`
	Name        string          `json:"name"`
	Decimals    int32           `json:"decimals"`
	PriceUSD    decimal.Decimal `json:"price_usd"`
	TotalSupply decimal.Decimal `json:"total_supply"`
	MarketCap   decimal.Decimal `json:"market_cap"`
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
