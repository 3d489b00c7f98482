// Package profile assembles the profile screen: the user header plus the
// content of the selected tab.
package profile

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/fineai/miniapp-gateway/pkg/backend"
	"github.com/fineai/miniapp-gateway/pkg/points"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

// Tab is a profile screen tab.
type Tab string

const (
	TabConversations Tab = "conversations"
	TabWallet        Tab = "wallet"
	TabPoints        Tab = "points"
)

// AnonymousHandle is shown when the user has no Telegram username.
const AnonymousHandle = "anonymous"

// ParseTab maps a query value to a tab. Unknown values select conversations.
func ParseTab(s string) Tab {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case TabWallet, TabPoints:
		return t
	default:
		return TabConversations
	}
}

// UserBlock is the profile header.
type UserBlock struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	Handle      string `json:"handle"`
	Initials    string `json:"initials"`
	PhotoURL    string `json:"photo_url,omitempty"`
	IsPremium   bool   `json:"is_premium"`
}

// NewUserBlock builds the header for usr.
func NewUserBlock(usr *telegram.User) UserBlock {
	name := strings.TrimSpace(usr.FirstName + " " + usr.LastName)
	return UserBlock{
		ID:          usr.ID,
		DisplayName: name,
		Handle:      Handle(usr.Username),
		Initials:    Initials(usr.FirstName),
		PhotoURL:    usr.PhotoURL,
		IsPremium:   usr.IsPremium,
	}
}

// Initials returns the upper-cased first letters of the first two words of name.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		if n++; n == 2 {
			break
		}
	}
	return b.String()
}

// Handle returns "@username", or AnonymousHandle when username is empty.
func Handle(username string) string {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if username == "" {
		return AnonymousHandle
	}
	return "@" + username
}

// Wallet is the wallet tab.
type Wallet struct {
	SolAddress string     `json:"sol_address"`
	EthAddress string     `json:"eth_address"`
	EthValid   bool       `json:"eth_valid"`
	Token      *TokenView `json:"token,omitempty"`
}

// NewWallet builds the wallet tab. A valid EVM address is rendered in its
// EIP-55 checksummed form; anything else is passed through and flagged.
func NewWallet(addrs *backend.Addresses, token *backend.TokenInfo) *Wallet {
	w := &Wallet{
		SolAddress: addrs.SolAddress,
		EthAddress: addrs.EthAddress,
	}
	if common.IsHexAddress(addrs.EthAddress) {
		w.EthAddress = common.HexToAddress(addrs.EthAddress).Hex()
		w.EthValid = true
	}
	if token != nil {
		w.Token = NewTokenView(token)
	}
	return w
}

// TokenView is the token card on the wallet tab.
type TokenView struct {
	Symbol      string          `json:"symbol"`
	Name        string          `json:"name"`
	PriceUSD    decimal.Decimal `json:"price_usd"`
	TotalSupply decimal.Decimal `json:"total_supply"`
	MarketCap   decimal.Decimal `json:"market_cap"`
	PriceText   string          `json:"price_text"`
	CapText     string          `json:"market_cap_text"`
}

// NewTokenView renders token info. A missing market cap is derived from
// price and supply.
func NewTokenView(t *backend.TokenInfo) *TokenView {
	marketCap := t.MarketCap
	if marketCap.IsZero() {
		marketCap = t.PriceUSD.Mul(t.TotalSupply)
	}
	return &TokenView{
		Symbol:      t.Symbol,
		Name:        t.Name,
		PriceUSD:    t.PriceUSD,
		TotalSupply: t.TotalSupply,
		MarketCap:   marketCap,
		PriceText:   "$" + t.PriceUSD.StringFixed(priceDigits(t.PriceUSD)),
		CapText:     "$" + marketCap.Round(0).StringFixed(0),
	}
}

// priceDigits returns the decimals shown for price. Sub-dollar prices keep six.
func priceDigits(price decimal.Decimal) int32 {
	if price.Abs().GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return 2
	}
	return 6
}

// Profile is the profile screen for one tab.
type Profile struct {
	User          UserBlock                `json:"user"`
	Tab           Tab                      `json:"tab"`
	Conversations []backend.CharacterBrief `json:"conversations,omitempty"`
	Wallet        *Wallet                  `json:"wallet,omitempty"`
	Points        *points.View             `json:"points,omitempty"`
}
