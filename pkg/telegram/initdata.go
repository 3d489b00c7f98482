package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// webAppDataKey is the HMAC key Telegram uses to derive the secret from the bot token.
const webAppDataKey = "WebAppData"

var (
	ErrInitDataMissingHash = errors.New("init data hash missing")
	ErrInitDataBadHash     = errors.New("init data hash mismatch")
	ErrInitDataBadAuthDate = errors.New("init data auth_date invalid")
	ErrInitDataExpired     = errors.New("init data expired")
)

// InitData is the parsed and verified launch payload of a Mini App session.
type InitData struct {
	QueryID    string
	User       *User
	StartParam string
	AuthDate   time.Time
	Hash       string
}

// SessionKey identifies one app launch. Telegram signs every launch
// separately, so the hash is unique per session.
func (d *InitData) SessionKey() string {
	if d == nil {
		return ""
	}
	return d.Hash
}

// ValidateInitData verifies the signature of raw init data against the bot
// token and parses it. A zero ttl disables the age check.
func ValidateInitData(raw, botToken string, ttl time.Duration, now time.Time) (*InitData, error) {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse init data: %w", err)
	}

	hash := values.Get("hash")
	if hash == "" {
		return nil, ErrInitDataMissingHash
	}

	authUnix, err := strconv.ParseInt(values.Get("auth_date"), 10, 64)
	if err != nil {
		return nil, ErrInitDataBadAuthDate
	}
	authDate := time.Unix(authUnix, 0)
	if ttl > 0 && now.Sub(authDate) > ttl {
		return nil, ErrInitDataExpired
	}

	expected, err := hex.DecodeString(hash)
	if err != nil {
		return nil, ErrInitDataBadHash
	}
	if !hmac.Equal(sign(dataCheckString(values), botToken), expected) {
		return nil, ErrInitDataBadHash
	}

	data := &InitData{
		QueryID:    values.Get("query_id"),
		StartParam: values.Get("start_param"),
		AuthDate:   authDate,
		Hash:       hash,
	}

	if rawUser := values.Get("user"); rawUser != "" {
		var usr User
		if err := json.Unmarshal([]byte(rawUser), &usr); err != nil {
			return nil, fmt.Errorf("failed to decode init data user: %w", err)
		}
		data.User = &usr
	}

	return data, nil
}

// SignInitData produces the hash Telegram would attach to values.
// Used by tests and local tooling to build valid payloads.
func SignInitData(values url.Values, botToken string) string {
	return hex.EncodeToString(sign(dataCheckString(values), botToken))
}

// dataCheckString joins every field except hash as sorted key=value lines.
func dataCheckString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		if key == "hash" {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+"="+values.Get(key))
	}
	return strings.Join(parts, "\n")
}

func sign(dataCheck, botToken string) []byte {
	secret := hmac.New(sha256.New, []byte(webAppDataKey))
	secret.Write([]byte(botToken))

	h := hmac.New(sha256.New, secret.Sum(nil))
	h.Write([]byte(dataCheck))
	return h.Sum(nil)
}
