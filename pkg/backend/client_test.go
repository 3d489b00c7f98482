package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL+"/", NewServiceTokenSource(testSecret, "gateway", time.Minute), srv.Client(), nil)
	if err != nil {
		t.Fatalf("NewClient() failed: %v", err)
	}
	return c
}

func subjectOf(t *testing.T, r *http.Request) string {
	t.Helper()
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	tok, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer("gateway"))
	if err != nil {
		t.Errorf("invalid bearer token: %v", err)
		return ""
	}
	return tok.Claims.(*jwt.RegisteredClaims).Subject
}

func TestClient_GetUserPoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/user/points" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if sub := subjectOf(t, r); sub != "42" {
			t.Errorf("expected subject 42, got %q", sub)
		}
		_, _ = w.Write([]byte(`{"available_balance":120,"total_burnt_balance":250,"free_claimed_balance_updated_at":1700000000}`))
	})

	got, err := c.GetUserPoints(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetUserPoints() failed: %v", err)
	}
	if got.AvailableBalance != 120 || got.TotalBurntBalance != 250 {
		t.Fatalf("unexpected points %+v", got)
	}
	if got.FreeClaimedBalanceUpdatedAt == nil || *got.FreeClaimedBalanceUpdatedAt != 1_700_000_000 {
		t.Fatalf("unexpected last claim %v", got.FreeClaimedBalanceUpdatedAt)
	}
}

func TestClient_GetUserPoints_NeverClaimed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"available_balance":0,"total_burnt_balance":0,"free_claimed_balance_updated_at":null}`))
	})

	got, err := c.GetUserPoints(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetUserPoints() failed: %v", err)
	}
	if got.FreeClaimedBalanceUpdatedAt != nil {
		t.Fatalf("expected no last claim, got %v", *got.FreeClaimedBalanceUpdatedAt)
	}
}

func TestClient_ClaimFreePoints_Error(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/user/points/claim-free" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"ledger unavailable"}`))
	})

	_, err := c.ClaimFreePoints(context.Background(), 42)
	var serr *StatusError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if serr.StatusCode != http.StatusBadGateway || serr.Message != "ledger unavailable" {
		t.Fatalf("unexpected status error %+v", serr)
	}
}

func TestClient_ResolveShortURL(t *testing.T) {
	id := strings.Repeat("a", 64)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/short-url/"+id {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"` + id + `","path":"/chatroomMessage/1/2"}`))
	})

	path, err := c.ResolveShortURL(context.Background(), 42, id)
	if err != nil {
		t.Fatalf("ResolveShortURL() failed: %v", err)
	}
	if path != "/chatroomMessage/1/2" {
		t.Fatalf("unexpected path %q", path)
	}
}

func TestClient_ResolveShortURL_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.NotFound(w, nil)
	})

	_, err := c.ResolveShortURL(context.Background(), 42, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_ProfileEndpoints(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/characters/brief":
			_, _ = w.Write([]byte(`[{"character_id":"c1","name":"Luna"}]`))
		case "/api/wallet/address":
			_, _ = w.Write([]byte(`{"sol_address":"So1","eth_address":"0xabc"}`))
		case "/api/token/info":
			_, _ = w.Write([]byte(`{"symbol":"FINE","name":"Fine","decimals":9,"price_usd":"0.0125","total_supply":"1000000000","market_cap":"12500000"}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	chars, err := c.GetCharacterListBrief(ctx, 7)
	if err != nil || len(chars) != 1 || chars[0].CharacterID != "c1" {
		t.Fatalf("unexpected characters %+v, err %v", chars, err)
	}

	addrs, err := c.GetAddresses(ctx, 7)
	if err != nil || addrs.SolAddress != "So1" || addrs.EthAddress != "0xabc" {
		t.Fatalf("unexpected addresses %+v, err %v", addrs, err)
	}

	info, err := c.GetTokenInfo(ctx, 7)
	if err != nil {
		t.Fatalf("GetTokenInfo() failed: %v", err)
	}
	if !info.PriceUSD.Equal(decimal.RequireFromString("0.0125")) {
		t.Fatalf("unexpected price %s", info.PriceUSD)
	}
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	if _, err := NewClient("not-a-url", NewServiceTokenSource(testSecret, "", time.Minute), nil, nil); err == nil {
		t.Fatal("expected error for relative base url")
	}
}

func TestServiceTokenSource_Claims(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	src := NewServiceTokenSource(testSecret, "gateway", 5*time.Minute)
	src.now = func() time.Time { return now }

	raw, err := src.Token(99)
	if err != nil {
		t.Fatalf("Token() failed: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithTimeFunc(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.Subject != "99" || claims.Issuer != "gateway" {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if !claims.ExpiresAt.Time.Equal(now.Add(5 * time.Minute)) {
		t.Fatalf("unexpected expiry %v", claims.ExpiresAt)
	}
}

func TestServiceTokenSource_NoSecret(t *testing.T) {
	if _, err := NewServiceTokenSource("", "", time.Minute).Token(1); err == nil {
		t.Fatal("expected error without secret")
	}
}
