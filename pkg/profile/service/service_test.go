package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/fineai/miniapp-gateway/pkg/app/errors"
	"github.com/fineai/miniapp-gateway/pkg/backend"
	"github.com/fineai/miniapp-gateway/pkg/points"
	"github.com/fineai/miniapp-gateway/pkg/profile"
	"github.com/fineai/miniapp-gateway/pkg/profile/service/mocks"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

const testNow = int64(1_700_000_000)

func fixedClock() time.Time { return time.Unix(testNow, 0) }

var testUser = &telegram.User{ID: 42, FirstName: "ada lovelace", Username: "ada"}

func TestProfileService_Conversations(t *testing.T) {
	ctx := context.Background()

	be := mocks.NewBackend(t)
	be.EXPECT().GetCharacterListBrief(ctx, int64(42)).Return([]backend.CharacterBrief{
		{CharacterID: "c1", Name: "Luna"},
		{CharacterID: "c2", Name: "Sol"},
	}, nil).Once()

	p, err := NewService(be, fixedClock, zap.NewNop()).GetProfile(ctx, testUser, profile.TabConversations)
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if p.Tab != profile.TabConversations {
		t.Fatalf("expected tab %q, got %q", profile.TabConversations, p.Tab)
	}
	if len(p.Conversations) != 2 || p.Conversations[0].Name != "Luna" {
		t.Fatalf("unexpected conversations %+v", p.Conversations)
	}
	if p.User.Initials != "AL" || p.User.Handle != "@ada" {
		t.Fatalf("unexpected user block %+v", p.User)
	}
	if p.Wallet != nil || p.Points != nil {
		t.Fatal("expected only the conversations tab to be filled")
	}
}

func TestProfileService_UnknownTabFallsBack(t *testing.T) {
	ctx := context.Background()

	be := mocks.NewBackend(t)
	be.EXPECT().GetCharacterListBrief(ctx, int64(42)).Return(nil, nil).Once()

	p, err := NewService(be, fixedClock, zap.NewNop()).GetProfile(ctx, testUser, profile.Tab("settings"))
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if p.Tab != profile.TabConversations {
		t.Fatalf("expected fallback to %q, got %q", profile.TabConversations, p.Tab)
	}
}

func TestProfileService_Wallet(t *testing.T) {
	ctx := context.Background()

	be := mocks.NewBackend(t)
	be.EXPECT().GetAddresses(ctx, int64(42)).Return(&backend.Addresses{
		SolAddress: "sol-addr",
		EthAddress: "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
	}, nil).Once()
	be.EXPECT().GetTokenInfo(ctx, int64(42)).Return(&backend.TokenInfo{
		Symbol:   "FINE",
		PriceUSD: decimal.RequireFromString("1.25"),
	}, nil).Once()

	p, err := NewService(be, fixedClock, zap.NewNop()).GetProfile(ctx, testUser, profile.TabWallet)
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if p.Wallet == nil || !p.Wallet.EthValid {
		t.Fatalf("unexpected wallet %+v", p.Wallet)
	}
	if p.Wallet.EthAddress != "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed" {
		t.Fatalf("expected checksummed address, got %q", p.Wallet.EthAddress)
	}
	if p.Wallet.Token == nil || p.Wallet.Token.PriceText != "$1.25" {
		t.Fatalf("unexpected token %+v", p.Wallet.Token)
	}
}

func TestProfileService_Wallet_TokenInfoOptional(t *testing.T) {
	ctx := context.Background()

	be := mocks.NewBackend(t)
	be.EXPECT().GetAddresses(ctx, int64(42)).Return(&backend.Addresses{SolAddress: "sol-addr"}, nil).Once()
	be.EXPECT().GetTokenInfo(ctx, int64(42)).Return(nil, errors.New("503")).Once()

	p, err := NewService(be, fixedClock, zap.NewNop()).GetProfile(ctx, testUser, profile.TabWallet)
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if p.Wallet.Token != nil {
		t.Fatalf("expected no token card, got %+v", p.Wallet.Token)
	}
}

func TestProfileService_Points(t *testing.T) {
	ctx := context.Background()
	last := testNow - 3600

	be := mocks.NewBackend(t)
	be.EXPECT().GetUserPoints(ctx, int64(42)).Return(&points.UserPoints{
		AvailableBalance:            1500,
		TotalBurntBalance:           120,
		FreeClaimedBalanceUpdatedAt: &last,
	}, nil).Once()

	p, err := NewService(be, fixedClock, zap.NewNop()).GetProfile(ctx, testUser, profile.TabPoints)
	if err != nil {
		t.Fatalf("GetProfile() failed: %v", err)
	}
	if p.Points == nil {
		t.Fatal("expected points view")
	}
	if p.Points.AvailableDisplay != "1,500" || p.Points.Level.Level != 2 {
		t.Fatalf("unexpected points view %+v", p.Points)
	}
	if p.Points.Cooldown.NextClaimTime != "23h 0m" {
		t.Fatalf("expected next claim time %q, got %q", "23h 0m", p.Points.Cooldown.NextClaimTime)
	}
}

func TestProfileService_BackendFailure(t *testing.T) {
	ctx := context.Background()

	be := mocks.NewBackend(t)
	be.EXPECT().GetAddresses(ctx, int64(42)).Return(nil, errors.New("connection reset")).Once()

	_, err := NewService(be, fixedClock, zap.NewNop()).GetProfile(ctx, testUser, profile.TabWallet)
	if !apperrors.Is(err, apperrors.CategoryDependencyFailure) {
		t.Fatalf("expected dependency failure, got %v", err)
	}
}

func TestProfileService_UnknownUser_NotFound(t *testing.T) {
	ctx := context.Background()
	notFound := &backend.StatusError{Operation: "get character list", StatusCode: 404}

	be := mocks.NewBackend(t)
	be.EXPECT().GetCharacterListBrief(ctx, int64(42)).Return(nil, notFound).Once()

	_, err := NewService(be, fixedClock, zap.NewNop()).GetProfile(ctx, testUser, profile.TabConversations)
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected resource not found, got %v", err)
	}
}
