package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/client"
	"github.com/chainsafe/music-marketplace/pkg/config"
	"github.com/chainsafe/music-marketplace/pkg/royalty"
	"github.com/chainsafe/music-marketplace/pkg/session"
	"github.com/chainsafe/music-marketplace/pkg/user"
	"github.com/chainsafe/music-marketplace/pkg/walletsync"
)

const (
	keyEnv   = "MARKETCTL_TEST_KEY"
	withdrawTx = "0x3a1f9c7e12b48d2e6f0a9b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e"
)

// newTestCLI signs in a user bound to boundWallet and points the API client at handler.
func newTestCLI(t *testing.T, boundWallet string, handler http.HandlerFunc) (*cli, string) {
	t.Helper()
	ctx := context.Background()

	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	t.Setenv(keyEnv, hex.EncodeToString(crypto.FromECDSA(key)))

	tokens := auth.NewTokenManager("0123456789abcdef0123", "test", time.Hour)
	token, _, err := tokens.Issue(3, "a@example.com", "USER")
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	sess := session.New(session.NewMemoryStore(), nil)
	usr := &user.PublicUser{ID: 3, Email: "a@example.com", Role: user.RoleUser}
	if boundWallet != "" {
		usr.WalletAddress = &boundWallet
	}
	if err := sess.Authenticate(ctx, token, usr); err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &cli{
		cfg:     &config.ClientConfig{PrivateKeyEnv: keyEnv},
		logger:  zap.NewNop(),
		session: sess,
		api:     client.New(srv.URL, time.Second, sess),
	}, crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func TestWithdraw_BlockedOnWalletMismatch(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestCLI(t, "0x52908400098527886E0F7030069857D2E4169EE7", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.withdraw(context.Background(), []string{"-tx", withdrawTx})
	if !errors.Is(err, walletsync.ErrWalletMismatch) {
		t.Fatalf("expected ErrWalletMismatch, got %v", err)
	}
	if calls.Load() != 0 {
		t.Fatalf("expected no API call, got %d", calls.Load())
	}
}

func TestWithdraw_RegisteredWallet(t *testing.T) {
	var got royalty.WithdrawRequest
	handler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/proceeds/withdraw" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(&royalty.WithdrawResponse{Success: true, Entries: 1, TxHash: got.TxHash})
	}

	c, address := newTestCLI(t, "", handler)
	if err := c.session.SetUser(context.Background(), &user.PublicUser{
		ID: 3, Email: "a@example.com", Role: user.RoleUser, WalletAddress: &address,
	}); err != nil {
		t.Fatalf("SetUser() failed: %v", err)
	}

	if err := c.withdraw(context.Background(), []string{"-tx", withdrawTx}); err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	if got.TxHash != withdrawTx || got.UserID != 3 {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestWithdraw_RequiresTxHash(t *testing.T) {
	c, _ := newTestCLI(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	})

	if err := c.withdraw(context.Background(), nil); err == nil {
		t.Fatal("expected an error without -tx")
	}
}
