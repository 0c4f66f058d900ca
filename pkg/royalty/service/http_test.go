package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/royalty"
	"github.com/chainsafe/music-marketplace/pkg/royalty/service/mocks"
)

const testSecret = "0123456789abcdef0123"

type testServer struct {
	handler http.Handler
	tokens  *auth.TokenManager
}

func newRoyaltyTestServer(svc Service) *testServer {
	tokens := auth.NewTokenManager(testSecret, "test", time.Hour)
	r := chi.NewRouter()
	RegisterRoutes(r, svc, tokens, zap.NewNop())
	return &testServer{handler: r, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, role string, userID int64, body any) *httptest.ResponseRecorder {
	t.Helper()
	token, _, err := s.tokens.Issue(userID, "caller@example.com", role)
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	var payload bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&payload).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestRoyaltyHTTP_AdminRoutesRequireAdmin(t *testing.T) {
	srv := newRoyaltyTestServer(mocks.NewService(t))

	for _, path := range []string{"/admin/nfts", "/admin/platform-fees"} {
		if rec := srv.do(t, http.MethodGet, path, "USER", 7, nil); rec.Code != http.StatusForbidden {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusForbidden, rec.Code)
		}
	}
	if rec := srv.do(t, http.MethodPost, "/admin/distribute", "USER", 7, distributeRequest()); rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestRoyaltyHTTP_Distribute(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Distribute(mock.Anything, mock.MatchedBy(func(req *royalty.DistributeRequest) bool {
		return req.NFTID == 1 && req.TxHash == testTx && req.AmountEth.Equal(decimal.RequireFromString("0.0003"))
	})).Return(&royalty.DistributeResponse{
		Success:      true,
		Distribution: &royalty.Distribution{NFTID: 1, OwnerID: 7},
		Proceeds:     &royalty.Proceeds{UserID: 7},
	}, nil).Once()
	srv := newRoyaltyTestServer(svc)

	rec := srv.do(t, http.MethodPost, "/admin/distribute", "ADMIN", 1, distributeRequest())
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
}

func TestRoyaltyHTTP_PlatformFeesDefaultsToBoundWallet(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().PayoutAddress(mock.Anything, int64(1)).Return(testWallet, nil).Once()
	svc.EXPECT().PlatformFees(mock.Anything, testWallet).
		Return(&royalty.PlatformFeesResponse{Address: testWallet, Amount: decimal.RequireFromString("0.5")}, nil).Once()
	srv := newRoyaltyTestServer(svc)

	rec := srv.do(t, http.MethodGet, "/admin/platform-fees", "ADMIN", 1, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp royalty.PlatformFeesResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Amount.Equal(decimal.RequireFromString("0.5")) {
		t.Fatalf("expected 0.5, got %s", resp.Amount)
	}
}

func TestRoyaltyHTTP_Withdraw(t *testing.T) {
	const tx = "0x3a1f9c7e12b48d2e6f0a9b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e"

	svc := mocks.NewService(t)
	svc.EXPECT().Withdraw(mock.Anything, int64(7), tx).
		Return(&royalty.WithdrawResponse{Success: true, Entries: 1, Total: decimal.NewFromInt(1), TxHash: tx}, nil).Twice()
	srv := newRoyaltyTestServer(svc)

	// no user id withdraws for the caller
	if rec := srv.do(t, http.MethodPost, "/proceeds/withdraw", "USER", 7, &royalty.WithdrawRequest{TxHash: tx}); rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if rec := srv.do(t, http.MethodPost, "/proceeds/withdraw", "USER", 8, &royalty.WithdrawRequest{UserID: 7, TxHash: tx}); rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
	if rec := srv.do(t, http.MethodPost, "/proceeds/withdraw", "ADMIN", 1, &royalty.WithdrawRequest{UserID: 7, TxHash: tx}); rec.Code != http.StatusOK {
		t.Fatalf("expected admin withdrawal to succeed, got %d", rec.Code)
	}
	if rec := srv.do(t, http.MethodPost, "/proceeds/withdraw", "USER", 7, nil); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d for an empty body, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestRoyaltyHTTP_Proceeds(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Proceeds(mock.Anything, int64(7)).
		Return(&royalty.ProceedsResponse{Proceeds: []*royalty.Proceeds{}, PendingTotal: decimal.Zero}, nil).Once()
	srv := newRoyaltyTestServer(svc)

	if rec := srv.do(t, http.MethodGet, "/proceeds", "USER", 7, nil); rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
