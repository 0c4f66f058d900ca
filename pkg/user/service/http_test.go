package service

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/user"
	"github.com/chainsafe/music-marketplace/pkg/user/service/mocks"
)

const testSecret = "0123456789abcdef0123"

func newAuthTestServer(t *testing.T, svc Service) (http.Handler, string) {
	t.Helper()
	tokens := auth.NewTokenManager(testSecret, "test", time.Hour)
	token, _, err := tokens.Issue(1, testEmail, "USER")
	if err != nil {
		t.Fatalf("Issue() failed: %v", err)
	}

	r := chi.NewRouter()
	RegisterRoutes(r, svc, tokens, nil, zap.NewNop())
	return r, token
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (string, int) {
	t.Helper()
	var got struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return got.Error, got.Code
}

func TestAuthHTTP_Register_InvalidJSON(t *testing.T) {
	svc := mocks.NewService(t)
	handler, _ := newAuthTestServer(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString("{invalid"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg, _ := decodeError(t, rec); msg != "Invalid data" {
		t.Fatalf("expected error %q, got %q", "Invalid data", msg)
	}
}

func TestAuthHTTP_Register_Created(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Register(mock.Anything, &user.RegisterRequest{Email: testEmail, Password: "longenough"}).
		Return(&user.PublicUser{ID: 9, Email: testEmail, Role: user.RoleUser}, nil).
		Once()
	handler, _ := newAuthTestServer(t, svc)

	body := `{"email":"alice@example.com","password":"longenough"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	var got user.UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.User.ID != 9 || got.User.WalletAddress != nil {
		t.Fatalf("unexpected response %+v", got.User)
	}
}

func TestAuthHTTP_Login_ServiceErrorCodes(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, apperrors.UnAuthorizedError(ErrInvalidPassword, "Invalid password")).
		Once()
	handler, _ := newAuthTestServer(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(`{"email":"a@b.c","password":"x"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
	if msg, code := decodeError(t, rec); msg != "Invalid password" || code != http.StatusUnauthorized {
		t.Fatalf("unexpected error body %q %d", msg, code)
	}
}

func TestAuthHTTP_VerifySignature_RequiresBearer(t *testing.T) {
	svc := mocks.NewService(t)
	handler, _ := newAuthTestServer(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/verify-signature", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthHTTP_VerifySignature_ForeignEmailForbidden(t *testing.T) {
	svc := mocks.NewService(t)
	handler, token := newAuthTestServer(t, svc)

	body := `{"email":"mallory@example.com","address":"0x1","signature":"0x2","message":"m"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/verify-signature", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestAuthHTTP_VerifySignature_WalletInUse(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		VerifySignature(mock.Anything, mock.MatchedBy(func(r *user.VerifySignatureRequest) bool {
			return r.Email == testEmail && r.Address == "0xabc"
		})).
		Return(nil, apperrors.BadRequestError(ErrWalletInUse, "Wallet already in use")).
		Once()
	handler, token := newAuthTestServer(t, svc)

	body := `{"address":"0xabc","signature":"0x2","message":"m"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/verify-signature", bytes.NewBufferString(body))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if msg, _ := decodeError(t, rec); msg != "Wallet already in use" {
		t.Fatalf("unexpected error %q", msg)
	}
}

func TestAuthHTTP_RemoveWallet(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		RemoveWallet(mock.Anything, testEmail).
		Return(&user.PublicUser{ID: 1, Email: testEmail}, nil).
		Once()
	handler, token := newAuthTestServer(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/remove-wallet", bytes.NewBufferString(`{"email":"alice@example.com"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got user.UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.User.WalletAddress != nil {
		t.Fatal("expected walletAddress to be null")
	}
}

func TestAuthHTTP_AddWallet_AlreadyLinked(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		AddWallet(mock.Anything, testEmail, "0xabc").
		Return(&user.LinkedWallet{ID: 4, Address: "0xabc"}, false, nil).
		Once()
	handler, token := newAuthTestServer(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/wallet/add", bytes.NewBufferString(`{"address":"0xabc"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var got walletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Message != "Wallet already linked" || got.Wallet.ID != 4 {
		t.Fatalf("unexpected response %+v", got)
	}
}
