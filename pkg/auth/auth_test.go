package auth

import (
	"encoding/hex"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/bcrypt"
)

func signPersonal(t *testing.T, message string) (string, string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	sig, err := crypto.Sign(HashEIP191(message), key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), "0x" + hex.EncodeToString(sig)
}

func TestVerifyEIP191Signature_RecoversSigner(t *testing.T) {
	msg := BindMessage("0xabc")
	addr, sig := signPersonal(t, msg)

	got, err := VerifyEIP191Signature(msg, sig)
	if err != nil {
		t.Fatalf("VerifyEIP191Signature failed: %v", err)
	}
	if got.Hex() != addr {
		t.Fatalf("expected %s, got %s", addr, got.Hex())
	}
}

func TestVerifyEIP191Signature_DifferentMessage(t *testing.T) {
	addr, sig := signPersonal(t, "message one")

	got, err := VerifyEIP191Signature("message two", sig)
	if err == nil && got.Hex() == addr {
		t.Fatal("expected a different signer for a different message")
	}
}

func TestVerifyEIP191Signature_Malformed(t *testing.T) {
	if _, err := VerifyEIP191Signature("m", "0xzz"); err == nil {
		t.Fatal("expected error for non-hex signature")
	}
	if _, err := VerifyEIP191Signature("m", "0x1234"); err == nil {
		t.Fatal("expected error for short signature")
	}
}

func TestAddressHelpers(t *testing.T) {
	lower := "0x52908400098527886e0f7030069857d2e4169ee7"
	if !ValidateEVMAddress(lower) {
		t.Fatal("expected valid address")
	}
	if ValidateEVMAddress("52908400098527886e0f7030069857d2e4169ee7") {
		t.Fatal("expected missing prefix to be invalid")
	}
	if ValidateEVMAddress("0x1234") {
		t.Fatal("expected short address to be invalid")
	}
	if got := NormalizeAddress(lower); got != "0x52908400098527886E0F7030069857D2E4169EE7" {
		t.Fatalf("unexpected checksum %s", got)
	}
	if !AddressesEqual(lower, strings.ToUpper(lower[:2])+strings.ToUpper(lower[2:])) {
		t.Fatal("expected case-insensitive equality")
	}
}

func TestTokenManager_IssueAndValidate(t *testing.T) {
	m := NewTokenManager("0123456789abcdef", "music-marketplace", time.Hour)

	token, exp, err := m.Issue(42, "a@b.c", "USER")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if time.Until(exp) > time.Hour || time.Until(exp) < 59*time.Minute {
		t.Fatalf("unexpected expiry %s", exp)
	}

	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	id, _ := claims.UserID()
	if id != 42 || claims.Email != "a@b.c" || claims.Role != "USER" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestTokenManager_RejectsExpiredAndForeignTokens(t *testing.T) {
	m := NewTokenManager("0123456789abcdef", "music-marketplace", time.Minute)
	token, _, err := m.Issue(1, "a@b.c", "USER")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := m.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected expired token to be rejected, got %v", err)
	}

	other := NewTokenManager("another-secret-value", "music-marketplace", time.Minute)
	foreign, _, _ := other.Issue(1, "a@b.c", "USER")
	m.now = time.Now
	if _, err := m.Validate(foreign); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected foreign token to be rejected, got %v", err)
	}
}

func TestPassword_HashAndCheck(t *testing.T) {
	hash, err := HashPassword("hunter22", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if err := CheckPassword(hash, "hunter22"); err != nil {
		t.Fatalf("expected password to match: %v", err)
	}
	if err := CheckPassword(hash, "wrong"); !errors.Is(err, ErrPasswordMismatch) {
		t.Fatalf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestBearerMiddleware(t *testing.T) {
	m := NewTokenManager("0123456789abcdef", "", time.Hour)
	token, _, _ := m.Issue(7, "admin@x.io", "ADMIN")

	var seen *Principal
	h := Bearer(m)(RequireRole("ADMIN")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"valid token", "Bearer " + token, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}

	if seen == nil || seen.UserID != 7 || seen.Email != "admin@x.io" {
		t.Fatalf("unexpected principal %+v", seen)
	}
}

func TestRequireRole_Forbidden(t *testing.T) {
	m := NewTokenManager("0123456789abcdef", "", time.Hour)
	token, _, _ := m.Issue(7, "u@x.io", "USER")

	h := Bearer(m)(RequireRole("ADMIN")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
