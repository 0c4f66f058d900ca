package service

import (
	"context"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/chainsafe/music-marketplace/internal/metrics"
	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/user"
	"github.com/chainsafe/music-marketplace/pkg/user/service/mocks"
	"github.com/chainsafe/music-marketplace/pkg/userstore"
)

const testEmail = "alice@example.com"

type signedBind struct {
	address   string
	message   string
	signature string
}

func signBindMessage(t *testing.T) signedBind {
	t.Helper()

	privateKey, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	address := crypto.PubkeyToAddress(privateKey.PublicKey).Hex()
	message := auth.BindMessage(address)

	signature, err := crypto.Sign(auth.HashEIP191(message), privateKey)
	if err != nil {
		t.Fatalf("Sign() failed: %v", err)
	}
	return signedBind{
		address:   address,
		message:   message,
		signature: "0x" + hex.EncodeToString(signature),
	}
}

func newTestService(t *testing.T) (Service, *mocks.Store, *mocks.TokenIssuer) {
	t.Helper()
	store := mocks.NewStore(t)
	tokens := mocks.NewTokenIssuer(t)
	return NewService(store, tokens, bcrypt.MinCost, zap.NewNop()), store, tokens
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)

	store.EXPECT().
		CreateUser(ctx, mock.MatchedBy(func(u *user.User) bool {
			return u.Email == testEmail && u.Role == user.RoleUser && u.PasswordHash != "hunter22!"
		})).
		RunAndReturn(func(_ context.Context, u *user.User) error {
			u.ID = 11
			return nil
		}).Once()

	got, err := svc.Register(ctx, &user.RegisterRequest{Email: "  Alice@Example.com ", Password: "hunter22!"})
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if got.ID != 11 || got.Email != testEmail || got.WalletAddress != nil {
		t.Fatalf("unexpected user %+v", got)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)

	tests := []struct {
		name string
		req  user.RegisterRequest
	}{
		{"bad email", user.RegisterRequest{Email: "not-an-email", Password: "longenough"}},
		{"short password", user.RegisterRequest{Email: testEmail, Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, &tt.req)
			if !apperrors.Is(err, apperrors.CategoryDataError) {
				t.Fatalf("expected data error, got %v", err)
			}
		})
	}
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)

	store.EXPECT().CreateUser(ctx, mock.Anything).Return(userstore.ErrEmailTaken).Once()

	_, err := svc.Register(ctx, &user.RegisterRequest{Email: testEmail, Password: "longenough"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryDataConflict) {
		t.Fatalf("expected conflict category, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, store, tokens := newTestService(t)

	hash, err := auth.HashPassword("correct-horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() failed: %v", err)
	}
	stored := &user.User{ID: 3, Email: testEmail, PasswordHash: hash, Role: user.RoleUser}
	exp := time.Now().Add(time.Hour)

	store.EXPECT().GetUserByEmail(ctx, testEmail).Return(stored, nil).Twice()
	tokens.EXPECT().Issue(int64(3), testEmail, "USER").Return("signed-token", exp, nil).Once()

	resp, err := svc.Login(ctx, &user.LoginRequest{Email: testEmail, Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login() failed: %v", err)
	}
	if resp.Token != "signed-token" || resp.User.ID != 3 || !resp.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected login response %+v", resp)
	}

	_, err = svc.Login(ctx, &user.LoginRequest{Email: testEmail, Password: "wrong"})
	if !apperrors.Is(err, apperrors.CategoryUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)

	store.EXPECT().GetUserByEmail(ctx, testEmail).Return(nil, userstore.ErrUserNotFound).Once()

	_, err := svc.Login(ctx, &user.LoginRequest{Email: testEmail, Password: "whatever"})
	if !apperrors.Is(err, apperrors.CategoryResourceNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAuthService_VerifySignature_BindsWallet(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	sb := signBindMessage(t)

	alice := &user.User{ID: 1, Email: testEmail, Role: user.RoleUser}
	store.EXPECT().GetUserByEmail(ctx, testEmail).Return(alice, nil).Once()
	store.EXPECT().GetUserByWallet(ctx, sb.address).Return(nil, userstore.ErrUserNotFound).Once()
	store.EXPECT().SetWallet(ctx, int64(1), sb.address).
		Return(&user.User{ID: 1, Email: testEmail, WalletAddress: sb.address, Role: user.RoleUser}, nil).Once()

	got, err := svc.VerifySignature(ctx, &user.VerifySignatureRequest{
		Email:     testEmail,
		Address:   strings.ToLower(sb.address),
		Signature: sb.signature,
		Message:   sb.message,
	})
	if err != nil {
		t.Fatalf("VerifySignature() failed: %v", err)
	}
	if got.Wallet() != sb.address {
		t.Fatalf("expected bound wallet %s, got %s", sb.address, got.Wallet())
	}
}

func TestAuthService_VerifySignature_SignatureFromOtherKey(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	claimed := signBindMessage(t)
	other := signBindMessage(t)

	_, err := svc.VerifySignature(ctx, &user.VerifySignatureRequest{
		Email:     testEmail,
		Address:   claimed.address,
		Signature: other.signature,
		Message:   claimed.message,
	})
	if !apperrors.Is(err, apperrors.CategoryUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestAuthService_VerifySignature_RejectsBeforeTouchingStore(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestService(t)
	sb := signBindMessage(t)

	tests := []struct {
		name string
		req  user.VerifySignatureRequest
		cat  apperrors.Category
	}{
		{"missing signature", user.VerifySignatureRequest{Email: testEmail, Address: sb.address, Message: sb.message}, apperrors.CategoryDataError},
		{"malformed address", user.VerifySignatureRequest{Email: testEmail, Address: "0x123", Signature: sb.signature, Message: sb.message}, apperrors.CategoryDataError},
		{"message for other address", user.VerifySignatureRequest{Email: testEmail, Address: sb.address, Signature: sb.signature, Message: "Sign this message to verify wallet: 0x0"}, apperrors.CategoryDataError},
		{"garbage signature", user.VerifySignatureRequest{Email: testEmail, Address: sb.address, Signature: "0xdeadbeef", Message: sb.message}, apperrors.CategoryUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifySignature(ctx, &tt.req)
			if !apperrors.Is(err, tt.cat) {
				t.Fatalf("expected %s, got %v", tt.cat, err)
			}
		})
	}
}

func TestAuthService_VerifySignature_WalletHeldByOtherUser(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	sb := signBindMessage(t)

	store.EXPECT().GetUserByEmail(ctx, testEmail).Return(&user.User{ID: 1, Email: testEmail}, nil).Once()
	store.EXPECT().GetUserByWallet(ctx, sb.address).Return(&user.User{ID: 2, WalletAddress: sb.address}, nil).Once()

	inUse := metrics.WalletBindings.WithLabelValues("bind", "in_use")
	before := testutil.ToFloat64(inUse)

	_, err := svc.VerifySignature(ctx, &user.VerifySignatureRequest{
		Email:     testEmail,
		Address:   sb.address,
		Signature: sb.signature,
		Message:   sb.message,
	})
	if !errors.Is(err, ErrWalletInUse) {
		t.Fatalf("expected ErrWalletInUse, got %v", err)
	}
	if !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected 400 category, got %v", err)
	}
	if got := testutil.ToFloat64(inUse) - before; got != 1 {
		t.Fatalf("expected one in_use binding recorded, got %v", got)
	}
}

func TestAuthService_VerifySignature_LostRace(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	sb := signBindMessage(t)

	store.EXPECT().GetUserByEmail(ctx, testEmail).Return(&user.User{ID: 1, Email: testEmail}, nil).Once()
	store.EXPECT().GetUserByWallet(ctx, sb.address).Return(nil, userstore.ErrUserNotFound).Once()
	store.EXPECT().SetWallet(ctx, int64(1), sb.address).Return(nil, userstore.ErrWalletTaken).Once()

	_, err := svc.VerifySignature(ctx, &user.VerifySignatureRequest{
		Email:     testEmail,
		Address:   sb.address,
		Signature: sb.signature,
		Message:   sb.message,
	})
	if !errors.Is(err, ErrWalletInUse) {
		t.Fatalf("expected ErrWalletInUse, got %v", err)
	}
}

func TestAuthService_VerifySignature_AlreadyBoundToCaller(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	sb := signBindMessage(t)

	alice := &user.User{ID: 1, Email: testEmail, WalletAddress: sb.address}
	store.EXPECT().GetUserByEmail(ctx, testEmail).Return(alice, nil).Once()
	store.EXPECT().GetUserByWallet(ctx, sb.address).Return(alice, nil).Once()

	got, err := svc.VerifySignature(ctx, &user.VerifySignatureRequest{
		Email:     testEmail,
		Address:   sb.address,
		Signature: sb.signature,
		Message:   sb.message,
	})
	if err != nil {
		t.Fatalf("VerifySignature() failed: %v", err)
	}
	if got.Wallet() != sb.address {
		t.Fatalf("expected wallet to stay bound, got %q", got.Wallet())
	}
}

func TestAuthService_RemoveWallet(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)

	store.EXPECT().GetUserByEmail(ctx, testEmail).Return(&user.User{ID: 1, Email: testEmail, WalletAddress: "0xabc"}, nil).Once()
	store.EXPECT().ClearWallet(ctx, int64(1)).Return(&user.User{ID: 1, Email: testEmail}, nil).Once()

	got, err := svc.RemoveWallet(ctx, testEmail)
	if err != nil {
		t.Fatalf("RemoveWallet() failed: %v", err)
	}
	if got.WalletAddress != nil {
		t.Fatalf("expected wallet to be cleared, got %v", *got.WalletAddress)
	}
}

func TestAuthService_WalletBook(t *testing.T) {
	ctx := context.Background()
	svc, store, _ := newTestService(t)
	addr := "0x52908400098527886E0F7030069857D2E4169EE7"

	store.EXPECT().GetUserByEmail(ctx, testEmail).Return(&user.User{ID: 5, Email: testEmail}, nil).Times(3)
	store.EXPECT().AddLinkedWallet(ctx, int64(5), addr).Return(&user.LinkedWallet{ID: 1, UserID: 5, Address: addr}, true, nil).Once()
	store.EXPECT().DeleteLinkedWallet(ctx, int64(5), strings.ToLower(addr)).Return(false, nil).Once()
	store.EXPECT().ListLinkedWallets(ctx, int64(5)).Return([]*user.LinkedWallet{{ID: 1, Address: addr}}, nil).Once()

	w, created, err := svc.AddWallet(ctx, testEmail, strings.ToLower(addr))
	if err != nil || !created || w.Address != addr {
		t.Fatalf("AddWallet() = %+v, %v, %v", w, created, err)
	}

	err = svc.DeleteWallet(ctx, testEmail, strings.ToLower(addr))
	if !errors.Is(err, ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}

	list, err := svc.ListWallets(ctx, testEmail)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListWallets() = %v, %v", list, err)
	}

	if _, _, err := svc.AddWallet(ctx, testEmail, "nope"); !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected data error for invalid address, got %v", err)
	}
}
