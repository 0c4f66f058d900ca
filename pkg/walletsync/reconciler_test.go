package walletsync

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/client"
	"github.com/chainsafe/music-marketplace/pkg/ethereum"
	"github.com/chainsafe/music-marketplace/pkg/session"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

const otherWallet = "0x52908400098527886E0F7030069857D2E4169EE7"

// fakeAPI verifies signatures the way the server does and records calls.
type fakeAPI struct {
	mu          sync.Mutex
	verifyCalls int
	removeCalls int
	verifyErr   error
	removeErrs  []error
	onRemove    func()
}

func (f *fakeAPI) VerifySignature(_ context.Context, req *user.VerifySignatureRequest) (*user.PublicUser, error) {
	f.mu.Lock()
	f.verifyCalls++
	err := f.verifyErr
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	recovered, err := auth.VerifyEIP191Signature(req.Message, req.Signature)
	if err != nil || !auth.AddressesEqual(recovered.Hex(), req.Address) {
		return nil, &client.APIError{Status: http.StatusUnauthorized, Message: "Invalid signature"}
	}
	addr := auth.NormalizeAddress(req.Address)
	return &user.PublicUser{ID: 3, Email: req.Email, WalletAddress: &addr, Role: user.RoleUser}, nil
}

func (f *fakeAPI) RemoveWallet(_ context.Context, email string) (*user.PublicUser, error) {
	f.mu.Lock()
	f.removeCalls++
	var err error
	if len(f.removeErrs) > 0 {
		err = f.removeErrs[0]
		f.removeErrs = f.removeErrs[1:]
	}
	hook := f.onRemove
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return &user.PublicUser{ID: 3, Email: email, Role: user.RoleUser}, nil
}

func (f *fakeAPI) calls() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.verifyCalls, f.removeCalls
}

type countingSigner struct {
	mu    sync.Mutex
	inner Signer
	err   error
	gate  chan struct{}
	calls int
}

func (c *countingSigner) SignMessage(ctx context.Context, account, message string) (string, error) {
	c.mu.Lock()
	c.calls++
	err := c.err
	gate := c.gate
	c.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if err != nil {
		return "", err
	}
	return c.inner.SignMessage(ctx, account, message)
}

func (c *countingSigner) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type fixture struct {
	ctx     context.Context
	sess    *session.Session
	api     *fakeAPI
	signer  *countingSigner
	key     *KeySigner
	rec     *Reconciler
	account string
}

func newFixture(t *testing.T, boundWallet string) *fixture {
	t.Helper()
	ctx := context.Background()

	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	key := NewKeySigner(priv)

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

	api := &fakeAPI{}
	signer := &countingSigner{inner: key}
	return &fixture{
		ctx:     ctx,
		sess:    sess,
		api:     api,
		signer:  signer,
		key:     key,
		rec:     New(sess, api, signer, nil),
		account: key.Address(),
	}
}

func TestReconciler_FirstTimeBind(t *testing.T) {
	f := newFixture(t, "")

	f.rec.Handle(f.ctx, AccountEvent{Account: strings.ToLower(f.account)})

	if got := f.sess.User().Wallet(); got != f.account {
		t.Fatalf("expected session wallet %s, got %q", f.account, got)
	}
	if verify, _ := f.api.calls(); verify != 1 {
		t.Fatalf("expected 1 verify call, got %d", verify)
	}
	if f.rec.WalletMismatch() || f.rec.LastError() != nil {
		t.Fatalf("unexpected state %+v", f.rec.Snapshot())
	}

	// a bound wallet is not re-verified on later events
	f.rec.Handle(f.ctx, AccountEvent{Account: f.account})
	if verify, _ := f.api.calls(); verify != 1 {
		t.Fatalf("expected no further verify calls, got %d", verify)
	}
}

func TestReconciler_RejectedSignatureAbortsSilently(t *testing.T) {
	f := newFixture(t, "")
	f.signer.err = ethereum.ErrUserRejected

	f.rec.Handle(f.ctx, AccountEvent{Account: f.account})
	f.rec.Handle(f.ctx, AccountEvent{Account: f.account})

	if f.signer.count() != 1 {
		t.Fatalf("expected a single signing prompt, got %d", f.signer.count())
	}
	if verify, _ := f.api.calls(); verify != 0 {
		t.Fatalf("expected no verify call, got %d", verify)
	}
	if f.rec.LastError() != nil || f.sess.User().Wallet() != "" {
		t.Fatalf("expected no state change, got %+v", f.rec.Snapshot())
	}

	// the user asks again and approves
	f.signer.mu.Lock()
	f.signer.err = nil
	f.signer.mu.Unlock()
	if err := f.rec.BindNow(f.ctx); err != nil {
		t.Fatalf("BindNow() failed: %v", err)
	}
	if f.sess.User().Wallet() != f.account {
		t.Fatal("expected BindNow to bind the wallet")
	}
}

func TestReconciler_WalletInUseIsNotRetried(t *testing.T) {
	f := newFixture(t, "")
	f.api.verifyErr = &client.APIError{Status: http.StatusBadRequest, Message: "Wallet already in use"}

	for i := 0; i < 3; i++ {
		f.rec.Handle(f.ctx, AccountEvent{Account: f.account})
	}

	if verify, _ := f.api.calls(); verify != 1 {
		t.Fatalf("expected exactly one verify call, got %d", verify)
	}
	if !client.IsStatus(f.rec.LastError(), http.StatusBadRequest) {
		t.Fatalf("expected wallet-in-use error to be exposed, got %v", f.rec.LastError())
	}
	if f.sess.User().Wallet() != "" {
		t.Fatal("expected session to stay unbound")
	}
}

func TestReconciler_MismatchBlocksWalletActions(t *testing.T) {
	f := newFixture(t, otherWallet)

	f.rec.Handle(f.ctx, AccountEvent{Account: f.account})
	if !f.rec.WalletMismatch() {
		t.Fatal("expected mismatch")
	}
	if err := f.rec.Require(); !errors.Is(err, ErrWalletMismatch) {
		t.Fatalf("expected ErrWalletMismatch, got %v", err)
	}
	if err := f.rec.BindNow(f.ctx); !errors.Is(err, ErrWalletMismatch) {
		t.Fatalf("expected BindNow to refuse, got %v", err)
	}
	if verify, remove := f.api.calls(); verify != 0 || remove != 0 {
		t.Fatalf("expected no automatic action, got verify=%d remove=%d", verify, remove)
	}

	// connecting the registered wallet with different casing resolves it
	f.rec.Handle(f.ctx, AccountEvent{Account: strings.ToLower(otherWallet)})
	if f.rec.WalletMismatch() {
		t.Fatal("expected mismatch to clear")
	}
	if err := f.rec.Require(); err != nil {
		t.Fatalf("Require() failed: %v", err)
	}
}

func TestReconciler_DisconnectSync(t *testing.T) {
	f := newFixture(t, "")
	f.rec.Handle(f.ctx, AccountEvent{Account: f.account})

	var walletDuringCall string
	f.api.onRemove = func() { walletDuringCall = f.sess.User().Wallet() }

	f.rec.Handle(f.ctx, AccountEvent{})

	if _, remove := f.api.calls(); remove != 1 {
		t.Fatalf("expected 1 remove call, got %d", remove)
	}
	if walletDuringCall != "" {
		t.Fatalf("expected local clear before the server call, saw %q", walletDuringCall)
	}
	if f.sess.User().Wallet() != "" || f.rec.DBSyncFailed() {
		t.Fatalf("unexpected state %+v", f.rec.Snapshot())
	}
	if err := f.rec.Require(); !errors.Is(err, ErrWalletNotConnected) {
		t.Fatalf("expected ErrWalletNotConnected, got %v", err)
	}

	// reconnecting binds again
	f.rec.Handle(f.ctx, AccountEvent{Account: f.account})
	if f.sess.User().Wallet() != f.account {
		t.Fatal("expected rebinding after reconnect")
	}
}

func TestReconciler_DisconnectSyncFailureAndRetry(t *testing.T) {
	f := newFixture(t, "")
	f.rec.Handle(f.ctx, AccountEvent{Account: f.account})
	f.api.removeErrs = []error{errors.New("connection refused"), errors.New("connection refused")}

	f.rec.Handle(f.ctx, AccountEvent{})
	if !f.rec.DBSyncFailed() {
		t.Fatal("expected DBSyncFailed after server failure")
	}
	if f.sess.User().Wallet() != "" {
		t.Fatal("expected the local clear to stand")
	}

	if err := f.rec.RetryRemoveWallet(f.ctx); err == nil {
		t.Fatal("expected retry to fail")
	}
	if !f.rec.DBSyncFailed() {
		t.Fatal("expected DBSyncFailed to persist after failed retry")
	}

	if err := f.rec.RetryRemoveWallet(f.ctx); err != nil {
		t.Fatalf("RetryRemoveWallet() failed: %v", err)
	}
	if f.rec.DBSyncFailed() || f.rec.LastError() != nil {
		t.Fatalf("expected flag cleared, got %+v", f.rec.Snapshot())
	}
}

func TestReconciler_NoDisconnectSyncBeforeAccountSeen(t *testing.T) {
	f := newFixture(t, otherWallet)

	f.rec.Handle(f.ctx, AccountEvent{})

	if _, remove := f.api.calls(); remove != 0 {
		t.Fatalf("expected no remove call, got %d", remove)
	}
	if f.sess.User().Wallet() != otherWallet {
		t.Fatal("expected binding to be kept")
	}
}

func TestReconciler_InFlightGuard(t *testing.T) {
	f := newFixture(t, "")
	f.signer.gate = make(chan struct{})

	done := make(chan struct{})
	go func() {
		f.rec.Handle(f.ctx, AccountEvent{Account: f.account})
		close(done)
	}()

	deadline := time.Now().Add(time.Second)
	for !f.rec.Snapshot().BindInFlight {
		if time.Now().After(deadline) {
			t.Fatal("bind never started")
		}
		time.Sleep(time.Millisecond)
	}

	if err := f.rec.BindNow(f.ctx); !errors.Is(err, ErrBindInFlight) {
		t.Fatalf("expected ErrBindInFlight, got %v", err)
	}

	close(f.signer.gate)
	<-done

	if f.signer.count() != 1 {
		t.Fatalf("expected a single signing prompt, got %d", f.signer.count())
	}
	if f.sess.User().Wallet() != f.account {
		t.Fatal("expected the in-flight bind to complete")
	}
}

func TestReconciler_RequiresSession(t *testing.T) {
	sess := session.New(session.NewMemoryStore(), nil)
	api := &fakeAPI{}
	rec := New(sess, api, &countingSigner{}, nil)

	rec.Handle(context.Background(), AccountEvent{Account: otherWallet})

	if err := rec.Require(); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if err := rec.RetryRemoveWallet(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if verify, _ := api.calls(); verify != 0 {
		t.Fatal("expected no calls for an anonymous session")
	}
}

func TestReconciler_RunFromFeed(t *testing.T) {
	f := newFixture(t, "")
	feed := NewFeed()
	events, cancel := feed.Subscribe(4)
	defer cancel()

	ctx, stop := context.WithCancel(f.ctx)
	errCh := make(chan error, 1)
	go func() { errCh <- f.rec.Run(ctx, events, nil) }()

	feed.Publish(f.account)

	deadline := time.Now().Add(2 * time.Second)
	for f.sess.User().Wallet() == "" {
		if time.Now().After(deadline) {
			t.Fatal("feed event never bound the wallet")
		}
		time.Sleep(time.Millisecond)
	}

	stop()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// newAnonymousFixture connects the wallet before anyone signs in.
func newAnonymousFixture(t *testing.T) (*fixture, string) {
	t.Helper()
	f := newFixture(t, "")
	token := f.sess.Token()
	if err := f.sess.Logout(f.ctx); err != nil {
		t.Fatalf("Logout() failed: %v", err)
	}
	return f, token
}

func (f *fixture) login(t *testing.T, token string) {
	t.Helper()
	usr := &user.PublicUser{ID: 3, Email: "a@example.com", Role: user.RoleUser}
	if err := f.sess.Authenticate(f.ctx, token, usr); err != nil {
		t.Fatalf("Authenticate() failed: %v", err)
	}
}

func TestReconciler_BindsWalletConnectedBeforeLogin(t *testing.T) {
	f, token := newAnonymousFixture(t)

	f.rec.Handle(f.ctx, AccountEvent{Account: f.account})
	if verify, _ := f.api.calls(); verify != 0 {
		t.Fatalf("expected no verify call while anonymous, got %d", verify)
	}

	f.login(t, token)
	f.rec.SessionChanged(f.ctx)

	if verify, _ := f.api.calls(); verify != 1 {
		t.Fatalf("expected 1 verify call after login, got %d", verify)
	}
	if got := f.sess.User().Wallet(); got != f.account {
		t.Fatalf("expected session wallet %s, got %q", f.account, got)
	}
}

func TestReconciler_DisconnectAfterBindNow(t *testing.T) {
	f, token := newAnonymousFixture(t)

	f.rec.Handle(f.ctx, AccountEvent{Account: f.account})
	f.login(t, token)
	if err := f.rec.BindNow(f.ctx); err != nil {
		t.Fatalf("BindNow() failed: %v", err)
	}
	if f.sess.User().Wallet() != f.account {
		t.Fatal("expected BindNow to bind the wallet")
	}

	f.rec.Handle(f.ctx, AccountEvent{})

	if f.sess.User().Wallet() != "" {
		t.Fatalf("expected local clear after disconnect, got %q", f.sess.User().Wallet())
	}
	if _, remove := f.api.calls(); remove != 1 {
		t.Fatalf("expected 1 remove call, got %d", remove)
	}
	if f.rec.DBSyncFailed() {
		t.Fatal("expected server clear to succeed")
	}
}

func TestReconciler_RunHandlesSessionChanges(t *testing.T) {
	f, token := newAnonymousFixture(t)
	feed := NewFeed()
	events, cancel := feed.Subscribe(4)
	defer cancel()
	sessionChanges := make(chan struct{}, 1)

	ctx, stop := context.WithCancel(f.ctx)
	defer stop()
	errCh := make(chan error, 1)
	go func() { errCh <- f.rec.Run(ctx, events, sessionChanges) }()

	feed.Publish(f.account)
	deadline := time.Now().Add(2 * time.Second)
	for f.rec.Account() == "" {
		if time.Now().After(deadline) {
			t.Fatal("account event never handled")
		}
		time.Sleep(time.Millisecond)
	}

	f.login(t, token)
	sessionChanges <- struct{}{}

	for f.sess.User().Wallet() == "" {
		if time.Now().After(deadline) {
			t.Fatal("session change never bound the wallet")
		}
		time.Sleep(time.Millisecond)
	}

	stop()
	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
