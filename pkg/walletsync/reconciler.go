// Package walletsync keeps the wallet bound to a user account consistent with
// the wallet that is actually connected.
package walletsync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/ethereum"
	"github.com/chainsafe/music-marketplace/pkg/session"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrWalletMismatch     = errors.New("connected wallet differs from the registered wallet")
	ErrBindInFlight       = errors.New("wallet binding already in progress")
)

// Session is the client session the reconciler keeps in sync
type Session interface {
	State() session.State
	User() *user.PublicUser
	SetUser(ctx context.Context, usr *user.PublicUser) error
}

// API is the subset of the marketplace API used for binding
type API interface {
	VerifySignature(ctx context.Context, req *user.VerifySignatureRequest) (*user.PublicUser, error)
	RemoveWallet(ctx context.Context, email string) (*user.PublicUser, error)
}

// Snapshot is a point-in-time view of the reconciler
type Snapshot struct {
	Account        string
	BoundWallet    string
	WalletMismatch bool
	DBSyncFailed   bool
	BindInFlight   bool
	LastError      error
}

// Reconciler drives first-time binding, mismatch detection and disconnect
// sync from account events. Handle and BindNow may be called concurrently;
// at most one bind runs at a time and each account is tried once until the
// caller asks again through BindNow.
type Reconciler struct {
	session Session
	api     API
	signer  Signer
	logger  *zap.Logger

	mu           sync.Mutex
	account      string
	seenAccount  bool
	dbSyncFailed bool
	lastErr      error
	inFlight     bool
	attempted    map[string]struct{}
	mismatch     bool
}

// New creates a Reconciler
func New(sess Session, api API, signer Signer, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		session:   sess,
		api:       api,
		signer:    signer,
		logger:    logger,
		attempted: make(map[string]struct{}),
	}
}

// Run handles account events and session changes until the account channel
// closes or ctx is done. sessionChanges may be nil.
func (r *Reconciler) Run(ctx context.Context, events <-chan AccountEvent, sessionChanges <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			r.Handle(ctx, ev)
		case _, ok := <-sessionChanges:
			if !ok {
				sessionChanges = nil
				continue
			}
			r.SessionChanged(ctx)
		}
	}
}

// SessionChanged re-runs the transitions after a login, logout or profile
// refresh, so a wallet connected before login is bound once the user signs in.
func (r *Reconciler) SessionChanged(ctx context.Context) {
	r.reconcile(ctx)
}

// Handle applies one account event and runs whatever transition it enables
func (r *Reconciler) Handle(ctx context.Context, ev AccountEvent) {
	account := strings.TrimSpace(ev.Account)

	r.mu.Lock()
	previous := r.account
	r.account = account
	if account == "" {
		// a reconnect is a fresh user action; allow binding again
		r.attempted = make(map[string]struct{})
	}
	r.mu.Unlock()

	if !auth.AddressesEqual(previous, account) {
		r.logger.Debug("wallet account changed",
			zap.String("previous", previous),
			zap.String("account", account))
	}

	r.reconcile(ctx)
}

func (r *Reconciler) reconcile(ctx context.Context) {
	defer r.updateMismatch()

	if r.session.State() != session.StateAuthenticated {
		return
	}
	usr := r.session.User()
	if usr == nil {
		return
	}

	r.mu.Lock()
	account := r.account
	if account != "" {
		// a live account next to a signed-in user arms disconnect sync
		r.seenAccount = true
	}
	seen := r.seenAccount
	r.mu.Unlock()

	switch {
	case usr.Wallet() == "" && account != "":
		if err := r.bind(ctx, usr, account, false); err != nil && !errors.Is(err, ErrBindInFlight) {
			r.logger.Warn("wallet binding failed", zap.String("account", account), zap.Error(err))
		}
	case usr.Wallet() != "" && account == "" && seen:
		r.syncDisconnect(ctx, usr)
	}
}

// bind signs the challenge for account and submits it. A rejected signature
// aborts without touching state; any other failure is kept as LastError.
func (r *Reconciler) bind(ctx context.Context, usr *user.PublicUser, account string, force bool) error {
	key := strings.ToLower(account)

	r.mu.Lock()
	if r.inFlight {
		r.mu.Unlock()
		return ErrBindInFlight
	}
	if _, done := r.attempted[key]; done && !force {
		r.mu.Unlock()
		return nil
	}
	r.inFlight = true
	r.attempted[key] = struct{}{}
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.inFlight = false
		r.mu.Unlock()
	}()

	message := auth.BindMessage(account)
	signature, err := r.signer.SignMessage(ctx, account, message)
	if err != nil {
		if ethereum.ClassifyError(err) == ethereum.KindUserRejected {
			r.logger.Debug("wallet binding signature rejected", zap.String("account", account))
			return nil
		}
		r.setLastError(err)
		return fmt.Errorf("signing binding challenge: %w", err)
	}

	bound, err := r.api.VerifySignature(ctx, &user.VerifySignatureRequest{
		Email:     usr.Email,
		Address:   account,
		Signature: signature,
		Message:   message,
	})
	if err != nil {
		r.setLastError(err)
		return fmt.Errorf("verifying signature: %w", err)
	}

	if err := r.session.SetUser(ctx, bound); err != nil {
		r.setLastError(err)
		return err
	}

	r.mu.Lock()
	r.lastErr = nil
	r.seenAccount = true
	r.mu.Unlock()

	r.logger.Info("wallet bound", zap.Int64("user_id", bound.ID), zap.String("wallet", bound.Wallet()))
	return nil
}

// syncDisconnect clears the wallet locally first, then on the server. A
// server failure leaves the local clear in place and raises DBSyncFailed.
func (r *Reconciler) syncDisconnect(ctx context.Context, usr *user.PublicUser) {
	cleared := *usr
	cleared.WalletAddress = nil
	if err := r.session.SetUser(ctx, &cleared); err != nil {
		r.setLastError(err)
		r.logger.Warn("failed to clear wallet locally", zap.Error(err))
		return
	}
	r.logger.Info("wallet disconnected, clearing binding", zap.Int64("user_id", usr.ID))

	if err := r.removeWallet(ctx, usr.Email); err != nil {
		r.logger.Warn("failed to sync wallet disconnect", zap.Int64("user_id", usr.ID), zap.Error(err))
	}
}

func (r *Reconciler) removeWallet(ctx context.Context, email string) error {
	_, err := r.api.RemoveWallet(ctx, email)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.dbSyncFailed = true
		r.lastErr = err
		return err
	}
	r.dbSyncFailed = false
	r.lastErr = nil
	return nil
}

// RetryRemoveWallet re-issues the server-side clear after a failed disconnect sync
func (r *Reconciler) RetryRemoveWallet(ctx context.Context) error {
	if r.session.State() != session.StateAuthenticated {
		return ErrNotAuthenticated
	}
	usr := r.session.User()
	if usr == nil || usr.Email == "" {
		return ErrNotAuthenticated
	}

	if err := r.removeWallet(ctx, usr.Email); err != nil {
		return fmt.Errorf("retrying wallet removal: %w", err)
	}
	r.logger.Info("wallet disconnect synced", zap.Int64("user_id", usr.ID))
	return nil
}

// BindNow retries binding the connected account even if it was tried before
func (r *Reconciler) BindNow(ctx context.Context) error {
	defer r.updateMismatch()

	if r.session.State() != session.StateAuthenticated {
		return ErrNotAuthenticated
	}
	usr := r.session.User()
	if usr == nil {
		return ErrNotAuthenticated
	}

	account := r.Account()
	if account == "" {
		return ErrWalletNotConnected
	}
	if usr.Wallet() != "" {
		if !auth.AddressesEqual(usr.Wallet(), account) {
			return ErrWalletMismatch
		}
		return nil
	}
	return r.bind(ctx, usr, account, true)
}

// Require gates wallet-invoking actions such as buy, mint and withdraw
func (r *Reconciler) Require() error {
	if r.session.State() != session.StateAuthenticated {
		return ErrNotAuthenticated
	}
	if r.Account() == "" {
		return ErrWalletNotConnected
	}
	if r.WalletMismatch() {
		return ErrWalletMismatch
	}
	return nil
}

// WalletMismatch reports whether a bound wallet and a live account differ
func (r *Reconciler) WalletMismatch() bool {
	if r.session.State() != session.StateAuthenticated {
		return false
	}
	usr := r.session.User()
	account := r.Account()
	if usr == nil || usr.Wallet() == "" || account == "" {
		return false
	}
	return !auth.AddressesEqual(usr.Wallet(), account)
}

func (r *Reconciler) updateMismatch() {
	mismatch := r.WalletMismatch()

	r.mu.Lock()
	changed := mismatch != r.mismatch
	r.mismatch = mismatch
	account := r.account
	r.mu.Unlock()

	if changed && mismatch {
		wallet := ""
		if usr := r.session.User(); usr != nil {
			wallet = usr.Wallet()
		}
		r.logger.Warn("wallet mismatch detected",
			zap.String("registered", wallet),
			zap.String("connected", account))
	} else if changed {
		r.logger.Info("wallet mismatch resolved")
	}
}

func (r *Reconciler) DBSyncFailed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dbSyncFailed
}

// LastError returns the last user-visible binding or sync failure
func (r *Reconciler) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

// Account returns the live wallet account
func (r *Reconciler) Account() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.account
}

func (r *Reconciler) Snapshot() Snapshot {
	snap := Snapshot{WalletMismatch: r.WalletMismatch()}
	if usr := r.session.User(); usr != nil {
		snap.BoundWallet = usr.Wallet()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	snap.Account = r.account
	snap.DBSyncFailed = r.dbSyncFailed
	snap.BindInFlight = r.inFlight
	snap.LastError = r.lastErr
	return snap
}

func (r *Reconciler) setLastError(err error) {
	r.mu.Lock()
	r.lastErr = err
	r.mu.Unlock()
}
