package userstore

import (
	"context"
	"errors"

	"github.com/chainsafe/music-marketplace/pkg/user"
)

var (
	// ErrUserNotFound is returned when a user lookup finds no matching record.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when an email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrWalletTaken is returned when a wallet is already bound to another user.
	ErrWalletTaken = errors.New("wallet already bound")
)

// Store defines the interface for account persistence
type Store interface {
	WalletBookStore
	CreateUser(ctx context.Context, usr *user.User) error
	GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error)
	ListUsersByIDs(ctx context.Context, ids []int64) ([]*user.User, error)
	SetWallet(ctx context.Context, userID int64, address string) (*user.User, error)
	ClearWallet(ctx context.Context, userID int64) (*user.User, error)
}

// WalletBookStore defines persistence for linked wallets
type WalletBookStore interface {
	AddLinkedWallet(ctx context.Context, userID int64, address string) (*user.LinkedWallet, bool, error)
	DeleteLinkedWallet(ctx context.Context, userID int64, address string) (bool, error)
	ListLinkedWallets(ctx context.Context, userID int64) ([]*user.LinkedWallet, error)
}

// QueryOptions defines options for querying users
type QueryOptions struct {
	ID            *int64
	Email         *string
	WalletAddress *string
}

// QueryOption is a functional option for querying users
type QueryOption func(*QueryOptions)

// WithID sets the user id filter
func WithID(id int64) QueryOption {
	return func(opts *QueryOptions) {
		opts.ID = &id
	}
}

// WithEmail sets the email filter
func WithEmail(email string) QueryOption {
	return func(opts *QueryOptions) {
		opts.Email = &email
	}
}

// WithWalletAddress sets the bound wallet filter. Matching ignores case.
func WithWalletAddress(address string) QueryOption {
	return func(opts *QueryOptions) {
		opts.WalletAddress = &address
	}
}
