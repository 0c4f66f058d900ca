package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/chainsafe/music-marketplace/pkg/pgutil"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the user store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateUser(ctx context.Context, usr *user.User) error {
	dao := toUserDao(usr)

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	*usr = *toUser(dao)
	return nil
}

func (s *pgStore) GetUser(ctx context.Context, opts ...QueryOption) (*user.User, error) {
	options := &QueryOptions{}
	for _, opt := range opts {
		opt(options)
	}

	dao := new(UserDao)
	query := s.db.NewSelect().Model(dao)

	if options.ID != nil {
		query = query.Where("id = ?", *options.ID)
	}
	if options.Email != nil {
		query = query.Where("email = ?", *options.Email)
	}
	if options.WalletAddress != nil {
		query = query.Where("lower(wallet_address) = lower(?)", *options.WalletAddress)
	}

	err := query.Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return toUser(dao), nil
}

func (s *pgStore) ListUsersByIDs(ctx context.Context, ids []int64) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var daos []UserDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("id IN (?)", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, len(daos))
	for i := range daos {
		users[i] = toUser(&daos[i])
	}
	return users, nil
}

// SetWallet binds address to the user. The unique index on wallet_address is
// the final arbiter when two users race for the same wallet.
func (s *pgStore) SetWallet(ctx context.Context, userID int64, address string) (*user.User, error) {
	dao := new(UserDao)
	res, err := s.db.NewUpdate().
		Model(dao).
		Set("wallet_address = ?", address).
		Set("updated_at = NOW()").
		Where("id = ?", userID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return nil, ErrWalletTaken
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to set wallet: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrUserNotFound
	}
	return toUser(dao), nil
}

func (s *pgStore) ClearWallet(ctx context.Context, userID int64) (*user.User, error) {
	dao := new(UserDao)
	res, err := s.db.NewUpdate().
		Model(dao).
		Set("wallet_address = NULL").
		Set("updated_at = NOW()").
		Where("id = ?", userID).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to clear wallet: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrUserNotFound
	}
	return toUser(dao), nil
}

func (s *pgStore) AddLinkedWallet(ctx context.Context, userID int64, address string) (*user.LinkedWallet, bool, error) {
	dao := &WalletDao{UserID: userID, Address: address}
	res, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (user_id, address) DO NOTHING").
		Returning("*").
		Exec(ctx)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, false, fmt.Errorf("failed to add wallet: %w", err)
	default:
		if n, _ := res.RowsAffected(); n > 0 {
			return toLinkedWallet(dao), true, nil
		}
	}

	existing := new(WalletDao)
	err = s.db.NewSelect().
		Model(existing).
		Where("user_id = ?", userID).
		Where("address = ?", address).
		Scan(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load existing wallet: %w", err)
	}
	return toLinkedWallet(existing), false, nil
}

func (s *pgStore) DeleteLinkedWallet(ctx context.Context, userID int64, address string) (bool, error) {
	res, err := s.db.NewDelete().
		Model((*WalletDao)(nil)).
		Where("user_id = ?", userID).
		Where("lower(address) = lower(?)", address).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete wallet: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *pgStore) ListLinkedWallets(ctx context.Context, userID int64) ([]*user.LinkedWallet, error) {
	var daos []WalletDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("user_id = ?", userID).
		Order("created_at ASC", "id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	wallets := make([]*user.LinkedWallet, len(daos))
	for i := range daos {
		wallets[i] = toLinkedWallet(&daos[i])
	}
	return wallets, nil
}

func (s *pgStore) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.GetUser(ctx, WithEmail(email))
}

func (s *pgStore) GetUserByID(ctx context.Context, id int64) (*user.User, error) {
	return s.GetUser(ctx, WithID(id))
}

func (s *pgStore) GetUserByWallet(ctx context.Context, address string) (*user.User, error) {
	return s.GetUser(ctx, WithWalletAddress(address))
}
