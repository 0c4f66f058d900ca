package userstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/music-marketplace/pkg/user"
)

// UserDao is a data access object that maps directly to the 'users' table in PostgreSQL.
type UserDao struct {
	bun.BaseModel `bun:"table:users,alias:u"`
	ID            int64     `bun:"id,pk,autoincrement"`
	Email         string    `bun:"email,unique,notnull,type:varchar(320)"`
	PasswordHash  string    `bun:"password_hash,notnull,type:varchar(255)"`
	WalletAddress *string   `bun:"wallet_address,unique,type:varchar(42)"`
	Role          string    `bun:"role,notnull,default:'USER',type:varchar(16)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// WalletDao maps to the 'wallets' table holding linked wallets.
type WalletDao struct {
	bun.BaseModel `bun:"table:wallets,alias:w"`
	ID            int64     `bun:"id,pk,autoincrement"`
	UserID        int64     `bun:"user_id,notnull,unique:wallets_user_address"`
	Address       string    `bun:"address,notnull,type:varchar(42),unique:wallets_user_address"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toUserDao(usr *user.User) *UserDao {
	dao := &UserDao{
		ID:           usr.ID,
		Email:        usr.Email,
		PasswordHash: usr.PasswordHash,
		Role:         string(usr.Role),
	}
	if dao.Role == "" {
		dao.Role = string(user.RoleUser)
	}
	if usr.WalletAddress != "" {
		dao.WalletAddress = &usr.WalletAddress
	}
	return dao
}

func toUser(dao *UserDao) *user.User {
	usr := &user.User{
		ID:           dao.ID,
		Email:        dao.Email,
		PasswordHash: dao.PasswordHash,
		Role:         user.Role(dao.Role),
		CreatedAt:    dao.CreatedAt,
		UpdatedAt:    dao.UpdatedAt,
	}
	if dao.WalletAddress != nil {
		usr.WalletAddress = *dao.WalletAddress
	}
	return usr
}

func toLinkedWallet(dao *WalletDao) *user.LinkedWallet {
	return &user.LinkedWallet{
		ID:        dao.ID,
		UserID:    dao.UserID,
		Address:   dao.Address,
		CreatedAt: dao.CreatedAt,
	}
}
