package user

import "time"

// Role is the authorization level of an account
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User represents the domain model for a registered account.
// WalletAddress is the single bound wallet; an empty value means unbound.
type User struct {
	ID            int64
	Email         string
	PasswordHash  string
	WalletAddress string
	Role          Role
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// New creates a User with the default role.
func New(email, passwordHash string) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         RoleUser,
	}
}

// HasWallet reports whether a wallet is bound
func (u *User) HasWallet() bool {
	return u.WalletAddress != ""
}

// Public returns the projection that is safe to send to clients
func (u *User) Public() *PublicUser {
	p := &PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
	}
	if u.WalletAddress != "" {
		addr := u.WalletAddress
		p.WalletAddress = &addr
	}
	return p
}

// PublicUser is the user projection returned by the API
type PublicUser struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	WalletAddress *string `json:"walletAddress"`
	Role          Role    `json:"role"`
}

// Wallet returns the bound wallet or an empty string
func (p *PublicUser) Wallet() string {
	if p == nil || p.WalletAddress == nil {
		return ""
	}
	return *p.WalletAddress
}

// LinkedWallet is an additional address saved by a user, separate from the bound wallet
type LinkedWallet struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"userId"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the user projection
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
	User      *PublicUser `json:"user"`
}

// VerifySignatureRequest binds a wallet after proof of control
type VerifySignatureRequest struct {
	Email     string `json:"email"`
	Address   string `json:"address"`
	Signature string `json:"signature"`
	Message   string `json:"message"`
}

// RemoveWalletRequest unbinds the wallet of a user
type RemoveWalletRequest struct {
	Email string `json:"email"`
}

// UserResponse wraps a user projection
type UserResponse struct {
	Message string      `json:"message,omitempty"`
	User    *PublicUser `json:"user"`
}

// WalletRequest adds or deletes a linked wallet
type WalletRequest struct {
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
}

// WalletsRequest lists linked wallets of a user
type WalletsRequest struct {
	Email string `json:"email"`
}

// WalletsResponse lists linked wallets
type WalletsResponse struct {
	Wallets []*LinkedWallet `json:"wallets"`
}
