package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/internal/metrics"
	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/user"
	"github.com/chainsafe/music-marketplace/pkg/userstore"
)

const minPasswordLength = 8

var (
	ErrEmailTaken        = errors.New("email already registered")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrSignatureMismatch = errors.New("signature does not match address")
	ErrMessageMismatch   = errors.New("signed message does not reference address")
	ErrWalletInUse       = errors.New("wallet already bound to another account")
	ErrWalletNotFound    = errors.New("linked wallet not found")
)

// Store is the narrow data-access interface for the auth service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateUser(ctx context.Context, usr *user.User) error
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	GetUserByID(ctx context.Context, id int64) (*user.User, error)
	GetUserByWallet(ctx context.Context, address string) (*user.User, error)
	SetWallet(ctx context.Context, userID int64, address string) (*user.User, error)
	ClearWallet(ctx context.Context, userID int64) (*user.User, error)
	AddLinkedWallet(ctx context.Context, userID int64, address string) (*user.LinkedWallet, bool, error)
	DeleteLinkedWallet(ctx context.Context, userID int64, address string) (bool, error)
	ListLinkedWallets(ctx context.Context, userID int64) ([]*user.LinkedWallet, error)
}

// TokenIssuer signs session tokens
//
//go:generate mockery --name TokenIssuer --output mocks --outpkg mocks --filename mock_token_issuer.go --with-expecter
type TokenIssuer interface {
	Issue(userID int64, email, role string) (string, time.Time, error)
}

// Service defines the interface for account and wallet-binding business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Register(ctx context.Context, req *user.RegisterRequest) (*user.PublicUser, error)
	Login(ctx context.Context, req *user.LoginRequest) (*user.LoginResponse, error)
	Me(ctx context.Context, userID int64) (*user.PublicUser, error)
	VerifySignature(ctx context.Context, req *user.VerifySignatureRequest) (*user.PublicUser, error)
	RemoveWallet(ctx context.Context, email string) (*user.PublicUser, error)
	AddWallet(ctx context.Context, email, address string) (*user.LinkedWallet, bool, error)
	DeleteWallet(ctx context.Context, email, address string) error
	ListWallets(ctx context.Context, email string) ([]*user.LinkedWallet, error)
}

type authService struct {
	store      Store
	tokens     TokenIssuer
	bcryptCost int
	validate   *validator.Validate
	logger     *zap.Logger
}

// NewService creates a new auth service
func NewService(store Store, tokens TokenIssuer, bcryptCost int, logger *zap.Logger) Service {
	return &authService{
		store:      store,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		validate:   validator.New(),
		logger:     logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account with the USER role
func (s *authService) Register(ctx context.Context, req *user.RegisterRequest) (*user.PublicUser, error) {
	email := normalizeEmail(req.Email)
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, apperrors.BadRequestError(err, "Invalid email")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.BadRequestError(nil, fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	usr := user.New(email, hash)
	if err := s.store.CreateUser(ctx, usr); err != nil {
		if errors.Is(err, userstore.ErrEmailTaken) {
			return nil, apperrors.ConflictError(ErrEmailTaken, "Email is already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return usr.Public(), nil
}

// Login checks credentials and issues a session token
func (s *authService) Login(ctx context.Context, req *user.LoginRequest) (*user.LoginResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, apperrors.BadRequestError(nil, "Invalid data")
	}

	usr, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := auth.CheckPassword(usr.PasswordHash, req.Password); err != nil {
		return nil, apperrors.UnAuthorizedError(ErrInvalidPassword, "Invalid password")
	}

	token, expiresAt, err := s.tokens.Issue(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	return &user.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      usr.Public(),
	}, nil
}

// Me returns the projection of the calling user
func (s *authService) Me(ctx context.Context, userID int64) (*user.PublicUser, error) {
	usr, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(ErrUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return usr.Public(), nil
}

// VerifySignature binds address to the account after checking that the
// signature over the challenge message was produced by address. Nothing is
// written unless every check passes.
func (s *authService) VerifySignature(ctx context.Context, req *user.VerifySignatureRequest) (*user.PublicUser, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Address == "" || req.Signature == "" || req.Message == "" {
		return nil, apperrors.BadRequestError(nil, "Invalid data")
	}
	if !auth.ValidateEVMAddress(req.Address) {
		return nil, apperrors.BadRequestError(nil, "Invalid data")
	}
	if !strings.Contains(strings.ToLower(req.Message), strings.ToLower(req.Address)) {
		return nil, apperrors.BadRequestError(ErrMessageMismatch, "Invalid message")
	}

	recovered, err := auth.VerifyEIP191Signature(req.Message, req.Signature)
	if err != nil {
		return nil, apperrors.UnAuthorizedError(err, "Invalid signature")
	}
	if !auth.AddressesEqual(recovered.Hex(), req.Address) {
		return nil, apperrors.UnAuthorizedError(ErrSignatureMismatch, "Invalid signature")
	}

	usr, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	address := auth.NormalizeAddress(req.Address)
	holder, err := s.store.GetUserByWallet(ctx, address)
	switch {
	case err == nil && holder.ID != usr.ID:
		metrics.WalletBindings.WithLabelValues("bind", "in_use").Inc()
		return nil, apperrors.BadRequestError(ErrWalletInUse, "Wallet already in use")
	case err == nil:
		// already bound to this account
		return holder.Public(), nil
	case !errors.Is(err, userstore.ErrUserNotFound):
		return nil, fmt.Errorf("failed to check wallet holder: %w", err)
	}

	bound, err := s.store.SetWallet(ctx, usr.ID, address)
	if err != nil {
		if errors.Is(err, userstore.ErrWalletTaken) {
			metrics.WalletBindings.WithLabelValues("bind", "in_use").Inc()
			return nil, apperrors.BadRequestError(ErrWalletInUse, "Wallet already in use")
		}
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(ErrUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to bind wallet: %w", err)
	}

	metrics.WalletBindings.WithLabelValues("bind", "success").Inc()
	s.logger.Info("wallet bound",
		zap.Int64("user_id", bound.ID),
		zap.String("wallet_address", address))
	return bound.Public(), nil
}

// RemoveWallet clears the bound wallet of the account
func (s *authService) RemoveWallet(ctx context.Context, email string) (*user.PublicUser, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.BadRequestError(nil, "Invalid data")
	}

	usr, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	cleared, err := s.store.ClearWallet(ctx, usr.ID)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(ErrUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to clear wallet: %w", err)
	}
	metrics.WalletBindings.WithLabelValues("unbind", "success").Inc()
	return cleared.Public(), nil
}

// AddWallet saves address in the account's wallet book. The bool result is
// false when the address was already present.
func (s *authService) AddWallet(ctx context.Context, email, address string) (*user.LinkedWallet, bool, error) {
	usr, err := s.walletBookOwner(ctx, email, address)
	if err != nil {
		return nil, false, err
	}

	w, created, err := s.store.AddLinkedWallet(ctx, usr.ID, auth.NormalizeAddress(address))
	if err != nil {
		return nil, false, fmt.Errorf("failed to add wallet: %w", err)
	}
	return w, created, nil
}

// DeleteWallet removes address from the account's wallet book
func (s *authService) DeleteWallet(ctx context.Context, email, address string) error {
	usr, err := s.walletBookOwner(ctx, email, address)
	if err != nil {
		return err
	}

	deleted, err := s.store.DeleteLinkedWallet(ctx, usr.ID, address)
	if err != nil {
		return fmt.Errorf("failed to delete wallet: %w", err)
	}
	if !deleted {
		return apperrors.ResourceNotFoundError(ErrWalletNotFound, "Wallet not found")
	}
	return nil
}

// ListWallets returns the account's wallet book
func (s *authService) ListWallets(ctx context.Context, email string) ([]*user.LinkedWallet, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, apperrors.BadRequestError(nil, "Invalid data")
	}

	usr, err := s.lookupByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	wallets, err := s.store.ListLinkedWallets(ctx, usr.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

func (s *authService) walletBookOwner(ctx context.Context, email, address string) (*user.User, error) {
	email = normalizeEmail(email)
	if email == "" || !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(nil, "Invalid data")
	}
	return s.lookupByEmail(ctx, email)
}

func (s *authService) lookupByEmail(ctx context.Context, email string) (*user.User, error) {
	usr, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(ErrUserNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return usr, nil
}
