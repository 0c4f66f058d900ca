package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/internal/metrics"
	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/ethereum"
	"github.com/chainsafe/music-marketplace/pkg/nft"
	"github.com/chainsafe/music-marketplace/pkg/royalty"
	"github.com/chainsafe/music-marketplace/pkg/royaltystore"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

var (
	ErrNFTNotFound     = errors.New("nft not found")
	ErrPaymentFailed   = errors.New("royalty payment transaction failed")
	ErrWithdrawFailed  = errors.New("withdrawal transaction failed")
	ErrChainDisabled   = errors.New("chain reads are not configured")
	ErrNoPayoutAddress = errors.New("no address to query")
)

// Store is the narrow data-access interface for the royalty service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	Distribute(ctx context.Context, nftID int64, amount decimal.Decimal, txHash string) (*royalty.Distribution, *royalty.Proceeds, error)
	ListNFTs(ctx context.Context) ([]*nft.NFT, error)
	ListProceeds(ctx context.Context, userID int64) ([]*royalty.Proceeds, error)
	Withdraw(ctx context.Context, userID int64) (int, decimal.Decimal, error)
}

// UserLookup resolves NFT owners for the admin dashboard.
//
//go:generate mockery --name UserLookup --output mocks --outpkg mocks --filename mock_user_lookup.go --with-expecter
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (*user.User, error)
	ListUsersByIDs(ctx context.Context, ids []int64) ([]*user.User, error)
}

// ChainReader confirms payouts and reads marketplace balances
type ChainReader interface {
	TransactionSucceeded(ctx context.Context, txHash string) (bool, error)
	PendingPayment(ctx context.Context, account string) (decimal.Decimal, error)
}

// Service defines royalty distribution and proceeds operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Distribute(ctx context.Context, req *royalty.DistributeRequest) (*royalty.DistributeResponse, error)
	PendingDistribution(ctx context.Context) ([]*royalty.PendingNFT, error)
	Withdraw(ctx context.Context, userID int64, txHash string) (*royalty.WithdrawResponse, error)
	Proceeds(ctx context.Context, userID int64) (*royalty.ProceedsResponse, error)
	PlatformFees(ctx context.Context, address string) (*royalty.PlatformFeesResponse, error)
	PayoutAddress(ctx context.Context, userID int64) (string, error)
}

type royaltyService struct {
	store   Store
	users   UserLookup
	chain   ChainReader
	perPlay decimal.Decimal
	logger  *zap.Logger
}

// NewService creates a new royalty service. chain may be nil when no RPC
// endpoint is configured; distributions and withdrawals are then recorded
// without a receipt check.
func NewService(store Store, users UserLookup, chain ChainReader, perPlay decimal.Decimal, logger *zap.Logger) Service {
	return &royaltyService{
		store:   store,
		users:   users,
		chain:   chain,
		perPlay: perPlay,
		logger:  logger,
	}
}

// Distribute credits the owner of an NFT after the royalty payment was mined
func (s *royaltyService) Distribute(ctx context.Context, req *royalty.DistributeRequest) (*royalty.DistributeResponse, error) {
	if req.NFTID <= 0 || req.TxHash == "" {
		return nil, apperrors.BadRequestError(nil, "Missing required fields")
	}
	if !req.AmountEth.IsPositive() {
		return nil, apperrors.BadRequestError(nil, "Amount must be positive")
	}
	if _, err := ethereum.ParseTxHash(req.TxHash); err != nil {
		return nil, apperrors.BadRequestError(err, "Invalid transaction hash")
	}

	if s.chain != nil {
		if err := s.confirmTx(ctx, req.TxHash, ErrPaymentFailed); err != nil {
			metrics.RoyaltyDistributions.WithLabelValues("rejected").Inc()
			return nil, err
		}
	}

	dist, proceeds, err := s.store.Distribute(ctx, req.NFTID, req.AmountEth, req.TxHash)
	if err != nil {
		switch {
		case errors.Is(err, royaltystore.ErrNFTNotFound):
			return nil, apperrors.ResourceNotFoundError(ErrNFTNotFound, "NFT not found")
		case errors.Is(err, royaltystore.ErrDuplicateTx):
			metrics.RoyaltyDistributions.WithLabelValues("duplicate").Inc()
			return nil, apperrors.ConflictError(err, "Distribution already recorded")
		}
		metrics.RoyaltyDistributions.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("failed to distribute royalty: %w", err)
	}

	metrics.RoyaltyDistributions.WithLabelValues("success").Inc()
	return &royalty.DistributeResponse{
		Success:      true,
		Distribution: dist,
		Proceeds:     proceeds,
	}, nil
}

func (s *royaltyService) confirmTx(ctx context.Context, txHash string, failed error) error {
	ok, err := s.chain.TransactionSucceeded(ctx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.ErrReceiptNotFound) {
			return apperrors.BadRequestError(err, "Transaction not mined")
		}
		return apperrors.DependencyError(err, "Failed to read transaction receipt")
	}
	if !ok {
		return apperrors.BadRequestError(failed, "Transaction failed")
	}
	return nil
}

// PendingDistribution lists every NFT with its unpaid plays and suggested payout
func (s *royaltyService) PendingDistribution(ctx context.Context) ([]*royalty.PendingNFT, error) {
	records, err := s.store.ListNFTs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}

	owners, err := s.owners(ctx, records)
	if err != nil {
		return nil, err
	}

	out := make([]*royalty.PendingNFT, len(records))
	for i, rec := range records {
		plays := rec.PendingPlays()
		out[i] = &royalty.PendingNFT{
			WithOwner:       &nft.WithOwner{NFT: rec, Owner: owners[rec.OwnerID]},
			PendingPlays:    plays,
			SuggestedAmount: royalty.SuggestedAmount(plays, s.perPlay),
		}
	}
	return out, nil
}

func (s *royaltyService) owners(ctx context.Context, records []*nft.NFT) (map[int64]*nft.Owner, error) {
	seen := make(map[int64]struct{}, len(records))
	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.OwnerID]; ok {
			continue
		}
		seen[rec.OwnerID] = struct{}{}
		ids = append(ids, rec.OwnerID)
	}

	owners := make(map[int64]*nft.Owner, len(ids))
	if len(ids) == 0 {
		return owners, nil
	}
	users, err := s.users.ListUsersByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load owners: %w", err)
	}
	for _, u := range users {
		pub := u.Public()
		owners[u.ID] = &nft.Owner{ID: pub.ID, Email: pub.Email, WalletAddress: pub.WalletAddress}
	}
	return owners, nil
}

// Withdraw marks the pending proceeds of a user withdrawn after the
// withdrawPayments transaction was mined successfully
func (s *royaltyService) Withdraw(ctx context.Context, userID int64, txHash string) (*royalty.WithdrawResponse, error) {
	if userID <= 0 {
		return nil, apperrors.BadRequestError(nil, "Missing user id")
	}
	if txHash == "" {
		return nil, apperrors.BadRequestError(nil, "Missing transaction hash")
	}
	if _, err := ethereum.ParseTxHash(txHash); err != nil {
		return nil, apperrors.BadRequestError(err, "Invalid transaction hash")
	}

	if s.chain != nil {
		if err := s.confirmTx(ctx, txHash, ErrWithdrawFailed); err != nil {
			return nil, err
		}
	}

	n, total, err := s.store.Withdraw(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to withdraw proceeds: %w", err)
	}
	return &royalty.WithdrawResponse{Success: true, Entries: n, Total: total, TxHash: txHash}, nil
}

func (s *royaltyService) Proceeds(ctx context.Context, userID int64) (*royalty.ProceedsResponse, error) {
	entries, err := s.store.ListProceeds(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list proceeds: %w", err)
	}

	pending := decimal.Zero
	for _, e := range entries {
		if e.Status == royalty.StatusPending {
			pending = pending.Add(e.Amount)
		}
	}
	return &royalty.ProceedsResponse{Proceeds: entries, PendingTotal: pending}, nil
}

// PlatformFees reads the marketplace balance owed to address
func (s *royaltyService) PlatformFees(ctx context.Context, address string) (*royalty.PlatformFeesResponse, error) {
	if s.chain == nil {
		return nil, apperrors.UnavailableError(ErrChainDisabled, "Chain reads are not configured")
	}
	if !auth.ValidateEVMAddress(address) {
		return nil, apperrors.BadRequestError(nil, "Invalid address")
	}

	amount, err := s.chain.PendingPayment(ctx, address)
	if err != nil {
		return nil, apperrors.DependencyError(err, "Failed to read pending payment")
	}
	return &royalty.PlatformFeesResponse{Address: auth.NormalizeAddress(address), Amount: amount}, nil
}

// PayoutAddress returns the bound wallet of a user, used when no address is given
func (s *royaltyService) PayoutAddress(ctx context.Context, userID int64) (string, error) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if !usr.HasWallet() {
		return "", apperrors.BadRequestError(ErrNoPayoutAddress, "No wallet bound and no address given")
	}
	return usr.WalletAddress, nil
}
