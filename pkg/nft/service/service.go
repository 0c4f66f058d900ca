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
	"github.com/chainsafe/music-marketplace/pkg/nft"
	"github.com/chainsafe/music-marketplace/pkg/nftstore"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

var (
	ErrNFTNotFound      = errors.New("nft not found")
	ErrListingNotActive = errors.New("token is not listed")
	ErrChainDisabled    = errors.New("chain reads are not configured")
)

// Store is the narrow data-access interface for the NFT service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateNFT(ctx context.Context, rec *nft.NFT) error
	GetByTokenID(ctx context.Context, tokenID string) (*nft.NFT, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*nft.NFT, error)
	ListAll(ctx context.Context) ([]*nft.NFT, error)
	ListByTokenIDs(ctx context.Context, tokenIDs []string) ([]*nft.NFT, error)
	UpdateListing(ctx context.Context, tokenID string, price *decimal.Decimal, isListed *bool) (int64, error)
	UpdateOwner(ctx context.Context, tokenID string, newOwnerID int64) (int64, error)
	UpdateCrowdfunding(ctx context.Context, tokenID string, isCrowdFunding bool) (int64, error)
	IncrementPlay(ctx context.Context, tokenID string) (int64, error)
}

// UserLookup resolves owners and their bound wallets.
//
//go:generate mockery --name UserLookup --output mocks --outpkg mocks --filename mock_user_lookup.go --with-expecter
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (*user.User, error)
	ListUsersByIDs(ctx context.Context, ids []int64) ([]*user.User, error)
}

// ListingSource reads live marketplace state from the indexer.
//
//go:generate mockery --name ListingSource --output mocks --outpkg mocks --filename mock_listing_source.go --with-expecter
type ListingSource interface {
	ListingsBySeller(ctx context.Context, seller string) ([]*nft.Listing, error)
	ActiveListings(ctx context.Context) ([]*nft.Listing, error)
	MintsByCreator(ctx context.Context, creator string) ([]*nft.Mint, error)
}

// ChainReader reads a single listing straight from the marketplace contract
type ChainReader interface {
	GetListingByToken(ctx context.Context, contract, tokenID string) (*nft.Listing, error)
}

// Service defines the NFT catalogue and listing read-model operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	MyNFTs(ctx context.Context, userID int64) (*nft.MyNFTsResponse, error)
	ListAll(ctx context.Context) ([]*nft.WithOwner, error)
	GetByTokenID(ctx context.Context, tokenID string) (*nft.WithOwner, error)
	Store(ctx context.Context, req *nft.StoreRequest) (*nft.NFT, error)
	UpdateListing(ctx context.Context, req *nft.UpdateListingRequest) error
	UpdateOwner(ctx context.Context, req *nft.UpdateOwnerRequest) error
	UpdateCrowdfunding(ctx context.Context, req *nft.UpdateCrowdfundingRequest) error
	IncrementPlay(ctx context.Context, tokenID string) (int64, error)
	ArtistCreations(ctx context.Context, tokenIDs []string) ([]*nft.WithOwner, error)
	Creations(ctx context.Context, creator string) ([]*nft.WithOwner, error)
	ActiveListings(ctx context.Context) (*nft.ListingsResponse, error)
	OnChainListing(ctx context.Context, contract, tokenID string) (*nft.Listing, error)
}

type nftService struct {
	store    Store
	users    UserLookup
	listings ListingSource
	chain    ChainReader
	logger   *zap.Logger
}

// NewService creates a new NFT service. chain may be nil when no RPC endpoint is configured.
func NewService(store Store, users UserLookup, listings ListingSource, chain ChainReader, logger *zap.Logger) Service {
	return &nftService{
		store:    store,
		users:    users,
		listings: listings,
		chain:    chain,
		logger:   logger,
	}
}

// MyNFTs merges the caller's records with the live listings of their bound
// wallet. Listing failures degrade to cached values; a record failure is an error.
func (s *nftService) MyNFTs(ctx context.Context, userID int64) (*nft.MyNFTsResponse, error) {
	records, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load nfts: %w", err)
	}

	listings, degraded := s.sellerListings(ctx, userID)
	return &nft.MyNFTsResponse{
		NFTs:             nft.MergeListings(records, listings),
		ListingsDegraded: degraded,
	}, nil
}

func (s *nftService) sellerListings(ctx context.Context, userID int64) ([]*nft.Listing, bool) {
	usr, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Failed to resolve bound wallet, using cached listing state",
			zap.Int64("user_id", userID), zap.Error(err))
		metrics.ListingsDegraded.WithLabelValues("my_nfts", "user_lookup").Inc()
		return nil, true
	}
	if !usr.HasWallet() {
		metrics.ListingsDegraded.WithLabelValues("my_nfts", "no_wallet").Inc()
		return nil, true
	}

	listings, err := s.listings.ListingsBySeller(ctx, usr.WalletAddress)
	if err != nil {
		s.logger.Warn("Failed to query listings, using cached listing state",
			zap.Int64("user_id", userID),
			zap.String("wallet", usr.WalletAddress),
			zap.Error(err))
		metrics.ListingsDegraded.WithLabelValues("my_nfts", "subgraph").Inc()
		return nil, true
	}
	return listings, false
}

func (s *nftService) ListAll(ctx context.Context) ([]*nft.WithOwner, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}
	return s.withOwners(ctx, records)
}

func (s *nftService) GetByTokenID(ctx context.Context, tokenID string) (*nft.WithOwner, error) {
	if !nft.IsTokenID(tokenID) {
		return nil, apperrors.BadRequestError(nil, "Invalid token id")
	}
	rec, err := s.store.GetByTokenID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, nftstore.ErrNFTNotFound) {
			return nil, apperrors.ResourceNotFoundError(ErrNFTNotFound, "NFT not found")
		}
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}

	joined, err := s.withOwners(ctx, []*nft.NFT{rec})
	if err != nil {
		return nil, err
	}
	return joined[0], nil
}

// Store records a freshly minted token
func (s *nftService) Store(ctx context.Context, req *nft.StoreRequest) (*nft.NFT, error) {
	if !nft.IsTokenID(req.TokenID) || req.OwnerID <= 0 {
		return nil, apperrors.BadRequestError(nil, "Missing required fields")
	}
	if !auth.ValidateEVMAddress(req.ContractAddress) {
		return nil, apperrors.BadRequestError(nil, "Invalid contract address")
	}

	rec := &nft.NFT{
		TokenID:         req.TokenID,
		ContractAddress: auth.NormalizeAddress(req.ContractAddress),
		OwnerID:         req.OwnerID,
		IsListed:        req.IsListed,
		IsCrowdFunding:  req.IsCrowdFunding,
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, apperrors.BadRequestError(nil, "Price must not be negative")
		}
		rec.Price = *req.Price
	}

	if err := s.store.CreateNFT(ctx, rec); err != nil {
		if errors.Is(err, nftstore.ErrNFTExists) {
			return nil, apperrors.ConflictError(err, "NFT already stored")
		}
		return nil, fmt.Errorf("failed to store nft: %w", err)
	}
	return rec, nil
}

// UpdateListing writes back a listing change confirmed on chain
func (s *nftService) UpdateListing(ctx context.Context, req *nft.UpdateListingRequest) error {
	if !nft.IsTokenID(req.TokenID) {
		return apperrors.BadRequestError(nil, "Invalid token id")
	}
	if req.Price == nil && req.IsListed == nil {
		return apperrors.BadRequestError(nil, "Nothing to update")
	}
	if req.Price != nil && req.Price.IsNegative() {
		return apperrors.BadRequestError(nil, "Price must not be negative")
	}

	n, err := s.store.UpdateListing(ctx, req.TokenID, req.Price, req.IsListed)
	if err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return notFoundIfNone(n)
}

// UpdateOwner moves a record to its buyer and clears the listing
func (s *nftService) UpdateOwner(ctx context.Context, req *nft.UpdateOwnerRequest) error {
	if !nft.IsTokenID(req.TokenID) || req.NewOwnerID <= 0 {
		return apperrors.BadRequestError(nil, "Missing required fields")
	}

	n, err := s.store.UpdateOwner(ctx, req.TokenID, req.NewOwnerID)
	if err != nil {
		return fmt.Errorf("failed to update owner: %w", err)
	}
	return notFoundIfNone(n)
}

func (s *nftService) UpdateCrowdfunding(ctx context.Context, req *nft.UpdateCrowdfundingRequest) error {
	if !nft.IsTokenID(req.TokenID) || req.IsCrowdFunding == nil {
		return apperrors.BadRequestError(nil, "Missing required fields")
	}

	n, err := s.store.UpdateCrowdfunding(ctx, req.TokenID, *req.IsCrowdFunding)
	if err != nil {
		return fmt.Errorf("failed to update crowdfunding status: %w", err)
	}
	return notFoundIfNone(n)
}

func (s *nftService) IncrementPlay(ctx context.Context, tokenID string) (int64, error) {
	if !nft.IsTokenID(tokenID) {
		return 0, apperrors.BadRequestError(nil, "Invalid token id")
	}

	count, err := s.store.IncrementPlay(ctx, tokenID)
	if err != nil {
		if errors.Is(err, nftstore.ErrNFTNotFound) {
			return 0, apperrors.ResourceNotFoundError(ErrNFTNotFound, "NFT not found")
		}
		return 0, fmt.Errorf("failed to increment play count: %w", err)
	}
	metrics.PlaysRecorded.Inc()
	return count, nil
}

// ArtistCreations resolves minted token ids to records joined with owners
func (s *nftService) ArtistCreations(ctx context.Context, tokenIDs []string) ([]*nft.WithOwner, error) {
	ids := make([]string, 0, len(tokenIDs))
	for _, id := range tokenIDs {
		if !nft.IsTokenID(id) {
			return nil, apperrors.BadRequestError(nil, "Invalid token id")
		}
		ids = append(ids, id)
	}

	records, err := s.store.ListByTokenIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}
	return s.withOwners(ctx, records)
}

// Creations resolves the tokens minted by creator through the indexer
func (s *nftService) Creations(ctx context.Context, creator string) ([]*nft.WithOwner, error) {
	if !auth.ValidateEVMAddress(creator) {
		return nil, apperrors.BadRequestError(nil, "Invalid creator address")
	}

	mints, err := s.listings.MintsByCreator(ctx, creator)
	if err != nil {
		return nil, apperrors.DependencyError(err, "Failed to query minted tokens")
	}
	if len(mints) == 0 {
		return []*nft.WithOwner{}, nil
	}

	ids := make([]string, len(mints))
	for i, m := range mints {
		ids[i] = m.TokenID
	}
	return s.ArtistCreations(ctx, ids)
}

// ActiveListings returns the marketplace page; indexer failures yield an empty degraded page
func (s *nftService) ActiveListings(ctx context.Context) (*nft.ListingsResponse, error) {
	listings, err := s.listings.ActiveListings(ctx)
	if err != nil {
		s.logger.Warn("Failed to query active listings", zap.Error(err))
		metrics.ListingsDegraded.WithLabelValues("active_listings", "subgraph").Inc()
		return &nft.ListingsResponse{Listings: []*nft.Listing{}, Degraded: true}, nil
	}
	return &nft.ListingsResponse{Listings: listings}, nil
}

// OnChainListing reads the live listing for a token. An empty contract means
// the contract of the stored record.
func (s *nftService) OnChainListing(ctx context.Context, contract, tokenID string) (*nft.Listing, error) {
	if s.chain == nil {
		return nil, apperrors.UnavailableError(ErrChainDisabled, "Chain reads are not configured")
	}
	if !nft.IsTokenID(tokenID) {
		return nil, apperrors.BadRequestError(nil, "Invalid token id")
	}
	if contract == "" {
		rec, err := s.store.GetByTokenID(ctx, tokenID)
		if err != nil {
			if errors.Is(err, nftstore.ErrNFTNotFound) {
				return nil, apperrors.ResourceNotFoundError(ErrNFTNotFound, "NFT not found")
			}
			return nil, fmt.Errorf("failed to get nft: %w", err)
		}
		contract = rec.ContractAddress
	}
	if !auth.ValidateEVMAddress(contract) {
		return nil, apperrors.BadRequestError(nil, "Invalid contract address")
	}

	listing, err := s.chain.GetListingByToken(ctx, contract, tokenID)
	if err != nil {
		return nil, apperrors.DependencyError(err, "Failed to read listing")
	}
	if !listing.IsActive {
		return nil, apperrors.ResourceNotFoundError(ErrListingNotActive, "Token is not listed")
	}
	return listing, nil
}

func (s *nftService) withOwners(ctx context.Context, records []*nft.NFT) ([]*nft.WithOwner, error) {
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
	if len(ids) > 0 {
		users, err := s.users.ListUsersByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("failed to load owners: %w", err)
		}
		for _, u := range users {
			owners[u.ID] = toOwner(u)
		}
	}

	out := make([]*nft.WithOwner, len(records))
	for i, rec := range records {
		out[i] = &nft.WithOwner{NFT: rec, Owner: owners[rec.OwnerID]}
	}
	return out, nil
}

func toOwner(u *user.User) *nft.Owner {
	pub := u.Public()
	return &nft.Owner{
		ID:            pub.ID,
		Email:         pub.Email,
		WalletAddress: pub.WalletAddress,
	}
}

func notFoundIfNone(rows int64) error {
	if rows == 0 {
		return apperrors.ResourceNotFoundError(ErrNFTNotFound, "NFT not found")
	}
	return nil
}
