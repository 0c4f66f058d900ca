// Package nftstore persists off-chain NFT records.
package nftstore

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/chainsafe/music-marketplace/pkg/nft"
)

var (
	// ErrNFTNotFound is returned when no record matches a token id.
	ErrNFTNotFound = errors.New("nft not found")
	// ErrNFTExists is returned when a contract+token pair is already recorded.
	ErrNFTExists = errors.New("nft already recorded")
)

// Store defines NFT record persistence
type Store interface {
	CreateNFT(ctx context.Context, rec *nft.NFT) error
	GetByTokenID(ctx context.Context, tokenID string) (*nft.NFT, error)
	GetByID(ctx context.Context, id int64) (*nft.NFT, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*nft.NFT, error)
	ListAll(ctx context.Context) ([]*nft.NFT, error)
	ListByTokenIDs(ctx context.Context, tokenIDs []string) ([]*nft.NFT, error)
	ListPage(ctx context.Context, afterID int64, limit int) ([]*nft.NFT, error)
	UpdateListing(ctx context.Context, tokenID string, price *decimal.Decimal, isListed *bool) (int64, error)
	UpdateOwner(ctx context.Context, tokenID string, newOwnerID int64) (int64, error)
	UpdateCrowdfunding(ctx context.Context, tokenID string, isCrowdFunding bool) (int64, error)
	SetListingState(ctx context.Context, id int64, state ListingState) error
	IncrementPlay(ctx context.Context, tokenID string) (int64, error)
}

// ListingState is the cached listing state written back from the chain
type ListingState struct {
	IsListed  bool
	Price     decimal.Decimal
	ListingID *string
}
