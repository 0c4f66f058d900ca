// Package royaltystore persists the proceeds ledger and royalty distributions.
package royaltystore

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/chainsafe/music-marketplace/pkg/nft"
	"github.com/chainsafe/music-marketplace/pkg/royalty"
)

var (
	// ErrNFTNotFound is returned when the distributed NFT does not exist.
	ErrNFTNotFound = errors.New("nft not found")
	// ErrDuplicateTx is returned when a transaction hash was already recorded.
	ErrDuplicateTx = errors.New("distribution already recorded for transaction")
)

// Store defines proceeds ledger persistence
type Store interface {
	Distribute(ctx context.Context, nftID int64, amount decimal.Decimal, txHash string) (*royalty.Distribution, *royalty.Proceeds, error)
	ListNFTs(ctx context.Context) ([]*nft.NFT, error)
	ListProceeds(ctx context.Context, userID int64) ([]*royalty.Proceeds, error)
	Withdraw(ctx context.Context, userID int64) (int, decimal.Decimal, error)
}
