// Package nft holds the NFT record domain model and the listing read-model.
package nft

import (
	"time"

	"github.com/shopspring/decimal"
)

// NFT is the off-chain record of a minted token. IsListed, Price and
// ListingID are a cache of on-chain listing state and may be stale.
type NFT struct {
	ID                   int64           `json:"id"`
	TokenID              string          `json:"tokenId"`
	ContractAddress      string          `json:"contractAddress"`
	OwnerID              int64           `json:"ownerId"`
	ListingID            *string         `json:"listingId"`
	IsListed             bool            `json:"isListed"`
	IsCrowdFunding       bool            `json:"isCrowdFunding"`
	Price                decimal.Decimal `json:"price"`
	RoyaltyShare         decimal.Decimal `json:"royaltyShare"`
	PlayCount            int64           `json:"playCount"`
	LastRoyaltyPlayCount int64           `json:"lastRoyaltyPlayCount"`
	CreatedAt            time.Time       `json:"createdAt"`
	UpdatedAt            time.Time       `json:"updatedAt"`
}

// PendingPlays returns plays not yet covered by a royalty distribution
func (n *NFT) PendingPlays() int64 {
	if n.PlayCount <= n.LastRoyaltyPlayCount {
		return 0
	}
	return n.PlayCount - n.LastRoyaltyPlayCount
}

// Owner is the public projection of an NFT owner
type Owner struct {
	ID            int64   `json:"id"`
	Email         string  `json:"email"`
	WalletAddress *string `json:"walletAddress"`
}

// WithOwner is an NFT record joined with its owner
type WithOwner struct {
	*NFT
	Owner *Owner `json:"owner"`
}

// Listing is an on-chain marketplace listing as reported by the indexer or
// the marketplace contract. Price is in ETH.
type Listing struct {
	ID          string          `json:"id,omitempty"`
	ListingID   string          `json:"listingId"`
	NFTContract string          `json:"nftContract"`
	TokenID     string          `json:"tokenId"`
	Seller      string          `json:"seller"`
	Price       decimal.Decimal `json:"price"`
	IsActive    bool            `json:"isActive"`
}

// Mint is a token mint event reported by the indexer
type Mint struct {
	ID        string `json:"id"`
	TokenID   string `json:"tokenId"`
	Creator   string `json:"creator"`
	URI       string `json:"uri"`
	Timestamp int64  `json:"timestamp"`
}

// ListingSource tells where the listing fields of a View came from
type ListingSource string

const (
	SourceChain ListingSource = "chain"
	SourceCache ListingSource = "cache"
)

// View is the merged read-model of an NFT record and its live listing
type View struct {
	NFT
	ListingSource ListingSource `json:"listingSource"`
}

// StoreRequest records a freshly minted token
type StoreRequest struct {
	TokenID         string           `json:"tokenId"`
	ContractAddress string           `json:"contractAddress"`
	OwnerID         int64            `json:"ownerId"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	IsListed        bool             `json:"isListed"`
	IsCrowdFunding  bool             `json:"isCrowdFunding"`
}

// UpdateListingRequest is a partial update of the cached listing state
type UpdateListingRequest struct {
	TokenID  string           `json:"tokenId"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	IsListed *bool            `json:"isListed,omitempty"`
}

// UpdateOwnerRequest transfers the record to a new owner
type UpdateOwnerRequest struct {
	TokenID    string `json:"tokenId"`
	NewOwnerID int64  `json:"newOwnerId"`
}

// UpdateCrowdfundingRequest toggles the crowdfunding flag
type UpdateCrowdfundingRequest struct {
	TokenID        string `json:"tokenId"`
	IsCrowdFunding *bool  `json:"isCrowdFunding"`
}

// IncrementPlayRequest records one play of a token
type IncrementPlayRequest struct {
	ID string `json:"id"`
}

// IncrementPlayResponse carries the new play count
type IncrementPlayResponse struct {
	Success      bool  `json:"success"`
	NewPlayCount int64 `json:"newPlayCount"`
}

// ArtistListRequest resolves token ids to records
type ArtistListRequest struct {
	TokenIDs []string `json:"tokenIds"`
}

// MyNFTsResponse is the merged listing view of the caller's records
type MyNFTsResponse struct {
	NFTs []*View `json:"nfts"`
	// ListingsDegraded is true when live listings could not be read and
	// every listing field comes from the cache.
	ListingsDegraded bool `json:"listingsDegraded"`
}

// NFTsResponse wraps a list of records joined with owners
type NFTsResponse struct {
	NFTs []*WithOwner `json:"nfts"`
}

// ListingsResponse wraps marketplace listings
type ListingsResponse struct {
	Listings []*Listing `json:"listings"`
	Degraded bool       `json:"degraded"`
}
