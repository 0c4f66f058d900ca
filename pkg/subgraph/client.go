// Package subgraph reads marketplace listings and mint events from the
// GraphQL indexer.
package subgraph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	graphql "github.com/hasura/go-graphql-client"
	"github.com/shopspring/decimal"

	"github.com/chainsafe/music-marketplace/pkg/nft"
)

const (
	defaultTimeout = 10 * time.Second
	weiDecimals    = 18
)

// ErrNotConfigured is returned by every query when no endpoint is set.
var ErrNotConfigured = errors.New("subgraph endpoint not configured")

const (
	activeListingsQuery = `query GetActiveListings {
  nftlistedEntities(where: { isActive: true }) { id tokenId price seller isActive timestamp }
}`
	sellerListingsQuery = `query GetMyListings($seller: Bytes!) {
  nftlistedEntities(where: { seller: $seller, isActive: true }) { id tokenId price seller isActive }
}`
	mintsByCreatorQuery = `query GetMyNFTs($creator: Bytes!) {
  nftmintedEntities(where: { creator: $creator }) { id tokenId creator uri timestamp }
}`
)

// Client queries the indexer over HTTP. The indexer tracks a single NFT
// contract, so every returned listing is attributed to nftContract.
type Client struct {
	gql         *graphql.Client
	nftContract string
}

// NewClient creates a subgraph client. A nil httpClient gets a default with timeout.
func NewClient(endpoint, nftContract string, timeout time.Duration, httpClient *http.Client) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	c := &Client{nftContract: nftContract}
	if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
		c.gql = graphql.NewClient(endpoint, httpClient)
	}
	return c
}

// ActiveListings returns every active marketplace listing
func (c *Client) ActiveListings(ctx context.Context) ([]*nft.Listing, error) {
	var data struct {
		Entities []listingEntity `json:"nftlistedEntities"`
	}
	if err := c.query(ctx, activeListingsQuery, nil, &data); err != nil {
		return nil, err
	}
	return c.toListings(data.Entities)
}

// ListingsBySeller returns the active listings created by seller
func (c *Client) ListingsBySeller(ctx context.Context, seller string) ([]*nft.Listing, error) {
	var data struct {
		Entities []listingEntity `json:"nftlistedEntities"`
	}
	vars := map[string]any{"seller": strings.ToLower(seller)}
	if err := c.query(ctx, sellerListingsQuery, vars, &data); err != nil {
		return nil, err
	}
	return c.toListings(data.Entities)
}

// MintsByCreator returns the mint events of creator
func (c *Client) MintsByCreator(ctx context.Context, creator string) ([]*nft.Mint, error) {
	var data struct {
		Entities []mintEntity `json:"nftmintedEntities"`
	}
	vars := map[string]any{"creator": strings.ToLower(creator)}
	if err := c.query(ctx, mintsByCreatorQuery, vars, &data); err != nil {
		return nil, err
	}

	mints := make([]*nft.Mint, 0, len(data.Entities))
	for _, e := range data.Entities {
		ts, _ := e.Timestamp.Int64()
		mints = append(mints, &nft.Mint{
			ID:        e.ID,
			TokenID:   nft.CanonicalTokenID(e.TokenID),
			Creator:   e.Creator,
			URI:       e.URI,
			Timestamp: ts,
		})
	}
	return mints, nil
}

type listingEntity struct {
	ID       string `json:"id"`
	TokenID  string `json:"tokenId"`
	Price    string `json:"price"`
	Seller   string `json:"seller"`
	IsActive *bool  `json:"isActive"`
}

type mintEntity struct {
	ID        string      `json:"id"`
	TokenID   string      `json:"tokenId"`
	Creator   string      `json:"creator"`
	URI       string      `json:"uri"`
	Timestamp json.Number `json:"timestamp"`
}

func (c *Client) toListings(entities []listingEntity) ([]*nft.Listing, error) {
	listings := make([]*nft.Listing, 0, len(entities))
	for _, e := range entities {
		price, err := WeiToETH(e.Price)
		if err != nil {
			return nil, fmt.Errorf("listing %s: %w", e.ID, err)
		}
		active := true
		if e.IsActive != nil {
			active = *e.IsActive
		}
		listings = append(listings, &nft.Listing{
			ID:          e.ID,
			ListingID:   listingIDFromEntity(e.ID),
			NFTContract: c.nftContract,
			TokenID:     nft.CanonicalTokenID(e.TokenID),
			Seller:      e.Seller,
			Price:       price,
			IsActive:    active,
		})
	}
	return listings, nil
}

// listingIDFromEntity returns the marketplace listing id when the entity id
// is a plain decimal; otherwise the entity id itself is used.
func listingIDFromEntity(id string) string {
	if n, ok := new(big.Int).SetString(id, 10); ok {
		return n.String()
	}
	return id
}

// WeiToETH converts a decimal wei string into an ETH amount
func WeiToETH(wei string) (decimal.Decimal, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(wei), 10)
	if !ok {
		return decimal.Zero, fmt.Errorf("invalid wei amount %q", wei)
	}
	return decimal.NewFromBigInt(n, -weiDecimals), nil
}

func (c *Client) query(ctx context.Context, query string, vars map[string]any, out any) error {
	if c.gql == nil {
		return ErrNotConfigured
	}

	data, err := c.gql.ExecRaw(ctx, query, vars)
	if err != nil {
		return fmt.Errorf("subgraph query failed: %w", err)
	}
	if len(data) == 0 || string(data) == "null" {
		return errors.New("subgraph response has no data")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode subgraph data: %w", err)
	}
	return nil
}
