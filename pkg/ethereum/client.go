// Package ethereum provides read access to the marketplace and music NFT
// contracts, transaction receipt checks and chain error classification.
package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/pkg/config"
	"github.com/chainsafe/music-marketplace/pkg/ethereum/contracts"
	"github.com/chainsafe/music-marketplace/pkg/nft"
)

const weiDecimals = 18

var (
	// ErrInvalidAddress is returned for malformed account or contract addresses.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInvalidTokenID is returned when a token id is not a decimal uint256.
	ErrInvalidTokenID = errors.New("invalid token id")
	// ErrInvalidTxHash is returned when a transaction hash is not 32 bytes of hex.
	ErrInvalidTxHash = errors.New("invalid transaction hash")
	// ErrReceiptNotFound is returned when the transaction is unknown or still pending.
	ErrReceiptNotFound = errors.New("transaction receipt not found")
)

// Backend is the subset of ethclient.Client used by Client
type Backend interface {
	bind.ContractCaller
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Client reads marketplace state from an Ethereum node
type Client struct {
	backend     Backend
	closer      func()
	marketplace *contracts.NFTMarketplaceCaller
	musicNFT    *contracts.MusicNFTCaller
	logger      *zap.Logger
}

// NewClient dials cfg.RPCURL and binds the configured contracts
func NewClient(cfg *config.EthereumConfig, logger *zap.Logger) (*Client, error) {
	ec, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Ethereum RPC: %w", err)
	}

	c, err := NewClientWithBackend(ec, cfg.MarketplaceAddress, cfg.MusicNFTAddress, logger)
	if err != nil {
		ec.Close()
		return nil, err
	}
	c.closer = ec.Close

	logger.Info("Connected to Ethereum",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("marketplace", cfg.MarketplaceAddress),
		zap.String("music_nft", cfg.MusicNFTAddress))

	return c, nil
}

// NewClientWithBackend binds the contracts on an existing backend
func NewClientWithBackend(backend Backend, marketplaceAddr, musicNFTAddr string, logger *zap.Logger) (*Client, error) {
	if !common.IsHexAddress(marketplaceAddr) {
		return nil, fmt.Errorf("marketplace %w: %q", ErrInvalidAddress, marketplaceAddr)
	}

	marketplace, err := contracts.NewNFTMarketplaceCaller(common.HexToAddress(marketplaceAddr), backend)
	if err != nil {
		return nil, fmt.Errorf("failed to bind marketplace contract: %w", err)
	}

	c := &Client{
		backend:     backend,
		marketplace: marketplace,
		logger:      logger,
	}

	if musicNFTAddr != "" {
		if !common.IsHexAddress(musicNFTAddr) {
			return nil, fmt.Errorf("music nft %w: %q", ErrInvalidAddress, musicNFTAddr)
		}
		c.musicNFT, err = contracts.NewMusicNFTCaller(common.HexToAddress(musicNFTAddr), backend)
		if err != nil {
			return nil, fmt.Errorf("failed to bind music nft contract: %w", err)
		}
	}
	return c, nil
}

// Close closes the underlying RPC connection
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// GetListingByToken reads the marketplace listing for a token. An unlisted
// token comes back with IsActive false.
func (c *Client) GetListingByToken(ctx context.Context, contract, tokenID string) (*nft.Listing, error) {
	if !common.IsHexAddress(contract) {
		return nil, fmt.Errorf("contract %w: %q", ErrInvalidAddress, contract)
	}
	id, err := parseTokenID(tokenID)
	if err != nil {
		return nil, err
	}

	out, err := c.marketplace.GetListingByToken(&bind.CallOpts{Context: ctx}, common.HexToAddress(contract), id)
	if err != nil {
		return nil, fmt.Errorf("getListingByToken(%s, %s): %w", contract, tokenID, err)
	}

	return &nft.Listing{
		ListingID:   bigString(out.ListingId),
		NFTContract: common.HexToAddress(contract).Hex(),
		TokenID:     id.String(),
		Seller:      out.Seller.Hex(),
		Price:       WeiToETH(out.Price),
		IsActive:    out.Active,
	}, nil
}

// PendingPayment returns the ETH the marketplace holds for account
func (c *Client) PendingPayment(ctx context.Context, account string) (decimal.Decimal, error) {
	if !common.IsHexAddress(account) {
		return decimal.Zero, fmt.Errorf("account %w: %q", ErrInvalidAddress, account)
	}

	wei, err := c.marketplace.GetPendingPayment(&bind.CallOpts{Context: ctx}, common.HexToAddress(account))
	if err != nil {
		return decimal.Zero, fmt.Errorf("getPendingPayment(%s): %w", account, err)
	}
	return WeiToETH(wei), nil
}

// TokenURI returns the metadata uri of a music NFT
func (c *Client) TokenURI(ctx context.Context, tokenID string) (string, error) {
	if c.musicNFT == nil {
		return "", errors.New("music nft contract not configured")
	}
	id, err := parseTokenID(tokenID)
	if err != nil {
		return "", err
	}

	uri, err := c.musicNFT.TokenURI(&bind.CallOpts{Context: ctx}, id)
	if err != nil {
		return "", fmt.Errorf("tokenURI(%s): %w", tokenID, err)
	}
	return uri, nil
}

// TransactionSucceeded reports whether a mined transaction has a successful status
func (c *Client) TransactionSucceeded(ctx context.Context, txHash string) (bool, error) {
	hash, err := ParseTxHash(txHash)
	if err != nil {
		return false, err
	}

	receipt, err := c.backend.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return false, ErrReceiptNotFound
		}
		return false, fmt.Errorf("failed to get receipt for %s: %w", txHash, err)
	}
	return receipt.Status == types.ReceiptStatusSuccessful, nil
}

// ParseTxHash validates a 0x-prefixed 32 byte hex hash
func ParseTxHash(txHash string) (common.Hash, error) {
	b, err := hexutil.Decode(strings.TrimSpace(txHash))
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}, ErrInvalidTxHash
	}
	return common.BytesToHash(b), nil
}

// WeiToETH converts a wei amount to ETH
func WeiToETH(wei *big.Int) decimal.Decimal {
	if wei == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(wei, -weiDecimals)
}

func parseTokenID(tokenID string) (*big.Int, error) {
	id, ok := new(big.Int).SetString(strings.TrimSpace(tokenID), 10)
	if !ok || id.Sign() < 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTokenID, tokenID)
	}
	return id, nil
}

func bigString(n *big.Int) string {
	if n == nil {
		return "0"
	}
	return n.String()
}
