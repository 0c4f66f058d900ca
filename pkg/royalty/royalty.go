// Package royalty holds the proceeds ledger and royalty distribution model.
package royalty

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chainsafe/music-marketplace/pkg/nft"
)

// Status is the lifecycle state of a proceeds entry
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusWithdrawn Status = "WITHDRAWN"
)

// Proceeds is a ledger entry of ETH owed to a user. A user has at most one
// PENDING entry; distributions add to it until it is withdrawn.
type Proceeds struct {
	ID          uuid.UUID       `json:"id"`
	UserID      int64           `json:"userId"`
	Amount      decimal.Decimal `json:"amount"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	WithdrawnAt *time.Time      `json:"withdrawnAt,omitempty"`
}

// Distribution records one royalty payout transaction
type Distribution struct {
	ID        uuid.UUID       `json:"id"`
	NFTID     int64           `json:"nftId"`
	OwnerID   int64           `json:"ownerId"`
	Plays     int64           `json:"plays"`
	Amount    decimal.Decimal `json:"amount"`
	TxHash    string          `json:"txHash"`
	CreatedAt time.Time       `json:"createdAt"`
}

// DistributeRequest credits an owner after an on-chain royalty payment
type DistributeRequest struct {
	NFTID     int64           `json:"nftId"`
	AmountEth decimal.Decimal `json:"amountEth"`
	TxHash    string          `json:"txHash"`
}

// DistributeResponse is returned by a successful distribution
type DistributeResponse struct {
	Success      bool          `json:"success"`
	Distribution *Distribution `json:"distribution"`
	Proceeds     *Proceeds     `json:"proceeds"`
}

// PendingNFT is an admin dashboard row
type PendingNFT struct {
	*nft.WithOwner
	PendingPlays    int64           `json:"pendingPlays"`
	SuggestedAmount decimal.Decimal `json:"suggestedAmountEth"`
}

// WithdrawRequest marks the pending proceeds of a user withdrawn once the
// withdrawPayments transaction TxHash has been mined
type WithdrawRequest struct {
	UserID int64  `json:"userId"`
	TxHash string `json:"txHash"`
}

// WithdrawResponse reports what was withdrawn
type WithdrawResponse struct {
	Success bool            `json:"success"`
	Entries int             `json:"entries"`
	Total   decimal.Decimal `json:"total"`
	TxHash  string          `json:"txHash"`
}

// ProceedsResponse lists a user's ledger
type ProceedsResponse struct {
	Proceeds     []*Proceeds     `json:"proceeds"`
	PendingTotal decimal.Decimal `json:"pendingTotal"`
}

// PlatformFeesResponse reports marketplace fees awaiting withdrawal
type PlatformFeesResponse struct {
	Address string          `json:"address"`
	Amount  decimal.Decimal `json:"amountEth"`
}

// SuggestedAmount returns the payout for plays at perPlay ETH each
func SuggestedAmount(plays int64, perPlay decimal.Decimal) decimal.Decimal {
	if plays <= 0 {
		return decimal.Zero
	}
	return perPlay.Mul(decimal.NewFromInt(plays))
}
