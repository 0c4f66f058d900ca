package royaltystore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/music-marketplace/pkg/royalty"
)

// ProceedsDao maps to the 'proceeds' table. A partial unique index on user_id
// where status = 'PENDING' keeps one open entry per user.
type ProceedsDao struct {
	bun.BaseModel `bun:"table:proceeds,alias:p"`
	ID            uuid.UUID       `bun:"id,pk,type:uuid"`
	UserID        int64           `bun:"user_id,notnull"`
	Amount        decimal.Decimal `bun:"amount,notnull,type:numeric(38,18)"`
	Status        string          `bun:"status,notnull,type:varchar(16),default:'PENDING'"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
	WithdrawnAt   *time.Time      `bun:"withdrawn_at"`
}

// DistributionDao maps to the 'royalty_distributions' table
type DistributionDao struct {
	bun.BaseModel `bun:"table:royalty_distributions,alias:rd"`
	ID            uuid.UUID       `bun:"id,pk,type:uuid"`
	NFTID         int64           `bun:"nft_id,notnull"`
	OwnerID       int64           `bun:"owner_id,notnull"`
	Plays         int64           `bun:"plays,notnull"`
	Amount        decimal.Decimal `bun:"amount,notnull,type:numeric(38,18)"`
	TxHash        string          `bun:"tx_hash,notnull,unique,type:varchar(66)"`
	CreatedAt     time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toProceeds(dao *ProceedsDao) *royalty.Proceeds {
	return &royalty.Proceeds{
		ID:          dao.ID,
		UserID:      dao.UserID,
		Amount:      dao.Amount,
		Status:      royalty.Status(dao.Status),
		CreatedAt:   dao.CreatedAt,
		UpdatedAt:   dao.UpdatedAt,
		WithdrawnAt: dao.WithdrawnAt,
	}
}

func toDistribution(dao *DistributionDao) *royalty.Distribution {
	return &royalty.Distribution{
		ID:        dao.ID,
		NFTID:     dao.NFTID,
		OwnerID:   dao.OwnerID,
		Plays:     dao.Plays,
		Amount:    dao.Amount,
		TxHash:    dao.TxHash,
		CreatedAt: dao.CreatedAt,
	}
}
