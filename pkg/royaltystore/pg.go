package royaltystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/music-marketplace/pkg/nft"
	"github.com/chainsafe/music-marketplace/pkg/nftstore"
	"github.com/chainsafe/music-marketplace/pkg/pgutil"
	"github.com/chainsafe/music-marketplace/pkg/royalty"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the royalty store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// CreatePendingIndex creates the partial unique index that keeps one PENDING
// proceeds entry per user. Distribute relies on it for its upsert.
func CreatePendingIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*ProceedsDao)(nil)).
		Index("proceeds_user_pending_key").
		Unique().
		IfNotExists().
		Column("user_id").
		Where("status = 'PENDING'").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create pending proceeds index: %w", err)
	}
	return nil
}

// Distribute settles the pending plays of an NFT in one transaction: the NFT
// row is locked, lastRoyaltyPlayCount catches up with playCount, the payout is
// recorded under its unique tx hash and the owner's PENDING entry grows by amount.
func (s *pgStore) Distribute(
	ctx context.Context,
	nftID int64,
	amount decimal.Decimal,
	txHash string,
) (*royalty.Distribution, *royalty.Proceeds, error) {
	var (
		dist     *DistributionDao
		proceeds *ProceedsDao
	)

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		rec := new(nftstore.NFTDao)
		err := tx.NewSelect().
			Model(rec).
			Where("id = ?", nftID).
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNFTNotFound
			}
			return fmt.Errorf("failed to lock nft: %w", err)
		}

		dist = &DistributionDao{
			ID:      uuid.New(),
			NFTID:   rec.ID,
			OwnerID: rec.OwnerID,
			Plays:   rec.PlayCount - rec.LastRoyaltyPlayCount,
			Amount:  amount,
			TxHash:  strings.ToLower(txHash),
		}
		if _, err := tx.NewInsert().Model(dist).Returning("*").Exec(ctx); err != nil {
			if pgutil.IsUniqueViolation(err) {
				return ErrDuplicateTx
			}
			return fmt.Errorf("failed to record distribution: %w", err)
		}

		_, err = tx.NewUpdate().
			Model((*nftstore.NFTDao)(nil)).
			Set("last_royalty_play_count = play_count").
			Set("updated_at = NOW()").
			Where("id = ?", rec.ID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update royalty play count: %w", err)
		}

		proceeds = &ProceedsDao{
			ID:     uuid.New(),
			UserID: rec.OwnerID,
			Amount: amount,
			Status: string(royalty.StatusPending),
		}
		_, err = tx.NewInsert().
			Model(proceeds).
			On("CONFLICT (user_id) WHERE status = 'PENDING' DO UPDATE").
			Set("amount = p.amount + EXCLUDED.amount").
			Set("updated_at = NOW()").
			Returning("*").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to credit proceeds: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return toDistribution(dist), toProceeds(proceeds), nil
}

func (s *pgStore) ListNFTs(ctx context.Context) ([]*nft.NFT, error) {
	var daos []nftstore.NFTDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}

	out := make([]*nft.NFT, len(daos))
	for i := range daos {
		out[i] = nftstore.ToNFT(&daos[i])
	}
	return out, nil
}

func (s *pgStore) ListProceeds(ctx context.Context, userID int64) ([]*royalty.Proceeds, error) {
	var daos []ProceedsDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proceeds: %w", err)
	}

	out := make([]*royalty.Proceeds, len(daos))
	for i := range daos {
		out[i] = toProceeds(&daos[i])
	}
	return out, nil
}

// Withdraw marks every PENDING entry of the user WITHDRAWN and returns how many
// entries moved and their total.
func (s *pgStore) Withdraw(ctx context.Context, userID int64) (int, decimal.Decimal, error) {
	var daos []ProceedsDao
	err := s.db.NewUpdate().
		Model((*ProceedsDao)(nil)).
		Set("status = ?", string(royalty.StatusWithdrawn)).
		Set("withdrawn_at = NOW()").
		Set("updated_at = NOW()").
		Where("user_id = ?", userID).
		Where("status = ?", string(royalty.StatusPending)).
		Returning("*").
		Scan(ctx, &daos)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, decimal.Zero, fmt.Errorf("failed to withdraw proceeds: %w", err)
	}

	total := decimal.Zero
	for i := range daos {
		total = total.Add(daos[i].Amount)
	}
	return len(daos), total, nil
}
