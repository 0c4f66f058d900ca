package nftstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/music-marketplace/pkg/nft"
	"github.com/chainsafe/music-marketplace/pkg/pgutil"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the NFT store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateNFT(ctx context.Context, rec *nft.NFT) error {
	dao := toNFTDao(rec)

	_, err := s.db.NewInsert().
		Model(dao).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if pgutil.IsUniqueViolation(err) {
			return ErrNFTExists
		}
		return fmt.Errorf("failed to create nft: %w", err)
	}

	*rec = *ToNFT(dao)
	return nil
}

func (s *pgStore) GetByTokenID(ctx context.Context, tokenID string) (*nft.NFT, error) {
	dao := new(NFTDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("token_id = ?", nft.CanonicalTokenID(tokenID)).
		Order("id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNFTNotFound
		}
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	return ToNFT(dao), nil
}

func (s *pgStore) GetByID(ctx context.Context, id int64) (*nft.NFT, error) {
	dao := new(NFTDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNFTNotFound
		}
		return nil, fmt.Errorf("failed to get nft: %w", err)
	}
	return ToNFT(dao), nil
}

func (s *pgStore) ListByOwner(ctx context.Context, ownerID int64) ([]*nft.NFT, error) {
	var daos []NFTDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC", "id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts by owner: %w", err)
	}
	return toNFTs(daos), nil
}

func (s *pgStore) ListAll(ctx context.Context) ([]*nft.NFT, error) {
	var daos []NFTDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("created_at DESC", "id DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts: %w", err)
	}
	return toNFTs(daos), nil
}

func (s *pgStore) ListByTokenIDs(ctx context.Context, tokenIDs []string) ([]*nft.NFT, error) {
	if len(tokenIDs) == 0 {
		return []*nft.NFT{}, nil
	}

	ids := make([]string, len(tokenIDs))
	for i, id := range tokenIDs {
		ids[i] = nft.CanonicalTokenID(id)
	}

	var daos []NFTDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("token_id IN (?)", bun.In(ids)).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nfts by token ids: %w", err)
	}
	return toNFTs(daos), nil
}

// ListPage returns up to limit records with id greater than afterID, in id order.
func (s *pgStore) ListPage(ctx context.Context, afterID int64, limit int) ([]*nft.NFT, error) {
	var daos []NFTDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("id > ?", afterID).
		Order("id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nft page: %w", err)
	}
	return toNFTs(daos), nil
}

// UpdateListing applies a partial update; nil fields are left untouched.
func (s *pgStore) UpdateListing(ctx context.Context, tokenID string, price *decimal.Decimal, isListed *bool) (int64, error) {
	query := s.db.NewUpdate().
		Model((*NFTDao)(nil)).
		Set("updated_at = NOW()").
		Where("token_id = ?", nft.CanonicalTokenID(tokenID))
	if price != nil {
		query = query.Set("price = ?", *price)
	}
	if isListed != nil {
		query = query.Set("is_listed = ?", *isListed)
	}

	res, err := query.Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update listing: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// UpdateOwner reassigns the record and clears its listing.
func (s *pgStore) UpdateOwner(ctx context.Context, tokenID string, newOwnerID int64) (int64, error) {
	res, err := s.db.NewUpdate().
		Model((*NFTDao)(nil)).
		Set("owner_id = ?", newOwnerID).
		Set("is_listed = FALSE").
		Set("price = 0").
		Set("listing_id = NULL").
		Set("updated_at = NOW()").
		Where("token_id = ?", nft.CanonicalTokenID(tokenID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update owner: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (s *pgStore) UpdateCrowdfunding(ctx context.Context, tokenID string, isCrowdFunding bool) (int64, error) {
	res, err := s.db.NewUpdate().
		Model((*NFTDao)(nil)).
		Set("is_crowd_funding = ?", isCrowdFunding).
		Set("updated_at = NOW()").
		Where("token_id = ?", nft.CanonicalTokenID(tokenID)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to update crowdfunding: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (s *pgStore) SetListingState(ctx context.Context, id int64, state ListingState) error {
	res, err := s.db.NewUpdate().
		Model((*NFTDao)(nil)).
		Set("is_listed = ?", state.IsListed).
		Set("price = ?", state.Price).
		Set("listing_id = ?", state.ListingID).
		Set("updated_at = NOW()").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set listing state: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNFTNotFound
	}
	return nil
}

// IncrementPlay adds one play in a single statement so concurrent plays are
// never lost. When several contracts share a token id the oldest record wins.
func (s *pgStore) IncrementPlay(ctx context.Context, tokenID string) (int64, error) {
	var playCount int64
	target := s.db.NewSelect().
		Model((*NFTDao)(nil)).
		Column("id").
		Where("token_id = ?", nft.CanonicalTokenID(tokenID)).
		Order("id ASC").
		Limit(1)

	err := s.db.NewUpdate().
		Model((*NFTDao)(nil)).
		Set("play_count = play_count + 1").
		Set("updated_at = NOW()").
		Where("id = (?)", target).
		Returning("play_count").
		Scan(ctx, &playCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNFTNotFound
		}
		return 0, fmt.Errorf("failed to increment play count: %w", err)
	}
	return playCount, nil
}
