package nftstore

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/music-marketplace/pkg/nft"
)

// NFTDao maps to the 'nfts' table. token_id is numeric(78,0) so any uint256 fits.
type NFTDao struct {
	bun.BaseModel        `bun:"table:nfts,alias:n"`
	ID                   int64           `bun:"id,pk,autoincrement"`
	TokenID              string          `bun:"token_id,notnull,type:numeric(78,0),unique:nfts_contract_token"`
	ContractAddress      string          `bun:"contract_address,notnull,type:varchar(42),unique:nfts_contract_token"`
	OwnerID              int64           `bun:"owner_id,notnull"`
	ListingID            *string         `bun:"listing_id,type:numeric(78,0)"`
	IsListed             bool            `bun:"is_listed,notnull,default:false"`
	IsCrowdFunding       bool            `bun:"is_crowd_funding,notnull,default:false"`
	Price                decimal.Decimal `bun:"price,notnull,type:numeric(38,18),default:0"`
	RoyaltyShare         decimal.Decimal `bun:"royalty_share,notnull,type:numeric(5,2),default:10"`
	PlayCount            int64           `bun:"play_count,notnull,default:0"`
	LastRoyaltyPlayCount int64           `bun:"last_royalty_play_count,notnull,default:0"`
	CreatedAt            time.Time       `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt            time.Time       `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// ToNFT converts a NFTDao to nft.NFT.
func ToNFT(dao *NFTDao) *nft.NFT {
	return &nft.NFT{
		ID:                   dao.ID,
		TokenID:              dao.TokenID,
		ContractAddress:      dao.ContractAddress,
		OwnerID:              dao.OwnerID,
		ListingID:            dao.ListingID,
		IsListed:             dao.IsListed,
		IsCrowdFunding:       dao.IsCrowdFunding,
		Price:                dao.Price,
		RoyaltyShare:         dao.RoyaltyShare,
		PlayCount:            dao.PlayCount,
		LastRoyaltyPlayCount: dao.LastRoyaltyPlayCount,
		CreatedAt:            dao.CreatedAt,
		UpdatedAt:            dao.UpdatedAt,
	}
}

func toNFTDao(rec *nft.NFT) *NFTDao {
	royalty := rec.RoyaltyShare
	if royalty.IsZero() {
		royalty = decimal.NewFromInt(10)
	}
	return &NFTDao{
		ID:                   rec.ID,
		TokenID:              nft.CanonicalTokenID(rec.TokenID),
		ContractAddress:      rec.ContractAddress,
		OwnerID:              rec.OwnerID,
		ListingID:            rec.ListingID,
		IsListed:             rec.IsListed,
		IsCrowdFunding:       rec.IsCrowdFunding,
		Price:                rec.Price,
		RoyaltyShare:         royalty,
		PlayCount:            rec.PlayCount,
		LastRoyaltyPlayCount: rec.LastRoyaltyPlayCount,
	}
}

func toNFTs(daos []NFTDao) []*nft.NFT {
	out := make([]*nft.NFT, len(daos))
	for i := range daos {
		out[i] = ToNFT(&daos[i])
	}
	return out
}
