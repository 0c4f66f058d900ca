package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	"github.com/chainsafe/music-marketplace/pkg/nft"
)

const serviceName = "NFTService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the NFT Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger.With(zap.String("service", serviceName)),
	}
}

func (ls *logService) finish(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	)
	if err != nil {
		fields = append(fields, zap.Stringer("category", apperrors.CategoryOf(err)), zap.Error(err))
		if apperrors.IsInternalError(err) {
			ls.logger.Error(method+" failed", fields...)
		} else {
			ls.logger.Warn(method+" rejected", fields...)
		}
		return
	}
	ls.logger.Debug(method+" completed", fields...)
}

func (ls *logService) MyNFTs(ctx context.Context, userID int64) (resp *nft.MyNFTsResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.Int64("user_id", userID)}
		if resp != nil {
			fields = append(fields, zap.Int("count", len(resp.NFTs)), zap.Bool("listings_degraded", resp.ListingsDegraded))
		}
		ls.finish("MyNFTs", start, err, fields...)
	}()
	return ls.svc.MyNFTs(ctx, userID)
}

func (ls *logService) ListAll(ctx context.Context) (nfts []*nft.WithOwner, err error) {
	start := time.Now()
	defer func() {
		ls.finish("ListAll", start, err, zap.Int("count", len(nfts)))
	}()
	return ls.svc.ListAll(ctx)
}

func (ls *logService) GetByTokenID(ctx context.Context, tokenID string) (rec *nft.WithOwner, err error) {
	start := time.Now()
	defer func() {
		ls.finish("GetByTokenID", start, err, zap.String("token_id", tokenID))
	}()
	return ls.svc.GetByTokenID(ctx, tokenID)
}

func (ls *logService) Store(ctx context.Context, req *nft.StoreRequest) (rec *nft.NFT, err error) {
	start := time.Now()
	ls.logger.Info("Store started",
		zap.String("method", "Store"),
		zap.String("token_id", req.TokenID),
		zap.String("contract", req.ContractAddress),
		zap.Int64("owner_id", req.OwnerID))

	defer func() {
		if err != nil {
			ls.finish("Store", start, err, zap.String("token_id", req.TokenID))
			return
		}
		ls.logger.Info("Store completed",
			zap.String("method", "Store"),
			zap.Int64("nft_id", rec.ID),
			zap.Duration("duration", time.Since(start)))
	}()
	return ls.svc.Store(ctx, req)
}

func (ls *logService) UpdateListing(ctx context.Context, req *nft.UpdateListingRequest) (err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.String("token_id", req.TokenID)}
		if req.Price != nil {
			fields = append(fields, zap.String("price", req.Price.String()))
		}
		if req.IsListed != nil {
			fields = append(fields, zap.Bool("is_listed", *req.IsListed))
		}
		ls.finish("UpdateListing", start, err, fields...)
	}()
	return ls.svc.UpdateListing(ctx, req)
}

func (ls *logService) UpdateOwner(ctx context.Context, req *nft.UpdateOwnerRequest) (err error) {
	start := time.Now()
	defer func() {
		ls.finish("UpdateOwner", start, err,
			zap.String("token_id", req.TokenID),
			zap.Int64("new_owner_id", req.NewOwnerID))
	}()
	return ls.svc.UpdateOwner(ctx, req)
}

func (ls *logService) UpdateCrowdfunding(ctx context.Context, req *nft.UpdateCrowdfundingRequest) (err error) {
	start := time.Now()
	defer func() {
		ls.finish("UpdateCrowdfunding", start, err, zap.String("token_id", req.TokenID))
	}()
	return ls.svc.UpdateCrowdfunding(ctx, req)
}

func (ls *logService) IncrementPlay(ctx context.Context, tokenID string) (count int64, err error) {
	start := time.Now()
	defer func() {
		ls.finish("IncrementPlay", start, err, zap.String("token_id", tokenID), zap.Int64("play_count", count))
	}()
	return ls.svc.IncrementPlay(ctx, tokenID)
}

func (ls *logService) ArtistCreations(ctx context.Context, tokenIDs []string) (nfts []*nft.WithOwner, err error) {
	start := time.Now()
	defer func() {
		ls.finish("ArtistCreations", start, err, zap.Int("requested", len(tokenIDs)), zap.Int("count", len(nfts)))
	}()
	return ls.svc.ArtistCreations(ctx, tokenIDs)
}

func (ls *logService) Creations(ctx context.Context, creator string) (nfts []*nft.WithOwner, err error) {
	start := time.Now()
	defer func() {
		ls.finish("Creations", start, err, zap.String("creator", creator), zap.Int("count", len(nfts)))
	}()
	return ls.svc.Creations(ctx, creator)
}

func (ls *logService) ActiveListings(ctx context.Context) (resp *nft.ListingsResponse, err error) {
	start := time.Now()
	defer func() {
		var fields []zap.Field
		if resp != nil {
			fields = append(fields, zap.Int("count", len(resp.Listings)), zap.Bool("degraded", resp.Degraded))
		}
		ls.finish("ActiveListings", start, err, fields...)
	}()
	return ls.svc.ActiveListings(ctx)
}

func (ls *logService) OnChainListing(ctx context.Context, contract, tokenID string) (listing *nft.Listing, err error) {
	start := time.Now()
	defer func() {
		ls.finish("OnChainListing", start, err, zap.String("contract", contract), zap.String("token_id", tokenID))
	}()
	return ls.svc.OnChainListing(ctx, contract, tokenID)
}
