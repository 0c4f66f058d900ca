package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	"github.com/chainsafe/music-marketplace/pkg/royalty"
)

const serviceName = "RoyaltyService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the royalty Service.
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

func (ls *logService) Distribute(ctx context.Context, req *royalty.DistributeRequest) (resp *royalty.DistributeResponse, err error) {
	start := time.Now()
	ls.logger.Info("Distribute started",
		zap.String("method", "Distribute"),
		zap.Int64("nft_id", req.NFTID),
		zap.String("amount_eth", req.AmountEth.String()),
		zap.String("tx_hash", req.TxHash))

	defer func() {
		if err != nil {
			ls.finish("Distribute", start, err, zap.Int64("nft_id", req.NFTID))
			return
		}
		ls.logger.Info("Distribute completed",
			zap.String("method", "Distribute"),
			zap.Int64("nft_id", req.NFTID),
			zap.Int64("owner_id", resp.Distribution.OwnerID),
			zap.Int64("plays", resp.Distribution.Plays),
			zap.Duration("duration", time.Since(start)))
	}()
	return ls.svc.Distribute(ctx, req)
}

func (ls *logService) PendingDistribution(ctx context.Context) (nfts []*royalty.PendingNFT, err error) {
	start := time.Now()
	defer func() {
		ls.finish("PendingDistribution", start, err, zap.Int("count", len(nfts)))
	}()
	return ls.svc.PendingDistribution(ctx)
}

func (ls *logService) Withdraw(ctx context.Context, userID int64, txHash string) (resp *royalty.WithdrawResponse, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{zap.Int64("user_id", userID), zap.String("tx_hash", txHash)}
		if resp != nil {
			fields = append(fields, zap.Int("entries", resp.Entries), zap.String("total", resp.Total.String()))
		}
		if err == nil {
			ls.logger.Info("Withdraw completed", append(fields,
				zap.String("method", "Withdraw"),
				zap.Duration("duration", time.Since(start)))...)
			return
		}
		ls.finish("Withdraw", start, err, fields...)
	}()
	return ls.svc.Withdraw(ctx, userID, txHash)
}

func (ls *logService) Proceeds(ctx context.Context, userID int64) (resp *royalty.ProceedsResponse, err error) {
	start := time.Now()
	defer func() {
		ls.finish("Proceeds", start, err, zap.Int64("user_id", userID))
	}()
	return ls.svc.Proceeds(ctx, userID)
}

func (ls *logService) PlatformFees(ctx context.Context, address string) (resp *royalty.PlatformFeesResponse, err error) {
	start := time.Now()
	defer func() {
		ls.finish("PlatformFees", start, err, zap.String("address", address))
	}()
	return ls.svc.PlatformFees(ctx, address)
}

func (ls *logService) PayoutAddress(ctx context.Context, userID int64) (address string, err error) {
	start := time.Now()
	defer func() {
		ls.finish("PayoutAddress", start, err, zap.Int64("user_id", userID))
	}()
	return ls.svc.PayoutAddress(ctx, userID)
}
