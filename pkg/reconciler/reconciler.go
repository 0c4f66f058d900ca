package reconciler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/internal/metrics"
	"github.com/chainsafe/music-marketplace/pkg/nft"
	"github.com/chainsafe/music-marketplace/pkg/nftstore"
)

const (
	defaultBatchSize = 100
	runTimeout       = 2 * time.Minute
)

// Store provides paged access to NFT records and listing write-back.
type Store interface {
	ListPage(ctx context.Context, afterID int64, limit int) ([]*nft.NFT, error)
	SetListingState(ctx context.Context, id int64, state nftstore.ListingState) error
}

// ChainReader reads the live listing of a token from the marketplace contract
type ChainReader interface {
	GetListingByToken(ctx context.Context, contract, tokenID string) (*nft.Listing, error)
}

// Result summarizes a reconciliation run
type Result struct {
	Checked   int
	Corrected int
	Failed    int
}

// Reconciler handles synchronization between marketplace contract state and the DB listing cache
type Reconciler struct {
	store     Store
	chain     ChainReader
	batchSize int
	logger    *zap.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a new Reconciler. A non-positive batchSize uses the default.
func New(store Store, chain ChainReader, batchSize int, logger *zap.Logger) *Reconciler {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Reconciler{
		store:     store,
		chain:     chain,
		batchSize: batchSize,
		logger:    logger,
		stopCh:    make(chan struct{}),
	}
}

// ReconcileAll pages over every NFT record, reads its listing from the
// marketplace contract and writes the chain state back where the cache
// diverges. A failed read or write skips the record; only a failed page
// read aborts the run.
func (r *Reconciler) ReconcileAll(ctx context.Context) (*Result, error) {
	r.logger.Info("Starting listing reconciliation")
	start := time.Now()
	res := &Result{}

	defer func() {
		metrics.ReconcileDuration.Observe(time.Since(start).Seconds())
	}()

	var afterID int64
	for {
		page, err := r.store.ListPage(ctx, afterID, r.batchSize)
		if err != nil {
			metrics.ReconcileRuns.WithLabelValues("error").Inc()
			return res, fmt.Errorf("failed to list nfts after id %d: %w", afterID, err)
		}

		for _, rec := range page {
			r.reconcileOne(ctx, rec, res)
		}

		if len(page) < r.batchSize {
			break
		}
		afterID = page[len(page)-1].ID

		if err := ctx.Err(); err != nil {
			metrics.ReconcileRuns.WithLabelValues("error").Inc()
			return res, err
		}
	}

	status := "success"
	if res.Failed > 0 {
		status = "partial"
	}
	metrics.ReconcileRuns.WithLabelValues(status).Inc()

	r.logger.Info("Listing reconciliation completed",
		zap.Int("checked", res.Checked),
		zap.Int("corrected", res.Corrected),
		zap.Int("failed", res.Failed),
		zap.Duration("duration", time.Since(start)))
	return res, nil
}

func (r *Reconciler) reconcileOne(ctx context.Context, rec *nft.NFT, res *Result) {
	res.Checked++

	listing, err := r.chain.GetListingByToken(ctx, rec.ContractAddress, rec.TokenID)
	if err != nil {
		res.Failed++
		metrics.ErrorsTotal.WithLabelValues("reconciler", "chain_read").Inc()
		r.logger.Warn("Failed to read listing",
			zap.Int64("nft_id", rec.ID),
			zap.String("token_id", rec.TokenID),
			zap.Error(err))
		return
	}

	want, diverged := chainState(rec, listing)
	if !diverged {
		return
	}

	if err := r.store.SetListingState(ctx, rec.ID, want); err != nil {
		res.Failed++
		metrics.ErrorsTotal.WithLabelValues("reconciler", "write_back").Inc()
		r.logger.Warn("Failed to write back listing state",
			zap.Int64("nft_id", rec.ID),
			zap.String("token_id", rec.TokenID),
			zap.Error(err))
		return
	}

	res.Corrected++
	metrics.ReconcileCorrections.Inc()
	r.logger.Debug("Corrected cached listing",
		zap.Int64("nft_id", rec.ID),
		zap.String("token_id", rec.TokenID),
		zap.Bool("is_listed", want.IsListed),
		zap.String("price", want.Price.String()))
}

// chainState returns the listing state the record should hold. An inactive
// listing clears the listing id and keeps the cached price.
func chainState(rec *nft.NFT, listing *nft.Listing) (nftstore.ListingState, bool) {
	if !listing.IsActive {
		want := nftstore.ListingState{IsListed: false, Price: rec.Price}
		return want, rec.IsListed || rec.ListingID != nil
	}

	id := listing.ListingID
	want := nftstore.ListingState{IsListed: true, Price: listing.Price, ListingID: &id}
	diverged := !rec.IsListed ||
		!rec.Price.Equal(listing.Price) ||
		rec.ListingID == nil || *rec.ListingID != id
	return want, diverged
}

// RunOnce runs a single reconciliation bounded by timeout
func (r *Reconciler) RunOnce(ctx context.Context, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := r.ReconcileAll(ctx); err != nil {
		r.logger.Error("Listing reconciliation failed", zap.Error(err))
	}
}

// StartPeriodicReconciliation starts a background goroutine that reconciles periodically
func (r *Reconciler) StartPeriodicReconciliation(interval time.Duration) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		r.logger.Info("Started periodic listing reconciliation", zap.Duration("interval", interval))

		for {
			select {
			case <-ticker.C:
				r.RunOnce(context.Background(), runTimeout)
			case <-r.stopCh:
				r.logger.Info("Stopping periodic listing reconciliation")
				return
			}
		}
	}()
}

// Stop stops the periodic reconciliation. It is safe to call more than once.
func (r *Reconciler) Stop() {
	r.stopOnce.Do(func() { close(r.stopCh) })
	r.wg.Wait()
}
