// Package api implements app.Runner for the marketplace API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/music-marketplace/pkg/app"
	apphttp "github.com/chainsafe/music-marketplace/pkg/app/http"
	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/config"
	"github.com/chainsafe/music-marketplace/pkg/ethereum"
	nftservice "github.com/chainsafe/music-marketplace/pkg/nft/service"
	"github.com/chainsafe/music-marketplace/pkg/nftstore"
	"github.com/chainsafe/music-marketplace/pkg/pgutil"
	reconcilerpkg "github.com/chainsafe/music-marketplace/pkg/reconciler"
	royaltyservice "github.com/chainsafe/music-marketplace/pkg/royalty/service"
	"github.com/chainsafe/music-marketplace/pkg/royaltystore"
	"github.com/chainsafe/music-marketplace/pkg/subgraph"
	userservice "github.com/chainsafe/music-marketplace/pkg/user/service"
	"github.com/chainsafe/music-marketplace/pkg/userstore"
)

var _ app.Runner = (*Server)(nil)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

type services struct {
	users   userservice.Service
	nfts    nftservice.Service
	royalty royaltyservice.Service
	tokens  auth.TokenValidator
	limiter *apphttp.RateLimiter
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging, "api-server")
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting marketplace API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	perPlay, err := decimal.NewFromString(cfg.Royalty.PerPlayETH)
	if err != nil {
		return fmt.Errorf("invalid royalty.per_play_eth %q: %w", cfg.Royalty.PerPlayETH, err)
	}

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	userStore := userstore.NewStore(db)
	nftStore := nftstore.NewStore(db)
	royaltyStore := royaltystore.NewStore(db)
	listings := subgraph.NewClient(cfg.Subgraph.URL, cfg.Ethereum.MusicNFTAddress, cfg.Subgraph.Timeout, nil)

	chainClient, err := s.openChainClient(logger)
	if err != nil {
		return err
	}

	// nil interfaces, not typed nil pointers, disable chain-backed features
	var (
		nftChain     nftservice.ChainReader
		royaltyChain royaltyservice.ChainReader
	)
	stopReconcile := func() {}
	if chainClient != nil {
		defer chainClient.Close()
		nftChain, royaltyChain = chainClient, chainClient

		rec := reconcilerpkg.New(nftStore, chainClient, cfg.Reconciliation.BatchSize, logger)
		s.runInitialReconcile(ctx, rec, logger)

		stopReconcile = s.startPeriodicReconcile(rec, logger)
		// Stopped explicitly after ServeAndWait returns for deterministic shutdown order.
		defer stopReconcile()
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	svcs := &services{
		users: userservice.NewLog(
			userservice.NewService(userStore, tokens, cfg.Auth.BcryptCost, logger),
			logger,
		),
		nfts: nftservice.NewLog(
			nftservice.NewService(nftStore, userStore, listings, nftChain, logger),
			logger,
		),
		royalty: royaltyservice.NewLog(
			royaltyservice.NewService(royaltyStore, userStore, royaltyChain, perPlay, logger),
			logger,
		),
		tokens:  tokens,
		limiter: apphttp.NewRateLimiter(cfg.Auth.RateLimit),
	}

	router := s.setupRouter(svcs, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	// Stop background work before deferred DB/client closes kick in.
	stopReconcile()

	return err
}

func (s *Server) openChainClient(logger *zap.Logger) (*ethereum.Client, error) {
	if !s.cfg.Ethereum.Enabled() {
		logger.Warn("Ethereum RPC not configured; on-chain reads, receipt checks and reconciliation are disabled")
		return nil, nil
	}

	client, err := ethereum.NewClient(&s.cfg.Ethereum, logger)
	if err != nil {
		return nil, fmt.Errorf("create ethereum client: %w", err)
	}
	return client, nil
}

func (s *Server) runInitialReconcile(
	ctx context.Context,
	reconciler *reconcilerpkg.Reconciler,
	logger *zap.Logger,
) {
	if s.cfg.Reconciliation.InitialTimeout <= 0 {
		return
	}

	logger.Info("Running initial listing reconciliation",
		zap.Duration("timeout", s.cfg.Reconciliation.InitialTimeout),
	)

	startupCtx, cancel := context.WithTimeout(ctx, s.cfg.Reconciliation.InitialTimeout)
	defer cancel()

	res, err := reconciler.ReconcileAll(startupCtx)
	if err != nil {
		logger.Warn("Initial reconciliation failed (will retry periodically)", zap.Error(err))
		return
	}

	logger.Info("Initial listing reconciliation completed",
		zap.Int("checked", res.Checked),
		zap.Int("corrected", res.Corrected),
		zap.Int("failed", res.Failed),
	)
}

func (s *Server) startPeriodicReconcile(
	reconciler *reconcilerpkg.Reconciler,
	logger *zap.Logger,
) func() {
	if s.cfg.Reconciliation.Interval <= 0 {
		return func() {}
	}

	logger.Info("Starting periodic reconciliation", zap.Duration("interval", s.cfg.Reconciliation.Interval))
	reconciler.StartPeriodicReconciliation(s.cfg.Reconciliation.Interval)

	return func() { reconciler.Stop() }
}

func (s *Server) setupRouter(svcs *services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle(s.cfg.Monitoring.MetricsPath, promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(apphttp.Metrics)

		userservice.RegisterRoutes(r, svcs.users, svcs.tokens, svcs.limiter, logger)
		nftservice.RegisterRoutes(r, svcs.nfts, svcs.tokens, logger)
		royaltyservice.RegisterRoutes(r, svcs.royalty, svcs.tokens, logger)
	})

	return r
}
