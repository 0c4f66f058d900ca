package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	"github.com/chainsafe/music-marketplace/pkg/ethereum"
	"github.com/chainsafe/music-marketplace/pkg/nft"
	"github.com/chainsafe/music-marketplace/pkg/royalty"
	"github.com/chainsafe/music-marketplace/pkg/royalty/service/mocks"
	"github.com/chainsafe/music-marketplace/pkg/royaltystore"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

const (
	testTx     = "0x3a1f9c7e12b48d2e6f0a9b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e"
	testWallet = "0x52908400098527886E0F7030069857D2E4169EE7"
)

type fakeChain struct {
	succeeded bool
	err       error
	pending   decimal.Decimal
}

func (f *fakeChain) TransactionSucceeded(context.Context, string) (bool, error) {
	return f.succeeded, f.err
}

func (f *fakeChain) PendingPayment(context.Context, string) (decimal.Decimal, error) {
	return f.pending, f.err
}

func newTestService(t *testing.T, chain ChainReader) (Service, *mocks.Store, *mocks.UserLookup) {
	t.Helper()
	store := mocks.NewStore(t)
	users := mocks.NewUserLookup(t)
	return NewService(store, users, chain, decimal.RequireFromString("0.0001"), zap.NewNop()), store, users
}

func distributeRequest() *royalty.DistributeRequest {
	return &royalty.DistributeRequest{
		NFTID:     1,
		AmountEth: decimal.RequireFromString("0.0003"),
		TxHash:    testTx,
	}
}

func TestRoyaltyService_Distribute(t *testing.T) {
	svc, store, _ := newTestService(t, &fakeChain{succeeded: true})

	store.EXPECT().Distribute(mock.Anything, int64(1), mock.Anything, testTx).
		Return(
			&royalty.Distribution{NFTID: 1, OwnerID: 7, Plays: 3, TxHash: testTx},
			&royalty.Proceeds{UserID: 7, Amount: decimal.RequireFromString("0.0003"), Status: royalty.StatusPending},
			nil,
		).Once()

	resp, err := svc.Distribute(context.Background(), distributeRequest())
	if err != nil {
		t.Fatalf("Distribute() failed: %v", err)
	}
	if !resp.Success || resp.Distribution.Plays != 3 || resp.Proceeds.UserID != 7 {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestRoyaltyService_Distribute_Validation(t *testing.T) {
	svc, _, _ := newTestService(t, nil)

	cases := map[string]*royalty.DistributeRequest{
		"missing nft":     {AmountEth: decimal.NewFromInt(1), TxHash: testTx},
		"zero amount":     {NFTID: 1, TxHash: testTx},
		"negative amount": {NFTID: 1, AmountEth: decimal.NewFromInt(-1), TxHash: testTx},
		"short tx hash":   {NFTID: 1, AmountEth: decimal.NewFromInt(1), TxHash: "0x1234"},
		"missing tx hash": {NFTID: 1, AmountEth: decimal.NewFromInt(1)},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Distribute(context.Background(), req); !apperrors.Is(err, apperrors.CategoryDataError) {
				t.Fatalf("expected data error, got %v", err)
			}
		})
	}
}

func TestRoyaltyService_Distribute_ReceiptChecks(t *testing.T) {
	cases := []struct {
		name  string
		chain *fakeChain
		cat   apperrors.Category
	}{
		{"reverted", &fakeChain{succeeded: false}, apperrors.CategoryDataError},
		{"not mined", &fakeChain{err: ethereum.ErrReceiptNotFound}, apperrors.CategoryDataError},
		{"rpc down", &fakeChain{err: errors.New("dial tcp: refused")}, apperrors.CategoryDependencyFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// the store mock fails the test if Distribute is reached
			svc, _, _ := newTestService(t, tc.chain)
			if _, err := svc.Distribute(context.Background(), distributeRequest()); !apperrors.Is(err, tc.cat) {
				t.Fatalf("expected %s, got %v", tc.cat, err)
			}
		})
	}
}

func TestRoyaltyService_Distribute_StoreErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		cat  apperrors.Category
	}{
		{"unknown nft", royaltystore.ErrNFTNotFound, apperrors.CategoryResourceNotFound},
		{"replayed tx", royaltystore.ErrDuplicateTx, apperrors.CategoryDataConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, store, _ := newTestService(t, nil)
			store.EXPECT().Distribute(mock.Anything, int64(1), mock.Anything, testTx).
				Return(nil, nil, tc.err).Once()

			if _, err := svc.Distribute(context.Background(), distributeRequest()); !apperrors.Is(err, tc.cat) {
				t.Fatalf("expected %s, got %v", tc.cat, err)
			}
		})
	}

	svc, store, _ := newTestService(t, nil)
	store.EXPECT().Distribute(mock.Anything, int64(1), mock.Anything, testTx).
		Return(nil, nil, errors.New("connection reset")).Once()
	if _, err := svc.Distribute(context.Background(), distributeRequest()); !apperrors.IsInternalError(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestRoyaltyService_PendingDistribution(t *testing.T) {
	svc, store, users := newTestService(t, nil)

	store.EXPECT().ListNFTs(mock.Anything).Return([]*nft.NFT{
		{ID: 1, TokenID: "1", OwnerID: 7, PlayCount: 12, LastRoyaltyPlayCount: 2},
		{ID: 2, TokenID: "2", OwnerID: 7, PlayCount: 4, LastRoyaltyPlayCount: 4},
		{ID: 3, TokenID: "3", OwnerID: 9},
	}, nil).Once()
	users.EXPECT().ListUsersByIDs(mock.Anything, []int64{7, 9}).Return([]*user.User{
		{ID: 7, Email: "seven@example.com", WalletAddress: testWallet},
	}, nil).Once()

	rows, err := svc.PendingDistribution(context.Background())
	if err != nil {
		t.Fatalf("PendingDistribution() failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].PendingPlays != 10 || !rows[0].SuggestedAmount.Equal(decimal.RequireFromString("0.001")) {
		t.Fatalf("unexpected first row: plays=%d amount=%s", rows[0].PendingPlays, rows[0].SuggestedAmount)
	}
	if rows[0].Owner == nil || rows[0].Owner.Email != "seven@example.com" {
		t.Fatalf("expected owner projection, got %+v", rows[0].Owner)
	}
	if rows[1].PendingPlays != 0 || !rows[1].SuggestedAmount.IsZero() {
		t.Fatalf("expected settled row, got %+v", rows[1])
	}
	if rows[2].Owner != nil {
		t.Fatal("expected missing owner to stay nil")
	}
}

func TestRoyaltyService_WithdrawAndProceeds(t *testing.T) {
	svc, store, _ := newTestService(t, nil)

	store.EXPECT().Withdraw(mock.Anything, int64(7)).Return(2, decimal.RequireFromString("1.5"), nil).Once()
	resp, err := svc.Withdraw(context.Background(), 7, testTx)
	if err != nil {
		t.Fatalf("Withdraw() failed: %v", err)
	}
	if resp.Entries != 2 || !resp.Total.Equal(decimal.RequireFromString("1.5")) || resp.TxHash != testTx {
		t.Fatalf("unexpected response %+v", resp)
	}

	for name, tc := range map[string]struct {
		userID int64
		txHash string
	}{
		"missing user": {0, testTx},
		"missing tx":   {7, ""},
		"malformed tx": {7, "0x1234"},
	} {
		if _, err := svc.Withdraw(context.Background(), tc.userID, tc.txHash); !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("%s: expected data error, got %v", name, err)
		}
	}

	store.EXPECT().ListProceeds(mock.Anything, int64(7)).Return([]*royalty.Proceeds{
		{UserID: 7, Amount: decimal.RequireFromString("0.25"), Status: royalty.StatusPending},
		{UserID: 7, Amount: decimal.RequireFromString("1.5"), Status: royalty.StatusWithdrawn},
	}, nil).Once()
	ledger, err := svc.Proceeds(context.Background(), 7)
	if err != nil {
		t.Fatalf("Proceeds() failed: %v", err)
	}
	if len(ledger.Proceeds) != 2 || !ledger.PendingTotal.Equal(decimal.RequireFromString("0.25")) {
		t.Fatalf("unexpected ledger %+v", ledger)
	}
}

func TestRoyaltyService_Withdraw_RequiresConfirmedTx(t *testing.T) {
	cases := map[string]struct {
		chain    *fakeChain
		category apperrors.Category
	}{
		"reverted":    {&fakeChain{succeeded: false}, apperrors.CategoryDataError},
		"not mined":   {&fakeChain{err: ethereum.ErrReceiptNotFound}, apperrors.CategoryDataError},
		"rpc failure": {&fakeChain{err: errors.New("connection reset")}, apperrors.CategoryDependencyFailure},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			// the store mock fails the test if the ledger is touched
			svc, _, _ := newTestService(t, tc.chain)

			_, err := svc.Withdraw(context.Background(), 7, testTx)
			if !apperrors.Is(err, tc.category) {
				t.Fatalf("expected %v, got %v", tc.category, err)
			}
		})
	}

	svc, store, _ := newTestService(t, &fakeChain{succeeded: true})
	store.EXPECT().Withdraw(mock.Anything, int64(7)).Return(1, decimal.NewFromInt(1), nil).Once()
	if _, err := svc.Withdraw(context.Background(), 7, testTx); err != nil {
		t.Fatalf("Withdraw() failed: %v", err)
	}
}

func TestRoyaltyService_PlatformFees(t *testing.T) {
	svc, _, _ := newTestService(t, nil)
	if _, err := svc.PlatformFees(context.Background(), testWallet); !apperrors.Is(err, apperrors.CategoryUnavailable) {
		t.Fatalf("expected unavailable without chain, got %v", err)
	}

	svc, _, _ = newTestService(t, &fakeChain{pending: decimal.RequireFromString("0.42")})
	resp, err := svc.PlatformFees(context.Background(), testWallet)
	if err != nil {
		t.Fatalf("PlatformFees() failed: %v", err)
	}
	if !resp.Amount.Equal(decimal.RequireFromString("0.42")) {
		t.Fatalf("expected 0.42, got %s", resp.Amount)
	}

	if _, err := svc.PlatformFees(context.Background(), "not-an-address"); !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected data error, got %v", err)
	}
}

func TestRoyaltyService_PayoutAddress(t *testing.T) {
	svc, _, users := newTestService(t, nil)

	users.EXPECT().GetUserByID(mock.Anything, int64(1)).Return(&user.User{ID: 1, WalletAddress: testWallet}, nil).Once()
	addr, err := svc.PayoutAddress(context.Background(), 1)
	if err != nil || addr != testWallet {
		t.Fatalf("expected bound wallet, got %q err=%v", addr, err)
	}

	users.EXPECT().GetUserByID(mock.Anything, int64(2)).Return(&user.User{ID: 2}, nil).Once()
	if _, err := svc.PayoutAddress(context.Background(), 2); !apperrors.Is(err, apperrors.CategoryDataError) {
		t.Fatalf("expected data error for unbound admin, got %v", err)
	}
}
