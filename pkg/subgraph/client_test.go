package subgraph

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const nftContract = "0x42f2C68D78688B5d790fC0aa8aAa1d6a3EA00A14"

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newTestServer(t *testing.T, handler func(req graphQLRequest) (int, string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		status, body := handler(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestListingsBySeller(t *testing.T) {
	srv := newTestServer(t, func(req graphQLRequest) (int, string) {
		if req.Variables["seller"] != "0xabcdef0000000000000000000000000000000001" {
			t.Errorf("expected lowercased seller variable, got %v", req.Variables["seller"])
		}
		return http.StatusOK, `{"data":{"nftlistedEntities":[
			{"id":"12","tokenId":"005","price":"1500000000000000000","seller":"0xabcdef0000000000000000000000000000000001","isActive":true}
		]}}`
	})

	c := NewClient(srv.URL, nftContract, 0, nil)
	listings, err := c.ListingsBySeller(context.Background(), "0xABCDEF0000000000000000000000000000000001")
	if err != nil {
		t.Fatalf("ListingsBySeller() failed: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(listings))
	}
	l := listings[0]
	if l.TokenID != "5" || l.ListingID != "12" || !l.IsActive {
		t.Fatalf("unexpected listing: %+v", l)
	}
	if !l.Price.Equal(decimal.RequireFromString("1.5")) {
		t.Fatalf("expected 1.5 ETH, got %s", l.Price)
	}
	if l.NFTContract != nftContract {
		t.Fatalf("expected contract %s, got %s", nftContract, l.NFTContract)
	}
}

func TestActiveListings_GraphQLError(t *testing.T) {
	srv := newTestServer(t, func(graphQLRequest) (int, string) {
		return http.StatusOK, `{"errors":[{"message":"indexing_error"}]}`
	})

	c := NewClient(srv.URL, nftContract, 0, nil)
	if _, err := c.ActiveListings(context.Background()); err == nil {
		t.Fatal("expected graphql error to be surfaced")
	}
}

func TestActiveListings_HTTPError(t *testing.T) {
	srv := newTestServer(t, func(graphQLRequest) (int, string) {
		return http.StatusBadGateway, "upstream down"
	})

	c := NewClient(srv.URL, nftContract, 0, nil)
	if _, err := c.ActiveListings(context.Background()); err == nil {
		t.Fatal("expected http error to be surfaced")
	}
}

func TestActiveListings_NullData(t *testing.T) {
	srv := newTestServer(t, func(req graphQLRequest) (int, string) {
		if !strings.Contains(req.Query, "GetActiveListings") {
			t.Errorf("unexpected query %q", req.Query)
		}
		return http.StatusOK, `{"data":null}`
	})

	c := NewClient(srv.URL, nftContract, 0, nil)
	if _, err := c.ActiveListings(context.Background()); err == nil {
		t.Fatal("expected an error for a response without data")
	}
}

func TestMintsByCreator(t *testing.T) {
	srv := newTestServer(t, func(graphQLRequest) (int, string) {
		return http.StatusOK, `{"data":{"nftmintedEntities":[
			{"id":"0xaa-1","tokenId":"7","creator":"0xabc","uri":"ipfs://song","timestamp":"1700000000"}
		]}}`
	})

	c := NewClient(srv.URL, nftContract, 0, nil)
	mints, err := c.MintsByCreator(context.Background(), "0xABC")
	if err != nil {
		t.Fatalf("MintsByCreator() failed: %v", err)
	}
	if len(mints) != 1 || mints[0].TokenID != "7" || mints[0].Timestamp != 1700000000 {
		t.Fatalf("unexpected mints: %+v", mints)
	}
}

func TestNotConfigured(t *testing.T) {
	c := NewClient("", nftContract, 0, nil)
	if _, err := c.ActiveListings(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestWeiToETH(t *testing.T) {
	got, err := WeiToETH("1000000000000000")
	if err != nil {
		t.Fatalf("WeiToETH() failed: %v", err)
	}
	if !got.Equal(decimal.RequireFromString("0.001")) {
		t.Fatalf("expected 0.001, got %s", got)
	}
	if _, err := WeiToETH("1.5"); err == nil {
		t.Fatal("expected error for non-integer wei")
	}
}
