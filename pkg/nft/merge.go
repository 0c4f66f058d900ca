package nft

import (
	"math/big"
	"strings"
)

// CanonicalTokenID returns the decimal form of a token id, so "007" and "7"
// compare equal. Values that are not decimal integers are returned trimmed.
func CanonicalTokenID(tokenID string) string {
	raw := strings.TrimSpace(tokenID)
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok || n.Sign() < 0 {
		return raw
	}
	return n.String()
}

// IsTokenID reports whether tokenID is a non-negative decimal integer
func IsTokenID(tokenID string) bool {
	n, ok := new(big.Int).SetString(strings.TrimSpace(tokenID), 10)
	return ok && n.Sign() >= 0
}

// ListingKey is the join key between NFT records and listings
func ListingKey(contract, tokenID string) string {
	return strings.ToLower(strings.TrimSpace(contract)) + "-" + CanonicalTokenID(tokenID)
}

// MergeListings overlays live listing state on NFT records. When a record has
// a matching listing, IsListed, Price and ListingID come from the listing;
// otherwise the record's cached values are kept. The result has one View per
// record, in record order. Neither input is modified.
func MergeListings(records []*NFT, listings []*Listing) []*View {
	byKey := make(map[string]*Listing, len(listings))
	for _, l := range listings {
		if l == nil {
			continue
		}
		key := ListingKey(l.NFTContract, l.TokenID)
		// an active listing beats a stale inactive one for the same token
		if prev, ok := byKey[key]; ok && prev.IsActive && !l.IsActive {
			continue
		}
		byKey[key] = l
	}

	views := make([]*View, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		v := &View{NFT: *rec, ListingSource: SourceCache}

		if l, ok := byKey[ListingKey(rec.ContractAddress, rec.TokenID)]; ok {
			listingID := l.ListingID
			v.IsListed = l.IsActive
			v.Price = l.Price
			v.ListingID = &listingID
			v.ListingSource = SourceChain
		}
		views = append(views, v)
	}
	return views
}
