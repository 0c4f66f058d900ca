package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	apphttp "github.com/chainsafe/music-marketplace/pkg/app/http"
	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/nft"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type messageResponse struct {
	Message string   `json:"message"`
	NFT     *nft.NFT `json:"nft,omitempty"`
}

// RegisterRoutes registers NFT catalogue and marketplace endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, tokens auth.TokenValidator, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/nft/list", apphttp.HandleErrorWithLogger(h.list, logger))
	r.Get("/nft/creations", apphttp.HandleErrorWithLogger(h.creations, logger))
	r.Get("/nft/{tokenId}", apphttp.HandleErrorWithLogger(h.get, logger))
	r.Get("/nft/{tokenId}/listing", apphttp.HandleErrorWithLogger(h.onChainListing, logger))
	r.Post("/nft/increment-play", apphttp.HandleErrorWithLogger(h.incrementPlay, logger))
	r.Post("/nft/artist-list", apphttp.HandleErrorWithLogger(h.artistList, logger))
	r.Get("/marketplace/listings", apphttp.HandleErrorWithLogger(h.activeListings, logger))

	r.Group(func(r chi.Router) {
		r.Use(auth.Bearer(tokens))
		r.Get("/nft/my-nfts", apphttp.HandleErrorWithLogger(h.myNFTs, logger))
		r.Post("/nft/store", apphttp.HandleErrorWithLogger(h.store, logger))
		r.Post("/nft/update-listing", apphttp.HandleErrorWithLogger(h.updateListing, logger))
		r.Post("/nft/update-owner", apphttp.HandleErrorWithLogger(h.updateOwner, logger))
		r.Post("/nft/update-crowdfunding-status", apphttp.HandleErrorWithLogger(h.updateCrowdfunding, logger))
	})
}

func (h *HTTP) myNFTs(w http.ResponseWriter, r *http.Request) error {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	resp, err := h.service.MyNFTs(r.Context(), p.UserID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	nfts, err := h.service.ListAll(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &nft.NFTsResponse{NFTs: nfts})
	return nil
}

func (h *HTTP) get(w http.ResponseWriter, r *http.Request) error {
	rec, err := h.service.GetByTokenID(r.Context(), chi.URLParam(r, "tokenId"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, rec)
	return nil
}

func (h *HTTP) onChainListing(w http.ResponseWriter, r *http.Request) error {
	listing, err := h.service.OnChainListing(r.Context(), r.URL.Query().Get("contract"), chi.URLParam(r, "tokenId"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, listing)
	return nil
}

func (h *HTTP) creations(w http.ResponseWriter, r *http.Request) error {
	nfts, err := h.service.Creations(r.Context(), r.URL.Query().Get("creator"))
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &nft.NFTsResponse{NFTs: nfts})
	return nil
}

func (h *HTTP) artistList(w http.ResponseWriter, r *http.Request) error {
	var req nft.ArtistListRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	nfts, err := h.service.ArtistCreations(r.Context(), req.TokenIDs)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &nft.NFTsResponse{NFTs: nfts})
	return nil
}

func (h *HTTP) store(w http.ResponseWriter, r *http.Request) error {
	var req nft.StoreRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}
	if req.OwnerID == 0 {
		req.OwnerID = p.UserID
	}
	if req.OwnerID != p.UserID && !isAdmin(p) {
		return apperrors.ForbiddenError(nil, "Cannot store an NFT for another user")
	}

	rec, err := h.service.Store(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, &messageResponse{Message: "NFT stored successfully", NFT: rec})
	return nil
}

func (h *HTTP) updateListing(w http.ResponseWriter, r *http.Request) error {
	var req nft.UpdateListingRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if err := h.requireOwner(r, req.TokenID); err != nil {
		return err
	}

	if err := h.service.UpdateListing(r.Context(), &req); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &messageResponse{Message: "Listing updated successfully"})
	return nil
}

func (h *HTTP) updateOwner(w http.ResponseWriter, r *http.Request) error {
	var req nft.UpdateOwnerRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	// the buyer writes back its own purchase
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}
	if req.NewOwnerID != p.UserID && !isAdmin(p) {
		return apperrors.ForbiddenError(nil, "New owner must be the caller")
	}

	if err := h.service.UpdateOwner(r.Context(), &req); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &messageResponse{Message: "Owner updated successfully"})
	return nil
}

func (h *HTTP) updateCrowdfunding(w http.ResponseWriter, r *http.Request) error {
	var req nft.UpdateCrowdfundingRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if err := h.requireOwner(r, req.TokenID); err != nil {
		return err
	}

	if err := h.service.UpdateCrowdfunding(r.Context(), &req); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &messageResponse{Message: "Crowdfunding status updated successfully"})
	return nil
}

func (h *HTTP) incrementPlay(w http.ResponseWriter, r *http.Request) error {
	var req nft.IncrementPlayRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	count, err := h.service.IncrementPlay(r.Context(), req.ID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &nft.IncrementPlayResponse{Success: true, NewPlayCount: count})
	return nil
}

func (h *HTTP) activeListings(w http.ResponseWriter, r *http.Request) error {
	resp, err := h.service.ActiveListings(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// requireOwner allows the record's owner and admins
func (h *HTTP) requireOwner(r *http.Request, tokenID string) error {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}
	if isAdmin(p) {
		return nil
	}

	rec, err := h.service.GetByTokenID(r.Context(), tokenID)
	if err != nil {
		return err
	}
	if rec.OwnerID != p.UserID {
		return apperrors.ForbiddenError(nil, "Only the owner can change this NFT")
	}
	return nil
}

func isAdmin(p *auth.Principal) bool {
	return p.Role == string(user.RoleAdmin)
}
