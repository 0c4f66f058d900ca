package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	apphttp "github.com/chainsafe/music-marketplace/pkg/app/http"
	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/royalty"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type pendingResponse struct {
	NFTs []*royalty.PendingNFT `json:"nfts"`
}

// RegisterRoutes registers admin royalty and proceeds endpoints on the given chi router
func RegisterRoutes(r chi.Router, service Service, tokens auth.TokenValidator, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Group(func(r chi.Router) {
		r.Use(auth.Bearer(tokens))
		r.Post("/proceeds/withdraw", apphttp.HandleErrorWithLogger(h.withdraw, logger))
		r.Get("/proceeds", apphttp.HandleErrorWithLogger(h.proceeds, logger))

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireRole(string(user.RoleAdmin)))
			r.Get("/admin/nfts", apphttp.HandleErrorWithLogger(h.pending, logger))
			r.Post("/admin/distribute", apphttp.HandleErrorWithLogger(h.distribute, logger))
			r.Get("/admin/platform-fees", apphttp.HandleErrorWithLogger(h.platformFees, logger))
		})
	})
}

func (h *HTTP) pending(w http.ResponseWriter, r *http.Request) error {
	nfts, err := h.service.PendingDistribution(r.Context())
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &pendingResponse{NFTs: nfts})
	return nil
}

func (h *HTTP) distribute(w http.ResponseWriter, r *http.Request) error {
	var req royalty.DistributeRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Distribute(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) platformFees(w http.ResponseWriter, r *http.Request) error {
	address := r.URL.Query().Get("address")
	if address == "" {
		p, ok := auth.PrincipalFromContext(r.Context())
		if !ok {
			return apperrors.UnAuthorizedError(nil, "Unauthorized")
		}
		var err error
		if address, err = h.service.PayoutAddress(r.Context(), p.UserID); err != nil {
			return err
		}
	}

	resp, err := h.service.PlatformFees(r.Context(), address)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

// withdraw defaults to the caller; withdrawing for another user requires ADMIN.
// The body carries the hash of the mined withdrawPayments transaction.
func (h *HTTP) withdraw(w http.ResponseWriter, r *http.Request) error {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	var req royalty.WithdrawRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if req.UserID == 0 {
		req.UserID = p.UserID
	}
	if req.UserID != p.UserID && p.Role != string(user.RoleAdmin) {
		return apperrors.ForbiddenError(nil, "Cannot withdraw proceeds of another user")
	}

	resp, err := h.service.Withdraw(r.Context(), req.UserID, req.TxHash)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) proceeds(w http.ResponseWriter, r *http.Request) error {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return apperrors.UnAuthorizedError(nil, "Unauthorized")
	}

	resp, err := h.service.Proceeds(r.Context(), p.UserID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}
