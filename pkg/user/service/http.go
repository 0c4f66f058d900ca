package service

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/music-marketplace/pkg/app/errors"
	apphttp "github.com/chainsafe/music-marketplace/pkg/app/http"
	"github.com/chainsafe/music-marketplace/pkg/auth"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type walletResponse struct {
	Message string             `json:"message"`
	Wallet  *user.LinkedWallet `json:"wallet,omitempty"`
}

// RegisterRoutes registers auth and wallet-book endpoints on the given chi router.
// limiter may be nil.
func RegisterRoutes(r chi.Router, service Service, tokens auth.TokenValidator, limiter *apphttp.RateLimiter, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Post("/auth/register", apphttp.HandleErrorWithLogger(h.register, logger))
		r.Post("/auth/login", apphttp.HandleErrorWithLogger(h.login, logger))
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Bearer(tokens))
		r.Get("/auth/me", apphttp.HandleErrorWithLogger(h.me, logger))
		r.Post("/auth/verify-signature", apphttp.HandleErrorWithLogger(h.verifySignature, logger))
		r.Post("/auth/remove-wallet", apphttp.HandleErrorWithLogger(h.removeWallet, logger))
		r.Post("/wallet/add", apphttp.HandleErrorWithLogger(h.addWallet, logger))
		r.Post("/wallet/delete", apphttp.HandleErrorWithLogger(h.deleteWallet, logger))
		r.Post("/wallet/get-wallets", apphttp.HandleErrorWithLogger(h.getWallets, logger))
	})
}

func (h *HTTP) register(w http.ResponseWriter, r *http.Request) error {
	var req user.RegisterRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	usr, err := h.service.Register(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusCreated, &user.UserResponse{
		Message: "User registered successfully",
		User:    usr,
	})
	return nil
}

func (h *HTTP) login(w http.ResponseWriter, r *http.Request) error {
	var req user.LoginRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, resp)
	return nil
}

func (h *HTTP) me(w http.ResponseWriter, r *http.Request) error {
	p, _ := auth.PrincipalFromContext(r.Context())

	usr, err := h.service.Me(r.Context(), p.UserID)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &user.UserResponse{User: usr})
	return nil
}

func (h *HTTP) verifySignature(w http.ResponseWriter, r *http.Request) error {
	var req user.VerifySignatureRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	email, err := callerEmail(r, req.Email)
	if err != nil {
		return err
	}
	req.Email = email

	usr, err := h.service.VerifySignature(r.Context(), &req)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &user.UserResponse{
		Message: "Wallet verified and linked successfully",
		User:    usr,
	})
	return nil
}

func (h *HTTP) removeWallet(w http.ResponseWriter, r *http.Request) error {
	var req user.RemoveWalletRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	email, err := callerEmail(r, req.Email)
	if err != nil {
		return err
	}

	usr, err := h.service.RemoveWallet(r.Context(), email)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &user.UserResponse{
		Message: "Wallet removed successfully",
		User:    usr,
	})
	return nil
}

func (h *HTTP) addWallet(w http.ResponseWriter, r *http.Request) error {
	var req user.WalletRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	email, err := callerEmail(r, req.Email)
	if err != nil {
		return err
	}

	wallet, created, err := h.service.AddWallet(r.Context(), email, req.Address)
	if err != nil {
		return err
	}

	if !created {
		apphttp.WriteJSON(w, http.StatusOK, &walletResponse{Message: "Wallet already linked", Wallet: wallet})
		return nil
	}
	apphttp.WriteJSON(w, http.StatusCreated, &walletResponse{Message: "Wallet added successfully", Wallet: wallet})
	return nil
}

func (h *HTTP) deleteWallet(w http.ResponseWriter, r *http.Request) error {
	var req user.WalletRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	email, err := callerEmail(r, req.Email)
	if err != nil {
		return err
	}

	if err := h.service.DeleteWallet(r.Context(), email, req.Address); err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &walletResponse{Message: "Wallet deleted successfully"})
	return nil
}

func (h *HTTP) getWallets(w http.ResponseWriter, r *http.Request) error {
	var req user.WalletsRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	email, err := callerEmail(r, req.Email)
	if err != nil {
		return err
	}

	wallets, err := h.service.ListWallets(r.Context(), email)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &user.WalletsResponse{Wallets: wallets})
	return nil
}

// callerEmail resolves the email a request acts on. Callers may only act on
// their own account; an empty email defaults to the caller's.
func callerEmail(r *http.Request, requested string) (string, error) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		return "", apperrors.UnAuthorizedError(nil, "Authentication required")
	}
	requested = strings.TrimSpace(requested)
	if requested == "" {
		return p.Email, nil
	}
	if !strings.EqualFold(requested, p.Email) {
		return "", apperrors.ForbiddenError(nil, "Email does not match authenticated user")
	}
	return requested, nil
}
