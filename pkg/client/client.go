// Package client is a typed HTTP client for the marketplace API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chainsafe/music-marketplace/pkg/nft"
	"github.com/chainsafe/music-marketplace/pkg/royalty"
	"github.com/chainsafe/music-marketplace/pkg/user"
)

const (
	apiPrefix      = "/api"
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 4 << 10
)

// ErrNoToken is returned by authenticated calls when the token source is empty.
var ErrNoToken = errors.New("no session token")

// APIError is a non-2xx response from the API
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// IsStatus reports whether err is an *APIError with the given status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}

// TokenSource provides the bearer token for authenticated calls
type TokenSource interface {
	Token() string
}

// Client calls the marketplace API
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// New creates a client for baseURL. tokens may be nil for anonymous use.
func New(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

func (c *Client) Register(ctx context.Context, email, password string) (*user.PublicUser, error) {
	var resp user.UserResponse
	req := &user.RegisterRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", false, req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*user.LoginResponse, error) {
	var resp user.LoginResponse
	req := &user.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", false, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the caller's current projection
func (c *Client) Me(ctx context.Context) (*user.PublicUser, error) {
	var resp user.UserResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", true, nil, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// VerifySignature submits a signed binding challenge
func (c *Client) VerifySignature(ctx context.Context, req *user.VerifySignatureRequest) (*user.PublicUser, error) {
	var resp user.UserResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-signature", true, req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) RemoveWallet(ctx context.Context, email string) (*user.PublicUser, error) {
	var resp user.UserResponse
	req := &user.RemoveWalletRequest{Email: email}
	if err := c.do(ctx, http.MethodPost, "/auth/remove-wallet", true, req, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

func (c *Client) MyNFTs(ctx context.Context) (*nft.MyNFTsResponse, error) {
	var resp nft.MyNFTsResponse
	if err := c.do(ctx, http.MethodGet, "/nft/my-nfts", true, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// IncrementPlay records a play and returns the new count
func (c *Client) IncrementPlay(ctx context.Context, tokenID string) (int64, error) {
	var resp nft.IncrementPlayResponse
	req := &nft.IncrementPlayRequest{ID: tokenID}
	if err := c.do(ctx, http.MethodPost, "/nft/increment-play", false, req, &resp); err != nil {
		return 0, err
	}
	return resp.NewPlayCount, nil
}

// UpdateListing writes back a confirmed listing change. nil fields are left untouched.
func (c *Client) UpdateListing(ctx context.Context, tokenID string, price *decimal.Decimal, isListed *bool) error {
	req := &nft.UpdateListingRequest{TokenID: tokenID, Price: price, IsListed: isListed}
	return c.do(ctx, http.MethodPost, "/nft/update-listing", true, req, nil)
}

// Withdraw marks the pending proceeds of userID withdrawn once txHash, the
// withdrawPayments transaction, is mined. Zero userID means the caller.
func (c *Client) Withdraw(ctx context.Context, userID int64, txHash string) (*royalty.WithdrawResponse, error) {
	var resp royalty.WithdrawResponse
	req := &royalty.WithdrawRequest{UserID: userID, TxHash: txHash}
	if err := c.do(ctx, http.MethodPost, "/proceeds/withdraw", true, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Proceeds(ctx context.Context) (*royalty.ProceedsResponse, error) {
	var resp royalty.ProceedsResponse
	if err := c.do(ctx, http.MethodGet, "/proceeds", true, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, authed bool, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token := ""
		if c.tokens != nil {
			token = c.tokens.Token()
		}
		if token == "" {
			return ErrNoToken
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing %s response: %w", path, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var body struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(resp.StatusCode)
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
