package ethereum

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// ErrorKind groups chain errors by how they should be surfaced
type ErrorKind int

const (
	// KindGeneric is any failure that is reported as an error
	KindGeneric ErrorKind = iota
	// KindUserRejected means the wallet owner declined the request; treated as a soft cancel
	KindUserRejected
	// KindInsufficientFunds means the account cannot pay for the transaction
	KindInsufficientFunds
)

// userRejectedCode is the EIP-1193 provider error code for a declined request
const userRejectedCode = 4001

// ErrUserRejected is returned by signers when the owner declines to sign.
var ErrUserRejected = errors.New("user rejected the request")

func (k ErrorKind) String() string {
	switch k {
	case KindUserRejected:
		return "user_rejected"
	case KindInsufficientFunds:
		return "insufficient_funds"
	default:
		return "generic"
	}
}

// ClassifyError maps a signer or RPC error to an ErrorKind
func ClassifyError(err error) ErrorKind {
	if err == nil {
		return KindGeneric
	}
	if errors.Is(err, ErrUserRejected) {
		return KindUserRejected
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == userRejectedCode {
		return KindUserRejected
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "action_rejected"),
		strings.Contains(msg, "user rejected"),
		strings.Contains(msg, "user denied"):
		return KindUserRejected
	case strings.Contains(msg, "insufficient funds"):
		return KindInsufficientFunds
	}
	return KindGeneric
}

// UserMessage returns the text shown to a user for a classified error
func UserMessage(err error) string {
	switch ClassifyError(err) {
	case KindUserRejected:
		return "Request cancelled"
	case KindInsufficientFunds:
		return "Insufficient funds to complete this transaction"
	default:
		return "Transaction failed"
	}
}
