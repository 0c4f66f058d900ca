package walletsync

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/music-marketplace/pkg/auth"
)

// ErrUnknownAccount is returned when a signer is asked to sign for an account it does not hold.
var ErrUnknownAccount = errors.New("signer does not hold account")

// Signer signs a personal_sign message with the key behind account
type Signer interface {
	SignMessage(ctx context.Context, account, message string) (string, error)
}

// KeySigner signs EIP-191 messages with a local secp256k1 key
type KeySigner struct {
	key     *ecdsa.PrivateKey
	address string
}

// NewKeySigner wraps key
func NewKeySigner(key *ecdsa.PrivateKey) *KeySigner {
	return &KeySigner{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey).Hex(),
	}
}

// KeySignerFromHex parses a hex private key, with or without 0x prefix
func KeySignerFromHex(hexKey string) (*KeySigner, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}
	return NewKeySigner(key), nil
}

// Address returns the checksummed address of the key
func (k *KeySigner) Address() string {
	return k.address
}

// SignMessage returns a 65-byte signature with v in {27, 28}
func (k *KeySigner) SignMessage(_ context.Context, account, message string) (string, error) {
	if !auth.AddressesEqual(account, k.address) {
		return "", fmt.Errorf("%w: %s", ErrUnknownAccount, account)
	}

	sig, err := crypto.Sign(auth.HashEIP191(message), k.key)
	if err != nil {
		return "", fmt.Errorf("signing message: %w", err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(sig), nil
}
