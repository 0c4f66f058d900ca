package walletsync

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/chainsafe/music-marketplace/pkg/auth"
)

func TestFeed_DeliversCurrentAccountOnSubscribe(t *testing.T) {
	feed := NewFeed()
	feed.Publish(otherWallet)

	events, cancel := feed.Subscribe(1)
	defer cancel()

	if ev := <-events; ev.Account != otherWallet || !ev.Connected() {
		t.Fatalf("unexpected first event %+v", ev)
	}
}

func TestFeed_SlowSubscriberKeepsLatest(t *testing.T) {
	feed := NewFeed()
	events, cancel := feed.Subscribe(1)
	defer cancel()

	feed.Publish("0x1111111111111111111111111111111111111111")
	feed.Publish("")
	feed.Publish(otherWallet)

	if ev := <-events; ev.Account != otherWallet {
		t.Fatalf("expected latest account, got %+v", ev)
	}
	if feed.Current() != otherWallet {
		t.Fatalf("unexpected current account %q", feed.Current())
	}
}

func TestFeed_CloseAndCancel(t *testing.T) {
	feed := NewFeed()
	a, cancelA := feed.Subscribe(1)
	b, _ := feed.Subscribe(1)

	cancelA()
	cancelA()
	if _, ok := <-a; ok {
		t.Fatal("expected cancelled subscription to be closed")
	}

	feed.Close()
	if _, ok := <-b; ok {
		t.Fatal("expected subscription to close with the feed")
	}

	late, _ := feed.Subscribe(1)
	if _, ok := <-late; ok {
		t.Fatal("expected subscription on a closed feed to be closed")
	}
	feed.Publish(otherWallet)
}

func TestKeySigner_SignatureRecoversAddress(t *testing.T) {
	priv, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey() failed: %v", err)
	}
	signer := NewKeySigner(priv)

	msg := auth.BindMessage(signer.Address())
	sig, err := signer.SignMessage(context.Background(), signer.Address(), msg)
	if err != nil {
		t.Fatalf("SignMessage() failed: %v", err)
	}

	recovered, err := auth.VerifyEIP191Signature(msg, sig)
	if err != nil {
		t.Fatalf("VerifyEIP191Signature() failed: %v", err)
	}
	if recovered.Hex() != signer.Address() {
		t.Fatalf("expected %s, recovered %s", signer.Address(), recovered.Hex())
	}

	if _, err := signer.SignMessage(context.Background(), otherWallet, msg); !errors.Is(err, ErrUnknownAccount) {
		t.Fatalf("expected ErrUnknownAccount, got %v", err)
	}
}

func TestKeySignerFromHex(t *testing.T) {
	const key = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	signer, err := KeySignerFromHex(key)
	if err != nil {
		t.Fatalf("KeySignerFromHex() failed: %v", err)
	}
	if signer.Address() != "0x2c7536E3605D9C16a7a3D7b1898e529396a65c23" {
		t.Fatalf("unexpected address %s", signer.Address())
	}

	if _, err := KeySignerFromHex("zz"); err == nil {
		t.Fatal("expected invalid key to fail")
	}
}
