package claimsigner

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func TestSignRecoverRoundTrip(t *testing.T) {
	key, err := crypto.GenerateKey()
	if err != nil {
		t.Fatalf("GenerateKey: %v", err)
	}
	trader := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := Sign(key, trader, 7)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != crypto.SignatureLength {
		t.Fatalf("signature length %d", len(sig))
	}
	recovered, err := Recover(trader, 7, sig)
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if recovered != trader {
		t.Fatalf("recovered %s, want %s", recovered.Hex(), trader.Hex())
	}
	if !Verify(trader, 7, sig) {
		t.Fatal("Verify rejected a valid authorization")
	}
}

func TestVerifyRejectsWrongNonce(t *testing.T) {
	key, _ := crypto.GenerateKey()
	trader := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := Sign(key, trader, 3)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if Verify(trader, 4, sig) {
		t.Fatal("signature for nonce 3 verified against nonce 4")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	traderKey, _ := crypto.GenerateKey()
	otherKey, _ := crypto.GenerateKey()
	trader := crypto.PubkeyToAddress(traderKey.PublicKey)

	sig, err := Sign(otherKey, trader, 0)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if Verify(trader, 0, sig) {
		t.Fatal("foreign signature verified")
	}
	// Recovery itself still succeeds, it just names the other key.
	recovered, err := Recover(trader, 0, sig)
	if err != nil {
		t.Fatalf("Recover: %v", err)
	}
	if recovered != crypto.PubkeyToAddress(otherKey.PublicKey) {
		t.Fatalf("recovered %s", recovered.Hex())
	}
}

func TestRecoverNormalizesLegacyV(t *testing.T) {
	key, _ := crypto.GenerateKey()
	trader := crypto.PubkeyToAddress(key.PublicKey)

	sig, err := Sign(key, trader, 12)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	legacy := make([]byte, len(sig))
	copy(legacy, sig)
	legacy[64] += 27
	if !Verify(trader, 12, legacy) {
		t.Fatal("legacy 27/28 recovery id rejected")
	}
	// Normalization must not mutate the caller's slice.
	if legacy[64] != sig[64]+27 {
		t.Fatal("Recover mutated the input signature")
	}
}

func TestRecoverRejectsBadLength(t *testing.T) {
	trader := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	if _, err := Recover(trader, 0, make([]byte, 64)); err == nil {
		t.Fatal("64-byte signature accepted")
	}
	if _, err := Recover(trader, 0, nil); err == nil {
		t.Fatal("nil signature accepted")
	}
}

func TestClaimDigestDeterministic(t *testing.T) {
	trader := common.HexToAddress("0x1111111111111111111111111111111111111111")
	d1 := ClaimDigest(trader, 5)
	d2 := ClaimDigest(trader, 5)
	if d1 != d2 {
		t.Fatal("digest not deterministic")
	}
	if ClaimDigest(trader, 6) == d1 {
		t.Fatal("nonce not bound into digest")
	}
	other := common.HexToAddress("0x2222222222222222222222222222222222222222")
	if ClaimDigest(other, 5) == d1 {
		t.Fatal("trader not bound into digest")
	}
	// The prefix transform must change the hash.
	if ClaimMessage(trader, 5) == d1 {
		t.Fatal("digest equals raw message, prefix not applied")
	}
}
