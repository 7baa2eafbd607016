// Package claimsigner derives and verifies the off-chain claim authorization
// used to gate trade-reward claims.
//
// The binding message is keccak256(trader ‖ nonce) with the nonce encoded as
// a 32-byte big-endian word, wrapped in the standard signed-message prefix
// before recovery. Both steps are pure functions of (trader, nonce) so
// off-chain signers can reproduce the exact bytes.
package claimsigner

import (
	"crypto/ecdsa"
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

const signedMsgPrefix = "\x19Ethereum Signed Message:\n32"

// ClaimMessage returns keccak256(trader ‖ uint256(nonce)), the raw binding
// message before domain separation.
func ClaimMessage(trader common.Address, nonce uint64) common.Hash {
	var word common.Hash
	binary.BigEndian.PutUint64(word[24:], nonce)
	buf := make([]byte, 0, common.AddressLength+common.HashLength)
	buf = append(buf, trader.Bytes()...)
	buf = append(buf, word[:]...)
	return crypto.Keccak256Hash(buf)
}

// ClaimDigest applies the signed-message domain-separation transform to the
// claim message. This is the hash actually signed and recovered.
func ClaimDigest(trader common.Address, nonce uint64) common.Hash {
	msg := ClaimMessage(trader, nonce)
	return crypto.Keccak256Hash([]byte(signedMsgPrefix), msg.Bytes())
}

// Sign produces a 65-byte [R || S || V] claim authorization for
// (trader, nonce) with the given key. V is 0 or 1 as emitted by the signer;
// Verify accepts 27/28 as well.
func Sign(key *ecdsa.PrivateKey, trader common.Address, nonce uint64) ([]byte, error) {
	digest := ClaimDigest(trader, nonce)
	return crypto.Sign(digest.Bytes(), key)
}

// Recover returns the account that signed the claim authorization for
// (trader, nonce).
func Recover(trader common.Address, nonce uint64, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("claimsigner: invalid signature length %d", len(sig))
	}
	// Normalize V: tooling in the wild emits 27/28 where the recovery code
	// expects 0/1.
	normalized := make([]byte, crypto.SignatureLength)
	copy(normalized, sig)
	if normalized[64] >= 27 {
		normalized[64] -= 27
	}
	digest := ClaimDigest(trader, nonce)
	pub, err := crypto.SigToPub(digest.Bytes(), normalized)
	if err != nil {
		return common.Address{}, fmt.Errorf("claimsigner: %v", err)
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Verify reports whether sig is a valid claim authorization produced by
// trader's key for (trader, nonce).
func Verify(trader common.Address, nonce uint64, sig []byte) bool {
	recovered, err := Recover(trader, nonce, sig)
	if err != nil {
		return false
	}
	return recovered == trader
}
