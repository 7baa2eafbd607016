// Package state defines the narrow ledger-state contract the latfi engine
// programs against, plus an in-memory implementation for tests and embedders
// that do not run a full node.
//
// The interface is the slice of a chain state database the engine actually
// touches: per-slot storage under a system address, account balances, event
// logs, and snapshot/revert so a failed operation can be rolled back as a
// unit.
package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// StateDB is implemented by the surrounding ledger's state database and by
// MemDB below.
type StateDB interface {
	GetState(addr common.Address, slot common.Hash) common.Hash
	SetState(addr common.Address, slot common.Hash, value common.Hash)

	GetBalance(addr common.Address) *big.Int
	AddBalance(addr common.Address, amount *big.Int)
	SubBalance(addr common.Address, amount *big.Int)

	AddLog(l *types.Log)

	// Snapshot returns an identifier that can later be passed to
	// RevertToSnapshot to undo every mutation made since.
	Snapshot() int
	RevertToSnapshot(id int)
}
