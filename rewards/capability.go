package rewards

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lat-network/latfi/state"
)

// The engine never moves value itself; it invokes these capabilities and
// treats any error as a full-operation abort. Implementations are untrusted:
// the handler holds its reentrancy guard across every call into them.

// TokenMinter mints the reward-bearing asset to an account.
type TokenMinter interface {
	Mint(db state.StateDB, to common.Address, amount *big.Int) error
}

// TokenTransferor moves already-issued asset between accounts. Used only by
// the stake deposit path.
type TokenTransferor interface {
	TransferFrom(db state.StateDB, from, to common.Address, amount *big.Int) error
}

// TreasuryVault releases custodied stake to a recipient.
type TreasuryVault interface {
	Withdraw(db state.StateDB, recipient common.Address, amount *big.Int) error
}

var (
	errInsufficientBalance = errors.New("rewards: insufficient balance for transfer")
	errVaultUnderfunded    = errors.New("rewards: vault balance below withdrawal")
)

// balanceMinter backs the mint capability with the ledger balance table.
type balanceMinter struct{}

func (balanceMinter) Mint(db state.StateDB, to common.Address, amount *big.Int) error {
	db.AddBalance(to, amount)
	return nil
}

// balanceTransferor moves ledger balance with an explicit funds check.
type balanceTransferor struct{}

func (balanceTransferor) TransferFrom(db state.StateDB, from, to common.Address, amount *big.Int) error {
	if db.GetBalance(from).Cmp(amount) < 0 {
		return errInsufficientBalance
	}
	db.SubBalance(from, amount)
	db.AddBalance(to, amount)
	return nil
}

// balanceVault pays withdrawals out of the configured vault address.
type balanceVault struct{}

func (balanceVault) Withdraw(db state.StateDB, recipient common.Address, amount *big.Int) error {
	vault := readAddress(db, globalSlot("vault"))
	if db.GetBalance(vault).Cmp(amount) < 0 {
		return errVaultUnderfunded
	}
	db.SubBalance(vault, amount)
	db.AddBalance(recipient, amount)
	return nil
}

// Default balance-backed capabilities for embedders whose ledger exposes the
// asset directly through account balances.
var (
	DefaultMinter     TokenMinter     = balanceMinter{}
	DefaultTransferor TokenTransferor = balanceTransferor{}
	DefaultVault      TreasuryVault   = balanceVault{}
)
