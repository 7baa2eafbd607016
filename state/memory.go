package state

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// journalEntry undoes a single state mutation.
type journalEntry func(db *MemDB)

type revision struct {
	id      int
	journal int
}

// MemDB is an in-memory StateDB with journal-based snapshot/revert, following
// the journal/revision scheme of a chain state database. It is not safe for
// concurrent use; operations against it are transaction-atomic, not
// thread-concurrent.
type MemDB struct {
	storage  map[common.Address]map[common.Hash]common.Hash
	balances map[common.Address]*big.Int
	logs     []*types.Log

	journal    []journalEntry
	revisions  []revision
	nextRevLog int
}

// NewMemDB returns an empty in-memory state database.
func NewMemDB() *MemDB {
	return &MemDB{
		storage:  make(map[common.Address]map[common.Hash]common.Hash),
		balances: make(map[common.Address]*big.Int),
	}
}

func (db *MemDB) GetState(addr common.Address, slot common.Hash) common.Hash {
	return db.storage[addr][slot]
}

func (db *MemDB) SetState(addr common.Address, slot common.Hash, value common.Hash) {
	slots, ok := db.storage[addr]
	if !ok {
		slots = make(map[common.Hash]common.Hash)
		db.storage[addr] = slots
	}
	prev := slots[slot]
	db.journal = append(db.journal, func(db *MemDB) {
		db.storage[addr][slot] = prev
	})
	slots[slot] = value
}

func (db *MemDB) GetBalance(addr common.Address) *big.Int {
	if bal, ok := db.balances[addr]; ok {
		return new(big.Int).Set(bal)
	}
	return new(big.Int)
}

func (db *MemDB) AddBalance(addr common.Address, amount *big.Int) {
	if amount == nil || amount.Sign() == 0 {
		return
	}
	db.setBalance(addr, new(big.Int).Add(db.GetBalance(addr), amount))
}

func (db *MemDB) SubBalance(addr common.Address, amount *big.Int) {
	if amount == nil || amount.Sign() == 0 {
		return
	}
	db.setBalance(addr, new(big.Int).Sub(db.GetBalance(addr), amount))
}

func (db *MemDB) setBalance(addr common.Address, bal *big.Int) {
	prev, had := db.balances[addr]
	db.journal = append(db.journal, func(db *MemDB) {
		if had {
			db.balances[addr] = prev
		} else {
			delete(db.balances, addr)
		}
	})
	db.balances[addr] = bal
}

func (db *MemDB) AddLog(l *types.Log) {
	db.journal = append(db.journal, func(db *MemDB) {
		db.logs = db.logs[:len(db.logs)-1]
	})
	db.logs = append(db.logs, l)
}

// Logs returns every log emitted so far, in emission order.
func (db *MemDB) Logs() []*types.Log {
	return db.logs
}

func (db *MemDB) Snapshot() int {
	id := db.nextRevLog
	db.nextRevLog++
	db.revisions = append(db.revisions, revision{id: id, journal: len(db.journal)})
	return id
}

func (db *MemDB) RevertToSnapshot(id int) {
	idx := -1
	for i, rev := range db.revisions {
		if rev.id == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		panic("state: revert to unknown snapshot")
	}
	target := db.revisions[idx].journal
	for i := len(db.journal) - 1; i >= target; i-- {
		db.journal[i](db)
	}
	db.journal = db.journal[:target]
	db.revisions = db.revisions[:idx]
}
