package sysaction

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lat-network/latfi/state"
)

// Context carries the ledger-supplied facts available to a system-action
// handler: the authenticated sender, the value attached to the transaction,
// and the block height/time the operation executes at.
type Context struct {
	From    common.Address
	Value   *big.Int
	Height  uint64
	Time    uint64
	StateDB state.StateDB
}

// Handler is implemented by the rewards engine.
type Handler interface {
	CanHandle(kind ActionKind) bool
	Handle(ctx *Context, sa *SysAction) error
}

// Registry holds registered handlers.
type Registry struct{ handlers []Handler }

// DefaultRegistry is the process-wide handler registry.
var DefaultRegistry = &Registry{}

// Register adds a handler to the registry.
func (r *Registry) Register(h Handler) { r.handlers = append(r.handlers, h) }

// Execute decodes data and dispatches to a registered handler in r.
func (r *Registry) Execute(ctx *Context, data []byte) error {
	sa, err := Decode(data)
	if err != nil {
		return err
	}
	for _, h := range r.handlers {
		if h.CanHandle(sa.Action) {
			return h.Handle(ctx, sa)
		}
	}
	return fmt.Errorf("unknown system action: %q", sa.Action)
}

// Execute dispatches through the default registry.
func Execute(ctx *Context, data []byte) error {
	return DefaultRegistry.Execute(ctx, data)
}
