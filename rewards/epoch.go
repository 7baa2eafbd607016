package rewards

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/lat-network/latfi/params"
	"github.com/lat-network/latfi/state"
)

// Checkpoint rolls the height-based volume epoch over. When the current
// height reaches lastRolloverHeight + epochDurationHeights, the epoch volume
// accumulator resets to zero and the rollover height advances to the current
// height. Otherwise it is a no-op. Called at the start of every trade
// recording.
func Checkpoint(db state.StateDB, height uint64) {
	last := readUint64(db, globalSlot("lastRolloverHeight"))
	duration := readUint64(db, globalSlot("epochDurationHeights"))
	if height >= last+duration {
		db.SetState(params.RewardsAddress, globalSlot("epochVolume"), common.Hash{})
		writeUint64(db, globalSlot("lastRolloverHeight"), height)
	}
}
