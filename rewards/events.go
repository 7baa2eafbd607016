package rewards

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lat-network/latfi/params"
	"github.com/lat-network/latfi/state"
)

// Event topics, exported for off-chain indexers. Topic 1 is always the
// account; remaining fields are 32-byte words in Data.
var (
	TradeRecordedTopic        = crypto.Keccak256Hash([]byte("TradeRecorded(address,uint256,bool)"))
	TradeRewardsClaimedTopic  = crypto.Keccak256Hash([]byte("TradeRewardsClaimed(address,uint256)"))
	StakeLatTopic             = crypto.Keccak256Hash([]byte("StakeLat(address,uint256)"))
	StakeRewardsClaimedTopic  = crypto.Keccak256Hash([]byte("StakeRewardsClaimed(address,uint256)"))
	StakeWithdrawnTopic       = crypto.Keccak256Hash([]byte("StakeWithdrawn(address,uint256,uint256)"))
	LiquidityMultUpdatedTopic = crypto.Keccak256Hash([]byte("LiquidityMultiplierUpdated(address,uint256)"))
	PausedTopic               = crypto.Keccak256Hash([]byte("Paused(bool)"))
)

func boolWord(v bool) common.Hash {
	var word common.Hash
	if v {
		word[31] = 1
	}
	return word
}

func emitLog(db state.StateDB, topics []common.Hash, words ...common.Hash) {
	data := make([]byte, 0, len(words)*common.HashLength)
	for _, w := range words {
		data = append(data, w[:]...)
	}
	db.AddLog(&types.Log{
		Address: params.RewardsAddress,
		Topics:  topics,
		Data:    data,
	})
}

func emitTradeRecorded(db state.StateDB, trader common.Address, volume *big.Int, isMaker bool) {
	emitLog(db, []common.Hash{TradeRecordedTopic, trader.Hash()}, common.BigToHash(volume), boolWord(isMaker))
}

func emitTradeRewardsClaimed(db state.StateDB, trader common.Address, reward *big.Int) {
	emitLog(db, []common.Hash{TradeRewardsClaimedTopic, trader.Hash()}, common.BigToHash(reward))
}

func emitStakeLat(db state.StateDB, staker common.Address, amount *big.Int) {
	emitLog(db, []common.Hash{StakeLatTopic, staker.Hash()}, common.BigToHash(amount))
}

func emitStakeRewardsClaimed(db state.StateDB, staker common.Address, reward *big.Int) {
	emitLog(db, []common.Hash{StakeRewardsClaimedTopic, staker.Hash()}, common.BigToHash(reward))
}

func emitStakeWithdrawn(db state.StateDB, staker common.Address, net, penalty *big.Int) {
	emitLog(db, []common.Hash{StakeWithdrawnTopic, staker.Hash()}, common.BigToHash(net), common.BigToHash(penalty))
}

func emitLiquidityMultUpdated(db state.StateDB, account common.Address, multiplier uint64) {
	emitLog(db, []common.Hash{LiquidityMultUpdatedTopic, account.Hash()}, common.BigToHash(new(big.Int).SetUint64(multiplier)))
}

func emitPaused(db state.StateDB, paused bool) {
	emitLog(db, []common.Hash{PausedTopic}, boolWord(paused))
}
