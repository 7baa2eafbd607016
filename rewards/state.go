package rewards

import (
	"encoding/binary"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lat-network/latfi/params"
	"github.com/lat-network/latfi/state"
)

// --- slot derivation ---

// Global fields are keyed by the zero address; per-account fields by the
// account itself. All state lives under params.RewardsAddress.

var zeroAddr = common.Address{}

func rewardsSlot(addr common.Address, field string) common.Hash {
	key := append(addr.Bytes(), []byte(field)...)
	return common.BytesToHash(crypto.Keccak256(key))
}

func globalSlot(field string) common.Hash {
	return rewardsSlot(zeroAddr, field)
}

// --- word helpers ---

func readBool(db state.StateDB, slot common.Hash) bool {
	return db.GetState(params.RewardsAddress, slot)[31] != 0
}

func writeBool(db state.StateDB, slot common.Hash, v bool) {
	var word common.Hash
	if v {
		word[31] = 1
	}
	db.SetState(params.RewardsAddress, slot, word)
}

func readUint64(db state.StateDB, slot common.Hash) uint64 {
	raw := db.GetState(params.RewardsAddress, slot)
	return binary.BigEndian.Uint64(raw[24:])
}

func writeUint64(db state.StateDB, slot common.Hash, n uint64) {
	var word common.Hash
	binary.BigEndian.PutUint64(word[24:], n)
	db.SetState(params.RewardsAddress, slot, word)
}

func readBig(db state.StateDB, slot common.Hash) *big.Int {
	return db.GetState(params.RewardsAddress, slot).Big()
}

// writeBig stores v in a 32-byte word. A negative value or one wider than
// 256 bits cannot be represented; the caller must abort the operation.
func writeBig(db state.StateDB, slot common.Hash, v *big.Int) error {
	if v.Sign() < 0 || v.BitLen() > 256 {
		return ErrAmountOverflow
	}
	db.SetState(params.RewardsAddress, slot, common.BigToHash(v))
	return nil
}

func addBig(db state.StateDB, slot common.Hash, delta *big.Int) error {
	return writeBig(db, slot, new(big.Int).Add(readBig(db, slot), delta))
}

func readAddress(db state.StateDB, slot common.Hash) common.Address {
	raw := db.GetState(params.RewardsAddress, slot)
	return common.BytesToAddress(raw.Bytes())
}

func writeAddress(db state.StateDB, slot common.Hash, addr common.Address) {
	db.SetState(params.RewardsAddress, slot, addr.Hash())
}

// --- lifecycle flags ---

// IsInitialized reports whether INITIALIZE has run.
func IsInitialized(db state.StateDB) bool {
	return readBool(db, globalSlot("initialized"))
}

// IsPaused reports whether the engine is paused.
func IsPaused(db state.StateDB) bool {
	return readBool(db, globalSlot("paused"))
}

// requireActive gates every mutating operation except INITIALIZE and
// SET_PAUSED itself.
func requireActive(db state.StateDB) error {
	if !IsInitialized(db) {
		return ErrNotInitialized
	}
	if IsPaused(db) {
		return ErrPaused
	}
	return nil
}

// --- config views ---

// Config is the in-memory view of the one-shot GlobalConfig.
type Config struct {
	TradeRewardRate      *big.Int
	StakeRewardRate      *big.Int
	TradeEpochDuration   uint64
	EpochDurationHeights uint64
	PoolVolumeThreshold  *big.Int
	PoolBoostPercent     uint64

	EarlyWithdrawFeePercent  uint64
	InactivitySlashingDelay  uint64
	InactivityPenaltyPercent uint64
	MaxClaimable             *big.Int
	Vault                    common.Address
}

// ReadConfig reads the complete GlobalConfig from the state.
func ReadConfig(db state.StateDB) Config {
	return Config{
		TradeRewardRate:      readBig(db, globalSlot("tradeRewardRate")),
		StakeRewardRate:      readBig(db, globalSlot("stakeRewardRate")),
		TradeEpochDuration:   readUint64(db, globalSlot("tradeEpochDuration")),
		EpochDurationHeights: readUint64(db, globalSlot("epochDurationHeights")),
		PoolVolumeThreshold:  readBig(db, globalSlot("poolVolumeThreshold")),
		PoolBoostPercent:     readUint64(db, globalSlot("poolBoostPercent")),

		EarlyWithdrawFeePercent:  readUint64(db, globalSlot("earlyWithdrawFeePercent")),
		InactivitySlashingDelay:  readUint64(db, globalSlot("inactivityDelay")),
		InactivityPenaltyPercent: readUint64(db, globalSlot("inactivityPenalty")),
		MaxClaimable:             readBig(db, globalSlot("maxClaimable")),
		Vault:                    readAddress(db, globalSlot("vault")),
	}
}

// --- epoch / pool state views ---

// EpochState is the in-memory view of the volume-epoch bookkeeping.
type EpochState struct {
	LastRolloverHeight uint64
	EpochVolume        *big.Int
	AllTimeVolume      *big.Int
	TotalTradeCount    uint64
}

// ReadEpochState reads the epoch bookkeeping from the state.
func ReadEpochState(db state.StateDB) EpochState {
	return EpochState{
		LastRolloverHeight: readUint64(db, globalSlot("lastRolloverHeight")),
		EpochVolume:        readBig(db, globalSlot("epochVolume")),
		AllTimeVolume:      readBig(db, globalSlot("allTimeVolume")),
		TotalTradeCount:    readUint64(db, globalSlot("totalTradeCount")),
	}
}

// --- per-account views ---

// TraderStats is the in-memory view of one account's trade accounting state.
type TraderStats struct {
	TradeCount    uint64
	Volume        *big.Int
	PendingReward *big.Int
	LastClaim     uint64
}

// ReadTraderStats reads the trade stats for trader.
func ReadTraderStats(db state.StateDB, trader common.Address) TraderStats {
	return TraderStats{
		TradeCount:    readUint64(db, rewardsSlot(trader, "tradeCount")),
		Volume:        readBig(db, rewardsSlot(trader, "tradedVolume")),
		PendingReward: readBig(db, rewardsSlot(trader, "pendingTradeReward")),
		LastClaim:     readUint64(db, rewardsSlot(trader, "lastClaim")),
	}
}

// StakePosition is the in-memory view of one account's stake.
type StakePosition struct {
	Amount      *big.Int
	LastUpdated uint64
	StakeStart  uint64
}

// ReadStakePosition reads the stake position for account.
func ReadStakePosition(db state.StateDB, account common.Address) StakePosition {
	return StakePosition{
		Amount:      readBig(db, rewardsSlot(account, "stakedAmount")),
		LastUpdated: readUint64(db, rewardsSlot(account, "lastUpdated")),
		StakeStart:  readUint64(db, rewardsSlot(account, "stakeStart")),
	}
}

// GetStakedWeight returns the account's staked weight (percent, base 100).
// Zero means the account has never staked.
func GetStakedWeight(db state.StateDB, account common.Address) uint64 {
	return readUint64(db, rewardsSlot(account, "stakedWeight"))
}

// GetLiquidityBoost returns the account's liquidity boost multiplier
// (percent), defaulting to params.LiquidityBoostDefault when unset.
func GetLiquidityBoost(db state.StateDB, account common.Address) uint64 {
	if boost := readUint64(db, rewardsSlot(account, "liquidityBoost")); boost != 0 {
		return boost
	}
	return params.LiquidityBoostDefault
}

// GetNonce returns the account's claim nonce. One strictly-increasing
// sequence serves both claim kinds.
func GetNonce(db state.StateDB, account common.Address) uint64 {
	return readUint64(db, rewardsSlot(account, "nonce"))
}

// GetMakerRebate returns the informational maker rebate accumulator.
func GetMakerRebate(db state.StateDB, account common.Address) *big.Int {
	return readBig(db, rewardsSlot(account, "makerRebate"))
}

// GetTakerFee returns the informational taker fee accumulator.
func GetTakerFee(db state.StateDB, account common.Address) *big.Int {
	return readBig(db, rewardsSlot(account, "takerFee"))
}
