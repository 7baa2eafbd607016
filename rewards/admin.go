package rewards

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/lat-network/latfi/params"
	"github.com/lat-network/latfi/state"
)

// InitConfig carries the one-shot GlobalConfig applied by Initialize.
// Zero-valued optional fields (fee, slashing, cap) fall back to the package
// defaults in params.
type InitConfig struct {
	TradeRewardRate      *big.Int
	StakeRewardRate      *big.Int
	TradeEpochDuration   uint64
	EpochDurationHeights uint64
	PoolVolumeThreshold  *big.Int
	PoolBoostPercent     uint64
	Vault                common.Address

	EarlyWithdrawFeePercent  uint64
	InactivitySlashingDelay  uint64
	InactivityPenaltyPercent uint64
	MaxClaimable             *big.Int
}

// Initialize writes the GlobalConfig and resets the epoch/volume counters.
// It runs exactly once; the initialized flag has no reverse transition.
func Initialize(db state.StateDB, cfg InitConfig, height uint64) error {
	if IsInitialized(db) {
		return ErrAlreadyInitialized
	}

	if cfg.EarlyWithdrawFeePercent == 0 {
		cfg.EarlyWithdrawFeePercent = params.DefaultEarlyWithdrawFeePercent
	}
	if cfg.InactivitySlashingDelay == 0 {
		cfg.InactivitySlashingDelay = params.DefaultInactivitySlashingDelay
	}
	if cfg.InactivityPenaltyPercent == 0 {
		cfg.InactivityPenaltyPercent = params.DefaultInactivityPenaltyPercent
	}
	if cfg.MaxClaimable == nil || cfg.MaxClaimable.Sign() == 0 {
		cfg.MaxClaimable = params.DefaultMaxClaimable
	}

	if err := writeBig(db, globalSlot("tradeRewardRate"), cfg.TradeRewardRate); err != nil {
		return err
	}
	if err := writeBig(db, globalSlot("stakeRewardRate"), cfg.StakeRewardRate); err != nil {
		return err
	}
	writeUint64(db, globalSlot("tradeEpochDuration"), cfg.TradeEpochDuration)
	writeUint64(db, globalSlot("epochDurationHeights"), cfg.EpochDurationHeights)
	if err := writeBig(db, globalSlot("poolVolumeThreshold"), cfg.PoolVolumeThreshold); err != nil {
		return err
	}
	writeUint64(db, globalSlot("poolBoostPercent"), cfg.PoolBoostPercent)
	writeAddress(db, globalSlot("vault"), cfg.Vault)

	writeUint64(db, globalSlot("earlyWithdrawFeePercent"), cfg.EarlyWithdrawFeePercent)
	writeUint64(db, globalSlot("inactivityDelay"), cfg.InactivitySlashingDelay)
	writeUint64(db, globalSlot("inactivityPenalty"), cfg.InactivityPenaltyPercent)
	if err := writeBig(db, globalSlot("maxClaimable"), cfg.MaxClaimable); err != nil {
		return err
	}

	// Fresh epoch bookkeeping.
	writeUint64(db, globalSlot("lastRolloverHeight"), height)
	writeBig(db, globalSlot("epochVolume"), new(big.Int))
	writeBig(db, globalSlot("allTimeVolume"), new(big.Int))
	writeUint64(db, globalSlot("totalTradeCount"), 0)

	writeBool(db, globalSlot("initialized"), true)

	log.Info("rewards: engine initialized", "vault", cfg.Vault, "height", height)
	return nil
}

// SetPaused toggles the pause gate. The toggle itself is exempt from the
// pause gate but still requires an initialized engine.
func SetPaused(db state.StateDB, paused bool) error {
	if !IsInitialized(db) {
		return ErrNotInitialized
	}
	writeBool(db, globalSlot("paused"), paused)
	emitPaused(db, paused)

	log.Info("rewards: pause gate updated", "paused", paused)
	return nil
}

// UpdateLiquidityMultiplier records the authority-attested liquidity boost
// for account: the attested multiplier when the attested holding is positive,
// the default otherwise. The holding is a trust assumption on the authority;
// the engine performs no independent verification.
func UpdateLiquidityMultiplier(db state.StateDB, account common.Address, attestedHolding *big.Int) error {
	if err := requireActive(db); err != nil {
		return err
	}
	multiplier := params.LiquidityBoostDefault
	if attestedHolding != nil && attestedHolding.Sign() > 0 {
		multiplier = params.LiquidityBoostAttested
	}
	writeUint64(db, rewardsSlot(account, "liquidityBoost"), multiplier)
	emitLiquidityMultUpdated(db, account, multiplier)
	return nil
}
