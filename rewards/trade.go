package rewards

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/lat-network/latfi/claimsigner"
	"github.com/lat-network/latfi/params"
	"github.com/lat-network/latfi/state"
)

// RecordTrade credits a trade to the caller's accounting state.
//
// The reward multiplier is decided on the post-update epoch volume: while it
// is still below the pool volume threshold the trade earns the early-epoch
// multiplier, afterwards the base multiplier. All divisions floor.
func RecordTrade(db state.StateDB, trader common.Address, volume *big.Int, isMaker bool, height, now uint64) error {
	if err := requireActive(db); err != nil {
		return err
	}
	if volume == nil || volume.Sign() <= 0 {
		return ErrZeroAmount
	}

	Checkpoint(db, height)

	writeUint64(db, globalSlot("totalTradeCount"), readUint64(db, globalSlot("totalTradeCount"))+1)
	epochVolume := new(big.Int).Add(readBig(db, globalSlot("epochVolume")), volume)
	if err := writeBig(db, globalSlot("epochVolume"), epochVolume); err != nil {
		return err
	}
	if err := addBig(db, globalSlot("allTimeVolume"), volume); err != nil {
		return err
	}

	countSlot := rewardsSlot(trader, "tradeCount")
	tradeCount := readUint64(db, countSlot)
	writeUint64(db, countSlot, tradeCount+1)
	if err := addBig(db, rewardsSlot(trader, "tradedVolume"), volume); err != nil {
		return err
	}

	multiplier := params.BaseTradeMultiplier
	if epochVolume.Cmp(readBig(db, globalSlot("poolVolumeThreshold"))) < 0 {
		multiplier = params.EarlyEpochTradeMultiplier
	}
	reward := new(big.Int).Mul(volume, readBig(db, globalSlot("tradeRewardRate")))
	reward.Mul(reward, new(big.Int).SetUint64(multiplier))
	reward.Div(reward, new(big.Int).SetUint64(params.PercentBase))
	if err := addBig(db, rewardsSlot(trader, "pendingTradeReward"), reward); err != nil {
		return err
	}

	if isMaker {
		rebate := new(big.Int).Mul(volume, new(big.Int).SetUint64(params.MakerRebatePercent))
		rebate.Div(rebate, new(big.Int).SetUint64(params.PercentBase))
		if err := addBig(db, rewardsSlot(trader, "makerRebate"), rebate); err != nil {
			return err
		}
	} else {
		fee := new(big.Int).Mul(volume, new(big.Int).SetUint64(params.TakerFeePercent))
		fee.Div(fee, new(big.Int).SetUint64(params.PercentBase))
		if err := addBig(db, rewardsSlot(trader, "takerFee"), fee); err != nil {
			return err
		}
	}

	// First trade starts the claim window.
	if tradeCount == 0 {
		writeUint64(db, rewardsSlot(trader, "lastClaim"), now)
	}

	emitTradeRecorded(db, trader, volume, isMaker)
	return nil
}

// ClaimTradeRewards pays out the caller's pending trade reward through the
// mint capability.
//
// The claim is gated by the account's strictly-increasing nonce and by an
// off-chain signature over (trader, expectedNonce). Pending state is zeroed
// before the external mint call so a reentrant mint cannot re-claim the same
// amount; the handler's snapshot restores it if the mint fails.
func ClaimTradeRewards(db state.StateDB, trader common.Address, expectedNonce uint64, sig []byte, now uint64, minter TokenMinter) error {
	if err := requireActive(db); err != nil {
		return err
	}
	nonceSlot := rewardsSlot(trader, "nonce")
	if readUint64(db, nonceSlot) != expectedNonce {
		return ErrNonceMismatch
	}
	if !claimsigner.Verify(trader, expectedNonce, sig) {
		return ErrBadClaimSignature
	}
	writeUint64(db, nonceSlot, expectedNonce+1)

	lastClaim := readUint64(db, rewardsSlot(trader, "lastClaim"))
	if now < lastClaim+readUint64(db, globalSlot("tradeEpochDuration")) {
		return ErrClaimWindowNotElapsed
	}
	pendingSlot := rewardsSlot(trader, "pendingTradeReward")
	pending := readBig(db, pendingSlot)
	if pending.Sign() == 0 {
		return ErrNothingToClaim
	}
	if pending.Cmp(readBig(db, globalSlot("maxClaimable"))) > 0 {
		return ErrRewardAboveCap
	}

	if err := writeBig(db, pendingSlot, new(big.Int)); err != nil {
		return err
	}
	writeUint64(db, rewardsSlot(trader, "lastClaim"), now)
	if err := minter.Mint(db, trader, pending); err != nil {
		return fmt.Errorf("%w: mint: %v", ErrExternalCall, err)
	}
	emitTradeRewardsClaimed(db, trader, pending)

	log.Trace("rewards: trade rewards claimed", "trader", trader, "reward", pending, "nonce", expectedNonce)
	return nil
}
