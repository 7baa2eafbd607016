package rewards

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/log"

	"github.com/lat-network/latfi/params"
	"github.com/lat-network/latfi/state"
)

// StakeLat locks amount into the vault for the caller.
//
// The transfer into the vault runs before any state mutation, so a transfer
// failure aborts the call with nothing changed. A first-ever stake (weight
// still zero) records the stake start and the base weight; every subsequent
// stake bumps the weight by the fixed step, uncapped. The weight and stake
// start are never reset afterwards, not even by a full withdrawal.
func StakeLat(db state.StateDB, staker common.Address, amount *big.Int, now uint64, tokens TokenTransferor) error {
	if err := requireActive(db); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}

	vault := readAddress(db, globalSlot("vault"))
	if err := tokens.TransferFrom(db, staker, vault, amount); err != nil {
		return fmt.Errorf("%w: transfer: %v", ErrExternalCall, err)
	}

	weightSlot := rewardsSlot(staker, "stakedWeight")
	weight := readUint64(db, weightSlot)
	if weight == 0 {
		writeUint64(db, weightSlot, params.FirstStakeWeight)
		writeUint64(db, rewardsSlot(staker, "stakeStart"), now)
	} else {
		writeUint64(db, weightSlot, weight+params.RestakeWeightStep)
	}

	if err := addBig(db, rewardsSlot(staker, "stakedAmount"), amount); err != nil {
		return err
	}
	writeUint64(db, rewardsSlot(staker, "lastUpdated"), now)

	emitStakeLat(db, staker, amount)
	return nil
}

// stakeRewardAmount computes the time-weighted, boosted staking reward for
// the elapsed period, before inactivity slashing.
//
// Effective rate: base stake reward rate, scaled by the pool boost percent
// when the all-time pool volume exceeds the threshold, then by the caller's
// liquidity boost percent — each scaling floor-divided by 100 in sequence.
// Raw reward = stakedAmount * effectiveRate * elapsed, then floor-scaled by
// the staked weight.
func stakeRewardAmount(db state.StateDB, staker common.Address, staked *big.Int, elapsed uint64) *big.Int {
	percentBase := new(big.Int).SetUint64(params.PercentBase)

	rate := readBig(db, globalSlot("stakeRewardRate"))
	if readBig(db, globalSlot("allTimeVolume")).Cmp(readBig(db, globalSlot("poolVolumeThreshold"))) > 0 {
		rate = new(big.Int).Mul(rate, new(big.Int).SetUint64(readUint64(db, globalSlot("poolBoostPercent"))))
		rate.Div(rate, percentBase)
	}
	boost := GetLiquidityBoost(db, staker)
	rate = new(big.Int).Mul(rate, new(big.Int).SetUint64(boost))
	rate.Div(rate, percentBase)

	reward := new(big.Int).Mul(staked, rate)
	reward.Mul(reward, new(big.Int).SetUint64(elapsed))
	reward.Mul(reward, new(big.Int).SetUint64(GetStakedWeight(db, staker)))
	reward.Div(reward, percentBase)
	return reward
}

// ClaimStakeRewards accrues and mints the caller's staking reward for the
// time elapsed since the position was last updated.
//
// The claim is gated by the same per-account nonce sequence as trade claims
// but intentionally requires no signature. A claim arriving after the
// inactivity slashing delay forfeits the configured percentage of the reward.
func ClaimStakeRewards(db state.StateDB, staker common.Address, expectedNonce uint64, now uint64, minter TokenMinter) error {
	if err := requireActive(db); err != nil {
		return err
	}
	nonceSlot := rewardsSlot(staker, "nonce")
	if readUint64(db, nonceSlot) != expectedNonce {
		return ErrNonceMismatch
	}
	writeUint64(db, nonceSlot, expectedNonce+1)

	staked := readBig(db, rewardsSlot(staker, "stakedAmount"))
	if staked.Sign() == 0 {
		return ErrNoStake
	}
	lastUpdated := readUint64(db, rewardsSlot(staker, "lastUpdated"))
	if now <= lastUpdated {
		return ErrZeroElapsed
	}
	elapsed := now - lastUpdated

	reward := stakeRewardAmount(db, staker, staked, elapsed)
	if now > lastUpdated+readUint64(db, globalSlot("inactivityDelay")) {
		penalty := new(big.Int).Mul(reward, new(big.Int).SetUint64(readUint64(db, globalSlot("inactivityPenalty"))))
		penalty.Div(penalty, new(big.Int).SetUint64(params.PercentBase))
		reward.Sub(reward, penalty)
	}
	if reward.BitLen() > 256 {
		return ErrAmountOverflow
	}

	writeUint64(db, rewardsSlot(staker, "lastUpdated"), now)
	if err := minter.Mint(db, staker, reward); err != nil {
		return fmt.Errorf("%w: mint: %v", ErrExternalCall, err)
	}
	emitStakeRewardsClaimed(db, staker, reward)

	log.Trace("rewards: stake rewards claimed", "staker", staker, "reward", reward, "elapsed", elapsed)
	return nil
}

// WithdrawStake releases amount from the caller's stake through the vault.
//
// Withdrawing strictly before stakeStart + the lock period costs the
// configured early-withdrawal fee, floor-divided; the fee is paid from the
// vault to the administrative authority. The staked weight and stake start
// are left untouched, even when the balance reaches zero.
func WithdrawStake(db state.StateDB, staker common.Address, amount *big.Int, now uint64, vault TreasuryVault, authority common.Address) error {
	if err := requireActive(db); err != nil {
		return err
	}
	if amount == nil || amount.Sign() <= 0 {
		return ErrZeroAmount
	}
	stakedSlot := rewardsSlot(staker, "stakedAmount")
	staked := readBig(db, stakedSlot)
	if amount.Cmp(staked) > 0 {
		return ErrInsufficientStake
	}

	penalty := new(big.Int)
	if now < readUint64(db, rewardsSlot(staker, "stakeStart"))+params.EarlyWithdrawLockSeconds {
		penalty.Mul(amount, new(big.Int).SetUint64(readUint64(db, globalSlot("earlyWithdrawFeePercent"))))
		penalty.Div(penalty, new(big.Int).SetUint64(params.PercentBase))
	}
	net := new(big.Int).Sub(amount, penalty)

	if err := writeBig(db, stakedSlot, new(big.Int).Sub(staked, amount)); err != nil {
		return err
	}
	if err := vault.Withdraw(db, staker, net); err != nil {
		return fmt.Errorf("%w: vault withdraw: %v", ErrExternalCall, err)
	}
	if penalty.Sign() > 0 {
		if err := vault.Withdraw(db, authority, penalty); err != nil {
			return fmt.Errorf("%w: vault penalty withdraw: %v", ErrExternalCall, err)
		}
	}
	emitStakeWithdrawn(db, staker, net, penalty)

	log.Trace("rewards: stake withdrawn", "staker", staker, "net", net, "penalty", penalty)
	return nil
}
