// Copyright 2025 The latfi Authors
// This file is part of the latfi library.
//
// The latfi library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The latfi library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the latfi library. If not, see <http://www.gnu.org/licenses/>.

package params

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// LAT system addresses — fixed, well-known addresses used by the protocol.
var (
	// RewardsAddress stores all reward/staking engine state via storage slots
	// and is the address every engine event is logged against.
	RewardsAddress = common.HexToAddress("0x00000000000000000000000000000000004C4154") // "LAT"
)

// Trade accounting parameters.
const (
	// EarlyEpochTradeMultiplier is the percent reward multiplier applied while
	// the current epoch's volume is still below the pool volume threshold.
	EarlyEpochTradeMultiplier = uint64(150)

	// BaseTradeMultiplier applies once the epoch volume threshold is crossed.
	BaseTradeMultiplier = uint64(100)

	// MakerRebatePercent / TakerFeePercent feed the informational per-account
	// fee accumulators recorded on every trade.
	MakerRebatePercent = uint64(1)
	TakerFeePercent    = uint64(1)
)

// Staking parameters.
const (
	// FirstStakeWeight is the staked weight (percent, base 100) assigned on an
	// account's first ever stake.
	FirstStakeWeight = uint64(100)

	// RestakeWeightStep is added to the staked weight on every subsequent
	// stake. Uncapped, and never decreased — not even on full withdrawal.
	RestakeWeightStep = uint64(10)

	// EarlyWithdrawLockSeconds is the period after stakeStart during which a
	// withdrawal incurs the configured early-withdrawal fee.
	EarlyWithdrawLockSeconds = uint64(7 * 24 * 60 * 60)

	// LiquidityBoostDefault is the per-account liquidity multiplier (percent)
	// assumed when no attestation has been recorded.
	LiquidityBoostDefault = uint64(100)

	// LiquidityBoostAttested is the multiplier set by the authority for an
	// account with a positive attested holding.
	LiquidityBoostAttested = uint64(120)

	// PercentBase is the denominator for every percent-scaled factor above.
	PercentBase = uint64(100)
)

// Defaults for GlobalConfig fields the INITIALIZE payload may leave unset.
var (
	// DefaultEarlyWithdrawFeePercent is deducted from stake withdrawn inside
	// the lock window.
	DefaultEarlyWithdrawFeePercent = uint64(10)

	// DefaultInactivitySlashingDelay: a stake-reward claim arriving more than
	// this many seconds after the position's last update is slashed.
	DefaultInactivitySlashingDelay = uint64(30 * 24 * 60 * 60)

	// DefaultInactivityPenaltyPercent of the computed reward is withheld when
	// the slashing delay has elapsed.
	DefaultInactivityPenaltyPercent = uint64(50)

	// DefaultMaxClaimable caps a single trade-reward claim: 1,000,000 LAT.
	DefaultMaxClaimable = new(big.Int).Mul(big.NewInt(1_000_000), big.NewInt(1e18))
)
