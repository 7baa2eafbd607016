// Package sysaction implements the latfi system action protocol.
//
// System actions are special transactions sent to params.RewardsAddress.
// Their tx.Data field is a JSON-encoded SysAction message. The surrounding
// ledger's state processor calls sysaction.Execute(), which dispatches to the
// registered handler (the rewards engine).
package sysaction

import "encoding/json"

// ActionKind identifies the type of system action.
type ActionKind string

const (
	// Trade accounting
	ActionRecordTrade       ActionKind = "RECORD_TRADE"
	ActionClaimTradeRewards ActionKind = "CLAIM_TRADE_REWARDS"

	// Staking lifecycle
	ActionStakeLat          ActionKind = "STAKE_LAT"
	ActionClaimStakeRewards ActionKind = "CLAIM_STAKE_REWARDS"
	ActionWithdrawStake     ActionKind = "WITHDRAW_STAKE"

	// Administration
	ActionInitialize          ActionKind = "INITIALIZE"
	ActionSetPaused           ActionKind = "SET_PAUSED"
	ActionUpdateLiquidityMult ActionKind = "UPDATE_LIQUIDITY_MULTIPLIER"
)

// SysAction is the top-level envelope stored in tx.Data for system action txs.
type SysAction struct {
	Action  ActionKind      `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// RecordTradePayload is the payload for RECORD_TRADE. Volume is a decimal
// big-integer string.
type RecordTradePayload struct {
	Volume  string `json:"volume"`
	IsMaker bool   `json:"is_maker"`
}

// ClaimTradeRewardsPayload is the payload for CLAIM_TRADE_REWARDS. Signature
// is the 65-byte [R || S || V] claim authorization, hex encoded with 0x
// prefix, produced over (trader, nonce) by the off-chain signer.
type ClaimTradeRewardsPayload struct {
	Nonce     uint64 `json:"nonce"`
	Signature string `json:"signature"`
}

// StakeLatPayload is the payload for STAKE_LAT. Amount is a decimal
// big-integer string.
type StakeLatPayload struct {
	Amount string `json:"amount"`
}

// ClaimStakeRewardsPayload is the payload for CLAIM_STAKE_REWARDS. Stake
// claims are nonce-gated only; no signature field exists on this path.
type ClaimStakeRewardsPayload struct {
	Nonce uint64 `json:"nonce"`
}

// WithdrawStakePayload is the payload for WITHDRAW_STAKE.
type WithdrawStakePayload struct {
	Amount string `json:"amount"`
}

// InitializePayload carries the one-shot GlobalConfig for INITIALIZE.
// Big amounts are decimal strings; zero-valued optional fields fall back to
// the defaults in params.
type InitializePayload struct {
	TradeRewardRate      string `json:"trade_reward_rate"`
	StakeRewardRate      string `json:"stake_reward_rate"`
	TradeEpochDuration   uint64 `json:"trade_epoch_duration"`
	EpochDurationHeights uint64 `json:"epoch_duration_heights"`
	PoolVolumeThreshold  string `json:"pool_volume_threshold"`
	PoolBoostPercent     uint64 `json:"pool_boost_percent"`
	Vault                string `json:"vault"`

	EarlyWithdrawFeePercent  uint64 `json:"early_withdraw_fee_percent,omitempty"`
	InactivitySlashingDelay  uint64 `json:"inactivity_slashing_delay,omitempty"`
	InactivityPenaltyPercent uint64 `json:"inactivity_penalty_percent,omitempty"`
	MaxClaimable             string `json:"max_claimable,omitempty"`
}

// SetPausedPayload is the payload for SET_PAUSED.
type SetPausedPayload struct {
	Paused bool `json:"paused"`
}

// UpdateLiquidityMultPayload is the payload for UPDATE_LIQUIDITY_MULTIPLIER.
// AttestedHolding is a decimal big-integer string attested by the authority;
// the engine performs no independent verification of it.
type UpdateLiquidityMultPayload struct {
	Account         string `json:"account"`
	AttestedHolding string `json:"attested_holding"`
}
