package rewards

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/metrics"

	"github.com/lat-network/latfi/sysaction"
)

var (
	tradeRecordedMeter = metrics.NewRegisteredMeter("latfi/rewards/trades", nil)
	tradeClaimMeter    = metrics.NewRegisteredMeter("latfi/rewards/claims/trade", nil)
	stakeMeter         = metrics.NewRegisteredMeter("latfi/rewards/stakes", nil)
	stakeClaimMeter    = metrics.NewRegisteredMeter("latfi/rewards/claims/stake", nil)
	withdrawMeter      = metrics.NewRegisteredMeter("latfi/rewards/withdrawals", nil)
)

// Engine is the sysaction handler for the reward/staking protocol. It owns
// the administrative authority identity, the external capabilities, and the
// reentrancy guard; all accounting state lives in the StateDB.
type Engine struct {
	authority common.Address
	minter    TokenMinter
	tokens    TokenTransferor
	vault     TreasuryVault

	// guard serializes guarded entry points for the full duration of an
	// operation, including nested calls into the untrusted capabilities.
	guard sync.Mutex
}

// New builds an Engine bound to the administrative authority. Nil
// capabilities fall back to the balance-backed defaults.
func New(authority common.Address, minter TokenMinter, tokens TokenTransferor, vault TreasuryVault) *Engine {
	if minter == nil {
		minter = DefaultMinter
	}
	if tokens == nil {
		tokens = DefaultTransferor
	}
	if vault == nil {
		vault = DefaultVault
	}
	return &Engine{
		authority: authority,
		minter:    minter,
		tokens:    tokens,
		vault:     vault,
	}
}

// Authority returns the administrative authority the engine was built with.
func (e *Engine) Authority() common.Address {
	return e.authority
}

// CanHandle implements sysaction.Handler.
func (e *Engine) CanHandle(kind sysaction.ActionKind) bool {
	switch kind {
	case sysaction.ActionRecordTrade,
		sysaction.ActionClaimTradeRewards,
		sysaction.ActionStakeLat,
		sysaction.ActionClaimStakeRewards,
		sysaction.ActionWithdrawStake,
		sysaction.ActionInitialize,
		sysaction.ActionSetPaused,
		sysaction.ActionUpdateLiquidityMult:
		return true
	}
	return false
}

// Handle implements sysaction.Handler. The whole operation runs under the
// reentrancy guard and against a snapshot of the StateDB: any error reverts
// every mutation made since entry, so local state and capability balance
// effects commit all-or-nothing.
func (e *Engine) Handle(ctx *sysaction.Context, sa *sysaction.SysAction) error {
	if !e.guard.TryLock() {
		return ErrReentrantCall
	}
	defer e.guard.Unlock()

	snapshot := ctx.StateDB.Snapshot()
	if err := e.dispatch(ctx, sa); err != nil {
		ctx.StateDB.RevertToSnapshot(snapshot)
		return err
	}
	return nil
}

func (e *Engine) dispatch(ctx *sysaction.Context, sa *sysaction.SysAction) error {
	if ctx.Value != nil && ctx.Value.Sign() > 0 {
		return ErrNonZeroValue
	}
	db := ctx.StateDB

	switch sa.Action {
	case sysaction.ActionRecordTrade:
		var p sysaction.RecordTradePayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		volume, err := parseAmount(p.Volume)
		if err != nil {
			return err
		}
		if err := RecordTrade(db, ctx.From, volume, p.IsMaker, ctx.Height, ctx.Time); err != nil {
			return err
		}
		tradeRecordedMeter.Mark(1)
		return nil

	case sysaction.ActionClaimTradeRewards:
		var p sysaction.ClaimTradeRewardsPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		sig, err := hexutil.Decode(p.Signature)
		if err != nil {
			return fmt.Errorf("%w: signature: %v", ErrInvalidPayload, err)
		}
		if err := ClaimTradeRewards(db, ctx.From, p.Nonce, sig, ctx.Time, e.minter); err != nil {
			return err
		}
		tradeClaimMeter.Mark(1)
		return nil

	case sysaction.ActionStakeLat:
		var p sysaction.StakeLatPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		amount, err := parseAmount(p.Amount)
		if err != nil {
			return err
		}
		if err := StakeLat(db, ctx.From, amount, ctx.Time, e.tokens); err != nil {
			return err
		}
		stakeMeter.Mark(1)
		return nil

	case sysaction.ActionClaimStakeRewards:
		var p sysaction.ClaimStakeRewardsPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if err := ClaimStakeRewards(db, ctx.From, p.Nonce, ctx.Time, e.minter); err != nil {
			return err
		}
		stakeClaimMeter.Mark(1)
		return nil

	case sysaction.ActionWithdrawStake:
		var p sysaction.WithdrawStakePayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		amount, err := parseAmount(p.Amount)
		if err != nil {
			return err
		}
		if err := WithdrawStake(db, ctx.From, amount, ctx.Time, e.vault, e.authority); err != nil {
			return err
		}
		withdrawMeter.Mark(1)
		return nil

	case sysaction.ActionInitialize:
		if ctx.From != e.authority {
			return ErrUnauthorized
		}
		var p sysaction.InitializePayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		cfg, err := initConfigFromPayload(&p)
		if err != nil {
			return err
		}
		return Initialize(db, cfg, ctx.Height)

	case sysaction.ActionSetPaused:
		if ctx.From != e.authority {
			return ErrUnauthorized
		}
		var p sysaction.SetPausedPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		return SetPaused(db, p.Paused)

	case sysaction.ActionUpdateLiquidityMult:
		if ctx.From != e.authority {
			return ErrUnauthorized
		}
		var p sysaction.UpdateLiquidityMultPayload
		if err := sysaction.DecodePayload(sa, &p); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		if !common.IsHexAddress(p.Account) {
			return fmt.Errorf("%w: invalid account address: %s", ErrInvalidPayload, p.Account)
		}
		holding, err := parseAmount(p.AttestedHolding)
		if err != nil {
			return err
		}
		return UpdateLiquidityMultiplier(db, common.HexToAddress(p.Account), holding)
	}
	return fmt.Errorf("rewards handler: unsupported action %q", sa.Action)
}

// parseAmount parses a non-negative decimal big-integer payload field.
func parseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: invalid amount %q", ErrInvalidPayload, s)
	}
	return v, nil
}

func initConfigFromPayload(p *sysaction.InitializePayload) (InitConfig, error) {
	tradeRate, err := parseAmount(p.TradeRewardRate)
	if err != nil {
		return InitConfig{}, err
	}
	stakeRate, err := parseAmount(p.StakeRewardRate)
	if err != nil {
		return InitConfig{}, err
	}
	threshold, err := parseAmount(p.PoolVolumeThreshold)
	if err != nil {
		return InitConfig{}, err
	}
	if !common.IsHexAddress(p.Vault) {
		return InitConfig{}, fmt.Errorf("%w: invalid vault address: %s", ErrInvalidPayload, p.Vault)
	}
	cfg := InitConfig{
		TradeRewardRate:      tradeRate,
		StakeRewardRate:      stakeRate,
		TradeEpochDuration:   p.TradeEpochDuration,
		EpochDurationHeights: p.EpochDurationHeights,
		PoolVolumeThreshold:  threshold,
		PoolBoostPercent:     p.PoolBoostPercent,
		Vault:                common.HexToAddress(p.Vault),

		EarlyWithdrawFeePercent:  p.EarlyWithdrawFeePercent,
		InactivitySlashingDelay:  p.InactivitySlashingDelay,
		InactivityPenaltyPercent: p.InactivityPenaltyPercent,
	}
	if p.MaxClaimable != "" {
		if cfg.MaxClaimable, err = parseAmount(p.MaxClaimable); err != nil {
			return InitConfig{}, err
		}
	}
	return cfg, nil
}
