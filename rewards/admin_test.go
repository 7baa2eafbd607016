package rewards

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lat-network/latfi/params"
	"github.com/lat-network/latfi/state"
)

func TestInitializeWritesConfig(t *testing.T) {
	db := newInitializedDB(t)
	require.True(t, IsInitialized(db))
	require.False(t, IsPaused(db))

	cfg := ReadConfig(db)
	require.Equal(t, int64(2), cfg.TradeRewardRate.Int64())
	require.Equal(t, int64(3), cfg.StakeRewardRate.Int64())
	require.Equal(t, uint64(3600), cfg.TradeEpochDuration)
	require.Equal(t, uint64(100), cfg.EpochDurationHeights)
	require.Equal(t, int64(50000), cfg.PoolVolumeThreshold.Int64())
	require.Equal(t, uint64(150), cfg.PoolBoostPercent)
	require.Equal(t, testVault, cfg.Vault)
	require.Equal(t, uint64(10), cfg.EarlyWithdrawFeePercent)
	require.Equal(t, uint64(1000), cfg.InactivitySlashingDelay)
	require.Equal(t, uint64(50), cfg.InactivityPenaltyPercent)
	require.Equal(t, int64(1e18), cfg.MaxClaimable.Int64())

	epoch := ReadEpochState(db)
	require.Equal(t, uint64(100), epoch.LastRolloverHeight)
	require.Equal(t, int64(0), epoch.EpochVolume.Int64())
	require.Equal(t, uint64(0), epoch.TotalTradeCount)
}

func TestInitializeRunsOnce(t *testing.T) {
	db := newInitializedDB(t)
	err := Initialize(db, testConfig(), 200)
	require.ErrorIs(t, err, ErrAlreadyInitialized)
	require.Equal(t, uint64(100), ReadEpochState(db).LastRolloverHeight)
}

func TestInitializeAppliesDefaults(t *testing.T) {
	db := newCustomDB(t, func(cfg *InitConfig) {
		cfg.EarlyWithdrawFeePercent = 0
		cfg.InactivitySlashingDelay = 0
		cfg.InactivityPenaltyPercent = 0
		cfg.MaxClaimable = nil
	})

	cfg := ReadConfig(db)
	require.Equal(t, params.DefaultEarlyWithdrawFeePercent, cfg.EarlyWithdrawFeePercent)
	require.Equal(t, params.DefaultInactivitySlashingDelay, cfg.InactivitySlashingDelay)
	require.Equal(t, params.DefaultInactivityPenaltyPercent, cfg.InactivityPenaltyPercent)
	require.Equal(t, 0, cfg.MaxClaimable.Cmp(params.DefaultMaxClaimable))
}

func TestSetPausedRequiresInit(t *testing.T) {
	db := state.NewMemDB()
	require.ErrorIs(t, SetPaused(db, true), ErrNotInitialized)
}

func TestPauseGatesOperations(t *testing.T) {
	db := newInitializedDB(t)
	require.NoError(t, SetPaused(db, true))

	require.ErrorIs(t, RecordTrade(db, testTrader, big.NewInt(100), true, 100, 500), ErrPaused)
	require.ErrorIs(t, StakeLat(db, testStaker, big.NewInt(100), 500, DefaultTransferor), ErrPaused)
	require.ErrorIs(t, ClaimTradeRewards(db, testTrader, 0, nil, 500, DefaultMinter), ErrPaused)
	require.ErrorIs(t, ClaimStakeRewards(db, testStaker, 0, 500, DefaultMinter), ErrPaused)
	require.ErrorIs(t, WithdrawStake(db, testStaker, big.NewInt(100), 500, DefaultVault, testAuthority), ErrPaused)
	require.ErrorIs(t, UpdateLiquidityMultiplier(db, testStaker, big.NewInt(1)), ErrPaused)

	// Unpausing is itself exempt from the gate.
	require.NoError(t, SetPaused(db, false))
	require.NoError(t, RecordTrade(db, testTrader, big.NewInt(100), true, 100, 500))
}

func TestOperationsRequireInit(t *testing.T) {
	db := state.NewMemDB()

	require.ErrorIs(t, RecordTrade(db, testTrader, big.NewInt(100), true, 100, 500), ErrNotInitialized)
	require.ErrorIs(t, StakeLat(db, testStaker, big.NewInt(100), 500, DefaultTransferor), ErrNotInitialized)
	require.ErrorIs(t, ClaimTradeRewards(db, testTrader, 0, nil, 500, DefaultMinter), ErrNotInitialized)
	require.ErrorIs(t, ClaimStakeRewards(db, testStaker, 0, 500, DefaultMinter), ErrNotInitialized)
	require.ErrorIs(t, WithdrawStake(db, testStaker, big.NewInt(100), 500, DefaultVault, testAuthority), ErrNotInitialized)
	require.ErrorIs(t, UpdateLiquidityMultiplier(db, testStaker, big.NewInt(1)), ErrNotInitialized)
}

func TestUpdateLiquidityMultiplier(t *testing.T) {
	db := newInitializedDB(t)
	require.Equal(t, params.LiquidityBoostDefault, GetLiquidityBoost(db, testStaker))

	require.NoError(t, UpdateLiquidityMultiplier(db, testStaker, big.NewInt(42)))
	require.Equal(t, params.LiquidityBoostAttested, GetLiquidityBoost(db, testStaker))

	// A zero attested holding resets the account to the default.
	require.NoError(t, UpdateLiquidityMultiplier(db, testStaker, big.NewInt(0)))
	require.Equal(t, params.LiquidityBoostDefault, GetLiquidityBoost(db, testStaker))

	require.NoError(t, UpdateLiquidityMultiplier(db, testStaker, nil))
	require.Equal(t, params.LiquidityBoostDefault, GetLiquidityBoost(db, testStaker))
}
