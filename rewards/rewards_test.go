package rewards

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/lat-network/latfi/state"
	"github.com/lat-network/latfi/sysaction"
)

var (
	testAuthority = common.HexToAddress("0x00000000000000000000000000000000000000ad")
	testVault     = common.HexToAddress("0x00000000000000000000000000000000000000fe")
	testTrader    = common.HexToAddress("0x1000000000000000000000000000000000000001")
	testStaker    = common.HexToAddress("0x2000000000000000000000000000000000000002")
)

// testConfig uses small round numbers so every expected value in the suite
// can be computed by hand.
func testConfig() InitConfig {
	return InitConfig{
		TradeRewardRate:      big.NewInt(2),
		StakeRewardRate:      big.NewInt(3),
		TradeEpochDuration:   3600,
		EpochDurationHeights: 100,
		PoolVolumeThreshold:  big.NewInt(50000),
		PoolBoostPercent:     150,
		Vault:                testVault,

		EarlyWithdrawFeePercent:  10,
		InactivitySlashingDelay:  1000,
		InactivityPenaltyPercent: 50,
		MaxClaimable:             big.NewInt(1e18),
	}
}

func newInitializedDB(t *testing.T) *state.MemDB {
	t.Helper()
	db := state.NewMemDB()
	require.NoError(t, Initialize(db, testConfig(), 100))
	return db
}

func newCustomDB(t *testing.T, mutate func(*InitConfig)) *state.MemDB {
	t.Helper()
	db := state.NewMemDB()
	cfg := testConfig()
	mutate(&cfg)
	require.NoError(t, Initialize(db, cfg, 100))
	return db
}

// runAction encodes payload as a sysaction and feeds it through the engine's
// Handle path, so dispatch, payload validation and snapshot semantics are all
// exercised.
func runAction(t *testing.T, e *Engine, db *state.MemDB, from common.Address, height, now uint64, kind sysaction.ActionKind, payload interface{}) error {
	t.Helper()
	data, err := sysaction.MakeSysAction(kind, payload)
	require.NoError(t, err)
	sa, err := sysaction.Decode(data)
	require.NoError(t, err)
	return e.Handle(&sysaction.Context{From: from, Height: height, Time: now, StateDB: db}, sa)
}
