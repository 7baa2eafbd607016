package main

import (
	"fmt"
	"os"

	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"

	"github.com/lat-network/latfi/sysaction"
)

// initConfigTOML mirrors sysaction.InitializePayload for the genesis TOML
// file. Big amounts stay decimal strings so arbitrary-precision values
// survive the round trip.
type initConfigTOML struct {
	TradeRewardRate      string `toml:"trade_reward_rate"`
	StakeRewardRate      string `toml:"stake_reward_rate"`
	TradeEpochDuration   uint64 `toml:"trade_epoch_duration"`
	EpochDurationHeights uint64 `toml:"epoch_duration_heights"`
	PoolVolumeThreshold  string `toml:"pool_volume_threshold"`
	PoolBoostPercent     uint64 `toml:"pool_boost_percent"`
	Vault                string `toml:"vault"`

	EarlyWithdrawFeePercent  uint64 `toml:"early_withdraw_fee_percent"`
	InactivitySlashingDelay  uint64 `toml:"inactivity_slashing_delay"`
	InactivityPenaltyPercent uint64 `toml:"inactivity_penalty_percent"`
	MaxClaimable             string `toml:"max_claimable"`
}

var commandInitAction = &cli.Command{
	Name:      "initaction",
	Usage:     "build the INITIALIZE sysaction from a TOML config",
	ArgsUsage: "<config.toml>",
	Description: `
Read the engine's genesis configuration from a TOML file and print the
INITIALIZE system action JSON to submit to the ledger.
`,
	Action: func(ctx *cli.Context) error {
		raw, err := os.ReadFile(ctx.Args().First())
		if err != nil {
			return fmt.Errorf("failed to read config: %v", err)
		}
		var cfg initConfigTOML
		if err := toml.Unmarshal(raw, &cfg); err != nil {
			return fmt.Errorf("failed to parse config: %v", err)
		}

		data, err := sysaction.MakeSysAction(sysaction.ActionInitialize, sysaction.InitializePayload{
			TradeRewardRate:      cfg.TradeRewardRate,
			StakeRewardRate:      cfg.StakeRewardRate,
			TradeEpochDuration:   cfg.TradeEpochDuration,
			EpochDurationHeights: cfg.EpochDurationHeights,
			PoolVolumeThreshold:  cfg.PoolVolumeThreshold,
			PoolBoostPercent:     cfg.PoolBoostPercent,
			Vault:                cfg.Vault,

			EarlyWithdrawFeePercent:  cfg.EarlyWithdrawFeePercent,
			InactivitySlashingDelay:  cfg.InactivitySlashingDelay,
			InactivityPenaltyPercent: cfg.InactivityPenaltyPercent,
			MaxClaimable:             cfg.MaxClaimable,
		})
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}
