// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

// Coin supply caps selected by height/version in GetBlockReward. Values below v20
// come directly from the source this was ported from; ElectroneroPulse and
// ElectroneroCoins are referenced there but never defined in the excerpt available
// to this port — see DESIGN.md for the recorded Open Question decision on their values.
const (
	MoneySupplyETN    uint64 = 2_100_000_000_000
	MoneySupply       uint64 = 21_000_000_000_000
	Tokens            uint64 = 20_000_000_000_000
	ElectroneroTokens uint64 = 3_610_309_000_000_000
	ElectroneroPulse  uint64 = 21_000_000_000_000_000
	ElectroneroCoins  uint64 = 42_000_000_000_000_000
)

// DifficultyTargetV1 is the block interval (seconds) used before the v7 fork and
// again from v14 onward. DifficultyTargetV2 is used in between.
const (
	DifficultyTargetV1 = 60
	DifficultyTargetV2 = 120
)

// Difficulty window constants shared by the v1/v2 windowed-trimmed-mean algorithms.
const (
	DifficultyWindow   = 720
	DifficultyCut      = 60
	DifficultyLag      = 15
	DifficultyWindowV2 = 70 // also used by v3 (LWMA) and as the pre-truncation size for v4
)

// LWMA (v3) output clamps, retained verbatim as chain-specific floor/ceiling values.
const (
	LWMAMinDifficulty Difficulty = 75_723_142
	LWMAMaxDifficulty Difficulty = 120_307_799
)

// Emission constants.
const (
	EmissionSpeedFactorPerMinute = 20
	FinalSubsidyPerMinute        = 100_000_000
	FinalSubsidyActivator        = 666

	// CoinEmissionHeightInterval and PeakCoinEmissionHeight reproduce the original's
	// preprocessor arithmetic: 6 months / 4 years of blocks at the 120s block
	// interval the original aliases as DIFFICULTY_TARGET for emission purposes.
	CoinEmissionHeightInterval Height = 131490
	PeakCoinEmissionHeight     Height = 1051920
)

// Full reward zone (block-size threshold below which full subsidy is paid) by epoch.
const (
	FullRewardZoneV1 = 20_000  // before the first fork
	FullRewardZoneV2 = 60_000  // v2..v4
	FullRewardZoneV5 = 300_000 // v5 onward
)

// Hard-coded genesis and community-airdrop reward injections, checked before the
// continuous emission formula. Never folded into it — see DESIGN.md.
const (
	GenesisRewardHeight        Height = 1
	GenesisReward              uint64 = 1_260_000_000_000
	CommunityAirdropRewardA    Height = 307003
	CommunityAirdropRewardB    Height = 310790
	CommunityAirdropReward     uint64 = 1_260_000_000_000
	PulseGenesisRewardHeightA  Height = 500060
	PulseGenesisRewardHeightB  Height = 1183410
	PulseGenesisRewardHeightC  Height = 1183411
	PulseGenesisRewardHeightD  Height = 1183412
	PulseGenesisRewardHeightE  Height = 1183413
	PulseGenesisReward         uint64 = 613_090_000_000_000
	ParkingGenesisRewardHeight Height = 1132597
	ParkingGenesisReward       uint64 = 3_333_333_333_310_301_990
)
