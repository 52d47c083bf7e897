// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import "math/big"

// emissionSpeedFactors are the candidate right-shift amounts used to derive
// base_reward from remaining coin supply, selected by height range below.
// v5 is computed but never selected by any range in the source this was
// ported from; it is kept here, unused, for fidelity to that table.
type emissionSpeedFactors struct {
	factor, v2, v3, v4, v5, v6, v7, v8, v9, v10, v11, v12, v13 int
}

func computeEmissionSpeedFactors(targetMinutes int) emissionSpeedFactors {
	const base = EmissionSpeedFactorPerMinute
	return emissionSpeedFactors{
		factor: base - (targetMinutes - 1),
		v2:     base + (targetMinutes - 1),
		v3:     base + (targetMinutes - 2),
		v4:     base - (targetMinutes - 1),
		v5:     base + targetMinutes,
		v6:     base + (targetMinutes + 1),
		v7:     base + (targetMinutes + 9),
		v8:     base + (targetMinutes + 6),
		v9:     base + (targetMinutes + 9),
		v10:    base + (targetMinutes + 7),
		v11:    base + (targetMinutes + 9),
		v12:    base + (targetMinutes + 8),
		v13:    base - (targetMinutes - 3),
	}
}

// emissionSpeedAt selects which of the candidate shift amounts applies at height,
// by the same mainnet fork-height ladder the coin-supply selection uses.
func emissionSpeedAt(height Height, f emissionSpeedFactors) int {
	switch {
	case height < MainnetHardforkV7Height:
		return f.factor
	case height < MainnetHardforkV10Height:
		return f.v2
	case height < MainnetHardforkV16Height:
		return f.v3
	case height < MainnetHardforkV17Height:
		return f.v4
	case height < MainnetHardforkV18Height:
		return f.v6
	case height < MainnetHardforkV19Height:
		return f.v7
	case height < MainnetHardforkV20Height:
		return f.v8
	case height < MainnetHardforkV21Height:
		return f.v9
	case height < MainnetHardforkV22Height:
		return f.v10
	case height < MainnetHardforkV23Height:
		return f.v11
	case height < MainnetHardforkV23BHeight:
		return f.v12
	default:
		return f.v13
	}
}

// coinSupplyAt returns the coin-supply cap used for emission at height, selected
// first by protocol version (the pre-v20 eras) and then, from v20 on, by height
// against the v20/v23_b boundaries.
func coinSupplyAt(version ProtocolVersion, height Height) uint64 {
	var supplyV1 uint64
	switch {
	case version < 7:
		supplyV1 = MoneySupplyETN
	case version < 10:
		supplyV1 = MoneySupply
	case version < 16:
		supplyV1 = Tokens
	default:
		supplyV1 = ElectroneroTokens
	}

	switch {
	case height < MainnetHardforkV20Height:
		return supplyV1
	case height < MainnetHardforkV23BHeight:
		return ElectroneroPulse
	default:
		return ElectroneroCoins
	}
}

// targetSecondsAt returns the block-interval target used for emission at height:
// 60s before v7 and from v14 on, 120s in between.
func targetSecondsAt(height Height) uint64 {
	if height < MainnetHardforkV7Height || height >= MainnetHardforkV14Height {
		return DifficultyTargetV1
	}
	return DifficultyTargetV2
}

// genesisReward returns the hard-coded reward for height, if any, bypassing
// the continuous emission formula entirely. These are one-time coin
// injections (genesis, community airdrops, the pulse and parking relaunch
// credits) that the chain's history fixes permanently.
func genesisReward(height Height) (uint64, bool) {
	switch height {
	case GenesisRewardHeight:
		return GenesisReward, true
	case CommunityAirdropRewardA, CommunityAirdropRewardB:
		return CommunityAirdropReward, true
	case PulseGenesisRewardHeightA, PulseGenesisRewardHeightB, PulseGenesisRewardHeightC,
		PulseGenesisRewardHeightD, PulseGenesisRewardHeightE:
		return PulseGenesisReward, true
	case ParkingGenesisRewardHeight:
		return ParkingGenesisReward, true
	default:
		return 0, false
	}
}

// getMinBlockSize returns the full-reward-zone threshold for version.
func getMinBlockSize(version ProtocolVersion) uint64 {
	switch {
	case version < 2:
		return FullRewardZoneV1
	case version < 5:
		return FullRewardZoneV2
	default:
		return FullRewardZoneV5
	}
}

// GetBlockReward computes the coinbase reward for a block, given the chain
// state in in. It returns BlockTooLargeError if CurrentBlockSize exceeds twice
// the larger of MedianBlockSize and the version's full reward zone, a hard
// consensus violation rather than a penalized reward.
func GetBlockReward(in RewardInputs) (uint64, error) {
	if reward, ok := genesisReward(in.Height); ok {
		return reward, nil
	}

	coinSupply := coinSupplyAt(in.Version, in.Height)
	target := targetSecondsAt(in.Height)
	targetMinutes := int(target / 60)
	factors := computeEmissionSpeedFactors(targetMinutes)
	emissionSpeed := emissionSpeedAt(in.Height, factors)

	var baseReward uint64
	remaining := coinSupply - in.AlreadyGenerated
	if in.Height > MainnetHardforkV7Height && in.Version >= 7 &&
		in.Height < PeakCoinEmissionHeight+CoinEmissionHeightInterval {
		intervalNum := float64(in.Height / CoinEmissionHeightInterval)
		moneySupplyPct := 0.1888 + intervalNum*(0.023+intervalNum*0.0032)
		scaled := uint64(float64(coinSupply) * moneySupplyPct)
		baseReward = scaled >> uint(emissionSpeed)
	} else {
		baseReward = remaining >> uint(emissionSpeed)
	}

	if in.Version > 7 {
		baseReward = baseReward / 10 * 10
	}
	if in.Version < 2 {
		baseReward = (MoneySupplyETN - in.AlreadyGenerated) >> uint(emissionSpeed)
	}

	if baseReward < FinalSubsidyActivator && in.AlreadyGenerated >= coinSupply {
		baseReward = FinalSubsidyPerMinute
	}

	medianSize := in.MedianBlockSize
	fullRewardZone := getMinBlockSize(in.Version)
	if medianSize < fullRewardZone {
		medianSize = fullRewardZone
	}

	if in.CurrentBlockSize <= medianSize {
		return baseReward, nil
	}
	if in.CurrentBlockSize > 2*medianSize {
		return 0, &BlockTooLargeError{Current: in.CurrentBlockSize, Median: medianSize}
	}

	return penalizedReward(baseReward, medianSize, in.CurrentBlockSize), nil
}

// penalizedReward applies the quadratic full-reward-zone penalty: reward
// shrinks as (2*median - current) * current / median^2, computed over
// math/big to avoid the 128-bit overflow the plain uint64 arithmetic would hit
// for realistic block sizes.
func penalizedReward(baseReward, medianSize, currentBlockSize uint64) uint64 {
	multiplicand := new(big.Int).SetUint64(2*medianSize - currentBlockSize)
	multiplicand.Mul(multiplicand, new(big.Int).SetUint64(currentBlockSize))

	product := new(big.Int).SetUint64(baseReward)
	product.Mul(product, multiplicand)

	divisor := new(big.Int).SetUint64(medianSize)
	product.Div(product, divisor)
	product.Div(product, divisor)

	return product.Uint64()
}
