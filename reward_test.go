// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import "testing"

func TestGetBlockRewardGenesisHeight(t *testing.T) {
	in := RewardInputs{
		Height:           1,
		Version:          1,
		MedianBlockSize:  1_000_000,
		CurrentBlockSize: 1_000_000,
		AlreadyGenerated: 999_999_999,
	}
	reward, err := GetBlockReward(in)
	if err != nil {
		t.Fatalf("GetBlockReward at height 1 returned error: %v", err)
	}
	if reward != GenesisReward {
		t.Fatalf("GetBlockReward at height 1 = %d, want %d", reward, GenesisReward)
	}
}

func TestGetBlockRewardParkingGenesisHeight(t *testing.T) {
	in := RewardInputs{
		Height:           ParkingGenesisRewardHeight,
		Version:          20,
		MedianBlockSize:  300_000,
		CurrentBlockSize: 300_000,
		AlreadyGenerated: 0,
	}
	reward, err := GetBlockReward(in)
	if err != nil {
		t.Fatalf("GetBlockReward at the parking genesis height returned error: %v", err)
	}
	if reward != 3_333_333_333_310_301_990 {
		t.Fatalf("GetBlockReward at the parking genesis height = %d, want 3333333333310301990", reward)
	}
}

func TestGetBlockRewardCommunityAirdropHeights(t *testing.T) {
	for _, height := range []Height{CommunityAirdropRewardA, CommunityAirdropRewardB} {
		in := RewardInputs{Height: height, Version: 10, MedianBlockSize: 60_000, CurrentBlockSize: 60_000}
		reward, err := GetBlockReward(in)
		if err != nil {
			t.Fatalf("GetBlockReward at height %d returned error: %v", height, err)
		}
		if reward != CommunityAirdropReward {
			t.Fatalf("GetBlockReward at height %d = %d, want %d", height, reward, CommunityAirdropReward)
		}
	}
}

// TestGetBlockRewardHeight307100Formula exercises the shift amount used just
// past the v7 fork: emission_speed resolves to 20+1=21 there. Height 307100
// is also inside the polynomial-interval emission window (see DESIGN.md),
// so the expected value is reproduced via that same formula rather than the
// plain (MONEY_SUPPLY >> 21) shift, which only applies once that window ends.
func TestGetBlockRewardHeight307100Formula(t *testing.T) {
	in := RewardInputs{
		Height:           307100,
		Version:          7,
		MedianBlockSize:  60_000,
		CurrentBlockSize: 60_000,
		AlreadyGenerated: 0,
	}
	reward, err := GetBlockReward(in)
	if err != nil {
		t.Fatalf("GetBlockReward at height 307100 returned error: %v", err)
	}

	const intervalNum = 307100 / CoinEmissionHeightInterval
	moneySupplyPct := 0.1888 + float64(intervalNum)*(0.023+float64(intervalNum)*0.0032)
	want := uint64(float64(MoneySupply) * moneySupplyPct)
	want >>= 21
	want = want / 10 * 10
	if reward != want {
		t.Fatalf("GetBlockReward at height 307100 = %d, want %d", reward, want)
	}
}

func TestGetBlockRewardFullRewardZoneNoPenalty(t *testing.T) {
	in := RewardInputs{
		Height:           400_000,
		Version:          16,
		MedianBlockSize:  300_000,
		CurrentBlockSize: 100_000, // well under the median, no penalty
		AlreadyGenerated: 1_000_000_000_000,
	}
	reward, err := GetBlockReward(in)
	if err != nil {
		t.Fatalf("GetBlockReward returned error: %v", err)
	}
	if reward == 0 {
		t.Fatalf("expected a nonzero reward for an under-median block")
	}
}

func TestGetBlockRewardOversizedBlockIsRejected(t *testing.T) {
	in := RewardInputs{
		Height:           400_000,
		Version:          16,
		MedianBlockSize:  300_000,
		CurrentBlockSize: 900_000, // more than twice the median
		AlreadyGenerated: 1_000_000_000_000,
	}
	_, err := GetBlockReward(in)
	if err == nil {
		t.Fatalf("expected a BlockTooLargeError for a block more than twice the median size")
	}
	if _, ok := err.(*BlockTooLargeError); !ok {
		t.Fatalf("expected *BlockTooLargeError, got %T", err)
	}
}

func TestGetBlockRewardQuadraticPenaltyShrinksReward(t *testing.T) {
	baseline := RewardInputs{
		Height:           400_000,
		Version:          16,
		MedianBlockSize:  300_000,
		CurrentBlockSize: 300_000,
		AlreadyGenerated: 1_000_000_000_000,
	}
	full, err := GetBlockReward(baseline)
	if err != nil {
		t.Fatalf("GetBlockReward (baseline) returned error: %v", err)
	}

	penalized := baseline
	penalized.CurrentBlockSize = 500_000 // between median and 2x median: penalized, not rejected
	got, err := GetBlockReward(penalized)
	if err != nil {
		t.Fatalf("GetBlockReward (penalized) returned error: %v", err)
	}
	if got >= full {
		t.Fatalf("a block over the median should receive a reward strictly less than the full reward: got %d, full %d", got, full)
	}
}

func TestGetBlockRewardFinalSubsidyFloor(t *testing.T) {
	in := RewardInputs{
		Height:           2_000_000,
		Version:          23,
		MedianBlockSize:  300_000,
		CurrentBlockSize: 300_000,
		AlreadyGenerated: ElectroneroCoins, // at or beyond the coin supply cap for this era
	}
	reward, err := GetBlockReward(in)
	if err != nil {
		t.Fatalf("GetBlockReward returned error: %v", err)
	}
	if reward != FinalSubsidyPerMinute {
		t.Fatalf("GetBlockReward once the supply cap is reached = %d, want the tail emission floor %d", reward, FinalSubsidyPerMinute)
	}
}
