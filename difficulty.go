// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import "fmt"

// NextDifficulty computes the required difficulty for the block following w,
// dispatching to one of four retargeting algorithms by the protocol version
// active on net at height. The algorithm boundaries are themselves consensus
// rules tied to the fork schedule, not a free choice of the caller.
func NextDifficulty(net NetworkType, height Height, w Window) (Difficulty, error) {
	if len(w.Timestamps) != len(w.CumulativeDifficulty) {
		return 0, fmt.Errorf("voltane: mismatched window lengths: %d timestamps, %d cumulative difficulties",
			len(w.Timestamps), len(w.CumulativeDifficulty))
	}

	version := VersionAt(net, height)
	target := targetSecondsFor(version)

	switch {
	case version < 7:
		return nextDifficultyV1(w, target), nil
	case version < 10:
		return nextDifficultyV2(w, target), nil
	case version < 14:
		return nextDifficultyV3(w, target), nil
	default:
		return nextDifficultyV4(w, target), nil
	}
}

// targetSecondsFor returns the block interval target used for difficulty
// retargeting at version. Versions 7 through 13 target 120s; every other
// version, including the pre-fork era and v14 onward, targets 60s.
func targetSecondsFor(version ProtocolVersion) uint64 {
	if version >= 7 && version < 14 {
		return DifficultyTargetV2
	}
	return DifficultyTargetV1
}
