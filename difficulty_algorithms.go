// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import (
	"math/bits"
	"sort"
)

// Window is a contiguous slice of a chain's recent (timestamp, cumulative
// difficulty) history, oldest first, as handed to a retargeting algorithm.
// Both slices must be the same length.
type Window struct {
	Timestamps           []int64
	CumulativeDifficulty []Difficulty
}

func (w Window) len() int { return len(w.Timestamps) }

// truncate returns the last n entries of w, or w unchanged if it is already
// that short or shorter, matching the source's repeated resize-to-window idiom.
func (w Window) truncate(n int) Window {
	if w.len() <= n {
		return w
	}
	return Window{
		Timestamps:           w.Timestamps[w.len()-n:],
		CumulativeDifficulty: w.CumulativeDifficulty[w.len()-n:],
	}
}

// mul128 multiplies two uint64s and returns the 128-bit product as (low, high),
// matching the parameter order of the portable non-x86_64 "mul" helper this was
// ported from; bits.Mul64 already does the carry propagation by hand that
// helper existed for.
func mul128(a, b uint64) (low, high uint64) {
	high, low = bits.Mul64(a, b)
	return low, high
}

// nextDifficultyV1 is the original windowed trimmed-mean retarget: sort recent
// timestamps, drop DifficultyCut outliers from each end, and divide the total
// work done over the remaining span by the elapsed time. Used before the first
// fork.
func nextDifficultyV1(w Window, targetSeconds uint64) Difficulty {
	w = w.truncate(DifficultyWindow)
	length := w.len()
	if length <= 1 {
		return 1
	}

	timestamps := append([]int64(nil), w.Timestamps...)
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	cutBegin, cutEnd := trimmedWindow(length, DifficultyWindow, DifficultyCut)

	timeSpan := uint64(timestamps[cutEnd-1] - timestamps[cutBegin])
	if timeSpan == 0 {
		timeSpan = 1
	}
	totalWork := uint64(w.CumulativeDifficulty[cutEnd-1] - w.CumulativeDifficulty[cutBegin])

	low, _ := mul128(totalWork, targetSeconds)
	return Difficulty((low + timeSpan - 1) / timeSpan)
}

// nextDifficultyV2 is nextDifficultyV1 with an overflow guard: if the 128-bit
// product's high word is nonzero, or the ceiling-division addition itself
// wraps, the retarget degenerates to the minimum difficulty of 1 rather than
// producing a bogus value.
func nextDifficultyV2(w Window, targetSeconds uint64) Difficulty {
	w = w.truncate(DifficultyWindow)
	length := w.len()
	if length <= 1 {
		return 1
	}

	timestamps := append([]int64(nil), w.Timestamps...)
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })

	cutBegin, cutEnd := trimmedWindow(length, DifficultyWindow, DifficultyCut)

	timeSpan := uint64(timestamps[cutEnd-1] - timestamps[cutBegin])
	if timeSpan == 0 {
		timeSpan = 1
	}
	totalWork := uint64(w.CumulativeDifficulty[cutEnd-1] - w.CumulativeDifficulty[cutBegin])

	low, high := mul128(totalWork, targetSeconds)
	if high != 0 || low+timeSpan-1 < low {
		return 1
	}
	return Difficulty((low + timeSpan - 1) / timeSpan)
}

// trimmedWindow computes the [begin, end) slice of a sorted length-n window
// that survives dropping cut outliers from each side, capped at windowSize.
func trimmedWindow(length, windowSize, cut int) (begin, end int) {
	if length <= windowSize-2*cut {
		return 0, length
	}
	begin = (length - (windowSize - 2*cut) + 1) / 2
	end = begin + (windowSize - 2*cut)
	return begin, end
}

// nextDifficultyV3 is Zawy's LWMA (linearly weighted moving average): each of
// the last N solve times is weighted by its recency, clamped to +/-7*target to
// blunt timestamp manipulation, and divided into the harmonic mean difficulty
// over the window. Output is clamped to [LWMAMinDifficulty, LWMAMaxDifficulty].
func nextDifficultyV3(w Window, targetSeconds uint64) Difficulty {
	w = w.truncate(DifficultyWindowV2 + 1)
	n := w.len()
	if n < 6 {
		return 1
	}

	N := DifficultyWindowV2
	if n < N+1 {
		N = n - 1
	}

	const adjust = 0.998
	k := float64(N*(N+1)) / 2

	T := float64(targetSeconds)
	var lwma, sumInverseD float64
	for i := 1; i <= N; i++ {
		solveTime := float64(w.Timestamps[i] - w.Timestamps[i-1])
		if solveTime > T*7 {
			solveTime = T * 7
		} else if solveTime < -7*T {
			solveTime = -7 * T
		}
		difficulty := float64(w.CumulativeDifficulty[i] - w.CumulativeDifficulty[i-1])
		lwma += (solveTime * float64(i)) / k
		sumInverseD += 1 / difficulty
	}

	if roundHalfAwayFromZero(lwma) < T/20 {
		lwma = T / 20
	}

	harmonicMeanD := float64(N) / sumInverseD * adjust
	next := uint64(harmonicMeanD * T / lwma)

	switch {
	case next < uint64(LWMAMinDifficulty):
		return LWMAMinDifficulty
	case next > uint64(LWMAMaxDifficulty):
		return LWMAMaxDifficulty
	default:
		return Difficulty(next)
	}
}

func roundHalfAwayFromZero(f float64) float64 {
	if f >= 0 {
		return float64(int64(f + 0.5))
	}
	return float64(int64(f - 0.5))
}

// nextDifficultyV4 is the weighted-timespan retarget with anti-spam short/long
// run detection: it first checks whether the window's early/middle/late median
// difficulties diverge sharply enough to indicate a hash-rate spike, in which
// case it shrinks the window to the most recent 25 blocks before computing a
// per-block weighted timespan that is further compressed if many of the last 7
// blocks solved unusually fast.
func nextDifficultyV4(w Window, targetSeconds uint64) Difficulty {
	const blocksCountV12 = DifficultyWindowV2 // alias, matches the source's DIFFICULTY_BLOCKS_COUNT_V12

	w = w.truncate(blocksCountV12)

	if w.len() >= blocksCountV12-1 {
		firstEnd := blocksCountV12 - 30
		midEnd := blocksCountV12 - 10
		// The source computes this lower bound as blocksCountV12*-10, a signed
		// literal assigned to an unsigned size_t that wraps to a value far past
		// the slice length and would run out of bounds as written. The evident
		// intent, symmetric with firstEnd/midEnd above, is blocksCountV12-10.
		lastBegin := blocksCountV12 - 10

		if firstEnd <= w.len() && midEnd <= w.len() && lastBegin <= w.len() {
			medianFirst := medianDifficulty(w.CumulativeDifficulty[:firstEnd])
			medianMid := medianDifficulty(w.CumulativeDifficulty[firstEnd:midEnd])
			medianLast := medianDifficulty(w.CumulativeDifficulty[lastBegin:])

			spike := (medianFirst > medianMid*6/5 && medianMid > medianLast*10/9) ||
				(medianMid > medianFirst*6/5 && medianLast > medianMid*10/9)
			if spike {
				w = w.truncate(25)
			}
		}
	}

	length := w.len()
	if length <= 1 {
		return 1
	}

	var weightedTimespans uint64
	var nbShortTsLastNBlocks, lastShortTimeInARow int
	lastTimeWasShort := false

	previousMax := uint64(w.Timestamps[0])
	for i := 1; i < length; i++ {
		maxTimestamp := previousMax
		if uint64(w.Timestamps[i]) > previousMax {
			maxTimestamp = uint64(w.Timestamps[i])
		}

		timespan := maxTimestamp - previousMax
		if timespan == 0 {
			timespan = 1
		} else if timespan > 11*targetSeconds {
			timespan = 11 * targetSeconds
		}

		if i >= length-7 {
			if timespan < 30 {
				nbShortTsLastNBlocks++
				lastTimeWasShort = true
				lastShortTimeInARow++
			} else {
				lastTimeWasShort = false
				lastShortTimeInARow = 0
			}
		}

		weightedTimespans += uint64(i) * timespan
		previousMax = maxTimestamp
	}

	if lastTimeWasShort {
		switch {
		case nbShortTsLastNBlocks >= 7:
			weightedTimespans = weightedTimespans / 2
		case nbShortTsLastNBlocks == 6:
			weightedTimespans = weightedTimespans * 3 / 5
			if lastShortTimeInARow == 6 {
				weightedTimespans = weightedTimespans * 7 / 8
			}
		case nbShortTsLastNBlocks == 5:
			weightedTimespans = weightedTimespans * 4 / 5
			if lastShortTimeInARow == 5 {
				weightedTimespans = weightedTimespans * 7 / 8
			}
		case nbShortTsLastNBlocks == 4:
			weightedTimespans = weightedTimespans * 9 / 10
			if lastShortTimeInARow == 4 {
				weightedTimespans = weightedTimespans * 7 / 8
			}
		case nbShortTsLastNBlocks == 3:
			weightedTimespans = weightedTimespans * 11 / 12
			if lastShortTimeInARow == 3 {
				weightedTimespans = weightedTimespans * 7 / 8
			}
		}
	}

	target := 99 * (uint64((length+1)/2) * targetSeconds) / 100

	minimumTimespan := targetSeconds * uint64(length) / 2
	if weightedTimespans < minimumTimespan {
		weightedTimespans = minimumTimespan
	}

	totalWork := uint64(w.CumulativeDifficulty[length-1] - w.CumulativeDifficulty[0])

	low, high := mul128(totalWork, target)
	if high != 0 {
		return 0
	}
	return Difficulty(low / weightedTimespans)
}

// medianDifficulty returns the median of a non-empty slice without mutating it.
func medianDifficulty(values []Difficulty) Difficulty {
	sorted := append([]Difficulty(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
