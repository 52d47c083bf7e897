// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import "math/bits"

// CheckHash reports whether hash satisfies difficulty: whether hash, read as a
// 256-bit little-endian integer, is less than or equal to the maximum 256-bit
// value divided by difficulty. It is computed without ever materialising that
// maximum value, by the same 256x64 multiply-with-carry technique the source
// this was ported from uses, checking the most significant limb first since
// that is the one most likely to reject a random hash outright.
func CheckHash(hash Hash256, difficulty Difficulty) bool {
	if difficulty == 0 {
		return false
	}
	limbs := hash.limbsLE()
	d := uint64(difficulty)

	// bits.Mul64 returns (hi, lo); the algorithm below only ever needs each
	// product's high and low halves, never both halves of the same product past
	// the point it's consumed.
	high, top := bits.Mul64(limbs[3], d)
	if high != 0 {
		return false
	}

	cur, _ := bits.Mul64(limbs[0], d)
	high1, low1 := bits.Mul64(limbs[1], d)
	carry := carryAdd(cur, low1)
	cur = high1
	high2, low2 := bits.Mul64(limbs[2], d)
	carry = carryAddCarry(cur, low2, carry)
	carry = carryAddCarry(high2, top, carry)
	return !carry
}

// carryAdd reports whether a+b overflows a uint64.
func carryAdd(a, b uint64) bool {
	return a+b < a
}

// carryAddCarry reports whether a+b overflows, accounting for an incoming carry c
// that turns a+b == math.MaxUint64 into an overflow too.
func carryAddCarry(a, b uint64, c bool) bool {
	return a+b < a || (c && a+b == ^uint64(0))
}
