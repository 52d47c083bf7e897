// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import "testing"

func TestCheckHashSeedScenarios(t *testing.T) {
	var tiny Hash256
	tiny[0] = 1
	if !CheckHash(tiny, 1) {
		t.Fatalf("CheckHash(00...01, 1) should be true")
	}

	var max Hash256
	for i := range max {
		max[i] = 0xff
	}
	if CheckHash(max, 2) {
		t.Fatalf("CheckHash(FF...FF, 2) should be false")
	}

	var highBit Hash256
	highBit[0] = 0x80
	if !CheckHash(highBit, 2) {
		t.Fatalf("CheckHash(80...00, 2) should be true")
	}
}

func TestCheckHashZeroDifficultyIsAlwaysFalse(t *testing.T) {
	var h Hash256
	if CheckHash(h, 0) {
		t.Fatalf("a zero difficulty should never be satisfied")
	}
}

func TestCheckHashMonotonicInDifficulty(t *testing.T) {
	var h Hash256
	h[16] = 0x01 // a mid-magnitude hash, away from either extreme
	var lastTrue Difficulty
	for d := Difficulty(1); d <= 1<<20; d <<= 1 {
		if CheckHash(h, d) {
			lastTrue = d
		} else if lastTrue != 0 {
			// once a larger difficulty fails, all the larger ones tried since
			// must also fail; CheckHash must not become true again.
			if CheckHash(h, d*2) {
				t.Fatalf("CheckHash regained truth at difficulty %d after failing at %d", d*2, d)
			}
		}
	}
}
