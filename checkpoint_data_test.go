// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import "testing"

func TestInitDefaultMainnetGenesisCheckpoint(t *testing.T) {
	r := InitDefault(Main)
	want, err := ParseHash256("4536e1e23ff7179a126a7e61cd9e89ded0e258176f2bc879c999caa155f68cc3")
	if err != nil {
		t.Fatalf("ParseHash256 failed: %v", err)
	}
	verdict, err := r.CheckBlock(1, want)
	if err != nil {
		t.Fatalf("CheckBlock(1, genesis hash) returned error: %v", err)
	}
	if verdict != Matched {
		t.Fatalf("CheckBlock(1, genesis hash) = %v, want Matched", verdict)
	}
}

func TestInitDefaultEveryNetworkIsInternallyConsistent(t *testing.T) {
	for _, net := range []NetworkType{Main, Test, Stage} {
		r := InitDefault(net)
		if r.MaxPinnedHeight() == 0 {
			t.Fatalf("InitDefault(%v) produced an empty registry", net)
		}
		for height, hexHash := range defaultCheckpoints[net] {
			hash, err := ParseHash256(hexHash)
			if err != nil {
				t.Fatalf("InitDefault(%v): ParseHash256(%d) failed: %v", net, height, err)
			}
			verdict, err := r.CheckBlock(height, hash)
			if err != nil || verdict != Matched {
				t.Fatalf("InitDefault(%v): CheckBlock(%d, ...) = (%v, %v), want (Matched, nil)", net, height, verdict, err)
			}
		}
	}
}

// TestInitDefaultTestnetAndStagenetGenesisCheckpoints hardcodes the expected
// testnet/stagenet hashes independently of defaultCheckpoints, so a corrupted
// table entry (e.g. a dropped or shifted hex digit) can't pass by only being
// compared against itself the way the internal-consistency test above does.
func TestInitDefaultTestnetAndStagenetGenesisCheckpoints(t *testing.T) {
	cases := []struct {
		net    NetworkType
		height Height
		hex    string
	}{
		{Test, 0, "48ca7cd3c8de5b6a4d53d2861fbdaedca141553559f9be9520068053cda8430b"},
		{Test, 1000000, "46b690b710a07ea051bc4a6b6842ac37be691089c0f7758cfeec4d5fc0b4a258"},
		{Stage, 0, "76ee3cc98646292206cd3e86f74d88b4dcc1d937088645e9b0cbca84b7ce74eb"},
		{Stage, 10000, "1f8b0ce313f8b9ba9a46108bfd285c45ad7c2176871fd41c3a690d4830ce2fd5"},
	}
	for _, c := range cases {
		want, err := ParseHash256(c.hex)
		if err != nil {
			t.Fatalf("ParseHash256 failed: %v", err)
		}
		r := InitDefault(c.net)
		verdict, err := r.CheckBlock(c.height, want)
		if err != nil {
			t.Fatalf("InitDefault(%v): CheckBlock(%d, ...) returned error: %v", c.net, c.height, err)
		}
		if verdict != Matched {
			t.Fatalf("InitDefault(%v): CheckBlock(%d, ...) = %v, want Matched", c.net, c.height, verdict)
		}
	}
}

func TestInitDefaultFakeNetworkIsEmpty(t *testing.T) {
	r := InitDefault(Fake)
	if r.MaxPinnedHeight() != 0 {
		t.Fatalf("InitDefault(Fake) should carry no built-in checkpoints")
	}
}
