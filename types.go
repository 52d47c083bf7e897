// Copyright 2019 cruzbit developers
// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import (
	"encoding/hex"
	"fmt"
)

// Height is a block chain height. It increases strictly monotonically per chain.
type Height uint64

// Difficulty is the unsigned work target a block's proof-of-work hash must satisfy.
// Zero is reserved as an error sentinel and is never a valid difficulty.
type Difficulty uint64

// ProtocolVersion identifies a consensus-rule era, activated at a fixed height per network.
type ProtocolVersion uint8

// Hash256 is an opaque 32-byte hash, compared byte-exact.
type Hash256 [32]byte

// String returns the lowercase hex encoding of the hash.
func (h Hash256) String() string {
	return hex.EncodeToString(h[:])
}

// ParseHash256 decodes a 64-character hex string into a Hash256.
func ParseHash256(s string) (Hash256, error) {
	var h Hash256
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("invalid hash hex: %w", err)
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("invalid hash length: got %d bytes, want %d", len(b), len(h))
	}
	copy(h[:], b)
	return h, nil
}

// limbsLE returns the hash's four 64-bit limbs read little-endian, limb 0 being the
// least significant 8 bytes. check_hash depends on this exact interpretation regardless
// of host endianness.
func (h Hash256) limbsLE() [4]uint64 {
	var limbs [4]uint64
	for i := 0; i < 4; i++ {
		limbs[i] = uint64(h[i*8]) |
			uint64(h[i*8+1])<<8 |
			uint64(h[i*8+2])<<16 |
			uint64(h[i*8+3])<<24 |
			uint64(h[i*8+4])<<32 |
			uint64(h[i*8+5])<<40 |
			uint64(h[i*8+6])<<48 |
			uint64(h[i*8+7])<<56
	}
	return limbs
}

// RewardInputs bundles the arguments needed to compute a block's coinbase reward.
type RewardInputs struct {
	MedianBlockSize   uint64
	CurrentBlockSize  uint64
	AlreadyGenerated  uint64
	Version           ProtocolVersion
	Height            Height
}
