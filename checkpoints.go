// Copyright 2019 cruzbit developers
// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import (
	"sync"

	"github.com/seiflotfy/cuckoofilter"
)

// CheckpointRegistry is a mapping from height to the expected block hash
// at that height. It enforces that honest nodes agree on pinned blocks and bounds
// how deep a reorg below the highest checkpoint is allowed to go.
//
// Writes (Add and the loaders) happen only during node initialisation and are
// serialised by mu. After init, readers may proceed concurrently without
// contending on mu's write path, matching the single-writer/many-reader
// discipline the registry is specified to have.
type CheckpointRegistry struct {
	mu     sync.RWMutex
	points map[Height]Hash256
	maybe  *cuckoo.Filter // negative-lookup fast path ahead of the map probe
}

// NewCheckpointRegistry returns an empty registry.
func NewCheckpointRegistry() *CheckpointRegistry {
	return &CheckpointRegistry{
		points: make(map[Height]Hash256),
		maybe:  cuckoo.NewFilter(1 << 12),
	}
}

// heightKey encodes a height for the cuckoo filter's byte-slice API.
func heightKey(height Height) []byte {
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(height >> (8 * i))
	}
	return b[:]
}

// Add inserts a checkpoint. Adding the same hash at an already-pinned height is
// idempotent; adding a different hash at that height fails with
// ConflictingCheckpointError and leaves the registry unchanged.
func (r *CheckpointRegistry) Add(height Height, hash Hash256) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.points[height]; ok {
		if existing == hash {
			return nil
		}
		return &ConflictingCheckpointError{Height: height, Have: existing, Got: hash}
	}
	r.points[height] = hash
	r.maybe.Insert(heightKey(height))
	return nil
}

// IsPinned reports whether height carries a checkpoint.
func (r *CheckpointRegistry) IsPinned(height Height) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.maybe.Lookup(heightKey(height)) {
		return false
	}
	_, ok := r.points[height]
	return ok
}

// CheckBlock reports whether hash is consistent with any checkpoint pinned at height.
// It returns Matched for pinned-and-equal, NotPinned for unknown heights, and
// CheckpointMismatchError for pinned-and-unequal.
func (r *CheckpointRegistry) CheckBlock(height Height, hash Hash256) (CheckpointVerdict, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.maybe.Lookup(heightKey(height)) {
		if expected, ok := r.points[height]; ok {
			if expected == hash {
				return Matched, nil
			}
			return 0, &CheckpointMismatchError{Height: height, Expected: expected, Got: hash}
		}
	}
	return NotPinned, nil
}

// MaxPinnedHeight returns the highest checkpointed height, or 0 if the registry
// is empty. It is non-decreasing across any sequence of Add calls.
func (r *CheckpointRegistry) MaxPinnedHeight() Height {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var max Height
	for h := range r.points {
		if h > max {
			max = h
		}
	}
	return max
}

// IsAlternativeAllowed reports whether an alternative (non-main-chain) block at
// candidateHeight may still be accepted given the current chain tip height. It
// returns true iff no checkpoint at or below chainTip exists, or the highest such
// checkpoint's height is below candidateHeight. A candidateHeight of 0 is never
// allowed, matching the source's refusal to treat the genesis height as an
// alternative block.
func (r *CheckpointRegistry) IsAlternativeAllowed(chainTip, candidateHeight Height) bool {
	if candidateHeight == 0 {
		return false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		found            bool
		highestAtOrBelow Height
	)
	for h := range r.points {
		if h > chainTip {
			continue
		}
		if !found || h > highestAtOrBelow {
			found = true
			highestAtOrBelow = h
		}
	}
	if !found {
		// chainTip is before the first checkpoint: nothing to bury below.
		return true
	}
	return highestAtOrBelow < candidateHeight
}

// CheckForConflicts compares this registry against other over the intersection of
// their pinned heights, returning ConflictingCheckpointError on the first
// disagreement. It does not merge the two registries.
func (r *CheckpointRegistry) CheckForConflicts(other *CheckpointRegistry) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	for height, hash := range other.points {
		if existing, ok := r.points[height]; ok && existing != hash {
			return &ConflictingCheckpointError{Height: height, Have: existing, Got: hash}
		}
	}
	return nil
}

// Points returns a snapshot copy of the pinned height-to-hash map. It is intended
// for inspection (tooling, tests), not as a mutation path.
func (r *CheckpointRegistry) Points() map[Height]Hash256 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[Height]Hash256, len(r.points))
	for h, hash := range r.points {
		out[h] = hash
	}
	return out
}
