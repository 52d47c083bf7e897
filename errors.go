// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import "fmt"

// ConflictingCheckpointError is returned when a checkpoint is added at a height
// that already has a different hash pinned. It is fatal at load time: the caller
// should refuse to start rather than run with an ambiguous checkpoint set.
type ConflictingCheckpointError struct {
	Height Height
	Have   Hash256
	Got    Hash256
}

func (e *ConflictingCheckpointError) Error() string {
	return fmt.Sprintf("checkpoint at height %d already pinned to %s, conflicts with %s",
		e.Height, e.Have, e.Got)
}

// CheckpointMismatchError is returned when a candidate block's hash does not match
// a pinned checkpoint at its height. The caller may ban the peer that offered it.
type CheckpointMismatchError struct {
	Height   Height
	Expected Hash256
	Got      Hash256
}

func (e *CheckpointMismatchError) Error() string {
	return fmt.Sprintf("block at height %d does not match checkpoint: expected %s, got %s",
		e.Height, e.Expected, e.Got)
}

// BlockTooLargeError is returned when a block's size exceeds twice the effective
// median (the median block size, raised to at least the full reward zone), a
// consensus violation rather than merely a penalized reward. Median holds that
// effective median.
type BlockTooLargeError struct {
	Current uint64
	Median  uint64
}

func (e *BlockTooLargeError) Error() string {
	return fmt.Sprintf("block size %d exceeds twice the median %d", e.Current, e.Median)
}

// CheckpointVerdict is the outcome of CheckpointRegistry.CheckBlock.
type CheckpointVerdict int

const (
	// NotPinned means the height carries no checkpoint.
	NotPinned CheckpointVerdict = iota
	// Matched means the height is pinned and the candidate hash is correct.
	Matched
)

func (v CheckpointVerdict) String() string {
	switch v {
	case Matched:
		return "matched"
	case NotPinned:
		return "not_pinned"
	default:
		return "unknown"
	}
}
