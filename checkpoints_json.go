// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import (
	"fmt"
	"os"
	"strconv"

	"github.com/buger/jsonparser"
)

// LoadFromJSON reads a checkpoint file of the form:
//
//	{"checkpoints": [{"height": 1, "hash": "4536e1..."}, ...]}
//
// and adds every entry to r. A missing file is not an error: operators are not
// required to supply one. A file that cannot be read or parsed as JSON is. An
// entry with a missing height, a missing hash or a hash that is not valid hex
// is skipped silently. Entries at heights already pinned (by a built-in default
// or an earlier entry in the same file) are ignored silently; new entries are
// added.
func (r *CheckpointRegistry) LoadFromJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("voltane: reading checkpoint file %s: %w", path, err)
	}

	checkpoints, _, _, err := jsonparser.Get(data, "checkpoints")
	if err != nil {
		return fmt.Errorf("voltane: parsing checkpoint file %s: %w", path, err)
	}

	var entryErr error
	_, err = jsonparser.ArrayEach(checkpoints, func(value []byte, dataType jsonparser.ValueType, offset int, innerErr error) {
		if entryErr != nil || innerErr != nil {
			if innerErr != nil {
				entryErr = innerErr
			}
			return
		}

		// A malformed entry is skipped; the rest of the file is still loaded.
		heightRaw, dErr := jsonparser.GetInt(value, "height")
		if dErr != nil {
			return
		}
		hashRaw, dErr := jsonparser.GetString(value, "hash")
		if dErr != nil {
			return
		}

		hash, dErr := ParseHash256(hashRaw)
		if dErr != nil {
			return
		}

		if addErr := r.Add(Height(heightRaw), hash); addErr != nil {
			// A conflicting entry (one that disagrees with an already-pinned
			// height, whether a built-in default or an earlier entry in this
			// same file) is ignored silently: operators are allowed to ship a
			// checkpoints.json that overlaps the defaults, and a stale entry
			// there must never be fatal. Any other Add failure is unexpected
			// and still surfaces.
			if _, ok := addErr.(*ConflictingCheckpointError); !ok {
				entryErr = addErr
			}
		}
	})
	if err != nil {
		return fmt.Errorf("voltane: parsing checkpoint file %s: %w", path, err)
	}
	return entryErr
}

// parseHeightColonHash parses the "<height>:<hex-hash>" TXT record format read by
// the DNS loader in checkpoints_dns.go.
func parseHeightColonHash(record string) (Height, Hash256, error) {
	for i := 0; i < len(record); i++ {
		if record[i] != ':' {
			continue
		}
		heightPart, hashPart := record[:i], record[i+1:]
		height, err := strconv.ParseUint(heightPart, 10, 64)
		if err != nil {
			return 0, Hash256{}, fmt.Errorf("invalid height %q: %w", heightPart, err)
		}
		hash, err := ParseHash256(hashPart)
		if err != nil {
			return 0, Hash256{}, fmt.Errorf("invalid hash %q: %w", hashPart, err)
		}
		return Height(height), hash, nil
	}
	return 0, Hash256{}, fmt.Errorf("malformed checkpoint record %q", record)
}
