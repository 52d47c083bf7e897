// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCheckpointFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "checkpoints.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write temp checkpoint file: %v", err)
	}
	return path
}

func TestLoadFromJSONMissingFileIsNotAnError(t *testing.T) {
	r := NewCheckpointRegistry()
	if err := r.LoadFromJSON(filepath.Join(t.TempDir(), "does-not-exist.json")); err != nil {
		t.Fatalf("a missing checkpoint file should not be an error, got: %v", err)
	}
	if r.MaxPinnedHeight() != 0 {
		t.Fatalf("expected no checkpoints loaded from a missing file")
	}
}

func TestLoadFromJSONAddsEntries(t *testing.T) {
	hash := hashFromByte(5)
	contents := `{"checkpoints":[{"height":7,"hash":"` + hash.String() + `"}]}`
	path := writeTempCheckpointFile(t, contents)

	r := NewCheckpointRegistry()
	if err := r.LoadFromJSON(path); err != nil {
		t.Fatalf("LoadFromJSON failed: %v", err)
	}
	verdict, err := r.CheckBlock(7, hash)
	if err != nil || verdict != Matched {
		t.Fatalf("CheckBlock(7, ...) = (%v, %v), want (Matched, nil)", verdict, err)
	}
}

func TestLoadFromJSONIgnoresAlreadyPinnedAgreement(t *testing.T) {
	hash := hashFromByte(6)
	r := NewCheckpointRegistry()
	if err := r.Add(8, hash); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	contents := `{"checkpoints":[{"height":8,"hash":"` + hash.String() + `"}]}`
	path := writeTempCheckpointFile(t, contents)
	if err := r.LoadFromJSON(path); err != nil {
		t.Fatalf("LoadFromJSON of an agreeing entry should not fail, got: %v", err)
	}
}

func TestLoadFromJSONSkipsConflictingEntry(t *testing.T) {
	r := NewCheckpointRegistry()
	if err := r.Add(8, hashFromByte(1)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	contents := `{"checkpoints":[{"height":8,"hash":"` + hashFromByte(2).String() + `"}]}`
	path := writeTempCheckpointFile(t, contents)
	if err := r.LoadFromJSON(path); err != nil {
		t.Fatalf("a conflicting entry should be skipped silently, not fail the load: %v", err)
	}

	verdict, err := r.CheckBlock(8, hashFromByte(1))
	if err != nil || verdict != Matched {
		t.Fatalf("the original checkpoint at height 8 should be unchanged: CheckBlock = (%v, %v)", verdict, err)
	}
}

func TestLoadFromJSONSkipsMalformedHash(t *testing.T) {
	r := NewCheckpointRegistry()
	path := writeTempCheckpointFile(t, `{"checkpoints":[{"height":1,"hash":"not-hex"}]}`)
	if err := r.LoadFromJSON(path); err != nil {
		t.Fatalf("an entry with a malformed hash should be skipped, not fail the load: %v", err)
	}
	if r.IsPinned(1) {
		t.Fatalf("an entry with a malformed hash must not be pinned")
	}
}

func TestParseHeightColonHash(t *testing.T) {
	hash := hashFromByte(3)
	record := "12345:" + hash.String()
	height, got, err := parseHeightColonHash(record)
	if err != nil {
		t.Fatalf("parseHeightColonHash failed: %v", err)
	}
	if height != 12345 || got != hash {
		t.Fatalf("parseHeightColonHash(%q) = (%d, %s), want (12345, %s)", record, height, got, hash)
	}
}

func TestParseHeightColonHashMalformed(t *testing.T) {
	cases := []string{"", "no-colon-here", "abc:deadbeef", "123:not-hex"}
	for _, c := range cases {
		if _, _, err := parseHeightColonHash(c); err == nil {
			t.Fatalf("parseHeightColonHash(%q) should have failed", c)
		}
	}
}
