// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/voltane/voltaned"
	"go.uber.org/zap"
)

var config struct {
	Network         string `long:"network" choice:"main" choice:"test" choice:"stage" default:"main" description:"the network to validate consensus state against"`
	CheckpointsFile string `long:"checkpoints" description:"path to an optional checkpoints.json file to layer on top of the built-in defaults"`
	CheckpointDNS   bool   `long:"checkpoint-dns" description:"query the well-known TXT-record seeders for additional checkpoints"`
	Height          uint64 `long:"height" required:"true" description:"the block height to report consensus state for"`
	Dev             bool   `long:"dev" description:"use a human-readable development logger instead of structured JSON"`
}

func main() {
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		os.Exit(1)
	}

	logger, err := voltane.NewLogger(config.Dev)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer logger.Sync()

	net := parseNetwork(config.Network)
	height := voltane.Height(config.Height)

	registry := voltane.InitDefault(net)
	if config.CheckpointsFile != "" {
		if err := registry.LoadFromJSON(config.CheckpointsFile); err != nil {
			logger.Fatal("failed to load checkpoints file", zap.String("path", config.CheckpointsFile), zap.Error(err))
		}
	}
	if config.CheckpointDNS {
		if err := registry.LoadFromDNS(net, logger); err != nil {
			logger.Warn("checkpoint DNS load returned an error", zap.Error(err))
		}
	}

	version := voltane.VersionAt(net, height)
	logger.Info("resolved protocol version",
		zap.String("network", net.String()),
		zap.Uint64("height", uint64(height)),
		zap.Uint8("version", uint8(version)))

	if pinned := registry.IsPinned(height); pinned {
		logger.Info("height is checkpointed", zap.Uint64("height", uint64(height)))
	}

	logger.Info("max pinned checkpoint height", zap.Uint64("height", uint64(registry.MaxPinnedHeight())))
}

func parseNetwork(s string) voltane.NetworkType {
	switch s {
	case "test":
		return voltane.Test
	case "stage":
		return voltane.Stage
	default:
		return voltane.Main
	}
}
