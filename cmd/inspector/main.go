// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/logrusorgru/aurora"
	"github.com/voltane/voltaned"
	"go.uber.org/zap"
)

// This is a lightweight interactive console for poking at consensus state
// without standing up a full node. It pretty much does the bare minimum:
// resolve a protocol version, retarget difficulty over a synthetic window,
// price a block reward, and check a height/hash pair against the
// checkpoint registry.
func main() {
	netPtr := flag.String("network", "main", "Network to evaluate (main, test, stage)")
	checkpointsPtr := flag.String("checkpoints", "", "Path to an optional checkpoints.json overlay")
	dnsPtr := flag.Bool("checkpoint-dns", false, "Query the well-known TXT-record seeders on startup")
	flag.Parse()

	net := parseNetwork(*netPtr)

	logger, err := voltane.NewLogger(true)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	registry := voltane.InitDefault(net)
	if *checkpointsPtr != "" {
		if err := registry.LoadFromJSON(*checkpointsPtr); err != nil {
			log.Fatal(err)
		}
	}
	if *dnsPtr {
		if err := registry.LoadFromDNS(net, logger); err != nil {
			logger.Warn("checkpoint DNS load returned an error", zap.Error(err))
		}
	}

	fmt.Printf("Starting up on %s...\n", aurora.Bold(net.String()))
	fmt.Printf("%d checkpoints loaded, max pinned height %d\n",
		len(registry.Points()), registry.MaxPinnedHeight())

	completer := func(d prompt.Document) []prompt.Suggest {
		s := []prompt.Suggest{
			{Text: "version", Description: "version <height> - resolve the protocol version active at a height"},
			{Text: "difficulty", Description: "difficulty <height> <target-seconds> <cumdiff-slope> - retarget over a synthetic steady window"},
			{Text: "reward", Description: "reward <height> <version> <median-size> <current-size> <already-generated> - price a block reward"},
			{Text: "checkpoint", Description: "checkpoint <height> <hash-hex> - check a height/hash pair against the registry"},
			{Text: "maxpinned", Description: "Show the highest pinned checkpoint height"},
			{Text: "quit", Description: "Quit this console session"},
		}
		return prompt.FilterHasPrefix(s, d.GetWordBeforeCursor(), true)
	}

	fmt.Println("Please select a command.")
	for {
		line := prompt.Input("> ", completer)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit":
			return

		case "maxpinned":
			fmt.Printf("max pinned checkpoint height: %s\n", aurora.Bold(registry.MaxPinnedHeight()))

		case "version":
			runVersion(net, fields[1:])

		case "difficulty":
			runDifficulty(net, fields[1:])

		case "reward":
			runReward(fields[1:])

		case "checkpoint":
			runCheckpoint(registry, fields[1:])

		default:
			fmt.Printf("%s: unrecognized command\n", aurora.Red(fields[0]))
		}
	}
}

func runVersion(net voltane.NetworkType, args []string) {
	height, err := parseUintArg(args, 0, "height")
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}
	version := voltane.VersionAt(net, voltane.Height(height))
	fmt.Printf("protocol version at height %d: %s\n", height, aurora.Green(version))
}

func runDifficulty(net voltane.NetworkType, args []string) {
	if len(args) != 3 {
		fmt.Println(aurora.Red("usage: difficulty <height> <target-seconds> <cumdiff-slope>"))
		return
	}
	height, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}
	target, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}
	slope, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}

	const windowLen = 100
	w := voltane.Window{
		Timestamps:           make([]int64, windowLen),
		CumulativeDifficulty: make([]voltane.Difficulty, windowLen),
	}
	for i := 0; i < windowLen; i++ {
		w.Timestamps[i] = int64(i) * target
		w.CumulativeDifficulty[i] = voltane.Difficulty(i+1) * voltane.Difficulty(slope)
	}

	next, err := voltane.NextDifficulty(net, voltane.Height(height), w)
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}
	fmt.Printf("next difficulty over a synthetic %d-block steady window: %s\n", windowLen, aurora.Green(next))
}

func runReward(args []string) {
	if len(args) != 5 {
		fmt.Println(aurora.Red("usage: reward <height> <version> <median-size> <current-size> <already-generated>"))
		return
	}
	height, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}
	version, err := strconv.ParseUint(args[1], 10, 8)
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}
	medianSize, err := strconv.ParseUint(args[2], 10, 64)
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}
	currentSize, err := strconv.ParseUint(args[3], 10, 64)
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}
	alreadyGenerated, err := strconv.ParseUint(args[4], 10, 64)
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}

	reward, err := voltane.GetBlockReward(voltane.RewardInputs{
		Height:           voltane.Height(height),
		Version:          voltane.ProtocolVersion(version),
		MedianBlockSize:  medianSize,
		CurrentBlockSize: currentSize,
		AlreadyGenerated: alreadyGenerated,
	})
	if err != nil {
		fmt.Printf("%s: %s\n", aurora.Red("rejected"), err)
		return
	}
	fmt.Printf("block reward: %s\n", aurora.Green(reward))
}

func runCheckpoint(registry *voltane.CheckpointRegistry, args []string) {
	if len(args) != 2 {
		fmt.Println(aurora.Red("usage: checkpoint <height> <hash-hex>"))
		return
	}
	height, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}
	hash, err := voltane.ParseHash256(args[1])
	if err != nil {
		fmt.Println(aurora.Red(err))
		return
	}

	verdict, err := registry.CheckBlock(voltane.Height(height), hash)
	if err != nil {
		fmt.Printf("%s: %s\n", aurora.Bold(aurora.Red("mismatch")), err)
		return
	}
	switch verdict {
	case voltane.Matched:
		fmt.Println(aurora.Bold(aurora.Green("matched")))
	case voltane.NotPinned:
		fmt.Println(aurora.Yellow("not pinned"))
	}
}

func parseUintArg(args []string, idx int, name string) (uint64, error) {
	if idx >= len(args) {
		return 0, fmt.Errorf("missing argument: %s", name)
	}
	return strconv.ParseUint(args[idx], 10, 64)
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
