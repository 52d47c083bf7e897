// Copyright 2026 voltane developers
// Use of this source code is governed by a MIT-style license that can be found in the LICENSE file.

package voltane

// Named mainnet fork heights. These drive the emission and difficulty branching
// in reward.go and difficulty.go without exposing the activation table below.
const (
	MainnetHardforkV1Height    Height = 1
	MainnetHardforkV7Height    Height = 307003
	MainnetHardforkV8Height    Height = 307054
	MainnetHardforkV9Height    Height = 308110
	MainnetHardforkV10Height   Height = 310790
	MainnetHardforkV11Height   Height = 310860
	MainnetHardforkV12Height   Height = 333690
	MainnetHardforkV13Height   Height = 337496
	MainnetHardforkV14Height   Height = 337816
	MainnetHardforkV15Height   Height = 337838
	MainnetHardforkV16Height   Height = 500060
	MainnetHardforkV17Height   Height = 570000
	MainnetHardforkV18Height   Height = 659000
	MainnetHardforkV19Height   Height = 739800
	MainnetHardforkV20Height   Height = 1132596
	MainnetHardforkV20BHeight  Height = 1132597
	MainnetHardforkV21Height   Height = 1132900
	MainnetHardforkV22Height   Height = 1132935
	MainnetHardforkV23Height   Height = 1183409
	MainnetHardforkV23BHeight  Height = 1183485
)

// forkEntry pairs a protocol version with the height it activates at.
type forkEntry struct {
	version ProtocolVersion
	height  Height
}

// forkSchedule[net] lists activations in ascending height order, version 1 implicit
// at height 0. VersionAt returns the highest version whose height <= the query height.
var forkSchedule = map[NetworkType][]forkEntry{
	Main: {
		{1, MainnetHardforkV1Height},
		{7, MainnetHardforkV7Height},
		{8, MainnetHardforkV8Height},
		{9, MainnetHardforkV9Height},
		{10, MainnetHardforkV10Height},
		{11, MainnetHardforkV11Height},
		{12, MainnetHardforkV12Height},
		{13, MainnetHardforkV13Height},
		{14, MainnetHardforkV14Height},
		{15, MainnetHardforkV15Height},
		{16, MainnetHardforkV16Height},
		{17, MainnetHardforkV17Height},
		{18, MainnetHardforkV18Height},
		{19, MainnetHardforkV19Height},
		{20, MainnetHardforkV20Height},
		{21, MainnetHardforkV21Height},
		{22, MainnetHardforkV22Height},
		{23, MainnetHardforkV23Height},
	},
	// Testnet/stagenet only publish early fork heights in the source this was ported
	// from; heights beyond v18 are extrapolated using mainnet's inter-fork deltas.
	// See DESIGN.md for this Open Question decision.
	Test: {
		{1, 1},
		{7, 307003},
		{8, 307054},
		{9, 308110},
		{10, 310790},
		{11, 310860},
		{12, 333690},
		{13, 337496},
		{14, 337816},
		{15, 337838},
		{16, 492500},
		{17, 562440},
		{18, 651440},
		{19, 732240},
		{20, 1125036},
		{21, 1125340},
		{22, 1125375},
		{23, 1175849},
	},
	Stage: {
		{1, 1},
		{7, 307003},
		{8, 307054},
		{9, 308110},
		{10, 310790},
		{11, 310860},
		{12, 333690},
		{13, 337496},
		{14, 337816},
		{15, 337838},
		{16, 492500},
		{17, 492530},
		{18, 492540},
		{19, 573340},
		{20, 966136},
		{21, 966440},
		{22, 966475},
		{23, 1016949},
	},
	// Fake is a test harness: version 1 forever unless a test overrides the schedule.
	Fake: {
		{1, 0},
	},
}

// VersionAt returns the highest protocol version active at height on net,
// defaulting to version 1 for heights before any activation.
func VersionAt(net NetworkType, height Height) ProtocolVersion {
	schedule, ok := forkSchedule[net]
	if !ok || len(schedule) == 0 {
		return 1
	}
	version := ProtocolVersion(1)
	for _, entry := range schedule {
		if entry.height > height {
			break
		}
		version = entry.version
	}
	return version
}
