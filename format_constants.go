// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// FastLZ format constants: token limits, distance bounds and hash table parameters.

// Compression levels accepted by Compress and CompressLevel.
const (
	LevelAuto = 0 // level 1 below autoLevelThreshold input bytes, level 2 otherwise
	Level1    = 1 // 13-bit distances, long matches split into several tokens
	Level2    = 2 // near and far distances, long matches use 0xFF length chains
)

// autoLevelThreshold is the input size from which LevelAuto selects level 2.
const autoLevelThreshold = 65536

// Token layout.
const (
	maxCopy            = 32          // longest literal run per literal token
	controlLiteralMask = maxCopy - 1 // control bytes up to 31 start literal tokens
	maxLen             = 264         // 256 + 8; level 1 splits longer matches
	lenCodeLong        = 7           // length code announcing extension bytes
	lengthChainByte    = 255         // level 2 length continuation byte
	levelMarkerShift   = 5           // level = byte0>>levelMarkerShift + 1
	levelMarkerBit     = 1 << levelMarkerShift
)

// Match distance bounds.
const (
	maxLevel1Distance = 8192             // exclusive; biased distance fits 13 bits
	maxLevel2Distance = 8191             // biased near distances stay below this
	maxFarDistance    = 65535 + 8191 - 1 // exclusive bound for level 2 candidates
	farOffsetMarker   = 31 << 8          // offset field value announcing a far token
)

// Parser bounds relative to the end of the input.
const (
	scanTailReserve   = 12 + 1 // no match starts in the last 13 bytes
	compareTailMargin = 4      // match extension stops 4 bytes before the end
	literalStartBytes = 2      // the first 2 bytes are always literals
)

// Hash table parameters used by the compressor.
const (
	hashLog        = 13                 // number of bits in the slot index
	hashSize       = 1 << hashLog       // number of slots
	hashMask       = hashSize - 1       // slot mask
	hashMultiplier = uint32(2654435769) // golden-ratio multiplicative hash
)
