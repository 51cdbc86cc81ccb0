// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import "fmt"

// Compress compresses src with FastLZ. opts may be nil (uses LevelAuto).
// LevelAuto picks level 1 for inputs shorter than 64 KiB and level 2 otherwise;
// any explicit level other than 1 or 2 returns ErrInvalidLevel.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	level := opts.Level
	if level == LevelAuto {
		level = autoLevel(len(src))
	}

	return CompressLevel(src, level)
}

// CompressLevel compresses src with the given level (Level1 or Level2).
func CompressLevel(src []byte, level int) ([]byte, error) {
	switch level {
	case Level1:
		return compressLevel1(src), nil
	case Level2:
		return compressLevel2(src), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
}

// CompressBound returns the largest compressed size for an n-byte input.
// Match tokens are always shorter than the bytes they replace, so only the
// literal control bytes can expand the data.
func CompressBound(n int) int {
	return n + n/maxCopy + 1
}

// autoLevel returns the level LevelAuto selects for an input of n bytes.
func autoLevel(n int) int {
	if n < autoLevelThreshold {
		return Level1
	}

	return Level2
}
