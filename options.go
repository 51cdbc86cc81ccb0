// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// DecompressOptions configures decompression.
// The stream carries no length header, so both limits are optional safety caps.
type DecompressOptions struct {
	// MaxOutputSize fails decoding with ErrOutputOverrun once the output would grow past it (0 = no limit).
	MaxOutputSize int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with no output or input limit.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}

// CompressOptions configures compression.
type CompressOptions struct {
	// Level: LevelAuto (0) selects by input size; Level1 or Level2 force a format.
	Level int
}

// DefaultCompressOptions returns options for size-based level selection.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: LevelAuto}
}
