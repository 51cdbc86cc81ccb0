// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import "fmt"

// Decompress decodes a FastLZ stream of either level. opts may be nil (no limits).
// The level is read from the top 3 bits of the first byte; an empty src decodes to an empty result.
// On error no output is returned.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	if len(src) == 0 {
		return []byte{}, nil
	}

	limit := noOutputLimit
	sizeHint := 2 * len(src)
	if opts.MaxOutputSize > 0 {
		limit = opts.MaxOutputSize
		sizeHint = min(sizeHint, limit)
	}

	return decompressCore(src, make([]byte, 0, sizeHint), limit)
}

// DecompressInto decodes src into dst and returns dst[:n].
// It does not allocate; if the decoded data does not fit in len(dst) it returns ErrOutputOverrun.
func DecompressInto(src, dst []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	return decompressCore(src, dst[:0], len(dst))
}

// DetectLevel returns the compression level recorded in the first byte of src.
// It returns ErrUnknownFormat if the marker is neither 1 nor 2.
func DetectLevel(src []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}

	level := int(src[0]>>levelMarkerShift) + 1
	if level != Level1 && level != Level2 {
		return 0, fmt.Errorf("%w: level %d", ErrUnknownFormat, level)
	}

	return level, nil
}

// decompressCore dispatches a non-empty src to the decoder for its level.
// Decoded bytes are appended to out; limit caps the total length (noOutputLimit disables it).
func decompressCore(src, out []byte, limit int) ([]byte, error) {
	level, err := DetectLevel(src)
	if err != nil {
		return nil, err
	}

	if level == Level1 {
		return decompressLevel1(src, out, limit)
	}

	return decompressLevel2(src, out, limit)
}
