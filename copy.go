// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// noOutputLimit disables the output size check in the decoders.
const noOutputLimit = -1

// appendBackRef appends length bytes starting dist bytes before the end of out.
// If dist < length, source and destination overlap; copy must be byte-by-byte so that
// repeated bytes (RLE) are correct. A block append would read bytes not yet written.
func appendBackRef(out []byte, dist, length int) ([]byte, error) {
	mPos := len(out) - dist
	if mPos < 0 {
		return nil, ErrLookBehindUnderrun
	}

	if dist >= length {
		return append(out, out[mPos:mPos+length]...), nil
	}

	for i := 0; i < length; i++ {
		out = append(out, out[mPos+i])
	}

	return out, nil
}

// reserveOutput reports ErrOutputOverrun if n more bytes would take out past limit.
func reserveOutput(out []byte, n, limit int) error {
	if limit != noOutputLimit && len(out)+n > limit {
		return ErrOutputOverrun
	}

	return nil
}
