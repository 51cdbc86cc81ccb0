// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

/*
Package fastlz implements FastLZ block compression and decompression (levels 1 and 2).

A stream is a sequence of literal tokens (a control byte 0..31 followed by 1..32
raw bytes) and match tokens (a control byte 32..255 carrying a length code and
the high distance bits, followed by length and distance bytes). Level 1 reaches
back 8192 bytes; level 2 adds far references up to about 72 KiB and encodes long
matches with 0xFF continuation bytes. The level is stored in the top 3 bits of
the first byte, so Decompress needs no options to pick the decoder.

There is no header, length prefix or checksum: callers that need the decoded
size must track it themselves (or cap it with DecompressOptions.MaxOutputSize).

The compressor is a single-pass greedy parser over a 8192-slot hash table that
lives for one call only, so all functions are safe for concurrent use.

# Compress

Options may be nil (LevelAuto: level 1 below 64 KiB, level 2 otherwise):

	out, err := fastlz.Compress(data, nil)
	out, err := fastlz.Compress(data, &fastlz.CompressOptions{Level: fastlz.Level2})
	out, err := fastlz.CompressLevel(data, 1)

# Decompress

From a byte slice:

	out, err := fastlz.Decompress(compressed, nil)

With an output cap:

	out, err := fastlz.Decompress(compressed, &fastlz.DecompressOptions{MaxOutputSize: 1 << 20})

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := fastlz.DecompressInto(compressed, dst)

From an io.Reader:

	out, err := fastlz.DecompressFromReader(r, &fastlz.DecompressOptions{MaxInputSize: 1 << 20})

Malformed streams return errors matching ErrCorrupt:

	if errors.Is(err, fastlz.ErrCorrupt) {
		// truncated token or back-reference before the start of the output
	}
*/
package fastlz
