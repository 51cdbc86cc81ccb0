// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import (
	"errors"
	"fmt"
)

// Sentinel errors for compression and decompression.
var (
	// ErrInvalidLevel is returned when an explicit compression level is neither 1 nor 2.
	ErrInvalidLevel = errors.New("invalid compression level")
	// ErrUnknownFormat is returned when the first byte of a stream does not encode level 1 or 2.
	ErrUnknownFormat = errors.New("unrecognized format marker")
	// ErrEmptyInput is returned when the level of an empty stream is requested.
	ErrEmptyInput = errors.New("empty input")

	// ErrCorrupt is the parent of all malformed-stream errors. Callers can use errors.Is(err, fastlz.ErrCorrupt).
	ErrCorrupt = errors.New("corrupt input")
	// ErrInputOverrun is returned when a token needs more input bytes than remain.
	ErrInputOverrun = fmt.Errorf("%w: input overrun", ErrCorrupt)
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = fmt.Errorf("%w: lookbehind underrun", ErrCorrupt)

	// ErrOutputOverrun is returned when the decoded data would exceed the output limit or buffer.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
