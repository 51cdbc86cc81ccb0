// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// compressLevel1 is the level 1 greedy parser.
func compressLevel1(in []byte) []byte {
	inputLen := len(in)
	inputBound := inputLen - compareTailMargin
	inputLimit := inputLen - scanTailReserve
	out := make([]byte, 0, CompressBound(inputLen))

	var dict hashTable
	literalStart := 0
	inputPos := literalStartBytes

	for inputPos < inputLimit {
		var ref, distance int

		// Advance one byte at a time until the window at inputPos repeats within range.
		for {
			var seq uint32
			seq, ref = dict.update(in, inputPos)
			distance = inputPos - ref
			if distance < maxLevel1Distance && readU32(in, ref) == seq {
				break
			}

			inputPos++
			if inputPos >= inputLimit {
				break
			}
		}

		// A candidate on the last scan position is left to the literal tail.
		if inputPos+1 >= inputLimit {
			break
		}

		if inputPos > literalStart {
			out = appendLiterals(out, in[literalStart:inputPos])
		}

		matchLen := matchLength(in, ref+3, inputPos+3, inputBound)
		out = appendLevel1Match(out, matchLen, distance)

		// Seed the last two matched positions so a repeat right after the copy is found.
		inputPos += matchLen
		dict.seed(in, inputPos)
		dict.seed(in, inputPos+1)
		inputPos += 2

		literalStart = inputPos
	}

	return appendLiterals(out, in[literalStart:])
}

// appendLevel1Match appends a level 1 match token; matchLen is biased by 2.
// Matches longer than one token can describe are split into maxLen-2 byte chunks
// that all reuse the same distance.
func appendLevel1Match(out []byte, matchLen, distance int) []byte {
	distance--

	for matchLen > maxLen-2 {
		out = append(out,
			opcodeByte((lenCodeLong<<5)+(distance>>8)),
			maxLen-2-lenCodeLong-2,
			opcodeByte(distance),
		)
		matchLen -= maxLen - 2
	}

	if matchLen < lenCodeLong {
		return append(out,
			opcodeByte((matchLen<<5)+(distance>>8)),
			opcodeByte(distance),
		)
	}

	return append(out,
		opcodeByte((lenCodeLong<<5)+(distance>>8)),
		opcodeByte(matchLen-lenCodeLong),
		opcodeByte(distance),
	)
}
