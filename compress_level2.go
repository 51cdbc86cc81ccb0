// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// compressLevel2 is the level 2 greedy parser. It reaches back up to
// maxFarDistance bytes and marks byte 0 of the result with levelMarkerBit.
func compressLevel2(in []byte) []byte {
	inputLen := len(in)
	inputBound := inputLen - compareTailMargin
	inputLimit := inputLen - scanTailReserve
	out := make([]byte, 0, CompressBound(inputLen))

	var dict hashTable
	literalStart := 0
	inputPos := literalStartBytes

	for inputPos < inputLimit {
		var ref, distance int

		for {
			var seq uint32
			seq, ref = dict.update(in, inputPos)
			distance = inputPos - ref
			if distance < maxFarDistance && readU32(in, ref) == seq {
				break
			}

			inputPos++
			if inputPos >= inputLimit {
				break
			}
		}

		if inputPos+1 >= inputLimit {
			break
		}

		// Far references cost two extra bytes, so they need at least 5 matching bytes.
		if distance >= maxLevel2Distance &&
			(in[ref+3] != in[inputPos+3] || in[ref+4] != in[inputPos+4]) {
			inputPos++
			continue
		}

		if inputPos > literalStart {
			out = appendLiterals(out, in[literalStart:inputPos])
		}

		matchLen := matchLength(in, ref+3, inputPos+3, inputBound)
		out = appendLevel2Match(out, matchLen, distance)

		inputPos += matchLen
		dict.seed(in, inputPos)
		dict.seed(in, inputPos+1)
		inputPos += 2

		literalStart = inputPos
	}

	out = appendLiterals(out, in[literalStart:])
	if len(out) > 0 {
		out[0] |= levelMarkerBit
	}

	return out
}

// appendLevel2Match appends a level 2 match token; matchLen is biased by 2.
//
// Near tokens (biased distance below maxLevel2Distance) keep the level 1 layout.
// Far tokens set the 5 offset bits to 31, write 0xFF in the low offset byte and
// append the remaining distance as a big-endian uint16.
func appendLevel2Match(out []byte, matchLen, distance int) []byte {
	distance--

	if distance < maxLevel2Distance {
		if matchLen < lenCodeLong {
			return append(out,
				opcodeByte((matchLen<<5)+(distance>>8)),
				opcodeByte(distance),
			)
		}

		out = append(out, opcodeByte((lenCodeLong<<5)+(distance>>8)))
		out = appendLengthChain(out, matchLen-lenCodeLong)
		return append(out, opcodeByte(distance))
	}

	distance -= maxLevel2Distance
	if matchLen < lenCodeLong {
		out = append(out, opcodeByte((matchLen<<5)+(farOffsetMarker>>8)), lengthChainByte)
	} else {
		out = append(out, opcodeByte((lenCodeLong<<5)+(farOffsetMarker>>8)))
		out = appendLengthChain(out, matchLen-lenCodeLong)
		out = append(out, lengthChainByte)
	}

	return append(out, opcodeByte(distance>>8), opcodeByte(distance))
}
