// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// decompressLevel1 decodes a level 1 stream, appending to out.
// src must not be empty. Decoding stops once fewer than two input bytes remain,
// so a single stray byte after the last token is ignored.
func decompressLevel1(src, out []byte, limit int) ([]byte, error) {
	inputLimit := len(src)
	inputBound := inputLimit - 2
	inPos := 1
	ctrl := int(src[0] & controlLiteralMask)

	for {
		if ctrl > controlLiteralMask {
			matchLen := (ctrl >> 5) - 1
			matchDist := (ctrl&controlLiteralMask)<<8 + 1

			if matchLen == lenCodeLong-1 {
				if inPos > inputBound {
					return nil, ErrInputOverrun
				}

				matchLen += int(src[inPos])
				inPos++
			}

			if inPos >= inputLimit {
				return nil, ErrInputOverrun
			}

			matchDist += int(src[inPos])
			inPos++
			matchLen += 3

			if err := reserveOutput(out, matchLen, limit); err != nil {
				return nil, err
			}

			var err error
			if out, err = appendBackRef(out, matchDist, matchLen); err != nil {
				return nil, err
			}
		} else {
			litLen := ctrl + 1
			if inPos+litLen > inputLimit {
				return nil, ErrInputOverrun
			}

			if err := reserveOutput(out, litLen, limit); err != nil {
				return nil, err
			}

			out = append(out, src[inPos:inPos+litLen]...)
			inPos += litLen
		}

		if inPos > inputBound {
			break
		}

		ctrl = int(src[inPos])
		inPos++
	}

	return out, nil
}
