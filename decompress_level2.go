// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// decompressLevel2 decodes a level 2 stream, appending to out. src must not be empty.
func decompressLevel2(src, out []byte, limit int) ([]byte, error) {
	inputLimit := len(src)
	inputBound := inputLimit - 2
	inPos := 1
	ctrl := int(src[0] & controlLiteralMask)

	for {
		if ctrl > controlLiteralMask {
			matchLen := (ctrl >> 5) - 1
			matchOffset := (ctrl & controlLiteralMask) << 8

			if matchLen == lenCodeLong-1 {
				for {
					if inPos > inputBound {
						return nil, ErrInputOverrun
					}

					code := int(src[inPos])
					inPos++
					matchLen += code
					if code != lengthChainByte {
						break
					}
				}
			}

			if inPos >= inputLimit {
				return nil, ErrInputOverrun
			}

			code := int(src[inPos])
			inPos++
			matchDist := matchOffset + code + 1
			matchLen += 3

			// 0xFF under the far marker announces a 16-bit distance extension.
			if code == lengthChainByte && matchOffset == farOffsetMarker {
				if inPos >= inputBound {
					return nil, ErrInputOverrun
				}

				matchDist = int(src[inPos])<<8 | int(src[inPos+1])
				matchDist += maxLevel2Distance + 1
				inPos += 2
			}

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

		if inPos >= inputLimit {
			break
		}

		ctrl = int(src[inPos])
		inPos++
	}

	return out, nil
}
