// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import "encoding/binary"

// hashTable maps a 4-byte window hash to the most recent input position that produced it.
// Slots start at 0, so an unset slot points at the first input byte.
type hashTable [hashSize]int

// hashSeq returns the hash table slot for a 4-byte little-endian window.
func hashSeq(seq uint32) int {
	return int((seq*hashMultiplier)>>(32-hashLog)) & hashMask
}

// readU32 reads the 4-byte little-endian window at pos.
func readU32(in []byte, pos int) uint32 {
	return binary.LittleEndian.Uint32(in[pos : pos+4])
}

// update stores pos as the latest occurrence of the window starting at pos
// and returns the previous occurrence from the same slot.
func (t *hashTable) update(in []byte, pos int) (seq uint32, ref int) {
	seq = readU32(in, pos)
	slot := hashSeq(seq)
	ref = t[slot]
	t[slot] = pos
	return seq, ref
}

// seed records pos without looking up a candidate.
func (t *hashTable) seed(in []byte, pos int) {
	t[hashSeq(readU32(in, pos))] = pos
}

// matchLength compares in[ref:] with in[pos:] until pos reaches bound.
// The first mismatching byte is included in the count; match tokens store the
// length biased by 2 to compensate.
func matchLength(in []byte, ref, pos, bound int) int {
	n := 0
	for pos+n < bound {
		n++
		if in[ref+n-1] != in[pos+n-1] {
			break
		}
	}

	return n
}

// appendLiterals appends lit as a sequence of literal tokens of at most maxCopy bytes each.
// An empty run appends nothing.
func appendLiterals(out []byte, lit []byte) []byte {
	for len(lit) >= maxCopy {
		out = append(out, maxCopy-1)
		out = append(out, lit[:maxCopy]...)
		lit = lit[maxCopy:]
	}

	if len(lit) > 0 {
		out = append(out, opcodeByte(len(lit)-1))
		out = append(out, lit...)
	}

	return out
}

// appendLengthChain appends t as a run of 0xFF continuation bytes and a final remainder.
func appendLengthChain(out []byte, t int) []byte {
	for t >= lengthChainByte {
		out = append(out, lengthChainByte)
		t -= lengthChainByte
	}

	out = append(out, opcodeByte(t))
	return out
}
