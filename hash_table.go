// SPDX-License-Identifier: MIT

package lzo1x

// matchTable maps 3-byte fingerprints to the single most recent input
// position where that fingerprint occurred. Slots are overwritten, not
// chained: at most one position per fingerprint, trading recall for O(1)
// lookup and update. Never touched by the decoder.
type matchTable struct {
	head [tableSize]int32 // position+1 of the latest occurrence; 0 = empty
}

// fingerprint hashes the fingerprintLen bytes at src[pos:] into a table index.
// The caller guarantees pos+fingerprintLen <= len(src).
func fingerprint(src []byte, pos int) uint {
	key := uint(src[pos])
	key = (key << 5) ^ uint(src[pos+1])
	key = (key << 5) ^ uint(src[pos+2])

	return ((key * 0x9f5f) >> 5) & tableMask
}

// reset clears all slots for a fresh compression run.
func (t *matchTable) reset() {
	clear(t.head[:])
}

// insert records pos as the latest occurrence of its fingerprint, replacing
// any prior occurrence. Positions too close to the end of src to form a full
// fingerprint are skipped.
func (t *matchTable) insert(src []byte, pos int) {
	if pos+fingerprintLen > len(src) {
		return
	}

	t.head[fingerprint(src, pos)] = int32(pos + 1) //nolint:gosec // G115: input position fits int32 for LZO input sizes
}

// lookup returns the most recently recorded position sharing the fingerprint
// at pos. Empty slots, self references and positions outside the sliding
// window are misses, not errors.
func (t *matchTable) lookup(src []byte, pos int) (int, bool) {
	if pos+fingerprintLen > len(src) {
		return 0, false
	}

	cand := int(t.head[fingerprint(src, pos)]) - 1
	if cand < 0 {
		return 0, false
	}

	dist := pos - cand
	if dist < 1 || dist > maxOffsetM4 {
		return 0, false
	}

	return cand, true
}
