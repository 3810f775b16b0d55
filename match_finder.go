// SPDX-License-Identifier: MIT

package lzo1x

// matchCandidate is a back-reference found at the cursor: the backward
// distance to a previous occurrence and the count of matching bytes.
type matchCandidate struct {
	distance int
	length   int
}

// matchFinder produces match candidates from the single most recent
// fingerprint occurrence. It is deliberately not an exhaustive history
// search; one candidate per position keeps the parse amortized O(n).
type matchFinder struct {
	src   []byte
	table *matchTable
}

// find returns the match candidate at pos, or false when none meets the
// format's minimum length for its distance class. The extension loop may run
// past pos into bytes the match itself will produce; such self-overlapping
// matches are valid and reproduce run-length repetition.
func (f *matchFinder) find(pos int) (matchCandidate, bool) {
	cand, ok := f.table.lookup(f.src, pos)
	if !ok {
		return matchCandidate{}, false
	}

	length := 0
	for pos+length < len(f.src) && f.src[cand+length] == f.src[pos+length] {
		length++
	}

	dist := pos - cand
	switch {
	case length >= minLenM2:
		return matchCandidate{distance: dist, length: length}, true
	case length == 2 && dist <= maxOffsetM1:
		// Two-byte matches are only expressible in the nearest offset class.
		return matchCandidate{distance: dist, length: length}, true
	}

	return matchCandidate{}, false
}
