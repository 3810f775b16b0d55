// SPDX-License-Identifier: MIT

package lzo1x

// appendBackRef appends length bytes copied from dist bytes behind the end
// of out. When dist < length the source and destination overlap, so the copy
// must be byte-by-byte: bytes appended earlier in the loop are read again as
// source further along, which is what reproduces run-length repetition. A
// bulk copy that assumes non-overlapping regions would corrupt such matches.
func appendBackRef(out []byte, dist, length, limit int) ([]byte, error) {
	start := len(out) - dist
	if start < 0 {
		return nil, ErrInvalidBackReference
	}

	if limit >= 0 && len(out)+length > limit {
		return nil, ErrOutputOverrun
	}

	if dist >= length {
		return append(out, out[start:start+length]...), nil
	}

	for i := 0; i < length; i++ {
		out = append(out, out[start+i])
	}

	return out, nil
}
