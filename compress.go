// SPDX-License-Identifier: MIT

package lzo1x

// Compress compresses src as one LZO1X block and returns the compressed
// stream, terminator included. Any input has a valid encoding; the returned
// error is non-nil only on internal invariant violations.
func Compress(src []byte) ([]byte, error) {
	temp := acquireEncodeBuffer(MaxCompressedSize(len(src)))
	defer releaseEncodeBuffer(temp)

	n, err := CompressInto(src, temp.data)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, temp.data[:n])
	return out, nil
}

// CompressInto compresses src into dst and returns the number of bytes
// written. Size dst with MaxCompressedSize; a destination too small for the
// encoded stream fails with ErrOutputOverrun.
func CompressInto(src, dst []byte) (int, error) {
	table := acquireMatchTable()
	defer releaseMatchTable(table)

	return compressCore(src, dst, table)
}

// compressCore runs the parse state machine over src: accumulate literals
// while no acceptable match exists at the cursor, otherwise flush the
// pending run and emit one back-reference token.
func compressCore(in, out []byte, table *matchTable) (int, error) {
	finder := matchFinder{src: in, table: table}

	var (
		outPos       int
		pos          int
		literalStart int
	)

	for pos < len(in) {
		literalLen := pos - literalStart
		m, ok := finder.find(pos)

		// Filter out candidates that are valid matches algorithmically but
		// cannot be emitted with legal opcodes in the current stream context:
		// a 2-byte match needs a pending 1-3 byte literal run and a non-empty
		// stream; a far 3-byte match after a long run costs more than it saves.
		if ok && m.length == 2 && (literalLen == 0 || literalLen >= 4 || outPos == 0) {
			ok = false
		}
		if ok && m.length == minLenM2 && m.distance > maxOffsetMX && literalLen >= 4 {
			ok = false
		}

		if !ok {
			// No encodable match yet: grow the literal run by one byte.
			table.insert(in, pos)
			pos++
			continue
		}

		// Lazy check: when a strictly longer match starts one byte ahead,
		// defer by treating the current byte as a literal.
		if next, okNext := finder.find(pos + 1); okNext && next.length > m.length {
			table.insert(in, pos)
			pos++
			continue
		}

		if err := encodeLiteralRun(out, &outPos, in, literalStart, literalLen); err != nil {
			return 0, err
		}
		if err := encodeLookbackMatch(out, &outPos, m.length, m.distance, literalLen); err != nil {
			return 0, err
		}

		// Index every position the match spans so later matches can
		// reference its interior.
		for p := pos; p < pos+m.length; p++ {
			table.insert(in, p)
		}

		pos += m.length
		literalStart = pos
	}

	if err := encodeLiteralRun(out, &outPos, in, literalStart, len(in)-literalStart); err != nil {
		return 0, err
	}

	// Standard LZO end marker (M4 with distance class bit and zero payload).
	if err := writeByte(out, &outPos, markerM4|1); err != nil {
		return 0, err
	}
	if err := writeByte(out, &outPos, 0); err != nil {
		return 0, err
	}
	if err := writeByte(out, &outPos, 0); err != nil {
		return 0, err
	}

	return outPos, nil
}
