// SPDX-License-Identifier: MIT

package lzo1x

const (
	// shortMatchBaseOffset is the base distance used by the short-match form
	// selected when the parser is in state 4.
	shortMatchBaseOffset = 0x0800

	// maxZeroExtendedChunks limits zero-extension runs so malformed inputs
	// cannot overflow run-length reconstruction math.
	maxZeroExtendedChunks = int(^uint(0)/255) - 2
)

// Decompress decompresses one LZO1X block from src. opts may be nil; set
// DecompressOptions.SizeHint when the decompressed size is known to avoid
// output-buffer growth. On failure no output is returned.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	out, _, err := decompressStream(src, opts)
	return out, err
}

// DecompressN decompresses one LZO1X block from src and returns the decoded
// slice plus the number of input bytes consumed. nRead is 0 on error. Use
// this when advancing a stream of back-to-back compressed blocks.
func DecompressN(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	return decompressStream(src, opts)
}

// DecompressInto decompresses one LZO1X block from src into dst and returns
// the decoded prefix of dst. A stream expanding past len(dst) fails with
// ErrOutputOverrun.
func DecompressInto(src, dst []byte) ([]byte, error) {
	out, _, err := decompressCore(src, dst[:0], len(dst))
	if err != nil {
		return nil, err
	}

	return out, nil
}

// DecompressNInto combines DecompressInto with the consumed-byte count of
// DecompressN.
func DecompressNInto(src, dst []byte) ([]byte, int, error) {
	out, inConsumed, err := decompressCore(src, dst[:0], len(dst))
	if err != nil {
		return nil, 0, err
	}

	return out, inConsumed, nil
}

// decompressStream applies options and runs the decoder with a growable
// output buffer.
func decompressStream(src []byte, opts *DecompressOptions) ([]byte, int, error) {
	sizeHint := 0
	limit := -1
	if opts != nil {
		sizeHint = max(opts.SizeHint, 0)
		if opts.MaxOutputSize > 0 {
			limit = opts.MaxOutputSize
		}
	}

	out, inConsumed, err := decompressCore(src, make([]byte, 0, sizeHint), limit)
	if err != nil {
		return nil, 0, err
	}

	return out, inConsumed, nil
}

// decompressCore interprets the opcode stream in src, appending decoded
// bytes to out (limit < 0 means unbounded growth). It returns the decoded
// buffer and the number of input bytes consumed. The explicit state tracks
// how many literals the previous instruction carried (0, 1-3, or 4+), which
// decides among the three meanings of the low opcode range, and the first
// byte of a stream uses its own literal-run encoding.
func decompressCore(src, out []byte, limit int) ([]byte, int, error) {
	if len(src) == 0 {
		return nil, 0, ErrTruncatedStream
	}

	var (
		inst      byte
		state     int
		nextState int
		matchLen  int
		matchDist int
		inPos     int
		err       error
	)

	inst = src[inPos]
	inPos++

	// First byte can encode an initial literal run directly; otherwise it
	// becomes the first instruction in the main decode loop.
	switch {
	case inst >= 22:
		if out, err = appendLiteralRun(src, &inPos, out, limit, int(inst)-17); err != nil {
			return nil, 0, err
		}
		state = 4

	case inst >= 18:
		nextState = int(inst - 17)
		if out, err = appendLiteralRun(src, &inPos, out, limit, nextState); err != nil {
			return nil, 0, err
		}
		state = nextState
	}

	for {
		// `inst` is already loaded for the very first iteration.
		if inPos > 1 || state > 0 {
			if inPos >= len(src) {
				return nil, 0, ErrTruncatedStream
			}

			inst = src[inPos]
			inPos++
		}

		switch {
		case inst >= markerM2:
			b, err := readStreamByte(src, &inPos)
			if err != nil {
				return nil, 0, err
			}

			matchDist = (int(b) << 3) + ((int(inst) >> 2) & 0x7) + 1
			matchLen = (int(inst) >> 5) + 1
			nextState = int(inst & 0x03)

		case inst >= markerM3:
			matchLen = int(inst&0x1f) + 2
			if matchLen == 2 {
				ext, err := readZeroExtendedChunks(src, &inPos)
				if err != nil {
					return nil, 0, err
				}

				tail, err := readStreamByte(src, &inPos)
				if err != nil {
					return nil, 0, err
				}

				matchLen += ext*255 + 31 + int(tail)
			}

			v16, err := readStreamLE16(src, &inPos)
			if err != nil {
				return nil, 0, err
			}

			matchDist = (int(v16) >> 2) + 1
			nextState = int(v16 & 0x03)

		case inst >= markerM4:
			matchLen = int(inst&0x7) + 2
			if matchLen == 2 {
				ext, err := readZeroExtendedChunks(src, &inPos)
				if err != nil {
					return nil, 0, err
				}

				tail, err := readStreamByte(src, &inPos)
				if err != nil {
					return nil, 0, err
				}

				matchLen += ext*255 + 7 + int(tail)
			}

			v16, err := readStreamLE16(src, &inPos)
			if err != nil {
				return nil, 0, err
			}

			baseDist := ((int(inst) & 0x8) << 11) + (int(v16) >> 2)
			if baseDist == 0 {
				// Stream terminator is encoded as M4 with distance=0 and length=3.
				if matchLen != 3 {
					return nil, 0, ErrInvalidOpcode
				}

				return out, inPos, nil
			}

			matchDist = baseDist + 0x4000
			nextState = int(v16 & 0x03)

		default:
			if state == 0 {
				// In state 0, this opcode form encodes a literal-run length
				// directly (with optional zero-extension for long runs).
				runLen := int(inst) + 3
				if runLen == 3 {
					ext, err := readZeroExtendedChunks(src, &inPos)
					if err != nil {
						return nil, 0, err
					}

					tail, err := readStreamByte(src, &inPos)
					if err != nil {
						return nil, 0, err
					}

					runLen += ext*255 + 15 + int(tail)
				}

				if out, err = appendLiteralRun(src, &inPos, out, limit, runLen); err != nil {
					return nil, 0, err
				}

				state = 4
				continue
			}

			// In non-zero states this opcode form is a short back-reference
			// and needs one trailing byte to complete distance bits.
			tail, err := readStreamByte(src, &inPos)
			if err != nil {
				return nil, 0, err
			}

			nextState = int(inst & 0x03)
			switch {
			case state != 4:
				// General short-match form: fixed length 2, distance starts at 1.
				matchDist = (int(inst) >> 2) + (int(tail) << 2) + 1
				matchLen = 2

			default:
				// Special short-match form used after a 4+ literal run.
				matchDist = shortMatchBaseOffset + 1 + (int(inst) >> 2) + (int(tail) << 2)
				matchLen = 3
			}
		}

		if out, err = appendBackRef(out, matchDist, matchLen, limit); err != nil {
			return nil, 0, err
		}

		if nextState > 0 {
			if out, err = appendLiteralRun(src, &inPos, out, limit, nextState); err != nil {
				return nil, 0, err
			}
		}

		state = nextState
	}
}

// readStreamByte reads one byte from src at *inPos and advances *inPos.
func readStreamByte(src []byte, inPos *int) (byte, error) {
	if *inPos >= len(src) {
		return 0, ErrUnexpectedEOF
	}

	b := src[*inPos]
	*inPos++

	return b, nil
}

// readStreamLE16 reads one little-endian uint16 from src at *inPos and advances *inPos by 2.
func readStreamLE16(src []byte, inPos *int) (uint16, error) {
	if *inPos+2 > len(src) {
		return 0, ErrUnexpectedEOF
	}

	lo := uint16(src[*inPos])
	hi := uint16(src[*inPos+1])
	*inPos += 2

	return lo | hi<<8, nil
}

// readZeroExtendedChunks consumes consecutive zero bytes and returns their count.
func readZeroExtendedChunks(src []byte, inPos *int) (int, error) {
	start := *inPos
	for *inPos < len(src) && src[*inPos] == 0 {
		*inPos++
	}

	count := *inPos - start
	if count > maxZeroExtendedChunks {
		return 0, ErrInvalidOpcode
	}

	return count, nil
}

// appendLiteralRun appends n bytes verbatim from src[*inPos:] to out and
// advances *inPos.
func appendLiteralRun(src []byte, inPos *int, out []byte, limit, n int) ([]byte, error) {
	if n == 0 {
		return out, nil
	}

	if *inPos+n > len(src) {
		return nil, ErrUnexpectedEOF
	}

	if limit >= 0 && len(out)+n > limit {
		return nil, ErrOutputOverrun
	}

	out = append(out, src[*inPos:*inPos+n]...)
	*inPos += n

	return out, nil
}
