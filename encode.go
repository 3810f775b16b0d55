// SPDX-License-Identifier: MIT

package lzo1x

// Bitstream serialization for the encoder: literal-run tokens, the M1–M4
// back-reference forms and the zero-byte length extension.

// encodeLiteralRun writes one literal run and its length opcode.
func encodeLiteralRun(out []byte, outPos *int, in []byte, literalStart, literalLen int) error {
	if literalLen == 0 {
		return nil
	}

	switch {
	// The stream-initial token carries a compact literal-run prefix directly.
	case *outPos == 0 && literalLen <= 238:
		if err := writeByte(out, outPos, opcodeByte(17+literalLen)); err != nil {
			return err
		}

	// Very short literal runs are packed into the S bits of the previous
	// match opcode.
	case literalLen <= 3:
		if *outPos < 2 {
			return ErrCompressInternal
		}
		out[*outPos-2] |= opcodeByte(literalLen)

	// Medium literal runs use one explicit length byte.
	case literalLen <= 18:
		if err := writeByte(out, outPos, opcodeByte(literalLen-3)); err != nil {
			return err
		}

	// Long literal runs use zero-extension encoding.
	default:
		if err := writeByte(out, outPos, 0); err != nil {
			return err
		}
		if err := writeZeroByteLength(out, outPos, literalLen-18); err != nil {
			return err
		}
	}

	return writeSlice(out, outPos, in[literalStart:literalStart+literalLen])
}

// encodeLookbackMatch writes one back-reference token, choosing the cheapest
// opcode class that can represent (matchLen, matchOff). Wire distances are
// zero-based within each class.
func encodeLookbackMatch(out []byte, outPos *int, matchLen, matchOff, lastLiteralLen int) error {
	switch {
	// M1, 2-byte match, nearest distance class.
	case matchLen == 2:
		matchOff--
		if err := writeByte(out, outPos, opcodeByte(markerM1|((matchOff&0x3)<<2))); err != nil {
			return err
		}
		return writeByte(out, outPos, opcodeByte(matchOff>>2))

	// M2, short/medium distance class.
	case matchLen <= maxLenM2 && matchOff <= maxOffsetM2:
		matchOff--
		if err := writeByte(out, outPos, opcodeByte((matchLen-1)<<5|((matchOff&0x7)<<2))); err != nil {
			return err
		}
		return writeByte(out, outPos, opcodeByte(matchOff>>3))

	// M1 special case after >=4 literals (LZO opcode quirk).
	case matchLen == minLenM2 && matchOff <= maxOffsetMX && lastLiteralLen >= 4:
		matchOff -= 1 + maxOffsetM2
		if err := writeByte(out, outPos, opcodeByte(markerM1|((matchOff&0x3)<<2))); err != nil {
			return err
		}
		return writeByte(out, outPos, opcodeByte(matchOff>>2))

	// M3, longer match with medium distance.
	case matchOff <= maxOffsetM3:
		matchOff--
		if matchLen <= maxLenM3 {
			if err := writeByte(out, outPos, opcodeByte(markerM3|(matchLen-2))); err != nil {
				return err
			}
		} else {
			if err := writeByte(out, outPos, opcodeByte(markerM3)); err != nil {
				return err
			}
			if err := writeZeroByteLength(out, outPos, matchLen-maxLenM3); err != nil {
				return err
			}
		}

		if err := writeByte(out, outPos, opcodeByte((matchOff&0x3f)<<2)); err != nil {
			return err
		}
		return writeByte(out, outPos, opcodeByte(matchOff>>6))

	// M4, farthest distance class.
	case matchOff <= maxOffsetM4:
		matchOff -= 0x4000
		head := (matchOff & 0x4000) >> 11
		if matchLen <= maxLenM4 {
			if err := writeByte(out, outPos, opcodeByte(markerM4|head|(matchLen-2))); err != nil {
				return err
			}
		} else {
			if err := writeByte(out, outPos, opcodeByte(markerM4|head)); err != nil {
				return err
			}
			if err := writeZeroByteLength(out, outPos, matchLen-maxLenM4); err != nil {
				return err
			}
		}

		if err := writeByte(out, outPos, opcodeByte((matchOff&0x3f)<<2)); err != nil {
			return err
		}
		return writeByte(out, outPos, opcodeByte(matchOff>>6))
	}

	return ErrCompressInternal
}

// writeZeroByteLength writes long-length encoding as zero chunks plus tail.
func writeZeroByteLength(out []byte, outPos *int, length int) error {
	for length > 255 {
		if err := writeByte(out, outPos, 0); err != nil {
			return err
		}
		length -= 255
	}

	return writeByte(out, outPos, opcodeByte(length))
}

// writeByte writes one byte to out at *outPos.
func writeByte(out []byte, outPos *int, b byte) error {
	if *outPos >= len(out) {
		return ErrOutputOverrun
	}

	out[*outPos] = b
	*outPos++
	return nil
}

// writeSlice writes data to out at *outPos.
func writeSlice(out []byte, outPos *int, data []byte) error {
	if len(data) > len(out)-*outPos {
		return ErrOutputOverrun
	}

	copy(out[*outPos:*outPos+len(data)], data)
	*outPos += len(data)
	return nil
}
