// SPDX-License-Identifier: MIT

package lzo1x

import "errors"

// Sentinel errors for decompression and compression.
var (
	// ErrInvalidOpcode is returned when an opcode byte pattern does not match
	// any defined instruction form (e.g. a terminator with a bad length).
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrInvalidBackReference is returned when a back-reference points before
	// the start of the output produced so far.
	ErrInvalidBackReference = errors.New("invalid back-reference")
	// ErrUnexpectedEOF is returned when an opcode demands more compressed
	// bytes than remain in the input.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrTruncatedStream is returned when the input ends where the next
	// opcode or the end-of-stream marker should be.
	ErrTruncatedStream = errors.New("truncated stream")
	// ErrOutputOverrun is returned when the output cannot hold the result:
	// a fixed destination buffer is too small, or MaxOutputSize is exceeded.
	ErrOutputOverrun = errors.New("output overrun")

	// ErrCompressInternal is returned when the compressor hits an internal
	// invariant violation. Callers can use errors.Is(err, lzo1x.ErrCompressInternal).
	ErrCompressInternal = errors.New("internal compressor error")
)
