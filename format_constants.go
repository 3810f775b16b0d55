// SPDX-License-Identifier: MIT

package lzo1x

// LZO1X format constants: M1/M2/M3/M4 offset and length bounds, and
// fingerprint-table parameters.

// Match offset bounds (max backward distance for each match type).
const (
	maxOffsetM1 = 0x0400
	maxOffsetM2 = 0x0800
	maxOffsetM3 = 0x4000
	maxOffsetM4 = 0xbfff
	maxOffsetMX = maxOffsetM1 + maxOffsetM2
)

// Match length bounds per type.
const (
	minLenM2 = 3
	maxLenM2 = 8
	maxLenM3 = 33
	maxLenM4 = 9
)

// Instruction byte markers for match types.
const (
	markerM1 = 0
	markerM2 = 64
	markerM3 = 32
	markerM4 = 16
)

// Fingerprint table parameters used by the compressor. They affect only
// compression ratio and speed, never decoder compatibility.
const (
	fingerprintLen = 3              // bytes hashed into one fingerprint
	tableBits      = 14             // number of bits in the table index
	tableSize      = 1 << tableBits // slot count
	tableMask      = tableSize - 1  // mask for the table index
)

// MaxCompressedSize returns the worst-case compressed size for an input of
// n bytes. Use it to size the destination for CompressInto.
func MaxCompressedSize(n int) int {
	return n + n/16 + 64 + 3
}

// opcodeByte packs an opcode fragment to one byte as required by LZO bit layout.
// Callers pass values whose low 8 bits are the serialized representation.
func opcodeByte(v int) byte {
	// #nosec G115 -- LZO opcodes intentionally encode only low 8 bits.
	return byte(v & 0xff)
}
