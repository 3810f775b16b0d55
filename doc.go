// SPDX-License-Identifier: MIT

/*
Package lzo1x implements LZO1X block compression and decompression.

The format encodes data as literal runs and back-references with match types
M1–M4, each covering a different offset and length range; the stream ends
with the standard terminator bytes `0x11 0x00 0x00`. Decompression is a
single-pass state machine compatible with any LZO1X encoder; compression
uses a single-candidate fingerprint table with one-byte lazy matching.

# Compress

From a byte slice (output is allocated to fit):

	out, err := lzo1x.Compress(data)

Into a caller-managed buffer (size it with MaxCompressedSize):

	dst := make([]byte, lzo1x.MaxCompressedSize(len(data)))
	n, err := lzo1x.CompressInto(data, dst)

# Decompress

Options may be nil; SizeHint avoids output-buffer growth when the
decompressed size is known:

	out, err := lzo1x.Decompress(compressed, lzo1x.DefaultDecompressOptions(expectedLen))

To get the number of input bytes consumed (e.g. for back-to-back compressed blocks):

	out, nRead, err := lzo1x.DecompressN(compressed, nil)
	// advance: compressed = compressed[nRead:]

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := lzo1x.DecompressInto(compressed, dst)
	out, nRead, err := lzo1x.DecompressNInto(compressed, dst)
*/
package lzo1x
