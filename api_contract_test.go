// SPDX-License-Identifier: MIT

package lzo1x

import (
	"bytes"
	"testing"
)

// Reference stream for 512 zero bytes: a one-byte initial literal run
// followed by a distance-1 M3 match of length 511 and the terminator.
var zeroBlock512 = []byte{0x12, 0x00, 0x20, 0x00, 0xdf, 0x00, 0x00, 0x11, 0x00, 0x00}

func TestWireFormat_ZeroBlockVector(t *testing.T) {
	data := make([]byte, 512)

	out, err := Decompress(zeroBlock512, DefaultDecompressOptions(len(data)))
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("decoded %d bytes, want 512 zero bytes", len(out))
	}

	cmp, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if !bytes.Equal(cmp, zeroBlock512) {
		t.Fatalf("compressed stream = % x, want % x", cmp, zeroBlock512)
	}
}

func TestDecompress_IgnoresTrailingBytes(t *testing.T) {
	data := []byte("payload followed by unrelated bytes")
	cmp, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	src := append(append([]byte(nil), cmp...), 0xDE, 0xAD, 0xBE, 0xEF)
	out, err := Decompress(src, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("decoding must stop at the terminator and ignore trailing bytes")
	}

	if _, nRead, err := DecompressN(src, nil); err != nil || nRead != len(cmp) {
		t.Fatalf("nRead = %d (err=%v), want %d", nRead, err, len(cmp))
	}
}

func TestMaxCompressedSize_CoversWorstCase(t *testing.T) {
	for _, in := range testInputSet() {
		t.Run(in.name, func(t *testing.T) {
			bound := MaxCompressedSize(len(in.data))

			cmp, err := Compress(in.data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			if len(cmp) > bound {
				t.Fatalf("compressed size %d exceeds bound %d", len(cmp), bound)
			}

			// A destination sized exactly at the bound always suffices.
			n, err := CompressInto(in.data, make([]byte, bound))
			if err != nil {
				t.Fatalf("CompressInto at bound failed: %v", err)
			}
			if n != len(cmp) {
				t.Fatalf("CompressInto wrote %d bytes, Compress produced %d", n, len(cmp))
			}
		})
	}
}

func TestCompress_NilAndEmptyEquivalent(t *testing.T) {
	fromNil, err := Compress(nil)
	if err != nil {
		t.Fatalf("Compress(nil) failed: %v", err)
	}
	fromEmpty, err := Compress([]byte{})
	if err != nil {
		t.Fatalf("Compress(empty) failed: %v", err)
	}
	if !bytes.Equal(fromNil, fromEmpty) {
		t.Fatal("nil and empty inputs must produce identical streams")
	}
}
