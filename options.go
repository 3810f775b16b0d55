// SPDX-License-Identifier: MIT

package lzo1x

// DecompressOptions configures decompression. A nil options value is valid:
// the output starts empty and grows to fit, with no size limit.
type DecompressOptions struct {
	// SizeHint pre-sizes the output buffer (expected decompressed size).
	// Purely an allocation hint; the output still grows past it if needed.
	SizeHint int
	// MaxOutputSize caps the decompressed size (0 = no limit). Decoding a
	// stream that expands past it fails with ErrOutputOverrun.
	MaxOutputSize int
}

// DefaultDecompressOptions returns options with the given size hint and no
// output limit.
func DefaultDecompressOptions(sizeHint int) *DecompressOptions {
	return &DecompressOptions{SizeHint: sizeHint}
}
