// Package tl15 compresses byte streams with one of two codecs: an order-0
// Huffman coder or an adaptive LZW coder.
//
// CompressFile writes a self-describing stream; DecompressFile recognizes
// the codec from the stream's magic number, so it needs no configuration.
//
// The codecs themselves live in the huffman and lzw subpackages, on top of
// the bit-level I/O in bitstream.  Every error returned wraps one of the
// kinds declared in errs.
//
package tl15
