// Package bitstream converts between byte streams and sequences of
// arbitrary-width bit fields.  Fields are 0 to 32 bits wide and are packed
// most-significant bit first.
//
// The bit packing itself is delegated to <https://github.com/icza/bitio>;
// this package adds bit accounting, a sticky error state, and the
// "exhausted" sentinel used by the codecs to detect the end of a stream.
//
package bitstream

// MaxBits is the widest field that can be read or written in one call.
const MaxBits = 32
