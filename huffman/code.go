package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
	"github.com/nonpop/tl15/bitstream"
)

// MaxCodeSize is the longest code a Code can hold.  Frequencies are 32-bit
// counts, which keeps real trees well below this depth.
const MaxCodeSize = 64

// Code represents a sequence of bits in root-to-leaf order.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant
	// valid bit, bit (Size - 1), is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	assert.Assertf(size <= MaxCodeSize, "size %d > MaxCodeSize %d", size, MaxCodeSize)
	return Code{Size: size, Bits: bits}
}

// Emit writes the bits of this Code to w, first bit first.
func (hc Code) Emit(w *bitstream.Writer) error {
	size := uint(hc.Size)
	if size > bitstream.MaxBits {
		size -= bitstream.MaxBits
		if err := w.WriteBits(bitstream.MaxBits, uint32(hc.Bits>>size)); err != nil {
			return err
		}
	}
	return w.WriteBits(size, uint32(hc.Bits))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}
