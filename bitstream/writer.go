package bitstream

import (
	"bufio"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Writer packs bit fields into bytes and writes them to an underlying
// io.Writer.  Output is buffered; Close must be called to emit the final
// partial byte and flush the buffer.
type Writer struct {
	buf   *bufio.Writer
	bits  *bitio.Writer
	count uint64
	err   error
}

// NewWriter returns a Writer that writes to out.  Closing the Writer does
// not close out.
func NewWriter(out io.Writer) *Writer {
	buf := bufio.NewWriter(out)
	return &Writer{
		buf:  buf,
		bits: bitio.NewWriter(buf),
	}
}

// WriteBits writes the n low-order bits of bits, most significant first.
// Bits above position n are ignored.  n must not exceed MaxBits.
//
// Once a write fails, every later call returns the same error.
//
func (w *Writer) WriteBits(n uint, bits uint32) error {
	assert.Assertf(n <= MaxBits, "n %d > MaxBits %d", n, MaxBits)
	if w.err != nil {
		return w.err
	}
	if n == 0 {
		return nil
	}
	mask := uint64(1)<<n - 1
	if err := w.bits.WriteBits(uint64(bits)&mask, uint8(n)); err != nil {
		w.err = errors.WithStack(err)
		return w.err
	}
	w.count += uint64(n)
	return nil
}

// BitCount returns the number of bits written so far, not counting the
// padding added by Close.
func (w *Writer) BitCount() uint64 {
	return w.count
}

// Close writes out any partial final byte, with its unused low-order bits
// set to zero, and flushes buffered output.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if err := w.bits.Close(); err != nil {
		w.err = errors.WithStack(err)
		return w.err
	}
	if err := w.buf.Flush(); err != nil {
		w.err = errors.WithStack(err)
		return w.err
	}
	return nil
}
