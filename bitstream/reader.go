package bitstream

import (
	"bufio"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// ErrExhausted is returned by Reader.ReadBits when the stream holds fewer
// bits than requested.  It marks the end of the stream rather than a
// failure; callers decide whether a short stream is an error.
var ErrExhausted = errors.New("bitstream: exhausted")

// Reader reads bit fields from an underlying io.Reader.
type Reader struct {
	bits  *bitio.Reader
	count uint64
	err   error
}

// NewReader returns a Reader that reads from in through an internal
// buffer.
func NewReader(in io.Reader) *Reader {
	return &Reader{bits: bitio.NewReader(bufio.NewReader(in))}
}

// ReadBits returns the next n bits as an unsigned integer, first bit most
// significant.  n must not exceed MaxBits.
//
// If fewer than n bits remain, ReadBits returns ErrExhausted and the bits
// that were left are discarded.  After any error, every later call returns
// the same error.
//
func (r *Reader) ReadBits(n uint) (uint32, error) {
	assert.Assertf(n <= MaxBits, "n %d > MaxBits %d", n, MaxBits)
	if r.err != nil {
		return 0, r.err
	}
	if n == 0 {
		return 0, nil
	}
	u, err := r.bits.ReadBits(uint8(n))
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			r.err = ErrExhausted
		} else {
			r.err = errors.WithStack(err)
		}
		return 0, r.err
	}
	r.count += uint64(n)
	return uint32(u), nil
}

// BitCount returns the number of bits successfully read so far.
func (r *Reader) BitCount() uint64 {
	return r.count
}
