package lzw

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// CodeWriter receives fixed-width codes.  *bitstream.Writer implements it.
type CodeWriter interface {
	WriteBits(n uint, bits uint32) error
}

// Encoder compresses a byte stream into a stream of LZW codes and control
// codes.  Bytes are fed one at a time through WriteByte; Close emits the
// code for the final pending match.
type Encoder struct {
	w      CodeWriter
	opts   Options
	dict   *Dictionary
	width  uint
	hits   uint64
	misses uint64
	resets int
	bytes  uint64
	codes  uint64
	closed bool
}

// NewEncoder returns an Encoder that writes codes to w.  opts must be valid.
func NewEncoder(w CodeWriter, opts Options) *Encoder {
	assert.Assertf(opts.Validate() == nil, "invalid options: %v", opts.Validate())
	return &Encoder{
		w:     w,
		opts:  opts,
		dict:  NewDictionary(opts.MaxWidth),
		width: MinWidth,
	}
}

// Width returns the current code width.
func (e *Encoder) Width() uint {
	return e.width
}

// Resets returns the number of dictionary resets so far.
func (e *Encoder) Resets() int {
	return e.resets
}

// Codes returns the number of codes emitted so far, control codes
// included.
func (e *Encoder) Codes() uint64 {
	return e.codes
}

// InputBytes returns the number of bytes fed to the Encoder so far.
func (e *Encoder) InputBytes() uint64 {
	return e.bytes
}

// WriteByte feeds one byte of input to the Encoder.
func (e *Encoder) WriteByte(b byte) error {
	assert.Assertf(!e.closed, "WriteByte called after Close")
	e.bytes++

	if e.dict.HasNextChar(b) {
		e.dict.Advance(b)
		if e.dict.IsFull() {
			e.hits++
		}
		return nil
	}

	if err := e.emit(e.dict.CurrentCode()); err != nil {
		return err
	}
	e.dict.Add(b)
	e.dict.RestartTraverse()
	e.dict.Advance(b)

	if !e.dict.IsFull() {
		return nil
	}
	e.misses++
	if !e.shouldReset() {
		return nil
	}

	if err := e.writeCode(resetCode(e.width)); err != nil {
		return err
	}
	e.dict.Reset()
	e.dict.Advance(b)
	e.width = MinWidth
	e.hits, e.misses = 0, 0
	e.resets++
	return nil
}

// Encode feeds every byte read from r to the Encoder and then closes it.
func (e *Encoder) Encode(r io.ByteReader) error {
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.WithStack(err)
		}
		if err := e.WriteByte(b); err != nil {
			return err
		}
	}
	return e.Close()
}

// Close emits the code of the pending match, if any.  It does not close
// the underlying CodeWriter.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	if !e.dict.IsTraversing() {
		return nil
	}
	return e.emit(e.dict.CurrentCode())
}

func (e *Encoder) shouldReset() bool {
	if e.opts.ResetPercent >= NoReset {
		return false
	}
	samples := e.hits + e.misses
	if samples < e.opts.MinSamples {
		return false
	}
	return e.misses*100 > uint64(e.opts.ResetPercent)*samples
}

// emit writes code, first widening the codes as far as needed.  Each GROW
// is written at the width it ends.
func (e *Encoder) emit(code uint32) error {
	for code >= growCode(e.width) {
		assert.Assertf(e.width < e.opts.MaxWidth, "code %d does not fit in %d bits", code, e.width)
		if err := e.writeCode(growCode(e.width)); err != nil {
			return err
		}
		e.width++
	}
	return e.writeCode(code)
}

func (e *Encoder) writeCode(code uint32) error {
	e.codes++
	return e.w.WriteBits(e.width, code)
}

var _ io.ByteWriter = (*Encoder)(nil)
