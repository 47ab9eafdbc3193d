package lzw

import (
	"bufio"
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/nonpop/tl15/bitstream"
	"github.com/nonpop/tl15/errs"
	"github.com/pkg/errors"
)

// CodeReader supplies fixed-width codes.  *bitstream.Reader implements it.
// ReadBits must return bitstream.ErrExhausted at the end of the stream.
type CodeReader interface {
	ReadBits(n uint) (uint32, error)
}

// Decoder turns a stream of LZW codes and control codes back into bytes.
// It rebuilds the encoder's dictionary as a table from code to string,
// one code behind the encoder.
type Decoder struct {
	maxWidth uint
	lastCode uint32
	table    []string
	values   map[string]struct{}
	last     string
	width    uint
	resets   int
	codes    uint64
}

// NewDecoder returns a Decoder for a stream whose codes are at most
// maxWidth bits wide.
func NewDecoder(maxWidth uint) *Decoder {
	assert.Assertf(maxWidth >= MinWidth && maxWidth <= MaxWidth, "maxWidth %d outside %d..%d", maxWidth, MinWidth, MaxWidth)
	return &Decoder{
		maxWidth: maxWidth,
		lastCode: lastCode(maxWidth),
		values:   make(map[string]struct{}),
		width:    MinWidth,
	}
}

// Resets returns the number of RESET codes decoded so far.
func (d *Decoder) Resets() int {
	return d.resets
}

// Codes returns the number of codes read so far, control codes included.
func (d *Decoder) Codes() uint64 {
	return d.codes
}

// Decode reads codes from r until the stream is exhausted and writes the
// decoded bytes to out.
func (d *Decoder) Decode(r CodeReader, out io.Writer) error {
	bw := bufio.NewWriter(out)
	if err := d.decode(r, bw); err != nil {
		return err
	}
	return errors.WithStack(bw.Flush())
}

func (d *Decoder) nextCode() uint32 {
	return numSingletons + uint32(len(d.table))
}

func (d *Decoder) reset() {
	d.table = d.table[:0]
	d.values = make(map[string]struct{})
	d.last = ""
	d.width = MinWidth
	d.resets++
}

func (d *Decoder) decode(r CodeReader, bw *bufio.Writer) error {
	for {
		code, err := r.ReadBits(d.width)
		if errors.Is(err, bitstream.ErrExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
		d.codes++

		switch code {
		case growCode(d.width):
			if d.width >= d.maxWidth {
				return errors.Wrapf(errs.ErrInternalInvariantViolation, "lzw: GROW beyond maximum width %d", d.maxWidth)
			}
			d.width++
			continue

		case resetCode(d.width):
			d.reset()
			continue
		}

		var decoded, toDict string
		switch {
		case code < numSingletons:
			decoded = string([]byte{byte(code)})
			toDict = d.last + decoded
			d.last = decoded

		case code < d.nextCode():
			decoded = d.table[code-numSingletons]
			toDict = d.last + decoded[:1]
			d.last = decoded

		default:
			// The code names the string the encoder registered right
			// after emitting the previous code, which must be the
			// previous string plus its own first byte.
			if d.last == "" {
				return errors.Wrapf(errs.ErrInternalInvariantViolation, "lzw: code %d before any output", code)
			}
			if code != d.nextCode() || code > d.lastCode {
				return errors.Wrapf(errs.ErrInternalInvariantViolation, "lzw: code %d is not known, next code is %d", code, d.nextCode())
			}
			decoded = d.last + d.last[:1]
			toDict = decoded
			d.last = decoded
		}

		if _, err := bw.WriteString(decoded); err != nil {
			return errors.WithStack(err)
		}

		if len(toDict) > 1 && d.nextCode() <= d.lastCode {
			if _, found := d.values[toDict]; !found {
				d.table = append(d.table, toDict)
				d.values[toDict] = struct{}{}
			}
		}
	}
}
