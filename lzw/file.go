package lzw

import (
	"bufio"
	"io"

	"github.com/nonpop/tl15/bitstream"
	"github.com/nonpop/tl15/errs"
	"github.com/pkg/errors"
)

// Magic identifies an LZW-compressed stream: "TL" followed by 0x01 0x06.
const Magic = uint32('T')<<24 | uint32('L')<<16 | 1<<8 | 6

// widthFieldBits is the size of the header field holding the maximum code
// width.
const widthFieldBits = 5

// Stats describes one compression or decompression run.
type Stats struct {
	// Bytes is the number of uncompressed bytes.
	Bytes uint64

	// Codes is the number of codes in the stream, control codes included.
	Codes uint64

	// Resets is the number of dictionary resets.
	Resets int

	// MaxWidth is the maximum code width recorded in the header.
	MaxWidth uint
}

// Compress writes a complete LZW stream for everything read from in to w.
// The caller must Close w.
func Compress(w *bitstream.Writer, in io.ByteReader, opts Options) (Stats, error) {
	if err := opts.Validate(); err != nil {
		return Stats{}, err
	}
	if err := w.WriteBits(32, Magic); err != nil {
		return Stats{}, err
	}
	if err := w.WriteBits(widthFieldBits, uint32(opts.MaxWidth)); err != nil {
		return Stats{}, err
	}
	e := NewEncoder(w, opts)
	if err := e.Encode(in); err != nil {
		return Stats{}, err
	}
	return Stats{
		Bytes:    e.InputBytes(),
		Codes:    e.Codes(),
		Resets:   e.Resets(),
		MaxWidth: opts.MaxWidth,
	}, nil
}

// Decompress decodes the remainder of an LZW stream whose magic number has
// already been consumed from r.
func Decompress(r *bitstream.Reader, out io.Writer) (Stats, error) {
	field, err := r.ReadBits(widthFieldBits)
	if errors.Is(err, bitstream.ErrExhausted) {
		return Stats{}, errors.Wrap(errs.ErrUnexpectedEndOfStream, "lzw: header truncated in code width")
	}
	if err != nil {
		return Stats{}, err
	}
	maxWidth := uint(field)
	if maxWidth < MinWidth || maxWidth > MaxWidth {
		return Stats{}, errors.Wrapf(errs.ErrMalformedHeader, "lzw: code width %d outside %d..%d", maxWidth, MinWidth, MaxWidth)
	}

	cw := &countingWriter{w: out}
	d := NewDecoder(maxWidth)
	if err := d.Decode(r, cw); err != nil {
		return Stats{}, err
	}
	return Stats{
		Bytes:    cw.n,
		Codes:    d.Codes(),
		Resets:   d.Resets(),
		MaxWidth: maxWidth,
	}, nil
}

// CompressFile compresses everything read from in and writes the LZW
// stream to out.
func CompressFile(in io.Reader, out io.Writer, opts Options) (Stats, error) {
	if err := opts.Validate(); err != nil {
		return Stats{}, err
	}
	w := bitstream.NewWriter(out)
	stats, err := Compress(w, bufio.NewReader(in), opts)
	if err != nil {
		return Stats{}, err
	}
	return stats, w.Close()
}

// DecompressFile decompresses the LZW stream read from in into out.  A
// stream with a bad header is rejected before anything is written.
func DecompressFile(in io.Reader, out io.Writer) (Stats, error) {
	r := bitstream.NewReader(in)
	magic, err := r.ReadBits(32)
	if errors.Is(err, bitstream.ErrExhausted) {
		return Stats{}, errors.Wrap(errs.ErrUnexpectedEndOfStream, "lzw: header truncated in magic number")
	}
	if err != nil {
		return Stats{}, err
	}
	if magic != Magic {
		return Stats{}, errors.Wrapf(errs.ErrMalformedHeader, "lzw: bad magic %#08x", magic)
	}
	return Decompress(r, out)
}

type countingWriter struct {
	w io.Writer
	n uint64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += uint64(n)
	return n, err
}
