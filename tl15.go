package tl15

import (
	"io"

	"github.com/nonpop/tl15/bitstream"
	"github.com/nonpop/tl15/errs"
	"github.com/nonpop/tl15/huffman"
	"github.com/nonpop/tl15/lzw"
	"github.com/pkg/errors"
)

// Error kinds, re-exported from errs for convenience.
var (
	ErrMalformedHeader            = errs.ErrMalformedHeader
	ErrConfiguration              = errs.ErrConfiguration
	ErrUnexpectedEndOfStream      = errs.ErrUnexpectedEndOfStream
	ErrInternalInvariantViolation = errs.ErrInternalInvariantViolation
)

// Stats describes one CompressFile or DecompressFile call.
type Stats struct {
	// Algorithm is the codec that was used.
	Algorithm Algorithm

	// Uncompressed is the number of uncompressed bytes.
	Uncompressed uint64

	// Compressed is the size of the compressed stream in bytes, header
	// included.
	Compressed uint64

	// Resets is the number of LZW dictionary resets.
	Resets int
}

// Ratio returns the compressed size as a percentage of the uncompressed
// size, or 0 for empty input.
func (s Stats) Ratio() float64 {
	if s.Uncompressed == 0 {
		return 0
	}
	return 100 * float64(s.Compressed) / float64(s.Uncompressed)
}

// CompressFile compresses everything read from in with the codec chosen by
// cfg and writes the stream to out.  The configuration is checked before
// anything is read or written.
func CompressFile(in io.Reader, out io.Writer, cfg Config) (Stats, error) {
	if err := cfg.Validate(); err != nil {
		return Stats{}, err
	}

	cw := &countingWriter{w: out}
	stats := Stats{Algorithm: cfg.Algorithm}
	switch cfg.Algorithm {
	case Huffman:
		hs, err := huffman.CompressFile(in, cw)
		if err != nil {
			return Stats{}, err
		}
		stats.Uncompressed = hs.Symbols

	case LZW:
		ls, err := lzw.CompressFile(in, cw, cfg.LZW)
		if err != nil {
			return Stats{}, err
		}
		stats.Uncompressed = ls.Bytes
		stats.Resets = ls.Resets
	}
	stats.Compressed = cw.n
	return stats, nil
}

// DecompressFile decompresses the stream read from in into out.  The codec
// is chosen by the stream's magic number; a stream with an unknown magic
// number is rejected with ErrMalformedHeader before anything is written.
func DecompressFile(in io.Reader, out io.Writer) (Stats, error) {
	r := bitstream.NewReader(in)
	magic, err := r.ReadBits(32)
	if errors.Is(err, bitstream.ErrExhausted) {
		return Stats{}, errors.Wrap(errs.ErrUnexpectedEndOfStream, "header truncated in magic number")
	}
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	switch magic {
	case huffman.Magic:
		hs, err := huffman.Decompress(r, out)
		if err != nil {
			return Stats{}, err
		}
		stats = Stats{Algorithm: Huffman, Uncompressed: hs.Symbols}

	case lzw.Magic:
		ls, err := lzw.Decompress(r, out)
		if err != nil {
			return Stats{}, err
		}
		stats = Stats{Algorithm: LZW, Uncompressed: ls.Bytes, Resets: ls.Resets}

	default:
		return Stats{}, errors.Wrapf(errs.ErrMalformedHeader, "unknown magic %#08x", magic)
	}
	stats.Compressed = (r.BitCount() + 7) / 8
	return stats, nil
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
