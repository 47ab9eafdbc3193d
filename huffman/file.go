package huffman

import (
	"io"

	"github.com/nonpop/tl15/bitstream"
	"github.com/nonpop/tl15/errs"
	"github.com/pkg/errors"
)

// Magic identifies a Huffman-compressed stream: "TL" followed by 0x01 0x05.
const Magic = uint32('T')<<24 | uint32('L')<<16 | 1<<8 | 5

// HeaderBits is the size of the stream header: the magic number followed
// by one 32-bit big-endian frequency per symbol.
const HeaderBits = 32 + NumSymbols*32

// Stats describes one compression or decompression run.
type Stats struct {
	// Symbols is the number of uncompressed bytes.
	Symbols uint64

	// Distinct is the number of different byte values in the input.
	Distinct int

	// PayloadBits is the number of code bits, excluding header and padding.
	PayloadBits uint64
}

// WriteHeader writes the magic number and the frequency table to w.
func WriteHeader(w *bitstream.Writer, freqs *FrequencyTable) error {
	if err := w.WriteBits(32, Magic); err != nil {
		return err
	}
	for _, freq := range freqs {
		if err := w.WriteBits(32, freq); err != nil {
			return err
		}
	}
	return nil
}

// ReadFrequencies reads the frequency table that follows the magic number.
func ReadFrequencies(r *bitstream.Reader) (FrequencyTable, error) {
	var freqs FrequencyTable
	for symbol := range freqs {
		freq, err := r.ReadBits(32)
		if errors.Is(err, bitstream.ErrExhausted) {
			return FrequencyTable{}, errors.Wrapf(errs.ErrUnexpectedEndOfStream, "huffman: header truncated at frequency %d", symbol)
		}
		if err != nil {
			return FrequencyTable{}, err
		}
		freqs[symbol] = freq
	}
	return freqs, nil
}

// Compress writes a complete Huffman stream for data to w.  The caller must
// Close w.
func Compress(w *bitstream.Writer, data []byte) (Stats, error) {
	freqs, err := CountFrequencies(data)
	if err != nil {
		return Stats{}, err
	}
	if err := WriteHeader(w, &freqs); err != nil {
		return Stats{}, err
	}
	start := w.BitCount()
	if err := NewEncoder(&freqs).EncodeAll(w, data); err != nil {
		return Stats{}, err
	}
	return Stats{
		Symbols:     uint64(len(data)),
		Distinct:    freqs.Distinct(),
		PayloadBits: w.BitCount() - start,
	}, nil
}

// Decompress decodes the remainder of a Huffman stream whose magic number
// has already been consumed from r.
func Decompress(r *bitstream.Reader, out io.Writer) (Stats, error) {
	freqs, err := ReadFrequencies(r)
	if err != nil {
		return Stats{}, err
	}
	start := r.BitCount()
	if err := NewDecoder(&freqs).Decode(r, out); err != nil {
		return Stats{}, err
	}
	return Stats{
		Symbols:     freqs.Total(),
		Distinct:    freqs.Distinct(),
		PayloadBits: r.BitCount() - start,
	}, nil
}

// CompressFile compresses everything read from in and writes the Huffman
// stream to out.  Building the code needs the frequencies of the whole
// input, so in is read fully into memory first.
func CompressFile(in io.Reader, out io.Writer) (Stats, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return Stats{}, errors.WithStack(err)
	}
	w := bitstream.NewWriter(out)
	stats, err := Compress(w, data)
	if err != nil {
		return Stats{}, err
	}
	return stats, w.Close()
}

// DecompressFile decompresses the Huffman stream read from in into out.
// A stream that does not start with Magic is rejected before anything is
// written.
func DecompressFile(in io.Reader, out io.Writer) (Stats, error) {
	r := bitstream.NewReader(in)
	magic, err := r.ReadBits(32)
	if errors.Is(err, bitstream.ErrExhausted) {
		return Stats{}, errors.Wrap(errs.ErrUnexpectedEndOfStream, "huffman: header truncated in magic number")
	}
	if err != nil {
		return Stats{}, err
	}
	if magic != Magic {
		return Stats{}, errors.Wrapf(errs.ErrMalformedHeader, "huffman: bad magic %#08x", magic)
	}
	return Decompress(r, out)
}
