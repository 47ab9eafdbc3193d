package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/nonpop/tl15/bitstream"
	"github.com/nonpop/tl15/errs"
	"github.com/pkg/errors"
)

// Encoder writes the Huffman codes of a byte stream.
type Encoder struct {
	tree    *Tree
	codes   [NumSymbols]Code
	present [NumSymbols]bool
}

// NewEncoder builds the Huffman tree for freqs and derives the code of
// every symbol that occurs in it.
func NewEncoder(freqs *FrequencyTable) *Encoder {
	e := &Encoder{tree: BuildTree(freqs)}
	for symbol := 0; symbol < NumSymbols; symbol++ {
		e.codes[symbol], e.present[symbol] = e.tree.FindCode(Symbol(symbol))
	}
	return e
}

// Tree returns the Huffman tree used by this Encoder.
func (e *Encoder) Tree() *Tree {
	return e.tree
}

// Encode returns the code for symbol.  The second result is false if
// symbol had a frequency of 0.
func (e *Encoder) Encode(symbol Symbol) (Code, bool) {
	return e.codes[symbol], e.present[symbol]
}

// EncodeAll writes the code of every byte in data to w.  Every byte must
// have had a non-zero frequency in the table given to NewEncoder.
func (e *Encoder) EncodeAll(w *bitstream.Writer, data []byte) error {
	for offset, b := range data {
		if !e.present[b] {
			return errors.Wrapf(errs.ErrInternalInvariantViolation, "huffman: byte %#02x at offset %d is missing from the frequency table", b, offset)
		}
		if err := e.codes[b].Emit(w); err != nil {
			return err
		}
	}
	return nil
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e *Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tWeight() = %d\n", e.tree.Weight())
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if !e.present[symbol] {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, e.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
