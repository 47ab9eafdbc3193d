package huffman

import (
	"bufio"
	"io"

	"github.com/nonpop/tl15/bitstream"
	"github.com/nonpop/tl15/errs"
	"github.com/pkg/errors"
)

// Decoder turns a stream of Huffman codes back into bytes.
type Decoder struct {
	tree  *Tree
	total uint64
}

// NewDecoder rebuilds the Huffman tree for freqs.  The tree is identical to
// the one NewEncoder builds for the same table.
func NewDecoder(freqs *FrequencyTable) *Decoder {
	return &Decoder{
		tree:  BuildTree(freqs),
		total: freqs.Total(),
	}
}

// Total returns the number of symbols Decode will produce.
func (d *Decoder) Total() uint64 {
	return d.total
}

// Decode reads codes from r and writes the decoded bytes to out.
//
// The bit stream is not self-delimiting, because the padding at the end
// looks like real codes, so Decode stops after Total() symbols.  If the
// tree is a single leaf, the symbol is written Total() times and no bits
// are read at all.
//
func (d *Decoder) Decode(r *bitstream.Reader, out io.Writer) error {
	bw := bufio.NewWriter(out)
	if err := d.decode(r, bw); err != nil {
		return err
	}
	return errors.WithStack(bw.Flush())
}

func (d *Decoder) decode(r *bitstream.Reader, bw *bufio.Writer) error {
	if d.tree.Empty() {
		return nil
	}

	root := d.tree.root
	nodes := d.tree.nodes
	if nodes[root].kind == leafNode {
		symbol := byte(nodes[root].symbol)
		for i := uint64(0); i < d.total; i++ {
			if err := bw.WriteByte(symbol); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	index := root
	for emitted := uint64(0); emitted < d.total; {
		bit, err := r.ReadBits(1)
		if errors.Is(err, bitstream.ErrExhausted) {
			return errors.Wrapf(errs.ErrUnexpectedEndOfStream, "huffman: stream ended after %d of %d symbols", emitted, d.total)
		}
		if err != nil {
			return err
		}

		if bit == 0 {
			index = nodes[index].left
		} else {
			index = nodes[index].right
		}

		if n := &nodes[index]; n.kind == leafNode {
			if err := bw.WriteByte(byte(n.symbol)); err != nil {
				return errors.WithStack(err)
			}
			emitted++
			index = root
		}
	}
	return nil
}
