package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

type nodeKind byte

const (
	leafNode nodeKind = iota
	internalNode
)

// noNode marks a missing parent, child or leaf index.
const noNode = int32(-1)

// node is either a leaf (symbol, weight) or an internal node (weight, left,
// right).  Links are indices into Tree.nodes.
type node struct {
	kind   nodeKind
	symbol Symbol
	weight uint64
	left   int32
	right  int32
	parent int32
}

// Tree is a Huffman tree.  All nodes live in a single arena owned by the
// Tree; parent links exist only to derive codes bottom-up.
type Tree struct {
	nodes  []node
	root   int32
	leaves [NumSymbols]int32
}

// BuildTree builds the Huffman tree for the given frequencies.
//
// A table with no non-zero frequencies yields an empty tree.  A table with
// exactly one non-zero frequency yields a tree whose root is that symbol's
// leaf, so its code has length 0.
//
func BuildTree(freqs *FrequencyTable) *Tree {
	t := &Tree{
		nodes: make([]node, 0, 2*NumSymbols-1),
		root:  noNode,
	}

	// Step 1: one leaf per symbol that occurs, all pushed onto the heap.

	var h minHeap
	for symbol := 0; symbol < NumSymbols; symbol++ {
		t.leaves[symbol] = noNode
		freq := freqs[symbol]
		if freq == 0 {
			continue
		}
		index := t.addNode(node{
			kind:   leafNode,
			symbol: Symbol(symbol),
			weight: uint64(freq),
		})
		t.leaves[symbol] = index
		h.Push(index, uint64(freq))
	}

	// Step 2: repeatedly merge the two lightest nodes under a new
	// internal node until a single node remains.

	for h.Len() >= 2 {
		a, aWeight := h.Pop()
		b, bWeight := h.Pop()
		index := t.addNode(node{
			kind:   internalNode,
			weight: aWeight + bWeight,
			left:   a,
			right:  b,
		})
		t.nodes[a].parent = index
		t.nodes[b].parent = index
		h.Push(index, aWeight+bWeight)
	}

	if h.Len() == 1 {
		t.root, _ = h.Pop()
	}
	return t
}

func (t *Tree) addNode(n node) int32 {
	n.parent = noNode
	if n.kind == leafNode {
		n.left, n.right = noNode, noNode
	}
	index := int32(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return index
}

// Empty returns true iff the tree has no nodes at all.
func (t *Tree) Empty() bool {
	return t.root == noNode
}

// Weight returns the weight of the root, i.e. the total input length.
func (t *Tree) Weight() uint64 {
	if t.root == noNode {
		return 0
	}
	return t.nodes[t.root].weight
}

// FindCode returns the code for symbol by walking from its leaf up to the
// root.  The second result is false if symbol does not occur in the tree.
func (t *Tree) FindCode(symbol Symbol) (Code, bool) {
	index := t.leaves[symbol]
	if index == noNode {
		return Code{}, false
	}

	// The bit for the deepest edge lands at position 0, so after the walk
	// the bit for the root edge is the most significant one.
	var hc Code
	for {
		parent := t.nodes[index].parent
		if parent == noNode {
			break
		}
		assert.Assertf(hc.Size < MaxCodeSize, "code for symbol %d exceeds %d bits", symbol, MaxCodeSize)
		if t.nodes[parent].right == index {
			hc.Bits |= uint64(1) << hc.Size
		}
		hc.Size++
		index = parent
	}
	return hc, true
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = %d\n", t.root)
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	for index, n := range t.nodes {
		switch n.kind {
		case leafNode:
			fmt.Fprintf(&buf, "\tNode(%d) = Leaf{%d, %d} ^%d\n", index, n.symbol, n.weight, n.parent)
		case internalNode:
			fmt.Fprintf(&buf, "\tNode(%d) = Internal{%d, %d, %d} ^%d\n", index, n.weight, n.left, n.right, n.parent)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
