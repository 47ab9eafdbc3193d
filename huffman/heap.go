package huffman

import (
	"github.com/chronos-tachyon/assert"
)

type heapItem struct {
	node   int32
	weight uint64
	seq    uint32
}

// minHeap is a fixed-capacity binary min-heap of tree nodes, ordered by
// weight and then by insertion order.  A Huffman build never holds more
// than one node per symbol at once, so NumSymbols slots are enough.
type minHeap struct {
	items [NumSymbols]heapItem
	size  int
	seq   uint32
}

func (h *minHeap) Len() int {
	return h.size
}

func (h *minHeap) Push(node int32, weight uint64) {
	assert.Assertf(h.size < len(h.items), "minHeap overflow: capacity %d", len(h.items))
	i := h.size
	h.items[i] = heapItem{node: node, weight: weight, seq: h.seq}
	h.size++
	h.seq++
	h.up(i)
}

func (h *minHeap) Pop() (node int32, weight uint64) {
	assert.Assertf(h.size > 0, "minHeap underflow")
	top := h.items[0]
	h.size--
	h.items[0] = h.items[h.size]
	h.items[h.size] = heapItem{}
	h.down(0)
	return top.node, top.weight
}

func (h *minHeap) less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.seq < b.seq
}

func (h *minHeap) swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
}

func (h *minHeap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			return
		}
		h.swap(i, parent)
		i = parent
	}
}

func (h *minHeap) down(i int) {
	for {
		child := 2*i + 1
		if child >= h.size {
			return
		}
		if right := child + 1; right < h.size && h.less(right, child) {
			child = right
		}
		if !h.less(child, i) {
			return
		}
		h.swap(i, child)
		i = child
	}
}
