package lzw

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

// numSingletons is the number of permanent one-byte entries.
const numSingletons = 256

// atRoot is the cursor value before any byte has been matched.
const atRoot = uint32(math.MaxUint32)

// entry is a learned string: its prefix's code plus one more byte.  An
// entry's code is numSingletons plus its index in Dictionary.entries.
type entry struct {
	prefix uint32
	symbol byte
}

type edgeKey uint64

func makeEdgeKey(code uint32, symbol byte) edgeKey {
	return edgeKey(code)<<8 | edgeKey(symbol)
}

// Dictionary is the LZW string table used by the encoder.  It is a trie
// whose nodes are identified by their codes: codes 0 to 255 are the
// single-byte strings, and every later code extends an earlier one by one
// byte.  A cursor walks the trie as input arrives.
//
// Dictionary only stores strings; deciding when to widen codes or to reset
// is up to the Encoder.
//
type Dictionary struct {
	entries  []entry
	edges    map[edgeKey]uint32
	lastCode uint32
	cursor   uint32
}

// NewDictionary returns a Dictionary holding only the 256 single-byte
// strings, sized for codes up to maxWidth bits.
func NewDictionary(maxWidth uint) *Dictionary {
	assert.Assertf(maxWidth >= MinWidth && maxWidth <= MaxWidth, "maxWidth %d outside %d..%d", maxWidth, MinWidth, MaxWidth)
	return &Dictionary{
		edges:    make(map[edgeKey]uint32),
		lastCode: lastCode(maxWidth),
		cursor:   atRoot,
	}
}

// NextCode returns the code the next added string will get.
func (d *Dictionary) NextCode() uint32 {
	return numSingletons + uint32(len(d.entries))
}

// LastCode returns the highest code that can be assigned.
func (d *Dictionary) LastCode() uint32 {
	return d.lastCode
}

// IsFull returns true iff no more strings can be added.
func (d *Dictionary) IsFull() bool {
	return d.NextCode() > d.lastCode
}

// HasNextChar returns true iff the string at the cursor followed by symbol
// is in the dictionary.
func (d *Dictionary) HasNextChar(symbol byte) bool {
	if d.cursor == atRoot {
		return true
	}
	_, found := d.edges[makeEdgeKey(d.cursor, symbol)]
	return found
}

// Advance moves the cursor to the string at the cursor followed by symbol,
// which must be in the dictionary.
func (d *Dictionary) Advance(symbol byte) {
	if d.cursor == atRoot {
		d.cursor = uint32(symbol)
		return
	}
	next, found := d.edges[makeEdgeKey(d.cursor, symbol)]
	assert.Assertf(found, "Advance(%d) from code %d: no such entry", symbol, d.cursor)
	d.cursor = next
}

// CurrentCode returns the code of the string at the cursor.
func (d *Dictionary) CurrentCode() uint32 {
	assert.Assertf(d.cursor != atRoot, "CurrentCode called at the root")
	return d.cursor
}

// IsTraversing returns true iff the cursor is not at the root.
func (d *Dictionary) IsTraversing() bool {
	return d.cursor != atRoot
}

// RestartTraverse moves the cursor back to the root.
func (d *Dictionary) RestartTraverse() {
	d.cursor = atRoot
}

// Add adds the string at the cursor followed by symbol under NextCode().
// The cursor does not move.  Add does nothing if the dictionary is full.
func (d *Dictionary) Add(symbol byte) {
	assert.Assertf(d.cursor != atRoot, "Add called at the root")
	if d.IsFull() {
		return
	}
	d.edges[makeEdgeKey(d.cursor, symbol)] = d.NextCode()
	d.entries = append(d.entries, entry{prefix: d.cursor, symbol: symbol})
}

// Reset drops every string except the 256 single-byte ones and moves the
// cursor back to the root.
func (d *Dictionary) Reset() {
	d.entries = d.entries[:0]
	d.edges = make(map[edgeKey]uint32)
	d.cursor = atRoot
}

// Lookup returns the bytes of the string with the given code, or nil if no
// string has that code.
func (d *Dictionary) Lookup(code uint32) []byte {
	if code >= d.NextCode() {
		return nil
	}
	var out []byte
	for code >= numSingletons {
		e := d.entries[code-numSingletons]
		out = append(out, e.symbol)
		code = e.prefix
	}
	out = append(out, byte(code))
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Dump writes a programmer-readable debugging dump of the Dictionary's
// learned strings to the given writer.
func (d *Dictionary) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Dictionary{\n")
	fmt.Fprintf(&buf, "\tNextCode() = %d\n", d.NextCode())
	fmt.Fprintf(&buf, "\tLastCode() = %d\n", d.lastCode)
	for index, e := range d.entries {
		code := numSingletons + uint32(index)
		fmt.Fprintf(&buf, "\tEntry(%d) = %d + %d = %v\n", code, e.prefix, e.symbol, d.Lookup(code))
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
