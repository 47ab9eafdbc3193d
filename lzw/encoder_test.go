package lzw

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/nonpop/tl15/bitstream"
)

type record struct {
	width uint
	code  uint32
}

type codeRecorder struct {
	records []record
}

func (cr *codeRecorder) WriteBits(n uint, bits uint32) error {
	cr.records = append(cr.records, record{n, bits})
	return nil
}

func (cr *codeRecorder) codes() []uint32 {
	out := make([]uint32, len(cr.records))
	for i, rec := range cr.records {
		out[i] = rec.code
	}
	return out
}

// codeSource replays recorded codes and checks that they are read back at
// the width they were written with.
type codeSource struct {
	t       *testing.T
	records []record
}

func (cs *codeSource) ReadBits(n uint) (uint32, error) {
	if len(cs.records) == 0 {
		return 0, bitstream.ErrExhausted
	}
	rec := cs.records[0]
	cs.records = cs.records[1:]
	if rec.width != n {
		cs.t.Errorf("code %d written at width %d but read at width %d", rec.code, rec.width, n)
	}
	return rec.code, nil
}

func encodeRecords(t *testing.T, data []byte, opts Options) (*codeRecorder, *Encoder) {
	t.Helper()
	cr := &codeRecorder{}
	e := NewEncoder(cr, opts)
	for _, b := range data {
		if err := e.WriteByte(b); err != nil {
			t.Fatalf("WriteByte failed: %v", err)
		}
	}
	if err := e.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	return cr, e
}

func equalCodes(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEncoder_Codes(t *testing.T) {
	type testRow struct {
		name   string
		data   []byte
		expect []uint32
	}

	testData := [...]testRow{
		{"empty", []byte{}, []uint32{}},
		{"one", []byte{1}, []uint32{1}},
		{"two", []byte{1, 1}, []uint32{1, 1}},
		{"three", []byte{1, 1, 1}, []uint32{1, 256}},
		{"alternating", []byte{0, 1, 0, 1, 0, 1, 0}, []uint32{0, 1, 256, 258}},
		{"ten-ones", []byte{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}, []uint32{1, 256, 257, 258}},
		{"mixed", []byte{0, 1, 2, 3, 2, 3, 4, 3, 5, 4, 1, 2, 3}, []uint32{0, 1, 2, 3, 258, 4, 3, 5, 4, 257, 3}},
		{"distinct", []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"long-alternating", []byte{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1}, []uint32{1, 0, 256, 258, 257, 260, 258}},
	}
	for _, row := range testData {
		for _, width := range []uint{9, 10, 16, 31} {
			opts := Options{MaxWidth: width, ResetPercent: NoReset}
			cr, _ := encodeRecords(t, row.data, opts)
			if actual := cr.codes(); !equalCodes(row.expect, actual) {
				t.Errorf("%s at width %d:\n\texpect: %v\n\tactual: %v", row.name, width, row.expect, actual)
			}
			for _, rec := range cr.records {
				if rec.width != MinWidth {
					t.Errorf("%s at width %d: code %d written at width %d", row.name, width, rec.code, rec.width)
				}
			}
		}
	}
}

func TestEncoder_ResetWhenFull(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	cr, e := encodeRecords(t, data, Options{MaxWidth: 9, ResetPercent: 0, MinSamples: 0})

	expect := make([]uint32, 0, 257)
	for code := uint32(0); code <= 253; code++ {
		expect = append(expect, code)
	}
	expect = append(expect, resetCode(9), 254, 255)

	if actual := cr.codes(); !equalCodes(expect, actual) {
		t.Errorf("wrong codes:\n\texpect: %v\n\tactual: %v", expect, actual)
	}
	if e.Resets() != 1 {
		t.Errorf("expected 1 reset, got %d", e.Resets())
	}
}

func TestEncoder_Grow(t *testing.T) {
	// A four-letter alphabet fills the dictionary past code 510 quickly and
	// reuses long strings, so the stream must widen to 10 bits.
	rng := rand.New(rand.NewSource(3))
	data := make([]byte, 4000)
	for i := range data {
		data[i] = byte('a' + rng.Intn(4))
	}

	cr, e := encodeRecords(t, data, Options{MaxWidth: 12, ResetPercent: NoReset})
	if e.Width() < 10 {
		t.Fatalf("expected the width to grow, still %d", e.Width())
	}

	grown := false
	for i, rec := range cr.records {
		if rec.width == 9 && rec.code == growCode(9) {
			grown = true
			next := cr.records[i+1]
			if next.width != 10 || next.code < growCode(9) {
				t.Errorf("GROW followed by code %d at width %d", next.code, next.width)
			}
			break
		}
		if rec.width != 9 {
			t.Fatalf("code %d at width %d before any GROW", rec.code, rec.width)
		}
	}
	if !grown {
		t.Errorf("no GROW code emitted")
	}
}

// checkCodeStream verifies the control-code protocol of a recorded stream.
func checkCodeStream(t *testing.T, records []record, opts Options) (resets int) {
	t.Helper()
	width := uint(MinWidth)
	for i, rec := range records {
		if rec.width != width {
			t.Fatalf("record %d: width %d, expected %d", i, rec.width, width)
		}
		if rec.code >= uint32(1)<<width {
			t.Fatalf("record %d: code %d does not fit in %d bits", i, rec.code, width)
		}
		switch rec.code {
		case growCode(width):
			if width >= opts.MaxWidth {
				t.Fatalf("record %d: GROW at maximum width %d", i, width)
			}
			if i+1 >= len(records) || records[i+1].code < growCode(width) {
				t.Fatalf("record %d: GROW at width %d not needed by the next code", i, width)
			}
			width++
		case resetCode(width):
			if opts.ResetPercent >= NoReset {
				t.Fatalf("record %d: RESET with resetting disabled", i)
			}
			width = MinWidth
			resets++
		default:
			if rec.code > lastCode(opts.MaxWidth) {
				t.Fatalf("record %d: code %d beyond last code %d", i, rec.code, lastCode(opts.MaxWidth))
			}
		}
	}
	return resets
}

func TestEncoder_Protocol(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	random := make([]byte, 30000)
	rng.Read(random)

	// A repetitive first half followed by noise makes the hit rate drop
	// once the dictionary is full.
	phased := make([]byte, 30000)
	for i := range phased {
		if i < len(phased)/2 {
			phased[i] = "abcab"[i%5]
		} else {
			phased[i] = byte(rng.Intn(256))
		}
	}

	type testRow struct {
		name        string
		data        []byte
		opts        Options
		expectReset bool
	}

	testData := [...]testRow{
		{"random-noreset", random, Options{MaxWidth: 10, ResetPercent: NoReset, MinSamples: 0}, false},
		{"random-always", random, Options{MaxWidth: 9, ResetPercent: 0, MinSamples: 0}, true},
		{"random-unsampled", random, Options{MaxWidth: 9, ResetPercent: 0, MinSamples: 1 << 40}, false},
		{"random-threshold", random, Options{MaxWidth: 10, ResetPercent: 30, MinSamples: 100}, true},
		{"phased-threshold", phased, Options{MaxWidth: 11, ResetPercent: 25, MinSamples: 500}, true},
		{"phased-wide", phased, Options{MaxWidth: 20, ResetPercent: 20, MinSamples: 100}, false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			cr, e := encodeRecords(t, row.data, row.opts)
			resets := checkCodeStream(t, cr.records, row.opts)
			if resets != e.Resets() {
				t.Errorf("stream has %d RESET codes, encoder counted %d", resets, e.Resets())
			}
			if (resets > 0) != row.expectReset {
				t.Errorf("expected resets=%v, got %d", row.expectReset, resets)
			}

			var out bytes.Buffer
			d := NewDecoder(row.opts.MaxWidth)
			if err := d.Decode(&codeSource{t: t, records: cr.records}, &out); err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !bytes.Equal(row.data, out.Bytes()) {
				t.Errorf("round trip mismatch: %d bytes in, %d bytes out", len(row.data), out.Len())
			}
			if d.Resets() != resets {
				t.Errorf("decoder saw %d resets, expected %d", d.Resets(), resets)
			}
		})
	}
}
