package huffman

import (
	"math"

	"github.com/pkg/errors"
)

// FrequencyTable holds the number of occurrences of each Symbol.
type FrequencyTable [NumSymbols]uint32

// CountFrequencies returns the FrequencyTable of data.  It fails if any
// byte occurs more than math.MaxUint32 times, since the header stores
// 32-bit counts.
func CountFrequencies(data []byte) (FrequencyTable, error) {
	var freqs FrequencyTable
	for _, b := range data {
		if freqs[b] == math.MaxUint32 {
			return FrequencyTable{}, errors.Errorf("huffman: byte %#02x occurs more than %d times", b, uint32(math.MaxUint32))
		}
		freqs[b]++
	}
	return freqs, nil
}

// Total returns the sum of all frequencies, i.e. the length of the input.
func (freqs *FrequencyTable) Total() uint64 {
	var total uint64
	for _, freq := range freqs {
		total += uint64(freq)
	}
	return total
}

// Distinct returns the number of symbols with a non-zero frequency.
func (freqs *FrequencyTable) Distinct() int {
	var n int
	for _, freq := range freqs {
		if freq != 0 {
			n++
		}
	}
	return n
}
