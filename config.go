package tl15

import (
	"strconv"
	"strings"

	"github.com/nonpop/tl15/errs"
	"github.com/nonpop/tl15/lzw"
	"github.com/pkg/errors"
)

// Algorithm selects a codec.
type Algorithm byte

const (
	// LZW selects the adaptive LZW codec.
	LZW Algorithm = iota

	// Huffman selects the order-0 Huffman codec.
	Huffman
)

var algorithmNames = [...]string{
	LZW:     "lzw",
	Huffman: "huffman",
}

// String returns the name of the algorithm as accepted by ParseAlgorithm.
func (a Algorithm) String() string {
	if int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "Algorithm(" + strconv.Itoa(int(a)) + ")"
}

// ParseAlgorithm returns the Algorithm with the given name.
func ParseAlgorithm(name string) (Algorithm, error) {
	for a, n := range algorithmNames {
		if strings.EqualFold(n, name) {
			return Algorithm(a), nil
		}
	}
	return 0, errors.Wrapf(errs.ErrConfiguration, "unknown algorithm %q, expected one of %s", name, strings.Join(algorithmNames[:], ", "))
}

// Config configures CompressFile.
type Config struct {
	// Algorithm is the codec to compress with.
	Algorithm Algorithm

	// LZW holds the LZW settings.  It is ignored by the Huffman codec.
	LZW lzw.Options
}

// DefaultConfig returns LZW with 12-bit codes and no dictionary resets.
func DefaultConfig() Config {
	return Config{
		Algorithm: LZW,
		LZW:       lzw.DefaultOptions(),
	}
}

// Validate returns an error wrapping errs.ErrConfiguration if the Config
// cannot be used.
func (cfg Config) Validate() error {
	switch cfg.Algorithm {
	case Huffman:
		return nil
	case LZW:
		return cfg.LZW.Validate()
	default:
		return errors.Wrapf(errs.ErrConfiguration, "unknown algorithm %d", cfg.Algorithm)
	}
}
