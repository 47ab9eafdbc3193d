package lzw

import (
	"github.com/nonpop/tl15/errs"
	"github.com/pkg/errors"
)

const (
	// MinWidth is the width of the first codes in a stream, and the
	// smallest permitted maximum width.
	MinWidth = 9

	// MaxWidth is the largest permitted maximum width.  It must fit in
	// the 5-bit header field.
	MaxWidth = 31

	// NoReset is the ResetPercent value that disables dictionary resets.
	NoReset = 100
)

// Options configures an Encoder.
type Options struct {
	// MaxWidth is the widest code the encoder may emit, 9 to 31 bits.
	MaxWidth uint

	// ResetPercent is the share of misses, 0 to 100, above which a full
	// dictionary is reset.  100 disables resetting.
	ResetPercent uint

	// MinSamples is the number of hits plus misses that must be observed
	// after the dictionary fills up before a reset is considered.
	MinSamples uint64
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		MaxWidth:     12,
		ResetPercent: NoReset,
		MinSamples:   1000,
	}
}

// Validate returns an error wrapping errs.ErrConfiguration if any field is
// out of range.
func (opts Options) Validate() error {
	if opts.MaxWidth < MinWidth || opts.MaxWidth > MaxWidth {
		return errors.Wrapf(errs.ErrConfiguration, "lzw: code width %d outside %d..%d", opts.MaxWidth, MinWidth, MaxWidth)
	}
	if opts.ResetPercent > 100 {
		return errors.Wrapf(errs.ErrConfiguration, "lzw: reset percentage %d outside 0..100", opts.ResetPercent)
	}
	return nil
}

func growCode(width uint) uint32 {
	return uint32(1)<<width - 2
}

func resetCode(width uint) uint32 {
	return uint32(1)<<width - 1
}

// lastCode is the highest code that can be assigned to a dictionary entry
// when codes may be up to maxWidth bits wide.  It stays below both control
// codes of maxWidth.
func lastCode(maxWidth uint) uint32 {
	return uint32(1)<<maxWidth - 3
}
