// Package lzw implements adaptive LZW compression of byte streams.
//
// Codes start out 9 bits wide.  Two values at the top of each width are
// reserved as control codes: GROW (2^width - 2) tells the decoder that the
// following codes are one bit wider, and RESET (2^width - 1) tells it to
// drop every learned string and go back to 9-bit codes.  The encoder grows
// the width lazily, just before it first needs to emit a code that no
// longer fits, and never beyond the configured maximum width.
//
// Once the dictionary is full, the encoder tracks how often the input
// still extends a known string (a hit) versus how often it has to emit a
// code (a miss).  When the share of misses exceeds a configured
// percentage, the dictionary is reset so it can adapt to the new data.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Lempel%E2%80%93Ziv%E2%80%93Welch>
//
package lzw
