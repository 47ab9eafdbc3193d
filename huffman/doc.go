// Package huffman implements order-0 Huffman compression of byte streams.
//
// The code for each byte is derived from a Huffman tree built over the
// byte frequencies of the whole input.  The frequency table is stored in
// the stream header, so the decoder can rebuild an identical tree and
// knows exactly how many symbols to produce.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
