// Package huffman implements a Huffman coding engine for finite streams of
// symbols.  It counts symbol frequencies, builds a weighted binary prefix-code
// tree, derives a bit-code for every distinct symbol, and uses those codes to
// losslessly encode a stream into a sequence of bits and decode it back.
//
// The stages are exposed individually (CountFrequencies, BuildTree,
// AssignCodes, Encoder, Decoder) and bundled together by Codec.  Bits are
// manipulated as explicit sequences; nothing is packed into bytes.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
