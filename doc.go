// Package huffpack implements a lossless byte-stream compressor based on
// Huffman coding.  The code is derived from the symbol frequencies of the
// whole input, so the artifact carries its own tree and can be decoded
// without the original input.
//
// Artifact layout:
//
//     [1 byte]  number of distinct symbols N (256 is written as 0)
//     [tree]    pre-order: 1 + 8-bit symbol for a leaf, 0 for an internal
//               node, zero-padded to a byte; just the symbol byte if N == 1
//     [1 byte]  number of pad bits at the end of the payload, 0 to 7
//     [payload] codes packed MSB-first
//
// Empty input compresses to an empty artifact.
//
// The artifact carries no symbol count, so truncation of the payload is
// caught only when it leaves a partial code or non-zero pad bits behind.
// Callers that must detect every truncation should store the artifact length
// or a checksum alongside it.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffpack
