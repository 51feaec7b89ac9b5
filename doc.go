// Package codingtree builds Huffman coding trees for sequences of symbols and
// derives a prefix-free binary code for each distinct symbol.
//
// The pipeline has four stages, each usable on its own:
//
//     CountSymbols / CountString   input → FrequencyTable
//     NewForest                    FrequencyTable → Forest of Leaf nodes
//     BuildTree                    Forest → root Node
//     AssignCodes                  root Node → CodeTable
//
// Build and BuildString run all four stages and return a Tree.  Identical
// input always produces an identical tree and identical codes; see Forest for
// the tie-break rule that makes this so.
//
// Packing a message into bits with the resulting codes, and unpacking it by
// walking the tree, is done by the bitstream subpackage.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//
package codingtree
