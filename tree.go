package codingtree

import (
	"bytes"
	"fmt"
	"io"
)

// Tree is the result of running the whole pipeline over one input: the
// frequencies that were counted, the Huffman tree built from them, and the
// codes assigned from that tree.
//
// The same input always produces the same Tree, down to which Symbol ends up
// on which side of every Internal node.
//
type Tree struct {
	freqs FrequencyTable
	root  Node
	codes CodeTable
}

// Build runs the pipeline over a sequence of symbols.
func Build(input []Symbol) *Tree {
	return BuildFromFrequencies(CountSymbols(input))
}

// BuildString runs the pipeline over the code points of a string.
func BuildString(input string) *Tree {
	return BuildFromFrequencies(CountString(input))
}

// BuildFromFrequencies runs the pipeline starting from already-counted
// frequencies.
func BuildFromFrequencies(ft FrequencyTable) *Tree {
	root := BuildTree(NewForest(ft))
	return &Tree{
		freqs: ft,
		root:  root,
		codes: AssignCodes(root),
	}
}

// Frequencies returns the counted frequencies.
func (t *Tree) Frequencies() FrequencyTable {
	return t.freqs
}

// Root returns the root of the Huffman tree, or nil if the input was empty.
func (t *Tree) Root() Node {
	return t.root
}

// Codes returns the code for every distinct Symbol of the input.
func (t *Tree) Codes() CodeTable {
	return t.codes
}

// Empty returns true iff the input held no symbols, in which case there is no
// root and the CodeTable is empty.
func (t *Tree) Empty() bool {
	return t.root == nil
}

// EncodedSize returns the number of bits the input occupies once encoded.
func (t *Tree) EncodedSize() uint64 {
	return t.codes.EncodedSize(t.freqs)
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tTotal() = %d\n", t.freqs.Total())
	fmt.Fprintf(&buf, "\tEncodedSize() = %d\n", t.EncodedSize())
	fmt.Fprintf(&buf, "\tDepth() = %d\n", Depth(t.root))
	t.freqs.Each(func(sym Symbol, count uint64) bool {
		hc, _ := t.codes.Lookup(sym)
		fmt.Fprintf(&buf, "\t%v: count=%d code=%s\n", sym, count, hc)
		return true
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	if t.root == nil {
		return "(empty Huffman tree)"
	}
	return fmt.Sprintf("(Huffman tree with %d symbols, %d occurrences, %d encoded bits)", t.freqs.Len(), t.freqs.Total(), t.EncodedSize())
}

var _ fmt.Stringer = (*Tree)(nil)
