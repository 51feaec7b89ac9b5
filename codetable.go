package codingtree

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// CodeTable maps each Symbol of a Huffman tree to its Code.  It is immutable
// once built; the zero value is the empty table.
type CodeTable struct {
	symbols []Symbol
	codes   map[Symbol]Code
	minSize byte
	maxSize byte
}

// AssignCodes derives a CodeTable from the tree rooted at root.  Each Leaf
// receives the path that leads to it, with '0' for every step to a left child
// and '1' for every step to a right child.
//
// A nil root yields the empty table.  A root that is itself a Leaf has no
// path, so its Symbol receives the 1-bit code "0".
//
func AssignCodes(root Node) CodeTable {
	if root == nil {
		return CodeTable{}
	}

	codes := make(map[Symbol]Code)
	if leaf, ok := root.(*Leaf); ok {
		codes[leaf.symbol] = MakeCode(1, 0)
	} else {
		Walk(root, func(node Node, path Code) bool {
			if leaf, ok := node.(*Leaf); ok {
				codes[leaf.symbol] = path
			}
			return true
		})
	}
	return makeCodeTable(codes)
}

func makeCodeTable(codes map[Symbol]Code) CodeTable {
	ct := CodeTable{
		symbols: maps.Keys(codes),
		codes:   codes,
	}
	slices.Sort(ct.symbols)

	for index, sym := range ct.symbols {
		size := codes[sym].Size
		if index == 0 {
			ct.minSize = size
			ct.maxSize = size
		} else if ct.minSize > size {
			ct.minSize = size
		} else if ct.maxSize < size {
			ct.maxSize = size
		}
	}
	return ct
}

// Len returns the number of symbols in the table.
func (ct CodeTable) Len() int {
	return len(ct.symbols)
}

// Lookup returns the Code for sym, and false if sym has no Code.
func (ct CodeTable) Lookup(sym Symbol) (Code, bool) {
	hc, found := ct.codes[sym]
	return hc, found
}

// Symbols returns the symbols of the table in ascending order.
func (ct CodeTable) Symbols() []Symbol {
	return slices.Clone(ct.symbols)
}

// Strings returns the table as a map from Symbol to a string of '0' and '1'
// characters.
func (ct CodeTable) Strings() map[Symbol]string {
	out := make(map[Symbol]string, len(ct.codes))
	for sym, hc := range ct.codes {
		out[sym] = hc.Digits()
	}
	return out
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() byte {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() byte {
	return ct.maxSize
}

// SizeBySymbol returns the bit length of each Symbol's code.
func (ct CodeTable) SizeBySymbol() map[Symbol]byte {
	out := make(map[Symbol]byte, len(ct.codes))
	for sym, hc := range ct.codes {
		out[sym] = hc.Size
	}
	return out
}

// EncodedSize returns the number of bits needed to encode an input with the
// given frequencies.  Symbols of ft that have no Code are not counted.
func (ct CodeTable) EncodedSize(ft FrequencyTable) uint64 {
	var total uint64
	ft.Each(func(sym Symbol, count uint64) bool {
		if hc, found := ct.codes[sym]; found {
			total += count * uint64(hc.Size)
		}
		return true
	})
	return total
}

// Canonical returns the canonical Huffman code with the same code lengths as
// this table, per the algorithm in RFC 1951 Section 3.2.2.  Codes of equal
// length are assigned consecutively in ascending Symbol order.
func (ct CodeTable) Canonical() CodeTable {
	if len(ct.symbols) == 0 {
		return CodeTable{}
	}

	// Step 1: sort the symbols by (size, Symbol) ascending.

	sorted := make(bySize, 0, len(ct.symbols))
	for _, sym := range ct.symbols {
		sorted = append(sorted, symbolAndSize{sym, ct.codes[sym].Size})
	}
	sorted.Sort()

	// Step 2: assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	codes := make(map[Symbol]Code, len(sorted))
	lastSize := sorted[0].size
	nextCode := uint64(0)
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= (item.size - lastSize)
			lastSize = item.size
		}
		codes[item.symbol] = MakeCode(item.size, nextCode)
		nextCode++
	}
	return makeCodeTable(codes)
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	ct.dumpTo(&buf, "\t")
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (ct CodeTable) dumpTo(buf *bytes.Buffer, indent string) {
	fmt.Fprintf(buf, "%sMinSize() = %d\n", indent, ct.minSize)
	fmt.Fprintf(buf, "%sMaxSize() = %d\n", indent, ct.maxSize)
	for _, sym := range ct.symbols {
		fmt.Fprintf(buf, "%sLookup(%v) = %s\n", indent, sym, ct.codes[sym])
	}
}

// String returns a brief description of this table.
func (ct CodeTable) String() string {
	return fmt.Sprintf("(code table with %d symbols, with coded lengths of %d .. %d bits)", len(ct.symbols), ct.minSize, ct.maxSize)
}

var _ fmt.Stringer = CodeTable{}

// type symbolAndSize + type bySize {{{

type symbolAndSize struct {
	symbol Symbol
	size   byte
}

type bySize []symbolAndSize

func (list bySize) Len() int {
	return len(list)
}

func (list bySize) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list bySize) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.symbol < b.symbol
}

func (list bySize) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = bySize(nil)

// }}}
