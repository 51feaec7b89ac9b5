package bitstream

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/chronos-tachyon/codingtree"
)

var (
	// ErrEmptyTree is returned when asked to decode with a tree that has no
	// root.
	ErrEmptyTree = errors.New("cannot decode with an empty Huffman tree")

	// ErrInvalidCode is returned when the bit stream holds a path that does
	// not lead to any Leaf.
	ErrInvalidCode = errors.New("invalid code")
)

// Decoder unpacks symbols from a bit stream by walking a Huffman tree from
// its root: a 0 bit descends to the left child and a 1 bit to the right.
//
// A tree whose root is a Leaf has exactly one code, "0".
//
type Decoder struct {
	root codingtree.Node
	r    *bitio.Reader
	bits uint64
}

// NewDecoder constructs a Decoder that reads from r and decodes with the tree
// rooted at root.
func NewDecoder(root codingtree.Node, r io.Reader) *Decoder {
	return &Decoder{root: root, r: bitio.NewReader(r)}
}

// ReadSymbol decodes the next symbol.  It returns io.EOF if the stream ends
// cleanly before the symbol starts, and io.ErrUnexpectedEOF if the stream ends
// partway through a code.
func (d *Decoder) ReadSymbol() (codingtree.Symbol, error) {
	if d.root == nil {
		return codingtree.InvalidSymbol, ErrEmptyTree
	}

	var path codingtree.Code
	node := d.root
	for {
		bit, err := d.r.ReadBool()
		if err == io.EOF && path.Size != 0 {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return codingtree.InvalidSymbol, err
		}
		d.bits++

		var b uint
		if bit {
			b = 1
		}
		path = path.Append(b)

		switch x := node.(type) {
		case *codingtree.Leaf:
			// Only reachable when the root itself is a Leaf.
			if bit {
				return codingtree.InvalidSymbol, fmt.Errorf("%w: %s", ErrInvalidCode, path)
			}
			return x.Symbol(), nil

		case *codingtree.Internal:
			if bit {
				node = x.Right()
			} else {
				node = x.Left()
			}
			if leaf, ok := node.(*codingtree.Leaf); ok {
				return leaf.Symbol(), nil
			}
		}
	}
}

// ReadSymbols decodes exactly len(out) symbols into out, returning the number
// decoded.
func (d *Decoder) ReadSymbols(out []codingtree.Symbol) (int, error) {
	for index := range out {
		sym, err := d.ReadSymbol()
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		if err != nil {
			return index, fmt.Errorf("at symbol %d: %w", index, err)
		}
		out[index] = sym
	}
	return len(out), nil
}

// Bits returns the number of bits consumed so far.
func (d *Decoder) Bits() uint64 {
	return d.bits
}

// Decode unpacks n symbols from data.
func Decode(root codingtree.Node, data []byte, n int) ([]codingtree.Symbol, error) {
	if n == 0 {
		return nil, nil
	}
	out := make([]codingtree.Symbol, n)
	d := NewDecoder(root, bytes.NewReader(data))
	if _, err := d.ReadSymbols(out); err != nil {
		return nil, err
	}
	return out, nil
}
