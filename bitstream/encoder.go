// Package bitstream packs messages into bits using the codes of a Huffman
// tree, and unpacks them again by walking the tree.
//
// Bits are written most significant bit first.  The final byte is padded with
// zero bits, so the reader must know how many symbols to expect.
//
package bitstream

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/icza/bitio"

	"github.com/chronos-tachyon/codingtree"
)

// ErrUnknownSymbol is returned when asked to encode a Symbol that has no code.
var ErrUnknownSymbol = errors.New("unknown symbol")

// Encoder packs symbols into a bit stream.
type Encoder struct {
	codes codingtree.CodeTable
	w     *bitio.Writer
	bits  uint64
	err   error
}

// NewEncoder constructs an Encoder that writes to w using the given codes.
// The caller must Close the Encoder to flush the final partial byte.
func NewEncoder(codes codingtree.CodeTable, w io.Writer) *Encoder {
	return &Encoder{codes: codes, w: bitio.NewWriter(w)}
}

// WriteSymbol writes the code for one symbol.
func (e *Encoder) WriteSymbol(sym codingtree.Symbol) error {
	if e.err != nil {
		return e.err
	}
	hc, found := e.codes.Lookup(sym)
	if !found {
		return fmt.Errorf("%w: %v", ErrUnknownSymbol, sym)
	}
	if err := e.w.WriteBits(hc.Bits, hc.Size); err != nil {
		e.err = err
		return err
	}
	e.bits += uint64(hc.Size)
	return nil
}

// WriteSymbols writes the codes for a sequence of symbols, returning the
// number of symbols written.
func (e *Encoder) WriteSymbols(syms []codingtree.Symbol) (int, error) {
	for index, sym := range syms {
		if err := e.WriteSymbol(sym); err != nil {
			return index, fmt.Errorf("at symbol %d: %w", index, err)
		}
	}
	return len(syms), nil
}

// WriteString writes the codes for every code point in str, returning the
// number of bytes of str consumed.
func (e *Encoder) WriteString(str string) (int, error) {
	for offset, r := range str {
		if err := e.WriteSymbol(codingtree.Symbol(r)); err != nil {
			return offset, fmt.Errorf("at offset %d: %w", offset, err)
		}
	}
	return len(str), nil
}

// Bits returns the number of bits written so far, not counting padding.
func (e *Encoder) Bits() uint64 {
	return e.bits
}

// Close pads the stream to a byte boundary and flushes it.  It does not close
// the underlying writer.
func (e *Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	e.err = e.w.Close()
	return e.err
}

// Encode packs a whole message, returning the packed bytes and the number of
// meaningful bits in them.
func Encode(codes codingtree.CodeTable, syms []codingtree.Symbol) ([]byte, uint64, error) {
	var buf bytes.Buffer
	e := NewEncoder(codes, &buf)
	if _, err := e.WriteSymbols(syms); err != nil {
		return nil, 0, err
	}
	if err := e.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), e.Bits(), nil
}
