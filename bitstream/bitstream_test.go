package bitstream

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/chronos-tachyon/codingtree"
)

func TestEncode(t *testing.T) {
	type testRow struct {
		input string
		data  []byte
		bits  uint64
	}

	testData := [...]testRow{
		{input: "", data: []byte{}, bits: 0},
		{input: "aaaa", data: []byte{0x00}, bits: 4},
		{input: "aabbc", data: []byte{0xf2}, bits: 8},
		{input: "aabbcb", data: []byte{0xf2, 0x00}, bits: 9},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			tree := codingtree.BuildString(row.input)
			data, bits, err := Encode(tree.Codes(), codingtree.SymbolsOf(row.input))
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.Equal(row.data, data) {
				t.Errorf("wrong data:\n\texpect: %#v\n\tactual: %#v", row.data, data)
			}
			if bits != row.bits {
				t.Errorf("expected %d bits, got %d", row.bits, bits)
			}
			if bits != tree.EncodedSize() {
				t.Errorf("encoded %d bits, tree predicted %d", bits, tree.EncodedSize())
			}
		})
	}
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	tree := codingtree.BuildString("aabbc")

	var buf bytes.Buffer
	e := NewEncoder(tree.Codes(), &buf)
	n, err := e.WriteString("abz")
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol, got %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 bytes consumed, got %d", n)
	}

	_, _, err = Encode(codingtree.CodeTable{}, []codingtree.Symbol{'a'})
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("expected ErrUnknownSymbol from an empty table, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"aaaa",
		"aabbc",
		"abracadabra",
		"In computer science and information theory, a Huffman code is a particular type of optimal prefix code.\n",
		"ünïcödé çødé pöïnts ☃☃☃",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree := codingtree.BuildString(input)
			syms := codingtree.SymbolsOf(input)

			data, bits, err := Encode(tree.Codes(), syms)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if expect := (bits + 7) / 8; uint64(len(data)) != expect {
				t.Errorf("expected %d bytes for %d bits, got %d", expect, bits, len(data))
			}

			decoded, err := Decode(tree.Root(), data, len(syms))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if actual := string(toRunes(decoded)); actual != input {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", input, actual)
			}
		})
	}
}

func TestDecoder_Bits(t *testing.T) {
	tree := codingtree.BuildString("aabbc")
	d := NewDecoder(tree.Root(), bytes.NewReader([]byte{0xf2}))

	expect := []codingtree.Symbol{'a', 'a', 'b', 'b', 'c'}
	actual := make([]codingtree.Symbol, len(expect))
	if _, err := d.ReadSymbols(actual); err != nil {
		t.Fatalf("ReadSymbols failed: %v", err)
	}
	for i := range expect {
		if expect[i] != actual[i] {
			t.Errorf("symbol %d: expected %v, got %v", i, expect[i], actual[i])
		}
	}
	if d.Bits() != 8 {
		t.Errorf("expected 8 bits consumed, got %d", d.Bits())
	}

	if _, err := d.ReadSymbol(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestDecode_Errors(t *testing.T) {
	type testRow struct {
		name  string
		input string
		data  []byte
		n     int
		err   error
	}

	testData := [...]testRow{
		{name: "empty-tree", input: "", data: []byte{0x00}, n: 1, err: ErrEmptyTree},
		{name: "single-leaf-one-bit", input: "aaaa", data: []byte{0x80}, n: 1, err: ErrInvalidCode},
		{name: "truncated", input: "aabbc", data: []byte{0xf2}, n: 6, err: io.ErrUnexpectedEOF},
		{name: "no-data", input: "aabbc", data: []byte{}, n: 1, err: io.ErrUnexpectedEOF},
		{name: "mid-code", input: "aabbc", data: []byte{0x01}, n: 8, err: io.ErrUnexpectedEOF},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			tree := codingtree.BuildString(row.input)
			_, err := Decode(tree.Root(), row.data, row.n)
			if !errors.Is(err, row.err) {
				t.Errorf("expected %v, got %v", row.err, err)
			}
		})
	}
}

func TestDecoder_TruncatedCode(t *testing.T) {
	// "0000000" is seven 'b's; the final "1" starts the code of 'a' or 'c'
	// and the stream ends before that code does.
	tree := codingtree.BuildString("aabbc")
	d := NewDecoder(tree.Root(), bytes.NewReader([]byte{0x01}))

	for i := 0; i < 7; i++ {
		sym, err := d.ReadSymbol()
		if err != nil {
			t.Fatalf("symbol %d: unexpected error: %v", i, err)
		}
		if sym != 'b' {
			t.Errorf("symbol %d: expected 'b', got %v", i, sym)
		}
	}

	sym, err := d.ReadSymbol()
	if err != io.ErrUnexpectedEOF {
		t.Errorf("expected io.ErrUnexpectedEOF, got %v", err)
	}
	if sym != codingtree.InvalidSymbol {
		t.Errorf("expected InvalidSymbol, got %v", sym)
	}
	if d.Bits() != 8 {
		t.Errorf("expected 8 bits consumed, got %d", d.Bits())
	}
}

func toRunes(syms []codingtree.Symbol) []rune {
	out := make([]rune, len(syms))
	for i, sym := range syms {
		out[i] = rune(sym)
	}
	return out
}
