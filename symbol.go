package codingtree

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Symbol represents one code point of the input.  Negative symbols are not
// valid.
type Symbol rune

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// String returns the quoted representation of this Symbol.  Values that are
// not valid code points, such as surrogates or values above utf8.MaxRune, are
// rendered in U+ notation so they cannot be mistaken for U+FFFD.
func (sym Symbol) String() string {
	if sym < 0 {
		return "InvalidSymbol"
	}
	if !utf8.ValidRune(rune(sym)) {
		return fmt.Sprintf("%U", rune(sym))
	}
	return strconv.QuoteRune(rune(sym))
}

// GoString returns a Go rune literal for valid code points, and a hex
// integer literal otherwise.
func (sym Symbol) GoString() string {
	if sym >= 0 && utf8.ValidRune(rune(sym)) {
		return strconv.QuoteRune(rune(sym))
	}
	return fmt.Sprintf("%#x", int32(sym))
}

var (
	_ fmt.Stringer   = Symbol(0)
	_ fmt.GoStringer = Symbol(0)
)

// SymbolsOf splits a string into its code points.
func SymbolsOf(s string) []Symbol {
	out := make([]Symbol, 0, len(s))
	for _, r := range s {
		out = append(out, Symbol(r))
	}
	return out
}
