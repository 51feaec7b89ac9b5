package codingtree

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	// ErrZeroCount is returned when a frequency table would hold a symbol
	// that never occurs.
	ErrZeroCount = errors.New("symbol has a count of zero")

	// ErrInvalidSymbol is returned when a frequency table would hold a
	// negative symbol, or a symbol that cannot be represented as text.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrTotalOverflow is returned when the counts of a frequency table
	// would sum to more than fits in a uint64.
	ErrTotalOverflow = errors.New("total count overflows uint64")
)

// FrequencyTable maps each distinct Symbol of some input to its number of
// occurrences.  Symbols that never occur have no entry.  A FrequencyTable is
// immutable once built; the zero value is the empty table.
type FrequencyTable struct {
	symbols []Symbol
	counts  map[Symbol]uint64
	total   uint64
}

// CountSymbols counts the occurrences of each Symbol in the input.
func CountSymbols(input []Symbol) FrequencyTable {
	var c Counter
	for _, sym := range input {
		c.Add(sym)
	}
	return c.Table()
}

// CountString counts the occurrences of each code point in the input.
func CountString(input string) FrequencyTable {
	var c Counter
	c.AddString(input)
	return c.Table()
}

// NewFrequencyTable builds a FrequencyTable from an existing Symbol → count
// mapping, such as one recovered from metadata.  The map is copied.
func NewFrequencyTable(counts map[Symbol]uint64) (FrequencyTable, error) {
	if len(counts) == 0 {
		return FrequencyTable{}, nil
	}

	ft := FrequencyTable{
		symbols: maps.Keys(counts),
		counts:  make(map[Symbol]uint64, len(counts)),
	}
	slices.Sort(ft.symbols)

	for _, sym := range ft.symbols {
		count := counts[sym]
		if sym < 0 {
			return FrequencyTable{}, fmt.Errorf("%w: %d", ErrInvalidSymbol, int32(sym))
		}
		if count == 0 {
			return FrequencyTable{}, fmt.Errorf("%w: %v", ErrZeroCount, sym)
		}
		total, ok := addWeights(ft.total, count)
		if !ok {
			return FrequencyTable{}, fmt.Errorf("%w: adding %d for %v", ErrTotalOverflow, count, sym)
		}
		ft.counts[sym] = count
		ft.total = total
	}
	return ft, nil
}

// Len returns the number of distinct symbols in the table.
func (ft FrequencyTable) Len() int {
	return len(ft.symbols)
}

// Total returns the sum of all counts, i.e. the length of the counted input.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of sym, or 0 if it never occurs.
func (ft FrequencyTable) Count(sym Symbol) uint64 {
	return ft.counts[sym]
}

// Symbols returns the distinct symbols of the table in ascending order.
func (ft FrequencyTable) Symbols() []Symbol {
	return slices.Clone(ft.symbols)
}

// Each calls fn for every entry of the table in ascending symbol order,
// stopping early if fn returns false.
func (ft FrequencyTable) Each(fn func(sym Symbol, count uint64) bool) {
	for _, sym := range ft.symbols {
		if !fn(sym, ft.counts[sym]) {
			return
		}
	}
}

// Map returns a copy of the table as a plain map.
func (ft FrequencyTable) Map() map[Symbol]uint64 {
	return maps.Clone(ft.counts)
}

// Equal returns true iff both tables hold the same entries.
func (ft FrequencyTable) Equal(other FrequencyTable) bool {
	return ft.total == other.total && maps.Equal(ft.counts, other.counts)
}

// String returns a brief description of this table.
func (ft FrequencyTable) String() string {
	return fmt.Sprintf("(frequency table with %d symbols, %d occurrences)", len(ft.symbols), ft.total)
}

// GoString returns a Go expression that rebuilds this table.
func (ft FrequencyTable) GoString() string {
	var buf strings.Builder
	buf.WriteString("NewFrequencyTable(map[Symbol]uint64{")
	for index, sym := range ft.symbols {
		if index > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%#v:%d", sym, ft.counts[sym])
	}
	buf.WriteString("})")
	return buf.String()
}

// MarshalJSON renders the table as a JSON object whose keys are the symbols
// and whose values are the counts.
func (ft FrequencyTable) MarshalJSON() ([]byte, error) {
	buf := make([]byte, 0, 2+8*len(ft.symbols))
	buf = append(buf, '{')
	for index, sym := range ft.symbols {
		if !utf8.ValidRune(rune(sym)) {
			return nil, fmt.Errorf("%w: cannot marshal %U", ErrInvalidSymbol, rune(sym))
		}
		if index > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(string(rune(sym)))
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = fmt.Appendf(buf, "%d", ft.counts[sym])
	}
	buf = append(buf, '}')
	return buf, nil
}

// UnmarshalJSON parses the format written by MarshalJSON.
func (ft *FrequencyTable) UnmarshalJSON(raw []byte) error {
	var m map[string]uint64
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}

	counts := make(map[Symbol]uint64, len(m))
	for key, count := range m {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) || (r == utf8.RuneError && size == 1) {
			return fmt.Errorf("%w: key %q is not exactly one code point", ErrInvalidSymbol, key)
		}
		counts[Symbol(r)] = count
	}

	tmp, err := NewFrequencyTable(counts)
	if err != nil {
		return err
	}
	*ft = tmp
	return nil
}

var (
	_ fmt.Stringer     = FrequencyTable{}
	_ fmt.GoStringer   = FrequencyTable{}
	_ json.Marshaler   = FrequencyTable{}
	_ json.Unmarshaler = (*FrequencyTable)(nil)
)

// Counter accumulates symbol occurrences incrementally.  The zero value is
// ready to use.
type Counter struct {
	counts map[Symbol]uint64
	total  uint64
}

// Add records one occurrence of sym.
func (c *Counter) Add(sym Symbol) {
	assert.Assertf(sym >= 0, "symbol %d is negative", int32(sym))
	if c.counts == nil {
		c.counts = make(map[Symbol]uint64)
	}
	c.counts[sym]++
	c.total++
}

// AddString records one occurrence of each code point in str.
func (c *Counter) AddString(str string) {
	for _, r := range str {
		c.Add(Symbol(r))
	}
}

// ReadFrom records every code point read from r until EOF.  Invalid UTF-8 is
// counted as utf8.RuneError, as with AddString.
func (c *Counter) ReadFrom(r io.Reader) (int64, error) {
	br, ok := r.(io.RuneReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	var n int64
	for {
		ch, size, err := br.ReadRune()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n += int64(size)
		c.Add(Symbol(ch))
	}
}

// Total returns the number of symbols recorded so far.
func (c *Counter) Total() uint64 {
	return c.total
}

// Table returns a snapshot of the counts recorded so far.
func (c *Counter) Table() FrequencyTable {
	if len(c.counts) == 0 {
		return FrequencyTable{}
	}

	ft := FrequencyTable{
		symbols: maps.Keys(c.counts),
		counts:  maps.Clone(c.counts),
		total:   c.total,
	}
	slices.Sort(ft.symbols)
	return ft
}

var _ io.ReaderFrom = (*Counter)(nil)
