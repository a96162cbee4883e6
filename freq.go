package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// FrequencyTable maps each distinct Symbol in an input to its number of
// occurrences.  It is immutable once built by CountFrequencies.
type FrequencyTable struct {
	counts  map[Symbol]uint64
	symbols []Symbol
	total   uint64
}

// CountFrequencies builds the FrequencyTable for the given input.  Symbols
// are enumerated in order of first appearance.  Returns ErrEmptyInput if
// input has no symbols.
func CountFrequencies(input []Symbol) (FrequencyTable, error) {
	if len(input) == 0 {
		return FrequencyTable{}, ErrEmptyInput
	}

	counts := make(map[Symbol]uint64)
	symbols := make([]Symbol, 0)
	for _, symbol := range input {
		if _, found := counts[symbol]; !found {
			symbols = append(symbols, symbol)
		}
		counts[symbol]++
	}

	return FrequencyTable{
		counts:  counts,
		symbols: symbols,
		total:   uint64(len(input)),
	}, nil
}

// Len returns the number of distinct symbols.
func (ft FrequencyTable) Len() int {
	return len(ft.symbols)
}

// Total returns the total number of symbols counted, i.e. the input length.
func (ft FrequencyTable) Total() uint64 {
	return ft.total
}

// Count returns the number of occurrences of symbol, or 0 if it never
// occurred.
func (ft FrequencyTable) Count(symbol Symbol) uint64 {
	return ft.counts[symbol]
}

// Symbols returns the distinct symbols in order of first appearance.
func (ft FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, len(ft.symbols))
	copy(out, ft.symbols)
	return out
}

// Dump writes a programmer-readable debugging dump of the FrequencyTable to
// the given writer.
func (ft FrequencyTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("FrequencyTable{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", ft.Len())
	fmt.Fprintf(&buf, "\tTotal() = %d\n", ft.total)
	for _, symbol := range ft.symbols {
		fmt.Fprintf(&buf, "\tCount(%v) = %d\n", symbol, ft.counts[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
