package huffman

import (
	"math"
	"strconv"
)

// Symbol represents a symbol in an arbitrary alphabet, usually a character.
// Negative symbols are not valid.
type Symbol rune

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(math.MaxInt32)

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.  Internal tree nodes carry it as well.
const InvalidSymbol = Symbol(-1)

// String returns the string representation of this Symbol.
func (s Symbol) String() string {
	if s < 0 {
		return "InvalidSymbol"
	}
	return strconv.QuoteRune(rune(s))
}

// SymbolsOf converts a string into a sequence of Symbols, one per rune.
func SymbolsOf(str string) []Symbol {
	out := make([]Symbol, 0, len(str))
	for _, r := range str {
		out = append(out, Symbol(r))
	}
	return out
}

// SymbolsString converts a sequence of Symbols back into a string.
func SymbolsString(symbols []Symbol) string {
	runes := make([]rune, len(symbols))
	for index, symbol := range symbols {
		runes[index] = rune(symbol)
	}
	return string(runes)
}
