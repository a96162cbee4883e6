package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Encoder replays a sequence of Symbols as the concatenation of their codes.
type Encoder struct {
	codes CodeTable
}

// Init initializes this Encoder with the given CodeTable, typically the one
// returned by AssignCodes.
func (e *Encoder) Init(codes CodeTable) {
	assert.Assertf(codes.codes != nil, "CodeTable was not built by AssignCodes")
	*e = Encoder{codes: codes}
}

// Encode encodes the input into a single sequence of bits.  Returns an
// *UnmappedSymbolError if some Symbol in the input has no code; no partial
// output is returned in that case.
func (e Encoder) Encode(input []Symbol) (Bits, error) {
	assert.Assertf(e.codes.codes != nil, "Encoder used before Init")

	var size int
	for offset, symbol := range input {
		code, found := e.codes.codes[symbol]
		if !found {
			return nil, &UnmappedSymbolError{Symbol: symbol, Offset: offset}
		}
		size += len(code)
	}

	out := make(Bits, 0, size)
	for _, symbol := range input {
		out = append(out, e.codes.codes[symbol]...)
	}
	return out, nil
}

// EncodeSymbol returns the code for a single Symbol.
func (e Encoder) EncodeSymbol(symbol Symbol) (Bits, error) {
	assert.Assertf(e.codes.codes != nil, "Encoder used before Init")

	code, found := e.codes.Code(symbol)
	if !found {
		return nil, &UnmappedSymbolError{Symbol: symbol, Offset: -1}
	}
	return code, nil
}

// Codes returns the CodeTable used by this Encoder.
func (e Encoder) Codes() CodeTable {
	return e.codes
}

// MinSize is the bit length of the shortest legal code.
func (e Encoder) MinSize() int {
	return e.codes.minSize
}

// MaxSize is the bit length of the longest legal code.
func (e Encoder) MaxSize() int {
	return e.codes.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.codes.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.codes.maxSize)
	for _, symbol := range e.codes.symbols {
		fmt.Fprintf(&buf, "\tEncode(%v) = %s\n", symbol, e.codes.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
