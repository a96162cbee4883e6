package huffman

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when there are no symbols to build a tree from.
var ErrEmptyInput = errors.New("empty input: no symbols to build a Huffman tree from")

// UnmappedSymbolError is returned when encoding a Symbol that has no code.
type UnmappedSymbolError struct {
	Symbol Symbol

	// Offset is the position of Symbol within the input, or -1 if the
	// Symbol was encoded on its own.
	Offset int
}

// Error fulfills the error interface.
func (err *UnmappedSymbolError) Error() string {
	if err.Offset < 0 {
		return fmt.Sprintf("symbol %v is not present in the code table", err.Symbol)
	}
	return fmt.Sprintf("symbol %v at offset %d is not present in the code table", err.Symbol, err.Offset)
}

// MalformedCodeError is returned when a message cannot be decoded with the
// tree at hand.
type MalformedCodeError struct {
	// Offset is the number of bits consumed when the problem was detected.
	Offset int

	// Reason describes the problem.
	Reason string
}

// Error fulfills the error interface.
func (err *MalformedCodeError) Error() string {
	return fmt.Sprintf("malformed Huffman code at bit %d: %s", err.Offset, err.Reason)
}

// InvalidComparisonError is the panic value raised when the tree builder's
// priority queue is handed something other than a node.  It indicates a
// programming error, never bad input.
type InvalidComparisonError struct {
	Value interface{}
}

// Error fulfills the error interface.
func (err *InvalidComparisonError) Error() string {
	return fmt.Sprintf("invalid comparison: %T is not a tree node", err.Value)
}

var (
	_ error = (*UnmappedSymbolError)(nil)
	_ error = (*MalformedCodeError)(nil)
	_ error = (*InvalidComparisonError)(nil)
)
