package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol of a Tree to its bit-code, the path from the
// root to the Symbol's leaf.
type CodeTable struct {
	codes   map[Symbol]Bits
	symbols []Symbol
	minSize int
	maxSize int
}

// AssignCodes walks the tree depth-first and assigns each leaf the bits of
// its root-to-leaf path: Zero for every step to a left child, One for every
// step to a right child.  When the root is itself a leaf, its code is empty.
func AssignCodes(t *Tree) CodeTable {
	numLeaves := t.NumLeaves()
	codes := make(map[Symbol]Bits, numLeaves)

	var walk func(index NodeIndex, prefix Bits)
	walk = func(index NodeIndex, prefix Bits) {
		n := t.nodes[index]
		if n.IsLeaf() {
			codes[n.Symbol] = prefix.Clone()
			return
		}
		walk(n.Left, append(prefix, Zero))
		walk(n.Right, append(prefix, One))
	}
	walk(t.root, make(Bits, 0, numLeaves))

	// Leaves occupy the front of the arena in first-appearance order.
	ct := CodeTable{
		codes:   codes,
		symbols: make([]Symbol, numLeaves),
	}
	for index := 0; index < numLeaves; index++ {
		symbol := t.nodes[index].Symbol
		size := len(codes[symbol])
		ct.symbols[index] = symbol
		if index == 0 || ct.minSize > size {
			ct.minSize = size
		}
		if index == 0 || ct.maxSize < size {
			ct.maxSize = size
		}
	}
	return ct
}

// Len returns the number of symbols with a code.
func (ct CodeTable) Len() int {
	return len(ct.symbols)
}

// Code returns the code for symbol.  The second return value is false if
// symbol has no code.
func (ct CodeTable) Code(symbol Symbol) (Bits, bool) {
	code, found := ct.codes[symbol]
	if !found {
		return nil, false
	}
	return code.Clone(), true
}

// Symbols returns the symbols with a code, in order of first appearance.
func (ct CodeTable) Symbols() []Symbol {
	out := make([]Symbol, len(ct.symbols))
	copy(out, ct.symbols)
	return out
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable) MaxSize() int {
	return ct.maxSize
}

// IsPrefixFree returns true iff no code in the table is a prefix of another.
func (ct CodeTable) IsPrefixFree() bool {
	for _, a := range ct.symbols {
		for _, b := range ct.symbols {
			if a != b && ct.codes[b].HasPrefix(ct.codes[a]) {
				return false
			}
		}
	}
	return true
}

// AverageBits returns the average number of bits per symbol when encoding an
// input with the given frequencies: the sum of code length × count over all
// symbols, divided by the total count.
func (ct CodeTable) AverageBits(ft FrequencyTable) float64 {
	if ft.total == 0 {
		return 0
	}
	var sum uint64
	for _, symbol := range ft.symbols {
		sum += uint64(len(ct.codes[symbol])) * ft.counts[symbol]
	}
	return float64(sum) / float64(ft.total)
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.
func (ct CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, symbol := range ct.symbols {
		fmt.Fprintf(&buf, "\tCode(%v) = %s\n", symbol, ct.codes[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
