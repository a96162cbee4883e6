package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/chronos-tachyon/assert"
)

// Decoder reconstructs a sequence of Symbols from a message produced by an
// Encoder whose codes were assigned from the same Tree.
type Decoder struct {
	tree *Tree
}

// Init initializes this Decoder with the given Tree.
func (d *Decoder) Init(t *Tree) {
	assert.Assertf(t != nil && len(t.nodes) != 0, "Tree was not built by BuildTree")
	*d = Decoder{tree: t}
}

// Tree returns the Tree used by this Decoder.
func (d Decoder) Tree() *Tree {
	return d.tree
}

// Decode decodes the message into the original sequence of Symbols.
//
// A cursor starts at the root and moves to the left child on Zero and to the
// right child on One.  Each time it lands on a leaf, that leaf's Symbol is
// emitted and the cursor returns to the root.  If the message runs out while
// the cursor is on an internal node, the code is incomplete and a
// *MalformedCodeError is returned.
//
// A tree whose root is a leaf cannot be walked by bits at all, since its only
// code is empty.  In that case the message must be empty, and the lone Symbol
// is emitted once per occurrence counted when the tree was built.
//
func (d Decoder) Decode(msg Bits) ([]Symbol, error) {
	assert.Assertf(d.tree != nil, "Decoder used before Init")

	t := d.tree
	root := t.root
	rootNode := t.nodes[root]

	if rootNode.IsLeaf() {
		if len(msg) != 0 {
			return nil, &MalformedCodeError{Offset: 0, Reason: "single-symbol tree accepts no bits"}
		}
		out := make([]Symbol, rootNode.Weight)
		for index := range out {
			out[index] = rootNode.Symbol
		}
		return out, nil
	}

	out := make([]Symbol, 0, len(msg)/(t.Height()+1)+1)
	cursor := root
	for offset, bit := range msg {
		n := t.nodes[cursor]
		switch bit {
		case Zero:
			cursor = n.Left
		case One:
			cursor = n.Right
		default:
			return nil, &MalformedCodeError{Offset: offset, Reason: fmt.Sprintf("invalid bit value %d", bit)}
		}

		if leaf := t.nodes[cursor]; leaf.IsLeaf() {
			out = append(out, leaf.Symbol)
			cursor = root
		}
	}

	if cursor != root {
		return nil, &MalformedCodeError{Offset: len(msg), Reason: "message ends inside a code"}
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the Decoder's current
// state to the given writer.
func (d Decoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Decoder{\n")

	t := d.tree
	if t != nil {
		fmt.Fprintf(&buf, "\tNumSymbols() = %d\n", t.NumLeaves())
		fmt.Fprintf(&buf, "\tHeight() = %d\n", t.Height())

		table := make(map[string]Symbol, t.NumLeaves())
		keys := make(byCode, 0, t.NumLeaves())
		var walk func(index NodeIndex, prefix Bits)
		walk = func(index NodeIndex, prefix Bits) {
			n := t.nodes[index]
			if n.IsLeaf() {
				code := prefix.Clone()
				table[code.Digits()] = n.Symbol
				keys = append(keys, code)
				return
			}
			walk(n.Left, append(prefix, Zero))
			walk(n.Right, append(prefix, One))
		}
		walk(t.root, nil)

		keys.Sort()
		for _, code := range keys {
			fmt.Fprintf(&buf, "\tDecode(%s) = %v\n", code, table[code.Digits()])
		}
	}

	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type byCode {{{

type byCode []Bits

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for index := range a {
		if a[index] != b[index] {
			return a[index] < b[index]
		}
	}
	return false
}

var _ sort.Interface = byCode(nil)

// }}}
