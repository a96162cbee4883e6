package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeIndex addresses a Node within a Tree.
type NodeIndex int

// NoNode is the NodeIndex stored in the child fields of a leaf.
const NoNode = NodeIndex(-1)

// Node is a single node of a Huffman tree.
//
// A leaf holds a Symbol and its weight, and has Left == Right == NoNode.  An
// internal node holds InvalidSymbol, two children, and a weight equal to the
// sum of its children's weights.
type Node struct {
	Symbol Symbol
	Weight uint64
	Left   NodeIndex
	Right  NodeIndex
}

// IsLeaf returns true iff this Node has no children.
func (n Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

// Tree is a Huffman tree.  All nodes live in a single arena: the leaves come
// first, in the order their symbols first appeared, followed by the internal
// nodes in the order they were merged.  The root is always the last node.
//
// A Tree is read-only once BuildTree returns it, and may be shared freely
// between goroutines.
type Tree struct {
	nodes []Node
	root  NodeIndex
}

// BuildTree builds the Huffman tree for the given FrequencyTable.  Returns
// ErrEmptyInput if the table is empty.
//
// The two lowest-weight nodes are repeatedly removed and merged; the first
// one removed becomes the left child and the second the right child.  Ties in
// weight are broken by NodeIndex, lowest first: leaves leave the queue before
// internal nodes of equal weight, earlier-seen symbols before later-seen
// ones, and older internal nodes before newer ones.
//
// With a single distinct symbol, no merges happen and the lone leaf is the
// root.
//
func BuildTree(ft FrequencyTable) (*Tree, error) {
	numLeaves := ft.Len()
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	t := &Tree{nodes: make([]Node, 0, 2*numLeaves-1)}

	// Step 1: one leaf per distinct symbol, then build a minheap.

	h := nodeHeap{tree: t, list: make([]NodeIndex, 0, numLeaves)}
	for _, symbol := range ft.symbols {
		leaf := t.appendNode(Node{
			Symbol: symbol,
			Weight: ft.counts[symbol],
			Left:   NoNode,
			Right:  NoNode,
		})
		h.list = append(h.list, leaf)
	}
	h.Init()

	// Step 2: pop two nodes, merge them, push the merged node back.

	for h.Len() > 1 {
		a := heap.Pop(&h).(NodeIndex)
		b := heap.Pop(&h).(NodeIndex)
		parent := t.appendNode(Node{
			Symbol: InvalidSymbol,
			Weight: t.nodes[a].Weight + t.nodes[b].Weight,
			Left:   a,
			Right:  b,
		})
		heap.Push(&h, parent)
	}

	t.root = heap.Pop(&h).(NodeIndex)
	return t, nil
}

func (t *Tree) appendNode(n Node) NodeIndex {
	index := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return index
}

// Root returns the index of the root node.
func (t *Tree) Root() NodeIndex {
	return t.root
}

// Node returns the node at the given index.
func (t *Tree) Node(index NodeIndex) Node {
	assert.Assertf(index >= 0 && int(index) < len(t.nodes), "NodeIndex %d out of range [0, %d)", index, len(t.nodes))
	return t.nodes[index]
}

// IsLeaf returns true iff the node at the given index is a leaf.
func (t *Tree) IsLeaf(index NodeIndex) bool {
	return t.Node(index).IsLeaf()
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NumLeaves returns the number of leaves, i.e. the number of distinct
// symbols.
func (t *Tree) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, i.e. the total number of symbols
// the tree was built from.
func (t *Tree) Weight() uint64 {
	return t.nodes[t.root].Weight
}

// Height returns the number of edges on the longest root-to-leaf path.  A
// tree consisting of a lone leaf has height 0.
func (t *Tree) Height() int {
	var walk func(index NodeIndex) int
	walk = func(index NodeIndex) int {
		n := t.nodes[index]
		if n.IsLeaf() {
			return 0
		}
		left, right := walk(n.Left), walk(n.Right)
		if left < right {
			left = right
		}
		return left + 1
	}
	return walk(t.root)
}

// Dump writes a programmer-readable rendering of the tree to the given
// writer, one node per line, children indented beneath their parent with the
// left child first.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	var walk func(index NodeIndex, depth int)
	walk = func(index NodeIndex, depth int) {
		n := t.nodes[index]
		for i := 0; i < depth; i++ {
			buf.WriteByte('\t')
		}
		if n.IsLeaf() {
			fmt.Fprintf(&buf, "node(%d) %v\n", n.Weight, n.Symbol)
			return
		}
		fmt.Fprintf(&buf, "node(%d)\n", n.Weight)
		walk(n.Left, depth+1)
		walk(n.Right, depth+1)
	}
	walk(t.root, 0)
	return buf.WriteTo(w)
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []NodeIndex
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	wa, wb := h.tree.nodes[a].Weight, h.tree.nodes[b].Weight
	if wa != wb {
		return wa < wb
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	index, ok := x.(NodeIndex)
	if !ok {
		panic(&InvalidComparisonError{Value: x})
	}
	h.list = append(h.list, index)
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
