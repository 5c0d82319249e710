package huffpack

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a node of a Huffman tree.  It is either a *Leaf or an *Internal;
// no other implementations exist.  Nodes are immutable.
type Node interface {
	// Frequency returns the total weight of the leaves under this node.
	Frequency() uint64

	isNode()
}

// Leaf is a Node holding one Symbol.
type Leaf struct {
	symbol Symbol
	freq   uint64
}

// Symbol returns the symbol held by this leaf.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// Frequency returns the number of occurrences of this leaf's symbol.
func (leaf *Leaf) Frequency() uint64 {
	return leaf.freq
}

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children.
type Internal struct {
	left  Node
	right Node
	freq  uint64
}

// Left returns the child reached by a 0 bit.
func (in *Internal) Left() Node {
	return in.left
}

// Right returns the child reached by a 1 bit.
func (in *Internal) Right() Node {
	return in.right
}

// Frequency returns the sum of the children's frequencies.
func (in *Internal) Frequency() uint64 {
	return in.freq
}

func (*Internal) isNode() {}

func newInternal(left, right Node) *Internal {
	return &Internal{left: left, right: right, freq: left.Frequency() + right.Frequency()}
}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is an immutable Huffman tree.
type Tree struct {
	root      Node
	numLeaves int
}

// BuildTree constructs the Huffman tree for the given frequency table.
//
// The two lowest-frequency nodes are merged repeatedly, the first one removed
// becoming the left child.  Ties between equal frequencies go to the node that
// entered the queue first.  Leaves enter in ascending Symbol order, and each
// merged node enters after every node that existed before it.  The resulting
// tree therefore depends on nothing but the table's contents.
//
// A table with one distinct symbol yields a tree that is a single Leaf.
// An empty table yields ErrEmptyInput.
//
func BuildTree(ft *FrequencyTable) (*Tree, error) {
	numLeaves := ft.Len()
	if numLeaves == 0 {
		return nil, ErrEmptyInput
	}

	// Step 1: build a minheap of leaves.

	h := nodeHeap{list: make([]nodeAndSeq, 0, numLeaves)}
	var nextSeq uint32
	for _, sym := range ft.Symbols() {
		h.list = append(h.list, nodeAndSeq{&Leaf{symbol: sym, freq: ft.Frequency(sym)}, nextSeq})
		nextSeq++
	}
	h.Init()

	// Step 2: pop two, merge, push the merged node back, until one is left.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		heap.Push(&h, nodeAndSeq{newInternal(a.node, b.node), nextSeq})
		nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq).node
	assert.Assertf(root.Frequency() == ft.Total(), "root frequency %d != total %d", root.Frequency(), ft.Total())
	return &Tree{root: root, numLeaves: numLeaves}, nil
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return t.root
}

// Len returns the number of leaves, i.e. the number of distinct symbols.
func (t *Tree) Len() int {
	return t.numLeaves
}

// Frequency returns the total weight of the tree.  Trees read back from an
// artifact carry no weights and report 0.
func (t *Tree) Frequency() uint64 {
	return t.root.Frequency()
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node Node
	seq  uint32
}

type nodeHeap struct {
	list []nodeAndSeq
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
	af, bf := a.node.Frequency(), b.node.Frequency()
	if af != bf {
		return af < bf
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
