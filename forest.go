package codingtree

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Forest is the working collection of subtrees used while building a Huffman
// tree.  Pop always returns the lightest subtree.
//
// Ties are broken by arrival: every Node pushed into the Forest is numbered in
// the order it arrived, and among subtrees of equal weight the one that
// arrived first is popped first.  NewForest pushes its leaves in ascending
// Symbol order, so equal-weight leaves leave the Forest in Symbol order and a
// freshly merged subtree is popped after every equal-weight subtree that was
// already present.  This rule is fixed; it is what makes trees reproducible.
//
type Forest struct {
	h           forestHeap
	nextArrival uint64
}

// NewForest constructs a Forest holding one Leaf per entry of ft.
func NewForest(ft FrequencyTable) *Forest {
	f := &Forest{
		h: forestHeap{
			list: make([]forestItem, 0, ft.Len()),
			less: byWeightThenArrival,
		},
	}
	ft.Each(func(sym Symbol, count uint64) bool {
		f.h.list = append(f.h.list, f.stamp(NewLeaf(sym, count)))
		return true
	})
	f.h.Init()
	return f
}

// Len returns the number of subtrees in the Forest.
func (f *Forest) Len() int {
	return f.h.Len()
}

// Push adds a subtree to the Forest.
func (f *Forest) Push(node Node) {
	assert.Assertf(node != nil, "cannot push a nil Node")
	heap.Push(&f.h, f.stamp(node))
}

// Pop removes and returns the lightest subtree.  The Forest must not be
// empty.
func (f *Forest) Pop() Node {
	assert.Assertf(f.h.Len() > 0, "Pop called on an empty Forest")
	return heap.Pop(&f.h).(forestItem).node
}

func (f *Forest) stamp(node Node) forestItem {
	item := forestItem{node: node, weight: node.Weight(), arrival: f.nextArrival}
	f.nextArrival++
	return item
}

// byWeightThenArrival is the ordering of a Forest.
func byWeightThenArrival(a, b forestItem) bool {
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.arrival < b.arrival
}

// type forestItem + type forestHeap {{{

type forestItem struct {
	node    Node
	weight  uint64
	arrival uint64
}

type forestHeap struct {
	list []forestItem
	less func(a, b forestItem) bool
}

func (h *forestHeap) Init() {
	heap.Init(h)
}

func (h *forestHeap) Len() int {
	return len(h.list)
}

func (h *forestHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *forestHeap) Less(i, j int) bool {
	return h.less(h.list[i], h.list[j])
}

func (h *forestHeap) Push(x interface{}) {
	h.list = append(h.list, x.(forestItem))
}

func (h *forestHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = forestItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*forestHeap)(nil)

// }}}
