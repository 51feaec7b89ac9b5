package codingtree

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Node is a vertex of a Huffman tree.  It is either a *Leaf or an *Internal.
//
// A tree is strictly binary: every Internal owns exactly two children, and no
// Node has more than one parent.  Nodes are immutable once constructed.
//
type Node interface {
	// Weight is the frequency of a Leaf, or the sum of the weights of an
	// Internal node's children.
	Weight() uint64

	fmt.Stringer

	isNode()
}

// Leaf is a Node that holds one Symbol.
type Leaf struct {
	symbol Symbol
	weight uint64
}

// NewLeaf constructs a Leaf.
func NewLeaf(symbol Symbol, weight uint64) *Leaf {
	assert.Assertf(symbol >= 0, "symbol %d is negative", int32(symbol))
	return &Leaf{symbol: symbol, weight: weight}
}

// Symbol returns the symbol held by this Leaf.
func (leaf *Leaf) Symbol() Symbol {
	return leaf.symbol
}

// Weight returns the frequency of this Leaf's symbol.
func (leaf *Leaf) Weight() uint64 {
	return leaf.weight
}

func (leaf *Leaf) String() string {
	return fmt.Sprintf("%v=%d", leaf.symbol, leaf.weight)
}

func (*Leaf) isNode() {}

// Internal is a Node with exactly two children.
type Internal struct {
	left   Node
	right  Node
	weight uint64
}

// NewInternal joins two subtrees under a new Internal node.  The weight of the
// result is the sum of the children's weights.
func NewInternal(left Node, right Node) *Internal {
	assert.Assertf(left != nil, "left child is nil")
	assert.Assertf(right != nil, "right child is nil")
	weight, ok := addWeights(left.Weight(), right.Weight())
	assert.Assertf(ok, "weight overflow: %d + %d", left.Weight(), right.Weight())
	return &Internal{left: left, right: right, weight: weight}
}

// Left returns the child reached by a 0 bit.
func (node *Internal) Left() Node {
	return node.left
}

// Right returns the child reached by a 1 bit.
func (node *Internal) Right() Node {
	return node.right
}

// Weight returns the combined weight of both children.
func (node *Internal) Weight() uint64 {
	return node.weight
}

func (node *Internal) String() string {
	return fmt.Sprintf("(%v %v)=%d", node.left, node.right, node.weight)
}

func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Walk visits every node of the tree rooted at root in pre-order, left
// subtree before right, calling fn with each node and the path from the root
// to it.  If fn returns false for an Internal node, its children are skipped.
// A nil root visits nothing.
//
// Walk uses an explicit stack, so deep trees do not grow the goroutine stack.
//
func Walk(root Node, fn func(node Node, path Code) bool) {
	if root == nil {
		return
	}

	// The stack holds nodes still to be visited.  The right child is
	// pushed before the left so that the left subtree is visited first,
	// which also bounds the stack depth by the tree depth plus one.
	type stackItem struct {
		node Node
		path Code
	}

	stack := make([]stackItem, 0, MaxCodeSize+1)
	stack = append(stack, stackItem{node: root})

	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		if !fn(top.node, top.path) {
			continue
		}

		if internal, ok := top.node.(*Internal); ok {
			stack = append(stack,
				stackItem{node: internal.right, path: top.path.Append(1)},
				stackItem{node: internal.left, path: top.path.Append(0)},
			)
		}
	}
}

// Depth returns the length of the longest path from root to a Leaf.
func Depth(root Node) int {
	var depth int
	Walk(root, func(node Node, path Code) bool {
		if int(path.Size) > depth {
			depth = int(path.Size)
		}
		return true
	})
	return depth
}
