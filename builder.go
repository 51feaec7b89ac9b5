package codingtree

// BuildTree drains a Forest into a single Huffman tree and returns its root.
//
// While more than one subtree remains, the two lightest are popped and joined
// under a new Internal node: the first one popped becomes the left child and
// the second one the right child.  The joined subtree is pushed back.
//
// An empty Forest yields a nil root.  A Forest holding a single Leaf yields
// that Leaf as the root.
//
func BuildTree(f *Forest) Node {
	if f.Len() == 0 {
		return nil
	}
	for f.Len() > 1 {
		left := f.Pop()
		right := f.Pop()
		f.Push(NewInternal(left, right))
	}
	return f.Pop()
}
