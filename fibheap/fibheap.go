// Package fibheap implements a Fibonacci heap: the priority queue
// backing per-source Dijkstra, offering amortized O(1) Enqueue and
// DecreaseKey and O(log n) DequeueMin. No third-party Fibonacci heap
// exists among this module's dependencies, so this is a from-scratch
// implementation of the classical CLRS structure (circular
// doubly-linked child/sibling lists, lazy consolidation on
// extract-min); its panic-on-invalid-precondition style follows
// gonum's own container conventions (see graph/path's priority
// queue). The zero Heap is ready to use; New is a convenience.
package fibheap

import "math"

// Handle identifies a node previously returned by Enqueue, for later
// use with DecreaseKey. It is only valid for the Heap that produced
// it.
type Handle struct {
	node *node
}

type node struct {
	value    interface{}
	priority float64

	parent, child         *node
	left, right           *node // circular doubly-linked sibling ring
	degree                int
	mark                  bool
}

// Heap is a Fibonacci heap keyed by float64 priority, ascending (the
// minimum priority is always at the root of Min/DequeueMin). The zero
// value is ready to use.
type Heap struct {
	min *node
	n   int
}

// New returns an empty heap.
func New() *Heap { return &Heap{} }

// Len reports the number of elements currently in the heap.
func (h *Heap) Len() int { return h.n }

// Enqueue inserts value at the given priority and returns a handle
// for later DecreaseKey calls.
func (h *Heap) Enqueue(value interface{}, priority float64) Handle {
	nd := &node{value: value, priority: priority}
	nd.left, nd.right = nd, nd

	h.min = spliceIntoRootList(h.min, nd)
	h.n++
	return Handle{node: nd}
}

// Min returns the minimum priority's value and priority without
// removing it. It panics if the heap is empty.
func (h *Heap) Min() (value interface{}, priority float64) {
	if h.min == nil {
		panic("fibheap: Min on empty heap")
	}
	return h.min.value, h.min.priority
}

// DequeueMin removes and returns the minimum-priority element.
func (h *Heap) DequeueMin() (value interface{}, priority float64) {
	z := h.min
	if z == nil {
		panic("fibheap: DequeueMin on empty heap")
	}

	// Promote every child of z to the root list.
	if z.child != nil {
		start := z.child
		c := start
		for {
			next := c.right
			c.parent = nil
			h.min = spliceIntoRootList(h.min, c)
			if next == start {
				break
			}
			c = next
		}
		z.child = nil
	}

	next := z.right
	removeFromRootList(z)
	if next == z {
		h.min = nil
	} else {
		h.min = next
		h.consolidate()
	}
	h.n--

	return z.value, z.priority
}

// DecreaseKey lowers the priority of the element identified by handle to
// newPriority. It panics if newPriority is greater than the element's
// current priority, since a Fibonacci heap only supports decreasing.
func (h *Heap) DecreaseKey(handle Handle, newPriority float64) {
	x := handle.node
	if newPriority > x.priority {
		panic("fibheap: DecreaseKey to a larger priority")
	}
	x.priority = newPriority
	y := x.parent
	if y != nil && x.priority < y.priority {
		h.cut(x, y)
		h.cascadingCut(y)
	}
	if h.min == nil || x.priority < h.min.priority {
		h.min = x
	}
}

func (h *Heap) cut(x, y *node) {
	removeFromChildList(y, x)
	y.degree--
	x.parent = nil
	x.mark = false
	h.min = spliceIntoRootList(h.min, x)
}

func (h *Heap) cascadingCut(y *node) {
	z := y.parent
	if z == nil {
		return
	}
	if !y.mark {
		y.mark = true
		return
	}
	h.cut(y, z)
	h.cascadingCut(z)
}

// consolidate merges root-list trees of equal degree until every
// degree is unique, restoring the heap's amortized bounds.
func (h *Heap) consolidate() {
	maxDegree := int(math.Log2(float64(h.n+1))) + 2
	degreeTable := make([]*node, maxDegree+1)

	var roots []*node
	if h.min != nil {
		start := h.min
		c := start
		for {
			roots = append(roots, c)
			c = c.right
			if c == start {
				break
			}
		}
	}

	for _, x := range roots {
		d := x.degree
		cur := x
		for degreeTable[d] != nil {
			y := degreeTable[d]
			if cur.priority > y.priority {
				cur, y = y, cur
			}
			h.link(y, cur)
			degreeTable[d] = nil
			d++
		}
		degreeTable[d] = cur
	}

	h.min = nil
	for _, x := range degreeTable {
		if x == nil {
			continue
		}
		x.left, x.right = x, x
		h.min = spliceIntoRootList(h.min, x)
	}
}

// link makes y a child of x, used when consolidating two trees of
// equal degree (x's priority is <= y's).
func (h *Heap) link(y, x *node) {
	removeFromRootList(y)
	y.left, y.right = y, y
	y.parent = x
	x.child = spliceIntoRootList(x.child, y)
	x.degree++
	y.mark = false
}

// spliceIntoRootList inserts n into the circular list rooted at
// list (which may be nil), returning the (possibly new) minimum.
func spliceIntoRootList(list, n *node) *node {
	if list == nil {
		n.left, n.right = n, n
		return n
	}
	n.right = list.right
	n.left = list
	list.right.left = n
	list.right = n
	if n.priority < list.priority {
		return n
	}
	return list
}

func removeFromRootList(n *node) {
	n.left.right = n.right
	n.right.left = n.left
	n.left, n.right = n, n
}

func removeFromChildList(parent, n *node) {
	if parent.child == n {
		if n.right == n {
			parent.child = nil
		} else {
			parent.child = n.right
		}
	}
	removeFromRootList(n)
}
