// SGI FREE SOFTWARE LICENSE B (Version 2.0, Sept. 18, 2008)
// Copyright (C) [dates of first publication] Silicon Graphics, Inc.
// All Rights Reserved.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice including the dates of first publication and either this
// permission notice or a reference to http://oss.sgi.com/projects/FreeB/ shall be
// included in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED,
// INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS FOR A
// PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL SILICON GRAPHICS, INC.
// BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE
// OR OTHER DEALINGS IN THE SOFTWARE.
//
// Except as contained in this notice, the name of Silicon Graphics, Inc. shall not
// be used in advertising or otherwise to promote the sale, use or other dealings in
// this Software without prior written authorization from Silicon Graphics, Inc.

package halfedge

import "sort"

// leased marks a recycled value as checked out of its recycler.
type leased struct {
	inUse bool
}

func (l *leased) lease() *leased {
	return l
}

// recycler keeps dropped scratch values for reuse. outstanding counts grabs
// that have not been dropped yet.
type recycler[T any, PT interface {
	*T
	reset()
	lease() *leased
}] struct {
	free        []PT
	outstanding int
}

func (r *recycler[T, PT]) grab() PT {
	var v PT
	if n := len(r.free); n > 0 {
		v = r.free[n-1]
		r.free[n-1] = nil
		r.free = r.free[:n-1]
	} else {
		v = PT(new(T))
	}
	v.lease().inUse = true
	r.outstanding++
	return v
}

func (r *recycler[T, PT]) drop(v PT) {
	l := v.lease()
	if !l.inUse {
		assert(false, "drop of an array that is not checked out")
		return
	}
	l.inUse = false
	v.reset()
	r.free = append(r.free, v)
	r.outstanding--
}

// NodeArray is a growable list of nodes borrowed from a Graph with GrabArray
// and handed back with DropArray.
type NodeArray struct {
	leased
	nodes []Node
}

func (a *NodeArray) reset() {
	a.nodes = a.nodes[:0]
}

func (a *NodeArray) Add(n Node) {
	a.nodes = append(a.nodes, n)
}

func (a *NodeArray) Len() int {
	return len(a.nodes)
}

func (a *NodeArray) At(i int) Node {
	return a.nodes[i]
}

// Pop removes and returns the last node.
func (a *NodeArray) Pop() (Node, bool) {
	n := len(a.nodes)
	if n == 0 {
		return NilNode, false
	}
	v := a.nodes[n-1]
	a.nodes = a.nodes[:n-1]
	return v, true
}

func (a *NodeArray) Clear() {
	a.nodes = a.nodes[:0]
}

// Nodes returns the backing slice. It is only valid until the array is
// modified or dropped.
func (a *NodeArray) Nodes() []Node {
	return a.nodes
}

func (a *NodeArray) Reverse() {
	for i, j := 0, len(a.nodes)-1; i < j; i, j = i+1, j-1 {
		a.nodes[i], a.nodes[j] = a.nodes[j], a.nodes[i]
	}
}

// Sort sorts the nodes stably with the given ordering.
func (a *NodeArray) Sort(less func(x, y Node) bool) {
	sort.SliceStable(a.nodes, func(i, j int) bool {
		return less(a.nodes[i], a.nodes[j])
	})
}

// GrabArray returns an empty NodeArray. Every GrabArray must be matched by
// exactly one DropArray.
func (g *Graph) GrabArray() *NodeArray {
	return g.arrays.grab()
}

// DropArray clears a and returns it to the graph for reuse.
func (g *Graph) DropArray(a *NodeArray) {
	g.arrays.drop(a)
}

// OutstandingArrays returns the number of arrays grabbed and not yet dropped.
func (g *Graph) OutstandingArrays() int {
	return g.arrays.outstanding + g.stacks.outstanding
}
