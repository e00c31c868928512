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

// Graph is a planar subdivision stored as half-edges.
//
// Every node has a mate (the other half of its edge) and a vertex successor
// (the next node leaving the same vertex, clockwise). Faces are not stored:
// the face successor of n is VSucc(Mate(n)), which walks bounded faces
// counterclockwise.
//
// A Graph is not safe for concurrent use. It is meant to live for the span
// of one boolean operation and be closed afterwards.
type Graph struct {
	nodes  arena
	masks  maskAllocator
	arrays recycler[NodeArray, *NodeArray]
	stacks recycler[searchStack, *searchStack]
	roles  Roles
	tol    Tolerances
	closed bool
}

// NewGraph creates an empty graph.
func NewGraph(opts ...GraphOption) *Graph {
	o := defaultGraphOptions()
	for _, opt := range opts {
		opt(&o)
	}
	g := &Graph{
		nodes: newArena(o.userDataSize),
		masks: newMaskAllocator(),
		roles: o.roles,
		tol:   o.tolerances,
	}
	if o.initialCapacity > 0 {
		g.nodes.reserve(o.initialCapacity)
	}
	return g
}

// Close destroys the graph. Using the graph or any of its nodes afterwards
// panics.
func (g *Graph) Close() {
	if g.closed {
		return
	}
	if n := g.OutstandingArrays(); n > 0 {
		Logger().Warn("halfedge: graph closed with scratch arrays checked out", "count", n)
		if debugChecks {
			assert(false, "%d arrays still checked out", n)
		}
	}
	if n := g.masks.count(); n > 0 {
		Logger().Warn("halfedge: graph closed with masks grabbed", "count", n)
	}
	g.nodes = arena{freeHead: -1}
	g.arrays = recycler[NodeArray, *NodeArray]{}
	g.stacks = recycler[searchStack, *searchStack]{}
	g.closed = true
}

func (g *Graph) checkOpen() {
	if g.closed {
		panic("halfedge: use of closed graph")
	}
}

// LiveCount returns the number of live nodes.
func (g *Graph) LiveCount() int {
	return g.nodes.liveCount()
}

// Roles returns the role masks of the graph.
func (g *Graph) Roles() Roles {
	return g.roles
}

// Tolerances returns the tolerances of the graph.
func (g *Graph) Tolerances() Tolerances {
	return g.tol
}

// SetTolerances replaces the tolerances of the graph.
func (g *Graph) SetTolerances(t Tolerances) {
	g.tol = t
}

// Mate returns the other half of n's edge.
func (g *Graph) Mate(n Node) Node {
	return g.nodes.handle(g.nodes.get(n).mate)
}

// VSucc returns the next node around n's vertex.
func (g *Graph) VSucc(n Node) Node {
	return g.nodes.handle(g.nodes.get(n).vsucc)
}

// FSucc returns the next node around n's face.
func (g *Graph) FSucc(n Node) Node {
	m := g.nodes.get(n).mate
	return g.nodes.handle(g.nodes.record(m).vsucc)
}

// VPred returns the node whose vertex successor is n.
func (g *Graph) VPred(n Node) Node {
	p := n
	for {
		next := g.VSucc(p)
		if next == n {
			return p
		}
		p = next
	}
}

// FPred returns the node whose face successor is n.
func (g *Graph) FPred(n Node) Node {
	return g.Mate(g.VPred(n))
}

// EachAroundVertex calls fn for n and every other node of its vertex ring, in
// VSucc order, until fn returns false.
func (g *Graph) EachAroundVertex(n Node, fn func(Node) bool) {
	e := n
	for {
		next := g.VSucc(e)
		if !fn(e) {
			return
		}
		e = next
		if e == n {
			return
		}
	}
}

// EachAroundFace calls fn for n and every other node of its face, in FSucc
// order, until fn returns false.
func (g *Graph) EachAroundFace(n Node, fn func(Node) bool) {
	e := n
	for {
		next := g.FSucc(e)
		if !fn(e) {
			return
		}
		e = next
		if e == n {
			return
		}
	}
}

// VertexDegree returns the number of nodes around n's vertex.
func (g *Graph) VertexDegree(n Node) int {
	count := 0
	g.EachAroundVertex(n, func(Node) bool {
		count++
		return true
	})
	return count
}

// FaceSize returns the number of nodes around n's face.
func (g *Graph) FaceSize(n Node) int {
	count := 0
	g.EachAroundFace(n, func(Node) bool {
		count++
		return true
	})
	return count
}

// EachNode calls fn for every live node until fn returns false. fn must not
// create or delete edges.
func (g *Graph) EachNode(fn func(Node) bool) {
	g.checkOpen()
	g.nodes.each(func(index int32, he *halfEdge) bool {
		return fn(Node{index: index, gen: he.gen})
	})
}

// ID returns the application id of n.
func (g *Graph) ID(n Node) int {
	return g.nodes.get(n).id
}

func (g *Graph) SetID(n Node, id int) {
	g.nodes.get(n).id = id
}

// UserData returns n's user bytes. The slice aliases the node's storage and
// has the length given by WithUserDataSize.
func (g *Graph) UserData(n Node) []byte {
	return g.nodes.get(n).user
}

func (g *Graph) XYZ(n Node) XYZ {
	return g.nodes.get(n).xyz
}

func (g *Graph) SetXYZ(n Node, p XYZ) {
	g.nodes.get(n).xyz = p
}

// SetXYZAroundVertex sets p on every node of n's vertex ring.
func (g *Graph) SetXYZAroundVertex(n Node, p XYZ) {
	g.EachAroundVertex(n, func(e Node) bool {
		g.nodes.get(e).xyz = p
		return true
	})
}

// GetMask returns the bits of m that are set on n.
func (g *Graph) GetMask(n Node, m Mask) Mask {
	return g.nodes.get(n).mask & m
}

// HasMask reports whether any bit of m is set on n.
func (g *Graph) HasMask(n Node, m Mask) bool {
	return g.nodes.get(n).mask&m != 0
}

func (g *Graph) SetMask(n Node, m Mask) {
	g.nodes.get(n).mask |= m
}

func (g *Graph) ClearMask(n Node, m Mask) {
	g.nodes.get(n).mask &^= m
}

func (g *Graph) ToggleMask(n Node, m Mask) {
	g.nodes.get(n).mask ^= m
}

// WriteMask sets m on n when on is true and clears it otherwise.
func (g *Graph) WriteMask(n Node, m Mask, on bool) {
	if on {
		g.SetMask(n, m)
	} else {
		g.ClearMask(n, m)
	}
}

func (g *Graph) SetMaskAroundVertex(n Node, m Mask) {
	g.EachAroundVertex(n, func(e Node) bool {
		g.nodes.get(e).mask |= m
		return true
	})
}

func (g *Graph) ClearMaskAroundVertex(n Node, m Mask) {
	g.EachAroundVertex(n, func(e Node) bool {
		g.nodes.get(e).mask &^= m
		return true
	})
}

func (g *Graph) SetMaskAroundFace(n Node, m Mask) {
	g.EachAroundFace(n, func(e Node) bool {
		g.nodes.get(e).mask |= m
		return true
	})
}

func (g *Graph) ClearMaskAroundFace(n Node, m Mask) {
	g.EachAroundFace(n, func(e Node) bool {
		g.nodes.get(e).mask &^= m
		return true
	})
}

// CountMaskAroundFace returns the number of nodes of n's face that have any
// bit of m.
func (g *Graph) CountMaskAroundFace(n Node, m Mask) int {
	count := 0
	g.EachAroundFace(n, func(e Node) bool {
		if g.nodes.get(e).mask&m != 0 {
			count++
		}
		return true
	})
	return count
}

// GrabMask returns a mask bit that no other caller holds. The bit's value on
// the nodes is whatever the previous holder left; clear or set it before use.
// Every successful GrabMask must be paired with one DropMask.
func (g *Graph) GrabMask() (Mask, error) {
	g.checkOpen()
	m, err := g.masks.grab()
	if err != nil {
		Logger().Warn("halfedge: mask pool exhausted", "capacity", MaskCapacity)
		return 0, err
	}
	return m, nil
}

// DropMask returns m to the pool.
func (g *Graph) DropMask(m Mask) {
	g.masks.drop(m)
}

// GrabbedMaskCount returns the number of masks currently grabbed.
func (g *Graph) GrabbedMaskCount() int {
	return g.masks.count()
}

// WithGrabbedMask grabs a mask cleared on every node, calls fn with it and
// drops it again.
func (g *Graph) WithGrabbedMask(fn func(Mask) error) error {
	m, err := g.GrabMask()
	if err != nil {
		return err
	}
	defer g.DropMask(m)
	g.ClearMaskInSet(m)
	return fn(m)
}

func (g *Graph) SetMaskInSet(m Mask) {
	g.checkOpen()
	g.nodes.each(func(_ int32, he *halfEdge) bool {
		he.mask |= m
		return true
	})
}

func (g *Graph) ClearMaskInSet(m Mask) {
	g.checkOpen()
	g.nodes.each(func(_ int32, he *halfEdge) bool {
		he.mask &^= m
		return true
	})
}

func (g *Graph) ToggleMaskInSet(m Mask) {
	g.checkOpen()
	g.nodes.each(func(_ int32, he *halfEdge) bool {
		he.mask ^= m
		return true
	})
}

// CountMasked returns the number of live nodes with any bit of m set.
func (g *Graph) CountMasked(m Mask) int {
	g.checkOpen()
	count := 0
	g.nodes.each(func(_ int32, he *halfEdge) bool {
		if he.mask&m != 0 {
			count++
		}
		return true
	})
	return count
}

// CountUnmasked returns the number of live nodes with no bit of m set.
func (g *Graph) CountUnmasked(m Mask) int {
	return g.LiveCount() - g.CountMasked(m)
}
