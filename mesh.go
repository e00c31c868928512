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

// MakeEdge creates a new edge whose two halves form their own vertex rings.
// Coordinates are left at zero; set them before the edge takes part in any
// geometric query.
func (g *Graph) MakeEdge() (Node, Node) {
	g.checkOpen()
	a, b := g.nodes.allocatePair()
	g.nodes.get(a).mask = g.roles.WholeGraph
	g.nodes.get(b).mask = g.roles.WholeGraph
	return a, b
}

// splice exchanges the vertex successors of a and b. Applied to nodes of two
// different vertex rings it merges them; applied to two nodes of one ring it
// splits the ring in two. Mates are never touched.
func (g *Graph) splice(a, b Node) {
	ra := g.nodes.get(a)
	rb := g.nodes.get(b)
	ra.vsucc, rb.vsucc = rb.vsucc, ra.vsucc
}

// sameVertex reports whether b is in a's vertex ring.
func (g *Graph) sameVertex(a, b Node) bool {
	found := false
	g.EachAroundVertex(a, func(e Node) bool {
		found = e == b
		return !found
	})
	return found
}

// VertexTwist exchanges the vertex successors of a and b.
//
// If a and b are at different vertices the two rings are joined, with b's ring
// inserted after a. Bits of Roles.CopyAroundVertex present anywhere on either
// ring are then set around the joined ring. If a and b are at the same vertex
// the ring is split in two.
func (g *Graph) VertexTwist(a, b Node) {
	if a == b {
		return
	}
	joining := !g.sameVertex(a, b)
	g.splice(a, b)
	if !joining || g.roles.CopyAroundVertex == 0 {
		return
	}
	var carried Mask
	g.EachAroundVertex(a, func(e Node) bool {
		carried |= g.GetMask(e, g.roles.CopyAroundVertex)
		return true
	})
	if carried != 0 {
		g.SetMaskAroundVertex(a, carried)
	}
}

// detach removes n from its vertex ring, leaving it a ring of one.
func (g *Graph) detach(n Node) {
	if g.VSucc(n) == n {
		return
	}
	g.splice(g.VPred(n), n)
}

// DeleteEdge removes the edge of n from the graph and recycles both halves.
// n and its mate are stale afterwards.
func (g *Graph) DeleteEdge(n Node) {
	m := g.Mate(n)
	g.detach(n)
	g.detach(m)
	g.nodes.releasePair(n, m)
}

// SplitEdge inserts a vertex at p inside the edge of n. It returns the two
// new nodes at p: the first continues in n's direction, the second in the
// mate's direction. Both faces of the edge gain one node.
//
// The new nodes copy the ids, user data and Roles.CopyOnSplit bits of the
// halves they continue.
func (g *Graph) SplitEdge(n Node, p XYZ) (Node, Node) {
	m := g.Mate(n)
	x, y := g.nodes.allocatePair()

	rn := g.nodes.get(n)
	rm := g.nodes.get(m)
	rx := g.nodes.get(x)
	ry := g.nodes.get(y)

	// Re-pair: n with y, x with m. x and y share the new vertex.
	rn.mate, ry.mate = y.index, n.index
	rx.mate, rm.mate = m.index, x.index
	rx.vsucc, ry.vsucc = y.index, x.index

	keep := g.roles.CopyOnSplit
	rx.mask = g.roles.WholeGraph | rn.mask&keep
	ry.mask = g.roles.WholeGraph | rm.mask&keep
	rx.id, ry.id = rn.id, rm.id
	copy(rx.user, rn.user)
	copy(ry.user, rm.user)
	rx.xyz, ry.xyz = p, p
	return x, y
}

// JoinEdge removes a degree-two vertex created by SplitEdge. x must be a node
// whose vertex ring holds exactly x and one other node y; the edges on both
// sides of the vertex are merged and x, y are recycled. It reports whether the
// edges were joined.
func (g *Graph) JoinEdge(x Node) bool {
	y := g.VSucc(x)
	if y == x || g.VSucc(y) != x {
		return false
	}
	n := g.Mate(y)
	m := g.Mate(x)
	if n == x || m == y {
		return false
	}
	rn := g.nodes.get(n)
	rm := g.nodes.get(m)
	rx := g.nodes.get(x)
	ry := g.nodes.get(y)

	rn.mate, rm.mate = m.index, n.index
	rx.mate, ry.mate = y.index, x.index
	rx.vsucc, ry.vsucc = x.index, y.index
	g.nodes.releasePair(x, y)
	return true
}
