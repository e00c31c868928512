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

import (
	"sort"

	"github.com/pkg/errors"
)

// SegmentBuilder populates a graph from segments that are already noded: two
// segments may share end points but must not cross or overlap elsewhere.
//
// Each segment becomes one edge. Its forward half-edge starts at p0 and lies
// on the face to the left of p0->p1; its mate starts at p1 and lies on the
// face to the right. Build then joins the half-edges that start at exactly the
// same XY position into vertex rings.
type SegmentBuilder struct {
	graph *Graph
	nodes []Node
	count int
}

func NewSegmentBuilder(g *Graph) *SegmentBuilder {
	return &SegmentBuilder{graph: g}
}

// AddSegment adds the segment p0->p1. left is set on the half-edge facing the
// left side and right on its mate. The forward half-edge is returned, and
// both halves get the segment's index as id.
func (b *SegmentBuilder) AddSegment(p0, p1 XYZ, left, right Mask) (Node, error) {
	if p0.X == p1.X && p0.Y == p1.Y {
		return NilNode, errors.Wrapf(ErrDegenerateSegment, "segment %d at (%g, %g)", b.count, p0.X, p0.Y)
	}
	g := b.graph
	n, m := g.MakeEdge()
	g.SetXYZ(n, p0)
	g.SetXYZ(m, p1)
	g.SetMask(n, left)
	g.SetMask(m, right)
	g.SetID(n, b.count)
	g.SetID(m, b.count)
	b.nodes = append(b.nodes, n, m)
	b.count++
	return n, nil
}

// AddLoop adds the closed polyline through points. A final point equal to the
// first is ignored. Besides left and right, the half-edges on the left get
// the graph's NewLoopInterior role and those on the right NewLoopExterior;
// both get MaskPrimaryEdge. For a counterclockwise loop the left side is the
// inside.
func (b *SegmentBuilder) AddLoop(points []XYZ, left, right Mask) error {
	if k := len(points); k > 0 && points[0].X == points[k-1].X && points[0].Y == points[k-1].Y {
		points = points[:k-1]
	}
	if len(points) < 3 {
		return errors.Wrapf(ErrShortLoop, "got %d points", len(points))
	}
	roles := b.graph.Roles()
	left |= roles.NewLoopInterior | MaskPrimaryEdge
	right |= roles.NewLoopExterior | MaskPrimaryEdge
	for i, p := range points {
		q := points[(i+1)%len(points)]
		if _, err := b.AddSegment(p, q, left, right); err != nil {
			return errors.Wrap(err, "loop")
		}
	}
	return nil
}

// SegmentCount returns the number of segments added so far.
func (b *SegmentBuilder) SegmentCount() int {
	return b.count
}

type vertexKey struct {
	x, y float64
}

// Build links the vertex rings of every half-edge added so far. The nodes of
// a ring are ordered clockwise by the direction of their edge, so that faces
// on the left of the segments come out counterclockwise. Build may be called
// again after more segments are added.
func (b *SegmentBuilder) Build() error {
	g := b.graph
	g.checkOpen()

	var order []vertexKey
	rings := map[vertexKey][]Node{}
	for _, n := range b.nodes {
		p := g.XYZ(n)
		k := vertexKey{p.X, p.Y}
		if _, ok := rings[k]; !ok {
			order = append(order, k)
		}
		rings[k] = append(rings[k], n)
	}

	for _, k := range order {
		ring := rings[k]
		angles := make(map[Node]float64, len(ring))
		for _, n := range ring {
			angles[n] = angleOf(g.XYZ(n), g.XYZ(g.Mate(n)))
		}
		sort.SliceStable(ring, func(i, j int) bool {
			return angles[ring[i]] > angles[ring[j]]
		})
		for i, n := range ring {
			next := ring[(i+1)%len(ring)]
			g.nodes.get(n).vsucc = next.index
		}
	}

	Logger().Debug("halfedge: segments built", "segments", b.count, "vertices", len(order))
	if debugChecks {
		if err := CheckGraph(g); err != nil {
			return err
		}
	}
	return nil
}
