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

import "math"

// XYZ is the position of a vertex. Only X and Y take part in planar
// predicates; Z is carried along as payload.
type XYZ struct {
	X, Y, Z float64
}

// Range is an axis aligned box in the XY plane.
type Range struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// emptyRange is the identity for Extend.
func emptyRange() Range {
	return Range{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether r contains no point.
func (r Range) IsEmpty() bool {
	return r.MinX > r.MaxX || r.MinY > r.MaxY
}

// Extend returns the smallest range containing r and p.
func (r Range) Extend(p XYZ) Range {
	return Range{
		MinX: math.Min(r.MinX, p.X),
		MinY: math.Min(r.MinY, p.Y),
		MaxX: math.Max(r.MaxX, p.X),
		MaxY: math.Max(r.MaxY, p.Y),
	}
}

// Contains reports whether (x, y) is inside r or on its border.
func (r Range) Contains(x, y float64) bool {
	return x >= r.MinX && x <= r.MaxX && y >= r.MinY && y <= r.MaxY
}

// Semiperimeter returns width plus height, or 0 for an empty range.
func (r Range) Semiperimeter() float64 {
	if r.IsEmpty() {
		return 0
	}
	return (r.MaxX - r.MinX) + (r.MaxY - r.MinY)
}

// isLeft returns a positive value when p lies left of the line a->b, negative
// when it lies right of it, and 0 when it is on the line.
func isLeft(a, b, p XYZ) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}

// segmentWinding is the contribution of segment a->b to the winding number
// of p, counted with a horizontal ray to the right.
func segmentWinding(a, b, p XYZ) int {
	if a.Y <= p.Y && b.Y > p.Y {
		if isLeft(a, b, p) > 0 {
			return 1
		}
	} else if a.Y > p.Y && b.Y <= p.Y {
		if isLeft(a, b, p) < 0 {
			return -1
		}
	}
	return 0
}

// angleOf returns the direction of the vector from a to b in (-pi, pi].
func angleOf(a, b XYZ) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// FaceArea returns the signed area of the face containing n. Faces traversed
// counterclockwise have positive area. Faces with one or two nodes have area
// exactly zero.
func (g *Graph) FaceArea(n Node) float64 {
	start := g.FSucc(n)
	if g.FSucc(start) == n || start == n {
		return 0
	}
	area := 0.0
	p := n
	for {
		q := g.FSucc(p)
		a := g.XYZ(p)
		b := g.XYZ(q)
		area -= (b.X - a.X) * (a.Y + b.Y)
		p = q
		if p == n {
			break
		}
	}
	return area * 0.5
}

// MarkFaceAndComputeArea sets m on every node of the face containing n and
// returns the face's signed area.
func (g *Graph) MarkFaceAndComputeArea(n Node, m Mask) float64 {
	g.SetMaskAroundFace(n, m)
	return g.FaceArea(n)
}

// FaceWinding returns the winding number of the face boundary around (x, y).
func (g *Graph) FaceWinding(n Node, x, y float64) int {
	p := XYZ{X: x, Y: y}
	w := 0
	e := n
	for {
		next := g.FSucc(e)
		w += segmentWinding(g.XYZ(e), g.XYZ(next), p)
		e = next
		if e == n {
			break
		}
	}
	return w
}

// FaceRange returns the range of the coordinates around the face containing n.
func (g *Graph) FaceRange(n Node) Range {
	r := emptyRange()
	e := n
	for {
		r = r.Extend(g.XYZ(e))
		e = g.FSucc(e)
		if e == n {
			break
		}
	}
	return r
}

// Range returns the range of all live node coordinates. The second result is
// false for a graph without nodes.
func (g *Graph) Range() (Range, bool) {
	g.checkOpen()
	r := emptyRange()
	g.nodes.each(func(_ int32, he *halfEdge) bool {
		r = r.Extend(he.xyz)
		return true
	})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// MaxAbsXY returns the largest absolute X or Y coordinate in the graph.
func (g *Graph) MaxAbsXY() float64 {
	g.checkOpen()
	m := 0.0
	g.nodes.each(func(_ int32, he *halfEdge) bool {
		m = math.Max(m, math.Max(math.Abs(he.xyz.X), math.Abs(he.xyz.Y)))
		return true
	})
	return m
}

// ToleranceFromGraph combines the absolute and relative tolerances with the
// graph's coordinate magnitude.
func (g *Graph) ToleranceFromGraph() float64 {
	return g.tol.Absolute + g.tol.Relative*g.MaxAbsXY()
}
