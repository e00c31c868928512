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

// ParityPolicy fills faces by the even-odd rule. Crossing an edge that carries
// the boundary mask flips the depth between 0 and 1; crossing any other edge
// keeps it.
//
// Every face the search reaches is written: the exterior mask is set around
// faces of even depth and cleared around faces of odd depth.
type ParityPolicy struct {
	graph    *Graph
	boundary Mask
	exterior Mask
}

// NewParityPolicy returns a parity policy for g. boundary marks the edges that
// flip parity; it should be set on both halves of those edges. exterior is
// written by the policy.
func NewParityPolicy(g *Graph, boundary, exterior Mask) *ParityPolicy {
	return &ParityPolicy{
		graph:    g,
		boundary: boundary,
		exterior: exterior,
	}
}

// IsInterior reports whether a face with the given depth is inside.
func (p *ParityPolicy) IsInterior(depth float64) bool {
	return int(depth)%2 != 0
}

func (p *ParityPolicy) MarkSeedFace(seed Node) float64 {
	p.writeFace(seed, 0)
	return 0
}

func (p *ParityPolicy) StepIntoFace(outside Node, outsideDepth float64, inside Node) float64 {
	d := outsideDepth
	if p.graph.HasMask(outside, p.boundary) || p.graph.HasMask(inside, p.boundary) {
		d = 1 - d
	}
	p.writeFace(inside, d)
	return d
}

func (p *ParityPolicy) writeFace(n Node, depth float64) {
	if p.IsInterior(depth) {
		p.graph.ClearMaskAroundFace(n, p.exterior)
	} else {
		p.graph.SetMaskAroundFace(n, p.exterior)
	}
}
