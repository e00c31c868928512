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

import "github.com/pkg/errors"

// UnionRegion describes one input region of a winding classification.
type UnionRegion struct {
	// Exterior is set on every half-edge of the region's boundary whose face
	// lies outside the region.
	Exterior Mask

	// Weight is added to the winding count when the region is entered and
	// subtracted when it is left. Zero means 1; a negative weight makes the
	// region subtract.
	Weight int
}

func (r UnionRegion) weight() int {
	if r.Weight == 0 {
		return 1
	}
	return r.Weight
}

// UnionPolicy classifies faces by winding count. The unbounded face starts at
// 0, and a face is interior when its count reaches the threshold: 1 gives the
// union of the regions, len(regions) their intersection, and values in between
// "covered by at least N".
type UnionPolicy struct {
	graph      *Graph
	regions    []UnionRegion
	minWinding int
	exterior   Mask
}

// NewUnionPolicy returns a winding policy for g. exterior is the composite
// mask written by the policy and must not overlap any region mask.
func NewUnionPolicy(g *Graph, regions []UnionRegion, minWinding int, exterior Mask) (*UnionPolicy, error) {
	if len(regions) == 0 {
		return nil, ErrNoRegions
	}
	if minWinding < 1 {
		return nil, errors.Wrapf(ErrBadThreshold, "got %d", minWinding)
	}
	for i, r := range regions {
		if r.Exterior == 0 {
			return nil, errors.Wrapf(ErrNoRegions, "region %d has no mask", i)
		}
		if r.Exterior&exterior != 0 {
			return nil, errors.Errorf("halfedge: region %d mask %v overlaps composite exterior %v", i, r.Exterior, exterior)
		}
	}
	return &UnionPolicy{
		graph:      g,
		regions:    append([]UnionRegion(nil), regions...),
		minWinding: minWinding,
		exterior:   exterior,
	}, nil
}

// IsInterior reports whether a face with the given winding count is inside.
func (p *UnionPolicy) IsInterior(depth float64) bool {
	return int(depth) >= p.minWinding
}

func (p *UnionPolicy) MarkSeedFace(seed Node) float64 {
	p.writeFace(seed, 0)
	return 0
}

func (p *UnionPolicy) StepIntoFace(outside Node, outsideDepth float64, inside Node) float64 {
	w := int(outsideDepth)
	for _, r := range p.regions {
		if p.graph.HasMask(outside, r.Exterior) {
			w += r.weight()
		}
		if p.graph.HasMask(inside, r.Exterior) {
			w -= r.weight()
		}
	}
	d := float64(w)
	p.writeFace(inside, d)
	return d
}

func (p *UnionPolicy) writeFace(n Node, depth float64) {
	if p.IsInterior(depth) {
		p.graph.ClearMaskAroundFace(n, p.exterior)
	} else {
		p.graph.SetMaskAroundFace(n, p.exterior)
	}
}
