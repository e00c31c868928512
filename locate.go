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
	"github.com/peterstace/simplefeatures/rtree"
	"github.com/pkg/errors"
)

// FaceLocator answers point-in-face queries against a graph whose topology
// no longer changes. It indexes the range of every face in an R-tree.
//
// The locator holds node handles; editing the graph afterwards invalidates
// it.
type FaceLocator struct {
	graph *Graph
	tree  *rtree.RTree
	faces []locatedFace
	slack float64
}

type locatedFace struct {
	node Node
	area float64
	r    Range
}

// NewFaceLocator indexes the faces of g.
func NewFaceLocator(g *Graph) (*FaceLocator, error) {
	if g.LiveCount() == 0 {
		return nil, ErrEmptyGraph
	}
	l := &FaceLocator{
		graph: g,
		slack: g.ToleranceFromGraph(),
	}
	err := g.WithGrabbedMask(func(seen Mask) error {
		g.EachNode(func(n Node) bool {
			if g.HasMask(n, seen) {
				return true
			}
			area := g.MarkFaceAndComputeArea(n, seen)
			l.faces = append(l.faces, locatedFace{
				node: n,
				area: area,
				r:    g.FaceRange(n),
			})
			return true
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "face locator")
	}

	items := make([]rtree.BulkItem, len(l.faces))
	for i, f := range l.faces {
		items[i] = rtree.BulkItem{Box: l.box(f.r), RecordID: i}
	}
	l.tree = rtree.BulkLoad(items)
	return l, nil
}

func (l *FaceLocator) box(r Range) rtree.Box {
	return rtree.Box{
		MinX: r.MinX - l.slack,
		MinY: r.MinY - l.slack,
		MaxX: r.MaxX + l.slack,
		MaxY: r.MaxY + l.slack,
	}
}

// FaceCount returns the number of indexed faces.
func (l *FaceLocator) FaceCount() int {
	return len(l.faces)
}

// FacesAt returns one node of every face whose range contains (x, y). The
// result is a superset of the faces containing the point.
func (l *FaceLocator) FacesAt(x, y float64) []Node {
	var nodes []Node
	_ = l.tree.RangeSearch(l.box(Range{MinX: x, MinY: y, MaxX: x, MaxY: y}), func(i int) error {
		nodes = append(nodes, l.faces[i].node)
		return nil
	})
	return nodes
}

// Locate returns a node of the smallest bounded face whose boundary winds
// around (x, y). The second result is false when no bounded face does, which
// means the point lies in an unbounded face. Points on an edge may be
// reported in either adjacent face.
func (l *FaceLocator) Locate(x, y float64) (Node, bool) {
	g := l.graph
	best := -1
	_ = l.tree.RangeSearch(l.box(Range{MinX: x, MinY: y, MaxX: x, MaxY: y}), func(i int) error {
		f := l.faces[i]
		if f.area <= 0 {
			return nil
		}
		if best >= 0 && l.faces[best].area <= f.area {
			return nil
		}
		if g.FaceWinding(f.node, x, y) != 0 {
			best = i
		}
		return nil
	})
	if best < 0 {
		return NilNode, false
	}
	return l.faces[best].node, true
}
