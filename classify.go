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

func classify(g *Graph, p Policy) (Stats, error) {
	if g.LiveCount() == 0 {
		return Stats{}, ErrEmptyGraph
	}
	s, err := NewFloodSearch(g, p)
	if err != nil {
		return Stats{}, err
	}
	defer s.Release()
	s.RunFromAllNegativeAreaFaces()
	return s.Stats(), nil
}

// ClassifyParity fills the faces of g by the even-odd rule over the edges
// marked with boundary. On return, exterior is set on every node whose face is
// outside and cleared on every node whose face is inside.
func ClassifyParity(g *Graph, boundary, exterior Mask) (Stats, error) {
	st, err := classify(g, NewParityPolicy(g, boundary, exterior))
	if err != nil {
		return st, errors.Wrap(err, "parity")
	}
	return st, nil
}

// ClassifyUnion classifies the faces of g by the winding count of regions.
// Faces covered with a count of at least minWinding are inside. On return,
// exterior is set on every node whose face is outside and cleared on every
// node whose face is inside.
func ClassifyUnion(g *Graph, regions []UnionRegion, minWinding int, exterior Mask) (Stats, error) {
	p, err := NewUnionPolicy(g, regions, minWinding, exterior)
	if err != nil {
		return Stats{}, err
	}
	st, err := classify(g, p)
	if err != nil {
		return st, errors.Wrap(err, "union")
	}
	return st, nil
}

// InteriorFaces returns one node of every face whose nodes do not carry
// exterior, in node index order. The caller must drop the array with
// DropArray.
func InteriorFaces(g *Graph, exterior Mask) (*NodeArray, error) {
	faces := g.GrabArray()
	err := g.WithGrabbedMask(func(seen Mask) error {
		g.EachNode(func(n Node) bool {
			if g.HasMask(n, seen) {
				return true
			}
			g.SetMaskAroundFace(n, seen)
			if !g.HasMask(n, exterior) {
				faces.Add(n)
			}
			return true
		})
		return nil
	})
	if err != nil {
		g.DropArray(faces)
		return nil, err
	}
	return faces, nil
}
