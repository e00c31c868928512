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

// Tolerances scale the slack used by geometric lookups such as FaceLocator.
// Classification never compares coordinates within tolerance.
type Tolerances struct {
	// Absolute is added to every tolerance derived from the graph.
	Absolute float64

	// Relative is multiplied by the largest coordinate magnitude.
	Relative float64
}

// DefaultTolerances returns the tolerances a Graph starts with.
func DefaultTolerances() Tolerances {
	return Tolerances{
		Relative: 1.0e-12,
	}
}

// Roles names the masks that graph edits apply on their own. Each field may be
// any combination of bits, including none.
type Roles struct {
	// NewLoopExterior is set on the outer side of loops added by a builder.
	NewLoopExterior Mask

	// NewLoopInterior is set on the inner side of loops added by a builder.
	NewLoopInterior Mask

	// CopyOnSplit bits are copied to both new nodes by SplitEdge.
	CopyOnSplit Mask

	// CopyAroundVertex bits are spread around the merged ring by VertexTwist.
	CopyAroundVertex Mask

	// WholeGraph is set on every node created by MakeEdge.
	WholeGraph Mask
}

// DefaultRoles returns the roles a Graph starts with.
func DefaultRoles() Roles {
	return Roles{
		NewLoopExterior:  MaskNewLoopExterior,
		NewLoopInterior:  MaskNewLoopInterior,
		CopyOnSplit:      MaskSplitCopy | MaskBoundaryEdge | MaskPrimaryEdge | MaskExteriorEdge,
		CopyAroundVertex: MaskVertexCopy,
		WholeGraph:       MaskGraphWide,
	}
}

// GraphOption configures a Graph during creation.
//
//	g := halfedge.NewGraph(
//		halfedge.WithUserDataSize(8),
//		halfedge.WithInitialCapacity(1024),
//	)
type GraphOption func(*graphOptions)

type graphOptions struct {
	userDataSize    int
	initialCapacity int
	tolerances      Tolerances
	roles           Roles
}

func defaultGraphOptions() graphOptions {
	return graphOptions{
		tolerances: DefaultTolerances(),
		roles:      DefaultRoles(),
	}
}

// WithUserDataSize reserves size bytes of user data on every node.
// See Graph.UserData.
func WithUserDataSize(size int) GraphOption {
	return func(o *graphOptions) {
		if size < 0 {
			size = 0
		}
		o.userDataSize = size
	}
}

// WithInitialCapacity preallocates room for n nodes.
func WithInitialCapacity(n int) GraphOption {
	return func(o *graphOptions) {
		o.initialCapacity = n
	}
}

// WithTolerances replaces the default tolerances.
func WithTolerances(t Tolerances) GraphOption {
	return func(o *graphOptions) {
		o.tolerances = t
	}
}

// WithRoles replaces the default role masks.
func WithRoles(r Roles) GraphOption {
	return func(o *graphOptions) {
		o.roles = r
	}
}
