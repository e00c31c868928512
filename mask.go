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
	"fmt"
	"math/bits"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/pkg/errors"
)

// Mask is a set of per-node flag bits.
//
// The low 16 bits are fixed roles with package-wide meaning. The high 16 bits
// are handed out one at a time by Graph.GrabMask to algorithms that need a
// private flag for the duration of one pass.
type Mask uint32

// Fixed masks.
const (
	MaskBoundaryEdge Mask = 1 << iota
	MaskExteriorEdge
	MaskPrimaryEdge
	MaskNewLoopExterior
	MaskNewLoopInterior
	MaskSplitCopy
	MaskVertexCopy
	MaskGraphWide
)

const (
	fixedMaskBits = 16

	// MaskCapacity is the number of masks that can be grabbed at once.
	MaskCapacity = 32 - fixedMaskBits

	// FixedMasks covers every bit reserved for fixed roles.
	FixedMasks Mask = 1<<fixedMaskBits - 1
)

func (m Mask) String() string {
	return fmt.Sprintf("%#08x", uint32(m))
}

// maskAllocator hands out the grabbable bits. Free bits sit on a stack so the
// most recently dropped bit is the next one grabbed.
type maskAllocator struct {
	free    *arraystack.Stack
	grabbed Mask
}

func newMaskAllocator() maskAllocator {
	free := arraystack.New()
	for i := 31; i >= fixedMaskBits; i-- {
		free.Push(Mask(1) << uint(i))
	}
	return maskAllocator{free: free}
}

func (a *maskAllocator) grab() (Mask, error) {
	v, ok := a.free.Pop()
	if !ok {
		return 0, errors.Wrapf(ErrMaskExhausted, "all %d masks grabbed", MaskCapacity)
	}
	m := v.(Mask)
	a.grabbed |= m
	return m, nil
}

func (a *maskAllocator) drop(m Mask) {
	if bits.OnesCount32(uint32(m)) != 1 || a.grabbed&m == 0 {
		assert(false, "drop of mask %v that is not grabbed (grabbed %v)", m, a.grabbed)
		return
	}
	a.grabbed &^= m
	a.free.Push(m)
}

func (a *maskAllocator) count() int {
	return bits.OnesCount32(uint32(a.grabbed))
}

// MaskGuard owns one grabbed mask and returns it to the graph on Release.
//
//	guard, err := g.NewMaskGuard(false)
//	if err != nil {
//		return err
//	}
//	defer guard.Release()
type MaskGuard struct {
	graph *Graph
	mask  Mask
}

// NewMaskGuard grabs a mask and sets it on every node (on is true) or clears
// it everywhere (on is false).
func (g *Graph) NewMaskGuard(on bool) (*MaskGuard, error) {
	m, err := g.GrabMask()
	if err != nil {
		return nil, err
	}
	if on {
		g.SetMaskInSet(m)
	} else {
		g.ClearMaskInSet(m)
	}
	return &MaskGuard{graph: g, mask: m}, nil
}

// Mask returns the guarded bit, or 0 after Release.
func (mg *MaskGuard) Mask() Mask {
	return mg.mask
}

func (mg *MaskGuard) IsSetAt(n Node) bool {
	return mg.graph.HasMask(n, mg.mask)
}

func (mg *MaskGuard) SetAt(n Node) {
	mg.graph.SetMask(n, mg.mask)
}

func (mg *MaskGuard) ClearAt(n Node) {
	mg.graph.ClearMask(n, mg.mask)
}

func (mg *MaskGuard) SetAroundVertex(n Node) {
	mg.graph.SetMaskAroundVertex(n, mg.mask)
}

func (mg *MaskGuard) SetAroundFace(n Node) {
	mg.graph.SetMaskAroundFace(n, mg.mask)
}

func (mg *MaskGuard) ClearAroundFace(n Node) {
	mg.graph.ClearMaskAroundFace(n, mg.mask)
}

// Release drops the mask. Calling Release more than once is harmless.
func (mg *MaskGuard) Release() {
	if mg.mask == 0 {
		return
	}
	mg.graph.DropMask(mg.mask)
	mg.mask = 0
}
