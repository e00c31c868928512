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
)

// firstBlockSize is the record count of the first arena block. Each following
// block doubles in size, so block b starts at index firstBlockSize*(2^b-1).
const firstBlockSize = 16

// Node is a handle to one half-edge (vertex-use) of a Graph.
//
// A Node is an index into the graph's arena together with the generation of
// the record it was issued for. Once the half-edge is released the handle
// becomes stale and any use of it panics, even after the index is reused.
// The zero Node is NilNode.
type Node struct {
	index int32
	gen   uint32
}

// NilNode is the zero Node. It never refers to a live half-edge.
var NilNode Node

// IsNil reports whether n is NilNode.
func (n Node) IsNil() bool {
	return n.gen == 0
}

func (n Node) String() string {
	if n.IsNil() {
		return "nil"
	}
	return fmt.Sprintf("n%d.%d", n.index, n.gen)
}

// halfEdge is the arena record behind a Node.
type halfEdge struct {
	mate  int32
	vsucc int32
	gen   uint32
	free  bool

	// nextFree threads released records; -1 terminates the list.
	nextFree int32

	mask Mask
	id   int
	xyz  XYZ
	user []byte
}

// arena owns every half-edge record of a graph. Records live in blocks that
// are never moved or freed before the arena itself, and released records are
// recycled through a LIFO free list.
type arena struct {
	blocks   [][]halfEdge
	userSize int

	// next is the first index never handed out.
	next     int32
	capacity int32
	freeHead int32
	live     int
}

func newArena(userSize int) arena {
	return arena{
		userSize: userSize,
		freeHead: -1,
	}
}

func blockOf(index int32) (block int, offset int32) {
	q := uint32(index)/firstBlockSize + 1
	block = bits.Len32(q) - 1
	start := int32(firstBlockSize * ((1 << block) - 1))
	return block, index - start
}

func (a *arena) record(index int32) *halfEdge {
	b, off := blockOf(index)
	return &a.blocks[b][off]
}

// get resolves a handle, panicking on nil, out of range or stale handles.
func (a *arena) get(n Node) *halfEdge {
	if n.gen == 0 || n.index < 0 || n.index >= a.next {
		panic(fmt.Sprintf("halfedge: invalid node %v", n))
	}
	r := a.record(n.index)
	if r.gen != n.gen {
		panic(fmt.Sprintf("halfedge: stale node %v", n))
	}
	return r
}

func (a *arena) handle(index int32) Node {
	return Node{index: index, gen: a.record(index).gen}
}

func (a *arena) grow() {
	size := firstBlockSize << len(a.blocks)
	block := make([]halfEdge, size)
	if a.userSize > 0 {
		slab := make([]byte, size*a.userSize)
		for i := range block {
			lo := i * a.userSize
			hi := lo + a.userSize
			block[i].user = slab[lo:hi:hi]
		}
	}
	a.blocks = append(a.blocks, block)
	a.capacity += int32(size)
}

// reserve makes sure at least n records can be carved without growing.
func (a *arena) reserve(n int) {
	for int(a.capacity) < n {
		a.grow()
	}
}

func (a *arena) take() int32 {
	if a.freeHead >= 0 {
		i := a.freeHead
		r := a.record(i)
		a.freeHead = r.nextFree
		r.free = false
		r.nextFree = -1
		return i
	}
	if a.next == a.capacity {
		a.grow()
	}
	i := a.next
	a.next++
	r := a.record(i)
	r.gen = 1
	r.nextFree = -1
	return i
}

// allocatePair returns two fresh half-edges that are each other's mate. Each
// one is its own single-node vertex ring.
func (a *arena) allocatePair() (Node, Node) {
	i := a.take()
	j := a.take()
	ri := a.record(i)
	rj := a.record(j)
	ri.mate, ri.vsucc = j, i
	rj.mate, rj.vsucc = i, j
	a.live += 2
	return a.handle(i), a.handle(j)
}

// releasePair returns a mated pair to the free list. The caller must have
// detached both records from any other vertex ring already.
func (a *arena) releasePair(x, y Node) {
	rx := a.get(x)
	ry := a.get(y)
	if debugChecks {
		assert(rx.mate == y.index && ry.mate == x.index, "release of unmated pair %v %v", x, y)
	}
	a.release(x.index, rx)
	a.release(y.index, ry)
	a.live -= 2
}

func (a *arena) release(index int32, r *halfEdge) {
	r.gen++
	if r.gen == 0 {
		r.gen = 1
	}
	r.free = true
	r.mate = -1
	r.vsucc = -1
	r.mask = 0
	r.id = 0
	r.xyz = XYZ{}
	for i := range r.user {
		r.user[i] = 0
	}
	r.nextFree = a.freeHead
	a.freeHead = index
}

func (a *arena) liveCount() int {
	return a.live
}

// each calls fn for every live record in index order until fn returns false.
func (a *arena) each(fn func(index int32, r *halfEdge) bool) {
	var index int32
	for _, block := range a.blocks {
		for k := range block {
			if index >= a.next {
				return
			}
			r := &block[k]
			if !r.free {
				if !fn(index, r) {
					return
				}
			}
			index++
		}
	}
}
