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

// CheckGraph verifies the structural invariants of g: every node's mate is a
// different live node whose mate is the node again, every vertex ring closes,
// and the rings partition the live nodes. The error wraps ErrBadTopology and
// names the first node found at fault.
func CheckGraph(g *Graph) error {
	g.checkOpen()
	a := &g.nodes

	live := 0
	var bad error
	a.each(func(index int32, he *halfEdge) bool {
		live++
		n := Node{index: index, gen: he.gen}
		if he.mate == index {
			bad = errors.Wrapf(ErrBadTopology, "node %v is its own mate", n)
			return false
		}
		if !a.isLive(he.mate) {
			bad = errors.Wrapf(ErrBadTopology, "node %v has a released mate", n)
			return false
		}
		if a.record(he.mate).mate != index {
			bad = errors.Wrapf(ErrBadTopology, "node %v: mate of mate is n%d", n, a.record(he.mate).mate)
			return false
		}
		if !a.isLive(he.vsucc) {
			bad = errors.Wrapf(ErrBadTopology, "node %v has a released vertex successor", n)
			return false
		}
		return true
	})
	if bad != nil {
		return bad
	}
	if live != a.liveCount() {
		return errors.Wrapf(ErrBadTopology, "%d live records, count says %d", live, a.liveCount())
	}

	// Walk every vertex ring once. A ring that does not return to its start
	// within live steps is broken, and a node reached from two rings means
	// the rings overlap.
	seen := make(map[int32]bool, live)
	a.each(func(index int32, he *halfEdge) bool {
		if seen[index] {
			return true
		}
		i := index
		for steps := 0; ; steps++ {
			if steps > live || (seen[i] && i != index) {
				bad = errors.Wrapf(ErrBadTopology, "vertex ring of %v does not close", Node{index: index, gen: he.gen})
				return false
			}
			seen[i] = true
			i = a.record(i).vsucc
			if i == index {
				break
			}
		}
		return true
	})
	return bad
}

func (a *arena) isLive(index int32) bool {
	if index < 0 || index >= a.next {
		return false
	}
	return !a.record(index).free
}
