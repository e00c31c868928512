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

// Policy decides the classification value of each face reached by a
// FloodSearch.
//
// MarkSeedFace is called once for every seed face and returns its starting
// depth. StepIntoFace is called when the search crosses from an already
// classified face into an unvisited one: outside is the crossed node on the
// classified side, inside is its mate on the new face. It returns the depth
// of the new face.
//
// A policy may write masks on the face it is handed (seed or inside) but on
// no other face.
type Policy interface {
	MarkSeedFace(seed Node) float64
	StepIntoFace(outside Node, outsideDepth float64, inside Node) float64
}

// searchEntry is one pending crossing.
type searchEntry struct {
	outside Node
	inside  Node
	depth   float64

	// id is the index of the seed the crossing descends from.
	id int

	// mask is outside's mask when the entry was pushed.
	mask Mask
}

type searchStack struct {
	leased
	entries []searchEntry
}

func (s *searchStack) reset() {
	s.entries = s.entries[:0]
}

func (s *searchStack) push(e searchEntry) {
	s.entries = append(s.entries, e)
}

func (s *searchStack) pop() (searchEntry, bool) {
	n := len(s.entries)
	if n == 0 {
		return searchEntry{}, false
	}
	e := s.entries[n-1]
	s.entries = s.entries[:n-1]
	return e, true
}

// Stats summarizes the work done by a FloodSearch.
type Stats struct {
	// Seeds is the number of seeds that started a traversal.
	Seeds int

	// Faces is the number of faces classified.
	Faces int

	// Pushes is the number of crossings pushed on the stack.
	Pushes int

	// Discarded is the number of crossings popped after their face had
	// already been reached another way.
	Discarded int

	// MaxStack is the deepest the stack got.
	MaxStack int
}

// FloodSearch propagates a Policy's per-face depth across a graph, starting
// from seed faces and crossing one edge at a time.
//
// Each face is classified exactly once. Seeds are processed in the order they
// were pushed, and the faces reached from one seed in last-in first-out order
// before the next seed starts. The result must not depend on this order.
type FloodSearch struct {
	graph   *Graph
	policy  Policy
	visited Mask
	stack   *searchStack
	seeds   *NodeArray
	stats   Stats
}

// NewFloodSearch binds policy to g. It grabs a visited mask from g, so it
// fails only when the mask pool is exhausted. Call Release when done.
func NewFloodSearch(g *Graph, policy Policy) (*FloodSearch, error) {
	visited, err := g.GrabMask()
	if err != nil {
		return nil, errors.Wrap(err, "flood search")
	}
	g.ClearMaskInSet(visited)
	return &FloodSearch{
		graph:   g,
		policy:  policy,
		visited: visited,
		stack:   g.stacks.grab(),
		seeds:   g.GrabArray(),
	}, nil
}

// Release returns the visited mask and scratch storage to the graph. The
// search cannot be used afterwards. Calling Release more than once is
// harmless.
func (s *FloodSearch) Release() {
	if s.graph == nil {
		return
	}
	g := s.graph
	g.DropMask(s.visited)
	g.stacks.drop(s.stack)
	g.DropArray(s.seeds)
	s.graph = nil
	s.stack = nil
	s.seeds = nil
}

// VisitedMask returns the mask the search uses to mark classified faces.
func (s *FloodSearch) VisitedMask() Mask {
	return s.visited
}

// IsVisited reports whether the face containing n has been classified.
func (s *FloodSearch) IsVisited(n Node) bool {
	return s.graph.HasMask(n, s.visited)
}

// Stats returns the counters accumulated so far.
func (s *FloodSearch) Stats() Stats {
	return s.stats
}

// PushSeed queues the face containing n as a seed.
func (s *FloodSearch) PushSeed(n Node) {
	s.seeds.Add(n)
}

// Run classifies every face reachable from the queued seeds, then empties the
// seed queue. Seeds whose face was already classified are skipped.
func (s *FloodSearch) Run() {
	g := s.graph
	for i := 0; i < s.seeds.Len(); i++ {
		seed := s.seeds.At(i)
		if g.HasMask(seed, s.visited) {
			continue
		}
		s.stats.Seeds++
		g.SetMaskAroundFace(seed, s.visited)
		depth := s.policy.MarkSeedFace(seed)
		s.pushNeighbors(seed, depth, i)
		s.drain()
	}
	s.seeds.Clear()
	Logger().Debug("halfedge: flood search done",
		"seeds", s.stats.Seeds,
		"faces", s.stats.Faces,
		"pushes", s.stats.Pushes,
		"maxStack", s.stats.MaxStack)
}

func (s *FloodSearch) drain() {
	g := s.graph
	for {
		e, ok := s.stack.pop()
		if !ok {
			return
		}
		if g.HasMask(e.inside, s.visited) {
			s.stats.Discarded++
			continue
		}
		if debugChecks {
			assert(g.GetMask(e.outside, ^Mask(0)) == e.mask,
				"mask of %v changed from %v to %v while queued", e.outside, e.mask, g.GetMask(e.outside, ^Mask(0)))
		}
		g.SetMaskAroundFace(e.inside, s.visited)
		depth := s.policy.StepIntoFace(e.outside, e.depth, e.inside)
		s.pushNeighbors(e.inside, depth, e.id)
	}
}

// pushNeighbors queues a crossing out of face through every node whose mate
// lies on an unvisited face.
func (s *FloodSearch) pushNeighbors(face Node, depth float64, id int) {
	g := s.graph
	s.stats.Faces++
	g.EachAroundFace(face, func(n Node) bool {
		m := g.Mate(n)
		if !g.HasMask(m, s.visited) {
			s.stack.push(searchEntry{
				outside: n,
				inside:  m,
				depth:   depth,
				id:      id,
				mask:    g.GetMask(n, ^Mask(0)),
			})
			s.stats.Pushes++
		}
		return true
	})
	if n := len(s.stack.entries); n > s.stats.MaxStack {
		s.stats.MaxStack = n
	}
}

// RunFromAllNegativeAreaFaces seeds every unclassified face with negative
// signed area and runs the search. Each face is scanned once. It returns the
// number of seeds pushed.
//
// Every connected component has one negative face, the unbounded side of its
// outer boundary, and propagation never crosses from one component into
// another, so each component needs its own seed.
func (s *FloodSearch) RunFromAllNegativeAreaFaces() int {
	g := s.graph
	scanned := g.GrabArray()
	defer g.DropArray(scanned)

	pushed := 0
	g.EachNode(func(n Node) bool {
		if g.HasMask(n, s.visited) {
			return true
		}
		scanned.Add(n)
		if g.MarkFaceAndComputeArea(n, s.visited) < 0 {
			s.PushSeed(n)
			pushed++
		}
		return true
	})
	for _, n := range scanned.Nodes() {
		g.ClearMaskAroundFace(n, s.visited)
	}
	if pushed > 0 {
		s.Run()
	}
	return pushed
}
