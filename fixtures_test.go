package halfedge

import "testing"

// squareA and squareB overlap in [1,2]x[1,2]. Their boundaries cross at (2,1)
// and (1,2), which both loops carry as vertices.
var (
	squareA = []XYZ{{0, 0, 0}, {2, 0, 0}, {2, 1, 0}, {2, 2, 0}, {1, 2, 0}, {0, 2, 0}}
	squareB = []XYZ{{1, 1, 0}, {2, 1, 0}, {3, 1, 0}, {3, 3, 0}, {1, 3, 0}, {1, 2, 0}}
)

func buildLoops(t *testing.T, g *Graph, loops [][]XYZ, right []Mask) {
	t.Helper()
	b := NewSegmentBuilder(g)
	for i, loop := range loops {
		if err := b.AddLoop(loop, MaskBoundaryEdge, MaskBoundaryEdge|right[i]); err != nil {
			t.Fatalf("AddLoop(%d): %v", i, err)
		}
	}
	if err := b.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := CheckGraph(g); err != nil {
		t.Fatalf("CheckGraph: %v", err)
	}
}

// faces returns one node per face of g, in node index order.
func faces(t *testing.T, g *Graph) []Node {
	t.Helper()
	var out []Node
	err := g.WithGrabbedMask(func(seen Mask) error {
		g.EachNode(func(n Node) bool {
			if !g.HasMask(n, seen) {
				g.SetMaskAroundFace(n, seen)
				out = append(out, n)
			}
			return true
		})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return out
}

// interiorAreas returns the areas of the faces without the exterior mask.
func interiorAreas(t *testing.T, g *Graph, exterior Mask) []float64 {
	t.Helper()
	in, err := InteriorFaces(g, exterior)
	if err != nil {
		t.Fatal(err)
	}
	defer g.DropArray(in)
	var areas []float64
	for _, n := range in.Nodes() {
		areas = append(areas, g.FaceArea(n))
	}
	return areas
}

func sum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}

// exteriorSnapshot records, per node index, whether the exterior mask is set.
func exteriorSnapshot(g *Graph, exterior Mask) map[int32]bool {
	m := map[int32]bool{}
	g.EachNode(func(n Node) bool {
		m[n.index] = g.HasMask(n, exterior)
		return true
	})
	return m
}
