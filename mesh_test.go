package halfedge

import (
	"math"
	"testing"
)

func triangle(t *testing.T, g *Graph) Node {
	t.Helper()
	b := NewSegmentBuilder(g)
	if err := b.AddLoop([]XYZ{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := b.Build(); err != nil {
		t.Fatal(err)
	}
	var first Node
	g.EachNode(func(n Node) bool {
		first = n
		return false
	})
	return first
}

func TestFaceNavigation(t *testing.T) {
	g := NewGraph()
	defer g.Close()
	n := triangle(t, g)

	if got := g.FaceSize(n); got != 3 {
		t.Errorf("FaceSize = %d, want 3", got)
	}
	if got := g.FaceArea(n); got != 0.5 {
		t.Errorf("FaceArea = %v, want 0.5", got)
	}
	m := g.Mate(n)
	if got := g.FaceArea(m); got != -0.5 {
		t.Errorf("FaceArea(mate) = %v, want -0.5", got)
	}
	if g.FPred(g.FSucc(n)) != n {
		t.Errorf("FPred(FSucc(n)) != n")
	}
	if g.VPred(g.VSucc(n)) != n {
		t.Errorf("VPred(VSucc(n)) != n")
	}
	if got := g.VertexDegree(n); got != 2 {
		t.Errorf("VertexDegree = %d, want 2", got)
	}
	if got := g.CountMaskAroundFace(n, MaskNewLoopInterior); got != 3 {
		t.Errorf("CountMaskAroundFace(interior) = %d, want 3", got)
	}
	if got := g.CountMaskAroundFace(m, MaskNewLoopInterior); got != 0 {
		t.Errorf("CountMaskAroundFace(mate, interior) = %d, want 0", got)
	}
	r := g.FaceRange(n)
	if r != (Range{0, 0, 1, 1}) {
		t.Errorf("FaceRange = %v", r)
	}
}

func TestSplitAndJoinEdge(t *testing.T) {
	g := NewGraph(WithUserDataSize(2))
	defer g.Close()
	n := triangle(t, g)
	m := g.Mate(n)
	g.SetMask(n, MaskBoundaryEdge)
	g.UserData(n)[1] = 9

	p0 := g.XYZ(n)
	p1 := g.XYZ(m)
	mid := XYZ{X: (p0.X + p1.X) / 2, Y: (p0.Y + p1.Y) / 2}
	x, y := g.SplitEdge(n, mid)

	if err := CheckGraph(g); err != nil {
		t.Fatal(err)
	}
	if g.LiveCount() != 8 {
		t.Errorf("LiveCount = %d, want 8", g.LiveCount())
	}
	if g.FSucc(n) != x {
		t.Errorf("FSucc(n) = %v, want %v", g.FSucc(n), x)
	}
	if g.FSucc(m) != y {
		t.Errorf("FSucc(mate) = %v, want %v", g.FSucc(m), y)
	}
	if g.FaceSize(n) != 4 || g.FaceSize(m) != 4 {
		t.Errorf("face sizes %d, %d, want 4, 4", g.FaceSize(n), g.FaceSize(m))
	}
	if got := g.FaceArea(n); math.Abs(got-0.5) > 1e-15 {
		t.Errorf("FaceArea after split = %v, want 0.5", got)
	}
	if !g.HasMask(x, MaskBoundaryEdge) {
		t.Errorf("split copy lost the boundary mask")
	}
	if g.HasMask(y, MaskBoundaryEdge) {
		t.Errorf("mate side picked up the boundary mask")
	}
	if g.UserData(x)[1] != 9 {
		t.Errorf("split copy lost user data")
	}
	if g.ID(x) != g.ID(n) || g.ID(y) != g.ID(m) {
		t.Errorf("ids not copied")
	}
	if g.XYZ(x) != mid || g.XYZ(y) != mid {
		t.Errorf("new vertex at %v, %v, want %v", g.XYZ(x), g.XYZ(y), mid)
	}

	if !g.JoinEdge(x) {
		t.Fatal("JoinEdge = false")
	}
	if err := CheckGraph(g); err != nil {
		t.Fatal(err)
	}
	if g.Mate(n) != m {
		t.Errorf("Mate(n) after join = %v, want %v", g.Mate(n), m)
	}
	if g.FaceSize(n) != 3 || g.LiveCount() != 6 {
		t.Errorf("after join: FaceSize = %d, LiveCount = %d", g.FaceSize(n), g.LiveCount())
	}
	lone, _ := g.MakeEdge()
	if g.JoinEdge(lone) {
		t.Errorf("JoinEdge on a vertex of degree one = true")
	}
}

func TestDeleteEdge(t *testing.T) {
	g := NewGraph()
	defer g.Close()
	n := triangle(t, g)

	g.DeleteEdge(n)
	if err := CheckGraph(g); err != nil {
		t.Fatal(err)
	}
	if g.LiveCount() != 4 {
		t.Errorf("LiveCount = %d, want 4", g.LiveCount())
	}
	fs := faces(t, g)
	if len(fs) != 1 {
		t.Fatalf("%d faces, want 1", len(fs))
	}
	if got := g.FaceSize(fs[0]); got != 4 {
		t.Errorf("FaceSize = %d, want 4", got)
	}
	if got := g.FaceArea(fs[0]); got != 0 {
		t.Errorf("FaceArea of a path = %v, want 0", got)
	}
}

func TestVertexTwist(t *testing.T) {
	g := NewGraph()
	defer g.Close()
	a, _ := g.MakeEdge()
	c, _ := g.MakeEdge()
	g.SetMask(a, MaskVertexCopy)

	g.VertexTwist(a, c)
	if err := CheckGraph(g); err != nil {
		t.Fatal(err)
	}
	if g.VertexDegree(a) != 2 || g.VSucc(a) != c {
		t.Fatalf("rings not joined")
	}
	if !g.HasMask(c, MaskVertexCopy) {
		t.Errorf("VertexTwist did not spread the vertex mask")
	}

	g.VertexTwist(a, c)
	if g.VertexDegree(a) != 1 || g.VertexDegree(c) != 1 {
		t.Errorf("rings not split: degrees %d, %d", g.VertexDegree(a), g.VertexDegree(c))
	}
	if err := CheckGraph(g); err != nil {
		t.Fatal(err)
	}
}

func TestSetXYZAroundVertex(t *testing.T) {
	g := NewGraph()
	defer g.Close()
	a, _ := g.MakeEdge()
	c, _ := g.MakeEdge()
	g.VertexTwist(a, c)

	p := XYZ{X: 1, Y: 2, Z: 3}
	g.SetXYZAroundVertex(a, p)
	if g.XYZ(c) != p {
		t.Errorf("XYZ(c) = %v, want %v", g.XYZ(c), p)
	}
	r, ok := g.Range()
	if !ok {
		t.Fatal("Range() reported an empty graph")
	}
	if r != (Range{0, 0, 1, 2}) {
		t.Errorf("Range() = %v", r)
	}
	if got := g.MaxAbsXY(); got != 2 {
		t.Errorf("MaxAbsXY() = %v, want 2", got)
	}
}

func TestClosedGraphPanics(t *testing.T) {
	g := NewGraph()
	g.Close()
	g.Close()
	defer func() {
		if recover() == nil {
			t.Error("MakeEdge on closed graph did not panic")
		}
	}()
	g.MakeEdge()
}
