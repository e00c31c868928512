package halfedge

import (
	"testing"

	"github.com/pkg/errors"
)

func TestSegmentBuilderErrors(t *testing.T) {
	g := NewGraph()
	defer g.Close()
	b := NewSegmentBuilder(g)

	p := XYZ{X: 1, Y: 1}
	if _, err := b.AddSegment(p, XYZ{X: 1, Y: 1, Z: 5}, 0, 0); errors.Cause(err) != ErrDegenerateSegment {
		t.Errorf("AddSegment(p, p) = %v, want %v", err, ErrDegenerateSegment)
	}
	cases := [][]XYZ{
		nil,
		{{0, 0, 0}, {1, 0, 0}},
		{{0, 0, 0}, {1, 0, 0}, {0, 0, 0}},
	}
	for _, pts := range cases {
		if err := b.AddLoop(pts, 0, 0); errors.Cause(err) != ErrShortLoop {
			t.Errorf("AddLoop(%v) = %v, want %v", pts, err, ErrShortLoop)
		}
	}
	if err := b.AddLoop([]XYZ{{0, 0, 0}, {1, 0, 0}, {1, 0, 0}}, 0, 0); errors.Cause(err) != ErrDegenerateSegment {
		t.Errorf("AddLoop with a repeated point = %v, want %v", err, ErrDegenerateSegment)
	}
}

func TestSegmentBuilderClosedLoop(t *testing.T) {
	g := NewGraph()
	defer g.Close()
	b := NewSegmentBuilder(g)

	square := []XYZ{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0}, {0, 0, 0}}
	if err := b.AddLoop(square, MaskBoundaryEdge, 0); err != nil {
		t.Fatal(err)
	}
	if err := b.Build(); err != nil {
		t.Fatal(err)
	}
	if b.SegmentCount() != 4 {
		t.Errorf("SegmentCount() = %d, want 4", b.SegmentCount())
	}
	if err := CheckGraph(g); err != nil {
		t.Fatal(err)
	}
	fs := faces(t, g)
	if len(fs) != 2 {
		t.Fatalf("%d faces, want 2", len(fs))
	}
	for _, f := range fs {
		inner := g.HasMask(f, MaskBoundaryEdge)
		area := g.FaceArea(f)
		if inner && area != 1 || !inner && area != -1 {
			t.Errorf("face of %v: boundary %v, area %v", f, inner, area)
		}
		if inner != (g.CountMaskAroundFace(f, MaskNewLoopInterior) == 4) {
			t.Errorf("face of %v: NewLoopInterior role on the wrong side", f)
		}
	}
}

func TestSegmentBuilderVertexOrder(t *testing.T) {
	g := NewGraph()
	defer g.Close()
	b := NewSegmentBuilder(g)

	// A star of four spokes around the origin, added in scrambled order.
	o := XYZ{}
	ends := []XYZ{{0, 1, 0}, {1, 0, 0}, {-1, 0, 0}, {0, -1, 0}}
	var spokes []Node
	for _, e := range ends {
		n, err := b.AddSegment(o, e, 0, 0)
		if err != nil {
			t.Fatal(err)
		}
		spokes = append(spokes, n)
	}
	if err := b.Build(); err != nil {
		t.Fatal(err)
	}
	// Clockwise from north: north, east, south, west.
	want := []Node{spokes[0], spokes[1], spokes[3], spokes[2]}
	for i, n := range want {
		if got := g.VSucc(n); got != want[(i+1)%4] {
			t.Errorf("VSucc(%v) = %v, want %v", n, got, want[(i+1)%4])
		}
	}
	if g.ID(spokes[2]) != 2 || g.ID(g.Mate(spokes[2])) != 2 {
		t.Errorf("segment ids not set")
	}
}
