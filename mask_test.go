package halfedge

import (
	"testing"

	"github.com/pkg/errors"
)

func TestGrabMaskBalance(t *testing.T) {
	g := NewGraph()
	defer g.Close()

	var grabbed []Mask
	var all Mask
	for i := 0; i < MaskCapacity; i++ {
		m, err := g.GrabMask()
		if err != nil {
			t.Fatalf("GrabMask #%d: %v", i, err)
		}
		if m&FixedMasks != 0 {
			t.Errorf("GrabMask returned fixed bit %v", m)
		}
		if all&m != 0 {
			t.Errorf("GrabMask returned %v twice", m)
		}
		all |= m
		grabbed = append(grabbed, m)
		if got := g.GrabbedMaskCount(); got != i+1 {
			t.Errorf("GrabbedMaskCount() = %d, want %d", got, i+1)
		}
	}

	_, err := g.GrabMask()
	if errors.Cause(err) != ErrMaskExhausted {
		t.Errorf("GrabMask on exhausted pool: err = %v, want %v", err, ErrMaskExhausted)
	}

	for _, m := range grabbed {
		g.DropMask(m)
	}
	if got := g.GrabbedMaskCount(); got != 0 {
		t.Errorf("GrabbedMaskCount() after dropping all = %d, want 0", got)
	}
}

func TestGrabMaskLastDroppedFirst(t *testing.T) {
	g := NewGraph()
	defer g.Close()

	a, _ := g.GrabMask()
	b, _ := g.GrabMask()
	g.DropMask(a)
	c, _ := g.GrabMask()
	if c != a {
		t.Errorf("GrabMask() = %v, want last dropped %v", c, a)
	}
	g.DropMask(b)
	g.DropMask(c)
}

func TestMaskGuard(t *testing.T) {
	g := NewGraph()
	defer g.Close()
	n, m := g.MakeEdge()

	for _, on := range []bool{false, true} {
		guard, err := g.NewMaskGuard(on)
		if err != nil {
			t.Fatal(err)
		}
		if got := guard.IsSetAt(n); got != on {
			t.Errorf("NewMaskGuard(%v): IsSetAt = %v", on, got)
		}
		guard.ClearAroundFace(n)
		if guard.IsSetAt(n) || guard.IsSetAt(m) {
			t.Errorf("ClearAroundFace left the mask set")
		}
		guard.SetAt(m)
		if !guard.IsSetAt(m) || guard.IsSetAt(n) {
			t.Errorf("SetAt(%v) set the wrong nodes", m)
		}
		guard.Release()
		guard.Release()
		if guard.Mask() != 0 {
			t.Errorf("Mask() after Release = %v, want 0", guard.Mask())
		}
		if got := g.GrabbedMaskCount(); got != 0 {
			t.Errorf("GrabbedMaskCount() after Release = %d, want 0", got)
		}
	}
}

func TestWithGrabbedMask(t *testing.T) {
	g := NewGraph()
	defer g.Close()
	g.MakeEdge()
	g.MakeEdge()

	want := errors.New("stop")
	var used Mask
	err := g.WithGrabbedMask(func(m Mask) error {
		used = m
		if c := g.CountMasked(m); c != 0 {
			t.Errorf("CountMasked(%v) = %d, want 0", m, c)
		}
		g.SetMaskInSet(m)
		if c := g.CountUnmasked(m); c != 0 {
			t.Errorf("CountUnmasked(%v) = %d, want 0", m, c)
		}
		return want
	})
	if err != want {
		t.Errorf("WithGrabbedMask() = %v, want %v", err, want)
	}
	if g.GrabbedMaskCount() != 0 {
		t.Errorf("mask %v still grabbed", used)
	}
}

func TestMaskInSet(t *testing.T) {
	g := NewGraph()
	defer g.Close()
	for i := 0; i < 5; i++ {
		g.MakeEdge()
	}
	g.SetMaskInSet(MaskPrimaryEdge)
	if got := g.CountMasked(MaskPrimaryEdge); got != 10 {
		t.Errorf("CountMasked after SetMaskInSet = %d, want 10", got)
	}
	g.ToggleMaskInSet(MaskPrimaryEdge | MaskSplitCopy)
	if got := g.CountMasked(MaskPrimaryEdge); got != 0 {
		t.Errorf("CountMasked(primary) after toggle = %d, want 0", got)
	}
	if got := g.CountMasked(MaskSplitCopy); got != 10 {
		t.Errorf("CountMasked(split) after toggle = %d, want 10", got)
	}
	g.ClearMaskInSet(MaskSplitCopy)
	if got := g.CountUnmasked(MaskSplitCopy); got != 10 {
		t.Errorf("CountUnmasked after ClearMaskInSet = %d, want 10", got)
	}
	if got := g.CountMasked(MaskGraphWide); got != 10 {
		t.Errorf("CountMasked(whole graph) = %d, want 10", got)
	}
}
