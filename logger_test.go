package halfedge

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Errorf("nopHandler.WithAttrs() is not a nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Errorf("nopHandler.WithGroup() is not a nopHandler")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	g := NewGraph()
	defer g.Close()
	buildLoops(t, g, [][]XYZ{squareA}, []Mask{0})
	if _, err := ClassifyParity(g, MaskBoundaryEdge, MaskExteriorEdge); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"flood search done", "seeds=1", "faces=2", "segments built"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}

func TestMaskExhaustedWarns(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	g := NewGraph()
	defer g.Close()
	for i := 0; i < MaskCapacity; i++ {
		m, _ := g.GrabMask()
		defer g.DropMask(m)
	}
	if _, err := g.GrabMask(); err == nil {
		t.Fatal("GrabMask() on exhausted pool succeeded")
	}
	if !strings.Contains(buf.String(), "mask pool exhausted") {
		t.Errorf("no warning logged:\n%s", buf.String())
	}
}
