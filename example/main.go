//go:build example
// +build example

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/go-halfedge"
)

func main() {
	halfedge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))

	squareA := []halfedge.XYZ{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}
	squareB := []halfedge.XYZ{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3}, {X: 1, Y: 2}}

	g := halfedge.NewGraph()
	defer g.Close()

	a, err := g.GrabMask()
	if err != nil {
		panic(err)
	}
	defer g.DropMask(a)
	b, err := g.GrabMask()
	if err != nil {
		panic(err)
	}
	defer g.DropMask(b)
	g.ClearMaskInSet(a | b)

	sb := halfedge.NewSegmentBuilder(g)
	if err := sb.AddLoop(squareA, 0, a); err != nil {
		panic(err)
	}
	if err := sb.AddLoop(squareB, 0, b); err != nil {
		panic(err)
	}
	if err := sb.Build(); err != nil {
		panic(err)
	}
	if err := halfedge.CheckGraph(g); err != nil {
		panic(err)
	}

	regions := []halfedge.UnionRegion{{Exterior: a}, {Exterior: b}}
	st, err := halfedge.ClassifyUnion(g, regions, 2, halfedge.MaskExteriorEdge)
	if err != nil {
		panic(err)
	}
	fmt.Printf("%d faces, %d pushes\n", st.Faces, st.Pushes)

	faces, err := halfedge.InteriorFaces(g, halfedge.MaskExteriorEdge)
	if err != nil {
		panic(err)
	}
	defer g.DropArray(faces)
	for _, n := range faces.Nodes() {
		fmt.Printf("interior face at %v, area %.1f:", g.XYZ(n), g.FaceArea(n))
		g.EachAroundFace(n, func(e halfedge.Node) bool {
			p := g.XYZ(e)
			fmt.Printf(" (%.1f, %.1f)", p.X, p.Y)
			return true
		})
		fmt.Println()
	}

	loc, err := halfedge.NewFaceLocator(g)
	if err != nil {
		panic(err)
	}
	if n, ok := loc.Locate(1.5, 1.5); ok {
		fmt.Printf("(1.5, 1.5) is in the face of %v, exterior %v\n", n, g.HasMask(n, halfedge.MaskExteriorEdge))
	}
}
