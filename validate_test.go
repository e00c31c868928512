package halfedge

import (
	"testing"

	"github.com/pkg/errors"
)

func TestCheckGraph(t *testing.T) {
	cases := []struct {
		name    string
		corrupt func(g *Graph, a, b, c, d Node)
	}{
		{"self mate", func(g *Graph, a, b, c, d Node) {
			g.nodes.get(a).mate = a.index
		}},
		{"one-way mate", func(g *Graph, a, b, c, d Node) {
			g.nodes.get(a).mate = c.index
		}},
		{"open vertex ring", func(g *Graph, a, b, c, d Node) {
			g.nodes.get(a).vsucc = c.index
		}},
		{"released successor", func(g *Graph, a, b, c, d Node) {
			g.nodes.get(a).vsucc = d.index
			g.nodes.record(d.index).free = true
			g.nodes.live--
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := NewGraph()
			a, b := g.MakeEdge()
			x, y := g.MakeEdge()
			if err := CheckGraph(g); err != nil {
				t.Fatalf("CheckGraph before corruption: %v", err)
			}
			c.corrupt(g, a, b, x, y)
			err := CheckGraph(g)
			if errors.Cause(err) != ErrBadTopology {
				t.Errorf("CheckGraph() = %v, want %v", err, ErrBadTopology)
			}
		})
	}
}
