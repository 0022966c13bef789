package graph

import (
	"math"
	"testing"
)

func TestComputeEmptyGraph(t *testing.T) {
	e := NewEngine(nil, nil, 800, 600, 1)
	if got := e.Compute(50, 5.0); got != nil {
		t.Errorf("Empty graph returned %v", got)
	}
}

func TestFixedNodesDoNotMove(t *testing.T) {
	nodes := []Node{
		{ID: 1, X: 100, Y: -50, Fixed: true},
		{ID: 2, Fixed: false},
		{ID: 3, Fixed: false},
	}
	edges := []Edge{
		{NodeA: 1, NodeB: 2, Intensity: 50},
		{NodeA: 2, NodeB: 3, Intensity: 80},
	}

	e := NewEngine(nodes, edges, 800, 600, 42)
	positions := e.Compute(100, 5.0)

	if len(positions) != 3 {
		t.Fatalf("Expected 3 positions, got %d", len(positions))
	}
	for _, p := range positions {
		if p.ID == 1 && (p.X != 100 || p.Y != -50) {
			t.Errorf("Fixed node moved to (%f, %f)", p.X, p.Y)
		}
	}
}

func TestPositionsStayInBounds(t *testing.T) {
	nodes := make([]Node, 0, 20)
	edges := make([]Edge, 0, 19)
	for i := 1; i <= 20; i++ {
		nodes = append(nodes, Node{ID: i})
		if i > 1 {
			edges = append(edges, Edge{NodeA: i - 1, NodeB: i, Intensity: 100})
		}
	}

	width, height := 400.0, 300.0
	e := NewEngine(nodes, edges, width, height, 7)
	positions := e.Compute(200, 10.0)

	for _, p := range positions {
		if p.X < -width/2 || p.X > width/2 || p.Y < -height/2 || p.Y > height/2 {
			t.Errorf("Node %d escaped the area: (%f, %f)", p.ID, p.X, p.Y)
		}
	}
}

func TestSeededLayoutIsReproducible(t *testing.T) {
	nodes := []Node{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}
	edges := []Edge{
		{NodeA: 1, NodeB: 2, Intensity: 60},
		{NodeA: 3, NodeB: 4, Intensity: 30},
	}

	first := NewEngine(nodes, edges, 800, 600, 99).Compute(100, 5.0)
	second := NewEngine(nodes, edges, 800, 600, 99).Compute(100, 5.0)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Seeded runs diverged at node %d: %v vs %v", first[i].ID, first[i], second[i])
		}
	}
}

func TestRepulsionSeparatesNodes(t *testing.T) {
	// Two unconnected nodes starting anywhere should end up further apart
	// than the overlap threshold.
	nodes := []Node{{ID: 1}, {ID: 2}}
	e := NewEngine(nodes, nil, 800, 600, 3)
	positions := e.Compute(100, 5.0)

	dist := math.Hypot(positions[0].X-positions[1].X, positions[0].Y-positions[1].Y)
	if dist < 1.0 {
		t.Errorf("Unconnected nodes ended up %f apart", dist)
	}
}

func TestEdgeWithUnknownNodeIsIgnored(t *testing.T) {
	nodes := []Node{{ID: 1}, {ID: 2}}
	edges := []Edge{{NodeA: 1, NodeB: 42, Intensity: 50}}

	e := NewEngine(nodes, edges, 800, 600, 5)
	positions := e.Compute(50, 5.0)
	if len(positions) != 2 {
		t.Errorf("Expected 2 positions, got %d", len(positions))
	}
}
