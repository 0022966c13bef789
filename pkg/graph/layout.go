// Package graph implements a Fruchterman-Reingold force-directed layout for
// relationship graphs. Nodes repel each other, edges pull their endpoints
// together scaled by relationship intensity, and a cooling temperature limits
// movement per iteration until the layout settles.
package graph

import (
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

const (
	attractionScale = 1.0
	repulsionScale  = 1.0
	coolingFactor   = 0.99
	// minDist avoids division by zero when two nodes land on each other.
	minDist = 0.01

	DefaultIterations  = 100
	DefaultTemperature = 5.0
)

// Node is an input node. Fixed nodes keep their given position and never
// move during the simulation (the user pinned them).
type Node struct {
	ID    int
	X     float64
	Y     float64
	Fixed bool
}

// Edge connects two nodes. Intensity is a 1-100 relationship score scaling
// the attractive force between the endpoints.
type Edge struct {
	NodeA     int
	NodeB     int
	Intensity float64
}

// Position is a node's final placement after layout.
type Position struct {
	ID int
	X  float64
	Y  float64
}

type point struct {
	x float64
	y float64
}

// Engine runs the layout simulation for one graph. Construct with NewEngine,
// then call Compute; engines are single-use state machines and not safe for
// concurrent use.
type Engine struct {
	nodes []Node
	edges []Edge

	width  float64
	height float64
	k      float64

	positions     map[int]*Position
	displacements map[int]*point
	fixed         map[int]bool

	temperature float64
	rng         *rand.Rand
}

// NewEngine prepares a layout for the given graph inside a width x height
// area centered on the origin. A non-zero seed makes the initial random
// spread, and therefore the whole layout, reproducible.
func NewEngine(nodes []Node, edges []Edge, width, height float64, seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		nodes:         nodes,
		edges:         edges,
		width:         width,
		height:        height,
		positions:     make(map[int]*Position, len(nodes)),
		displacements: make(map[int]*point, len(nodes)),
		fixed:         make(map[int]bool, len(nodes)),
		rng:           rand.New(rand.NewSource(seed)),
	}

	// Optimal pairwise distance k = sqrt(area / n).
	if len(nodes) > 0 {
		e.k = attractionScale * math.Sqrt(width*height/float64(len(nodes)))
	} else {
		e.k = 1.0
	}

	e.initializePositions()
	return e
}

// initializePositions scatters free nodes uniformly over the area and pins
// fixed nodes at their given coordinates.
func (e *Engine) initializePositions() {
	for _, n := range e.nodes {
		pos := &Position{ID: n.ID}
		if n.Fixed {
			pos.X = n.X
			pos.Y = n.Y
		} else {
			pos.X = (e.rng.Float64() - 0.5) * e.width
			pos.Y = (e.rng.Float64() - 0.5) * e.height
		}
		e.positions[n.ID] = pos
		e.fixed[n.ID] = n.Fixed
	}
}

// forceAttr is the attractive force f_a(d) = d^2 / k.
func (e *Engine) forceAttr(dist float64) float64 {
	if dist < minDist {
		return 0.0
	}
	return dist * dist / e.k
}

// forceRep is the repulsive force f_r(d) = k^2 / d, saturated when nodes
// overlap.
func (e *Engine) forceRep(dist float64) float64 {
	if dist < minDist {
		return 1000.0
	}
	return e.k * e.k / dist
}

func (e *Engine) applyRepulsiveForces() {
	for _, n := range e.nodes {
		e.displacements[n.ID] = &point{}
	}

	for i := 0; i < len(e.nodes); i++ {
		u := e.nodes[i]
		for j := i + 1; j < len(e.nodes); j++ {
			v := e.nodes[j]
			uPos := e.positions[u.ID]
			vPos := e.positions[v.ID]

			deltaX := uPos.X - vPos.X
			deltaY := uPos.Y - vPos.Y
			dist := math.Hypot(deltaX, deltaY)
			if dist < minDist {
				dist = minDist
			}

			force := e.forceRep(dist) * repulsionScale
			dx := deltaX / dist * force
			dy := deltaY / dist * force

			if !u.Fixed {
				e.displacements[u.ID].x += dx
				e.displacements[u.ID].y += dy
			}
			if !v.Fixed {
				e.displacements[v.ID].x -= dx
				e.displacements[v.ID].y -= dy
			}
		}
	}
}

func (e *Engine) applyAttractiveForces() {
	for _, edge := range e.edges {
		uPos, okU := e.positions[edge.NodeA]
		vPos, okV := e.positions[edge.NodeB]
		if !okU || !okV {
			log.Warnf("Layout edge references unknown node: %d-%d", edge.NodeA, edge.NodeB)
			continue
		}

		deltaX := uPos.X - vPos.X
		deltaY := uPos.Y - vPos.Y
		dist := math.Hypot(deltaX, deltaY)
		if dist < minDist {
			dist = minDist
		}

		// Intensity is divided down so repulsion stays dominant.
		force := e.forceAttr(dist) * (edge.Intensity / 10.0) * attractionScale
		dx := deltaX / dist * force
		dy := deltaY / dist * force

		if !e.fixed[edge.NodeA] {
			e.displacements[edge.NodeA].x -= dx
			e.displacements[edge.NodeA].y -= dy
		}
		if !e.fixed[edge.NodeB] {
			e.displacements[edge.NodeB].x += dx
			e.displacements[edge.NodeB].y += dy
		}
	}
}

// updatePositions moves each free node along its accumulated displacement,
// capped by the current temperature, and clamps it inside the area.
func (e *Engine) updatePositions() {
	for _, n := range e.nodes {
		if n.Fixed {
			continue
		}

		d := e.displacements[n.ID]
		dist := math.Hypot(d.x, d.y)
		if dist <= 0 {
			continue
		}

		step := math.Min(dist, e.temperature)
		pos := e.positions[n.ID]
		pos.X += d.x / dist * step
		pos.Y += d.y / dist * step

		pos.X = clamp(pos.X, -e.width/2, e.width/2)
		pos.Y = clamp(pos.Y, -e.height/2, e.height/2)
	}
}

func (e *Engine) coolDown() {
	e.temperature *= coolingFactor
}

// Compute runs the simulation and returns final node positions in node
// input order.
func (e *Engine) Compute(maxIterations int, initialTemperature float64) []Position {
	if len(e.nodes) == 0 {
		return nil
	}
	if maxIterations <= 0 {
		maxIterations = DefaultIterations
	}
	if initialTemperature <= 0 {
		initialTemperature = DefaultTemperature
	}

	e.temperature = initialTemperature
	for iter := 0; iter < maxIterations; iter++ {
		e.applyRepulsiveForces()
		e.applyAttractiveForces()
		e.updatePositions()
		e.coolDown()
	}

	out := make([]Position, 0, len(e.nodes))
	for _, n := range e.nodes {
		out = append(out, *e.positions[n.ID])
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
