package alg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lintang/optiroute/alg"
)

func storeFixture() *alg.Graph {
	g := alg.NewGraph()
	g.AddNode(alg.Node{ID: "a", Name: "A", Type: alg.NodeHub, Coordinates: alg.Coordinates{Lat: 0, Lng: 0}})
	g.AddNode(alg.Node{ID: "b", Name: "B", Type: alg.NodeHub, Coordinates: alg.Coordinates{Lat: 0, Lng: 0.001}})
	g.AddNode(alg.Node{ID: "c", Name: "C", Type: alg.NodePort, Coordinates: alg.Coordinates{Lat: 0.001, Lng: 0}})
	g.AddEdge(alg.Edge{ID: "e-ab", Source: "a", Target: "b", Mode: alg.ModeRoad, Distance: 10, BaseTime: 12, BaseCost: 5, Capacity: 100, Reliability: 0.95, CarbonEmissions: 0.06})
	g.AddEdge(alg.Edge{ID: "e-ac", Source: "a", Target: "c", Mode: alg.ModeSea, Distance: 20, BaseTime: 60, BaseCost: 3, Capacity: 500, Reliability: 0.9, CarbonEmissions: 0.01})
	g.AddEdge(alg.Edge{ID: "e-bc", Source: "b", Target: "c", Mode: alg.ModeRoad, Distance: 15, BaseTime: 20, BaseCost: 4, Capacity: 100, Reliability: 0.97, CarbonEmissions: 0.06})
	return g
}

func TestGraphStore(t *testing.T) {
	t.Run("add node upserts by id and keeps insertion order", func(t *testing.T) {
		g := storeFixture()
		g.AddNode(alg.Node{ID: "a", Name: "A renamed", Type: alg.NodeHub})

		nodes := g.Nodes()
		require.Len(t, nodes, 3)
		assert.Equal(t, "a", nodes[0].ID)
		assert.Equal(t, "A renamed", nodes[0].Name)
	})

	t.Run("parallel edges are kept in adjacency insertion order", func(t *testing.T) {
		g := storeFixture()
		g.AddEdge(alg.Edge{ID: "e-ab-2", Source: "a", Target: "b", Mode: alg.ModeRail, Distance: 11, BaseCost: 2, Reliability: 0.9})

		neighbors := g.GetNeighbors("a")
		require.Len(t, neighbors, 3)
		assert.Equal(t, "e-ab", neighbors[0].Edge.ID)
		assert.Equal(t, "e-ac", neighbors[1].Edge.ID)
		assert.Equal(t, "e-ab-2", neighbors[2].Edge.ID)
	})

	t.Run("neighbors skip edges whose target is absent", func(t *testing.T) {
		g := storeFixture()
		g.AddEdge(alg.Edge{ID: "e-ax", Source: "a", Target: "ghost", Mode: alg.ModeRoad})

		for _, n := range g.GetNeighbors("a") {
			assert.NotEqual(t, "ghost", n.Edge.Target)
		}
	})

	t.Run("remove node drops touching edges eagerly", func(t *testing.T) {
		g := storeFixture()
		require.True(t, g.RemoveNode("c"))

		_, ok := g.GetNode("c")
		assert.False(t, ok)
		_, ok = g.GetEdge("e-ac")
		assert.False(t, ok)
		_, ok = g.GetEdge("e-bc")
		assert.False(t, ok)

		assert.Len(t, g.GetNeighbors("b"), 0)
		assert.Len(t, g.Edges(), 1)
	})

	t.Run("remove missing ids reports false", func(t *testing.T) {
		g := storeFixture()
		assert.False(t, g.RemoveNode("ghost"))
		assert.False(t, g.RemoveEdge("ghost"))
	})

	t.Run("add then remove edge restores store state", func(t *testing.T) {
		g := storeFixture()
		edgesBefore := g.Edges()
		adjacencyBefore := g.GetNeighbors("a")

		g.AddEdge(alg.Edge{ID: "e-tmp", Source: "a", Target: "b", Mode: alg.ModeAir, BaseCost: 9})
		require.True(t, g.RemoveEdge("e-tmp"))

		assert.Equal(t, edgesBefore, g.Edges())
		assert.Equal(t, adjacencyBefore, g.GetNeighbors("a"))
	})

	t.Run("stats count nodes, edges and modes", func(t *testing.T) {
		g := storeFixture()
		stats := g.GetStats()

		assert.Equal(t, 3, stats.NodeCount)
		assert.Equal(t, 3, stats.EdgeCount)
		assert.InDelta(t, 1.0, stats.AvgOutDegree, 1e-9)
		assert.Equal(t, 2, stats.ModeHistogram[alg.ModeRoad])
		assert.Equal(t, 1, stats.ModeHistogram[alg.ModeSea])
	})
}
