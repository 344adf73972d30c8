package alg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lintang/optiroute/alg"
)

func routeFixture() *alg.Graph {
	g := alg.NewGraph()
	g.AddNode(alg.Node{ID: "origin", Coordinates: alg.Coordinates{Lat: 0, Lng: 0}})
	g.AddNode(alg.Node{ID: "border", Coordinates: alg.Coordinates{Lat: 0, Lng: 0.001}, CustomsRequired: true})
	g.AddNode(alg.Node{ID: "dest", Coordinates: alg.Coordinates{Lat: 0, Lng: 0.002}})

	g.AddEdge(alg.Edge{
		ID: "e-1", Source: "origin", Target: "border", Mode: alg.ModeRoad,
		Distance: 100, BaseTime: 80, BaseCost: 200, Capacity: 100,
		Reliability: 0.9, CarbonEmissions: 0.05, FuelCost: 40, TollCost: 10,
	})
	g.AddEdge(alg.Edge{
		ID: "e-2", Source: "border", Target: "dest", Mode: alg.ModeRail,
		Distance: 300, BaseTime: 240, BaseCost: 150, Capacity: 500,
		Reliability: 0.8, CarbonEmissions: 0.02, FuelCost: 25,
	})
	return g
}

func TestBuildRoute(t *testing.T) {
	g := routeFixture()

	t.Run("materializes segments with cost breakdowns and totals", func(t *testing.T) {
		route := g.BuildRoute("r1", []string{"origin", "border", "dest"})
		require.Len(t, route.Segments, 2)

		first := route.Segments[0]
		assert.Equal(t, "r1-seg-0", first.ID)
		assert.Equal(t, "origin", first.From.ID)
		assert.Equal(t, "border", first.To.ID)
		assert.Equal(t, alg.ModeRoad, first.Mode)
		assert.InDelta(t, 200.0, first.Cost.Linehaul, 1e-9)
		assert.InDelta(t, 40.0, first.Cost.FuelSurcharge, 1e-9)
		assert.InDelta(t, 10.0, first.Cost.Tolls, 1e-9)
		assert.InDelta(t, 4.0, first.Cost.Insurance, 1e-9)
		// origin node has no customs flag
		assert.InDelta(t, 0.0, first.Cost.Customs, 1e-9)
		assert.InDelta(t, 254.0, first.Cost.Total, 1e-9)
		assert.InDelta(t, 5.0, first.CarbonEmissions, 1e-9)

		// second segment departs a customs node
		second := route.Segments[1]
		assert.InDelta(t, 150.0, second.Cost.Customs, 1e-9)
		assert.InDelta(t, 150+25+150+3, second.Cost.Total, 1e-9)

		assert.InDelta(t, 400, route.TotalDistance, 1e-9)
		assert.InDelta(t, 320, route.TotalTime, 1e-9)
		assert.InDelta(t, 5+6, route.TotalCarbon, 1e-9)
		assert.InDelta(t, first.Cost.Total+second.Cost.Total, route.TotalCost.Total, 1e-9)
		assert.InDelta(t, 0.9*0.8, route.Reliability, 1e-12)
		assert.InDelta(t, 85, route.ServiceLevel, 1e-9)
		assert.InDelta(t, (1-0.72)*100, route.RiskScore, 1e-9)
		assert.NotEmpty(t, route.Geometry)
		assert.Equal(t, "USD", route.TotalCost.Currency)
	})

	t.Run("segment chain is contiguous", func(t *testing.T) {
		route := g.BuildRoute("r2", []string{"origin", "border", "dest"})
		for i := 0; i+1 < len(route.Segments); i++ {
			assert.Equal(t, route.Segments[i].To.ID, route.Segments[i+1].From.ID)
		}
	})

	t.Run("totals equal componentwise segment sums", func(t *testing.T) {
		route := g.BuildRoute("r3", []string{"origin", "border", "dest"})

		var dist, time, carbon, cost float64
		for _, seg := range route.Segments {
			dist += seg.Distance
			time += seg.EstimatedTime
			carbon += seg.CarbonEmissions
			cost += seg.Cost.Total
		}
		assert.InDelta(t, dist, route.TotalDistance, 1e-6)
		assert.InDelta(t, time, route.TotalTime, 1e-6)
		assert.InDelta(t, carbon, route.TotalCarbon, 1e-6)
		assert.InDelta(t, cost, route.TotalCost.Total, 1e-6)
	})

	t.Run("pairs without a forward edge are skipped", func(t *testing.T) {
		route := g.BuildRoute("r4", []string{"dest", "border", "dest"})
		// no dest->border edge exists, only border->dest survives
		require.Len(t, route.Segments, 1)
		assert.Equal(t, "e-2", route.Segments[0].Edge.ID)
	})

	t.Run("single node path yields the empty route conventions", func(t *testing.T) {
		route := g.BuildRoute("r5", []string{"origin"})
		assert.Len(t, route.Segments, 0)
		assert.Equal(t, 1.0, route.Reliability)
		assert.Equal(t, 100.0, route.ServiceLevel)
		assert.Equal(t, 0.0, route.RiskScore)
		assert.Equal(t, 0.0, route.TotalCost.Total)
	})

	t.Run("parallel edges resolve to the first in adjacency order", func(t *testing.T) {
		g := routeFixture()
		g.AddEdge(alg.Edge{ID: "e-1-alt", Source: "origin", Target: "border", Mode: alg.ModeAir, BaseCost: 1})

		route := g.BuildRoute("r6", []string{"origin", "border"})
		require.Len(t, route.Segments, 1)
		assert.Equal(t, "e-1", route.Segments[0].Edge.ID)
	})
}
