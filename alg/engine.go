package alg

import (
	"log"
	"math"
	"time"

	"github.com/google/uuid"
)

type Algorithm string

const (
	AlgorithmAStar         Algorithm = "astar"
	AlgorithmDijkstra      Algorithm = "dijkstra"
	AlgorithmBidirectional Algorithm = "bidirectional"
	AlgorithmHybrid        Algorithm = "hybrid"
)

type RouteConfig struct {
	Algorithm       Algorithm `json:"algorithm"`
	Weights         Weights   `json:"weights"`
	ConsiderTraffic bool      `json:"considerTraffic"`
	ConsiderWeather bool      `json:"considerWeather"`
	Stochastic      bool      `json:"stochastic"`
	ConfidenceLevel float64   `json:"confidenceLevel,omitempty"`
}

// Engine orchestrates solver dispatch, constraint validation, the relaxed
// fallback, Pareto enumeration and disruption re-routing over one store.
type Engine struct {
	graph *Graph
}

func NewEngine(g *Graph) *Engine {
	return &Engine{graph: g}
}

func (e *Engine) Graph() *Graph {
	return e.graph
}

// solvePath dispatches on the configured algorithm. Unknown algorithms fall
// back to astar. Hybrid runs A* first and retries with Dijkstra on a miss.
func (e *Engine) solvePath(startID, goalID string, config RouteConfig) ([]string, bool) {
	switch config.Algorithm {
	case AlgorithmDijkstra:
		return e.graph.Dijkstra(startID, goalID, config.Weights)
	case AlgorithmBidirectional:
		return e.graph.BidirectionalSearch(startID, goalID)
	case AlgorithmHybrid:
		if path, found := e.graph.AStar(startID, goalID, config.Weights); found {
			return path, true
		}
		return e.graph.Dijkstra(startID, goalID, config.Weights)
	default:
		return e.graph.AStar(startID, goalID, config.Weights)
	}
}

// FindOptimalRoute returns the best route from startID to goalID under the
// given weights and constraints, or false when no (even relaxed) route
// exists. A route that fails validation triggers exactly one fallback with
// relaxed weights via Dijkstra; the fallback result is returned without
// re-validation, best effort.
func (e *Engine) FindOptimalRoute(startID, goalID string, constraints *Constraints, config RouteConfig) (*Route, bool) {
	began := time.Now()

	path, found := e.solvePath(startID, goalID, config)
	if !found {
		return nil, false
	}

	route := e.graph.BuildRoute(newRouteID(), path)
	route.Constraints = constraints

	if valid, reason := ValidateRoute(route, constraints); !valid {
		log.Printf("route %s invalid (%s), retrying with relaxed weights", route.ID, reason)
		return e.relaxedFallback(startID, goalID, constraints, config, began)
	}

	route.Metadata = &RouteMetadata{
		Algorithm:              string(algorithmOrDefault(config.Algorithm)),
		ComputeTimeMS:          float64(time.Since(began).Microseconds()) / 1000.0,
		AlternativesConsidered: 1,
	}
	if config.Stochastic {
		route.Confidence = confidenceBand(route, config.ConfidenceLevel)
	}
	return route, true
}

func (e *Engine) relaxedFallback(startID, goalID string, constraints *Constraints, config RouteConfig, began time.Time) (*Route, bool) {
	relaxed := Weights{
		Cost:         config.Weights.Cost * 0.8,
		Time:         config.Weights.Time * 1.2,
		Carbon:       config.Weights.Carbon * 0.9,
		Risk:         config.Weights.Risk * 1.1,
		ServiceLevel: config.Weights.ServiceLevel,
	}

	path, found := e.graph.Dijkstra(startID, goalID, relaxed)
	if !found {
		return nil, false
	}

	route := e.graph.BuildRoute(newRouteID(), path)
	route.Constraints = constraints
	route.Metadata = &RouteMetadata{
		Algorithm:              string(AlgorithmDijkstra) + " (relaxed)",
		ComputeTimeMS:          float64(time.Since(began).Microseconds()) / 1000.0,
		AlternativesConsidered: 2,
	}
	if config.Stochastic {
		route.Confidence = confidenceBand(route, config.ConfidenceLevel)
	}
	return route, true
}

func algorithmOrDefault(a Algorithm) Algorithm {
	switch a {
	case AlgorithmAStar, AlgorithmDijkstra, AlgorithmBidirectional, AlgorithmHybrid:
		return a
	default:
		return AlgorithmAStar
	}
}

// confidenceBand puts a symmetric normal-approximation band around the route
// totals, variance proportional to unreliability.
func confidenceBand(r *Route, level float64) *ConfidenceBand {
	z := 1.96
	switch level {
	case 0.90:
		z = 1.645
	case 0.95:
		z = 1.96
	case 0.99:
		z = 2.576
	}

	varTime := r.TotalTime * (1 - r.Reliability) * 0.3
	varCost := r.TotalCost.Total * (1 - r.Reliability) * 0.2

	return &ConfidenceBand{
		Level:   level,
		TimeMin: math.Max(0, r.TotalTime-z*math.Sqrt(varTime)),
		TimeMax: r.TotalTime + z*math.Sqrt(varTime),
		CostMin: math.Max(0, r.TotalCost.Total-z*math.Sqrt(varCost)),
		CostMax: r.TotalCost.Total + z*math.Sqrt(varCost),
	}
}

func newRouteID() string {
	return "route-" + uuid.NewString()
}
