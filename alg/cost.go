package alg

import "math"

// Weights scalarizes the competing objectives into one edge cost. Values are
// conventionally in [0,1] but any non-negative finite value is accepted;
// scaling is linear so magnitudes only matter within a single query.
type Weights struct {
	Cost         float64 `json:"cost"`
	Time         float64 `json:"time"`
	Carbon       float64 `json:"carbon"`
	Risk         float64 `json:"risk"`
	ServiceLevel float64 `json:"serviceLevel"`
}

// EdgeCost is the scalarized traversal cost of one edge. ServiceLevel never
// enters edge cost; it is a post-hoc route attribute. Clipped at 0 so the
// solvers never see a negative edge.
func EdgeCost(e Edge, w Weights) float64 {
	cost := w.Cost*e.BaseCost +
		w.Time*e.BaseTime +
		w.Carbon*e.CarbonEmissions*e.Distance +
		w.Risk*(1-e.Reliability)*100
	if cost < 0 {
		return 0
	}
	return cost
}

// HeuristicCost is the A* lower bound: great-circle distance to the goal in
// kilometers. With all cost-bearing weights at zero every edge costs 0, so
// the heuristic must be 0 too or it would stop being admissible.
func HeuristicCost(from Node, goal Node, w Weights) float64 {
	if w.Cost == 0 && w.Time == 0 && w.Carbon == 0 && w.Risk == 0 {
		return 0
	}
	return HaversineDistance(
		NewLocation(from.Coordinates.Lat, from.Coordinates.Lng),
		NewLocation(goal.Coordinates.Lat, goal.Coordinates.Lng),
	)
}

// ReliabilityProduct multiplies per-edge reliabilities, assuming
// independence. Empty input is the empty product, 1.
func ReliabilityProduct(reliabilities []float64) float64 {
	product := 1.0
	for _, r := range reliabilities {
		product *= r
	}
	return product
}

// ServiceLevelOf is the mean per-edge reliability scaled to [0,100]. An
// empty route serves perfectly by convention.
func ServiceLevelOf(reliabilities []float64) float64 {
	if len(reliabilities) == 0 {
		return 100
	}
	sum := 0.0
	for _, r := range reliabilities {
		sum += r
	}
	return sum / float64(len(reliabilities)) * 100
}

// RiskScoreOf maps a route reliability product onto [0,100].
func RiskScoreOf(reliabilityProduct float64) float64 {
	return math.Min(100, (1-reliabilityProduct)*100)
}
