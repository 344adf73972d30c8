package alg

import (
	"fmt"
	"log"

	"github.com/twpayne/go-polyline"
)

const customsSurcharge = 150.0

// CostBreakdown itemizes the monetary cost of a segment or a whole route.
// Total always equals the sum of the component fields.
type CostBreakdown struct {
	Linehaul      float64 `json:"linehaul"`
	FuelSurcharge float64 `json:"fuelSurcharge"`
	Accessorials  float64 `json:"accessorials"`
	Detention     float64 `json:"detention"`
	Drayage       float64 `json:"drayage"`
	Tolls         float64 `json:"tolls"`
	Customs       float64 `json:"customs"`
	Insurance     float64 `json:"insurance"`
	Total         float64 `json:"total"`
	Currency      string  `json:"currency"`
}

type RouteSegment struct {
	ID              string        `json:"id"`
	From            Node          `json:"from"`
	To              Node          `json:"to"`
	Edge            Edge          `json:"edge"`
	Mode            TransportMode `json:"mode"`
	Distance        float64       `json:"distance"`
	EstimatedTime   float64       `json:"estimatedTime"`
	Cost            CostBreakdown `json:"cost"`
	CarbonEmissions float64       `json:"carbonEmissions"`
}

type ConfidenceBand struct {
	Level   float64 `json:"level"`
	TimeMin float64 `json:"timeMin"`
	TimeMax float64 `json:"timeMax"`
	CostMin float64 `json:"costMin"`
	CostMax float64 `json:"costMax"`
}

type RouteMetadata struct {
	Algorithm              string  `json:"algorithm"`
	ComputeTimeMS          float64 `json:"computeTimeMs"`
	AlternativesConsidered int     `json:"alternativesConsidered"`
}

// Route is an ephemeral value materialized from a solver path. Segments hold
// snapshots of node and edge data, never references into the store, so a
// route stays usable after the store mutates (notably during re-routing).
type Route struct {
	ID            string          `json:"id"`
	Segments      []RouteSegment  `json:"segments"`
	TotalDistance float64         `json:"totalDistance"`
	TotalTime     float64         `json:"totalTime"`
	TotalCost     CostBreakdown   `json:"totalCost"`
	TotalCarbon   float64         `json:"totalCarbon"`
	ServiceLevel  float64         `json:"serviceLevel"`
	Reliability   float64         `json:"reliability"`
	RiskScore     float64         `json:"riskScore"`
	Geometry      string          `json:"geometry,omitempty"`
	Constraints   *Constraints    `json:"constraints,omitempty"`
	Confidence    *ConfidenceBand `json:"confidence,omitempty"`
	Metadata      *RouteMetadata  `json:"metadata,omitempty"`
}

// segmentCost itemizes one edge traversal. The customs surcharge keys on the
// FROM node of the segment, intentionally.
func segmentCost(e Edge, from Node) CostBreakdown {
	cb := CostBreakdown{
		Linehaul:      e.BaseCost,
		FuelSurcharge: e.FuelCost,
		Tolls:         e.TollCost,
		Insurance:     0.02 * e.BaseCost,
		Currency:      "USD",
	}
	if from.CustomsRequired {
		cb.Customs = customsSurcharge
	}
	cb.Total = cb.Linehaul + cb.FuelSurcharge + cb.Accessorials + cb.Detention +
		cb.Drayage + cb.Tolls + cb.Customs + cb.Insurance
	return cb
}

// BuildRoute materializes a node-id path into a Route. For each adjacent
// pair (u,v) the FIRST edge in u's adjacency list with target v is used;
// pairs with no such edge are skipped, which can happen for bidirectional
// paths whose backward half followed an incoming edge with no forward twin.
func (g *Graph) BuildRoute(routeID string, path []string) *Route {
	route := &Route{
		ID:       routeID,
		Segments: []RouteSegment{},
		TotalCost: CostBreakdown{
			Currency: "USD",
		},
	}

	coords := make([][]float64, 0, len(path))
	for _, id := range path {
		if n, ok := g.GetNode(id); ok {
			coords = append(coords, []float64{n.Coordinates.Lat, n.Coordinates.Lng})
		}
	}
	if len(coords) > 0 {
		route.Geometry = string(polyline.EncodeCoords(coords))
	}

	reliabilities := []float64{}
	for i := 0; i+1 < len(path); i++ {
		from, okFrom := g.GetNode(path[i])
		to, okTo := g.GetNode(path[i+1])
		if !okFrom || !okTo {
			log.Printf("route %s: node missing for pair (%s,%s), skipping", routeID, path[i], path[i+1])
			continue
		}

		edge, ok := g.firstEdgeBetween(path[i], path[i+1])
		if !ok {
			log.Printf("route %s: no edge %s->%s, skipping pair", routeID, path[i], path[i+1])
			continue
		}

		seg := RouteSegment{
			ID:              fmt.Sprintf("%s-seg-%d", routeID, len(route.Segments)),
			From:            from,
			To:              to,
			Edge:            edge,
			Mode:            edge.Mode,
			Distance:        edge.Distance,
			EstimatedTime:   edge.BaseTime,
			Cost:            segmentCost(edge, from),
			CarbonEmissions: edge.CarbonEmissions * edge.Distance,
		}
		route.Segments = append(route.Segments, seg)

		route.TotalDistance += seg.Distance
		route.TotalTime += seg.EstimatedTime
		route.TotalCarbon += seg.CarbonEmissions
		addBreakdown(&route.TotalCost, seg.Cost)
		reliabilities = append(reliabilities, edge.Reliability)
	}

	route.Reliability = ReliabilityProduct(reliabilities)
	route.ServiceLevel = ServiceLevelOf(reliabilities)
	route.RiskScore = RiskScoreOf(route.Reliability)
	return route
}

func (g *Graph) firstEdgeBetween(fromID, toID string) (Edge, bool) {
	for _, neighbor := range g.GetNeighbors(fromID) {
		if neighbor.Edge.Target == toID {
			return neighbor.Edge, true
		}
	}
	return Edge{}, false
}

func addBreakdown(total *CostBreakdown, seg CostBreakdown) {
	total.Linehaul += seg.Linehaul
	total.FuelSurcharge += seg.FuelSurcharge
	total.Accessorials += seg.Accessorials
	total.Detention += seg.Detention
	total.Drayage += seg.Drayage
	total.Tolls += seg.Tolls
	total.Customs += seg.Customs
	total.Insurance += seg.Insurance
	total.Total += seg.Total
}
