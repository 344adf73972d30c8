package alg

// RerouteAroundDisruptions routes from currentPosition to the destination of
// currentRoute while the disrupted edges are temporarily removed from the
// store. The removed edges are reinserted before returning, found or not;
// their adjacency position after restore may differ from before.
//
// Caller must hold the single-writer discipline: no concurrent store access
// while this runs.
func (e *Engine) RerouteAroundDisruptions(currentRoute *Route, currentPosition string, disruptedEdges []string) (*Route, bool) {
	if currentRoute == nil || len(currentRoute.Segments) == 0 {
		return nil, false
	}
	destination := currentRoute.Segments[len(currentRoute.Segments)-1].To.ID

	snapshots := []Edge{}
	for _, edgeID := range disruptedEdges {
		if edge, ok := e.graph.GetEdge(edgeID); ok {
			snapshots = append(snapshots, edge)
		}
	}

	defer func() {
		for _, edge := range snapshots {
			e.graph.AddEdge(edge)
		}
	}()

	for _, edge := range snapshots {
		e.graph.RemoveEdge(edge.ID)
	}

	return e.FindOptimalRoute(currentPosition, destination, currentRoute.Constraints, RouteConfig{
		Algorithm:       AlgorithmHybrid,
		Weights:         Weights{Cost: 0.4, Time: 0.6},
		ConsiderTraffic: true,
		ConsiderWeather: true,
	})
}
