package alg

// ScenarioConfig maps a named operating scenario onto a fixed RouteConfig.
// The four presets are part of the service contract.
func ScenarioConfig(name string) (RouteConfig, bool) {
	switch name {
	case "lowest_cost":
		return RouteConfig{
			Algorithm:       AlgorithmDijkstra,
			Weights:         Weights{Cost: 1},
			ConsiderTraffic: true,
			ConsiderWeather: true,
		}, true
	case "fastest":
		return RouteConfig{
			Algorithm:       AlgorithmAStar,
			Weights:         Weights{Time: 1},
			ConsiderTraffic: true,
			ConsiderWeather: true,
		}, true
	case "greenest":
		return RouteConfig{
			Algorithm:       AlgorithmDijkstra,
			Weights:         Weights{Carbon: 1},
			ConsiderTraffic: true,
			ConsiderWeather: true,
		}, true
	case "most_reliable":
		return RouteConfig{
			Algorithm:       AlgorithmHybrid,
			Weights:         Weights{Cost: 0.1, Time: 0.1, Risk: 0.5, ServiceLevel: 0.3},
			ConsiderTraffic: true,
			ConsiderWeather: true,
			Stochastic:      true,
			ConfidenceLevel: 0.95,
		}, true
	}
	return RouteConfig{}, false
}

// ScenarioNames lists the supported presets, for error messages.
func ScenarioNames() []string {
	return []string{"lowest_cost", "fastest", "greenest", "most_reliable"}
}
