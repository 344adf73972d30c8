package service

import (
	"context"

	"lintang/optiroute/alg"
	"lintang/optiroute/domain"
)

// RouteEngine is the slice of the optimization engine the service consumes.
type RouteEngine interface {
	FindOptimalRoute(startID, goalID string, constraints *alg.Constraints, config alg.RouteConfig) (*alg.Route, bool)
	ComputeParetoFrontier(startID, goalID string, constraints *alg.Constraints, objectives []string) *alg.ParetoFrontier
	RerouteAroundDisruptions(currentRoute *alg.Route, currentPosition string, disruptedEdges []string) (*alg.Route, bool)
}

// NetworkStore is the slice of the graph store the service consumes.
type NetworkStore interface {
	AddNode(n alg.Node)
	AddEdge(e alg.Edge)
	RemoveNode(id string) bool
	RemoveEdge(id string) bool
	GetNode(id string) (alg.Node, bool)
	Nodes() []alg.Node
	Edges() []alg.Edge
	GetStats() alg.NetworkStats
}

type OptimizerService struct {
	store  NetworkStore
	engine RouteEngine
}

func NewOptimizerService(store NetworkStore, engine RouteEngine) *OptimizerService {
	return &OptimizerService{store: store, engine: engine}
}

type NetworkSnapshot struct {
	Nodes []alg.Node       `json:"nodes"`
	Edges []alg.Edge       `json:"edges"`
	Stats alg.NetworkStats `json:"stats"`
}

func (s *OptimizerService) GetNetwork(ctx context.Context) NetworkSnapshot {
	return NetworkSnapshot{
		Nodes: s.store.Nodes(),
		Edges: s.store.Edges(),
		Stats: s.store.GetStats(),
	}
}

func (s *OptimizerService) AddNode(ctx context.Context, n alg.Node) {
	s.store.AddNode(n)
}

func (s *OptimizerService) AddEdge(ctx context.Context, e alg.Edge) {
	s.store.AddEdge(e)
}

func (s *OptimizerService) RemoveNode(ctx context.Context, id string) error {
	if !s.store.RemoveNode(id) {
		return domain.WrapErrorf(nil, domain.ErrNotFound, "node %s not found", id)
	}
	return nil
}

func (s *OptimizerService) RemoveEdge(ctx context.Context, id string) error {
	if !s.store.RemoveEdge(id) {
		return domain.WrapErrorf(nil, domain.ErrNotFound, "edge %s not found", id)
	}
	return nil
}

// OptimizeRoute runs the single-best-route query. A missing endpoint and an
// infeasible query both surface as not-found.
func (s *OptimizerService) OptimizeRoute(ctx context.Context, origin, destination string,
	constraints *alg.Constraints, config alg.RouteConfig) (*alg.Route, error) {

	if err := s.checkEndpoints(origin, destination); err != nil {
		return nil, err
	}

	route, found := s.engine.FindOptimalRoute(origin, destination, constraints, config)
	if !found {
		return nil, domain.WrapErrorf(nil, domain.ErrNotFound, "no route found between %s and %s", origin, destination)
	}
	return route, nil
}

func (s *OptimizerService) ParetoRoutes(ctx context.Context, origin, destination string,
	constraints *alg.Constraints, objectives []string) (*alg.ParetoFrontier, error) {

	if err := s.checkEndpoints(origin, destination); err != nil {
		return nil, err
	}
	if len(objectives) == 0 {
		objectives = []string{"minimize_cost", "minimize_time", "minimize_carbon"}
	}
	return s.engine.ComputeParetoFrontier(origin, destination, constraints, objectives), nil
}

func (s *OptimizerService) ScenarioRoute(ctx context.Context, origin, destination, scenario string) (*alg.Route, error) {
	config, ok := alg.ScenarioConfig(scenario)
	if !ok {
		return nil, domain.WrapErrorf(nil, domain.ErrInvalidScenario,
			"unknown scenario %q, valid scenarios: %v", scenario, alg.ScenarioNames())
	}
	return s.OptimizeRoute(ctx, origin, destination, nil, config)
}

func (s *OptimizerService) Reoptimize(ctx context.Context, currentRoute *alg.Route,
	currentPosition string, disruptedEdges []string) (*alg.Route, error) {

	if currentRoute == nil || len(currentRoute.Segments) == 0 {
		return nil, domain.WrapErrorf(nil, domain.ErrBadParamInput, "current route has no segments")
	}
	if _, ok := s.store.GetNode(currentPosition); !ok {
		return nil, domain.WrapErrorf(nil, domain.ErrNotFound, "current position %s not found", currentPosition)
	}

	route, found := s.engine.RerouteAroundDisruptions(currentRoute, currentPosition, disruptedEdges)
	if !found {
		return nil, domain.WrapErrorf(nil, domain.ErrNotFound, "no route found around disrupted edges")
	}
	return route, nil
}

func (s *OptimizerService) checkEndpoints(origin, destination string) error {
	if _, ok := s.store.GetNode(origin); !ok {
		return domain.WrapErrorf(nil, domain.ErrNotFound, "origin node %s not found", origin)
	}
	if _, ok := s.store.GetNode(destination); !ok {
		return domain.WrapErrorf(nil, domain.ErrNotFound, "destination node %s not found", destination)
	}
	return nil
}
