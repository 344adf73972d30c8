package alg

import "sync"

type TransportMode string

const (
	ModeRoad       TransportMode = "road"
	ModeRail       TransportMode = "rail"
	ModeSea        TransportMode = "sea"
	ModeAir        TransportMode = "air"
	ModeIntermodal TransportMode = "intermodal"
)

type NodeType string

const (
	NodeHub           NodeType = "hub"
	NodePort          NodeType = "port"
	NodeAirport       NodeType = "airport"
	NodeWarehouse     NodeType = "warehouse"
	NodeDepot         NodeType = "depot"
	NodeRailTerminal  NodeType = "rail_terminal"
	NodeOrigin        NodeType = "origin"
	NodeDestination   NodeType = "destination"
	NodeTransferPoint NodeType = "transfer_point"
	NodeCustoms       NodeType = "customs"
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OperatingHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type Node struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            NodeType        `json:"type"`
	Coordinates     Coordinates     `json:"coordinates"`
	Capacity        float64         `json:"capacity,omitempty"`
	FixedCosts      float64         `json:"fixedCosts,omitempty"`
	DwellTime       float64         `json:"dwellTime,omitempty"`
	OperatingHours  *OperatingHours `json:"operatingHours,omitempty"`
	Facilities      []string        `json:"facilities,omitempty"`
	CustomsRequired bool            `json:"customsRequired,omitempty"`
}

type Edge struct {
	ID              string        `json:"id"`
	Source          string        `json:"source"`
	Target          string        `json:"target"`
	Mode            TransportMode `json:"mode"`
	Distance        float64       `json:"distance"`
	BaseTime        float64       `json:"baseTime"`
	BaseCost        float64       `json:"baseCost"`
	Capacity        float64       `json:"capacity"`
	Reliability     float64       `json:"reliability"`
	CarbonEmissions float64       `json:"carbonEmissions"`
	FuelCost        float64       `json:"fuelCost"`
	TollCost        float64       `json:"tollCost,omitempty"`
	SpeedLimit      float64       `json:"speedLimit,omitempty"`
	RoadQuality     float64       `json:"roadQuality,omitempty"`
}

// Neighbor is one hop out of (or into) a node, snapshotted so callers can
// keep it across store mutation.
type Neighbor struct {
	Node Node
	Edge Edge
}

type NetworkStats struct {
	NodeCount     int                   `json:"nodeCount"`
	EdgeCount     int                   `json:"edgeCount"`
	AvgOutDegree  float64               `json:"avgOutDegree"`
	ModeHistogram map[TransportMode]int `json:"modeHistogram"`
}

// Graph is the in-memory multi-modal network. Directed multigraph: parallel
// edges between the same pair of nodes are allowed and adjacency keeps
// insertion order so traversal is reproducible.
type Graph struct {
	mu        sync.RWMutex
	nodes     map[string]*Node
	edges     map[string]*Edge
	adjacency map[string][]string

	nodeOrder []string
	edgeOrder []string
}

func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string][]string),
	}
}

// AddNode upserts by id. Re-adding an existing id overwrites the attributes
// but keeps the adjacency list and insertion position.
func (g *Graph) AddNode(n Node) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[n.ID]; !ok {
		g.nodeOrder = append(g.nodeOrder, n.ID)
		g.adjacency[n.ID] = []string{}
	}
	nCopy := n
	g.nodes[n.ID] = &nCopy
}

// AddEdge upserts by id and appends to the source adjacency list. Re-adding
// an existing id drops the old record first, so the edge moves to the end of
// its adjacency list. Endpoints are not required to exist yet; lookups
// tolerate absence.
func (g *Graph) AddEdge(e Edge) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[e.ID]; ok {
		g.removeEdgeLocked(e.ID)
	}
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.adjacency[e.Source] = append(g.adjacency[e.Source], e.ID)
	eCopy := e
	g.edges[e.ID] = &eCopy
}

// RemoveNode drops the node, its adjacency list, and every edge touching it
// in either direction. Cleanup is eager so reads never see a dangling edge.
func (g *Graph) RemoveNode(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.nodes[id]; !ok {
		return false
	}

	doomed := []string{}
	for _, edgeID := range g.edgeOrder {
		e := g.edges[edgeID]
		if e.Source == id || e.Target == id {
			doomed = append(doomed, edgeID)
		}
	}
	for _, edgeID := range doomed {
		g.removeEdgeLocked(edgeID)
	}

	delete(g.nodes, id)
	delete(g.adjacency, id)
	g.nodeOrder = removeString(g.nodeOrder, id)
	return true
}

func (g *Graph) RemoveEdge(id string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.edges[id]; !ok {
		return false
	}
	g.removeEdgeLocked(id)
	return true
}

func (g *Graph) removeEdgeLocked(id string) {
	e := g.edges[id]
	g.adjacency[e.Source] = removeString(g.adjacency[e.Source], id)
	delete(g.edges, id)
	g.edgeOrder = removeString(g.edgeOrder, id)
}

func (g *Graph) GetNode(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

func (g *Graph) GetEdge(id string) (Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// GetNeighbors yields outgoing (target node, edge) pairs in adjacency order.
// Edges whose target node is absent from the store are skipped.
func (g *Graph) GetNeighbors(id string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	neighbors := []Neighbor{}
	for _, edgeID := range g.adjacency[id] {
		e, ok := g.edges[edgeID]
		if !ok {
			continue
		}
		target, ok := g.nodes[e.Target]
		if !ok {
			continue
		}
		neighbors = append(neighbors, Neighbor{Node: *target, Edge: *e})
	}
	return neighbors
}

// GetIncoming yields (source node, edge) pairs for every edge whose target is
// id, in edge insertion order. Used by the backward frontier of the
// bidirectional solver.
func (g *Graph) GetIncoming(id string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	incoming := []Neighbor{}
	for _, edgeID := range g.edgeOrder {
		e, ok := g.edges[edgeID]
		if !ok || e.Target != id {
			continue
		}
		source, ok := g.nodes[e.Source]
		if !ok {
			continue
		}
		incoming = append(incoming, Neighbor{Node: *source, Edge: *e})
	}
	return incoming
}

// Nodes returns a snapshot of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nodes := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		nodes = append(nodes, *g.nodes[id])
	}
	return nodes
}

// Edges returns a snapshot of all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		edges = append(edges, *g.edges[id])
	}
	return edges
}

func (g *Graph) GetStats() NetworkStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := NetworkStats{
		NodeCount:     len(g.nodes),
		EdgeCount:     len(g.edges),
		ModeHistogram: make(map[TransportMode]int),
	}
	for _, e := range g.edges {
		stats.ModeHistogram[e.Mode]++
	}
	if stats.NodeCount > 0 {
		stats.AvgOutDegree = float64(stats.EdgeCount) / float64(stats.NodeCount)
	}
	return stats
}

func removeString(arr []string, s string) []string {
	out := arr[:0]
	for _, v := range arr {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
