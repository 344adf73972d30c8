package alg

import "container/heap"

// Dijkstra is the exact single-source solver for non-negative scalarized
// costs. Finalized nodes are never revisited; terminates when the goal is
// settled or the frontier runs dry (disconnected).
func (g *Graph) Dijkstra(startID, goalID string, w Weights) ([]string, bool) {
	if _, ok := g.GetNode(startID); !ok {
		return nil, false
	}
	if _, ok := g.GetNode(goalID); !ok {
		return nil, false
	}
	if startID == goalID {
		return []string{startID}, true
	}

	nq := &priorityQueue[string]{}
	heap.Init(nq)
	seq := 0

	dist := make(map[string]float64)
	dist[startID] = 0.0
	visited := make(map[string]bool)

	cameFrom := make(map[string]string)
	cameFrom[startID] = ""

	heap.Push(nq, &priorityQueueNode[string]{rank: 0, seq: seq, item: startID})
	seq++

	for nq.Len() > 0 {
		current := heap.Pop(nq).(*priorityQueueNode[string])
		if visited[current.item] {
			continue
		}
		visited[current.item] = true

		if current.item == goalID {
			return reconstructPath(cameFrom, goalID), true
		}

		for _, neighbor := range g.GetNeighbors(current.item) {
			if visited[neighbor.Node.ID] {
				continue
			}
			newCost := dist[current.item] + EdgeCost(neighbor.Edge, w)
			known, ok := dist[neighbor.Node.ID]
			if !ok || newCost < known {
				dist[neighbor.Node.ID] = newCost
				cameFrom[neighbor.Node.ID] = current.item
				heap.Push(nq, &priorityQueueNode[string]{rank: newCost, seq: seq, item: neighbor.Node.ID})
				seq++
			}
		}
	}

	return nil, false
}
