package alg

import (
	"container/heap"

	"lintang/optiroute/util"
)

// https://theory.stanford.edu/~amitp/GameProgramming/ImplementationNotes.html
//
// AStar runs best-first search keyed by f = g + h where g is the best
// scalarized cost discovered so far and h is the great-circle distance to
// the goal in km. Returns the node-id path from start to goal, or false when
// no path exists.
func (g *Graph) AStar(startID, goalID string, w Weights) ([]string, bool) {
	start, ok := g.GetNode(startID)
	if !ok {
		return nil, false
	}
	goal, ok := g.GetNode(goalID)
	if !ok {
		return nil, false
	}
	if startID == goalID {
		return []string{startID}, true
	}

	nq := &priorityQueue[string]{}
	heap.Init(nq)
	seq := 0

	costSoFar := make(map[string]float64)
	costSoFar[startID] = 0.0

	cameFrom := make(map[string]string)
	cameFrom[startID] = ""

	heap.Push(nq, &priorityQueueNode[string]{
		rank: HeuristicCost(start, goal, w),
		seq:  seq,
		item: startID,
	})
	seq++

	for nq.Len() > 0 {
		current := heap.Pop(nq).(*priorityQueueNode[string])
		if current.item == goalID {
			return reconstructPath(cameFrom, goalID), true
		}

		for _, neighbor := range g.GetNeighbors(current.item) {
			newCost := costSoFar[current.item] + EdgeCost(neighbor.Edge, w)
			known, ok := costSoFar[neighbor.Node.ID]
			if !ok || newCost < known {
				costSoFar[neighbor.Node.ID] = newCost
				cameFrom[neighbor.Node.ID] = current.item
				heap.Push(nq, &priorityQueueNode[string]{
					rank: newCost + HeuristicCost(neighbor.Node, goal, w),
					seq:  seq,
					item: neighbor.Node.ID,
				})
				seq++
			}
		}
	}

	return nil, false
}

// reconstructPath walks predecessor pointers back to the start and reverses.
func reconstructPath(cameFrom map[string]string, terminal string) []string {
	path := []string{}
	for at := terminal; at != ""; at = cameFrom[at] {
		path = append(path, at)
	}
	return util.ReverseG(path)
}
