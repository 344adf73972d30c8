package alg

import "lintang/optiroute/util"

// BidirectionalSearch grows a forward frontier from the start over outgoing
// edges and a backward frontier from the goal over incoming edges,
// alternating one FIFO expansion per side. The graph is treated as
// unweighted: the stitched path proves reachability but carries no
// scalarized-cost guarantee, so the engine uses this solver only when the
// caller asks for it.
func (g *Graph) BidirectionalSearch(startID, goalID string) ([]string, bool) {
	if _, ok := g.GetNode(startID); !ok {
		return nil, false
	}
	if _, ok := g.GetNode(goalID); !ok {
		return nil, false
	}
	if startID == goalID {
		return []string{startID}, true
	}

	// parentF[x] is the node before x walking from start; parentB[x] is the
	// node after x walking toward goal.
	parentF := map[string]string{startID: ""}
	parentB := map[string]string{goalID: ""}

	forwardQueue := []string{startID}
	backwardQueue := []string{goalID}

	for len(forwardQueue) > 0 || len(backwardQueue) > 0 {
		if len(forwardQueue) > 0 {
			current := forwardQueue[0]
			forwardQueue = forwardQueue[1:]

			for _, neighbor := range g.GetNeighbors(current) {
				id := neighbor.Node.ID
				if _, seen := parentF[id]; seen {
					continue
				}
				parentF[id] = current
				if _, met := parentB[id]; met {
					return stitchPaths(parentF, parentB, id), true
				}
				forwardQueue = append(forwardQueue, id)
			}
		}

		if len(backwardQueue) > 0 {
			current := backwardQueue[0]
			backwardQueue = backwardQueue[1:]

			for _, incoming := range g.GetIncoming(current) {
				id := incoming.Node.ID
				if _, seen := parentB[id]; seen {
					continue
				}
				parentB[id] = current
				if _, met := parentF[id]; met {
					return stitchPaths(parentF, parentB, id), true
				}
				backwardQueue = append(backwardQueue, id)
			}
		}
	}

	return nil, false
}

// stitchPaths concatenates start→meeting (via forward parents, reversed)
// with meeting→goal (via backward parents).
func stitchPaths(parentF, parentB map[string]string, meeting string) []string {
	path := []string{}
	for at := meeting; at != ""; at = parentF[at] {
		path = append(path, at)
	}
	path = util.ReverseG(path)
	for at := parentB[meeting]; at != ""; at = parentB[at] {
		path = append(path, at)
	}
	return path
}
