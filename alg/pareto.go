package alg

import (
	"runtime"
	"sort"
	"time"
)

const paretoGridSteps = 5

type ParetoObjectives struct {
	Cost   float64 `json:"cost"`
	Time   float64 `json:"time"`
	Carbon float64 `json:"carbon"`
	Risk   float64 `json:"risk"`
}

type ParetoCandidate struct {
	Route      *Route           `json:"route"`
	Weights    Weights          `json:"weights"`
	Objectives ParetoObjectives `json:"objectives"`
	IsOptimal  bool             `json:"isOptimal"`
}

type ParetoFrontier struct {
	Objectives      []string          `json:"objectives"`
	Candidates      []ParetoCandidate `json:"candidates"`
	PointsEvaluated int               `json:"pointsEvaluated"`
	ComputeTimeMS   float64           `json:"computeTimeMs"`
}

type paretoJob struct {
	idx     int
	weights Weights
}

type paretoResult struct {
	idx     int
	weights Weights
	route   *Route
}

// paretoWeightGrid enumerates the 3-level simplex over {cost, time, carbon}
// with 5 steps; the leftover weight mass is split evenly between risk and
// service level. Yields exactly 56 vectors.
func paretoWeightGrid() []Weights {
	grid := []Weights{}
	for i := 0; i <= paretoGridSteps; i++ {
		for j := 0; j <= paretoGridSteps-i; j++ {
			for k := 0; k <= paretoGridSteps-i-j; k++ {
				cost := float64(i) / paretoGridSteps
				timeW := float64(j) / paretoGridSteps
				carbon := float64(k) / paretoGridSteps
				remaining := 1 - cost - timeW - carbon
				grid = append(grid, Weights{
					Cost:         cost,
					Time:         timeW,
					Carbon:       carbon,
					Risk:         remaining * 0.5,
					ServiceLevel: remaining * 0.5,
				})
			}
		}
	}
	return grid
}

// ComputeParetoFrontier solves the query once per grid weight vector, then
// marks the candidates not dominated by any other. The solves are
// independent reads, so they fan out over the worker pool; result order is
// restored by grid index to keep the frontier reproducible.
func (e *Engine) ComputeParetoFrontier(startID, goalID string, constraints *Constraints, objectives []string) *ParetoFrontier {
	began := time.Now()
	grid := paretoWeightGrid()

	numWorkers := runtime.NumCPU()
	if numWorkers > len(grid) {
		numWorkers = len(grid)
	}

	pool := NewWorkerPool[paretoJob, paretoResult](numWorkers, len(grid))
	pool.Start(func(job paretoJob) paretoResult {
		route, found := e.FindOptimalRoute(startID, goalID, constraints, RouteConfig{
			Algorithm:       AlgorithmHybrid,
			Weights:         job.weights,
			ConsiderTraffic: true,
			ConsiderWeather: true,
		})
		if !found {
			return paretoResult{idx: job.idx, weights: job.weights}
		}
		return paretoResult{idx: job.idx, weights: job.weights, route: route}
	})

	for idx, w := range grid {
		pool.AddJob(paretoJob{idx: idx, weights: w})
	}
	pool.CloseJobs()
	pool.Wait()

	results := []paretoResult{}
	for res := range pool.CollectResults() {
		if res.route != nil {
			results = append(results, res)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].idx < results[j].idx })

	candidates := make([]ParetoCandidate, 0, len(results))
	for _, res := range results {
		candidates = append(candidates, ParetoCandidate{
			Route:   res.route,
			Weights: res.weights,
			Objectives: ParetoObjectives{
				Cost:   res.route.TotalCost.Total,
				Time:   res.route.TotalTime,
				Carbon: res.route.TotalCarbon,
				Risk:   res.route.RiskScore,
			},
		})
	}

	for i := range candidates {
		candidates[i].IsOptimal = true
		for j := range candidates {
			if i != j && dominates(candidates[j].Objectives, candidates[i].Objectives) {
				candidates[i].IsOptimal = false
				break
			}
		}
	}

	return &ParetoFrontier{
		Objectives:      objectives,
		Candidates:      candidates,
		PointsEvaluated: len(grid),
		ComputeTimeMS:   float64(time.Since(began).Microseconds()) / 1000.0,
	}
}

// dominates reports whether a is no worse than b on every objective and
// strictly better on at least one.
func dominates(a, b ParetoObjectives) bool {
	if a.Cost > b.Cost || a.Time > b.Time || a.Carbon > b.Carbon || a.Risk > b.Risk {
		return false
	}
	return a.Cost < b.Cost || a.Time < b.Time || a.Carbon < b.Carbon || a.Risk < b.Risk
}
