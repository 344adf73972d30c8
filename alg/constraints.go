package alg

import "time"

type TimeWindow struct {
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	HardConstraint bool      `json:"hardConstraint"`
}

type CapacityConstraint struct {
	MaxWeight float64 `json:"maxWeight"`
	MaxVolume float64 `json:"maxVolume,omitempty"`
}

type EmissionConstraint struct {
	MaxCO2            float64 `json:"maxCO2"`
	PreferLowEmission bool    `json:"preferLowEmission"`
}

// Constraints carried by an optimization query. Priority is informational
// only at this layer.
type Constraints struct {
	TimeWindows   []TimeWindow        `json:"timeWindows,omitempty"`
	Capacity      *CapacityConstraint `json:"capacity,omitempty"`
	Emissions     *EmissionConstraint `json:"emissions,omitempty"`
	AvoidNodes    []string            `json:"avoidNodes,omitempty"`
	RequiredNodes []string            `json:"requiredNodes,omitempty"`
	Priority      string              `json:"priority,omitempty"`
}

// ValidateRoute checks the hard constraints. The returned reason names the
// first violation for diagnostics; an empty reason means the route is valid.
//
// preferLowEmission turns the emission ceiling into a soft constraint: the
// route is accepted even over the ceiling.
func ValidateRoute(r *Route, c *Constraints) (bool, string) {
	if c == nil {
		return true, ""
	}

	for _, window := range c.TimeWindows {
		if !window.HardConstraint {
			continue
		}
		routeMS := r.TotalTime * 60_000
		windowMS := float64(window.End.Sub(window.Start).Milliseconds())
		if routeMS > windowMS {
			return false, "time window exceeded"
		}
	}

	if c.Capacity != nil {
		for _, seg := range r.Segments {
			if seg.Edge.Capacity < c.Capacity.MaxWeight {
				return false, "segment capacity below shipment weight"
			}
		}
	}

	if c.Emissions != nil && r.TotalCarbon > c.Emissions.MaxCO2 && !c.Emissions.PreferLowEmission {
		return false, "emission ceiling exceeded"
	}

	for _, avoid := range c.AvoidNodes {
		for _, seg := range r.Segments {
			if seg.From.ID == avoid || seg.To.ID == avoid {
				return false, "route passes avoided node " + avoid
			}
		}
	}

	for _, required := range c.RequiredNodes {
		found := false
		for _, seg := range r.Segments {
			if seg.From.ID == required || seg.To.ID == required {
				found = true
				break
			}
		}
		if !found {
			return false, "route misses required node " + required
		}
	}

	return true, ""
}
