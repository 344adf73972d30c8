package seeder

import (
	ansi "github.com/k0kubun/go-ansi"
	"github.com/schollz/progressbar/v3"

	"lintang/optiroute/alg"
)

// SampleNodes is the canonical demo network: six inland hubs, two container
// ports, two airports, one rail terminal, one distribution warehouse.
func SampleNodes() []alg.Node {
	return []alg.Node{
		{ID: "ny-hub", Name: "New York Hub", Type: alg.NodeHub, Coordinates: alg.Coordinates{Lat: 40.7128, Lng: -74.0060}, Capacity: 50000, DwellTime: 120, Facilities: []string{"cross_dock", "cold_chain"}},
		{ID: "la-hub", Name: "Los Angeles Hub", Type: alg.NodeHub, Coordinates: alg.Coordinates{Lat: 34.0522, Lng: -118.2437}, Capacity: 60000, DwellTime: 120, Facilities: []string{"cross_dock"}},
		{ID: "chicago-hub", Name: "Chicago Hub", Type: alg.NodeHub, Coordinates: alg.Coordinates{Lat: 41.8781, Lng: -87.6298}, Capacity: 55000, DwellTime: 90},
		{ID: "atlanta-hub", Name: "Atlanta Hub", Type: alg.NodeHub, Coordinates: alg.Coordinates{Lat: 33.7490, Lng: -84.3880}, Capacity: 45000, DwellTime: 90},
		{ID: "dallas-hub", Name: "Dallas Hub", Type: alg.NodeHub, Coordinates: alg.Coordinates{Lat: 32.7767, Lng: -96.7970}, Capacity: 45000, DwellTime: 90},
		{ID: "seattle-hub", Name: "Seattle Hub", Type: alg.NodeHub, Coordinates: alg.Coordinates{Lat: 47.6062, Lng: -122.3321}, Capacity: 40000, DwellTime: 120},
		{ID: "la-port", Name: "Port of Los Angeles", Type: alg.NodePort, Coordinates: alg.Coordinates{Lat: 33.7406, Lng: -118.2706}, Capacity: 200000, DwellTime: 720, CustomsRequired: true, Facilities: []string{"container_yard"}},
		{ID: "ny-port", Name: "Port of New York", Type: alg.NodePort, Coordinates: alg.Coordinates{Lat: 40.6840, Lng: -74.0062}, Capacity: 180000, DwellTime: 720, CustomsRequired: true, Facilities: []string{"container_yard"}},
		{ID: "jfk-airport", Name: "JFK International", Type: alg.NodeAirport, Coordinates: alg.Coordinates{Lat: 40.6413, Lng: -73.7781}, Capacity: 5000, DwellTime: 180, CustomsRequired: true},
		{ID: "lax-airport", Name: "LAX International", Type: alg.NodeAirport, Coordinates: alg.Coordinates{Lat: 33.9416, Lng: -118.4085}, Capacity: 5000, DwellTime: 180, CustomsRequired: true},
		{ID: "chicago-rail", Name: "Chicago Rail Terminal", Type: alg.NodeRailTerminal, Coordinates: alg.Coordinates{Lat: 41.8500, Lng: -87.6700}, Capacity: 80000, DwellTime: 240},
		{ID: "memphis-warehouse", Name: "Memphis Warehouse", Type: alg.NodeWarehouse, Coordinates: alg.Coordinates{Lat: 35.1495, Lng: -90.0490}, Capacity: 30000, DwellTime: 60, OperatingHours: &alg.OperatingHours{Open: "06:00", Close: "22:00"}},
	}
}

// SampleEdges wires the demo corridors. Emission factors per km for one
// shipment: road 0.9, rail 0.35, sea 0.01, air 3.5. Road times are
// door-to-door schedule minutes including mandated rest. Atlanta reaches Chicago by road only
// through New York or by rail through the Chicago terminal, which keeps the
// lowest-cost corridor choice nontrivial.
func SampleEdges() []alg.Edge {
	return []alg.Edge{
		// transcontinental road corridor
		{ID: "edge-la-dallas-road", Source: "la-hub", Target: "dallas-hub", Mode: alg.ModeRoad, Distance: 2210, BaseTime: 3315, BaseCost: 1850, Capacity: 24000, Reliability: 0.94, CarbonEmissions: 0.9, FuelCost: 410, TollCost: 55},
		{ID: "edge-dallas-la-road", Source: "dallas-hub", Target: "la-hub", Mode: alg.ModeRoad, Distance: 2210, BaseTime: 3315, BaseCost: 1850, Capacity: 24000, Reliability: 0.94, CarbonEmissions: 0.9, FuelCost: 410, TollCost: 55},
		{ID: "edge-dallas-atlanta-road", Source: "dallas-hub", Target: "atlanta-hub", Mode: alg.ModeRoad, Distance: 1160, BaseTime: 1740, BaseCost: 980, Capacity: 24000, Reliability: 0.95, CarbonEmissions: 0.9, FuelCost: 230, TollCost: 40},
		{ID: "edge-atlanta-dallas-road", Source: "atlanta-hub", Target: "dallas-hub", Mode: alg.ModeRoad, Distance: 1160, BaseTime: 1740, BaseCost: 980, Capacity: 24000, Reliability: 0.95, CarbonEmissions: 0.9, FuelCost: 230, TollCost: 40},
		{ID: "edge-atlanta-ny-road", Source: "atlanta-hub", Target: "ny-hub", Mode: alg.ModeRoad, Distance: 1200, BaseTime: 1800, BaseCost: 1040, Capacity: 24000, Reliability: 0.93, CarbonEmissions: 0.9, FuelCost: 235, TollCost: 75},
		{ID: "edge-ny-atlanta-road", Source: "ny-hub", Target: "atlanta-hub", Mode: alg.ModeRoad, Distance: 1200, BaseTime: 1800, BaseCost: 1040, Capacity: 24000, Reliability: 0.93, CarbonEmissions: 0.9, FuelCost: 235, TollCost: 75},
		{ID: "edge-ny-chicago-road", Source: "ny-hub", Target: "chicago-hub", Mode: alg.ModeRoad, Distance: 1270, BaseTime: 1905, BaseCost: 1150, Capacity: 24000, Reliability: 0.94, CarbonEmissions: 0.9, FuelCost: 250, TollCost: 85},
		{ID: "edge-chicago-ny-road", Source: "chicago-hub", Target: "ny-hub", Mode: alg.ModeRoad, Distance: 1270, BaseTime: 1905, BaseCost: 1150, Capacity: 24000, Reliability: 0.94, CarbonEmissions: 0.9, FuelCost: 250, TollCost: 85},
		{ID: "edge-seattle-la-road", Source: "seattle-hub", Target: "la-hub", Mode: alg.ModeRoad, Distance: 1830, BaseTime: 2745, BaseCost: 1530, Capacity: 24000, Reliability: 0.93, CarbonEmissions: 0.9, FuelCost: 340},
		{ID: "edge-la-seattle-road", Source: "la-hub", Target: "seattle-hub", Mode: alg.ModeRoad, Distance: 1830, BaseTime: 2745, BaseCost: 1530, Capacity: 24000, Reliability: 0.93, CarbonEmissions: 0.9, FuelCost: 340},
		// memphis distribution spur
		{ID: "edge-dallas-memphis-road", Source: "dallas-hub", Target: "memphis-warehouse", Mode: alg.ModeRoad, Distance: 730, BaseTime: 1095, BaseCost: 610, Capacity: 24000, Reliability: 0.95, CarbonEmissions: 0.9, FuelCost: 140},
		{ID: "edge-memphis-dallas-road", Source: "memphis-warehouse", Target: "dallas-hub", Mode: alg.ModeRoad, Distance: 730, BaseTime: 1095, BaseCost: 610, Capacity: 24000, Reliability: 0.95, CarbonEmissions: 0.9, FuelCost: 140},
		{ID: "edge-memphis-atlanta-road", Source: "memphis-warehouse", Target: "atlanta-hub", Mode: alg.ModeRoad, Distance: 630, BaseTime: 945, BaseCost: 540, Capacity: 24000, Reliability: 0.95, CarbonEmissions: 0.9, FuelCost: 120},
		{ID: "edge-atlanta-memphis-road", Source: "atlanta-hub", Target: "memphis-warehouse", Mode: alg.ModeRoad, Distance: 630, BaseTime: 945, BaseCost: 540, Capacity: 24000, Reliability: 0.95, CarbonEmissions: 0.9, FuelCost: 120},
		// rail
		{ID: "edge-atlanta-chicagorail-rail", Source: "atlanta-hub", Target: "chicago-rail", Mode: alg.ModeRail, Distance: 1150, BaseTime: 1530, BaseCost: 640, Capacity: 60000, Reliability: 0.91, CarbonEmissions: 0.35, FuelCost: 120},
		{ID: "edge-chicagorail-atlanta-rail", Source: "chicago-rail", Target: "atlanta-hub", Mode: alg.ModeRail, Distance: 1150, BaseTime: 1530, BaseCost: 640, Capacity: 60000, Reliability: 0.91, CarbonEmissions: 0.35, FuelCost: 120},
		{ID: "edge-seattle-chicagorail-rail", Source: "seattle-hub", Target: "chicago-rail", Mode: alg.ModeRail, Distance: 3300, BaseTime: 4400, BaseCost: 2100, Capacity: 60000, Reliability: 0.90, CarbonEmissions: 0.35, FuelCost: 310},
		{ID: "edge-chicagorail-seattle-rail", Source: "chicago-rail", Target: "seattle-hub", Mode: alg.ModeRail, Distance: 3300, BaseTime: 4400, BaseCost: 2100, Capacity: 60000, Reliability: 0.90, CarbonEmissions: 0.35, FuelCost: 310},
		{ID: "edge-chicagorail-chicago-road", Source: "chicago-rail", Target: "chicago-hub", Mode: alg.ModeRoad, Distance: 18, BaseTime: 35, BaseCost: 90, Capacity: 24000, Reliability: 0.98, CarbonEmissions: 0.9, FuelCost: 15},
		{ID: "edge-chicago-chicagorail-road", Source: "chicago-hub", Target: "chicago-rail", Mode: alg.ModeRoad, Distance: 18, BaseTime: 35, BaseCost: 90, Capacity: 24000, Reliability: 0.98, CarbonEmissions: 0.9, FuelCost: 15},
		// air
		{ID: "edge-lax-jfk-air", Source: "lax-airport", Target: "jfk-airport", Mode: alg.ModeAir, Distance: 3980, BaseTime: 330, BaseCost: 5200, Capacity: 95, Reliability: 0.92, CarbonEmissions: 3.5, FuelCost: 2600},
		{ID: "edge-jfk-lax-air", Source: "jfk-airport", Target: "lax-airport", Mode: alg.ModeAir, Distance: 3980, BaseTime: 345, BaseCost: 5200, Capacity: 95, Reliability: 0.92, CarbonEmissions: 3.5, FuelCost: 2600},
		// sea
		{ID: "edge-laport-nyport-sea", Source: "la-port", Target: "ny-port", Mode: alg.ModeSea, Distance: 9500, BaseTime: 14400, BaseCost: 3200, Capacity: 180000, Reliability: 0.97, CarbonEmissions: 0.01, FuelCost: 850},
		{ID: "edge-nyport-laport-sea", Source: "ny-port", Target: "la-port", Mode: alg.ModeSea, Distance: 9500, BaseTime: 14400, BaseCost: 3200, Capacity: 180000, Reliability: 0.97, CarbonEmissions: 0.01, FuelCost: 850},
		// local connectors
		{ID: "edge-lahub-laport-road", Source: "la-hub", Target: "la-port", Mode: alg.ModeRoad, Distance: 30, BaseTime: 45, BaseCost: 120, Capacity: 24000, Reliability: 0.98, CarbonEmissions: 0.9, FuelCost: 25},
		{ID: "edge-laport-lahub-road", Source: "la-port", Target: "la-hub", Mode: alg.ModeRoad, Distance: 30, BaseTime: 45, BaseCost: 120, Capacity: 24000, Reliability: 0.98, CarbonEmissions: 0.9, FuelCost: 25},
		{ID: "edge-nyhub-nyport-road", Source: "ny-hub", Target: "ny-port", Mode: alg.ModeRoad, Distance: 15, BaseTime: 30, BaseCost: 95, Capacity: 24000, Reliability: 0.98, CarbonEmissions: 0.9, FuelCost: 12},
		{ID: "edge-nyport-nyhub-road", Source: "ny-port", Target: "ny-hub", Mode: alg.ModeRoad, Distance: 15, BaseTime: 30, BaseCost: 95, Capacity: 24000, Reliability: 0.98, CarbonEmissions: 0.9, FuelCost: 12},
		{ID: "edge-lahub-lax-road", Source: "la-hub", Target: "lax-airport", Mode: alg.ModeRoad, Distance: 25, BaseTime: 35, BaseCost: 110, Capacity: 24000, Reliability: 0.97, CarbonEmissions: 0.9, FuelCost: 20},
		{ID: "edge-lax-lahub-road", Source: "lax-airport", Target: "la-hub", Mode: alg.ModeRoad, Distance: 25, BaseTime: 35, BaseCost: 110, Capacity: 24000, Reliability: 0.97, CarbonEmissions: 0.9, FuelCost: 20},
		{ID: "edge-nyhub-jfk-road", Source: "ny-hub", Target: "jfk-airport", Mode: alg.ModeRoad, Distance: 30, BaseTime: 40, BaseCost: 115, Capacity: 24000, Reliability: 0.97, CarbonEmissions: 0.9, FuelCost: 22},
		{ID: "edge-jfk-nyhub-road", Source: "jfk-airport", Target: "ny-hub", Mode: alg.ModeRoad, Distance: 30, BaseTime: 40, BaseCost: 115, Capacity: 24000, Reliability: 0.97, CarbonEmissions: 0.9, FuelCost: 22},
	}
}

// SeedSampleNetwork loads the canonical network into the store. Verbose mode
// renders a progress bar on stdout.
func SeedSampleNetwork(g *alg.Graph, verbose bool) {
	nodes := SampleNodes()
	edges := SampleEdges()

	var bar *progressbar.ProgressBar
	if verbose {
		bar = progressbar.NewOptions(len(nodes)+len(edges),
			progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(15),
			progressbar.OptionSetDescription("[cyan]Seeding sample network...[reset]"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	for _, n := range nodes {
		g.AddNode(n)
		if bar != nil {
			bar.Add(1)
		}
	}
	for _, e := range edges {
		g.AddEdge(e)
		if bar != nil {
			bar.Add(1)
		}
	}
}
