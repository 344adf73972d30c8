package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lintang/optiroute/alg"
	"lintang/optiroute/api"
	"lintang/optiroute/seeder"
	"lintang/optiroute/service"
)

var (
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
	seedSample = flag.Bool("seed", true, "load the sample logistics network on startup")
)

//	@title			optiroute API
//	@version		1.0
//	@description	multi-modal logistics route optimization service in go

//	@host		localhost:5000
//	@BasePath	/api
//	@schemes	http
func main() {
	flag.Parse()

	graph := alg.NewGraph()
	if *seedSample {
		seeder.SeedSampleNetwork(graph, true)
		stats := graph.GetStats()
		fmt.Printf("\nsample network loaded: %d nodes, %d edges\n", stats.NodeCount, stats.EdgeCount)
	}

	engine := alg.NewEngine(graph)
	optimizerSvc := service.NewOptimizerService(graph, engine)

	reg := prometheus.NewRegistry()
	m := api.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(api.PromeHttpMiddleware(m))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	api.OptimizerRouter(r, optimizerSvc, m)

	fmt.Printf("server started at %s\n", *listenAddr)
	log.Fatal(http.ListenAndServe(*listenAddr, r))
}
