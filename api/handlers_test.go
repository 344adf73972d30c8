package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lintang/optiroute/alg"
	"lintang/optiroute/api"
	"lintang/optiroute/seeder"
	"lintang/optiroute/service"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details"`
	} `json:"error"`
	Metadata *struct {
		Timestamp      string  `json:"timestamp"`
		RequestID      string  `json:"requestId"`
		ProcessingTime float64 `json:"processingTime"`
	} `json:"metadata"`
}

func testRouter(t *testing.T) (*chi.Mux, *alg.Engine) {
	t.Helper()
	graph := alg.NewGraph()
	seeder.SeedSampleNetwork(graph, false)
	engine := alg.NewEngine(graph)
	svc := service.NewOptimizerService(graph, engine)

	r := chi.NewRouter()
	m := api.NewMetrics(prometheus.NewRegistry())
	api.OptimizerRouter(r, svc, m)
	return r, engine
}

func doJSON(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestNetworkEndpoints(t *testing.T) {
	r, _ := testRouter(t)

	t.Run("get network returns nodes, edges and stats", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodGet, "/api/network", "")
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, env.Success)
		require.NotNil(t, env.Metadata)
		assert.NotEmpty(t, env.Metadata.RequestID)

		var snapshot service.NetworkSnapshot
		require.NoError(t, json.Unmarshal(env.Data, &snapshot))
		assert.Len(t, snapshot.Nodes, 12)
		assert.Len(t, snapshot.Edges, 32)
		assert.Equal(t, 12, snapshot.Stats.NodeCount)
	})

	t.Run("add node requires id, name, type and coordinates", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/network/nodes",
			`{"id":"x-hub","type":"hub","coordinates":{"lat":1,"lng":1}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("add node rejects out-of-range coordinates", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/network/nodes",
			`{"id":"x-hub","name":"X","type":"hub","coordinates":{"lat":120,"lng":10}}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		assert.NotNil(t, env.Error.Details)
	})

	t.Run("add node then read it back", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/network/nodes",
			`{"id":"denver-hub","name":"Denver Hub","type":"hub","coordinates":{"lat":39.7392,"lng":-104.9903}}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Success)

		_, env = doJSON(t, r, http.MethodGet, "/api/network", "")
		var snapshot service.NetworkSnapshot
		require.NoError(t, json.Unmarshal(env.Data, &snapshot))
		assert.Len(t, snapshot.Nodes, 13)
	})

	t.Run("add edge requires id, source, target and mode", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/network/edges",
			`{"id":"e-x","source":"la-hub","target":"denver-hub"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("add and delete an edge", func(t *testing.T) {
		rec, _ := doJSON(t, r, http.MethodPost, "/api/network/edges",
			`{"id":"edge-la-denver-road","source":"la-hub","target":"denver-hub","mode":"road","distance":1630,"baseTime":2445,"baseCost":1330,"capacity":24000,"reliability":0.94,"carbonEmissions":0.9,"fuelCost":300}`)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = doJSON(t, r, http.MethodDelete, "/api/network/edges/edge-la-denver-road", "")
		assert.Equal(t, http.StatusOK, rec.Code)

		rec, env := doJSON(t, r, http.MethodDelete, "/api/network/edges/edge-la-denver-road", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
	})

	t.Run("delete unknown node is not found", func(t *testing.T) {
		rec, _ := doJSON(t, r, http.MethodDelete, "/api/network/nodes/ghost", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouteEndpoints(t *testing.T) {
	r, engine := testRouter(t)

	t.Run("optimize with defaults returns a route", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/routes/optimize",
			`{"origin":"la-hub","destination":"ny-hub"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, env.Success)

		var route alg.Route
		require.NoError(t, json.Unmarshal(env.Data, &route))
		assert.True(t, strings.HasPrefix(route.ID, "route-"))
		require.NotEmpty(t, route.Segments)
		assert.Equal(t, "la-hub", route.Segments[0].From.ID)
		assert.Equal(t, "ny-hub", route.Segments[len(route.Segments)-1].To.ID)
		require.NotNil(t, route.Metadata)
	})

	t.Run("optimize without destination is invalid input", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/routes/optimize", `{"origin":"la-hub"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})

	t.Run("optimize from an unknown origin is not found", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/routes/optimize",
			`{"origin":"atlantis","destination":"ny-hub"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NO_ROUTE_FOUND", env.Error.Code)
	})

	t.Run("pareto evaluates the full weight grid", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/routes/pareto",
			`{"origin":"la-hub","destination":"ny-hub"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var frontier alg.ParetoFrontier
		require.NoError(t, json.Unmarshal(env.Data, &frontier))
		assert.Equal(t, 56, frontier.PointsEvaluated)
		assert.NotEmpty(t, frontier.Candidates)
		assert.Equal(t, []string{"minimize_cost", "minimize_time", "minimize_carbon"}, frontier.Objectives)
	})

	t.Run("scenario with an unknown preset is rejected", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/routes/scenario",
			`{"origin":"la-hub","destination":"ny-hub","scenario":"teleport"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_SCENARIO", env.Error.Code)
	})

	t.Run("scenario fastest returns the air corridor", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/routes/scenario",
			`{"origin":"lax-airport","destination":"jfk-airport","scenario":"fastest"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var route alg.Route
		require.NoError(t, json.Unmarshal(env.Data, &route))
		require.Len(t, route.Segments, 1)
		assert.Equal(t, "edge-lax-jfk-air", route.Segments[0].Edge.ID)
	})

	t.Run("reoptimize detours around a disrupted edge", func(t *testing.T) {
		config, _ := alg.ScenarioConfig("fastest")
		current, found := engine.FindOptimalRoute("ny-hub", "la-hub", nil, config)
		require.True(t, found)

		body, err := json.Marshal(map[string]interface{}{
			"route":           current,
			"currentPosition": "ny-hub",
			"disruptedEdges":  []string{"edge-jfk-lax-air"},
		})
		require.NoError(t, err)

		rec, env := doJSON(t, r, http.MethodPost, "/api/routes/reoptimize", string(body))
		require.Equal(t, http.StatusOK, rec.Code)

		var route alg.Route
		require.NoError(t, json.Unmarshal(env.Data, &route))
		for _, seg := range route.Segments {
			assert.NotEqual(t, "edge-jfk-lax-air", seg.Edge.ID)
		}
	})

	t.Run("reoptimize without a position is invalid input", func(t *testing.T) {
		rec, env := doJSON(t, r, http.MethodPost, "/api/routes/reoptimize",
			`{"route":{"id":"r","segments":[]},"disruptedEdges":[]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_INPUT", env.Error.Code)
	})
}
