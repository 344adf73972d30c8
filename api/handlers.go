package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"

	"lintang/optiroute/alg"
	"lintang/optiroute/domain"
	"lintang/optiroute/service"
	"lintang/optiroute/util"
)

type OptimizerService interface {
	GetNetwork(ctx context.Context) service.NetworkSnapshot
	AddNode(ctx context.Context, n alg.Node)
	AddEdge(ctx context.Context, e alg.Edge)
	RemoveNode(ctx context.Context, id string) error
	RemoveEdge(ctx context.Context, id string) error
	OptimizeRoute(ctx context.Context, origin, destination string, constraints *alg.Constraints, config alg.RouteConfig) (*alg.Route, error)
	ParetoRoutes(ctx context.Context, origin, destination string, constraints *alg.Constraints, objectives []string) (*alg.ParetoFrontier, error)
	ScenarioRoute(ctx context.Context, origin, destination, scenario string) (*alg.Route, error)
	Reoptimize(ctx context.Context, currentRoute *alg.Route, currentPosition string, disruptedEdges []string) (*alg.Route, error)
}

type OptimizerHandler struct {
	svc          OptimizerService
	promeMetrics *metrics
}

func OptimizerRouter(r *chi.Mux, svc OptimizerService, m *metrics) {
	handler := &OptimizerHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/network", func(r chi.Router) {
			r.Get("/", handler.getNetwork)
			r.Post("/nodes", handler.addNode)
			r.Post("/edges", handler.addEdge)
			r.Delete("/nodes/{id}", handler.deleteNode)
			r.Delete("/edges/{id}", handler.deleteEdge)
		})
		r.Route("/api/routes", func(r chi.Router) {
			r.Post("/optimize", handler.optimizeRoute)
			r.Post("/pareto", handler.paretoRoutes)
			r.Post("/scenario", handler.scenarioRoute)
			r.Post("/reoptimize", handler.reoptimizeRoute)
		})
	})
}

// Envelope is the uniform response body: exactly one of Data or Error is
// set, Metadata always.
type Envelope struct {
	Success  bool              `json:"success"`
	Data     interface{}       `json:"data,omitempty"`
	Error    *ErrorBody        `json:"error,omitempty"`
	Metadata *EnvelopeMetadata `json:"metadata"`
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type EnvelopeMetadata struct {
	Timestamp      string  `json:"timestamp"`
	RequestID      string  `json:"requestId"`
	ProcessingTime float64 `json:"processingTime"`
}

func newMetadata(began time.Time) *EnvelopeMetadata {
	return &EnvelopeMetadata{
		Timestamp:      time.Now().UTC().Format(time.RFC3339),
		RequestID:      uuid.NewString(),
		ProcessingTime: util.RoundFloat(float64(time.Since(began).Microseconds())/1000.0, 3),
	}
}

func renderData(w http.ResponseWriter, r *http.Request, data interface{}, began time.Time) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &Envelope{
		Success:  true,
		Data:     data,
		Metadata: newMetadata(began),
	})
}

// NodeRequest model info
//
//	@Description	request body for adding a network node
type NodeRequest struct {
	ID              string              `json:"id" validate:"required"`
	Name            string              `json:"name" validate:"required"`
	Type            string              `json:"type" validate:"required"`
	Coordinates     *CoordinatesRequest `json:"coordinates" validate:"required"`
	Capacity        float64             `json:"capacity" validate:"gte=0"`
	FixedCosts      float64             `json:"fixedCosts" validate:"gte=0"`
	DwellTime       float64             `json:"dwellTime" validate:"gte=0"`
	OperatingHours  *alg.OperatingHours `json:"operatingHours"`
	Facilities      []string            `json:"facilities"`
	CustomsRequired bool                `json:"customsRequired"`
}

type CoordinatesRequest struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gt=-180,lte=180"`
}

func (n *NodeRequest) Bind(r *http.Request) error {
	if n.ID == "" || n.Name == "" || n.Type == "" || n.Coordinates == nil {
		return errors.New("id, name, type and coordinates are required")
	}
	return nil
}

// EdgeRequest model info
//
//	@Description	request body for adding a network edge
type EdgeRequest struct {
	ID              string  `json:"id" validate:"required"`
	Source          string  `json:"source" validate:"required"`
	Target          string  `json:"target" validate:"required"`
	Mode            string  `json:"mode" validate:"required,oneof=road rail sea air intermodal"`
	Distance        float64 `json:"distance" validate:"gte=0"`
	BaseTime        float64 `json:"baseTime" validate:"gte=0"`
	BaseCost        float64 `json:"baseCost" validate:"gte=0"`
	Capacity        float64 `json:"capacity" validate:"gte=0"`
	Reliability     float64 `json:"reliability" validate:"gte=0,lte=1"`
	CarbonEmissions float64 `json:"carbonEmissions" validate:"gte=0"`
	FuelCost        float64 `json:"fuelCost" validate:"gte=0"`
	TollCost        float64 `json:"tollCost" validate:"gte=0"`
	SpeedLimit      float64 `json:"speedLimit" validate:"gte=0"`
	RoadQuality     float64 `json:"roadQuality" validate:"gte=0"`
}

func (e *EdgeRequest) Bind(r *http.Request) error {
	if e.ID == "" || e.Source == "" || e.Target == "" || e.Mode == "" {
		return errors.New("id, source, target and mode are required")
	}
	return nil
}

// RouteConfigRequest model info
//
//	@Description	optional solver configuration for an optimize query
type RouteConfigRequest struct {
	Objectives      []string     `json:"objectives"`
	Weights         *alg.Weights `json:"weights"`
	Algorithm       string       `json:"algorithm"`
	ConsiderTraffic *bool        `json:"considerTraffic"`
	ConsiderWeather *bool        `json:"considerWeather"`
	Stochastic      bool         `json:"stochastic"`
	ConfidenceLevel float64      `json:"confidenceLevel"`
}

// toRouteConfig applies the §6 defaults: weights cost/time 0.5 each, hybrid
// algorithm, traffic and weather on, stochastic off.
func (c *RouteConfigRequest) toRouteConfig() alg.RouteConfig {
	config := alg.RouteConfig{
		Algorithm:       alg.AlgorithmHybrid,
		Weights:         alg.Weights{Cost: 0.5, Time: 0.5},
		ConsiderTraffic: true,
		ConsiderWeather: true,
	}
	if c == nil {
		return config
	}
	if c.Algorithm != "" {
		config.Algorithm = alg.Algorithm(c.Algorithm)
	}
	if c.Weights != nil {
		config.Weights = *c.Weights
	}
	if c.ConsiderTraffic != nil {
		config.ConsiderTraffic = *c.ConsiderTraffic
	}
	if c.ConsiderWeather != nil {
		config.ConsiderWeather = *c.ConsiderWeather
	}
	config.Stochastic = c.Stochastic
	config.ConfidenceLevel = c.ConfidenceLevel
	return config
}

// OptimizeRouteRequest model info
//
//	@Description	request body for the single best-route query
type OptimizeRouteRequest struct {
	Origin      string              `json:"origin" validate:"required"`
	Destination string              `json:"destination" validate:"required"`
	Constraints *alg.Constraints    `json:"constraints"`
	Config      *RouteConfigRequest `json:"config"`
}

func (o *OptimizeRouteRequest) Bind(r *http.Request) error {
	if o.Origin == "" || o.Destination == "" {
		return errors.New("origin and destination are required")
	}
	return nil
}

// ParetoRequest model info
//
//	@Description	request body for the Pareto frontier query
type ParetoRequest struct {
	Origin      string           `json:"origin" validate:"required"`
	Destination string           `json:"destination" validate:"required"`
	Constraints *alg.Constraints `json:"constraints"`
	Objectives  []string         `json:"objectives"`
}

func (p *ParetoRequest) Bind(r *http.Request) error {
	if p.Origin == "" || p.Destination == "" {
		return errors.New("origin and destination are required")
	}
	return nil
}

// ScenarioRequest model info
//
//	@Description	request body for a named scenario query
type ScenarioRequest struct {
	Origin      string `json:"origin" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Scenario    string `json:"scenario" validate:"required"`
}

func (s *ScenarioRequest) Bind(r *http.Request) error {
	if s.Origin == "" || s.Destination == "" || s.Scenario == "" {
		return errors.New("origin, destination and scenario are required")
	}
	return nil
}

// ReoptimizeRequest model info
//
//	@Description	request body for disruption re-routing
type ReoptimizeRequest struct {
	Route           *alg.Route `json:"route" validate:"required"`
	CurrentPosition string     `json:"currentPosition" validate:"required"`
	DisruptedEdges  []string   `json:"disruptedEdges"`
}

func (re *ReoptimizeRequest) Bind(r *http.Request) error {
	if re.Route == nil || re.CurrentPosition == "" {
		return errors.New("route and currentPosition are required")
	}
	return nil
}

// getNetwork
//
//	@Summary		current network snapshot: nodes, edges and stats.
//	@Tags			network
//	@Produce		application/json
//	@Router			/network [get]
//	@Success		200	{object}	Envelope
func (h *OptimizerHandler) getNetwork(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	renderData(w, r, h.svc.GetNetwork(r.Context()), began)
}

// addNode
//
//	@Summary		upsert a network node.
//	@Tags			network
//	@Param			body	body	NodeRequest	true	"node to add"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/network/nodes [post]
//	@Success		200	{object}	Envelope
//	@Failure		400	{object}	Envelope
func (h *OptimizerHandler) addNode(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	data := &NodeRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errs, ok := validateStruct(*data); !ok {
		render.Render(w, r, ErrValidation(errs))
		return
	}

	node := alg.Node{
		ID:              data.ID,
		Name:            data.Name,
		Type:            alg.NodeType(data.Type),
		Coordinates:     alg.Coordinates{Lat: *data.Coordinates.Lat, Lng: *data.Coordinates.Lng},
		Capacity:        data.Capacity,
		FixedCosts:      data.FixedCosts,
		DwellTime:       data.DwellTime,
		OperatingHours:  data.OperatingHours,
		Facilities:      data.Facilities,
		CustomsRequired: data.CustomsRequired,
	}
	h.svc.AddNode(r.Context(), node)
	renderData(w, r, node, began)
}

// addEdge
//
//	@Summary		upsert a network edge.
//	@Tags			network
//	@Param			body	body	EdgeRequest	true	"edge to add"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/network/edges [post]
//	@Success		200	{object}	Envelope
//	@Failure		400	{object}	Envelope
func (h *OptimizerHandler) addEdge(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	data := &EdgeRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errs, ok := validateStruct(*data); !ok {
		render.Render(w, r, ErrValidation(errs))
		return
	}

	edge := alg.Edge{
		ID:              data.ID,
		Source:          data.Source,
		Target:          data.Target,
		Mode:            alg.TransportMode(data.Mode),
		Distance:        data.Distance,
		BaseTime:        data.BaseTime,
		BaseCost:        data.BaseCost,
		Capacity:        data.Capacity,
		Reliability:     data.Reliability,
		CarbonEmissions: data.CarbonEmissions,
		FuelCost:        data.FuelCost,
		TollCost:        data.TollCost,
		SpeedLimit:      data.SpeedLimit,
		RoadQuality:     data.RoadQuality,
	}
	h.svc.AddEdge(r.Context(), edge)
	renderData(w, r, edge, began)
}

// deleteNode
//
//	@Summary		remove a node and every edge touching it.
//	@Tags			network
//	@Produce		application/json
//	@Router			/network/nodes/{id} [delete]
//	@Success		200	{object}	Envelope
//	@Failure		404	{object}	Envelope
func (h *OptimizerHandler) deleteNode(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	id := chi.URLParam(r, "id")
	if err := h.svc.RemoveNode(r.Context(), id); err != nil {
		render.Render(w, r, ErrDomain(err))
		return
	}
	renderData(w, r, map[string]string{"removed": id}, began)
}

// deleteEdge
//
//	@Summary		remove an edge.
//	@Tags			network
//	@Produce		application/json
//	@Router			/network/edges/{id} [delete]
//	@Success		200	{object}	Envelope
//	@Failure		404	{object}	Envelope
func (h *OptimizerHandler) deleteEdge(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	id := chi.URLParam(r, "id")
	if err := h.svc.RemoveEdge(r.Context(), id); err != nil {
		render.Render(w, r, ErrDomain(err))
		return
	}
	renderData(w, r, map[string]string{"removed": id}, began)
}

// optimizeRoute
//
//	@Summary		best route between two nodes under weights and constraints.
//	@Tags			routes
//	@Param			body	body	OptimizeRouteRequest	true	"optimize query"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/optimize [post]
//	@Success		200	{object}	Envelope
//	@Failure		400	{object}	Envelope
//	@Failure		404	{object}	Envelope
func (h *OptimizerHandler) optimizeRoute(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	data := &OptimizeRouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errs, ok := validateStruct(*data); !ok {
		render.Render(w, r, ErrValidation(errs))
		return
	}

	config := data.Config.toRouteConfig()
	h.promeMetrics.RouteQueryCount.WithLabelValues(string(config.Algorithm)).Inc()

	route, err := h.svc.OptimizeRoute(r.Context(), data.Origin, data.Destination, data.Constraints, config)
	if err != nil {
		render.Render(w, r, ErrDomain(err))
		return
	}
	renderData(w, r, route, began)
}

// paretoRoutes
//
//	@Summary		Pareto frontier over cost, time, carbon and risk.
//	@Tags			routes
//	@Param			body	body	ParetoRequest	true	"pareto query"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/pareto [post]
//	@Success		200	{object}	Envelope
//	@Failure		400	{object}	Envelope
func (h *OptimizerHandler) paretoRoutes(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	data := &ParetoRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errs, ok := validateStruct(*data); !ok {
		render.Render(w, r, ErrValidation(errs))
		return
	}

	h.promeMetrics.RouteQueryCount.WithLabelValues("pareto").Inc()

	frontier, err := h.svc.ParetoRoutes(r.Context(), data.Origin, data.Destination, data.Constraints, data.Objectives)
	if err != nil {
		render.Render(w, r, ErrDomain(err))
		return
	}
	renderData(w, r, frontier, began)
}

// scenarioRoute
//
//	@Summary		route for a named scenario preset.
//	@Tags			routes
//	@Param			body	body	ScenarioRequest	true	"scenario query"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/scenario [post]
//	@Success		200	{object}	Envelope
//	@Failure		400	{object}	Envelope
//	@Failure		404	{object}	Envelope
func (h *OptimizerHandler) scenarioRoute(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	data := &ScenarioRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errs, ok := validateStruct(*data); !ok {
		render.Render(w, r, ErrValidation(errs))
		return
	}

	h.promeMetrics.RouteQueryCount.WithLabelValues(data.Scenario).Inc()

	route, err := h.svc.ScenarioRoute(r.Context(), data.Origin, data.Destination, data.Scenario)
	if err != nil {
		render.Render(w, r, ErrDomain(err))
		return
	}
	renderData(w, r, route, began)
}

// reoptimizeRoute
//
//	@Summary		re-route around temporarily unavailable edges.
//	@Tags			routes
//	@Param			body	body	ReoptimizeRequest	true	"reoptimize query"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/routes/reoptimize [post]
//	@Success		200	{object}	Envelope
//	@Failure		400	{object}	Envelope
//	@Failure		404	{object}	Envelope
func (h *OptimizerHandler) reoptimizeRoute(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	data := &ReoptimizeRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}
	if errs, ok := validateStruct(*data); !ok {
		render.Render(w, r, ErrValidation(errs))
		return
	}

	h.promeMetrics.RouteQueryCount.WithLabelValues("reoptimize").Inc()

	route, err := h.svc.Reoptimize(r.Context(), data.Route, data.CurrentPosition, data.DisruptedEdges)
	if err != nil {
		render.Render(w, r, ErrDomain(err))
		return
	}
	renderData(w, r, route, began)
}

// ErrResponse model info
//
//	@Description	envelope-shaped error response
type ErrResponse struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	Success  bool              `json:"success"`
	ErrBody  *ErrorBody        `json:"error"`
	Metadata *EnvelopeMetadata `json:"metadata"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	e.Metadata = newMetadata(time.Now())
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		ErrBody: &ErrorBody{
			Code:    "INVALID_INPUT",
			Message: err.Error(),
		},
	}
}

func ErrValidation(errs []error) render.Renderer {
	details := []string{}
	for _, v := range errs {
		details = append(details, v.Error())
	}
	return &ErrResponse{
		Err:            errors.New("validation failed"),
		HTTPStatusCode: http.StatusBadRequest,
		ErrBody: &ErrorBody{
			Code:    "INVALID_INPUT",
			Message: "request validation failed",
			Details: details,
		},
	}
}

// ErrDomain maps a domain error code onto the HTTP status and envelope code.
func ErrDomain(err error) render.Renderer {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"

	var ierr *domain.Error
	if errors.As(err, &ierr) {
		switch ierr.Code() {
		case domain.ErrNotFound:
			status = http.StatusNotFound
			code = "NO_ROUTE_FOUND"
		case domain.ErrBadParamInput:
			status = http.StatusBadRequest
			code = "INVALID_INPUT"
		case domain.ErrInvalidScenario:
			status = http.StatusBadRequest
			code = "INVALID_SCENARIO"
		}
	}

	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		ErrBody: &ErrorBody{
			Code:    code,
			Message: err.Error(),
		},
	}
}

func validateStruct(data interface{}) ([]error, bool) {
	validate := validator.New()
	err := validate.Struct(data)
	if err == nil {
		return nil, true
	}

	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return translateError(err, trans), false
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	validatorErrs := err.(validator.ValidationErrors)
	for _, e := range validatorErrs {
		errs = append(errs, fmt.Errorf(e.Translate(trans)))
	}
	return errs
}
