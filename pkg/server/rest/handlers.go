package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"lintang/routesearch/pkg/engine/localsearch"
	"lintang/routesearch/pkg/report"
	"lintang/routesearch/pkg/server"
	"lintang/routesearch/pkg/server/rest/service"
	"lintang/routesearch/pkg/util"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

type NavigationService interface {
	ShortestPath(ctx context.Context, q service.RouteQuery) (*service.RouteResult, error)
	Compare(ctx context.Context, q service.RouteQuery, algorithms []string) ([]report.Summary, error)
	Intersection(ctx context.Context, id int64) (*service.IntersectionInfo, error)
	Facility(ctx context.Context, q service.FacilityQuery) (*localsearch.Solution, error)
}

type NavigationHandler struct {
	svc          NavigationService
	promeMetrics *metrics
}

func NavigatorRouter(r *chi.Mux, svc NavigationService, m *metrics) {
	handler := &NavigationHandler{svc, m}

	r.Group(func(r chi.Router) {
		r.Route("/api/search", func(r chi.Router) {
			r.Post("/route", handler.shortestPath)
			r.Post("/compare", handler.compare)
			r.Get("/intersections/{id}", handler.intersection)
			r.Post("/facility", handler.facility)
		})
	})
}

// EndpointRequest model info
//
//	@Description	intersection id, atau koordinat yang di-snap ke intersection terdekat
type EndpointRequest struct {
	ID  *int64   `json:"id,omitempty"`
	Lat *float64 `json:"lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Lon *float64 `json:"lon,omitempty" validate:"omitempty,gte=-180,lte=180"`
}

func (e EndpointRequest) empty() bool {
	return e.ID == nil && (e.Lat == nil || e.Lon == nil)
}

func (e EndpointRequest) toEndpoint() service.Endpoint {
	return service.Endpoint{ID: e.ID, Lat: e.Lat, Lon: e.Lon}
}

// RouteRequest model info
//
//	@Description	request body untuk route search antara 2 intersection
type RouteRequest struct {
	From      EndpointRequest `json:"from"`
	To        EndpointRequest `json:"to"`
	Algorithm string          `json:"algorithm,omitempty" validate:"omitempty,max=32"`
	Heuristic string          `json:"heuristic,omitempty" validate:"omitempty,oneof=zero manhattan euclidean geodesic haversine"`
	Cost      string          `json:"cost,omitempty" validate:"omitempty,oneof=time distance"`
	AvgSpeed  float64         `json:"avg_speed,omitempty" validate:"omitempty,gt=0"`
}

func (s *RouteRequest) Bind(r *http.Request) error {
	if s.From.empty() || s.To.empty() {
		return errors.New("invalid request: from and to need an id or lat/lon")
	}
	return nil
}

func (s *RouteRequest) toQuery() service.RouteQuery {
	return service.RouteQuery{
		From:      s.From.toEndpoint(),
		To:        s.To.toEndpoint(),
		Algorithm: s.Algorithm,
		Heuristic: s.Heuristic,
		Cost:      s.Cost,
		AvgSpeed:  s.AvgSpeed,
	}
}

// RouteResponse model info
//
//	@Description	response body untuk route search
type RouteResponse struct {
	Result   report.Summary    `json:"result"`
	FromSnap *service.SnapInfo `json:"from_snap,omitempty"`
	ToSnap   *service.SnapInfo `json:"to_snap,omitempty"`
	Cost     string            `json:"solution_cost_time"`
}

// shortestPath
//
//	@Summary		route search antara 2 intersection pakai bfs, dfs, ucs, astar atau gbfs.
//	@Description	route search antara 2 intersection. endpoint bisa intersection id atau koordinat.
//	@Tags			search
//	@Param			body	body	RouteRequest	true	"request body route search"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/search/route [post]
//	@Success		200	{object}	RouteResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) shortestPath(w http.ResponseWriter, r *http.Request) {
	data := &RouteRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	res, err := h.svc.ShortestPath(r.Context(), data.toQuery())
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.SearchQueryCount.WithLabelValues(res.Summary.Strategy, res.Summary.Status).Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &RouteResponse{
		Result:   res.Summary,
		FromSnap: res.From,
		ToSnap:   res.To,
		Cost:     report.FormatSeconds(res.Summary.Cost),
	})
}

// CompareRequest model info
//
//	@Description	request body untuk menjalankan beberapa strategy di problem yang sama
type CompareRequest struct {
	RouteRequest
	Algorithms []string `json:"algorithms,omitempty" validate:"omitempty,max=10,dive,required"`
}

// CompareResponse model info
//
//	@Description	response body compare, urutan sama dengan request
type CompareResponse struct {
	Results []report.Summary `json:"results"`
}

// compare
//
//	@Summary		jalankan beberapa search strategy secara paralel.
//	@Description	jalankan beberapa search strategy secara paralel di problem yang sama. default semua strategy.
//	@Tags			search
//	@Param			body	body	CompareRequest	true	"request body compare"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/search/compare [post]
//	@Success		200	{object}	CompareResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) compare(w http.ResponseWriter, r *http.Request) {
	data := &CompareRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	results, err := h.svc.Compare(r.Context(), data.toQuery(), data.Algorithms)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	for _, res := range results {
		h.promeMetrics.SearchQueryCount.WithLabelValues(res.Strategy, res.Status).Inc()
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, &CompareResponse{Results: results})
}

// intersection
//
//	@Summary		detail intersection dan segment keluarnya.
//	@Tags			search
//	@Param			id	path	int	true	"intersection id"
//	@Produce		application/json
//	@Router			/search/intersections/{id} [get]
//	@Success		200	{object}	service.IntersectionInfo
//	@Failure		400	{object}	ErrResponse
//	@Failure		404	{object}	ErrResponse
func (h *NavigationHandler) intersection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(errors.New("intersection id must be an integer")))
		return
	}

	info, err := h.svc.Intersection(r.Context(), id)
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, info)
}

// FacilityRequest model info
//
//	@Description	request body untuk facility location (penempatan station) pakai local search
type FacilityRequest struct {
	Algorithm string `json:"algorithm,omitempty" validate:"omitempty,oneof=rs hc ils ga sa"`
	Stations  int    `json:"stations,omitempty" validate:"gte=0"`
	Seed      uint64 `json:"seed,omitempty"`
	Network   bool   `json:"network,omitempty"`
}

func (s *FacilityRequest) Bind(r *http.Request) error {
	return nil
}

// FacilityResponse model info
//
//	@Description	response body facility location
type FacilityResponse struct {
	Algorithm   string  `json:"algorithm"`
	Stations    []int64 `json:"stations"`
	Fitness     float64 `json:"fitness"`
	FitnessTime string  `json:"fitness_time"`
	Iterations  int     `json:"iterations"`
	ElapsedMs   float64 `json:"elapsed_ms"`
}

func NewFacilityResponse(sol *localsearch.Solution) *FacilityResponse {
	return &FacilityResponse{
		Algorithm:   sol.Algorithm,
		Stations:    sol.Stations,
		Fitness:     util.RoundFloat(sol.Fitness, 6),
		FitnessTime: report.FormatSeconds(sol.Fitness),
		Iterations:  sol.Iterations,
		ElapsedMs:   util.RoundFloat(float64(sol.Elapsed.Microseconds())/1000.0, 3),
	}
}

// facility
//
//	@Summary		pilih station dari candidate di route document supaya rata-rata travel time minimal.
//	@Description	facility location pakai random search, hill climbing, iterated local search, genetic algorithm atau simulated annealing.
//	@Tags			search
//	@Param			body	body	FacilityRequest	true	"request body facility location"
//	@Accept			application/json
//	@Produce		application/json
//	@Router			/search/facility [post]
//	@Success		200	{object}	FacilityResponse
//	@Failure		400	{object}	ErrResponse
//	@Failure		422	{object}	ErrResponse
//	@Failure		500	{object}	ErrResponse
func (h *NavigationHandler) facility(w http.ResponseWriter, r *http.Request) {
	data := &FacilityRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return
	}

	validate := validator.New()
	if err := validate.Struct(*data); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		render.Render(w, r, ErrValidation(err, vv))
		return
	}

	sol, err := h.svc.Facility(r.Context(), service.FacilityQuery{
		Algorithm: data.Algorithm,
		Stations:  data.Stations,
		Seed:      data.Seed,
		Network:   data.Network,
	})
	if err != nil {
		render.Render(w, r, ErrChi(err))
		return
	}
	h.promeMetrics.FacilityQueryCount.WithLabelValues(sol.Algorithm).Inc()

	render.Status(r, http.StatusOK)
	render.JSON(w, r, NewFacilityResponse(sol))
}

// ErrResponse model info
//
//	@Description	model untuk error response
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	StatusText    string   `json:"status"`          // user-level status message
	AppCode       int64    `json:"code,omitempty"`  // application-specific error code
	ErrorText     string   `json:"error,omitempty"` // application-level error message, for debugging
	ErrValidation []string `json:"validation,omitempty"`
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

func ErrValidation(err error, errV []error) render.Renderer {
	vv := []string{}
	for _, v := range errV {
		vv = append(vv, v.Error())
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
		ErrValidation:  vv,
	}
}

func ErrInvalidRequest(err error) render.Renderer {
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     "Invalid request.",
		ErrorText:      err.Error(),
	}
}

func ErrChi(err error) render.Renderer {
	code := getStatusCode(err)
	statusText := ""
	switch code {
	case http.StatusNotFound:
		statusText = "Resource not found."
	case http.StatusInternalServerError:
		statusText = "Internal server error."
	case http.StatusUnprocessableEntity:
		statusText = "Unprocessable request."
	case http.StatusBadRequest:
		statusText = "Bad request."
	default:
		statusText = "Error."
	}

	errText := err.Error()
	if code == http.StatusInternalServerError {
		errText = server.ErrInternalServerError.Error()
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: code,
		StatusText:     statusText,
		ErrorText:      errText,
	}
}

func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var ierr *server.Error
	if !errors.As(err, &ierr) {
		return http.StatusInternalServerError
	}
	switch ierr.Code() {
	case server.ErrNotFound:
		return http.StatusNotFound
	case server.ErrBadParamInput:
		return http.StatusBadRequest
	case server.ErrUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func translateError(err error, trans ut.Translator) (errs []error) {
	if err == nil {
		return nil
	}
	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return []error{err}
	}
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
