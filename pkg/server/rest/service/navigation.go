package service

import (
	"context"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/engine/heuristics"
	"lintang/routesearch/pkg/engine/localsearch"
	"lintang/routesearch/pkg/engine/search"
	"lintang/routesearch/pkg/problem"
	"lintang/routesearch/pkg/report"
	"lintang/routesearch/pkg/routedata"
	"lintang/routesearch/pkg/server"
	"lintang/routesearch/pkg/spatial"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Endpoint intersection id, atau koordinat yang di-snap ke intersection terdekat.
type Endpoint struct {
	ID  *int64
	Lat *float64
	Lon *float64
}

type RouteQuery struct {
	From      Endpoint
	To        Endpoint
	Algorithm string
	Heuristic string
	Cost      string
	AvgSpeed  float64
}

// SnapInfo hasil snapping koordinat ke road network.
type SnapInfo struct {
	Intersection int64                     `json:"intersection"`
	DistanceM    float64                   `json:"distance_m"`
	OnRoad       *datastructure.Coordinate `json:"on_road,omitempty"`
}

type RouteResult struct {
	Summary report.Summary
	From    *SnapInfo
	To      *SnapInfo
}

type Neighbor struct {
	ID         int64   `json:"id"`
	Distance   float64 `json:"distance"`
	Speed      float64 `json:"speed"`
	TravelTime float64 `json:"travel_time"`
	StreetName string  `json:"street_name,omitempty"`
}

type IntersectionInfo struct {
	ID        int64                     `json:"id"`
	Coord     *datastructure.Coordinate `json:"coordinate,omitempty"`
	Neighbors []Neighbor                `json:"neighbors"`
}

type FacilityQuery struct {
	Algorithm string
	Stations  int
	Seed      uint64
	Network   bool
}

type NavigationService struct {
	ds      *routedata.Dataset
	index   spatial.Index
	workers int
	log     zerolog.Logger
}

func NewNavigationService(ds *routedata.Dataset, index spatial.Index, workers int, logger zerolog.Logger) *NavigationService {
	return &NavigationService{ds: ds, index: index, workers: workers, log: logger}
}

func (uc *NavigationService) resolve(ep Endpoint) (int64, *SnapInfo, error) {
	if ep.ID != nil {
		if _, ok := uc.ds.Graph.Intersection(*ep.ID); !ok {
			return 0, nil, server.WrapErrorf(nil, server.ErrNotFound, "intersection %d not found", *ep.ID)
		}
		return *ep.ID, nil, nil
	}
	if ep.Lat == nil || ep.Lon == nil {
		return 0, nil, server.WrapErrorf(nil, server.ErrBadParamInput, "either id or lat/lon must be given")
	}
	if uc.index == nil {
		return 0, nil, server.WrapErrorf(nil, server.ErrBadParamInput, "coordinate snapping is disabled")
	}

	m, err := uc.index.Nearest(*ep.Lat, *ep.Lon)
	if err != nil {
		return 0, nil, server.WrapErrorf(err, server.ErrNotFound, "sorry!! the location (%f, %f) is not covered by the road network", *ep.Lat, *ep.Lon)
	}
	return m.Intersection.ID, &SnapInfo{
		Intersection: m.Intersection.ID,
		DistanceM:    m.DistanceM,
		OnRoad:       uc.onRoad(datastructure.NewCoordinate(*ep.Lat, *ep.Lon), m.Intersection),
	}, nil
}

// onRoad proyeksi titik ke segment keluar terdekat dari intersection hasil snapping.
func (uc *NavigationService) onRoad(p datastructure.Coordinate, in datastructure.Intersection) *datastructure.Coordinate {
	if in.Coord == nil {
		return nil
	}
	best := *in.Coord
	bestDist := -1.0
	for _, seg := range uc.ds.Graph.OutSegments(in.ID) {
		dst, ok := uc.ds.Graph.Intersection(seg.Destination)
		if !ok || dst.Coord == nil {
			continue
		}
		d := spatial.DistanceToSegmentM(p, *in.Coord, *dst.Coord)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = spatial.ProjectToSegment(p, *in.Coord, *dst.Coord)
		}
	}
	return &best
}

func (uc *NavigationService) buildProblem(q RouteQuery) (*problem.RoutingProblem, *SnapInfo, *SnapInfo, error) {
	from, fromSnap, err := uc.resolve(q.From)
	if err != nil {
		return nil, nil, nil, err
	}
	to, toSnap, err := uc.resolve(q.To)
	if err != nil {
		return nil, nil, nil, err
	}
	opts := []problem.Option{}
	if q.Cost != "" {
		opt, err := problem.CostOption(q.Cost)
		if err != nil {
			return nil, nil, nil, server.WrapErrorf(err, server.ErrBadParamInput, "%s", err.Error())
		}
		opts = append(opts, opt)
	}
	p, err := problem.New(uc.ds.Graph, from, to, opts...)
	if err != nil {
		return nil, nil, nil, server.WrapErrorf(err, server.ErrNotFound, "%s", err.Error())
	}
	return p, fromSnap, toSnap, nil
}

func (uc *NavigationService) heuristicFactory(name string, avgSpeed float64) (heuristics.Factory, error) {
	if name == "" {
		name = heuristics.NameGeodesic
	}
	hf, err := heuristics.NewFactory(name, avgSpeed)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrBadParamInput, "%s", err.Error())
	}
	return hf, nil
}

func (uc *NavigationService) ShortestPath(ctx context.Context, q RouteQuery) (*RouteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, fromSnap, toSnap, err := uc.buildProblem(q)
	if err != nil {
		return nil, err
	}
	hf, err := uc.heuristicFactory(q.Heuristic, q.AvgSpeed)
	if err != nil {
		return nil, err
	}
	algorithm := q.Algorithm
	if algorithm == "" {
		algorithm = search.NameAStar
	}
	strategy, err := search.New(algorithm, hf(p.Goal()))
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrBadParamInput, "%s", err.Error())
	}

	res := strategy.Search(p)
	res.RunID = uuid.NewString()
	uc.log.Info().
		Str("run_id", res.RunID).
		Str("strategy", res.Strategy).
		Int64("from", p.Initial().ID).
		Int64("to", p.Goal().ID).
		Str("status", res.Status.String()).
		Int("expanded", res.Expanded).
		Dur("elapsed", res.Elapsed).
		Msg("route search")

	return &RouteResult{Summary: report.Summarize(res), From: fromSnap, To: toSnap}, nil
}

func (uc *NavigationService) Compare(ctx context.Context, q RouteQuery, algorithms []string) ([]report.Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(algorithms) == 0 {
		algorithms = search.Names()
	}
	p, _, _, err := uc.buildProblem(q)
	if err != nil {
		return nil, err
	}
	hf, err := uc.heuristicFactory(q.Heuristic, q.AvgSpeed)
	if err != nil {
		return nil, err
	}
	results, err := search.Compare(p, algorithms, hf, uc.workers)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrBadParamInput, "%s", err.Error())
	}

	summaries := make([]report.Summary, 0, len(results))
	for _, res := range results {
		uc.log.Debug().
			Str("run_id", res.RunID).
			Str("strategy", res.Strategy).
			Str("status", res.Status.String()).
			Int("generated", res.Generated).
			Int("expanded", res.Expanded).
			Msg("compare run")
		summaries = append(summaries, report.Summarize(res))
	}
	return summaries, nil
}

func (uc *NavigationService) Intersection(ctx context.Context, id int64) (*IntersectionInfo, error) {
	in, ok := uc.ds.Graph.Intersection(id)
	if !ok {
		return nil, server.WrapErrorf(nil, server.ErrNotFound, "intersection %d not found", id)
	}
	info := &IntersectionInfo{ID: in.ID, Coord: in.Coord, Neighbors: []Neighbor{}}
	for _, seg := range uc.ds.Graph.OutSegments(id) {
		info.Neighbors = append(info.Neighbors, Neighbor{
			ID:         seg.Destination,
			Distance:   seg.Distance,
			Speed:      seg.Speed,
			TravelTime: seg.TravelTime(),
			StreetName: seg.StreetName,
		})
	}
	return info, nil
}

func (uc *NavigationService) Facility(ctx context.Context, q FacilityQuery) (*localsearch.Solution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := uc.ds.Doc
	if len(doc.Candidates) == 0 {
		return nil, server.WrapErrorf(nil, server.ErrUnprocessable, "route document has no station candidates")
	}
	stations := q.Stations
	if stations == 0 {
		stations = doc.NumberStations
	}

	candidates := make([]localsearch.Candidate, 0, len(doc.Candidates))
	for _, c := range doc.Candidates {
		candidates = append(candidates, localsearch.Candidate{ID: c.ID, Population: c.Population})
	}
	opts := []localsearch.Option{}
	if q.Network {
		opts = append(opts, localsearch.WithNetworkTravelTime(uc.workers))
	}
	lp, err := localsearch.NewProblem(uc.ds.Graph, candidates, stations, opts...)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrUnprocessable, "%s", err.Error())
	}

	algorithm := q.Algorithm
	if algorithm == "" {
		algorithm = localsearch.GeneticAlgorithmName
	}
	solver, err := localsearch.NewSolver(algorithm, q.Seed)
	if err != nil {
		return nil, server.WrapErrorf(err, server.ErrBadParamInput, "%s", err.Error())
	}

	sol := solver.Solve(lp)
	uc.log.Info().
		Str("algorithm", sol.Algorithm).
		Int("stations", stations).
		Float64("fitness", sol.Fitness).
		Int("evaluations", lp.Evaluations()).
		Dur("elapsed", sol.Elapsed).
		Msg("facility location")
	return sol, nil
}
