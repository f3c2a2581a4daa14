package graph

import (
	"fmt"
	"math"
	"sort"

	"lintang/routesearch/pkg/datastructure"
)

// CostFunction maps a segment to its step cost.
type CostFunction func(seg datastructure.Segment) float64

// TravelTime canonical cost, distance / speed.
func TravelTime(seg datastructure.Segment) float64 {
	return seg.TravelTime()
}

func Distance(seg datastructure.Segment) float64 {
	return seg.Distance
}

// RouteGraph immutable adjacency view. out-segments of every intersection are sorted
// by destination id (stable for parallel segments), so neighbor order is reproducible.
// safe for concurrent readers.
type RouteGraph struct {
	intersections map[int64]datastructure.Intersection
	ids           []int64
	out           map[int64][]datastructure.Segment
	numSegments   int
}

func NewRouteGraph(intersections []datastructure.Intersection, segments []datastructure.Segment) (*RouteGraph, error) {
	g := &RouteGraph{
		intersections: make(map[int64]datastructure.Intersection, len(intersections)),
		ids:           make([]int64, 0, len(intersections)),
		out:           make(map[int64][]datastructure.Segment),
	}

	for _, in := range intersections {
		if _, ok := g.intersections[in.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate intersection %d", ErrDataError, in.ID)
		}
		g.intersections[in.ID] = in
		g.ids = append(g.ids, in.ID)
	}
	sort.Slice(g.ids, func(i, j int) bool { return g.ids[i] < g.ids[j] })

	for i, seg := range segments {
		if _, ok := g.intersections[seg.Origin]; !ok {
			return nil, fmt.Errorf("%w: segment %d references unknown origin %d", ErrDataError, i, seg.Origin)
		}
		if _, ok := g.intersections[seg.Destination]; !ok {
			return nil, fmt.Errorf("%w: segment %d references unknown destination %d", ErrDataError, i, seg.Destination)
		}
		if seg.Distance < 0 || math.IsNaN(seg.Distance) {
			return nil, fmt.Errorf("%w: segment %d (%d -> %d) has negative distance %v", ErrDataError, i, seg.Origin, seg.Destination, seg.Distance)
		}
		if !(seg.Speed > 0) {
			return nil, fmt.Errorf("%w: segment %d (%d -> %d) has non positive speed %v", ErrDataError, i, seg.Origin, seg.Destination, seg.Speed)
		}
		g.out[seg.Origin] = append(g.out[seg.Origin], seg)
		g.numSegments++
	}

	for id := range g.out {
		segs := g.out[id]
		sort.SliceStable(segs, func(i, j int) bool {
			return segs[i].Destination < segs[j].Destination
		})
	}

	return g, nil
}

func (g *RouteGraph) Intersection(id int64) (datastructure.Intersection, bool) {
	in, ok := g.intersections[id]
	return in, ok
}

// State state dari intersection id, lengkap dengan koordinat.
func (g *RouteGraph) State(id int64) (datastructure.State, bool) {
	in, ok := g.intersections[id]
	if !ok {
		return datastructure.State{}, false
	}
	return in.State(), true
}

// Intersections sorted by id.
func (g *RouteGraph) Intersections() []datastructure.Intersection {
	res := make([]datastructure.Intersection, 0, len(g.ids))
	for _, id := range g.ids {
		res = append(res, g.intersections[id])
	}
	return res
}

func (g *RouteGraph) NumIntersections() int {
	return len(g.ids)
}

func (g *RouteGraph) NumSegments() int {
	return g.numSegments
}

// OutSegments outgoing segments in destination order. the returned slice must not be modified.
func (g *RouteGraph) OutSegments(id int64) []datastructure.Segment {
	return g.out[id]
}

// Neighbors successors of s in ascending destination id. unknown states have none.
// a nil costFn means TravelTime.
func (g *RouteGraph) Neighbors(s datastructure.State, costFn CostFunction) []datastructure.Successor {
	if costFn == nil {
		costFn = TravelTime
	}
	segs := g.out[s.ID]
	succ := make([]datastructure.Successor, 0, len(segs))
	for _, seg := range segs {
		dest := g.intersections[seg.Destination]
		succ = append(succ, datastructure.Successor{
			Action:  datastructure.NewAction(seg.Origin, seg.Destination),
			State:   dest.State(),
			Cost:    costFn(seg),
			Segment: seg,
		})
	}
	return succ
}

// Cost step cost of the cheapest direct segment origin -> destination, +Inf when there is none.
func (g *RouteGraph) Cost(origin, destination int64, costFn CostFunction) float64 {
	seg, ok := g.Segment(origin, destination, costFn)
	if !ok {
		return math.Inf(1)
	}
	if costFn == nil {
		costFn = TravelTime
	}
	return costFn(seg)
}

// Segment cheapest direct segment origin -> destination under costFn.
func (g *RouteGraph) Segment(origin, destination int64, costFn CostFunction) (datastructure.Segment, bool) {
	if costFn == nil {
		costFn = TravelTime
	}
	segs := g.out[origin]
	// segs sorted by destination
	i := sort.Search(len(segs), func(i int) bool { return segs[i].Destination >= destination })
	best := math.Inf(1)
	var bestSeg datastructure.Segment
	found := false
	for ; i < len(segs) && segs[i].Destination == destination; i++ {
		if c := costFn(segs[i]); !found || c < best {
			best = c
			bestSeg = segs[i]
			found = true
		}
	}
	return bestSeg, found
}
