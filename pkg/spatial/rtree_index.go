package spatial

import (
	"fmt"

	"lintang/routesearch/pkg/datastructure"

	"github.com/dhconnelly/rtreego"
)

var tol = 0.0001

// nearest neighbor rtree pakai jarak planar derajat, jadi ambil beberapa lalu rerank haversine.
const rtreeCandidates = 8

type intersectionRect struct {
	location     rtreego.Point
	intersection datastructure.Intersection
}

func (s *intersectionRect) Bounds() rtreego.Rect {
	return s.location.ToRect(tol)
}

// RTreeIndex 2 dimension, 25 min entries dan 50 max entries.
type RTreeIndex struct {
	tree *rtreego.Rtree
}

func NewRTreeIndex(intersections []datastructure.Intersection) *RTreeIndex {
	tree := rtreego.NewTree(2, 25, 50)
	for _, in := range intersections {
		if in.Coord == nil {
			continue
		}
		tree.Insert(&intersectionRect{
			location:     rtreego.Point{in.Coord.Lat, in.Coord.Lon},
			intersection: in,
		})
	}
	return &RTreeIndex{tree: tree}
}

func (idx *RTreeIndex) Size() int {
	return idx.tree.Size()
}

func (idx *RTreeIndex) Nearest(lat, lon float64) (Match, error) {
	items := idx.tree.NearestNeighbors(rtreeCandidates, rtreego.Point{lat, lon})
	found := make([]datastructure.Intersection, 0, len(items))
	for _, it := range items {
		if r, ok := it.(*intersectionRect); ok {
			found = append(found, r.intersection)
		}
	}
	m, ok := closest(lat, lon, found)
	if !ok {
		return Match{}, fmt.Errorf("%w: (%f, %f)", ErrNoIntersection, lat, lon)
	}
	return m, nil
}
