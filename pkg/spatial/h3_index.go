package spatial

import (
	"fmt"
	"math"

	"lintang/routesearch/pkg/datastructure"

	"github.com/uber/h3-go/v4"
)

const (
	h3Resolution   = 9
	searchRadiusKm = 0.7
	maxRingLevel   = 10
)

// H3Index intersection dikelompokkan per h3 cell (resolution 9).
type H3Index struct {
	cells map[h3.Cell][]datastructure.Intersection
}

func NewH3Index(intersections []datastructure.Intersection) *H3Index {
	cells := make(map[h3.Cell][]datastructure.Intersection)
	for _, in := range intersections {
		if in.Coord == nil {
			continue
		}
		cell := h3.LatLngToCell(h3.NewLatLng(in.Coord.Lat, in.Coord.Lon), h3Resolution)
		cells[cell] = append(cells[cell], in)
	}
	return &H3Index{cells: cells}
}

func (idx *H3Index) NumCells() int {
	return len(idx.cells)
}

// Nearest cari di cell-cell dalam radius 0.7 km dulu, kalau kosong (misal di bandara, hutan, dll)
// perbesar grid disk sampai level 10.
func (idx *H3Index) Nearest(lat, lon float64) (Match, error) {
	home := h3.LatLngToCell(h3.NewLatLng(lat, lon), h3Resolution)

	found := idx.collect(kRingIndexesArea(lat, lon, searchRadiusKm))
	for lev := 1; lev <= maxRingLevel && len(found) == 0; lev++ {
		found = idx.collect(h3.GridDisk(home, lev))
	}

	m, ok := closest(lat, lon, found)
	if !ok {
		return Match{}, fmt.Errorf("%w: (%f, %f)", ErrNoIntersection, lat, lon)
	}
	return m, nil
}

func (idx *H3Index) collect(cells []h3.Cell) []datastructure.Intersection {
	res := []datastructure.Intersection{}
	for _, c := range cells {
		res = append(res, idx.cells[c]...)
	}
	return res
}

/*
  - https://observablehq.com/@nrabinowitz/h3-radius-lookup?collection=@nrabinowitz/h3
    cell neighbor dari cell (lat,lon) dengan radius searchRadiusKm, termasuk cell itu sendiri.
*/
func kRingIndexesArea(lat, lon, searchRadiusKm float64) []h3.Cell {
	origin := h3.LatLngToCell(h3.NewLatLng(lat, lon), h3Resolution)
	originArea := h3.CellAreaKm2(origin)
	searchArea := math.Pi * searchRadiusKm * searchRadiusKm

	radius := 0
	diskArea := originArea
	for diskArea < searchArea {
		radius++
		cellCount := float64(3*radius*(radius+1) + 1)
		diskArea = cellCount * originArea
	}

	return h3.GridDisk(origin, radius)
}
