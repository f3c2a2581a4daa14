package osmparser

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"lintang/routesearch/pkg/geo"
	"lintang/routesearch/pkg/routedata"

	"github.com/k0kubun/go-ansi"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

const kmhToMs = 1 / 3.6

type OsmParser struct {
	log          zerolog.Logger
	showProgress bool
	// jumlah way per "highway=<type>"
	wayTypes map[string]int64
}

func NewOSMParser(logger zerolog.Logger, showProgress bool) *OsmParser {
	return &OsmParser{
		log:          logger,
		showProgress: showProgress,
		wayTypes:     make(map[string]int64),
	}
}

func (p *OsmParser) newProgressBar(max int, description string) *progressbar.ProgressBar {
	writer := io.Discard
	if p.showProgress {
		writer = ansi.NewAnsiStdout()
	}
	return progressbar.NewOptions(max,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}

// Parse baca osm pbf 2 kali: pertama way yang bisa dilewati mobil, kedua koordinat node dari way tersebut.
func (p *OsmParser) Parse(ctx context.Context, f io.ReadSeeker) (*routedata.Document, error) {
	scanner := osmpbf.New(ctx, f, 3)
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	ways := []*osm.Way{}
	wayNodesMap := make(map[osm.NodeID]bool)
	bar := p.newProgressBar(-1, "[cyan][1/3][reset] memproses openstreetmap way...")
	for scanner.Scan() {
		way, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if !isOsmWayUsedByCars(way.TagMap()) {
			continue
		}
		ways = append(ways, way)
		for _, n := range way.Nodes {
			wayNodesMap[n.ID] = true
		}
		_ = bar.Add(1)
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("scan osm ways: %w", err)
	}
	scanner.Close()

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind osm file: %w", err)
	}
	scanner = osmpbf.New(ctx, f, 3)
	scanner.SkipWays = true
	scanner.SkipRelations = true
	defer scanner.Close()

	nodes := make(map[osm.NodeID]*osm.Node, len(wayNodesMap))
	bar = p.newProgressBar(len(wayNodesMap), "[cyan][2/3][reset] memproses openstreetmap node...")
	for scanner.Scan() {
		node, ok := scanner.Object().(*osm.Node)
		if !ok || !wayNodesMap[node.ID] {
			continue
		}
		nodes[node.ID] = node
		_ = bar.Add(1)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan osm nodes: %w", err)
	}

	p.log.Info().Int("ways", len(ways)).Int("nodes", len(nodes)).Msg("openstreetmap scanned")
	return p.BuildDocument(ways, nodes), nil
}

type osmIntersection struct {
	id       int64
	lat, lon float64
}

type shapeNode struct {
	node *osm.Node
	// jarak dari intersection sebelumnya
	dist float64
}

func ptr[T any](v T) *T {
	return &v
}

// BuildDocument road network dari way: node intersection (dipakai >= 2 way, atau ujung way)
// jadi intersection, node lain cuma menambah panjang segment.
func (p *OsmParser) BuildDocument(ways []*osm.Way, nodes map[osm.NodeID]*osm.Node) *routedata.Document {
	usedInRoad := make(map[osm.NodeID]int)
	endpoints := make(map[osm.NodeID]bool)
	for _, way := range ways {
		for _, n := range way.Nodes {
			usedInRoad[n.ID]++
		}
		if len(way.Nodes) > 0 {
			endpoints[way.Nodes[0].ID] = true
			endpoints[way.Nodes[len(way.Nodes)-1].ID] = true
		}
	}

	intersections := make(map[int64]osmIntersection)
	segments := []routedata.SegmentItem{}

	bar := p.newProgressBar(len(ways), "[cyan][3/3][reset] membuat intersection & segment...")
	for _, way := range ways {
		tags := way.TagMap()
		profile := getWayProfile(tags)
		p.wayTypes["highway="+profile.roadType]++

		var from *osmIntersection
		var prev *osm.Node
		dist := 0.0
		// shape node sejak intersection terakhir, dipakai buat split way yang balik ke intersection yang sama
		shape := []shapeNode{}
		for _, wn := range way.Nodes {
			node, ok := nodes[wn.ID]
			if !ok {
				// node di luar extract
				continue
			}
			if prev != nil {
				dist += geo.HaversineDegrees(prev.Lat, prev.Lon, node.Lat, node.Lon)
			}
			prev = node

			if usedInRoad[wn.ID] < 2 && !endpoints[wn.ID] {
				shape = append(shape, shapeNode{node: node, dist: dist})
				continue
			}
			curr := osmIntersection{id: int64(wn.ID), lat: node.Lat, lon: node.Lon}
			intersections[curr.id] = curr
			switch {
			case from == nil:
			case from.id != curr.id:
				segments = append(segments, p.segmentsBetween(*from, curr, dist, profile)...)
			case len(shape) > 0:
				// closed way (misal roundabout), shape node tengah dijadikan intersection
				mid := shape[len(shape)/2]
				midIn := osmIntersection{id: int64(mid.node.ID), lat: mid.node.Lat, lon: mid.node.Lon}
				intersections[midIn.id] = midIn
				segments = append(segments, p.segmentsBetween(*from, midIn, mid.dist, profile)...)
				segments = append(segments, p.segmentsBetween(midIn, curr, dist-mid.dist, profile)...)
			}
			from = &curr
			dist = 0
			shape = shape[:0]
		}
		_ = bar.Add(1)
	}

	ids := make([]int64, 0, len(intersections))
	for id := range intersections {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	doc := &routedata.Document{
		Intersections: make([]routedata.IntersectionItem, 0, len(ids)),
		Segments:      segments,
	}
	for _, id := range ids {
		in := intersections[id]
		doc.Intersections = append(doc.Intersections, routedata.IntersectionItem{
			Identifier: ptr(id),
			Latitude:   ptr(in.lat),
			Longitude:  ptr(in.lon),
		})
	}
	if len(ids) > 0 {
		first, last := ids[0], ids[len(ids)-1]
		doc.Initial, doc.Final = &first, &last
	}
	p.log.Info().Int("intersections", len(ids)).Int("segments", len(segments)).Msg("road network built")
	return doc
}

func (p *OsmParser) segmentsBetween(from, to osmIntersection, dist float64, profile wayProfile) []routedata.SegmentItem {
	speed := profile.maxSpeed * kmhToMs
	forward := routedata.SegmentItem{Origin: ptr(from.id), Destination: ptr(to.id), Distance: ptr(dist), Speed: speed, Name: profile.name}
	backward := routedata.SegmentItem{Origin: ptr(to.id), Destination: ptr(from.id), Distance: ptr(dist), Speed: speed, Name: profile.name}
	switch {
	case profile.oneWay && profile.reversedOneWay:
		return []routedata.SegmentItem{backward}
	case profile.oneWay:
		return []routedata.SegmentItem{forward}
	default:
		return []routedata.SegmentItem{forward, backward}
	}
}

// WriteWayTypeToCsv jumlah way per road type, diurutkan by key, baris terakhir total.
func (p *OsmParser) WriteWayTypeToCsv(w io.Writer) error {
	keys := make([]string, 0, len(p.wayTypes))
	for k := range p.wayTypes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys)+1)
	var total int64
	for _, k := range keys {
		rows = append(rows, []string{k, strconv.FormatInt(p.wayTypes[k], 10)})
		total += p.wayTypes[k]
	}
	rows = append(rows, []string{"total", strconv.FormatInt(total, 10)})

	writer := csv.NewWriter(w)
	return writer.WriteAll(rows)
}
