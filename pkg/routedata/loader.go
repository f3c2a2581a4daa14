package routedata

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"lintang/routesearch/pkg/datastructure"
	"lintang/routesearch/pkg/graph"
	"lintang/routesearch/pkg/problem"

	"github.com/DataDog/zstd"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/goccy/go-json"
)

// ErrInvalidDocument document can not be decoded or misses required fields. wraps graph.ErrDataError.
var ErrInvalidDocument = fmt.Errorf("invalid route document: %w", graph.ErrDataError)

const zstdExt = ".zst"

// Dataset decoded document plus the graph built from it.
type Dataset struct {
	Doc   *Document
	Graph *graph.RouteGraph
}

// Load reads a .json or .json.zst document, validates it and builds the RouteGraph.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read route document %s: %w", path, err)
	}
	if strings.HasSuffix(path, zstdExt) {
		data, err = zstd.Decompress(nil, data)
		if err != nil {
			return nil, fmt.Errorf("%w: decompress %s: %v", ErrInvalidDocument, path, err)
		}
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return NewDataset(doc)
}

// Parse decode + validate, no graph yet.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate struct tag validation, messages translated to english.
func Validate(doc *Document) error {
	validate := validator.New()
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)

	msgs := make([]string, 0, len(vErrs))
	for _, e := range vErrs {
		msgs = append(msgs, e.Translate(trans))
	}
	return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
}

// NewDataset build the RouteGraph. doc harus sudah lolos Validate.
func NewDataset(doc *Document) (*Dataset, error) {
	if err := Validate(doc); err != nil {
		return nil, err
	}
	ins := make([]datastructure.Intersection, 0, len(doc.Intersections))
	for _, it := range doc.Intersections {
		var coord *datastructure.Coordinate
		if it.Latitude != nil && it.Longitude != nil {
			coord = datastructure.NewCoordinatePtr(*it.Latitude, *it.Longitude)
		}
		ins = append(ins, datastructure.NewIntersection(*it.Identifier, coord))
	}
	segs := make([]datastructure.Segment, 0, len(doc.Segments))
	for _, s := range doc.Segments {
		segs = append(segs, datastructure.Segment{
			Origin:      *s.Origin,
			Destination: *s.Destination,
			Distance:    *s.Distance,
			Speed:       s.Speed,
			StreetName:  s.Name,
		})
	}

	g, err := graph.NewRouteGraph(ins, segs)
	if err != nil {
		return nil, err
	}
	for _, c := range doc.Candidates {
		if _, ok := g.Intersection(c.ID); !ok {
			return nil, fmt.Errorf("%w: candidate %d is not an intersection", graph.ErrDataError, c.ID)
		}
	}
	if doc.NumberStations > len(doc.Candidates) && len(doc.Candidates) > 0 {
		return nil, fmt.Errorf("%w: number_stations %d exceeds %d candidates", graph.ErrDataError, doc.NumberStations, len(doc.Candidates))
	}
	return &Dataset{Doc: doc, Graph: g}, nil
}

// Problem routing problem for the document's initial/final pair.
func (d *Dataset) Problem(opts ...problem.Option) (*problem.RoutingProblem, error) {
	return problem.New(d.Graph, *d.Doc.Initial, *d.Doc.Final, opts...)
}

// Write encode doc to path, zstd compressed when path ends with .zst.
func Write(path string, doc *Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode route document: %w", err)
	}
	if strings.HasSuffix(path, zstdExt) {
		data, err = zstd.Compress(nil, data)
		if err != nil {
			return fmt.Errorf("compress route document: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
