package cutquote

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Edge types used in profile descriptions.
const (
	TypeLineSegment = "LineSegment"
	TypeCircularArc = "CircularArc"
)

//go:embed profile.schema.json
var profileSchema []byte

// Schema returns the JSON Schema that profile descriptions must conform to.
func Schema() []byte {
	return slices.Clone(profileSchema)
}

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(profileSchema))
})

type position struct {
	X float64 `json:"X"`
	Y float64 `json:"Y"`
}

func (p position) point() Point { return Pt(p.X, p.Y) }

type vertexDescription struct {
	Position position `json:"Position"`
}

type edgeDescription struct {
	Type          string    `json:"Type"`
	Vertices      [2]uint64 `json:"Vertices"`
	Center        *position `json:"Center"`
	ClockwiseFrom *uint64   `json:"ClockwiseFrom"`
}

type description struct {
	Edges    map[string]edgeDescription   `json:"Edges"`
	Vertices map[string]vertexDescription `json:"Vertices"`
}

// ParseReader reads a profile description from r and decodes it with
// [Parse].
func ParseReader(r io.Reader) (*Quote, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a JSON profile description into a quote. Edges are ordered
// by their numeric identifiers.
//
// Structural problems are reported as errors wrapping
// [ErrInvalidDescription]; problems with individual edges as [*EdgeError].
// No quote is returned unless every edge is valid.
func Parse(data []byte) (*Quote, error) {
	if err := validateDescription(data); err != nil {
		return nil, err
	}
	var desc description
	if err := json.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}
	return desc.quote()
}

func validateDescription(data []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling profile schema: %w", err)
	}
	res, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDescription, err)
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrInvalidDescription, strings.Join(msgs, "; "))
}

func (desc description) quote() (*Quote, error) {
	ids := make([]string, 0, len(desc.Edges))
	for id := range desc.Edges {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareIDs)

	edges := make([]Edge, 0, len(ids))
	for i, id := range ids {
		e, err := desc.edge(desc.Edges[id])
		if err != nil {
			return nil, &EdgeError{Index: i, ID: id, Err: err}
		}
		edges = append(edges, e)
	}
	q, err := NewQuote(edges)
	if err != nil {
		var ee *EdgeError
		if errors.As(err, &ee) {
			ee.ID = ids[ee.Index]
		}
		return nil, err
	}
	return q, nil
}

func (desc description) edge(ed edgeDescription) (Edge, error) {
	var pts [2]Point
	for i, vid := range ed.Vertices {
		v, ok := desc.Vertices[strconv.FormatUint(vid, 10)]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownVertex, vid)
		}
		pts[i] = v.Position.point()
	}

	switch ed.Type {
	case TypeLineSegment:
		return NewLine(pts[0], pts[1]), nil
	case TypeCircularArc:
		if ed.Center == nil {
			return nil, ErrMissingCenter
		}
		if ed.ClockwiseFrom == nil {
			return nil, fmt.Errorf("%w: ClockwiseFrom is missing", ErrClockwiseFrom)
		}
		idx := slices.Index(ed.Vertices[:], *ed.ClockwiseFrom)
		if idx < 0 {
			return nil, fmt.Errorf("%w: vertex %d is not one of %v", ErrClockwiseFrom, *ed.ClockwiseFrom, ed.Vertices)
		}
		a, err := NewArc(pts[0], pts[1], ed.Center.point(), idx)
		if err != nil {
			return nil, err
		}
		return a, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEdgeType, ed.Type)
	}
}

// compareIDs orders numeric identifiers by value. The schema admits only
// canonical decimals, so distinct ids never compare equal.
func compareIDs(a, b string) int {
	if len(a) != len(b) {
		return len(a) - len(b)
	}
	return strings.Compare(a, b)
}
