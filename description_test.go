package cutquote

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	q := parseFile(t, "CutCircularArc.json")
	edges := q.Edges()
	if len(edges) != 4 {
		t.Fatalf("got %d edges, want 4", len(edges))
	}
	diff(t, Edge(NewLine(Pt(0, 0), Pt(2, 0))), edges[0])
	diff(t, Edge(Arc{P0: Pt(2, 0), P1: Pt(2, 1), Center: Pt(2, 0.5), ClockwiseFrom: 0}), edges[1])

	q = parseFile(t, "ExtrudeCircularArc.json")
	if a, ok := q.Edges()[1].(Arc); !ok || a.ClockwiseFrom != 1 {
		t.Errorf("got %#v, want arc swept clockwise from its second vertex", q.Edges()[1])
	}
}

func TestParseOrdersEdgesNumerically(t *testing.T) {
	const doc = `{
		"Edges": {
			"10": {"Type": "LineSegment", "Vertices": [2, 3]},
			"9": {"Type": "LineSegment", "Vertices": [1, 2]}
		},
		"Vertices": {
			"1": {"Position": {"X": 0, "Y": 0}},
			"2": {"Position": {"X": 1, "Y": 0}},
			"3": {"Position": {"X": 1, "Y": 1}}
		}
	}`
	q, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	p0, _ := q.Edges()[0].Vertices()
	if p0 != Pt(0, 0) {
		t.Errorf("edge 9 should come first, got edge starting at %v", p0)
	}
}

func TestCompareIDs(t *testing.T) {
	ids := []string{"100", "9", "0", "10", "21", "2"}
	slices.SortFunc(ids, compareIDs)
	diff(t, []string{"0", "2", "9", "10", "21", "100"}, ids)
}

func TestParseReader(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "Rectangle.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	q, err := ParseReader(f)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(q.Edges()); n != 4 {
		t.Errorf("got %d edges, want 4", n)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		want  error
		index int
	}{
		{"not json", `{"Edges":`, ErrInvalidDescription, -1},
		{"empty", `{"Edges": {}, "Vertices": {"1": {"Position": {"X": 0, "Y": 0}}}}`, ErrInvalidDescription, -1},
		{"bad type", `{"Edges": {"1": {"Type": "Spline", "Vertices": [1, 1]}}, "Vertices": {"1": {"Position": {"X": 0, "Y": 0}}}}`, ErrInvalidDescription, -1},
		{"padded vertex id", `{"Edges": {"1": {"Type": "LineSegment", "Vertices": [21, 21]}}, "Vertices": {"021": {"Position": {"X": 0, "Y": 0}}}}`, ErrInvalidDescription, -1},
		{"padded edge id", `{"Edges": {"0": {"Type": "LineSegment", "Vertices": [1, 1]}, "00": {"Type": "LineSegment", "Vertices": [1, 1]}}, "Vertices": {"1": {"Position": {"X": 0, "Y": 0}}}}`, ErrInvalidDescription, -1},
		{"missing position", `{"Edges": {"1": {"Type": "LineSegment", "Vertices": [1, 1]}}, "Vertices": {"1": {}}}`, ErrInvalidDescription, -1},
		{
			"unknown vertex",
			`{"Edges": {"1": {"Type": "LineSegment", "Vertices": [1, 2]}}, "Vertices": {"1": {"Position": {"X": 0, "Y": 0}}}}`,
			ErrUnknownVertex, 0,
		},
		{
			"missing center",
			`{"Edges": {"1": {"Type": "LineSegment", "Vertices": [1, 2]}, "2": {"Type": "CircularArc", "Vertices": [2, 1], "ClockwiseFrom": 2}},
			  "Vertices": {"1": {"Position": {"X": 0, "Y": 0}}, "2": {"Position": {"X": 2, "Y": 0}}}}`,
			ErrMissingCenter, 1,
		},
		{
			"missing clockwise start",
			`{"Edges": {"1": {"Type": "CircularArc", "Vertices": [1, 2], "Center": {"X": 1, "Y": 0}}},
			  "Vertices": {"1": {"Position": {"X": 0, "Y": 0}}, "2": {"Position": {"X": 2, "Y": 0}}}}`,
			ErrClockwiseFrom, 0,
		},
		{
			"foreign clockwise start",
			`{"Edges": {"1": {"Type": "CircularArc", "Vertices": [1, 2], "Center": {"X": 1, "Y": 0}, "ClockwiseFrom": 3}},
			  "Vertices": {"1": {"Position": {"X": 0, "Y": 0}}, "2": {"Position": {"X": 2, "Y": 0}}, "3": {"Position": {"X": 5, "Y": 5}}}}`,
			ErrClockwiseFrom, 0,
		},
	}
	for _, tt := range tests {
		q, err := Parse([]byte(tt.doc))
		if q != nil {
			t.Errorf("%s: got a quote despite the error", tt.name)
		}
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: got error %v, want %v", tt.name, err, tt.want)
			continue
		}
		var ee *EdgeError
		if got := errors.As(err, &ee); got != (tt.index >= 0) {
			t.Errorf("%s: got %v, EdgeError expected: %v", tt.name, err, tt.index >= 0)
		} else if got && ee.Index != tt.index {
			t.Errorf("%s: got edge index %d, want %d", tt.name, ee.Index, tt.index)
		}
	}
}

func TestParseRadiusMismatch(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "RadiusMismatch.json"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(data)
	var ee *EdgeError
	if !errors.As(err, &ee) {
		t.Fatalf("got %v, want *EdgeError", err)
	}
	if ee.Index != 1 || ee.ID != "2" || !errors.Is(err, ErrRadiusMismatch) {
		t.Errorf("got %v, want radius mismatch in edge 1 (id 2)", err)
	}
	if msg := err.Error(); !strings.HasPrefix(msg, "edge 1 (id 2): ") {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestSchemaIsJSON(t *testing.T) {
	var v map[string]any
	if err := json.Unmarshal(Schema(), &v); err != nil {
		t.Fatal(err)
	}
	if v["title"] != "Cut profile" {
		t.Errorf("unexpected schema title %v", v["title"])
	}
}
