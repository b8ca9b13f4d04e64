package cutquote

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those nested in points and rectangles,
// with an absolute tolerance.
var approx = cmpopts.EquateApprox(0, 1e-9)

func mustArc(t *testing.T, v0, v1, center Point, clockwiseFrom int) Arc {
	t.Helper()
	a, err := NewArc(v0, v1, center, clockwiseFrom)
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	return a
}

func parseFile(t *testing.T, name string) *Quote {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	q, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(%s): %v", name, err)
	}
	return q
}
