package cutquote_test

import (
	"fmt"

	"honnef.co/go/cutquote"
)

func ExampleParse() {
	const doc = `{
		"Edges": {
			"1": {"Type": "LineSegment", "Vertices": [1, 2]},
			"2": {"Type": "LineSegment", "Vertices": [2, 3]},
			"3": {"Type": "LineSegment", "Vertices": [3, 4]},
			"4": {"Type": "LineSegment", "Vertices": [4, 1]}
		},
		"Vertices": {
			"1": {"Position": {"X": 0, "Y": 0}},
			"2": {"Position": {"X": 0, "Y": 5}},
			"3": {"Position": {"X": 3, "Y": 5}},
			"4": {"Position": {"X": 3, "Y": 0}}
		}
	}`
	q, err := cutquote.Parse([]byte(doc))
	if err != nil {
		panic(err)
	}
	fmt.Println(q.Cost(cutquote.NewCostParams(0.1, 0.75, 0.5, 0.07)))
	// Output: 14.10
}

func ExampleNewQuote() {
	arc, err := cutquote.NewArc(cutquote.Pt(2, 0), cutquote.Pt(2, 1), cutquote.Pt(2, 0.5), 0)
	if err != nil {
		panic(err)
	}
	q, err := cutquote.NewQuote([]cutquote.Edge{
		cutquote.NewLine(cutquote.Pt(0, 0), cutquote.Pt(2, 0)),
		arc,
		cutquote.NewLine(cutquote.Pt(2, 1), cutquote.Pt(0, 1)),
		cutquote.NewLine(cutquote.Pt(0, 1), cutquote.Pt(0, 0)),
	})
	if err != nil {
		panic(err)
	}
	est := q.Estimate(cutquote.NewCostParams(0.1, 0.75, 0.5, 0.07))
	fmt.Printf("material %.4f, time %.4f, total %s\n", est.MaterialCost, est.TimeCost, est)
	// Output: material 1.7325, time 2.3249, total 4.06
}
