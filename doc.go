// Package cutquote computes manufacturing quotes for flat profiles that are
// cut from sheet stock with a laser or plasma cutter.
//
// A profile is an ordered sequence of edges, each of which is either a
// straight [Line] or a circular [Arc]. A [Quote] owns such a sequence and
// prices it using [CostParams]:
//
//   - The material cost is proportional to the area of the profile's
//     bounding rectangle, padded by a margin in each dimension. The profile
//     is evaluated in the orientation that minimizes this cost; candidate
//     orientations are the unrotated one and those that align a straight
//     edge with the x axis.
//   - The time cost is proportional to the time it takes to cut every edge.
//     Straight edges are cut at the base speed. Arcs are cut more slowly the
//     tighter they are, at base·e^(−1/r) for radius r.
//
// # Coordinates and arcs
//
// Profiles are described in a y-up coordinate system, and angles are measured
// anti-clockwise from the positive x axis. Two vertices and a center admit
// two arcs, which together form the full circle. [Arc.ClockwiseFrom] selects
// one of them by naming the vertex at which a clockwise sweep begins.
//
// # Descriptions
//
// [Parse] decodes the JSON profile description produced by CAD export
// tooling. The document is validated against a JSON Schema before any edge
// is constructed, and every inconsistency is reported as an [*EdgeError]
// naming the offending edge.
//
// All values in this package are immutable; every operation is pure and safe
// for concurrent use.
package cutquote
