// seehuhn.de/go/simplify - polyline simplification
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package simplify reduces the number of vertices of 2D and 3D polylines
// while preserving their shape within a given tolerance.
//
// Simplification runs in two stages.  An optional radial-distance pass
// drops vertices which lie too close to their predecessor, and a
// Douglas-Peucker pass then drops vertices which lie close to the chord
// between the retained neighbours.  The Douglas-Peucker stage uses an
// explicit stack of index ranges, so that long polylines do not cause
// deep recursion.
//
// Tolerances are given in the units of the coordinates.  Since only the
// square of the tolerance enters the computation, the sign of the tolerance
// passed to [Simplify] and [SimplifyQuality] is irrelevant.  The building
// blocks [RadialDistance] and [DouglasPeucker] take the squared tolerance
// directly; a negative or NaN value there is treated as zero.
package simplify

//go:generate go run ./testcases/export

import (
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Simplify returns a simplified copy of points, running the radial
// pre-pass followed by Douglas-Peucker.  The first and last point of a
// non-empty input are always kept.
func Simplify(points []Point, tolerance float64) []Point {
	return SimplifyQuality(points, tolerance, false)
}

// SimplifyQuality is like [Simplify], but skips the radial pre-pass if
// highestQuality is true.
func SimplifyQuality(points []Point, tolerance float64, highestQuality bool) []Point {
	s := Simplifier{
		Tolerance:      tolerance,
		HighestQuality: highestQuality,
	}
	return s.Simplify(points)
}

// RadialDistance returns the points which are more than sqrt(sqTolerance)
// away from the previously retained point.  The first and the last point
// are always retained.
func RadialDistance(points []Point, sqTolerance float64) []Point {
	return gather(points, radialIndices(points, sqTolerance, nil))
}

// DouglasPeucker simplifies points using the Douglas-Peucker algorithm
// with squared tolerance sqTolerance.
func DouglasPeucker(points []Point, sqTolerance float64) []Point {
	var s Simplifier
	return gather(points, s.douglasPeucker(points, sqTolerance, nil))
}

// Simplifier reduces polylines and paths to fewer vertices.
// A Simplifier can be reused for many inputs; internal buffers grow as
// needed but never shrink.  A Simplifier must not be used concurrently
// from several goroutines.
type Simplifier struct {
	// Tolerance is the maximal allowed distance of a removed vertex from the
	// simplified polyline.  For [Simplifier.Path] the tolerance is measured
	// in device space.
	Tolerance float64

	// HighestQuality disables the radial pre-pass.
	HighestQuality bool

	// Projection selects the point-to-segment distance formula.
	Projection Projection

	// CTM maps user space to device space for [Simplifier.Path].
	// The zero value is treated as the identity.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in device units,
	// used by [Simplifier.Path].  Values <= 0 select the default.
	Flatness float64

	markers []bool  // kept flags, one per vertex of the current run
	ranges  []int   // pending (first, last) pairs
	radial  []int   // indices retained by the radial pass
	scratch []Point // vertices retained by the radial pass
	kept    []int   // result indices

	line []vec.Vec2 // current flattened subpath, user space
	dev  []Point    // current flattened subpath, device space
}

// NewSimplifier creates a Simplifier with the given tolerance and default
// values for all other parameters.
func NewSimplifier(tolerance float64) *Simplifier {
	return &Simplifier{
		Tolerance: tolerance,
		CTM:       matrix.Identity,
		Flatness:  defaultFlatness,
	}
}

// Simplify returns a newly allocated, simplified copy of points.
func (s *Simplifier) Simplify(points []Point) []Point {
	s.kept = s.indices(points, s.kept[:0])
	return gather(points, s.kept)
}

// Indices returns the positions in points of the vertices which
// [Simplifier.Simplify] would keep, in increasing order.
func (s *Simplifier) Indices(points []Point) []int {
	s.kept = s.indices(points, s.kept[:0])
	return slices.Clone(s.kept)
}

// indices appends the indices of the retained vertices to dst.
func (s *Simplifier) indices(points []Point, dst []int) []int {
	sqTolerance := s.Tolerance * s.Tolerance
	if s.HighestQuality {
		return s.douglasPeucker(points, sqTolerance, dst)
	}

	s.radial = radialIndices(points, sqTolerance, s.radial[:0])
	s.scratch = s.scratch[:0]
	for _, i := range s.radial {
		s.scratch = append(s.scratch, points[i])
	}

	start := len(dst)
	dst = s.douglasPeucker(s.scratch, sqTolerance, dst)
	for k := start; k < len(dst); k++ {
		dst[k] = s.radial[dst[k]]
	}
	return dst
}

// gather returns a new slice holding points[i] for every i in idx.
func gather(points []Point, idx []int) []Point {
	res := make([]Point, len(idx))
	for k, i := range idx {
		res[k] = points[i]
	}
	return res
}

// clampTolerance maps negative and NaN squared tolerances to zero.
func clampTolerance(sqTolerance float64) float64 {
	if !(sqTolerance > 0) {
		return 0
	}
	return sqTolerance
}

const (
	// defaultFlatness is the default curve flattening tolerance in device
	// units.
	defaultFlatness = 0.25
)
