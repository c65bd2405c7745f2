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

package simplify

import "slices"

// douglasPeucker appends to dst the indices of the points retained by the
// Douglas-Peucker algorithm, in increasing order.
//
// Instead of recursing, pending index ranges are kept on an explicit
// stack.  The order in which ranges are processed does not affect the
// result.
func (s *Simplifier) douglasPeucker(points []Point, sqTolerance float64, dst []int) []int {
	n := len(points)
	if n < 2 {
		for i := range n {
			dst = append(dst, i)
		}
		return dst
	}
	sqTolerance = clampTolerance(sqTolerance)

	s.markers = slices.Grow(s.markers[:0], n)[:n]
	clear(s.markers)
	s.markers[0] = true
	s.markers[n-1] = true

	s.ranges = append(s.ranges[:0], 0, n-1)
	for len(s.ranges) > 0 {
		k := len(s.ranges) - 2
		first, last := s.ranges[k], s.ranges[k+1]
		s.ranges = s.ranges[:k]

		a, b := points[first], points[last]
		maxSqDist := 0.0
		index := 0
		for i := first + 1; i < last; i++ {
			// strict comparison: ties go to the lowest index
			sqDist := s.Projection.SquareSegmentDistance(points[i], a, b)
			if sqDist > maxSqDist {
				index = i
				maxSqDist = sqDist
			}
		}

		// sqTolerance >= 0, so this implies that index was set above
		if maxSqDist > sqTolerance {
			s.markers[index] = true
			s.ranges = append(s.ranges, first, index, index, last)
		}
	}

	for i, keep := range s.markers {
		if keep {
			dst = append(dst, i)
		}
	}
	return dst
}
