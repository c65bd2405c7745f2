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

// radialIndices appends to dst the indices of the points which are more
// than sqrt(sqTolerance) away from the most recently retained point (the
// anchor).  Index 0 is always included, and so is the last index, even if
// the last point is close to the anchor.
func radialIndices(points []Point, sqTolerance float64, dst []int) []int {
	if len(points) == 0 {
		return dst
	}
	sqTolerance = clampTolerance(sqTolerance)

	anchor := 0
	dst = append(dst, anchor)
	for i := 1; i < len(points); i++ {
		if SquareDistance(points[i], points[anchor]) > sqTolerance {
			dst = append(dst, i)
			anchor = i
		}
	}

	// Compare positions, not values: a coordinate-identical point later in
	// the sequence is still a different vertex.
	if last := len(points) - 1; anchor != last {
		dst = append(dst, last)
	}
	return dst
}
