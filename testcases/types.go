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

// Package testcases contains named polylines and paths which are used to
// test and benchmark the simplification code, and to generate reference
// output for visual inspection.
package testcases

import (
	"github.com/golang/geo/r3"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single simplification test.
// Exactly one of Points and Path is set.
type TestCase struct {
	Name           string      // lowercase a-z, 0-9 and _ only
	Points         []r3.Vector // polyline input
	Path           *path.Data  // path input
	Tolerance      float64     // maximal deviation, in input units
	HighestQuality bool        // skip the radial pre-pass
	Canvas         rect.Rect   // region shown in visual output
}

// IsPath reports whether the test case operates on a path rather than a
// polyline.
func (tc TestCase) IsPath() bool {
	return tc.Path != nil
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// p2 is a helper to create a 2D polyline vertex.
func p2(x, y float64) r3.Vector {
	return r3.Vector{X: x, Y: y}
}

// canvas returns a rectangle enclosing all points, with the given margin.
func canvas(points []r3.Vector, margin float64) rect.Rect {
	if len(points) == 0 {
		return rect.Rect{URx: 1, URy: 1}
	}
	r := rect.Rect{
		LLx: points[0].X, LLy: points[0].Y,
		URx: points[0].X, URy: points[0].Y,
	}
	for _, p := range points[1:] {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	r.LLx -= margin
	r.LLy -= margin
	r.URx += margin
	r.URy += margin
	return r
}
