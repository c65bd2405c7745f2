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

import (
	"github.com/golang/geo/r3"
	"seehuhn.de/go/geom/vec"
)

// Point is a vertex of a polyline.  For 2D data, Z is zero.
type Point = r3.Vector

// Pt returns the 2D point (x, y, 0).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromVec2 converts a 2D vector to a Point with Z = 0.
func FromVec2(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// ToVec2 drops the Z coordinate of p.
func ToVec2(p Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// SquareDistance returns the squared Euclidean distance between p1 and p2.
func SquareDistance(p1, p2 Point) float64 {
	return p1.Sub(p2).Norm2()
}

// Projection selects the formula used to project a point onto a segment.
type Projection int

const (
	// ProjectionExact projects onto the line through the segment using the
	// full 3D dot product.
	ProjectionExact Projection = iota

	// ProjectionLegacy reproduces a historical variant of the formula in
	// which only the z term of the dot product is divided by the squared
	// segment length:
	//
	//	t = dx*(px-x) + dy*(py-y) + dz*(pz-z)/(dx²+dy²+dz²)
	//
	// Unless the segment has unit length, this misplaces the closest point,
	// also for 2D input.  Use this only to reproduce output of older tools.
	ProjectionLegacy
)

func (proj Projection) String() string {
	switch proj {
	case ProjectionExact:
		return "exact"
	case ProjectionLegacy:
		return "legacy"
	default:
		return "Projection(?)"
	}
}

// SquareSegmentDistance returns the squared distance from p to the segment
// a–b, using the exact projection.  If a and b coincide, this is the
// squared distance from p to a.
func SquareSegmentDistance(p, a, b Point) float64 {
	return ProjectionExact.SquareSegmentDistance(p, a, b)
}

// SquareSegmentDistance returns the squared distance from p to the closest
// point of the segment a–b, where the closest point is located using the
// projection formula proj.
func (proj Projection) SquareSegmentDistance(p, a, b Point) float64 {
	d := b.Sub(a)
	if d.X == 0 && d.Y == 0 && d.Z == 0 {
		return p.Sub(a).Norm2()
	}

	var t float64
	ap := p.Sub(a)
	if proj == ProjectionLegacy {
		t = ap.X*d.X + ap.Y*d.Y + ap.Z*d.Z/d.Norm2()
	} else {
		t = ap.Dot(d) / d.Norm2()
	}

	closest := a
	if t > 1 {
		closest = b
	} else if t > 0 {
		closest = a.Add(d.Mul(t))
	}
	return p.Sub(closest).Norm2()
}
