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
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Path returns a simplified version of p.
//
// Quadratic and cubic Bézier segments are first flattened into line
// segments, using the CTM-aware tolerance Flatness.  Every subpath is then
// simplified as a polyline, with distances measured in device space.  The
// result contains only MoveTo, LineTo and Close commands, with coordinates
// taken unchanged from the flattened user-space path.  Closed subpaths
// remain closed; the closing edge is taken into account during
// simplification.  Subpaths which consist of a single MoveTo are dropped.
func (s *Simplifier) Path(p path.Path) *path.Data {
	res := &path.Data{}

	var current, start vec.Vec2
	havePoint := false
	s.line = s.line[:0]

	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			res = s.flushSubpath(res, false)
			current = pts[0]
			start = current
			havePoint = true
			s.line = append(s.line, current)

		case path.CmdLineTo:
			if !havePoint {
				continue
			}
			s.beginSubpath(current)
			s.line = append(s.line, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			if !havePoint {
				continue
			}
			s.beginSubpath(current)
			s.flattenQuadratic(current, pts[0], pts[1], s.addVertex)
			current = pts[1]

		case path.CmdCubeTo:
			if !havePoint {
				continue
			}
			s.beginSubpath(current)
			s.flattenCubic(current, pts[0], pts[1], pts[2], s.addVertex)
			current = pts[2]

		case path.CmdClose:
			res = s.flushSubpath(res, true)
			current = start
		}
	}
	return s.flushSubpath(res, false)
}

// beginSubpath starts a new subpath at pt, if no subpath is open.
// This happens for drawing commands which directly follow a ClosePath.
func (s *Simplifier) beginSubpath(pt vec.Vec2) {
	if len(s.line) == 0 {
		s.line = append(s.line, pt)
	}
}

// addVertex is the emit callback for curve flattening.
func (s *Simplifier) addVertex(_, to vec.Vec2) {
	s.line = append(s.line, to)
}

// flushSubpath simplifies the open subpath (if any), appends it to res and
// clears the subpath buffer.
func (s *Simplifier) flushSubpath(res *path.Data, closed bool) *path.Data {
	if len(s.line) == 0 || !closed && len(s.line) == 1 {
		// nothing was drawn
		s.line = s.line[:0]
		return res
	}
	if closed && s.line[len(s.line)-1] != s.line[0] {
		s.line = append(s.line, s.line[0])
	}

	ctm := s.ctm()
	s.dev = s.dev[:0]
	for _, v := range s.line {
		s.dev = append(s.dev, FromVec2(transform(ctm, v)))
	}

	s.kept = s.indices(s.dev, s.kept[:0])
	last := len(s.line) - 1
	for k, i := range s.kept {
		if k == 0 {
			res = res.MoveTo(s.line[i])
			continue
		}
		if closed && i == last {
			// drawn by ClosePath
			break
		}
		res = res.LineTo(s.line[i])
	}
	if closed {
		res = res.Close()
	}

	s.line = s.line[:0]
	return res
}

// ctm returns the effective transformation matrix.
func (s *Simplifier) ctm() matrix.Matrix {
	if s.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return s.CTM
}

// flatness returns the effective flattening tolerance.
func (s *Simplifier) flatness() float64 {
	if !(s.Flatness > 0) {
		return defaultFlatness
	}
	return s.Flatness
}

// transform maps a user space point to device space.
func transform(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// transformLinear applies only the 2×2 linear part of m to a vector.
// Used for CTM-aware tolerance checking where translation is irrelevant.
func transformLinear(m matrix.Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// flattenQuadratic flattens a quadratic Bézier and calls emit for each line segment.
// p0 is the start point (current point), p1 is control, p2 is endpoint.
// All points are in user space.
func (s *Simplifier) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	errDev := transformLinear(s.ctm(), e).Length()

	n := 1
	if flatness := s.flatness(); errDev > flatness {
		n = int(math.Ceil(math.Sqrt(errDev / flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		if i == n {
			pt = p2
		}
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens a cubic Bézier and calls emit for each line segment.
// p0 is start, p1/p2 are controls, p3 is endpoint.  All in user space.
func (s *Simplifier) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	ctm := s.ctm()
	d1 := transformLinear(ctm, p0.Sub(p1.Mul(2)).Add(p2)) // P0 - 2*P1 + P2
	d2 := transformLinear(ctm, p1.Sub(p2.Mul(2)).Add(p3)) // P1 - 2*P2 + P3

	// Wang's formula: n = ceil(sqrt(3 * m / (4 * ε)))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		nFloat := math.Sqrt(3 * m / (4 * s.flatness()))
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		if i == n {
			pt = p3
		}
		emit(prev, pt)
		prev = pt
	}
}
