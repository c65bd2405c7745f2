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

// Package orbsimplify makes the simplification algorithms available for
// the geometry types of github.com/paulmach/orb.
//
// Geometries are treated as planar; coordinates are used as they are,
// without any projection.
package orbsimplify

import (
	"github.com/paulmach/orb"

	"seehuhn.de/go/simplify"
)

var _ orb.Simplifier = (*Simplifier)(nil)

// Simplifier implements [orb.Simplifier] using radial-distance filtering
// followed by Douglas-Peucker reduction.
//
// The input geometries are not modified; all results are newly allocated.
// A Simplifier must not be used concurrently from several goroutines.
type Simplifier struct {
	s   simplify.Simplifier
	buf []simplify.Point
}

// New returns a Simplifier with the given tolerance.  If highestQuality is
// true, the radial pre-pass is skipped.
func New(tolerance float64, highestQuality bool) *Simplifier {
	return &Simplifier{
		s: simplify.Simplifier{
			Tolerance:      tolerance,
			HighestQuality: highestQuality,
		},
	}
}

// Simplify simplifies any orb geometry.  Points, multi-points and bounds
// are returned unchanged.  A geometry which is simplified away entirely
// is returned as nil.
func (s *Simplifier) Simplify(g orb.Geometry) orb.Geometry {
	switch g := g.(type) {
	case nil:
		return nil
	case orb.Point, orb.MultiPoint, orb.Bound:
		return g
	case orb.LineString:
		return nilIfEmpty(s.LineString(g))
	case orb.MultiLineString:
		return nilIfEmpty(s.MultiLineString(g))
	case orb.Ring:
		return nilIfEmpty(s.Ring(g))
	case orb.Polygon:
		return nilIfEmpty(s.Polygon(g))
	case orb.MultiPolygon:
		return nilIfEmpty(s.MultiPolygon(g))
	case orb.Collection:
		return nilIfEmpty(s.Collection(g))
	}
	panic("orbsimplify: unsupported geometry type")
}

// LineString returns a simplified copy of ls.
func (s *Simplifier) LineString(ls orb.LineString) orb.LineString {
	return orb.LineString(s.run(ls))
}

// MultiLineString simplifies each line string of mls.
func (s *Simplifier) MultiLineString(mls orb.MultiLineString) orb.MultiLineString {
	if mls == nil {
		return nil
	}
	res := make(orb.MultiLineString, len(mls))
	for i, ls := range mls {
		res[i] = s.LineString(ls)
	}
	return res
}

// Ring returns a simplified copy of r.  Since the first and the last
// point are always kept, a closed ring stays closed.
func (s *Simplifier) Ring(r orb.Ring) orb.Ring {
	return orb.Ring(s.run(r))
}

// Polygon simplifies all rings of p.  Holes which degenerate to fewer than
// four points are removed.  The outer ring is always kept.
func (s *Simplifier) Polygon(p orb.Polygon) orb.Polygon {
	if p == nil {
		return nil
	}
	res := make(orb.Polygon, 0, len(p))
	for i, r := range p {
		r = s.Ring(r)
		if i > 0 && len(r) < minRingLength {
			continue
		}
		res = append(res, r)
	}
	return res
}

// MultiPolygon simplifies all polygons of mp.  Polygons whose outer ring
// degenerates to fewer than four points are removed.
func (s *Simplifier) MultiPolygon(mp orb.MultiPolygon) orb.MultiPolygon {
	if mp == nil {
		return nil
	}
	res := make(orb.MultiPolygon, 0, len(mp))
	for _, p := range mp {
		p = s.Polygon(p)
		if len(p) == 0 || len(p[0]) < minRingLength {
			continue
		}
		res = append(res, p)
	}
	return res
}

// Collection simplifies every geometry in c.  Geometries which are
// simplified away are removed.
func (s *Simplifier) Collection(c orb.Collection) orb.Collection {
	if c == nil {
		return nil
	}
	res := make(orb.Collection, 0, len(c))
	for _, g := range c {
		if g = s.Simplify(g); g != nil {
			res = append(res, g)
		}
	}
	return res
}

// run simplifies a sequence of orb points.
func (s *Simplifier) run(pts []orb.Point) []orb.Point {
	if pts == nil {
		return nil
	}
	s.buf = s.buf[:0]
	for _, p := range pts {
		s.buf = append(s.buf, simplify.Pt(p.X(), p.Y()))
	}

	idx := s.s.Indices(s.buf)
	res := make([]orb.Point, len(idx))
	for k, i := range idx {
		res[k] = pts[i]
	}
	return res
}

// nilIfEmpty converts empty geometries to a nil interface value.
func nilIfEmpty[T ~[]E, E any](g T) orb.Geometry {
	if len(g) == 0 {
		return nil
	}
	return any(g).(orb.Geometry)
}

// minRingLength is the number of points in the smallest closed ring
// which encloses a non-zero area.
const minRingLength = 4
