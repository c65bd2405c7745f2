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

package testcases

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var pathCases = []TestCase{
	{
		Name:      "circle",
		Path:      circle(32, 32, 25),
		Tolerance: 0.5,
		Canvas:    rect.Rect{URx: 64, URy: 64},
	},
	{
		Name:      "ellipse",
		Path:      ellipse(32, 32, 28, 12),
		Tolerance: 0.25,
		Canvas:    rect.Rect{URx: 64, URy: 64},
	},
	{
		Name:      "s_curve",
		Path:      sCurveQuadratic(10, 32, 54, 32),
		Tolerance: 0.5,
		Canvas:    rect.Rect{URx: 64, URy: 64},
	},
	{
		Name:      "mixed",
		Path:      mixedLinesCurves(),
		Tolerance: 1,
		Canvas:    rect.Rect{URx: 64, URy: 64},
	},
	{
		Name:      "open_cubic",
		Path:      cubicCurveOpen(10, 50, 20, 10, 44, 10, 54, 50),
		Tolerance: 0.5,
		Canvas:    rect.Rect{URx: 64, URy: 64},
	},
	{
		Name:      "ring",
		Path:      appendEllipse(circle(32, 32, 25), 32, 32, 12, 12),
		Tolerance: 0.5,
		Canvas:    rect.Rect{URx: 64, URy: 64},
	},
	{
		Name:      "rectangle_grid",
		Path:      rectangleGrid(4, 4, 64, 64, 2),
		Tolerance: 1,
		Canvas:    rect.Rect{URx: 64, URy: 64},
	},
}

// cubicCurveOpen builds an open path with a cubic Bezier curve.
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	return appendEllipse(&path.Data{}, cx, cy, rx, ry)
}

// appendEllipse adds a closed ellipse subpath to p.
func appendEllipse(p *path.Data, cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return p.
		MoveTo(pt(cx+rx, cy)).                                     // start at right
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)). // top-right quadrant
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)). // top-left quadrant
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)). // bottom-left quadrant
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)). // bottom-right quadrant
		Close()
}

// mixedLinesCurves builds a closed path combining line segments and Bezier curves.
func mixedLinesCurves() *path.Data {
	return (&path.Data{}).
		MoveTo(pt(10, 50)).
		LineTo(pt(20, 30)).
		QuadTo(pt(32, 10), pt(44, 30)).
		LineTo(pt(54, 50)).
		CubeTo(pt(48, 60), pt(16, 60), pt(10, 50)).
		Close()
}

// rectangleGrid builds a grid of rectangles, each with redundant midpoints
// on every edge.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap
			xm := (x1 + x2) / 2
			ym := (y1 + y2) / 2

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(xm, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, ym)).
				LineTo(pt(x2, y2)).
				LineTo(pt(xm, y2)).
				LineTo(pt(x1, y2)).
				LineTo(pt(x1, ym)).
				Close()
		}
	}
	return p
}
