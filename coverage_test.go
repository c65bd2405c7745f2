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
	"image"
	"image/draw"
	"math"
	"testing"

	"golang.org/x/image/vector"
)

// TestCoverage rasterises a filled circle before and after simplification
// and counts the pixels whose coverage differs by more than one half.
func TestCoverage(t *testing.T) {
	const (
		size   = 256
		radius = 100
		n      = 721
	)
	in := make([]Point, n)
	for i := range in {
		a := 2 * math.Pi * float64(i) / float64(n-1)
		in[i] = Pt(size/2+radius*math.Cos(a), size/2+radius*math.Sin(a))
	}
	ref := fillPolygon(size, in)

	perimeter := 2 * math.Pi * radius
	for _, tolerance := range []float64{0, 0.5, 1, 2} {
		out := Simplify(in, tolerance)
		if tolerance >= 1 && len(out) > n/4 {
			t.Errorf("tolerance %g: %d points remain", tolerance, len(out))
		}

		diff := countDiff(ref, fillPolygon(size, out))

		// All removed points are within the tolerance of the simplified
		// outline, so the symmetric difference of the two shapes has area
		// at most perimeter*tolerance.
		maxDiff := int(2*perimeter*tolerance + perimeter/4)
		if tolerance == 0 {
			maxDiff = 0
		}
		if diff > maxDiff {
			t.Errorf("tolerance %g: %d pixels differ (max %d)", tolerance, diff, maxDiff)
		}
	}
}

func fillPolygon(size int, points []Point) *image.Alpha {
	r := vector.NewRasterizer(size, size)
	r.DrawOp = draw.Src
	r.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		r.LineTo(float32(p.X), float32(p.Y))
	}
	r.ClosePath()

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

func countDiff(a, b *image.Alpha) int {
	count := 0
	for i := range a.Pix {
		d := int(a.Pix[i]) - int(b.Pix[i])
		if d > 127 || d < -127 {
			count++
		}
	}
	return count
}
