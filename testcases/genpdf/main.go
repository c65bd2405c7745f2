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

// Command genpdf writes one PDF file per test case, showing the original
// geometry as a wide grey line and the simplified geometry as a thin black
// line with its vertices marked.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/simplify"
	"seehuhn.de/go/simplify/testcases"
)

// pageWidth is the width of every output page, in PDF points.
const pageWidth = 400

func main() {
	outDir := pflag.String("out", "testdata/reference", "output directory")
	tolScale := pflag.Float64("tolerance-scale", 1, "factor applied to all tolerances")
	pflag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logrus.Fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			tc.Tolerance *= *tolScale

			pdfPath := filepath.Join(*outDir, name+".pdf")
			in, out, err := generatePDF(tc, pdfPath)
			if err != nil {
				logrus.Fatal(fmt.Errorf("%s: %w", name, err))
			}
			logrus.WithFields(logrus.Fields{
				"file":      pdfPath,
				"case":      name,
				"tolerance": tc.Tolerance,
				"in":        in,
				"out":       out,
			}).Info("wrote")
		}
	}
}

// generatePDF draws a single test case.  It returns the number of vertices
// before and after simplification.
func generatePDF(tc testcases.TestCase, pdfPath string) (int, int, error) {
	c := tc.Canvas
	scale := pageWidth / (c.URx - c.LLx)
	paper := &pdf.Rectangle{
		URx: pageWidth,
		URy: (c.URy - c.LLy) * scale,
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return 0, 0, err
	}

	page.Transform(matrix.Matrix{scale, 0, 0, scale, -c.LLx * scale, -c.LLy * scale})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	var in, out int
	if tc.IsPath() {
		in, out = drawPath(page, tc, scale)
	} else {
		in, out = drawPolyline(page, tc, scale)
	}

	return in, out, page.Close()
}

func drawPolyline(page *document.Page, tc testcases.TestCase, scale float64) (int, int) {
	s := simplify.Simplifier{
		Tolerance:      tc.Tolerance,
		HighestQuality: tc.HighestQuality,
	}
	simplified := s.Simplify(tc.Points)

	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(2 * max(tc.Tolerance, 1/scale))
	strokePolyline(page, tc.Points)

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1 / scale)
	strokePolyline(page, simplified)

	page.SetFillColor(color.DeviceGray(0))
	for _, p := range simplified {
		markVertex(page, simplify.ToVec2(p), 2/scale)
	}

	return len(tc.Points), len(simplified)
}

func drawPath(page *document.Page, tc testcases.TestCase, scale float64) (int, int) {
	s := simplify.NewSimplifier(tc.Tolerance)
	s.HighestQuality = tc.HighestQuality
	simplified := s.Path(tc.Path.Iter())

	page.SetStrokeColor(color.DeviceGray(0.7))
	page.SetLineWidth(2 * max(tc.Tolerance, 1/scale))
	in := drawCommands(page, tc.Path.Iter())
	page.Stroke()

	page.SetStrokeColor(color.DeviceGray(0))
	page.SetLineWidth(1 / scale)
	out := drawCommands(page, simplified.Iter())
	page.Stroke()

	page.SetFillColor(color.DeviceGray(0))
	for cmd, pts := range simplified.Iter() {
		if cmd == path.CmdMoveTo || cmd == path.CmdLineTo {
			markVertex(page, pts[0], 2/scale)
		}
	}

	return in, out
}

// drawCommands adds the path p to the page and returns the number of
// points it contains.  Quadratic segments are converted to cubic ones,
// since PDF has no quadratic Bézier curves.
func drawCommands(page *document.Page, p path.Path) int {
	n := 0
	for cmd, pts := range p.ToCubic() {
		n += len(pts)
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
	return n
}

func strokePolyline(page *document.Page, points []simplify.Point) {
	if len(points) == 0 {
		return
	}
	page.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		page.LineTo(p.X, p.Y)
	}
	page.Stroke()
}

// markVertex draws a small square centred at p.
func markVertex(page *document.Page, p vec.Vec2, size float64) {
	page.Rectangle(p.X-size/2, p.Y-size/2, size, size)
	page.Fill()
}
