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

// Command export writes all test cases, together with the output of the
// simplifier, to a JSON file.  This allows to compare other
// implementations against this one.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/simplify"
	"seehuhn.de/go/simplify/testcases"
)

func main() {
	outFile := pflag.String("out", "testdata/testcases.json", "output file")
	pflag.Parse()

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll(filepath.Dir(*outFile), 0755); err != nil {
		logrus.Fatal(err)
	}
	f, err := os.Create(*outFile)
	if err != nil {
		logrus.Fatal(err)
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	err = enc.Encode(out)
	if err != nil {
		f.Close()
		logrus.Fatal(err)
	}
	err = f.Close()
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.WithFields(logrus.Fields{
		"file":  *outFile,
		"cases": len(out.TestCases),
	}).Info("wrote")
}

type jsonTestCase struct {
	Name           string        `json:"name"`
	Tolerance      float64       `json:"tolerance"`
	HighestQuality bool          `json:"highest_quality,omitempty"`
	Points         [][]float64   `json:"points,omitempty"`
	Expected       [][]float64   `json:"expected,omitempty"`
	Path           []jsonSegment `json:"path,omitempty"`
	ExpectedPath   []jsonSegment `json:"expected_path,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:           category + "_" + tc.Name,
		Tolerance:      tc.Tolerance,
		HighestQuality: tc.HighestQuality,
	}

	if tc.IsPath() {
		s := simplify.NewSimplifier(tc.Tolerance)
		s.HighestQuality = tc.HighestQuality
		jtc.Path = pathToJSON(tc.Path.Iter())
		jtc.ExpectedPath = pathToJSON(s.Path(tc.Path.Iter()).Iter())
	} else {
		jtc.Points = pointsToJSON(tc.Points)
		jtc.Expected = pointsToJSON(
			simplify.SimplifyQuality(tc.Points, tc.Tolerance, tc.HighestQuality))
	}
	return jtc
}

func pointsToJSON(points []simplify.Point) [][]float64 {
	res := make([][]float64, len(points))
	for i, p := range points {
		res[i] = []float64{p.X, p.Y, p.Z}
	}
	return res
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
