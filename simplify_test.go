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
	"fmt"
	"maps"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/simplify/testcases"
)

func TestSimplifyExamples(t *testing.T) {
	cases := []struct {
		name      string
		in        []Point
		tolerance float64
		want      []Point
	}{
		{
			name: "empty",
			in:   []Point{},
			want: []Point{},
		},
		{
			name:      "single",
			in:        []Point{Pt(5, 5)},
			tolerance: 1,
			want:      []Point{Pt(5, 5)},
		},
		{
			name:      "collinear",
			in:        []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)},
			tolerance: 0.1,
			want:      []Point{Pt(0, 0), Pt(3, 0)},
		},
		{
			// (1, 0.05) is only 0.05 away from the chord, and (2, 0)
			// lies on it.
			name:      "near_spike",
			in:        []Point{Pt(0, 0), Pt(1, 0.05), Pt(2, 0), Pt(3, 0)},
			tolerance: 0.1,
			want:      []Point{Pt(0, 0), Pt(3, 0)},
		},
		{
			name:      "near_duplicates",
			in:        []Point{Pt(0, 0), Pt(0.01, 0.01), Pt(5, 5), Pt(5.01, 5), Pt(10, 0), Pt(10, 0.01)},
			tolerance: 0.1,
			want:      []Point{Pt(0, 0), Pt(5, 5), Pt(10, 0.01)},
		},
		{
			name:      "negative_tolerance",
			in:        []Point{Pt(0, 0), Pt(1, 0.05), Pt(2, 0), Pt(3, 0)},
			tolerance: -0.1,
			want:      []Point{Pt(0, 0), Pt(3, 0)},
		},
	}
	for _, c := range cases {
		for _, hq := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s_hq=%t", c.name, hq), func(t *testing.T) {
				got := SimplifyQuality(c.in, c.tolerance, hq)
				if d := cmp.Diff(c.want, got); d != "" {
					t.Errorf("unexpected result (-want +got):\n%s", d)
				}
			})
		}
	}
}

func TestSimplifyDefaultQuality(t *testing.T) {
	// The radial pre-pass removes (5, 0.8), which is close to (5, 0.3).
	// Douglas-Peucker alone keeps it.
	in := []Point{Pt(0, 0), Pt(5, 0.3), Pt(5, 0.8), Pt(10, 0)}

	if got := Simplify(in, 0.6); len(got) != 2 {
		t.Errorf("Simplify: got %v", got)
	}
	if got := SimplifyQuality(in, 0.6, false); len(got) != 2 {
		t.Errorf("SimplifyQuality(false): got %v", got)
	}
	want := []Point{Pt(0, 0), Pt(5, 0.8), Pt(10, 0)}
	if d := cmp.Diff(want, SimplifyQuality(in, 0.6, true)); d != "" {
		t.Errorf("SimplifyQuality(true): unexpected result (-want +got):\n%s", d)
	}
}

func TestIndices(t *testing.T) {
	in := []Point{Pt(0, 0), Pt(0.01, 0), Pt(1, 0), Pt(1.5, 2), Pt(2, 0), Pt(3, 0), Pt(3, 0.01)}

	s := Simplifier{Tolerance: 0.1}
	got := s.Indices(in)
	want := []int{0, 2, 3, 4, 6}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected indices (-want +got):\n%s", d)
	}

	pts := s.Simplify(in)
	for k, i := range got {
		if pts[k] != in[i] {
			t.Errorf("point %d: got %v, want %v", k, pts[k], in[i])
		}
	}
}

func TestSimplifierReuse(t *testing.T) {
	s := NewSimplifier(0)
	for _, tc := range polylineCases() {
		s.Tolerance = tc.Tolerance
		s.HighestQuality = tc.HighestQuality

		got := s.Simplify(tc.Points)
		want := SimplifyQuality(tc.Points, tc.Tolerance, tc.HighestQuality)
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("%s: reused Simplifier differs (-want +got):\n%s", tc.Name, d)
		}
	}
}

func TestEndpoints(t *testing.T) {
	for _, tc := range polylineCases() {
		for _, hq := range []bool{false, true} {
			out := SimplifyQuality(tc.Points, tc.Tolerance, hq)
			if len(tc.Points) == 0 {
				if len(out) != 0 {
					t.Errorf("%s: got %d points for empty input", tc.Name, len(out))
				}
				continue
			}
			if out[0] != tc.Points[0] || out[len(out)-1] != tc.Points[len(tc.Points)-1] {
				t.Errorf("%s (hq=%t): endpoints not preserved", tc.Name, hq)
			}
			if len(tc.Points) >= 2 && len(out) < 2 {
				t.Errorf("%s (hq=%t): got %d points", tc.Name, hq, len(out))
			}
		}
	}
}

func TestSubsequence(t *testing.T) {
	for _, tc := range polylineCases() {
		for _, hq := range []bool{false, true} {
			s := Simplifier{Tolerance: tc.Tolerance, HighestQuality: hq}
			idx := s.Indices(tc.Points)
			for k := 1; k < len(idx); k++ {
				if idx[k] <= idx[k-1] {
					t.Errorf("%s (hq=%t): indices not increasing: %v", tc.Name, hq, idx)
					break
				}
			}
		}
	}
}

// TestWithinTolerance checks that every removed point is within the
// tolerance of the simplified polyline segment which replaces it.
func TestWithinTolerance(t *testing.T) {
	for _, tc := range polylineCases() {
		s := Simplifier{Tolerance: tc.Tolerance, HighestQuality: true}
		idx := s.Indices(tc.Points)
		sqTol := tc.Tolerance * tc.Tolerance
		for k := 1; k < len(idx); k++ {
			a, b := tc.Points[idx[k-1]], tc.Points[idx[k]]
			for i := idx[k-1] + 1; i < idx[k]; i++ {
				d := SquareSegmentDistance(tc.Points[i], a, b)
				if d > sqTol*(1+1e-9) {
					t.Errorf("%s: point %d is %g away, tolerance %g",
						tc.Name, i, d, sqTol)
				}
			}
		}
	}
}

func TestIdempotent(t *testing.T) {
	for _, tc := range polylineCases() {
		once := SimplifyQuality(tc.Points, tc.Tolerance, true)
		twice := SimplifyQuality(once, tc.Tolerance, true)
		if d := cmp.Diff(once, twice); d != "" {
			t.Errorf("%s: not idempotent (-once +twice):\n%s", tc.Name, d)
		}
	}
}

func TestMonotoneTolerance(t *testing.T) {
	for _, tc := range polylineCases() {
		prev := len(tc.Points)
		for _, f := range []float64{0, 0.25, 0.5, 1, 2, 4, 8} {
			n := len(SimplifyQuality(tc.Points, f*tc.Tolerance, true))
			if n > prev {
				t.Errorf("%s: %d points at tolerance %g, %d before",
					tc.Name, n, f*tc.Tolerance, prev)
			}
			prev = n
		}
	}
}

func TestFixtures(t *testing.T) {
	// expected output sizes for some of the shared fixtures
	want := map[string]int{
		"line_collinear":      2,
		"line_near_spike":     2,
		"line_spike":          5,
		"line_zigzag":         9,
		"line_flat_zigzag":    2,
		"line_duplicates":     3,
		"line_back_and_forth": 5,
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			n, ok := want[name]
			if !ok {
				continue
			}
			out := SimplifyQuality(tc.Points, tc.Tolerance, tc.HighestQuality)
			if len(out) != n {
				t.Errorf("%s: got %d points, want %d: %v", name, len(out), n, out)
			}
		}
	}
}

// polylineCases returns all polyline fixtures, plus some degenerate inputs.
func polylineCases() []testcases.TestCase {
	res := []testcases.TestCase{
		{Name: "empty", Points: []Point{}, Tolerance: 1},
		{Name: "single", Points: []Point{Pt(5, 5)}, Tolerance: 1},
		{Name: "pair", Points: []Point{Pt(5, 5), Pt(5, 5)}, Tolerance: 1},
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			if !tc.IsPath() {
				res = append(res, tc)
			}
		}
	}
	return res
}

// TestConcurrentUse runs the package-level functions from several
// goroutines at once.  Run with -race to detect shared state.
func TestConcurrentUse(t *testing.T) {
	type result struct {
		simplified, quality, radial, dp []Point
	}

	cases := polylineCases()
	want := make([]result, len(cases))
	for i, tc := range cases {
		sq := tc.Tolerance * tc.Tolerance
		want[i] = result{
			simplified: Simplify(tc.Points, tc.Tolerance),
			quality:    SimplifyQuality(tc.Points, tc.Tolerance, true),
			radial:     RadialDistance(tc.Points, sq),
			dp:         DouglasPeucker(tc.Points, sq),
		}
	}

	const numWorkers = 8
	var wg sync.WaitGroup
	for w := range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range cases {
				// each worker starts at a different case
				i := (k + w) % len(cases)
				tc := cases[i]
				sq := tc.Tolerance * tc.Tolerance
				got := result{
					simplified: Simplify(tc.Points, tc.Tolerance),
					quality:    SimplifyQuality(tc.Points, tc.Tolerance, true),
					radial:     RadialDistance(tc.Points, sq),
					dp:         DouglasPeucker(tc.Points, sq),
				}
				if d := cmp.Diff(want[i].simplified, got.simplified); d != "" {
					t.Errorf("%s: Simplify (-want +got):\n%s", tc.Name, d)
				}
				if d := cmp.Diff(want[i].quality, got.quality); d != "" {
					t.Errorf("%s: SimplifyQuality (-want +got):\n%s", tc.Name, d)
				}
				if d := cmp.Diff(want[i].radial, got.radial); d != "" {
					t.Errorf("%s: RadialDistance (-want +got):\n%s", tc.Name, d)
				}
				if d := cmp.Diff(want[i].dp, got.dp); d != "" {
					t.Errorf("%s: DouglasPeucker (-want +got):\n%s", tc.Name, d)
				}
			}
		}()
	}
	wg.Wait()
}
