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
	"math"
	"math/rand/v2"

	"github.com/golang/geo/r3"
)

var lineCases = []TestCase{
	polyline("collinear", 0.5, []r3.Vector{
		p2(0, 0), p2(1, 0), p2(2, 0), p2(3, 0),
	}),
	polyline("near_spike", 0.1, []r3.Vector{
		p2(0, 0), p2(1, 0.05), p2(2, 0), p2(3, 0),
	}),
	polyline("spike", 0.1, []r3.Vector{
		p2(0, 0), p2(1, 0), p2(1.5, 2), p2(2, 0), p2(3, 0),
	}),
	polyline("zigzag", 1, zigzag(0, 10, 40, 5, 8)),
	polyline("flat_zigzag", 1, zigzag(0, 10, 40, 0.4, 20)),
	polyline("duplicates", 0.5, []r3.Vector{
		p2(0, 0), p2(0, 0), p2(0, 0), p2(4, 4), p2(4, 4), p2(8, 0), p2(8, 0),
	}),
	polyline("back_and_forth", 0.25, []r3.Vector{
		p2(0, 0), p2(10, 0), p2(2, 0), p2(8, 0), p2(5, 0),
	}),
	polyline("staircase", 0.6, staircase(0, 0, 12, 1)),
}

var curveCases = []TestCase{
	polyline("sine", 0.05, sampled(200, func(t float64) r3.Vector {
		return p2(4*math.Pi*t, math.Sin(4*math.Pi*t))
	})),
	polyline("circle", 0.5, sampled(361, func(t float64) r3.Vector {
		return p2(20*math.Cos(2*math.Pi*t), 20*math.Sin(2*math.Pi*t))
	})),
	polyline("spiral", 0.5, spiral(0, 0, 2, 30, 3)),
	{
		Name: "helix",
		Points: sampled(400, func(t float64) r3.Vector {
			a := 8 * math.Pi * t
			return r3.Vector{X: 10 * math.Cos(a), Y: 10 * math.Sin(a), Z: 40 * t}
		}),
		Tolerance:      0.3,
		HighestQuality: true,
		Canvas:         canvas([]r3.Vector{p2(-10, -10), p2(10, 10)}, 1),
	},
}

var trackCases = []TestCase{
	polyline("random_walk", 2, randomWalk(1, 500, 1)),
	polyline("noisy_line", 0.5, noisyLine(2, 1000, 100, 0.2)),
	{
		Name:           "noisy_line_hq",
		Points:         noisyLine(2, 1000, 100, 0.2),
		Tolerance:      0.5,
		HighestQuality: true,
		Canvas:         canvas(noisyLine(2, 1000, 100, 0.2), 1),
	},
}

// polyline builds a polyline test case with a canvas fitted to the points.
func polyline(name string, tolerance float64, points []r3.Vector) TestCase {
	return TestCase{
		Name:      name,
		Points:    points,
		Tolerance: tolerance,
		Canvas:    canvas(points, 1),
	}
}

// sampled evaluates f at n equally spaced parameters from 0 to 1.
func sampled(n int, f func(t float64) r3.Vector) []r3.Vector {
	res := make([]r3.Vector, n)
	for i := range n {
		res[i] = f(float64(i) / float64(n-1))
	}
	return res
}

// zigzag builds a zigzag line from (x1, cy) to (x2, cy) with the given
// number of segments.
func zigzag(x1, cy, x2, amplitude float64, segments int) []r3.Vector {
	segWidth := (x2 - x1) / float64(segments)
	res := []r3.Vector{p2(x1, cy)}
	for i := 1; i <= segments; i++ {
		y := cy + amplitude
		if i%2 == 1 {
			y = cy - amplitude
		}
		res = append(res, p2(x1+float64(i)*segWidth, y))
	}
	return res
}

// staircase builds n steps of the given size, starting at (x, y).
func staircase(x, y float64, n int, size float64) []r3.Vector {
	res := []r3.Vector{p2(x, y)}
	for range n {
		x += size
		res = append(res, p2(x, y))
		y += size
		res = append(res, p2(x, y))
	}
	return res
}

// spiral builds an Archimedean spiral with 32 segments per turn.
func spiral(cx, cy, rMin, rMax float64, turns float64) []r3.Vector {
	steps := max(int(turns*32), 8)
	totalAngle := turns * 2 * math.Pi
	rGrowth := (rMax - rMin) / totalAngle

	res := make([]r3.Vector, 0, steps+1)
	for i := 0; i <= steps; i++ {
		angle := float64(i) / float64(steps) * totalAngle
		r := rMin + rGrowth*angle
		res = append(res, p2(cx+r*math.Cos(angle), cy+r*math.Sin(angle)))
	}
	return res
}

// randomWalk builds a reproducible track with n steps of roughly the given
// length and a slowly drifting heading.
func randomWalk(seed uint64, n int, step float64) []r3.Vector {
	rng := rand.New(rand.NewPCG(seed, 0))
	res := make([]r3.Vector, 0, n)
	var x, y, heading float64
	for range n {
		res = append(res, p2(x, y))
		heading += 0.4 * rng.NormFloat64()
		d := step * (0.5 + rng.Float64())
		x += d * math.Cos(heading)
		y += d * math.Sin(heading)
	}
	return res
}

// noisyLine builds n samples along the x-axis from 0 to length, with
// uniform noise of the given amplitude in y.
func noisyLine(seed uint64, n int, length, noise float64) []r3.Vector {
	rng := rand.New(rand.NewPCG(seed, 0))
	res := make([]r3.Vector, n)
	for i := range n {
		x := length * float64(i) / float64(n-1)
		res[i] = p2(x, noise*(2*rng.Float64()-1))
	}
	return res
}
