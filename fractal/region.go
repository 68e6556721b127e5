package fractal

import (
	"fmt"
	"math"
	"sort"
)

// DefaultPanStep is the fraction of the distance to the target covered by one Pan
const DefaultPanStep = 0.5

// panClampDivisor bounds a single pan step to |width|/8 on each axis
const panClampDivisor = 8

// Region is the visible rectangle of the complex plane
// Xmin < Xmax and Ymin < Ymax is the caller's responsibility
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Width returns the signed horizontal extent
func (r Region) Width() float64 {
	return r.Xmax - r.Xmin
}

// Height returns the signed vertical extent
func (r Region) Height() float64 {
	return r.Ymax - r.Ymin
}

// Center returns the midpoint of the rectangle
func (r Region) Center() Complex {
	return Complex{
		Re: r.Width()/2 + r.Xmin,
		Im: r.Height()/2 + r.Ymin,
	}
}

// Valid reports whether both axes are finite and non-degenerate
func (r Region) Valid() bool {
	for _, v := range [4]float64{r.Xmin, r.Xmax, r.Ymin, r.Ymax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Xmin < r.Xmax && r.Ymin < r.Ymax
}

// Pan returns the region translated toward target by step of the center distance
// Each axis offset is clamped to |width|/8; the width bound is applied to the
// vertical axis too, so tall regions pan no faster than wide ones
func (r Region) Pan(target Complex, step float64) Region {
	center := r.Center()
	limit := math.Abs(r.Width()) / panClampDivisor

	dx := clamp((target.Re-center.Re)*step, -limit, limit)
	dy := clamp((target.Im-center.Im)*step, -limit, limit)

	return Region{
		Xmin: r.Xmin + dx,
		Xmax: r.Xmax + dx,
		Ymin: r.Ymin + dy,
		Ymax: r.Ymax + dy,
	}
}

// String formats the bounds for logs
func (r Region) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Overview - whole set with the left antenna tip
	Overview = Region{Xmin: -3, Xmax: 0.47, Ymin: -1.12, Ymax: 1.12}

	// MainCardioid - tighter framing of the cardioid and period-2 bulb
	MainCardioid = Region{Xmin: -1.5, Xmax: 0.23, Ymin: -0.56, Ymax: 0.56}

	// Seahorse Valley - dense filaments and repeating "seahorse" curls
	SeahorseValley = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}

	// Elephant Valley - large bulb with trunk-like tendrils
	ElephantValley = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}

	// Spiral Minibrot - small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}

	// Triple Spiral - threefold symmetric spiral structure
	TripleSpiral = Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}

	// Valley of the Dragon - deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}

	// Minibrot in a Mini-Spiral - self-similar copy inside a spiral arm
	MinibrotInMiniSpiral = Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}
)

// Landmarks indexes the classic regions by config name
var Landmarks = map[string]Region{
	"overview":             Overview,
	"main-cardioid":        MainCardioid,
	"seahorse-valley":      SeahorseValley,
	"elephant-valley":      ElephantValley,
	"spiral-minibrot":      SpiralMinibrot,
	"triple-spiral":        TripleSpiral,
	"dragon-valley":        ValleyOfTheDragon,
	"mini-spiral-minibrot": MinibrotInMiniSpiral,
}

// LandmarkNames returns the sorted landmark keys
func LandmarkNames() []string {
	names := make([]string, 0, len(Landmarks))
	for name := range Landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
