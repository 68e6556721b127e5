// Package fractal holds the escape-time math for the Mandelbrot set.
//
// Contents:
//   - Complex point and the squaring step of the orbit
//   - Map, the affine range interpolation used for pixel and palette mapping
//   - Escape, the bounded escape-time evaluator
//   - Region, the visible rectangle of the complex plane, and its panner
//
// Everything here is pure and safe for concurrent use.
package fractal
