package fractal

// EscapeBound is the squared-magnitude limit of the orbit
// The radius constant 4 is compared directly against |z|², not squared again
const EscapeBound = 4.0

// Complex is a point on the complex plane
// float64 is the widest native float in Go, used for both parts
type Complex struct {
	Re float64
	Im float64
}

// Sqr returns z² as (x² − y², 2xy)
func (z Complex) Sqr() Complex {
	return Complex{
		Re: z.Re*z.Re - z.Im*z.Im,
		Im: 2 * z.Re * z.Im,
	}
}

// Add returns the component-wise sum
func (z Complex) Add(o Complex) Complex {
	return Complex{Re: z.Re + o.Re, Im: z.Im + o.Im}
}

// AbsSq returns the squared magnitude
func (z Complex) AbsSq() float64 {
	return z.Re*z.Re + z.Im*z.Im
}

// Map linearly interpolates v from [inLow, inHigh] onto [outLow, outHigh]
// No clamping: values outside the input range extrapolate
// inLow == inHigh yields a non-finite result; callers must pass a non-degenerate range
func Map(inLow, inHigh, outLow, outHigh, v float64) float64 {
	return outLow + ((v-inLow)/(inHigh-inLow))*(outHigh-outLow)
}

// Escape returns the number of iterations before the orbit of c leaves the bound
// Returns maxIter if it never does within the cap; maxIter <= 0 returns 0
func Escape(c Complex, maxIter int) int {
	z := c
	iter := 0
	for iter < maxIter && z.AbsSq() < EscapeBound {
		z = z.Sqr().Add(c)
		iter++
	}
	return iter
}
